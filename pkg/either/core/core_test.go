package core

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/either/pkg/either"
)

func TestToChanMany_FromChanMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromChanMany(ctx, ToChanMany(ctx, []int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestToChanManyRights_AllRight(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Drain(ToChanManyRights(ctx, []string{"a", "b"}))
	require.Len(t, got, 2)
	for i, want := range []string{"a", "b"} {
		assert.True(t, got[i].IsRight())
		assert.Equal(t, want, got[i].RightValue())
	}
}

func TestToChanManyRights_StartFail(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var notSent []int
	out := ToChanManyRightsWithHandlers(ctx, ToChanHandlers[int]{
		OnStartFail: func(_ context.Context, input []int) { notSent = input },
	}, []int{1, 2})

	assert.Empty(t, Drain(out))
	assert.Equal(t, []int{1, 2}, notSent)
}

func TestToChanManyRights_Break(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	var (
		mu   sync.Mutex
		sent []int
		rest []int
	)
	out := ToChanManyRightsWithHandlers(ctx, ToChanHandlers[int]{
		OnSuccess: func(_ context.Context, v int) {
			mu.Lock()
			defer mu.Unlock()
			sent = append(sent, v)
		},
		OnBreak: func(_ context.Context, r []int) {
			mu.Lock()
			defer mu.Unlock()
			rest = r
		},
	}, []int{1, 2, 3, 4})

	first := <-out
	require.Equal(t, 1, first.RightValue())
	cancel()
	Drain(out)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 4, len(sent)+len(rest), "every value is either sent or reported as rest")
	assert.Contains(t, sent, 1)
}

func TestFromChanFirstOrDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 9, FromChanFirstOrDefault(ctx, ToChan(ctx, 9), -1))

	closed := make(chan int)
	close(closed)
	assert.Equal(t, -1, FromChanFirstOrDefault(ctx, closed, -1))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Equal(t, -1, FromChanFirstOrDefault(cancelled, make(chan int), -1))
}

func TestOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 5, GetWorkerMaxCount(ctx, 5))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 5))
	assert.Equal(t, 5, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 5))

	assert.True(t, IsProcessRemainingEnabled(ctx, true))
	assert.False(t, IsProcessRemainingEnabled(WithProcessOptions(ctx, false), true))
}

func double(ctx context.Context, in either.Result[int]) <-chan either.Result[int] {
	out := make(chan either.Result[int], 1)
	go func() {
		defer close(out)
		out <- either.Map(in, func(v int) int { return v * 2 })
	}()
	return out
}

func TestLocomotive_ProcessesAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := make(chan either.Result[int], 10)
	wg := &sync.WaitGroup{}
	var succeeded int
	var mu sync.Mutex

	in := ToChanManyRights(ctx, []int{1, 2, 3})
	for range 2 {
		wg.Add(1)
		go Locomotive(ctx, in, out, double, CancellationHandlers[int, int]{},
			func(context.Context, either.Result[int]) {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}, wg)
	}
	wg.Wait()
	close(out)

	var got []int
	for r := range out {
		got = append(got, r.RightValue())
	}
	sort.Ints(got)
	assert.Equal(t, []int{2, 4, 6}, got)
	assert.Equal(t, 3, succeeded)
}

func TestLocomotive_CancelReportsRemaining(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan either.Result[int], 3)
	in <- either.Right[error](1)
	in <- either.Right[error](2)
	in <- either.Right[error](3)
	close(in)

	cancelled := errors.New("cancelled")
	blocked := func(ctx context.Context, r either.Result[int]) <-chan either.Result[int] {
		out := make(chan either.Result[int], 1)
		go func() {
			defer close(out)
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
				out <- r
			}
		}()
		return out
	}

	out := make(chan either.Result[int], 3)
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go Locomotive(ctx, in, out, blocked, CancellationHandlers[int, int]{
		OnCancelUnprocessed: func(_ context.Context, _ either.Result[int], outCh chan<- either.Result[int]) {
			outCh <- either.Left[error, int](cancelled)
		},
		OnCancel: func(_ context.Context, inputCh <-chan either.Result[int], outCh chan<- either.Result[int]) {
			for range inputCh {
				outCh <- either.Left[error, int](cancelled)
			}
		},
	}, nil, wg)

	cancel()
	wg.Wait()
	close(out)

	got := Drain(out)
	require.Len(t, got, 3)
	for _, r := range got {
		assert.ErrorIs(t, r.LeftValue(), cancelled)
	}
}
