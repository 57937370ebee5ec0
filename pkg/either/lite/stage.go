package lite

import (
	"context"

	"github.com/ib-77/either/pkg/either"
)

// lift runs step on input in its own goroutine and delivers the outcome on
// the returned channel. When ctx ends first the channel closes empty and
// onCancel, if set, receives the untouched input. Both channels are buffered
// so a step that finishes after cancellation never blocks.
func lift[In, Out any](ctx context.Context, input either.Result[In],
	step func(ctx context.Context, in either.Result[In]) either.Result[Out],
	onCancel func(ctx context.Context, in either.Result[In])) <-chan either.Result[Out] {

	ch := make(chan either.Result[Out], 1)
	out := make(chan either.Result[Out], 1)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- step(ctx, input)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
				return
			}
			if onCancel != nil {
				onCancel(ctx, input)
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}
