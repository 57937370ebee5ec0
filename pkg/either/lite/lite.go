package lite

import (
	"context"
	"sync"

	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/core"
	"github.com/ib-77/either/pkg/either/solo"
)

// Engine turns one input value into a channel carrying at most one outcome.
type Engine[In, Out any] func(ctx context.Context, input either.Result[In]) <-chan either.Result[Out]

func Run[T any](ctx context.Context, inputCh <-chan either.Result[T],
	engine Engine[T, T], lines int) <-chan either.Result[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan either.Result[In],
	engine Engine[In, Out], lines int) <-chan either.Result[Out] {
	return TurnoutWithHandlers(ctx, inputCh, engine, core.CancellationHandlers[In, Out]{}, nil, lines)
}

// TurnoutWithHandlers runs lines locomotives over inputCh and closes the
// returned channel once all of them have stopped.
func TurnoutWithHandlers[In, Out any](ctx context.Context, inputCh <-chan either.Result[In],
	engine Engine[In, Out],
	handlers core.CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out either.Result[Out]), lines int) <-chan either.Result[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan either.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Engine[T, T] {
	return func(ctx context.Context, input either.Result[T]) <-chan either.Result[T] {
		return lift(ctx, input, func(ctx context.Context, in either.Result[T]) either.Result[T] {
			return solo.AndValidate(ctx, in, validate)
		}, nil)
	}
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) either.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, input either.Result[In]) <-chan either.Result[Out] {
		return lift(ctx, input, func(ctx context.Context, in either.Result[In]) either.Result[Out] {
			return solo.Switch(ctx, in, switchOnSuccess)
		}, nil)
	}
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return func(ctx context.Context, input either.Result[In]) <-chan either.Result[Out] {
		return lift(ctx, input, func(ctx context.Context, in either.Result[In]) either.Result[Out] {
			return solo.Map(ctx, in, mapOnSuccess)
		}, nil)
	}
}

func Tee[T any](sideEffect func(ctx context.Context, r T)) Engine[T, T] {
	return func(ctx context.Context, input either.Result[T]) <-chan either.Result[T] {
		return lift(ctx, input, func(ctx context.Context, in either.Result[T]) either.Result[T] {
			return solo.Tee(ctx, in, sideEffect)
		}, nil)
	}
}

// DoubleMap recovers failures into Out alongside mapped successes.
func DoubleMap[In, Out any](onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Engine[In, Out] {
	return func(ctx context.Context, input either.Result[In]) <-chan either.Result[Out] {
		return lift(ctx, input, func(ctx context.Context, in either.Result[In]) either.Result[Out] {
			return solo.DoubleMap(ctx, in, onSuccess, onError)
		}, nil)
	}
}

func DoubleTee[T any](onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) Engine[T, T] {
	return func(ctx context.Context, input either.Result[T]) <-chan either.Result[T] {
		return lift(ctx, input, func(ctx context.Context, in either.Result[T]) either.Result[T] {
			return solo.DoubleTee(ctx, in, onSuccess, onError)
		}, nil)
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return TryWithCancel(onTryExecute, nil)
}

// TryWithCancel is Try with a hook for inputs abandoned by cancellation.
func TryWithCancel[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in either.Result[In])) Engine[In, Out] {
	return func(ctx context.Context, input either.Result[In]) <-chan either.Result[Out] {
		return lift(ctx, input, func(ctx context.Context, in either.Result[In]) either.Result[Out] {
			return solo.Try(ctx, in, onTryExecute)
		}, onCancel)
	}
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
}

// Finally folds every value of input into Out. It stops early when ctx ends.
func Finally[In, Out any](ctx context.Context, input <-chan either.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					return
				case out <- solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError):
				}
			}
		}
	}()

	return out
}
