package core

import (
	"context"
	"sync"

	"github.com/ib-77/either/pkg/either"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan either.Result[In], outCh chan<- either.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed either.Result[In], outCh chan<- either.Result[Out])
	OnCancelProcessed   func(ctx context.Context, in either.Result[In], processed either.Result[Out], outCh chan<- either.Result[Out])
}

// Locomotive pulls values from inputCh, runs engine on each one and pushes the
// outcome to outCh until inputCh closes or ctx ends. It calls wg.Done on exit.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan either.Result[In], outCh chan<- either.Result[Out],
	engine func(ctx context.Context, input either.Result[In]) <-chan either.Result[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out either.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					if ctx.Err() != nil {
						if handlers.OnCancelUnprocessed != nil {
							handlers.OnCancelUnprocessed(ctx, in, outCh)
						}
						if handlers.OnCancel != nil {
							handlers.OnCancel(ctx, inputCh, outCh)
						}
					}
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
