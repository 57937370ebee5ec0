package core

import (
	"context"

	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/solo"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanFromArgsRights[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan either.Result[T] {
	in := make(chan either.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- solo.Succeed(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs(ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

func ToChanManyRightsWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan either.Result[T] {
	return ToChanFromArgsRights(ctx, handlers, values...)
}

func ToChanManyRights[T any](ctx context.Context, values []T) <-chan either.Result[T] {
	return ToChanFromArgsRights(ctx, ToChanHandlers[T]{}, values...)
}

// FromChanFirstOrDefault returns the first value read from out, or defaultV
// when out closes empty or ctx ends first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// FromChanMany collects values until out closes or ctx ends.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// Drain collects every value until out closes, ignoring cancellation. Use it
// when the producers report cancelled work themselves and must not block.
func Drain[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
