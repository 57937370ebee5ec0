package chain

import (
	"context"

	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/solo"
)

// Chain wraps an either.Either with context to enable fluent chaining
type Chain[L, R any] struct {
	ctx context.Context
	res either.Either[L, R]
}

// Start creates a new chain from an either.Either
func Start[L, R any](ctx context.Context, res either.Either[L, R]) Chain[L, R] {
	return Chain[L, R]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value
func FromValue[L, R any](ctx context.Context, v R) Chain[L, R] {
	return Start(ctx, either.Right[L](v))
}

func (c Chain[L, R]) Result() either.Either[L, R] {
	return c.res
}

// Then composes functions that already return either.Either[L, R]
func (c Chain[L, R]) Then(onSuccess func(ctx context.Context, r R) either.Either[L, R]) Chain[L, R] {
	return Chain[L, R]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[L, R]) Map(onSuccess func(ctx context.Context, r R) R) Chain[L, R] {
	return Chain[L, R]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// RepeatUntil applies onSuccess at least once and keeps going while until
// holds and the chain is still on the right track.
func (c Chain[L, R]) RepeatUntil(onSuccess func(ctx context.Context, r R) either.Either[L, R],
	until func(ctx context.Context, r R) bool) Chain[L, R] {

	if c.res.IsLeft() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsLeft() || !until(c.ctx, c.res.RightValue()) {
			return c
		}
	}
}

func (c Chain[L, R]) While(onSuccess func(ctx context.Context, r R) either.Either[L, R],
	while func(ctx context.Context, r R) bool) Chain[L, R] {

	for c.res.IsRight() && while(c.ctx, c.res.RightValue()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first chain on the right track, or the receiver when every
// candidate failed.
func (c Chain[L, R]) Or(alternatives ...Chain[L, R]) Chain[L, R] {
	if c.res.IsRight() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsRight() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeeded.
func (c Chain[L, R]) And(required ...Chain[L, R]) Chain[L, R] {
	last := c
	for _, ch := range append([]Chain[L, R]{c}, required...) {
		if ch.res.IsLeft() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[L, R]) Ensure(onSuccess func(context.Context, R), onFailure func(context.Context, L)) Chain[L, R] {
	c.res.Match(
		func(l L) {
			if onFailure != nil {
				onFailure(c.ctx, l)
			}
		},
		func(r R) {
			if onSuccess != nil {
				onSuccess(c.ctx, r)
			}
		})
	return c
}

// FlatMap chains a function that may change the right type
func FlatMap[L, T, U any](c Chain[L, T], onSuccess func(context.Context, T) either.Either[L, U]) Chain[L, U] {
	return Chain[L, U]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// MapTo chains a pure transformation that may change the right type
func MapTo[L, T, U any](c Chain[L, T], onSuccess func(context.Context, T) U) Chain[L, U] {
	return Chain[L, U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[error, T], tryOnSuccess func(context.Context, T) (U, error)) Chain[error, U] {
	return Chain[error, U]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, tryOnSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[L, T, U any](c Chain[L, T], onSuccess func(context.Context, T) U, onFailure func(context.Context, L) U) U {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
