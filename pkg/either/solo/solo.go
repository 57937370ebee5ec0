package solo

import (
	"context"
	"errors"

	"github.com/ib-77/either/pkg/either"
)

func Succeed[T any](input T) either.Result[T] {
	return either.Right[error](input)
}

func Fail[T any](err error) either.Result[T] {
	return either.Left[error, T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) either.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input either.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) either.Result[T] {

	if in, ok := input.Get(); ok {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input either.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in either.Result[T]) either.Result[T]) either.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current either.Result[T]) either.Result[T] {

			if l, failed := current.GetLeft(); failed {
				e := either.GetErrors(err)
				e = append(e, l)
				err = errors.Join(e...)
			}

			if either.IsNil(err) {
				return current
			}

			return Fail[T](err)
		},
		inputsF...,
	)
}

// Switch is FlatMap with a context: the right value moves to a new track,
// a left value stays on the failure track untouched.
func Switch[L, In, Out any](ctx context.Context,
	input either.Either[L, In],
	onSuccess func(ctx context.Context, r In) either.Either[L, Out]) either.Either[L, Out] {

	return either.FlatMap(input, func(r In) either.Either[L, Out] {
		return onSuccess(ctx, r)
	})
}

func Map[L, In, Out any](ctx context.Context,
	input either.Either[L, In],
	onSuccess func(ctx context.Context, r In) Out) either.Either[L, Out] {

	return either.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Tee[L, T any](ctx context.Context,
	input either.Either[L, T],
	onSuccess func(ctx context.Context, r T)) either.Either[L, T] {

	if r, ok := input.Get(); ok {
		onSuccess(ctx, r)
	}

	return input
}

func TeeIf[L, T any](ctx context.Context,
	input either.Either[L, T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) either.Either[L, T] {

	if r, ok := input.Get(); ok && condition(ctx, r) {
		onSuccessAndCondition(ctx, r)
	}

	return input
}

func DoubleTee[L, T any](ctx context.Context, input either.Either[L, T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, l L)) either.Either[L, T] {

	input.Match(
		func(l L) { onError(ctx, l) },
		func(r T) { onSuccess(ctx, r) })

	return input
}

// DoubleMap moves both tracks to Out and puts the result back on the
// success track.
func DoubleMap[L, In, Out any](ctx context.Context, input either.Either[L, In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, l L) Out) either.Either[L, Out] {

	return either.Right[L](Finally(ctx, input, onSuccess, onError))
}

// Try runs a (value, error) function on the right track. A returned error
// becomes the left value as is, cancellation errors included.
func Try[In, Out any](ctx context.Context, input either.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) either.Result[Out] {

	return either.FlatMap(input, func(r In) either.Result[Out] {
		return either.FromPair(onTryExecute(ctx, r))
	})
}

func FailOnError[T any](ctx context.Context, input either.Result[T],
	maybeErr func(ctx context.Context, in T) error) either.Result[T] {

	if in, ok := input.Get(); ok {
		if err := maybeErr(ctx, in); err != nil {
			return Fail[T](err)
		}
	}
	return input
}

func Finally[L, In, Out any](ctx context.Context, input either.Either[L, In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, l L) Out) Out {

	return either.Fold(input,
		func(l L) Out { return onError(ctx, l) },
		func(r In) Out { return onSuccess(ctx, r) })
}

func Join[T any](ctx context.Context,
	input either.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current either.Result[T]) either.Result[T],
	inputsF ...func(ctx context.Context, in either.Result[T]) either.Result[T]) either.Result[T] {

	if len(inputsF) == 0 || concat == nil || !either.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !either.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsRight() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !either.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsLeft() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
