package either

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Nothing is the left type of a value that can only ever be Right.
// No constructor in this package produces a Left[Nothing], which is what
// makes Widen total.
type Nothing struct{}

// Either holds exactly one of a left value (the failure) or a right value
// (the success). The zero value is Left with a zero L and should not be used.
//
// An Either never accepts L or R after construction, so it is safe to treat
// an Either[Nothing, R] as an Either[L, R] for any L (see Widen), and to share
// values between goroutines without locking.
type Either[L, R any] struct {
	id        uuid.UUID
	createdAt time.Time
	left      L
	right     R
	isRight   bool
}

// Result is the railway shape used by the solo, chain, core and lite packages.
type Result[T any] = Either[error, T]

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{
		right:     r,
		isRight:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{
		left:      l,
		isRight:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of wraps a success. The left type stays Nothing until Widen, FlatMap or
// MapLeft introduces one.
func Of[R any](r R) Either[Nothing, R] {
	return Right[Nothing](r)
}

// Widen lets a value built by Of stand in wherever an Either[L, R] is expected.
func Widen[L, R any](e Either[Nothing, R]) Either[L, R] {
	return Either[L, R]{
		right:     e.right,
		isRight:   true,
		createdAt: e.createdAt,
		id:        e.id,
	}
}

// FromPair converts the usual (value, error) return into a Result.
func FromPair[R any](r R, err error) Result[R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](r)
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Get returns the right value and true, or the zero R and false on Left.
func (e Either[L, R]) Get() (R, bool) {
	return e.right, e.isRight
}

// GetLeft returns the left value and true, or the zero L and false on Right.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

// RightValue returns the right value, or the zero R on Left.
func (e Either[L, R]) RightValue() R {
	return e.right
}

// LeftValue returns the left value, or the zero L on Right.
func (e Either[L, R]) LeftValue() L {
	return e.left
}

// Match calls exactly one of the handlers. Both are required.
func (e Either[L, R]) Match(onLeft func(l L), onRight func(r R)) {
	if e.isRight {
		onRight(e.right)
		return
	}
	onLeft(e.left)
}

func (e Either[L, R]) Id() uuid.UUID {
	return e.id
}

// CreatedAt time creation (UTC)
func (e Either[L, R]) CreatedAt() time.Time {
	return e.createdAt
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
