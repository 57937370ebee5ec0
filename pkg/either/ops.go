package either

// Map applies f to a right value. A left value is returned unchanged and f is
// not called. f must not return an Either; use FlatMap for that.
func Map[L, R1, R2 any](e Either[L, R1], f func(r R1) R2) Either[L, R2] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return passLeft[L, R1, R2](e)
}

// FlatMap hands a right value to f and returns f's result as is.
// A left value is returned unchanged and f is not called.
func FlatMap[L, R1, R2 any](e Either[L, R1], f func(r R1) Either[L, R2]) Either[L, R2] {
	if e.isRight {
		return f(e.right)
	}
	return passLeft[L, R1, R2](e)
}

// MapLeft applies f to a left value. A right value keeps its payload.
func MapLeft[L1, L2, R any](e Either[L1, R], f func(l L1) L2) Either[L2, R] {
	if e.isRight {
		return Either[L2, R]{
			right:     e.right,
			isRight:   true,
			createdAt: e.createdAt,
			id:        e.id,
		}
	}
	return Left[L2, R](f(e.left))
}

// Fold reduces e to a single value. Both handlers are required.
func Fold[L, R, T any](e Either[L, R], onLeft func(l L) T, onRight func(r R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

func OrElse[L, R any](e Either[L, R], fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

// Equal reports whether a and b hold the same variant and payload.
// Id and creation time are ignored.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	return EqualFunc(a, b,
		func(x, y L) bool { return x == y },
		func(x, y R) bool { return x == y })
}

func EqualFunc[L, R any](a, b Either[L, R], eqLeft func(x, y L) bool, eqRight func(x, y R) bool) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return eqRight(a.right, b.right)
	}
	return eqLeft(a.left, b.left)
}

// passLeft re-types a left value. The payload, id and creation time are kept,
// so a short-circuited chain still reports where its failure came from.
func passLeft[L, R1, R2 any](e Either[L, R1]) Either[L, R2] {
	return Either[L, R2]{
		left:      e.left,
		isRight:   false,
		createdAt: e.createdAt,
		id:        e.id,
	}
}
