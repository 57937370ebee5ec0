package either

import "time"

type RightProvider[R any] interface {
	// Get returns the right value and whether it is present
	Get() (R, bool)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithLeft defines an interface for values that hold a right value or a left one
type WithLeft[L, R any] interface {
	RightProvider[R]
	// GetLeft returns the left value and whether it is present
	GetLeft() (L, bool)
	// IsRight returns true if the value holds a success
	IsRight() bool
}

var (
	_ WithLeft[string, int] = Either[string, int]{}
	_ RightProvider[int]    = Either[Nothing, int]{}
)
