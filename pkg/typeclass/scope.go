package typeclass

import (
	"errors"
	"reflect"

	"github.com/zeebo/errs"
)

var (
	Error = errs.Class("typeclass")

	ErrNoInstance = errors.New("no summary instance")
)

type instance struct {
	summarise func(v any) string
	info      func(v any) string
}

// Scope holds several Summary instances at once and picks one by the dynamic
// type of the value. A Scope must be created with NewScope.
type Scope struct {
	parent    *Scope
	instances map[reflect.Type]instance
}

func NewScope() *Scope {
	return &Scope{instances: make(map[reflect.Type]instance)}
}

// Register adds summary to s, replacing any instance already held for T, and
// returns s for chaining.
func Register[T any](s *Scope, summary Summary[T]) *Scope {
	s.instances[reflect.TypeFor[T]()] = instance{
		summarise: func(v any) string { return summary.Summarise(v.(T)) },
		info:      func(v any) string { return summary.Info(v.(T)) },
	}
	return s
}

// Nested opens an inner scope. Lookups fall back to s when the inner scope
// has no instance of its own.
func (s *Scope) Nested() *Scope {
	inner := NewScope()
	inner.parent = s
	return inner
}

func (s *Scope) lookup(v any) (instance, error) {
	t := reflect.TypeOf(v)
	for cur := s; cur != nil; cur = cur.parent {
		if in, ok := cur.instances[t]; ok {
			return in, nil
		}
	}
	return instance{}, Error.New("%T: %w", v, ErrNoInstance)
}

func (s *Scope) Summarise(v any) (string, error) {
	in, err := s.lookup(v)
	if err != nil {
		return "", err
	}
	return in.summarise(v), nil
}

func (s *Scope) Info(v any) (string, error) {
	in, err := s.lookup(v)
	if err != nil {
		return "", err
	}
	return in.info(v), nil
}

// Describe is the package level Describe resolved through the scope.
func (s *Scope) Describe(v any) (string, error) {
	in, err := s.lookup(v)
	if err != nil {
		return "", err
	}
	return "Summary is: " + in.summarise(v) + ", Info: " + in.info(v), nil
}
