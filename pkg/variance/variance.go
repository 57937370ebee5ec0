package variance

import (
	"fmt"

	"github.com/ib-77/either/pkg/either"
)

type Mammal interface {
	Speak() string
}

type Cat struct {
	Name string
}

func (Cat) Speak() string { return "Meow" }

type Dog struct {
	Name string
}

func (Dog) Speak() string { return "Woof" }

// Source only ever hands values out, so a Source[Cat] can serve as a
// Source[Mammal] once each value is upcast.
type Source[T any] interface {
	Produce() T
}

type Producer[T any] struct {
	value T
}

func NewProducer[T any](v T) Producer[T] {
	return Producer[T]{value: v}
}

func (p Producer[T]) Produce() T {
	return p.value
}

type sourceFunc[T any] func() T

func (f sourceFunc[T]) Produce() T { return f() }

// Covary views src as a source of the wider type U.
func Covary[T, U any](src Source[T], up func(T) U) Source[U] {
	return sourceFunc[U](func() U { return up(src.Produce()) })
}

func AsAny[T any](src Source[T]) Source[any] {
	return Covary(src, func(v T) any { return v })
}

// SourceOf exposes the right side of p as a Source. It reports false when p
// holds no right value.
func SourceOf[R any](p either.RightProvider[R]) (Source[R], bool) {
	r, ok := p.Get()
	if !ok {
		return nil, false
	}
	return NewProducer(r), true
}

// Consumer only ever takes values in, so a Consumer[Mammal] can serve as a
// Consumer[Cat].
type Consumer[T any] interface {
	Consume(v T) string
}

type InConsumer[T any] struct {
	Value T
}

func (c InConsumer[T]) Consume(v T) string {
	return fmt.Sprintf("class value: [%v] fun var [%v]", c.Value, v)
}

type consumerFunc[T any] func(T) string

func (f consumerFunc[T]) Consume(v T) string { return f(v) }

// Contravary views c as a consumer of the narrower type U.
func Contravary[T, U any](c Consumer[T], up func(U) T) Consumer[U] {
	return consumerFunc[U](func(v U) string { return c.Consume(up(v)) })
}
