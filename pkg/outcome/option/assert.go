package option

import "errors"

// The messages are part of the public contract and stay stable across calls.
var (
	ErrUnwrapNone   = errors.New("Cannot unwrap None")
	ErrExpectedSome = errors.New("Expected a Some, but got a None")
	ErrExpectedNone = errors.New("Expected a None, but got a Some")
)

// AssertSome panics with ErrExpectedSome unless o holds a value. Code after
// a call that returned may treat o as Some.
func AssertSome[T any](o Option[T]) {
	if !o.some {
		panic(ErrExpectedSome)
	}
}

// AssertNone panics with ErrExpectedNone unless o is empty.
func AssertNone[T any](o Option[T]) {
	if o.some {
		panic(ErrExpectedNone)
	}
}
