package result

import "errors"

// The messages are part of the public contract and stay stable across calls.
var (
	ErrUnwrapErr   = errors.New("Cannot unwrap Err")
	ErrExpectedOk  = errors.New("Expected an Ok, but got an Err")
	ErrExpectedErr = errors.New("Expected an Err, but got an Ok")
)

// AssertOk panics with ErrExpectedOk unless r holds a success value. Code
// after a call that returned may treat r as Ok.
func AssertOk[T, E any](r Result[T, E]) {
	if !r.ok {
		panic(ErrExpectedOk)
	}
}

// AssertErr panics with ErrExpectedErr unless r holds an error value.
func AssertErr[T, E any](r Result[T, E]) {
	if r.ok {
		panic(ErrExpectedErr)
	}
}
