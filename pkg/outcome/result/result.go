package result

import (
	"github.com/ib-77/outcome/pkg/outcome/option"
)

// Result holds either one success value of type T (Ok) or one error value
// of type E (Err). The zero value is Err with a zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get narrows to the Ok payload: the value is meaningful only when the
// second return is true.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// GetErr narrows to the Err payload.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

// Unwrap returns the success value or panics with ErrUnwrapErr.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(ErrUnwrapErr)
	}
	return r.value
}

// UnwrapErr returns the error value or panics with ErrExpectedErr.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(ErrExpectedErr)
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

func (r Result[T, E]) UnwrapOrElse(onErr func(E) T) T {
	if !r.ok {
		return onErr(r.err)
	}
	return r.value
}

// Match invokes exactly one of the two handlers for the active variant.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// ToOption discards the error side: Ok becomes Some, Err becomes None.
func (r Result[T, E]) ToOption() option.Option[T] {
	if !r.ok {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// FromOption converts Some into Ok and None into Err carrying errValue.
func FromOption[T, E any](o option.Option[T], errValue E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T, E](errValue)
}

// Map transforms the success value; an Err passes through with its error
// intact and onOk is never invoked.
func Map[In, Out, E any](r Result[In, E], onOk func(In) Out) Result[Out, E] {
	if !r.ok {
		return Err[Out, E](r.err)
	}
	return Ok[Out, E](onOk(r.value))
}

// MapErr transforms the error value; an Ok passes through and onErr is
// never invoked.
func MapErr[T, In, Out any](r Result[T, In], onErr func(In) Out) Result[T, Out] {
	if r.ok {
		return Ok[T, Out](r.value)
	}
	return Err[T, Out](onErr(r.err))
}

// MapBoth transforms whichever side is active; it is equivalent to Map
// followed by MapErr in either order.
func MapBoth[In, Out, EIn, EOut any](r Result[In, EIn],
	onOk func(In) Out, onErr func(EIn) EOut) Result[Out, EOut] {

	if r.ok {
		return Ok[Out, EOut](onOk(r.value))
	}
	return Err[Out, EOut](onErr(r.err))
}

// AndThen chains a fallible step on the success path; an Err passes through
// with its original error value and onOk is never invoked.
func AndThen[In, Out, E any](r Result[In, E], onOk func(In) Result[Out, E]) Result[Out, E] {
	if !r.ok {
		return Err[Out, E](r.err)
	}
	return onOk(r.value)
}

// And returns other when r is Ok, preserving r's error otherwise.
func And[In, Out, E any](r Result[In, E], other Result[Out, E]) Result[Out, E] {
	if !r.ok {
		return Err[Out, E](r.err)
	}
	return other
}

// Fold collapses the container to a single value via the handler matching
// the active variant.
func Fold[T, E, Out any](r Result[T, E], onOk func(T) Out, onErr func(E) Out) Out {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}
