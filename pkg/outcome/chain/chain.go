package chain

import (
	"github.com/ib-77/outcome/pkg/outcome/result"
)

// Chain wraps a result.Result to enable fluent chaining.
type Chain[T, E any] struct {
	res result.Result[T, E]
}

// Start creates a new chain from a result.Result.
func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a success value.
func FromValue[T, E any](value T) Chain[T, E] {
	return Start(result.Ok[T, E](value))
}

// Result returns the underlying result.Result.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a result.Result.
func (c Chain[T, E]) Then(onOk func(T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	v, _ := c.res.Get()
	return Chain[T, E]{res: onOk(v)}
}

// Map transforms the success value without changing its type.
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	return Chain[T, E]{res: result.Map(c.res, onOk)}
}

// MapErr transforms the error value without changing its type.
func (c Chain[T, E]) MapErr(onErr func(E) E) Chain[T, E] {
	return Chain[T, E]{res: result.MapErr(c.res, onErr)}
}

// Ensure triggers side effects for the active variant without changing the
// result. Nil handlers are skipped.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	c.res.Match(
		func(v T) {
			if onOk != nil {
				onOk(v)
			}
		},
		func(e E) {
			if onErr != nil {
				onErr(e)
			}
		})
	return c
}

// Or returns the first chain holding a success; when both failed, the
// receiver's error wins.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And returns the first chain holding an error; when both succeeded, the
// required chain's value wins.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return required
}

func (c Chain[T, E]) UnwrapOr(def T) T {
	return c.res.UnwrapOr(def)
}

// Then switches the chain to a new value type via a fallible step.
func Then[In, Out, E any](c Chain[In, E], onOk func(In) result.Result[Out, E]) Chain[Out, E] {
	return Chain[Out, E]{res: result.AndThen(c.res, onOk)}
}

// Map switches the chain to a new value type via a pure transformation.
func Map[In, Out, E any](c Chain[In, E], onOk func(In) Out) Chain[Out, E] {
	return Chain[Out, E]{res: result.Map(c.res, onOk)}
}

// Finally collapses the chain to a final value via the handler matching the
// active variant.
func Finally[T, E, Out any](c Chain[T, E], onOk func(T) Out, onErr func(E) Out) Out {
	return result.Fold(c.res, onOk, onErr)
}
