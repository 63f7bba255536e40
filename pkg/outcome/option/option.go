package option

// Option holds either one value of type T (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{
		value: value,
		some:  true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get narrows to the Some payload: the value is meaningful only when the
// second return is true.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the held value or panics with ErrUnwrapNone.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrUnwrapNone)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(onNone func() T) T {
	if !o.some {
		return onNone()
	}
	return o.value
}

// Match invokes exactly one of the two handlers for the active variant.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
	} else {
		onNone()
	}
}

func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

func (o Option[T]) OrElse(onNone func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return onNone()
}

// Map rewraps onSome(value) as a Some; a None passes through and onSome is
// never invoked.
func Map[In, Out any](o Option[In], onSome func(In) Out) Option[Out] {
	if !o.some {
		return None[Out]()
	}
	return Some(onSome(o.value))
}

// AndThen returns onSome(value) directly, so chains never nest containers;
// a None passes through and onSome is never invoked.
func AndThen[In, Out any](o Option[In], onSome func(In) Option[Out]) Option[Out] {
	if !o.some {
		return None[Out]()
	}
	return onSome(o.value)
}

// Fold collapses the container to a single value via the handler matching
// the active variant.
func Fold[In, Out any](o Option[In], onSome func(In) Out, onNone func() Out) Out {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}
