package option

import (
	"strconv"
	"testing"
)

func TestSomeAndGet(t *testing.T) {
	t.Parallel()
	o := Some(5)

	v, ok := o.Get()
	if !ok || v != 5 {
		t.Fatalf("expected some with 5, got: some=%v, val=%v", ok, v)
	}
	if !o.IsSome() || o.IsNone() {
		t.Fatalf("expected IsSome=true IsNone=false, got: %v %v", o.IsSome(), o.IsNone())
	}
}

func TestNoneAndZeroValue(t *testing.T) {
	t.Parallel()
	o := None[int]()

	if o.IsSome() || !o.IsNone() {
		t.Fatalf("expected none, got: some=%v", o.IsSome())
	}

	var zero Option[int]
	if zero != o {
		t.Fatalf("zero value should equal None[int]()")
	}
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()
	if Some(7) != Some(7) {
		t.Fatalf("equal payloads should compare equal")
	}
	if Some(7) == Some(8) {
		t.Fatalf("different payloads should not compare equal")
	}
	if Some(0) == None[int]() {
		t.Fatalf("Some(zero) must differ from None")
	}
}

func TestUnwrap_Some(t *testing.T) {
	t.Parallel()
	if got := Some("a").Unwrap(); got != "a" {
		t.Fatalf("expected \"a\", got: %q", got)
	}
}

func TestUnwrap_NonePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		if r != ErrUnwrapNone {
			t.Fatalf("expected panic with ErrUnwrapNone, got: %v", r)
		}
	}()
	None[string]().Unwrap()
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	if got := Some(3).UnwrapOr(9); got != 3 {
		t.Fatalf("expected 3, got: %v", got)
	}
	if got := None[int]().UnwrapOr(9); got != 9 {
		t.Fatalf("expected 9, got: %v", got)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()
	called := false
	got := Some(3).UnwrapOrElse(func() int {
		called = true
		return 9
	})
	if got != 3 || called {
		t.Fatalf("expected 3 without invoking fallback, got: %v, called=%v", got, called)
	}

	if got := None[int]().UnwrapOrElse(func() int { return 9 }); got != 9 {
		t.Fatalf("expected 9, got: %v", got)
	}
}

func TestMap_Some(t *testing.T) {
	t.Parallel()
	o := Map(Some(5), strconv.Itoa)

	v, ok := o.Get()
	if !ok || v != "5" {
		t.Fatalf("expected some with \"5\", got: some=%v, val=%q", ok, v)
	}
}

func TestMap_ShortCircuitOnNone(t *testing.T) {
	t.Parallel()
	calls := 0
	o := Map(None[int](), func(v int) int {
		calls++
		return v + 1
	})

	if !o.IsNone() || calls != 0 {
		t.Fatalf("expected none without invoking fn, got: none=%v, calls=%d", o.IsNone(), calls)
	}
}

func TestMap_Identity(t *testing.T) {
	t.Parallel()
	o := Some(42)
	if Map(o, func(v int) int { return v }) != o {
		t.Fatalf("mapping identity should preserve the container")
	}
}

func TestAndThen_FlattensChains(t *testing.T) {
	t.Parallel()
	half := func(v int) Option[int] {
		if v%2 != 0 {
			return None[int]()
		}
		return Some(v / 2)
	}

	v, ok := AndThen(Some(8), half).Get()
	if !ok || v != 4 {
		t.Fatalf("expected some with 4, got: some=%v, val=%v", ok, v)
	}

	if o := AndThen(Some(7), half); !o.IsNone() {
		t.Fatalf("expected none for odd input")
	}
}

func TestAndThen_ShortCircuitOnNone(t *testing.T) {
	t.Parallel()
	calls := 0
	o := AndThen(None[int](), func(v int) Option[string] {
		calls++
		return Some(strconv.Itoa(v))
	})

	if !o.IsNone() || calls != 0 {
		t.Fatalf("expected none without invoking fn, got: none=%v, calls=%d", o.IsNone(), calls)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()
	var got int
	Some(5).Match(
		func(v int) { got = v },
		func() { t.Fatalf("onNone should not run for Some") })
	if got != 5 {
		t.Fatalf("expected onSome(5), got: %v", got)
	}

	noneRan := false
	None[int]().Match(
		func(int) { t.Fatalf("onSome should not run for None") },
		func() { noneRan = true })
	if !noneRan {
		t.Fatalf("onNone should run for None")
	}
}

func TestFold(t *testing.T) {
	t.Parallel()
	got := Fold(Some(2),
		func(v int) string { return strconv.Itoa(v) },
		func() string { return "missing" })
	if got != "2" {
		t.Fatalf("expected \"2\", got: %q", got)
	}

	got = Fold(None[int](),
		func(v int) string { return strconv.Itoa(v) },
		func() string { return "missing" })
	if got != "missing" {
		t.Fatalf("expected \"missing\", got: %q", got)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	even := func(v int) bool { return v%2 == 0 }

	if o := Some(4).Filter(even); o.IsNone() {
		t.Fatalf("matching value should survive the filter")
	}
	if o := Some(3).Filter(even); o.IsSome() {
		t.Fatalf("non-matching value should become None")
	}
	if o := None[int]().Filter(even); o.IsSome() {
		t.Fatalf("None should stay None")
	}
}

func TestOrAndOrElse(t *testing.T) {
	t.Parallel()
	if got := Some(1).Or(Some(2)); got != Some(1) {
		t.Fatalf("Some wins over the alternative, got: %v", got)
	}
	if got := None[int]().Or(Some(2)); got != Some(2) {
		t.Fatalf("alternative should replace None, got: %v", got)
	}

	called := false
	got := Some(1).OrElse(func() Option[int] {
		called = true
		return Some(2)
	})
	if got != Some(1) || called {
		t.Fatalf("OrElse should not invoke fn for Some, got: %v, called=%v", got, called)
	}
	if got := None[int]().OrElse(func() Option[int] { return Some(2) }); got != Some(2) {
		t.Fatalf("expected Some(2), got: %v", got)
	}
}
