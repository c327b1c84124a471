// Package option provides a generic Option type for values that may be absent.
//
// The zero value of Option is None, so Options can be returned and embedded
// without explicit initialization. Sequence consumers that may find nothing
// (Min, Max, Item, TryPick) return an Option instead of a (value, ok) pair so
// results can be chained.
package option

import "fmt"

// Option holds either a value of type T (Some) or nothing (None).
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from Go's (value, ok) idiom.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// MustGet returns the value or panics when the Option is None.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("option: MustGet on None")
	}
	return o.value
}

// GetOrElse returns the value when present, otherwise fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrElse returns o when it is Some, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// Filter keeps the value only when predicate holds.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies fn to the value when present.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains o with an Option-returning function.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}
