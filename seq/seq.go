package seq

import "iter"

// Enumerator provides single-use, pull-based access to the elements of a Seq.
//
// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted. After the first false every further call returns
// false.
type Enumerator[T any] interface {
	Next() (T, bool)
}

// EnumeratorFunc adapts a plain function to the Enumerator interface.
type EnumeratorFunc[T any] func() (T, bool)

// Next calls f.
func (f EnumeratorFunc[T]) Next() (T, bool) { return f() }

// Seq is a lazy, reusable sequence. It holds no traversal state; each call
// to Enumerate creates a fresh Enumerator. The zero value is an empty Seq.
type Seq[T any] struct {
	create func() Enumerator[T]
}

// Pair holds two related values, as produced by Zip and Indexed.
type Pair[A, B any] struct {
	First  A
	Second B
}

// FromFunc creates a Seq from a factory. The factory must return a new,
// independent Enumerator on every call.
func FromFunc[T any](create func() Enumerator[T]) Seq[T] {
	return Seq[T]{create: create}
}

// Enumerate starts a new traversal. The returned Enumerator must not be
// shared between goroutines.
func (s Seq[T]) Enumerate() Enumerator[T] {
	if s.create == nil {
		return emptyEnum[T]{}
	}
	if e := s.create(); e != nil {
		return e
	}
	return emptyEnum[T]{}
}

// Values adapts s to a range-over-func iterator. Each range loop starts a
// new traversal; breaking out of the loop stops pulling.
func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		e := s.Enumerate()
		for {
			v, ok := e.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

type emptyEnum[T any] struct{}

func (emptyEnum[T]) Next() (T, bool) {
	var zero T
	return zero, false
}
