package seq

import "github.com/DavidRaab/website-sub000/option"

// Step is the outcome of one FoldK step: either continue with a new
// accumulator or stop with a final result.
type Step[A any] struct {
	value A
	stop  bool
}

// Continue keeps folding with acc as the new accumulator.
func Continue[A any](acc A) Step[A] {
	return Step[A]{value: acc}
}

// Stop ends the fold immediately with result. No further element is pulled.
func Stop[A any](result A) Step[A] {
	return Step[A]{value: result, stop: true}
}

// FoldK is a fold that can exit early. For each element fn decides whether
// to Continue with a new accumulator or Stop with a result. When the
// sequence runs out, the last accumulator (or seed) is returned. The fold
// runs in a loop, so its stack depth does not grow with the sequence.
func FoldK[T, A any](s Seq[T], seed A, fn func(acc A, v T) Step[A]) A {
	acc := seed
	e := s.Enumerate()
	for {
		v, ok := e.Next()
		if !ok {
			return acc
		}
		step := fn(acc, v)
		if step.stop {
			return step.value
		}
		acc = step.value
	}
}

// FoldCont is a continuation-passing fold. fn receives the accumulator, the
// element and a continuation k; returning k(next) continues the traversal
// with next, returning any other value without calling k stops it.
//
// k must be called in tail position (its result returned unchanged). It
// only records the next accumulator and returns a placeholder, and the
// traversal itself is driven by a loop, so stack depth stays constant.
func FoldCont[T, A any](s Seq[T], seed A, fn func(acc A, v T, k func(A) A) A) A {
	var (
		next      A
		continued bool
	)
	k := func(a A) A {
		next, continued = a, true
		var placeholder A
		return placeholder
	}
	acc := seed
	e := s.Enumerate()
	for {
		v, ok := e.Next()
		if !ok {
			return acc
		}
		continued = false
		result := fn(acc, v, k)
		if !continued {
			return result
		}
		acc = next
	}
}

// TryPick returns the first Some produced by fn, or None. Elements after
// the first match are never pulled.
func TryPick[T, U any](s Seq[T], fn func(T) option.Option[U]) option.Option[U] {
	return FoldK(s, option.None[U](), func(acc option.Option[U], v T) Step[option.Option[U]] {
		if picked := fn(v); picked.IsSome() {
			return Stop(picked)
		}
		return Continue(acc)
	})
}

// TryFind returns the first element satisfying predicate, or None.
func TryFind[T any](s Seq[T], predicate func(T) bool) option.Option[T] {
	return TryPick(s, func(v T) option.Option[T] {
		if predicate(v) {
			return option.Some(v)
		}
		return option.None[T]()
	})
}

// Exists reports whether any element satisfies predicate, stopping at the
// first that does.
func Exists[T any](s Seq[T], predicate func(T) bool) bool {
	return FoldK(s, false, func(_ bool, v T) Step[bool] {
		if predicate(v) {
			return Stop(true)
		}
		return Continue(false)
	})
}

// ForAll reports whether every element satisfies predicate, stopping at the
// first that does not. It is true for an empty sequence.
func ForAll[T any](s Seq[T], predicate func(T) bool) bool {
	return FoldK(s, true, func(_ bool, v T) Step[bool] {
		if !predicate(v) {
			return Stop(false)
		}
		return Continue(true)
	})
}

// Contains reports whether target occurs in s.
func Contains[T comparable](s Seq[T], target T) bool {
	return Exists(s, func(v T) bool { return v == target })
}

// Item returns the element at zero-based index idx, or None when s is
// shorter or idx is negative. Exactly idx+1 elements are pulled on success.
func Item[T any](s Seq[T], idx int) option.Option[T] {
	if idx < 0 {
		return option.None[T]()
	}
	return TryPick(Indexed(s), func(p Pair[int, T]) option.Option[T] {
		if p.First == idx {
			return option.Some(p.Second)
		}
		return option.None[T]()
	})
}

// Head returns the first element, or None for an empty sequence.
func Head[T any](s Seq[T]) option.Option[T] {
	return Item(s, 0)
}
