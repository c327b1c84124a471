package seq

import (
	"cmp"

	"github.com/DavidRaab/website-sub000/option"
)

// Iter pulls every element and calls fn for its side effects.
func Iter[T any](s Seq[T], fn func(T)) {
	e := s.Enumerate()
	for {
		v, ok := e.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// IterIndexed is like Iter but also passes the element's position.
func IterIndexed[T any](s Seq[T], fn func(int, T)) {
	e := s.Enumerate()
	for i := 0; ; i++ {
		v, ok := e.Next()
		if !ok {
			return
		}
		fn(i, v)
	}
}

// ToSlice collects every element into a new slice. An empty sequence yields
// an empty, non-nil slice.
func ToSlice[T any](s Seq[T]) []T {
	result := []T{}
	e := s.Enumerate()
	for {
		v, ok := e.Next()
		if !ok {
			return result
		}
		result = append(result, v)
	}
}

// Fold threads an accumulator through every element from left to right.
func Fold[T, A any](s Seq[T], seed A, fn func(A, T) A) A {
	acc := seed
	e := s.Enumerate()
	for {
		v, ok := e.Next()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// Length counts the elements of s.
func Length[T any](s Seq[T]) int {
	return Fold(s, 0, func(n int, _ T) int { return n + 1 })
}

// Sum adds all elements; an empty sequence sums to zero.
func Sum[N Number](s Seq[N]) N {
	return Fold(s, N(0), func(acc, v N) N { return acc + v })
}

// Reduce combines elements pairwise from the left, using the first element
// as the initial accumulator. It returns None for an empty sequence.
func Reduce[T any](s Seq[T], fn func(T, T) T) option.Option[T] {
	return Fold(s, option.None[T](), func(acc option.Option[T], v T) option.Option[T] {
		if prev, ok := acc.Get(); ok {
			return option.Some(fn(prev, v))
		}
		return option.Some(v)
	})
}

// Min returns the smallest element, or None when s is empty. Among equal
// elements the first one wins.
func Min[T cmp.Ordered](s Seq[T]) option.Option[T] {
	return Reduce(s, func(best, v T) T {
		if v < best {
			return v
		}
		return best
	})
}

// Max returns the largest element, or None when s is empty. Among equal
// elements the first one wins.
func Max[T cmp.Ordered](s Seq[T]) option.Option[T] {
	return Reduce(s, func(best, v T) T {
		if v > best {
			return v
		}
		return best
	})
}

// MinBy returns the element with the smallest key, or None when s is empty.
// key is evaluated once per element.
func MinBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) option.Option[T] {
	return extremeBy(s, key, func(k, best K) bool { return k < best })
}

// MaxBy returns the element with the largest key, or None when s is empty.
// key is evaluated once per element.
func MaxBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) option.Option[T] {
	return extremeBy(s, key, func(k, best K) bool { return k > best })
}

func extremeBy[T any, K cmp.Ordered](s Seq[T], key func(T) K, better func(k, best K) bool) option.Option[T] {
	var (
		best    T
		bestKey K
		found   bool
	)
	e := s.Enumerate()
	for {
		v, ok := e.Next()
		if !ok {
			break
		}
		k := key(v)
		if !found || better(k, bestKey) {
			best, bestKey, found = v, k, true
		}
	}
	return option.FromOk(best, found)
}
