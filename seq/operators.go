package seq

import (
	"slices"

	"github.com/DavidRaab/website-sub000/option"
)

// Map transforms each element using fn.
func Map[A, B any](s Seq[A], fn func(A) B) Seq[B] {
	return Seq[B]{
		create: func() Enumerator[B] {
			return &mapEnum[A, B]{source: s.Enumerate(), fn: fn}
		},
	}
}

// Filter keeps only elements satisfying predicate. A single pull may consume
// any number of upstream elements.
func Filter[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return Seq[T]{
		create: func() Enumerator[T] {
			return &filterEnum[T]{source: s.Enumerate(), fn: predicate}
		},
	}
}

// Choose applies fn to each element and yields the contents of every Some
// result, skipping None.
func Choose[A, B any](s Seq[A], fn func(A) option.Option[B]) Seq[B] {
	return Seq[B]{
		create: func() Enumerator[B] {
			return &chooseEnum[A, B]{source: s.Enumerate(), fn: fn}
		},
	}
}

// Take yields at most n elements. Once n elements have been produced the
// upstream is never pulled again. n <= 0 yields nothing.
func Take[T any](s Seq[T], n int) Seq[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return Seq[T]{
		create: func() Enumerator[T] {
			return &takeEnum[T]{source: s.Enumerate(), remaining: n}
		},
	}
}

// Skip discards the first n elements. n <= 0 returns s unchanged.
func Skip[T any](s Seq[T], n int) Seq[T] {
	if n <= 0 {
		return s
	}
	return Seq[T]{
		create: func() Enumerator[T] {
			return &skipEnum[T]{source: s.Enumerate(), n: n}
		},
	}
}

// TakeWhile yields elements until predicate first returns false.
func TakeWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return Seq[T]{
		create: func() Enumerator[T] {
			return &takeWhileEnum[T]{source: s.Enumerate(), fn: predicate}
		},
	}
}

// SkipWhile discards elements while predicate holds, then yields the rest.
func SkipWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return Seq[T]{
		create: func() Enumerator[T] {
			return &skipWhileEnum[T]{source: s.Enumerate(), fn: predicate}
		},
	}
}

// Zip pairs elements of a and b positionally and ends as soon as either ends.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return Seq[Pair[A, B]]{
		create: func() Enumerator[Pair[A, B]] {
			return &zipEnum[A, B]{a: a.Enumerate(), b: b.Enumerate()}
		},
	}
}

// Append yields all of a followed by all of b. The Enumerator for b is only
// created once a is exhausted.
func Append[T any](a, b Seq[T]) Seq[T] {
	return Concat(a, b)
}

// Concat joins sequences end to end. The argument slice is copied, so
// later writes to it do not change the result.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	seqs = slices.Clone(seqs)
	return Seq[T]{
		create: func() Enumerator[T] {
			return &concatEnum[T]{seqs: seqs}
		},
	}
}

// Collect maps each element to a Seq and flattens the results in order.
func Collect[A, B any](s Seq[A], fn func(A) Seq[B]) Seq[B] {
	return Seq[B]{
		create: func() Enumerator[B] {
			return &collectEnum[A, B]{source: s.Enumerate(), fn: fn}
		},
	}
}

// Scan yields seed followed by every intermediate accumulator of a left fold.
func Scan[T, A any](s Seq[T], seed A, fn func(A, T) A) Seq[A] {
	return Seq[A]{
		create: func() Enumerator[A] {
			return &scanEnum[T, A]{source: s.Enumerate(), acc: seed, fn: fn}
		},
	}
}

// Tap calls fn for each element as it is pulled and passes it through
// unchanged.
func Tap[T any](s Seq[T], fn func(T)) Seq[T] {
	return Map(s, func(v T) T {
		fn(v)
		return v
	})
}

// Indexed pairs each element with its zero-based position.
func Indexed[T any](s Seq[T]) Seq[Pair[int, T]] {
	return Seq[Pair[int, T]]{
		create: func() Enumerator[Pair[int, T]] {
			return &indexedEnum[T]{source: s.Enumerate()}
		},
	}
}

// Chunk groups consecutive elements into slices of length size; the last
// chunk may be shorter. Every chunk is a newly allocated slice. size <= 0
// yields nothing.
func Chunk[T any](s Seq[T], size int) Seq[[]T] {
	if size <= 0 {
		return Empty[[]T]()
	}
	return Seq[[]T]{
		create: func() Enumerator[[]T] {
			return &chunkEnum[T]{source: s.Enumerate(), size: size}
		},
	}
}

// --- Enumerator implementations ---

type mapEnum[A, B any] struct {
	source Enumerator[A]
	fn     func(A) B
	done   bool
}

func (e *mapEnum[A, B]) Next() (B, bool) {
	if !e.done {
		if v, ok := e.source.Next(); ok {
			return e.fn(v), true
		}
		e.done = true
	}
	var zero B
	return zero, false
}

type filterEnum[T any] struct {
	source Enumerator[T]
	fn     func(T) bool
	done   bool
}

func (e *filterEnum[T]) Next() (T, bool) {
	for !e.done {
		v, ok := e.source.Next()
		if !ok {
			e.done = true
			break
		}
		if e.fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

type chooseEnum[A, B any] struct {
	source Enumerator[A]
	fn     func(A) option.Option[B]
	done   bool
}

func (e *chooseEnum[A, B]) Next() (B, bool) {
	for !e.done {
		v, ok := e.source.Next()
		if !ok {
			e.done = true
			break
		}
		if out, some := e.fn(v).Get(); some {
			return out, true
		}
	}
	var zero B
	return zero, false
}

type takeEnum[T any] struct {
	source    Enumerator[T]
	remaining int
}

func (e *takeEnum[T]) Next() (T, bool) {
	if e.remaining > 0 {
		if v, ok := e.source.Next(); ok {
			e.remaining--
			return v, true
		}
		e.remaining = 0
	}
	var zero T
	return zero, false
}

type skipEnum[T any] struct {
	source Enumerator[T]
	n      int
	done   bool
}

func (e *skipEnum[T]) Next() (T, bool) {
	for !e.done && e.n > 0 {
		if _, ok := e.source.Next(); !ok {
			e.done = true
		}
		e.n--
	}
	if !e.done {
		if v, ok := e.source.Next(); ok {
			return v, true
		}
		e.done = true
	}
	var zero T
	return zero, false
}

type takeWhileEnum[T any] struct {
	source Enumerator[T]
	fn     func(T) bool
	done   bool
}

func (e *takeWhileEnum[T]) Next() (T, bool) {
	if !e.done {
		if v, ok := e.source.Next(); ok && e.fn(v) {
			return v, true
		}
		e.done = true
	}
	var zero T
	return zero, false
}

type skipWhileEnum[T any] struct {
	source  Enumerator[T]
	fn      func(T) bool
	skipped bool
	done    bool
}

func (e *skipWhileEnum[T]) Next() (T, bool) {
	for !e.done {
		v, ok := e.source.Next()
		if !ok {
			e.done = true
			break
		}
		if e.skipped || !e.fn(v) {
			e.skipped = true
			return v, true
		}
	}
	var zero T
	return zero, false
}

type zipEnum[A, B any] struct {
	a    Enumerator[A]
	b    Enumerator[B]
	done bool
}

func (e *zipEnum[A, B]) Next() (Pair[A, B], bool) {
	if !e.done {
		va, ok := e.a.Next()
		if ok {
			if vb, ok := e.b.Next(); ok {
				return Pair[A, B]{First: va, Second: vb}, true
			}
		}
		e.done = true
	}
	return Pair[A, B]{}, false
}

type concatEnum[T any] struct {
	seqs    []Seq[T]
	current Enumerator[T]
	index   int
}

func (e *concatEnum[T]) Next() (T, bool) {
	for e.index < len(e.seqs) {
		if e.current == nil {
			e.current = e.seqs[e.index].Enumerate()
		}
		if v, ok := e.current.Next(); ok {
			return v, true
		}
		e.current = nil
		e.index++
	}
	var zero T
	return zero, false
}

type collectEnum[A, B any] struct {
	source  Enumerator[A]
	fn      func(A) Seq[B]
	current Enumerator[B]
	done    bool
}

func (e *collectEnum[A, B]) Next() (B, bool) {
	for !e.done {
		if e.current != nil {
			if v, ok := e.current.Next(); ok {
				return v, true
			}
			e.current = nil
		}
		in, ok := e.source.Next()
		if !ok {
			e.done = true
			break
		}
		e.current = e.fn(in).Enumerate()
	}
	var zero B
	return zero, false
}

type scanEnum[T, A any] struct {
	source  Enumerator[T]
	acc     A
	fn      func(A, T) A
	started bool
	done    bool
}

func (e *scanEnum[T, A]) Next() (A, bool) {
	if !e.started {
		e.started = true
		return e.acc, true
	}
	if !e.done {
		if v, ok := e.source.Next(); ok {
			e.acc = e.fn(e.acc, v)
			return e.acc, true
		}
		e.done = true
	}
	var zero A
	return zero, false
}

type indexedEnum[T any] struct {
	source Enumerator[T]
	index  int
	done   bool
}

func (e *indexedEnum[T]) Next() (Pair[int, T], bool) {
	if !e.done {
		if v, ok := e.source.Next(); ok {
			p := Pair[int, T]{First: e.index, Second: v}
			e.index++
			return p, true
		}
		e.done = true
	}
	return Pair[int, T]{}, false
}

type chunkEnum[T any] struct {
	source Enumerator[T]
	size   int
	done   bool
}

func (e *chunkEnum[T]) Next() ([]T, bool) {
	if e.done {
		return nil, false
	}
	chunk := make([]T, 0, min(e.size, 64))
	for len(chunk) < e.size {
		v, ok := e.source.Next()
		if !ok {
			e.done = true
			break
		}
		chunk = append(chunk, v)
	}
	if len(chunk) == 0 {
		return nil, false
	}
	return chunk, true
}
