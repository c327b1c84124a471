package seq

import (
	"math"

	"github.com/DavidRaab/website-sub000/errors"
)

// Number is the set of types Range and RangeStep count over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Empty returns a Seq with no elements.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// FromSlice creates a Seq over values. The slice is not copied; only the
// read position belongs to each Enumerator, so later writes to the slice are
// visible to later traversals.
func FromSlice[T any](values []T) Seq[T] {
	return Seq[T]{
		create: func() Enumerator[T] {
			return &sliceEnum[T]{items: values}
		},
	}
}

// Of creates a Seq over the given values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// Singleton returns a Seq with exactly one element.
func Singleton[T any](value T) Seq[T] {
	return FromSlice([]T{value})
}

// Unfold builds a Seq from a seed and a step function. Each pull calls step
// with the current state; ok=false ends the sequence, otherwise value is
// yielded and next becomes the new state. Every Enumerator starts again from
// seed.
func Unfold[S, T any](seed S, step func(state S) (value T, next S, ok bool)) Seq[T] {
	return Seq[T]{
		create: func() Enumerator[T] {
			return &unfoldEnum[S, T]{state: seed, step: step}
		},
	}
}

type rangeState[N Number] struct {
	next N
	live bool
}

// Range yields start, start+1, ..., stop. It is empty when start > stop and
// stops cleanly at the numeric limit of N instead of wrapping around.
func Range[N Number](start, stop N) Seq[N] {
	return stepRange(start, 1, stop)
}

// RangeStep yields start, start+step, ... for as long as values do not
// cross stop in the direction of step. stop itself is included when hit
// exactly. A zero or NaN step is rejected with an INVALID_ARGUMENT error.
//
// For floating point N the i-th element is computed as start+i*step rather
// than by repeated addition, and a stop that lies a whole number of steps
// from start is included even when that division is inexact in binary:
// RangeStep(0.0, 0.1, 0.3) yields 0, 0.1, 0.2, 0.3.
func RangeStep[N Number](start, step, stop N) (Seq[N], error) {
	if step == 0 {
		return Seq[N]{}, errors.InvalidArgument("step", step, "step must not be zero")
	}
	if isNaN(step) {
		return Seq[N]{}, errors.InvalidArgument("step", step, "step must be a number")
	}
	return stepRange(start, step, stop), nil
}

// MustRangeStep is like RangeStep but panics on an invalid step.
func MustRangeStep[N Number](start, step, stop N) Seq[N] {
	s, err := RangeStep(start, step, stop)
	if err != nil {
		panic(err)
	}
	return s
}

func stepRange[N Number](start, step, stop N) Seq[N] {
	if isFloat[N]() {
		return floatRange(start, step, stop)
	}
	ascending := step > 0
	return Unfold(rangeState[N]{next: start, live: true}, func(st rangeState[N]) (N, rangeState[N], bool) {
		v := st.next
		if !st.live || (ascending && v > stop) || (!ascending && v < stop) {
			var zero N
			return zero, rangeState[N]{}, false
		}
		n := v + step
		// n failing to move past v means overflow or float precision loss.
		if (ascending && n <= v) || (!ascending && n >= v) {
			return v, rangeState[N]{}, true
		}
		return v, rangeState[N]{next: n, live: true}, true
	})
}

// floatTolerance is the relative slack allowed when counting how many
// steps fit between start and stop.
const floatTolerance = 1e-9

type floatRangeState[N Number] struct {
	i    int
	prev N
}

func floatRange[N Number](start, step, stop N) Seq[N] {
	span := (float64(stop) - float64(start)) / float64(step)
	last := math.Floor(span + math.Abs(span)*floatTolerance)
	if math.IsNaN(last) || last < 0 {
		return Empty[N]()
	}
	ascending := step > 0
	return Unfold(floatRangeState[N]{}, func(st floatRangeState[N]) (N, floatRangeState[N], bool) {
		if float64(st.i) > last {
			var zero N
			return zero, st, false
		}
		v := start + N(st.i)*step
		// Only the last element can overshoot, and only by rounding.
		if (ascending && v > stop) || (!ascending && v < stop) {
			v = stop
		}
		// No progress means the step is below the precision of v.
		if st.i > 0 && ((ascending && v <= st.prev) || (!ascending && v >= st.prev)) {
			var zero N
			return zero, st, false
		}
		return v, floatRangeState[N]{i: st.i + 1, prev: v}, true
	})
}

func isFloat[N Number]() bool {
	var one N = 1
	return one/(one+one) != 0
}

func isNaN[N Number](v N) bool {
	return v != v
}

// Repeat yields value forever.
func Repeat[T any](value T) Seq[T] {
	return Unfold(struct{}{}, func(s struct{}) (T, struct{}, bool) {
		return value, s, true
	})
}

// Infinite yields gen(0), gen(1), gen(2), ... forever. gen is called once per
// pull, never ahead of demand.
func Infinite[T any](gen func(i int) T) Seq[T] {
	return Unfold(0, func(i int) (T, int, bool) {
		return gen(i), i + 1, true
	})
}

// Iterate yields seed, f(seed), f(f(seed)), ... forever.
func Iterate[T any](seed T, f func(T) T) Seq[T] {
	return Seq[T]{
		create: func() Enumerator[T] {
			return &iterateEnum[T]{cur: seed, f: f}
		},
	}
}

// --- Enumerators ---

type sliceEnum[T any] struct {
	items []T
	index int
}

func (e *sliceEnum[T]) Next() (T, bool) {
	if e.index >= len(e.items) {
		var zero T
		return zero, false
	}
	v := e.items[e.index]
	e.index++
	return v, true
}

type unfoldEnum[S, T any] struct {
	state S
	step  func(S) (T, S, bool)
	done  bool
}

func (e *unfoldEnum[S, T]) Next() (T, bool) {
	if e.done {
		var zero T
		return zero, false
	}
	v, next, ok := e.step(e.state)
	if !ok {
		e.done = true
		var zero T
		return zero, false
	}
	e.state = next
	return v, true
}

type iterateEnum[T any] struct {
	cur     T
	f       func(T) T
	started bool
}

func (e *iterateEnum[T]) Next() (T, bool) {
	if e.started {
		e.cur = e.f(e.cur)
	}
	e.started = true
	return e.cur, true
}
