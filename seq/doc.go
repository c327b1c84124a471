// Package seq provides lazy, composable and re-traversable sequences.
//
// A Seq is an immutable factory of Enumerators. Nothing is computed when a
// pipeline is defined; work happens one element at a time when a consumer
// pulls. Every consumer call starts a brand-new Enumerator, so the same Seq
// can be traversed any number of times and by independent goroutines with
// no state leaking between traversals.
//
// # Building blocks
//
// Sources:
//
//   - FromSlice, Of, Empty, Singleton: finite sources
//   - Range, RangeStep: inclusive numeric ranges
//   - Unfold: general state-machine constructor
//   - Repeat, Infinite, Iterate: infinite sources (bound them with Take)
//
// Combinators (each returns a new Seq and consumes nothing):
//
//   - Map, Filter, Choose, Collect, Scan, Tap, Indexed
//   - Take, Skip, TakeWhile, SkipWhile, Chunk
//   - Zip, Append, Concat
//
// Consumers (drive their own private Enumerator):
//
//   - Iter, ToSlice, Fold, Length, Sum, Reduce
//   - FoldK and FoldCont for folds that may stop early
//   - TryPick, TryFind, Exists, ForAll, Contains, Item, Head
//   - Min, Max, MinBy, MaxBy
//
// # Usage
//
//	evens := seq.Filter(seq.Range(1, 100), func(x int) bool { return x%2 == 0 })
//	first := seq.ToSlice(seq.Take(evens, 3)) // [2 4 6]
//
//	sum := seq.FoldK(seq.Of(5, 10, 15, 10, 5), 0, func(acc, x int) seq.Step[int] {
//	    if x < 11 {
//	        return seq.Continue(acc + x)
//	    }
//	    return seq.Stop(acc)
//	}) // 15
//
// A panic raised by a user function propagates out of the pull that called
// it. The Enumerator involved is left in an undefined state and the pipeline
// should be discarded; the Seq itself stays valid.
package seq
