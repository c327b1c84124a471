package seq

import (
	"fmt"
	"slices"
	"strconv"
	"testing"

	"github.com/DavidRaab/website-sub000/option"
)

func TestMap(t *testing.T) {
	got := ToSlice(Map(Of(1, 2, 3), func(v int) string { return fmt.Sprintf("#%d", v) }))
	if !slices.Equal(got, []string{"#1", "#2", "#3"}) {
		t.Errorf("got %v", got)
	}
}

func TestMap_IsLazy(t *testing.T) {
	calls := 0
	s := Map(Range(1, 1000), func(v int) int {
		calls++
		return v
	})
	if calls != 0 {
		t.Fatalf("defining a pipeline must not evaluate it, got %d calls", calls)
	}
	e := s.Enumerate()
	if calls != 0 {
		t.Fatalf("creating an enumerator must not pull, got %d calls", calls)
	}
	e.Next()
	e.Next()
	if calls != 2 {
		t.Errorf("expected 2 calls after 2 pulls, got %d", calls)
	}
}

func TestFilter(t *testing.T) {
	evens := Filter(Range(1, 100), func(x int) bool { return x%2 == 0 })
	if got := ToSlice(Take(evens, 3)); !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestFilter_SinglePullConsumesMany(t *testing.T) {
	pulled := 0
	s := Filter(counting(Range(1, 100), &pulled), func(x int) bool { return x > 50 })
	if v, ok := s.Enumerate().Next(); !ok || v != 51 {
		t.Fatalf("expected 51, got %d %v", v, ok)
	}
	if pulled != 51 {
		t.Errorf("expected 51 upstream pulls, got %d", pulled)
	}
}

func TestFilter_NoMatch(t *testing.T) {
	if got := ToSlice(Filter(Of(1, 3, 5), func(x int) bool { return x%2 == 0 })); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestChoose(t *testing.T) {
	parsed := Choose(Of("1", "x", "3", ""), func(s string) option.Option[int] {
		n, err := strconv.Atoi(s)
		return option.FromOk(n, err == nil)
	})
	if got := ToSlice(parsed); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("got %v, want [1 3]", got)
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"fewer than available", 2, []int{1, 2}},
		{"exactly available", 3, []int{1, 2, 3}},
		{"more than available", 10, []int{1, 2, 3}},
		{"zero", 0, []int{}},
		{"negative clamps to zero", -4, []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToSlice(Take(Of(1, 2, 3), tc.n)); !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTake_NeverPullsPastBound(t *testing.T) {
	pulled := 0
	e := Take(counting(Repeat(1), &pulled), 3).Enumerate()
	for i := 0; i < 10; i++ {
		e.Next()
	}
	if pulled != 3 {
		t.Errorf("expected 3 upstream pulls, got %d", pulled)
	}
}

func TestTake_ZeroNeverEnumeratesUpstream(t *testing.T) {
	created := 0
	up := FromFunc(func() Enumerator[int] {
		created++
		return Of(1).Enumerate()
	})
	ToSlice(Take(up, 0))
	if created != 0 {
		t.Errorf("expected no upstream enumerator, got %d", created)
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"some", 2, []int{3, 4}},
		{"all", 4, []int{}},
		{"more than available", 9, []int{}},
		{"zero", 0, []int{1, 2, 3, 4}},
		{"negative is a no-op", -1, []int{1, 2, 3, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToSlice(Skip(Of(1, 2, 3, 4), tc.n)); !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSkip_IsLazy(t *testing.T) {
	pulled := 0
	s := Skip(counting(Range(1, 10), &pulled), 5)
	_ = s.Enumerate()
	if pulled != 0 {
		t.Errorf("skip must wait for the first pull, got %d pulls", pulled)
	}
}

func TestTakeWhileSkipWhile(t *testing.T) {
	small := func(v int) bool { return v < 4 }
	if got := ToSlice(TakeWhile(Of(1, 2, 5, 3), small)); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("TakeWhile: got %v", got)
	}
	if got := ToSlice(SkipWhile(Of(1, 2, 5, 3), small)); !slices.Equal(got, []int{5, 3}) {
		t.Errorf("SkipWhile: got %v", got)
	}
	if got := ToSlice(TakeWhile(Iterate(1, func(v int) int { return v * 2 }), func(v int) bool { return v < 10 })); !slices.Equal(got, []int{1, 2, 4, 8}) {
		t.Errorf("TakeWhile over infinite: got %v", got)
	}
}

func TestZip(t *testing.T) {
	z := ToSlice(Zip(Of("a", "b", "c"), Range(1, 2)))
	want := []Pair[string, int]{{"a", 1}, {"b", 2}}
	if !slices.Equal(z, want) {
		t.Errorf("got %v, want %v", z, want)
	}
	if got := Length(Zip(Empty[int](), Repeat(1))); got != 0 {
		t.Errorf("zip with empty should be empty, got %d", got)
	}
	if got := Length(Zip(Repeat(1), Of(1, 2, 3))); got != 3 {
		t.Errorf("zip with infinite left should follow shorter right, got %d", got)
	}
}

func TestAppend(t *testing.T) {
	if got := ToSlice(Append(Of(1, 2), Of(3))); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
	if got := ToSlice(Append(Empty[int](), Empty[int]())); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestAppend_SecondCreatedLazily(t *testing.T) {
	created := 0
	second := FromFunc(func() Enumerator[int] {
		created++
		return Of(9).Enumerate()
	})
	s := Append(Of(1, 2), second)
	e := s.Enumerate()
	e.Next()
	e.Next()
	if created != 0 {
		t.Fatalf("second sequence started before first was exhausted")
	}
	if v, ok := e.Next(); !ok || v != 9 {
		t.Errorf("expected 9 from second sequence, got %d %v", v, ok)
	}
	if created != 1 {
		t.Errorf("expected exactly one enumerator of second, got %d", created)
	}
	if got := ToSlice(Take(s, 1)); !slices.Equal(got, []int{1}) || created != 1 {
		t.Errorf("take within first sequence must not start second, created=%d", created)
	}
}

func TestConcat(t *testing.T) {
	got := ToSlice(Concat(Of(1), Empty[int](), Of(2, 3), Singleton(4)))
	if !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("got %v", got)
	}
	if got := ToSlice(Concat[int]()); len(got) != 0 {
		t.Errorf("empty concat: got %v", got)
	}
}

func TestConcatIgnoresLaterWritesToArguments(t *testing.T) {
	parts := []Seq[int]{Of(1), Of(2)}
	c := Concat(parts...)
	before := ToSlice(c)

	parts[1] = Of(99)
	after := ToSlice(c)
	if !slices.Equal(before, []int{1, 2}) || !slices.Equal(after, before) {
		t.Errorf("before=%v after=%v, want both [1 2]", before, after)
	}
}

func TestCollect(t *testing.T) {
	s := Collect(Range(1, 3), func(n int) Seq[int] { return Take(Repeat(n), n) })
	if got := ToSlice(s); !slices.Equal(got, []int{1, 2, 2, 3, 3, 3}) {
		t.Errorf("got %v", got)
	}
	withEmpty := Collect(Of(0, 1, 0, 2), func(n int) Seq[int] { return Range(1, n) })
	if got := ToSlice(withEmpty); !slices.Equal(got, []int{1, 1, 2}) {
		t.Errorf("got %v", got)
	}
}

func TestScan(t *testing.T) {
	got := ToSlice(Scan(Of(1, 2, 3), 0, func(acc, v int) int { return acc + v }))
	if !slices.Equal(got, []int{0, 1, 3, 6}) {
		t.Errorf("got %v, want [0 1 3 6]", got)
	}
	if got := ToSlice(Scan(Empty[int](), 5, func(acc, v int) int { return acc + v })); !slices.Equal(got, []int{5}) {
		t.Errorf("scan of empty should yield seed, got %v", got)
	}
}

func TestTap(t *testing.T) {
	var seen []int
	s := Tap(Of(1, 2, 3), func(v int) { seen = append(seen, v) })
	if got := ToSlice(Take(s, 2)); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v", got)
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("tap saw %v, want [1 2]", seen)
	}
}

func TestIndexed(t *testing.T) {
	got := ToSlice(Indexed(Of("x", "y")))
	want := []Pair[int, string]{{0, "x"}, {1, "y"}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestChunk(t *testing.T) {
	got := ToSlice(Chunk(Range(1, 5), 2))
	if len(got) != 3 || !slices.Equal(got[0], []int{1, 2}) || !slices.Equal(got[2], []int{5}) {
		t.Errorf("got %v", got)
	}
	if got := ToSlice(Chunk(Range(1, 4), 2)); len(got) != 2 {
		t.Errorf("exact multiple should give 2 chunks, got %v", got)
	}
	if got := ToSlice(Chunk(Of(1, 2), 0)); len(got) != 0 {
		t.Errorf("size 0 should be empty, got %v", got)
	}
}

func TestCombinatorsAreReentrant(t *testing.T) {
	pipelines := map[string]Seq[int]{
		"map":     Map(Range(1, 5), func(v int) int { return v * v }),
		"filter":  Filter(Range(1, 10), func(v int) bool { return v%3 == 0 }),
		"take":    Take(Iterate(1, func(v int) int { return v + 2 }), 4),
		"skip":    Skip(Range(1, 6), 2),
		"append":  Append(Range(1, 2), Range(8, 9)),
		"collect": Collect(Range(1, 3), func(n int) Seq[int] { return Range(1, n) }),
		"zip": Map(Zip(Range(1, 4), Skip(Range(1, 9), 3)), func(p Pair[int, int]) int {
			return p.First * p.Second
		}),
		"scan": Scan(Range(1, 4), 1, func(a, v int) int { return a * v }),
	}
	for name, s := range pipelines {
		t.Run(name, func(t *testing.T) {
			first := ToSlice(s)
			second := ToSlice(s)
			if !slices.Equal(first, second) || len(first) == 0 {
				t.Errorf("traversals differ: %v vs %v", first, second)
			}
		})
	}
}
