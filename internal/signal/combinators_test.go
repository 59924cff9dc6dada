package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](ss []Signal[T]) []T {
	out := []T{}
	for _, s := range ss {
		if v, ok := s.Get(); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestMapAndConstant(t *testing.T) {
	double := func(x int) int { return x * 2 }
	v, ok := Map(double, Constant(21)).Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, Map(double, Nothing[int]()).IsNothing())
}

func TestFilterDropsWhenPredicateHolds(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	assert.True(t, Filter(even, Just(4)).IsNothing(), "even values are dropped")
	v, ok := Filter(even, Just(3)).Get()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.True(t, Filter(even, Nothing[int]()).IsNothing())
}

func TestSinkRunsOnlyOnEvents(t *testing.T) {
	calls := 0
	Sink(func(int) { calls++ }, Just(1))
	Sink(func(int) { calls++ }, Nothing[int]())
	assert.Equal(t, 1, calls)
}

func TestMergeIsLeftBiased(t *testing.T) {
	assert.Equal(t, 1, Merge(Just(1), Just(2)).Or(0))
	assert.Equal(t, 2, Merge(Nothing[int](), Just(2)).Or(0))
	assert.True(t, Merge(Nothing[int](), Nothing[int]()).IsNothing())

	assert.Equal(t, 3, MergeMany(Nothing[int](), Just(3), Just(4)).Or(0))
	assert.True(t, MergeMany[int]().IsNothing(), "empty list reduces to Nothing")
}

func TestJoin(t *testing.T) {
	e, ok := Join(Just("a"), Just(1)).Get()
	require.True(t, ok)
	l, isLeft := e.Left()
	assert.True(t, isLeft)
	assert.Equal(t, "a", l)

	e, ok = Join(Nothing[string](), Just(1)).Get()
	require.True(t, ok)
	r, isRight := e.Right()
	assert.True(t, isRight)
	assert.Equal(t, 1, r)

	assert.True(t, Join(Nothing[string](), Nothing[int]()).IsNothing())
}

func TestFoldPAccumulates(t *testing.T) {
	sum := 0
	add := func(x, acc int) int { return acc + x }
	FoldP(add, &sum, Just(2))
	assert.True(t, FoldP(add, &sum, Nothing[int]()).IsNothing())
	v, _ := FoldP(add, &sum, Just(5)).Get()
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, sum)
}

func TestLatchDensifies(t *testing.T) {
	prev := 0
	assert.Equal(t, 0, Latch(&prev, Nothing[int]()).Or(-1))
	assert.Equal(t, 9, Latch(&prev, Just(9)).Or(-1))
	assert.Equal(t, 9, Latch(&prev, Nothing[int]()).Or(-1))
}

func TestDropRepeatsRunLengthFirsts(t *testing.T) {
	in := []int{1, 1, 2, 2, 2, 1, 3, 3, 1}
	prev := None[int]()
	var out []Signal[int]
	for _, x := range in {
		out = append(out, DropRepeats(&prev, Just(x)))
	}
	assert.Equal(t, []int{1, 2, 1, 3, 1}, collect(out))

	// silent ticks don't reset the memory
	assert.True(t, DropRepeats(&prev, Nothing[int]()).IsNothing())
	assert.True(t, DropRepeats(&prev, Just(1)).IsNothing())
}

func TestMap2(t *testing.T) {
	a, b := 1, 10
	add := func(x, y int) int { return x + y }
	assert.True(t, Map2(add, &a, &b, Nothing[int](), Nothing[int]()).IsNothing())
	assert.Equal(t, 12, Map2(add, &a, &b, Just(2), Nothing[int]()).Or(0))
	assert.Equal(t, 22, Map2(add, &a, &b, Nothing[int](), Just(20)).Or(0))
	assert.Equal(t, 8, Map2(add, &a, &b, Just(3), Just(5)).Or(0))
}

func TestToggle(t *testing.T) {
	state := "off"
	assert.True(t, Toggle("off", "on", &state, Nothing[struct{}]()).IsNothing())
	assert.Equal(t, "on", Toggle("off", "on", &state, Just(struct{}{})).Or(""))
	assert.Equal(t, "off", Toggle("off", "on", &state, Just(struct{}{})).Or(""))
}

func TestMetaUnmeta(t *testing.T) {
	m := Meta(Nothing[int]())
	o, ok := m.Get()
	require.True(t, ok, "meta always fires")
	assert.False(t, o.IsSome())
	assert.True(t, Unmeta(m).IsNothing())

	assert.Equal(t, 4, Unmeta(Meta(Just(4))).Or(0))
	assert.True(t, Unmeta(Nothing[Option[int]]()).IsNothing())
}

func TestTryChoice(t *testing.T) {
	assert.False(t, TryChoice[int]().IsSome())
	v, ok := TryChoice(None[int](), Some(2), Some(3)).Get()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestRecordBounded(t *testing.T) {
	r := NewRecorder[int](3)
	for i := 1; i <= 5; i++ {
		Record(r, Just(i))
	}
	assert.True(t, Record(r, Nothing[int]()).IsNothing())
	assert.Equal(t, []int{5, 4, 3}, r.Items())
	assert.Equal(t, 3, r.Len())

	empty := NewRecorder[int](0)
	items, ok := Record(empty, Just(1)).Get()
	assert.True(t, ok)
	assert.Empty(t, items)
}
