package mdspan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](s Span[T]) []T {
	var out []T
	for _, p := range s.Elems() {
		out = append(out, *p)
	}
	return out
}

func TestSpanAllYieldsRows(t *testing.T) {
	buf := seq(6)
	s := MustSpan(buf, 2, 3)

	var rows [][]int
	for i, row := range s.All() {
		assert.Equal(t, len(rows), i)
		rows = append(rows, collect(row))
	}
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, rows)

	// Restartable: a second pass sees the same rows.
	var again [][]int
	for _, row := range s.All() {
		again = append(again, collect(row))
	}
	assert.Equal(t, rows, again)
}

func TestSpanElemsInnermost(t *testing.T) {
	row := MustSpan(seq(6), 2, 3).Sub(0)
	assert.Equal(t, []int{0, 1, 2}, collect(row))

	var positions []int
	for i := range row.Elems() {
		positions = append(positions, i)
	}
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestSpanAllOnOneDimension(t *testing.T) {
	s := MustSpan(seq(3), 3)
	for range s.All() {
		t.Fatal("one-dimensional span has no sub-spans")
	}
}

func TestSpanIterationStopsEarly(t *testing.T) {
	s := MustSpan(seq(12), 4, 3)

	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	n = 0
	for range s.Elems() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestIterator(t *testing.T) {
	s := MustSpan(seq(6), 2, 3)

	it, end := s.Begin(), s.End()
	assert.Equal(t, 0, it.Pos())
	assert.Equal(t, 2, end.Pos())
	assert.False(t, it.Equal(end))

	assert.True(t, it.Sub().Equal(s.Sub(0)))
	it.Next()
	assert.Equal(t, 3, *it.Sub().Elem(0))
	it.Next()
	assert.True(t, it.Equal(end))

	it.Prev()
	assert.Equal(t, 1, it.Pos())

	steps := 0
	for it := s.Begin(); !it.Equal(s.End()); it.Next() {
		steps++
	}
	assert.Equal(t, 2, steps)
}

func TestIteratorElem(t *testing.T) {
	buf := seq(3)
	s := MustSpan(buf, 3)

	var got []int
	for it := s.Begin(); !it.Equal(s.End()); it.Next() {
		got = append(got, *it.Elem())
	}
	assert.Equal(t, []int{0, 1, 2}, got)

	it := s.Begin()
	*it.Elem() = 7
	assert.Equal(t, 7, buf[0])
}

func TestIteratorEqualityNeedsSameOwner(t *testing.T) {
	buf := seq(8)
	a := MustSpan(buf, 2, 2)
	b := MustSpan(buf[4:], 2, 2)
	assert.False(t, a.Begin().Equal(b.Begin()))

	// Owners compare by start address, so a differently shaped span over
	// the same buffer yields equal iterators.
	c := MustSpan(buf, 2, 4)
	assert.True(t, a.Begin().Equal(c.Begin()))
}

func TestDynSpanAll(t *testing.T) {
	d, err := NewDynSpan(seq(6), 2, 3)
	require.NoError(t, err)

	var rows [][]int
	for _, row := range d.All() {
		var cells []int
		for _, p := range row.Elems() {
			cells = append(cells, *p)
		}
		rows = append(rows, cells)
	}
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, rows)

	row, err := d.Sub(0)
	require.NoError(t, err)
	n := 0
	for _, cell := range row.All() {
		assert.Equal(t, 0, cell.Dims())
		n++
	}
	assert.Equal(t, 3, n)

	var empty DynSpan[int]
	for range empty.All() {
		t.Fatal("empty span yields nothing")
	}
}

func TestWalkVisitsRowMajor(t *testing.T) {
	s := MustSpan(seq(6), 2, 3)

	var tuples [][]int
	var values []int
	s.Walk(func(idx []int, v *int) bool {
		tuples = append(tuples, append([]int(nil), idx...))
		values = append(values, *v)
		return true
	})
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, tuples)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, values)

	visited := 0
	s.Walk(func([]int, *int) bool {
		visited++
		return visited < 4
	})
	assert.Equal(t, 4, visited)

	MustSpan[int](nil, 3).Walk(func([]int, *int) bool {
		t.Fatal("empty span has nothing to walk")
		return false
	})
}
