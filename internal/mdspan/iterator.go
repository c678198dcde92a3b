package mdspan

import "iter"

// Iterator walks the leading dimension of a Span.
//
// Begin yields position 0 and End yields the position one past the last
// row; End is a sentinel and must not be dereferenced. An iterator only
// reads its owner's buffer when dereferenced, so it stays valid as long as
// that buffer does.
type Iterator[T any] struct {
	owner Span[T]
	pos   int
}

// Begin returns an iterator at the first row of s.
func (s Span[T]) Begin() Iterator[T] {
	return Iterator[T]{owner: s}
}

// End returns the past-the-end iterator of s.
func (s Span[T]) End() Iterator[T] {
	return Iterator[T]{owner: s, pos: s.Extent(0)}
}

// Pos returns the current position along the leading dimension.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Next advances the iterator by one row.
func (it *Iterator[T]) Next() {
	it.pos++
}

// Prev moves the iterator back by one row.
func (it *Iterator[T]) Prev() {
	it.pos--
}

// Sub dereferences the iterator into the sub-span at its position.
func (it Iterator[T]) Sub() Span[T] {
	return it.owner.Sub(it.pos)
}

// Elem dereferences the iterator into the element at its position.
// The owner must be one-dimensional.
func (it Iterator[T]) Elem() *T {
	return it.owner.Elem(it.pos)
}

// Equal reports whether both iterators have equal owners and positions.
// Owners are compared with Span.Equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.owner.Equal(other.owner) && it.pos == other.pos
}

// All yields each sub-span along the leading dimension with its index.
// A one-dimensional span has no sub-spans; range over Elems instead.
func (s Span[T]) All() iter.Seq2[int, Span[T]] {
	return func(yield func(int, Span[T]) bool) {
		if len(s.shape) < 2 {
			return
		}
		for it, end := s.Begin(), s.End(); !it.Equal(end); it.Next() {
			if !yield(it.Pos(), it.Sub()) {
				return
			}
		}
	}
}

// Elems yields every element of s in row-major order with its flat
// position. For a one-dimensional span this is the leading dimension.
// Iteration stops early at the end of the bound buffer.
func (s Span[T]) Elems() iter.Seq2[int, *T] {
	return elems(s.data, s.Len())
}

// All yields each sub-span along the leading dimension with its index.
func (d DynSpan[T]) All() iter.Seq2[int, DynSpan[T]] {
	return func(yield func(int, DynSpan[T]) bool) {
		if len(d.shape) == 0 {
			return
		}
		for i := range d.shape[0] {
			sub, err := d.Sub(i)
			if err != nil || !yield(i, sub) {
				return
			}
		}
	}
}

// Elems yields every element of d in row-major order with its flat position.
func (d DynSpan[T]) Elems() iter.Seq2[int, *T] {
	return elems(d.data, d.Len())
}

func elems[T any](data []T, n int) iter.Seq2[int, *T] {
	n = min(n, len(data))
	return func(yield func(int, *T) bool) {
		for i := range n {
			if !yield(i, &data[i]) {
				return
			}
		}
	}
}
