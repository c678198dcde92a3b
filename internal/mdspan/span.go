package mdspan

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/born-ml/mdspan/internal/shape"
)

// Span is a view over a row-major buffer whose shape is fixed when the span
// is defined. Strides are derived from the shape on demand.
//
// Span does not know where its buffer ends; the shape is never checked
// against len(data) at construction. Callers must bind a buffer holding at
// least Len() elements.
type Span[T any] struct {
	data  []T
	shape shape.Shape
}

// NewSpan defines a span of the given shape over data.
// data may be nil to define an empty span that is bound later with Reset.
func NewSpan[T any](data []T, dims ...int) (Span[T], error) {
	sh := shape.Shape(dims).Clone()
	// Bounding the element count by MaxInt keeps every offset representable.
	if err := sh.Fits(math.MaxInt); err != nil {
		return Span[T]{}, fmt.Errorf("new span: %w", err)
	}
	return Span[T]{data: data, shape: sh}, nil
}

// MustSpan is like NewSpan but panics on an invalid shape.
// Intended for shapes written as literals.
func MustSpan[T any](data []T, dims ...int) Span[T] {
	s, err := NewSpan(data, dims...)
	if err != nil {
		panic(err)
	}
	return s
}

// Reset binds the span to a new buffer start, keeping its shape.
// Passing nil makes the span empty.
func (s *Span[T]) Reset(data []T) {
	s.data = data
}

// Data returns the bound buffer, starting at the span's first element.
func (s Span[T]) Data() []T {
	return s.data
}

// Shape returns a copy of the span's extents.
func (s Span[T]) Shape() shape.Shape {
	return s.shape.Clone()
}

// Dims returns the number of dimensions.
func (s Span[T]) Dims() int {
	return len(s.shape)
}

// Extent returns the size of dimension i.
func (s Span[T]) Extent(i int) int {
	return s.shape[i]
}

// Stride returns the element stride of dimension i.
func (s Span[T]) Stride(i int) int {
	return s.shape.StrideOf(i)
}

// Len returns the number of elements addressed by the span.
func (s Span[T]) Len() int {
	return s.shape.NumElements()
}

// Empty reports whether no buffer is bound.
func (s Span[T]) Empty() bool {
	return s.data == nil
}

// At returns a pointer to the element at the given indices.
//
// Every index is validated against its dimension, leftmost first, before any
// offset is computed. The index count must match Dims.
func (s Span[T]) At(indices ...int) (*T, error) {
	if s.Empty() {
		return nil, fmt.Errorf("%w: span has no buffer", ErrInvalidState)
	}
	if err := s.shape.CheckIndex(indices...); err != nil {
		return nil, err
	}

	offset := s.shape.Offset(indices...)
	if uint(offset) >= uint(len(s.data)) {
		return nil, &RangeError{Dim: -1, Extent: len(s.data), Index: offset}
	}
	return &s.data[offset], nil
}

// Sub returns the (Dims-1)-dimensional span at index i of the leading
// dimension. The index is not validated.
//
// Panics if the span is one-dimensional; use Elem instead.
func (s Span[T]) Sub(i int) Span[T] {
	if len(s.shape) < 2 {
		panic(fmt.Sprintf("mdspan: Sub on %d-dimensional span, use Elem", len(s.shape)))
	}
	return Span[T]{
		data:  s.data[i*s.shape.StrideOf(0):],
		shape: s.shape.Drop(),
	}
}

// Elem returns a pointer to element i of a one-dimensional span.
// The index is not validated against the extent.
//
// Panics if the span has more than one dimension; use Sub instead.
func (s Span[T]) Elem(i int) *T {
	if len(s.shape) != 1 {
		panic(fmt.Sprintf("mdspan: Elem on %d-dimensional span, use Sub", len(s.shape)))
	}
	return &s.data[i]
}

// Equal reports whether both spans start at the same address.
//
// Shapes are deliberately ignored: two spans over the same start compare
// equal even when their dimensionality differs. Use Shape().Equal to
// compare layouts.
func (s Span[T]) Equal(other Span[T]) bool {
	return unsafe.SliceData(s.data) == unsafe.SliceData(other.data)
}

// String returns a short description such as "Span[2x3]".
func (s Span[T]) String() string {
	if s.Empty() {
		return fmt.Sprintf("Span%v(empty)", s.shape)
	}
	return fmt.Sprintf("Span%v", s.shape)
}
