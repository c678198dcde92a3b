package mdspan

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/mdspan/internal/shape"
)

// DynSpan is a view whose shape is chosen at construction and may be
// replaced with Reshape. Unlike Span it knows the extent of its buffer and
// checks every shape against it.
type DynSpan[T any] struct {
	data    []T // exactly the bound range, capacity clipped to its length
	shape   shape.Shape
	strides []int
}

// NewDynSpan binds data and applies dims.
// With no dims the span is one-dimensional and covers all of data; a
// zero-length data with no dims gives an empty span.
func NewDynSpan[T any](data []T, dims ...int) (DynSpan[T], error) {
	var d DynSpan[T]
	if err := d.Reset(data, dims...); err != nil {
		return DynSpan[T]{}, err
	}
	return d, nil
}

// NewDynSpanRange binds buf[begin:end]. When end < begin the bounds are
// swapped, so the span always addresses the range in forward order.
func NewDynSpanRange[T any](buf []T, begin, end int, dims ...int) (DynSpan[T], error) {
	if end < begin {
		begin, end = end, begin
	}
	if begin < 0 || end > len(buf) {
		return DynSpan[T]{}, fmt.Errorf("%w: range [%d, %d) outside buffer of %d elements",
			ErrOutOfRange, begin, end, len(buf))
	}
	return NewDynSpan(buf[begin:end:end], dims...)
}

// Reset rebinds the span to data and applies dims as NewDynSpan does.
// On error the span is left unchanged.
func (d *DynSpan[T]) Reset(data []T, dims ...int) error {
	data = data[:len(data):len(data)]

	if len(dims) == 0 {
		if len(data) == 0 {
			// A zero-length range addresses nothing: same as no buffer.
			d.data, d.shape, d.strides = nil, shape.Shape{}, []int{}
			return nil
		}
		d.data = data
		d.shape = shape.Shape{len(data)}
		d.strides = []int{1}
		return nil
	}

	sh, strides, err := fitShape(dims, len(data))
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	d.data, d.shape, d.strides = data, sh, strides
	return nil
}

// Reshape replaces the shape. It fails with ErrInvalidShape when no
// dimension is given, an extent is not positive, or the shape needs more
// elements than the bound range holds. On error the span is left unchanged.
func (d *DynSpan[T]) Reshape(dims ...int) error {
	sh, strides, err := fitShape(dims, len(d.data))
	if err != nil {
		return fmt.Errorf("reshape: %w", err)
	}
	d.shape, d.strides = sh, strides
	return nil
}

func fitShape(dims []int, capacity int) (shape.Shape, []int, error) {
	sh := shape.Shape(dims).Clone()
	if err := sh.Fits(capacity); err != nil {
		return nil, nil, err
	}
	return sh, sh.Strides(), nil
}

// Data returns the bound range.
func (d DynSpan[T]) Data() []T {
	return d.data
}

// Shape returns a copy of the current extents.
func (d DynSpan[T]) Shape() shape.Shape {
	return d.shape.Clone()
}

// Strides returns a copy of the current strides.
func (d DynSpan[T]) Strides() []int {
	strides := make([]int, len(d.strides))
	copy(strides, d.strides)
	return strides
}

// Dims returns the number of dimensions. A span produced by peeling the
// last dimension with Sub has zero dimensions and addresses one element.
func (d DynSpan[T]) Dims() int {
	return len(d.shape)
}

// Extent returns the size of dimension i.
func (d DynSpan[T]) Extent(i int) int {
	return d.shape[i]
}

// Stride returns the element stride of dimension i.
func (d DynSpan[T]) Stride(i int) int {
	return d.strides[i]
}

// Len returns the number of elements addressed by the shape.
func (d DynSpan[T]) Len() int {
	return d.shape.NumElements()
}

// Cap returns the number of elements in the bound range.
func (d DynSpan[T]) Cap() int {
	return len(d.data)
}

// Empty reports whether no buffer is bound.
func (d DynSpan[T]) Empty() bool {
	return d.data == nil
}

// At returns a pointer to the element at the given indices.
//
// Each index is checked against its own dimension, leftmost first, and the
// resulting offset against the bound range.
func (d DynSpan[T]) At(indices ...int) (*T, error) {
	if d.Empty() {
		return nil, fmt.Errorf("%w: span has no buffer", ErrInvalidState)
	}
	if err := d.shape.CheckIndex(indices...); err != nil {
		return nil, err
	}

	offset := 0
	for i, idx := range indices {
		offset += idx * d.strides[i]
	}
	if uint(offset) >= uint(len(d.data)) {
		return nil, &RangeError{Dim: -1, Extent: len(d.data), Index: offset}
	}
	return &d.data[offset], nil
}

// Sub returns the span at index i of the leading dimension, with its range
// narrowed to the selected block. The index is not validated.
//
// Fails with ErrInvalidState when the span has no dimension left to peel.
func (d DynSpan[T]) Sub(i int) (DynSpan[T], error) {
	if len(d.shape) == 0 {
		return DynSpan[T]{}, fmt.Errorf("%w: no dimension left to index", ErrInvalidState)
	}

	block := d.strides[0]
	start := i * block
	n := len(d.strides)
	return DynSpan[T]{
		data:    d.data[start : start+block : start+block],
		shape:   d.shape.Drop(),
		strides: d.strides[1:n:n],
	}, nil
}

// Elem returns a pointer to element i of a one-dimensional span.
// The index is not validated against the extent.
//
// Panics if the span is not one-dimensional.
func (d DynSpan[T]) Elem(i int) *T {
	if len(d.shape) != 1 {
		panic(fmt.Sprintf("mdspan: Elem on %d-dimensional span", len(d.shape)))
	}
	return &d.data[i]
}

// Equal reports whether both spans bind the same range with the same shape.
//
// This is stricter than Span.Equal, which compares start addresses only:
// two DynSpans over the same start differ if their lengths or shapes do.
func (d DynSpan[T]) Equal(other DynSpan[T]) bool {
	return unsafe.SliceData(d.data) == unsafe.SliceData(other.data) &&
		len(d.data) == len(other.data) &&
		d.shape.Equal(other.shape)
}

// String returns a short description such as "DynSpan[2x3]/6".
func (d DynSpan[T]) String() string {
	if d.Empty() {
		return "DynSpan(empty)"
	}
	return fmt.Sprintf("DynSpan%v/%d", d.shape, len(d.data))
}
