// Package shape implements the row-major stride model shared by every view.
package shape

import (
	"fmt"
	"strings"
)

// Shape is an ordered list of dimension extents, outermost first.
type Shape []int

// Dims returns the number of dimensions.
func (s Shape) Dims() int {
	return len(s)
}

// NumElements returns the product of all extents.
// The empty shape addresses a single element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one dimension and that every
// extent is positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return &ShapeError{Shape: s, Dim: -1, Reason: "at least one dimension is required"}
	}
	for i, dim := range s {
		if dim <= 0 {
			return &ShapeError{Shape: s, Dim: i, Reason: fmt.Sprintf("extent %d must be > 0", dim)}
		}
	}
	return nil
}

// Fits validates the shape and checks it addresses at most capacity elements.
func (s Shape) Fits(capacity int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	// Divide instead of multiplying so huge shapes cannot overflow past the check.
	remaining := capacity
	for _, dim := range s {
		if remaining < dim {
			return &ShapeError{
				Shape:    s,
				Dim:      -1,
				Capacity: capacity,
				Reason:   fmt.Sprintf("needs more than the %d elements available", capacity),
			}
		}
		remaining /= dim
	}
	return nil
}

// StrideOf returns the row-major stride of dimension i: the product of all
// extents after i. The last dimension always has stride 1.
func (s Shape) StrideOf(i int) int {
	stride := 1
	for _, dim := range s[i+1:] {
		stride *= dim
	}
	return stride
}

// Strides returns the stride of every dimension.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset returns the flat element offset of the given index tuple.
// Indices are not validated; see CheckIndex.
func (s Shape) Offset(indices ...int) int {
	offset := 0
	stride := 1
	for i := len(indices) - 1; i >= 0; i-- {
		offset += indices[i] * stride
		if i < len(s) {
			stride *= s[i]
		}
	}
	return offset
}

// CheckIndex validates a full index tuple, reporting the leftmost index that
// does not fit its dimension. Negative indices are rejected.
func (s Shape) CheckIndex(indices ...int) error {
	if len(indices) != len(s) {
		return fmt.Errorf("%w: got %d indices for %d dimensions", ErrInvalidState, len(indices), len(s))
	}
	for i, idx := range indices {
		// uint conversion folds the negative case into the upper bound check.
		if uint(idx) >= uint(s[i]) {
			return &RangeError{Dim: i, Extent: s[i], Index: idx}
		}
	}
	return nil
}

// Drop returns the shape without its leading dimension.
// The result shares storage with s.
func (s Shape) Drop() Shape {
	if len(s) == 0 {
		return s
	}
	return s[1:len(s):len(s)]
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as "[2x3x4]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	return "[" + strings.Join(parts, "x") + "]"
}
