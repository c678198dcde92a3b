// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides the public API for multidimensional views over Go
// slices.
//
// A view never owns or copies its buffer; it only describes how a flat,
// row-major slice is addressed as a multidimensional array:
//   - Span[T]: shape fixed when the span is defined
//   - DynSpan[T]: shape chosen at construction, replaceable with Reshape
//   - Iterator[T]: explicit cursor over a Span's leading dimension
//   - Shape: extents and the row-major stride model
//
// Example:
//
//	buf := make([]float32, 2*3*4)
//	s := view.MustSpan(buf, 2, 3, 4)
//	p, err := s.At(1, 2, 3)      // checked
//	q := s.Sub(1).Sub(2).Elem(3) // unchecked, same element
//
//	d, err := view.NewDynSpan(buf, 6, 4)
//	err = d.Reshape(4, 3, 2)
package view

import (
	"github.com/born-ml/mdspan/internal/mdspan"
	"github.com/born-ml/mdspan/internal/parallel"
	"github.com/born-ml/mdspan/internal/shape"
)

// Shape represents the extents of a view, outermost first.
// Example: Shape{2, 3, 4} is a 2×3×4 array with strides 12, 4, 1.
type Shape = shape.Shape

// Span is a view whose shape is fixed at definition.
type Span[T any] = mdspan.Span[T]

// DynSpan is a view whose shape can be replaced with Reshape.
type DynSpan[T any] = mdspan.DynSpan[T]

// Iterator walks the leading dimension of a Span.
type Iterator[T any] = mdspan.Iterator[T]

// Layout is implemented by Span and DynSpan.
type Layout[T any] = mdspan.Layout[T]

// ParallelConfig controls how Fill spreads rows over goroutines.
type ParallelConfig = parallel.Config

// Errors.
var (
	ErrOutOfRange   = mdspan.ErrOutOfRange
	ErrInvalidShape = mdspan.ErrInvalidShape
	ErrInvalidState = mdspan.ErrInvalidState
)

// RangeError describes an index rejected by a checked accessor.
type RangeError = mdspan.RangeError

// ShapeError describes a rejected shape.
type ShapeError = mdspan.ShapeError

// NewSpan defines a span of the given shape over data.
func NewSpan[T any](data []T, dims ...int) (Span[T], error) {
	return mdspan.NewSpan(data, dims...)
}

// MustSpan is like NewSpan but panics on an invalid shape.
func MustSpan[T any](data []T, dims ...int) Span[T] {
	return mdspan.MustSpan(data, dims...)
}

// NewDynSpan binds data with the given shape, or as one dimension covering
// all of data when no dims are given.
func NewDynSpan[T any](data []T, dims ...int) (DynSpan[T], error) {
	return mdspan.NewDynSpan(data, dims...)
}

// NewDynSpanRange binds buf[begin:end], swapping the bounds if end < begin.
func NewDynSpanRange[T any](buf []T, begin, end int, dims ...int) (DynSpan[T], error) {
	return mdspan.NewDynSpanRange(buf, begin, end, dims...)
}

// Fill sets every element of v from its index tuple, filling rows of the
// leading dimension concurrently.
func Fill[T any](v Layout[T], fn func(idx []int) T, cfg ParallelConfig) error {
	return mdspan.Fill(v, fn, cfg)
}

// DefaultParallelConfig returns a Fill configuration sized to the machine.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
