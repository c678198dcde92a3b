// Package mdspan provides non-owning, row-major multidimensional views over
// flat Go slices.
//
// Two flavors are provided:
//   - Span[T]: the shape is fixed when the span is defined and never changes;
//     only the buffer binding can be reset.
//   - DynSpan[T]: the shape is chosen at construction and can be replaced
//     with Reshape, validated against the bound buffer.
//
// Views never allocate, copy or own element memory. Every element access
// returns a pointer into the caller's slice, so writes through one view are
// visible through all overlapping views.
//
// Access comes in two modes. At validates each index against its dimension
// and returns an error; Sub and Elem perform no extent validation and leave
// correctness to the caller (Go's slice bounds checks still apply).
//
// Example:
//
//	buf := []int{0, 1, 2, 3, 4, 5}
//	s := mdspan.MustSpan(buf, 2, 3)
//	p, err := s.At(1, 2)     // p points at buf[5]
//	q := s.Sub(1).Elem(2)    // same element, unchecked
package mdspan
