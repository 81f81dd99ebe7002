// Package shapesig describes array-like values abstractly as shape/dtype
// signatures, for use by tracing and shape-inference layers.
//
// Among its features:
//
// - ShapeDType: an immutable value pairing dimensions with an element dtype.
// - Signature: a single ShapeDType or a flat tuple of them, extracted from any
//   value (or nested collection of values) implementing Shaped.
// - Shape checks usable as inline documentation of expected shapes.
// - Written purely in Go, no C/C++ external dependencies.
//
// It never touches array contents, only metadata: no tensor type is required
// to participate, only the Shaped interface (or a plain nested Go slice, see
// FromAnyValue).
package shapesig

import "github.com/gomlx/gopjrt/dtypes"

// Shaped is implemented by any array-like value able to report its geometry
// and element type. It is the only capability this package requires from the
// surrounding array ecosystem.
//
// Shape must return the dimensions in order, using DimUnknown for dimensions
// whose size is not statically known.
type Shaped interface {
	Shape() []int
	DType() dtypes.DType
}

// DefaultDType is the element type assumed when none is given.
var DefaultDType = dtypes.Float32
