package shapesig

import (
	"fmt"
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/shapesig/internal/utils"
	"github.com/pkg/errors"
)

// DimUnknown marks a dimension whose size is not statically known.
const DimUnknown = -1

// ShapeDType is an array-like value abstracted as its shape and element dtype.
//
// It is an immutable value: both fields are fixed at construction and only
// copies are ever handed out. Two ShapeDType values are Equal iff their
// dimensions and dtype are equal.
type ShapeDType struct {
	dims  []int
	dtype dtypes.DType
}

// Make returns a ShapeDType with the given dtype and dimensions.
// The dimensions are copied. Use DimUnknown for dimensions whose size is not
// statically known.
func Make(dtype dtypes.DType, dimensions ...int) ShapeDType {
	dims := make([]int, len(dimensions))
	copy(dims, dimensions)
	return ShapeDType{dims: dims, dtype: dtype}
}

// New builds a ShapeDType from loosely typed arguments, canonicalizing both.
//
// The shape argument must be a slice or array of integer dimensions, of any Go
// integer kind; anything else is an error. The dtype argument accepts anything
// DTypeOf does (a dtypes.DType, a reflect.Type, a dtype name, a sample scalar
// value, or a representation handled by a registered converter); nil defaults
// to DefaultDType.
func New(shape any, dtype any) (ShapeDType, error) {
	dims, err := dimsFromAny(shape)
	if err != nil {
		return Invalid(), err
	}
	dt := DefaultDType
	if dtype != nil {
		dt, err = DTypeOf(dtype)
		if err != nil {
			return Invalid(), err
		}
	}
	return ShapeDType{dims: dims, dtype: dt}, nil
}

// dimsFromAny normalizes a shape argument to a fresh []int, or errors if the
// argument is not a slice or array of integers.
func dimsFromAny(shape any) ([]int, error) {
	if dims, ok := shape.([]int); ok {
		out := make([]int, len(dims))
		copy(out, dims)
		return out, nil
	}
	v := reflect.ValueOf(shape)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, errors.Errorf("shape must be a slice or array of dimensions; got %T (%v)", shape, shape)
	}
	out := make([]int, v.Len())
	for i := range out {
		e := v.Index(i)
		switch e.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out[i] = int(e.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			out[i] = int(e.Uint())
		case reflect.Interface:
			d, err := dimFromAny(e.Interface())
			if err != nil {
				return nil, errors.WithMessagef(err, "shape element %d", i)
			}
			out[i] = d
		default:
			return nil, errors.Errorf("shape must be a slice or array of dimensions; element %d is %s", i, e.Kind())
		}
	}
	return out, nil
}

func dimFromAny(dim any) (int, error) {
	if dim == nil {
		// A nil dimension means its size is not statically known.
		return DimUnknown, nil
	}
	v := reflect.ValueOf(dim)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint()), nil
	}
	return 0, errors.Errorf("dimension must be an integer or nil; got %T (%v)", dim, dim)
}

// FromShaped returns the ShapeDType describing v.
func FromShaped(v Shaped) ShapeDType {
	return Make(v.DType(), v.Shape()...)
}

// Invalid returns the invalid (not-Ok) ShapeDType.
func Invalid() ShapeDType {
	return ShapeDType{dtype: dtypes.InvalidDType}
}

// Ok reports whether the descriptor carries a valid dtype.
func (s ShapeDType) Ok() bool {
	return s.dtype != dtypes.InvalidDType
}

// Shape returns a copy of the dimensions. Implements Shaped.
func (s ShapeDType) Shape() []int {
	dims := make([]int, len(s.dims))
	copy(dims, s.dims)
	return dims
}

// DType returns the element dtype. Implements Shaped.
func (s ShapeDType) DType() dtypes.DType {
	return s.dtype
}

// AsTuple returns the (dimensions, dtype) pair.
func (s ShapeDType) AsTuple() ([]int, dtypes.DType) {
	return s.Shape(), s.dtype
}

// Rank returns the number of dimensions. Scalars have rank 0.
func (s ShapeDType) Rank() int {
	return len(s.dims)
}

// IsScalar reports whether the descriptor has rank 0.
func (s ShapeDType) IsScalar() bool {
	return len(s.dims) == 0
}

// Dim returns the size of the given axis. Negative axes count from the end,
// so Dim(-1) is the last dimension. It panics if the axis is out of range.
func (s ShapeDType) Dim(axis int) int {
	adjusted := axis
	if adjusted < 0 {
		adjusted += len(s.dims)
	}
	if adjusted < 0 || adjusted >= len(s.dims) {
		panic(errors.Errorf("Dim(%d) out of range for rank %d", axis, len(s.dims)))
	}
	return s.dims[adjusted]
}

// IsFullyDefined reports whether no dimension is DimUnknown.
func (s ShapeDType) IsFullyDefined() bool {
	for _, d := range s.dims {
		if d == DimUnknown {
			return false
		}
	}
	return true
}

// Size returns the total number of elements, or DimUnknown if any dimension
// is not statically known. Scalars have size 1.
func (s ShapeDType) Size() int {
	size := 1
	for _, d := range s.dims {
		if d == DimUnknown {
			return DimUnknown
		}
		size *= d
	}
	return size
}

// Memory returns the number of bytes needed to hold the described array, or
// DimUnknown if the size is not statically known.
func (s ShapeDType) Memory() int {
	size := s.Size()
	if size == DimUnknown {
		return DimUnknown
	}
	return size * s.dtype.Size()
}

// Equal reports whether both descriptors have the same dimensions and dtype.
func (s ShapeDType) Equal(other ShapeDType) bool {
	if s.dtype != other.dtype || len(s.dims) != len(other.dims) {
		return false
	}
	for i, d := range s.dims {
		if d != other.dims[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer, e.g. "ShapeDtype{shape:(2, 3), dtype:float32}".
// Unknown dimensions render as "?".
func (s ShapeDType) String() string {
	return fmt.Sprintf("ShapeDtype{shape:%s, dtype:%s}", utils.DimsToString(s.dims), utils.DTypeName(s.dtype))
}
