package shapesig

import (
	"reflect"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/shapesig/internal/utils"
	"github.com/pkg/errors"
)

// FromAnyValue infers the ShapeDType of a Go "any" value holding concrete
// data. Accepted values are plain-old-data (POD) types (ints, floats,
// complex), slices (or multiple levels of slices) of POD.
//
// Example:
//
//	sd, err := shapesig.FromAnyValue([][]float64{{0, 0}}) // ShapeDtype{shape:(1, 2), dtype:float64}
func FromAnyValue(v any) (ShapeDType, error) {
	if v == nil {
		return Invalid(), errors.New("cannot infer a shape from nil")
	}
	dims, dtype, err := fromAnyValueRecursive(reflect.ValueOf(v))
	if err != nil {
		return Invalid(), err
	}
	return ShapeDType{dims: dims, dtype: dtype}, nil
}

func fromAnyValueRecursive(v reflect.Value) ([]int, dtypes.DType, error) {
	if v.Kind() != reflect.Slice {
		// If it's not a slice, it must be one of the supported scalar types.
		dtype := dtypes.FromGoType(v.Type())
		if dtype == dtypes.InvalidDType {
			return nil, dtype, errors.Errorf("cannot convert type %q to a valid dtype (maybe type not supported yet?)", v.Type())
		}
		return nil, dtype, nil
	}

	if v.Len() == 0 {
		return nil, dtypes.InvalidDType, errors.Errorf(
			"value with empty slice not valid for shape inference: %T -- it wouldn't be possible to figure out the inner dimensions", v.Interface())
	}

	// The first element is the reference for the inner dimensions.
	innerDims, dtype, err := fromAnyValueRecursive(v.Index(0))
	if err != nil {
		return nil, dtypes.InvalidDType, err
	}

	// Other elements must match the reference exactly.
	for ii := 1; ii < v.Len(); ii++ {
		testDims, testDType, err := fromAnyValueRecursive(v.Index(ii))
		if err != nil {
			return nil, dtypes.InvalidDType, err
		}
		if testDType != dtype || !slices.Equal(testDims, innerDims) {
			return nil, dtypes.InvalidDType, errors.Errorf("sub-slices have irregular shapes, found %s and %s",
				utils.DimsToString(innerDims), utils.DimsToString(testDims))
		}
	}
	return append([]int{v.Len()}, innerDims...), dtype, nil
}
