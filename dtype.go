package shapesig

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/shapesig/internal/utils"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// DTypeConverter recognizes a foreign representation of an element type and
// converts it to the canonical dtype. It returns false when it does not
// recognize the value, letting the next converter try.
type DTypeConverter func(value any) (dtypes.DType, bool)

// converters registered by users, consulted before the built-in ones.
var converters []DTypeConverter

// RegisterDTypeConverter registers a converter for a foreign type-system's
// dtype representation, e.g. another array library's type objects. Registered
// converters are consulted in registration order, before the built-in ones.
//
// Registration is meant to happen at init time; the registry is not
// synchronized for later concurrent mutation.
func RegisterDTypeConverter(c DTypeConverter) {
	converters = append(converters, c)
}

// DTypeOf normalizes any supported representation of an element type to the
// canonical dtypes.DType.
//
// Built-in conversions, tried after any registered converter:
//
//   - dtypes.DType values pass through unchanged.
//   - reflect.Type values convert via dtypes.FromGoType.
//   - strings are parsed as dtype names ("float32", "f32", "bf16", ...).
//   - float16.Float16 sample values map to dtypes.Float16.
//   - any other sample value converts via dtypes.FromAny.
func DTypeOf(value any) (dtypes.DType, error) {
	for _, c := range converters {
		if dtype, ok := c(value); ok {
			return dtype, nil
		}
	}
	switch v := value.(type) {
	case dtypes.DType:
		return v, nil
	case reflect.Type:
		if dtype := dtypes.FromGoType(v); dtype != dtypes.InvalidDType {
			return dtype, nil
		}
	case string:
		if dtype := utils.DTypeFromName(v); dtype != dtypes.InvalidDType {
			return dtype, nil
		}
	case float16.Float16:
		return dtypes.Float16, nil
	default:
		if dtype := dtypes.FromAny(value); dtype != dtypes.InvalidDType {
			return dtype, nil
		}
	}
	return dtypes.InvalidDType, errors.Errorf("cannot convert %T (%v) to a DType", value, value)
}
