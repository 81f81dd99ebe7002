package utils

import (
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
)

// DTypeName returns the canonical lower-case name of a dtype, e.g. "float32".
func DTypeName(dtype dtypes.DType) string {
	switch dtype {
	case dtypes.F64:
		return "float64"
	case dtypes.F32:
		return "float32"
	case dtypes.F16:
		return "float16"
	case dtypes.BFloat16:
		return "bfloat16"
	case dtypes.S64:
		return "int64"
	case dtypes.S32:
		return "int32"
	case dtypes.S16:
		return "int16"
	case dtypes.S8:
		return "int8"
	case dtypes.U64:
		return "uint64"
	case dtypes.U32:
		return "uint32"
	case dtypes.U16:
		return "uint16"
	case dtypes.U8:
		return "uint8"
	case dtypes.Bool:
		return "bool"
	case dtypes.Complex64:
		return "complex64"
	case dtypes.Complex128:
		return "complex128"
	default:
		return strings.ToLower(dtype.String())
	}
}

// DTypeFromName maps a dtype name back to its dtype. It accepts the canonical
// names returned by DTypeName as well as the short forms used by XLA-derived
// tooling ("f32", "i64", "bf16", ...). Unknown names map to InvalidDType.
func DTypeFromName(name string) dtypes.DType {
	switch strings.ToLower(name) {
	case "float64", "f64", "double":
		return dtypes.F64
	case "float32", "f32", "float":
		return dtypes.F32
	case "float16", "f16", "half":
		return dtypes.F16
	case "bfloat16", "bf16":
		return dtypes.BFloat16
	case "int64", "i64", "s64":
		return dtypes.S64
	case "int32", "i32", "s32", "int":
		return dtypes.S32
	case "int16", "i16", "s16":
		return dtypes.S16
	case "int8", "i8", "s8":
		return dtypes.S8
	case "uint64", "ui64", "u64":
		return dtypes.U64
	case "uint32", "ui32", "u32":
		return dtypes.U32
	case "uint16", "ui16", "u16":
		return dtypes.U16
	case "uint8", "ui8", "u8":
		return dtypes.U8
	case "bool", "i1", "pred":
		return dtypes.Bool
	case "complex64", "c64":
		return dtypes.Complex64
	case "complex128", "c128":
		return dtypes.Complex128
	default:
		return dtypes.InvalidDType
	}
}
