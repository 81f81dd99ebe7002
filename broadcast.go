package shapesig

import (
	"github.com/pkg/errors"
)

// Broadcast returns the descriptor resulting from broadcasting a and b
// together, using the standard broadcasting rules: dimensions are aligned
// from the trailing end, and a dimension of size 1 stretches to the other
// side's size. The dtypes must match.
//
// An unknown dimension broadcast against anything but 1 stays unknown: its
// actual size is only determined at run time.
func Broadcast(a, b ShapeDType) (ShapeDType, error) {
	if a.dtype != b.dtype {
		return Invalid(), errors.Errorf("cannot broadcast %s with %s: dtypes differ", a, b)
	}
	rank := max(len(a.dims), len(b.dims))
	dims := make([]int, rank)
	for i := 1; i <= rank; i++ {
		dimA, dimB := 1, 1
		if i <= len(a.dims) {
			dimA = a.dims[len(a.dims)-i]
		}
		if i <= len(b.dims) {
			dimB = b.dims[len(b.dims)-i]
		}
		var dim int
		switch {
		case dimA == dimB:
			dim = dimA
		case dimA == 1:
			dim = dimB
		case dimB == 1:
			dim = dimA
		case dimA == DimUnknown || dimB == DimUnknown:
			dim = DimUnknown
		default:
			return Invalid(), errors.Errorf("cannot broadcast %s with %s: dimensions %d and %d are incompatible", a, b, dimA, dimB)
		}
		dims[rank-i] = dim
	}
	return ShapeDType{dims: dims, dtype: a.dtype}, nil
}
