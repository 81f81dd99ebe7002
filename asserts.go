package shapesig

import (
	"github.com/gomlx/shapesig/internal/utils"
	"github.com/pkg/errors"
)

// This file implements the shape checks. The Check* variants return an error;
// the Assert* variants panic with it. They often serve as documentation when
// implementing computations: the reader can corroborate the expected shape at
// each step.

// CheckShape returns an error unless v has exactly the given shape,
// element-wise and including length.
func CheckShape(v Shaped, dimensions ...int) error {
	actual := v.Shape()
	if !dimsMatch(actual, dimensions, false) {
		return errors.Errorf("Invalid shape %s; expected %s.",
			utils.DimsToString(actual), utils.DimsToString(dimensions))
	}
	return nil
}

// AssertShape panics unless v has exactly the given shape.
func AssertShape(v Shaped, dimensions ...int) {
	if err := CheckShape(v, dimensions...); err != nil {
		panic(err)
	}
}

// CheckDims is like CheckShape, except a -1 in dimensions matches any size of
// the corresponding dimension. The rank must still match.
func CheckDims(v Shaped, dimensions ...int) error {
	actual := v.Shape()
	if !dimsMatch(actual, dimensions, true) {
		return errors.Errorf("Invalid shape %s; expected %s.",
			utils.DimsToString(actual), utils.DimsToString(dimensions))
	}
	return nil
}

// AssertDims panics unless v matches the given dimensions, with -1 matching
// any size.
func AssertDims(v Shaped, dimensions ...int) {
	if err := CheckDims(v, dimensions...); err != nil {
		panic(errors.WithMessagef(err, "AssertDims(%v)", dimensions))
	}
}

// CheckRank returns an error unless v has the given rank.
func CheckRank(v Shaped, rank int) error {
	if actual := len(v.Shape()); actual != rank {
		return errors.Errorf("Invalid rank %d; expected %d.", actual, rank)
	}
	return nil
}

// AssertRank panics unless v has the given rank.
func AssertRank(v Shaped, rank int) {
	if err := CheckRank(v, rank); err != nil {
		panic(errors.WithMessagef(err, "AssertRank(%d)", rank))
	}
}

// AssertScalar panics unless v is a scalar.
func AssertScalar(v Shaped) {
	if err := CheckRank(v, 0); err != nil {
		panic(errors.WithMessage(err, "AssertScalar()"))
	}
}

// dimsMatch reports whether actual matches expected element-wise. With
// wildcard set, a -1 in expected matches any actual size.
func dimsMatch(actual, expected []int, wildcard bool) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, want := range expected {
		if wildcard && want == -1 {
			continue
		}
		if actual[i] != want {
			return false
		}
	}
	return true
}
