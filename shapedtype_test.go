package shapesig

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
)

func TestShapeDType(t *testing.T) {
	invalid := Invalid()
	if invalid.Ok() {
		t.Error("Invalid().Ok() should be false")
	}

	scalar := Make(dtypes.Float64)
	if !scalar.Ok() {
		t.Error("scalar.Ok() should be true")
	}
	if !scalar.IsScalar() {
		t.Error("scalar.IsScalar() should be true")
	}
	if scalar.Rank() != 0 {
		t.Errorf("scalar.Rank() = %d, want 0", scalar.Rank())
	}
	if scalar.Size() != 1 {
		t.Errorf("scalar.Size() = %d, want 1", scalar.Size())
	}
	if scalar.Memory() != 8 {
		t.Errorf("scalar.Memory() = %d, want 8", scalar.Memory())
	}

	sd := Make(dtypes.Float32, 4, 3, 2)
	if sd.IsScalar() {
		t.Error("sd.IsScalar() should be false")
	}
	if sd.Rank() != 3 {
		t.Errorf("sd.Rank() = %d, want 3", sd.Rank())
	}
	if sd.Size() != 4*3*2 {
		t.Errorf("sd.Size() = %d, want %d", sd.Size(), 4*3*2)
	}
	if sd.Memory() != 4*4*3*2 {
		t.Errorf("sd.Memory() = %d, want %d", sd.Memory(), 4*4*3*2)
	}
	if !sd.IsFullyDefined() {
		t.Error("sd.IsFullyDefined() should be true")
	}

	unknown := Make(dtypes.Float32, DimUnknown, 3)
	if unknown.IsFullyDefined() {
		t.Error("unknown.IsFullyDefined() should be false")
	}
	if unknown.Size() != DimUnknown {
		t.Errorf("unknown.Size() = %d, want DimUnknown", unknown.Size())
	}
	if unknown.Memory() != DimUnknown {
		t.Errorf("unknown.Memory() = %d, want DimUnknown", unknown.Memory())
	}
}

func TestShapeDTypeImmutability(t *testing.T) {
	dims := []int{2, 3}
	sd := Make(dtypes.Float32, dims...)
	dims[0] = 7
	if sd.Dim(0) != 2 {
		t.Errorf("Make must copy its dimensions: sd.Dim(0) = %d, want 2", sd.Dim(0))
	}
	sd.Shape()[0] = 7
	if sd.Dim(0) != 2 {
		t.Errorf("Shape() must return a copy: sd.Dim(0) = %d, want 2", sd.Dim(0))
	}
}

func panics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic, but code did not panic")
		}
	}()
	f()
}

func notPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("expected no panic, but code panicked: %v", r)
		}
	}()
	f()
}

func TestDim(t *testing.T) {
	sd := Make(dtypes.Float32, 4, 3, 2)
	if d := sd.Dim(0); d != 4 {
		t.Errorf("sd.Dim(0) = %d, want 4", d)
	}
	if d := sd.Dim(2); d != 2 {
		t.Errorf("sd.Dim(2) = %d, want 2", d)
	}
	if d := sd.Dim(-1); d != 2 {
		t.Errorf("sd.Dim(-1) = %d, want 2", d)
	}
	if d := sd.Dim(-3); d != 4 {
		t.Errorf("sd.Dim(-3) = %d, want 4", d)
	}
	panics(t, func() { _ = sd.Dim(3) })
	panics(t, func() { _ = sd.Dim(-4) })
}

func TestNew(t *testing.T) {
	// Integer slices of any Go kind normalize to the same dimensions.
	sd, err := New([]int32{2, 3}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !sd.Equal(Make(dtypes.Float32, 2, 3)) {
		t.Errorf("New([]int32{2, 3}, nil) = %s, want ShapeDtype{shape:(2, 3), dtype:float32}", sd)
	}

	// nil dimensions mean "size not statically known".
	sd, err = New([]any{nil, 3}, "int64")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !sd.Equal(Make(dtypes.Int64, DimUnknown, 3)) {
		t.Errorf("New([]any{nil, 3}, int64) = %s, want ShapeDtype{shape:(?, 3), dtype:int64}", sd)
	}

	// Non-slice shape arguments are rejected.
	if _, err = New(3, nil); err == nil {
		t.Error("New(3, nil) should have failed")
	}
	if _, err = New("shape", nil); err == nil {
		t.Error(`New("shape", nil) should have failed`)
	}
	if _, err = New(nil, nil); err == nil {
		t.Error("New(nil, nil) should have failed")
	}
	if _, err = New([]float64{2.5}, nil); err == nil {
		t.Error("New([]float64{2.5}, nil) should have failed")
	}
}

func TestEqual(t *testing.T) {
	a := Make(dtypes.Float32, 2, 3)
	b := Make(dtypes.Float32, 2, 3)
	if !a.Equal(a) {
		t.Error("Equal should be reflexive")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("descriptors with the same dims and dtype should be Equal, both ways")
	}
	if a.Equal(Make(dtypes.Float32, 3, 2)) {
		t.Error("different dims should not be Equal")
	}
	if a.Equal(Make(dtypes.Float32, 2, 3, 1)) {
		t.Error("different rank should not be Equal")
	}
	if a.Equal(Make(dtypes.Float64, 2, 3)) {
		t.Error("different dtypes should not be Equal")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		sd   ShapeDType
		want string
	}{
		{Make(dtypes.Float32, 2, 3), "ShapeDtype{shape:(2, 3), dtype:float32}"},
		{Make(dtypes.Int64), "ShapeDtype{shape:(), dtype:int64}"},
		{Make(dtypes.Float64, 5), "ShapeDtype{shape:(5), dtype:float64}"},
		{Make(dtypes.BFloat16, DimUnknown, 7), "ShapeDtype{shape:(?, 7), dtype:bfloat16}"},
	}
	for _, test := range tests {
		if got := test.sd.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestAsTuple(t *testing.T) {
	dims, dtype := Make(dtypes.Int32, 2, 3).AsTuple()
	if len(dims) != 2 || dims[0] != 2 || dims[1] != 3 {
		t.Errorf("AsTuple() dims = %v, want [2 3]", dims)
	}
	if dtype != dtypes.Int32 {
		t.Errorf("AsTuple() dtype = %s, want Int32", dtype)
	}
}
