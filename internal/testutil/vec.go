package testutil

import "testing"

// VecReader is the read side of a feature vector view.
type VecReader interface {
	Dim() int
	At(index int) (float64, error)
}

// VecValues reads every value of v through its bounds-checked accessor.
func VecValues(t *testing.T, v VecReader) []float64 {
	t.Helper()
	out := make([]float64, v.Dim())
	for i := range out {
		x, err := v.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		out[i] = x
	}
	return out
}

// RequireVec fails t if v does not hold exactly want.
func RequireVec(t *testing.T, v VecReader, want []float64) {
	t.Helper()
	RequireSliceNearlyEqual(t, VecValues(t, v), want, 0)
}

// RequirePanics fails t if fn returns without panicking.
func RequirePanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
