package feature

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is matched by every BoundsError.
	ErrOutOfBounds = errors.New("feature: index out of bounds")

	// ErrDimensionMismatch is matched by every DimensionError.
	ErrDimensionMismatch = errors.New("feature: dimension mismatch")
)

// BoundsError reports a view access outside [0, Dim).
type BoundsError struct {
	Index int
	Dim   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("feature: index %d out of bounds for dim %d", e.Index, e.Dim)
}

// Is reports whether target is ErrOutOfBounds.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// DimensionError reports a slice argument whose length differs from the
// view dimension.
type DimensionError struct {
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("feature: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }
