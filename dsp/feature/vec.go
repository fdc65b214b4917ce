package feature

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Vec is a read-only, bounds-checked view of one feature vector.
// The zero value is an empty view with Dim() == 0.
type Vec struct {
	data []float64
}

// NewVec returns a view over data. The view aliases data.
func NewVec(data []float64) Vec {
	return Vec{data: data}
}

// Dim returns the number of values in the vector.
func (v Vec) Dim() int {
	return len(v.data)
}

// At returns the value at index.
func (v Vec) At(index int) (float64, error) {
	if err := v.check(index); err != nil {
		return 0, err
	}
	return v.data[index], nil
}

// CopyTo copies the vector into dst and returns the number of copied values.
func (v Vec) CopyTo(dst []float64) int {
	return copy(dst, v.data)
}

// MulTo stores the element-wise product of v and weights in dst.
func (v Vec) MulTo(dst, weights []float64) error {
	if len(dst) != len(v.data) {
		return &DimensionError{Expected: len(v.data), Actual: len(dst)}
	}
	if len(weights) != len(v.data) {
		return &DimensionError{Expected: len(v.data), Actual: len(weights)}
	}
	if len(v.data) == 0 {
		return nil
	}
	vecmath.MulBlock(dst, v.data, weights)
	return nil
}

func (v Vec) String() string {
	return fmt.Sprint(v.data)
}

func (v Vec) check(index int) error {
	if index < 0 || index >= len(v.data) {
		return &BoundsError{Index: index, Dim: len(v.data)}
	}
	return nil
}

// MutVec is a writable view of one feature vector. Writes go straight to
// the storage the view was created from.
type MutVec struct {
	Vec
}

// NewMutVec returns a writable view over data.
func NewMutVec(data []float64) MutVec {
	return MutVec{Vec{data: data}}
}

// ReadOnly returns a read-only view of the same values.
func (v MutVec) ReadOnly() Vec {
	return v.Vec
}

// Set stores value at index.
func (v MutVec) Set(index int, value float64) error {
	if err := v.check(index); err != nil {
		return err
	}
	v.data[index] = value
	return nil
}

// Ref returns a pointer to the value at index.
func (v MutVec) Ref(index int) (*float64, error) {
	if err := v.check(index); err != nil {
		return nil, err
	}
	return &v.data[index], nil
}

// CopyFrom overwrites the whole vector with src.
func (v MutVec) CopyFrom(src []float64) error {
	if len(src) != len(v.data) {
		return &DimensionError{Expected: len(v.data), Actual: len(src)}
	}
	copy(v.data, src)
	return nil
}

// Fill sets every value to x.
func (v MutVec) Fill(x float64) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Mul multiplies the vector in-place by weights, e.g. a lifter or a
// per-coefficient normalization.
func (v MutVec) Mul(weights []float64) error {
	if len(weights) != len(v.data) {
		return &DimensionError{Expected: len(v.data), Actual: len(weights)}
	}
	if len(v.data) == 0 {
		return nil
	}
	vecmath.MulBlockInPlace(v.data, weights)
	return nil
}
