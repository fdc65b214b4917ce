package testutil

import "math/rand"

// RampFrame returns a frame whose values encode the frame number and the
// coefficient index as frame*100 + index, so misplaced rows are easy to spot.
func RampFrame(frame, dim int) []float64 {
	out := make([]float64, dim)
	for i := range out {
		out[i] = float64(frame*100 + i)
	}
	return out
}

// DeterministicFrames generates numFrames frames of dim values in [-1, 1)
// with a fixed seed for reproducibility.
func DeterministicFrames(seed int64, numFrames, dim int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, numFrames)
	for f := range out {
		row := make([]float64, dim)
		for i := range row {
			row[i] = rng.Float64()*2 - 1
		}
		out[f] = row
	}
	return out
}
