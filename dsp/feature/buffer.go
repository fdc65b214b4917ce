package feature

import (
	"fmt"
	"math"
)

// Buffer stores NumFrames feature vectors of Dim values in a circular
// window. Frame numbers of any sign wrap modulo NumFrames.
//
// The zero value is not ready for use; call New or Resize first.
type Buffer struct {
	dim       int
	numFrames int
	data      []float64
}

// New returns a zero-filled buffer. Without options the buffer holds a
// single frame of dimension one.
func New(opts ...Option) (*Buffer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.numFrames <= 0 {
		return nil, fmt.Errorf("feature: num frames must be > 0: %d", cfg.numFrames)
	}
	if cfg.dim <= 0 {
		return nil, fmt.Errorf("feature: dim must be > 0: %d", cfg.dim)
	}
	if cfg.dim > math.MaxInt/cfg.numFrames {
		return nil, fmt.Errorf("feature: %d frames of dim %d overflow", cfg.numFrames, cfg.dim)
	}

	b := &Buffer{}
	b.Resize(cfg.numFrames, cfg.dim)
	return b, nil
}

// Resize sets the window shape and allocates fresh storage, even when the
// shape is unchanged. All stored frames are invalidated and views obtained
// before the call no longer refer to the buffer.
//
// Resize panics if numFrames or dim is not positive, or if the window
// does not fit in an int.
func (b *Buffer) Resize(numFrames, dim int) {
	checkShape(numFrames, dim)
	b.numFrames = numFrames
	b.dim = dim
	b.data = make([]float64, numFrames*dim)
}

// reshape sets the shape like Resize but keeps the backing array when it
// is large enough. The reused values are zeroed.
func (b *Buffer) reshape(numFrames, dim int) {
	checkShape(numFrames, dim)
	n := numFrames * dim
	if cap(b.data) < n {
		b.Resize(numFrames, dim)
		return
	}
	b.numFrames = numFrames
	b.dim = dim
	b.data = b.data[:n]
	b.Reset()
}

func checkShape(numFrames, dim int) {
	if numFrames <= 0 {
		panic(fmt.Sprintf("feature: Resize with num frames %d, must be > 0", numFrames))
	}
	if dim <= 0 {
		panic(fmt.Sprintf("feature: Resize with dim %d, must be > 0", dim))
	}
	if dim > math.MaxInt/numFrames {
		panic(fmt.Sprintf("feature: Resize with %d frames of dim %d overflows", numFrames, dim))
	}
}

// Dim returns the dimension of the stored vectors.
func (b *Buffer) Dim() int {
	return b.dim
}

// NumFrames returns the number of frames in the window.
func (b *Buffer) NumFrames() int {
	return b.numFrames
}

// Slot returns the physical slot in [0, NumFrames) that frame maps to.
func (b *Buffer) Slot(frame int) int {
	if b.numFrames == 0 {
		panic("feature: Buffer used before Resize")
	}
	slot := frame % b.numFrames
	if slot < 0 {
		slot += b.numFrames
	}
	return slot
}

// Frame returns a read-only view of frame.
func (b *Buffer) Frame(frame int) Vec {
	return Vec{data: b.row(frame)}
}

// MutFrame returns a writable view of frame.
func (b *Buffer) MutFrame(frame int) MutVec {
	return MutVec{Vec{data: b.row(frame)}}
}

// Reset zeroes every stored value and keeps the shape.
func (b *Buffer) Reset() {
	for i := range b.data {
		b.data[i] = 0
	}
}

func (b *Buffer) row(frame int) []float64 {
	start := b.Slot(frame) * b.dim
	end := start + b.dim
	return b.data[start:end:end]
}
