package feature

import "sync"

// Pool recycles feature windows, including their backing storage, for
// processing loops that open one window per utterance.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed window of numFrames frames of dim values. Storage of
// a previously returned window is reused when it is large enough.
// It panics under the same conditions as Resize.
func (p *Pool) Get(numFrames, dim int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.reshape(numFrames, dim)
	return b
}

// Put hands a window back for reuse by a later Get. The window and every
// view taken from it must not be used afterwards, since the storage is
// handed out again.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
