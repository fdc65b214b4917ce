package feature

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dophist/AaltoASR/internal/testutil"
)

func TestWraparoundAliasing(t *testing.T) {
	shapes := []struct{ frames, dim int }{{1, 1}, {3, 2}, {5, 13}, {8, 39}}

	for _, s := range shapes {
		t.Run(fmt.Sprintf("%dx%d", s.frames, s.dim), func(t *testing.T) {
			b, err := New(WithNumFrames(s.frames), WithDim(s.dim))
			require.NoError(t, err)

			for frame := -2 * s.frames; frame < 3*s.frames; frame++ {
				want := testutil.RampFrame(frame, s.dim)
				require.NoError(t, b.MutFrame(frame).CopyFrom(want))

				for k := -2; k <= 2; k++ {
					alias := frame + k*s.frames
					require.Equal(t, want, testutil.VecValues(t, b.Frame(alias)), "frame %d alias %d", frame, alias)
				}
			}
		})
	}
}

func TestOverwriteOneWindowAhead(t *testing.T) {
	const frames, dim = 4, 3

	b, err := New(WithNumFrames(frames), WithDim(dim))
	require.NoError(t, err)

	require.NoError(t, b.MutFrame(2).CopyFrom([]float64{1, 1, 1}))
	require.NoError(t, b.MutFrame(2+frames).CopyFrom([]float64{2, 3, 4}))

	for _, f := range []int{2, 2 + frames, 2 - frames, 2 + 10*frames} {
		require.Equal(t, []float64{2, 3, 4}, testutil.VecValues(t, b.Frame(f)), "frame %d", f)
	}
}

func TestSlidingWindowRetainsLastFrames(t *testing.T) {
	const frames, dim, total = 5, 4, 23

	b, err := New(WithNumFrames(frames), WithDim(dim))
	require.NoError(t, err)

	input := testutil.DeterministicFrames(42, total, dim)
	for frame, row := range input {
		require.NoError(t, b.MutFrame(frame).CopyFrom(row))
	}

	for back := 0; back < frames; back++ {
		frame := total - 1 - back
		require.Equal(t, input[frame], testutil.VecValues(t, b.Frame(frame)))
	}
}

func TestDimensionBoundsOnEveryFrame(t *testing.T) {
	b, err := New(WithNumFrames(3), WithDim(2))
	require.NoError(t, err)

	for frame := -4; frame <= 4; frame++ {
		for _, idx := range []int{-1, 2, 3} {
			_, err := b.Frame(frame).At(idx)
			require.True(t, errors.Is(err, ErrOutOfBounds), "frame %d index %d", frame, idx)
			require.ErrorIs(t, b.MutFrame(frame).Set(idx, 1), ErrOutOfBounds)
		}
	}
}
