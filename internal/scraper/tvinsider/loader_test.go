package tvinsider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScrollTarget replays a scripted sequence of document heights.
type fakeScrollTarget struct {
	heights   []float64
	reads     int
	scrolls   int
	heightErr error
	scrollErr error
}

func (f *fakeScrollTarget) Height() (float64, error) {
	if f.heightErr != nil {
		return 0, f.heightErr
	}
	h := f.heights[f.reads]
	if f.reads < len(f.heights)-1 {
		f.reads++
	}
	return h, nil
}

func (f *fakeScrollTarget) ScrollToBottom() error {
	f.scrolls++
	return f.scrollErr
}

func TestScrollUntilStableStopsWhenHeightSettles(t *testing.T) {
	// Heights grow twice, then hold: 1000 -> 2000 -> 3000 -> 3000.
	target := &fakeScrollTarget{heights: []float64{1000, 2000, 2000, 3000, 3000, 3000}}

	err := scrollUntilStable(target, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, 3, target.scrolls)
}

func TestScrollUntilStableHonorsCap(t *testing.T) {
	heights := make([]float64, 20)
	for i := range heights {
		heights[i] = float64((i + 1) * 1000)
	}
	target := &fakeScrollTarget{heights: heights}

	err := scrollUntilStable(target, 5, 0)

	require.NoError(t, err)
	assert.Equal(t, 5, target.scrolls)
}

func TestScrollUntilStablePropagatesHeightError(t *testing.T) {
	target := &fakeScrollTarget{heightErr: errors.New("page gone")}

	err := scrollUntilStable(target, 10, 0)

	require.Error(t, err)
	assert.Zero(t, target.scrolls)
}

func TestScrollUntilStablePropagatesScrollError(t *testing.T) {
	target := &fakeScrollTarget{heights: []float64{1000}, scrollErr: errors.New("eval failed")}

	err := scrollUntilStable(target, 10, 0)

	require.Error(t, err)
	assert.Equal(t, 1, target.scrolls)
}
