package filtering_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"sysid/filtering"
)

// TestCentralDifference_QuadraticDerivative verifies spec.md §8 testable
// property 4 for (D,N)=(1,3): the central-difference filter applied to
// f(x)=x^2 matches f'(x)=2x within O(h^2).
func TestCentralDifference_QuadraticDerivative(t *testing.T) {
	const h = 0.005
	cd, err := filtering.NewCentralDifference(1, 3, h)
	require.NoError(t, err)

	x := -20.0
	var lastReady bool
	var lastValue float64
	for i := 0; i < 5; i++ {
		f := x * x
		lastValue, lastReady = cd.Push(f)
		x += h
	}
	require.True(t, lastReady)

	// After 5 pushes the window is centered on the 4th sample (index 3,
	// 0-based), i.e. x = -20 + 3h.
	center := -20.0 + 3*h
	want := 2 * center
	require.InDelta(t, want, lastValue, math.Pow(h, 2)*10)
}

func TestCentralDifference_RejectsEvenStencil(t *testing.T) {
	_, err := filtering.NewCentralDifference(1, 4, 0.01)
	require.ErrorIs(t, err, filtering.ErrInvalidWindow)
}

func TestCentralDifference_NotReadyUntilFilled(t *testing.T) {
	cd, err := filtering.NewCentralDifference(1, 5, 0.01)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, ready := cd.Push(float64(i))
		require.False(t, ready)
	}
	_, ready := cd.Push(4)
	require.True(t, ready)
}
