package filtering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sysid/dataset"
	"sysid/filtering"
)

func TestAcceleration_DropsEdgesAndZeros(t *testing.T) {
	velocities := []float64{0, 1, 1, 1, 5, 9, 9}
	seq := make([]dataset.PreparedData, len(velocities))
	for i, v := range velocities {
		seq[i] = dataset.PreparedData{Time: float64(i), Velocity: v}
	}

	out := filtering.Acceleration(seq, 2)

	// window=2 -> s=1; valid i in [s, n-s) = [1,6); i=1,2,3,4,5 considered.
	// i=1: (v2-v0)/2 = (1-0)/2 = 0.5
	// i=2: (v3-v1)/2 = (1-1)/2 = 0 -> discarded
	// i=3: (v4-v2)/2 = (5-1)/2 = 2
	// i=4: (v5-v3)/2 = (9-1)/2 = 4
	// i=5: (v6-v4)/2 = (9-5)/2 = 2
	require.Len(t, out, 4)
	require.InDelta(t, 0.5, out[0].Acceleration, 1e-9)
	require.InDelta(t, 2.0, out[1].Acceleration, 1e-9)
	require.InDelta(t, 4.0, out[2].Acceleration, 1e-9)
	require.InDelta(t, 2.0, out[3].Acceleration, 1e-9)
}

func TestAcceleration_EmptyWhenTooShort(t *testing.T) {
	seq := []dataset.PreparedData{{Time: 0, Velocity: 1}, {Time: 1, Velocity: 2}}
	out := filtering.Acceleration(seq, 4)
	require.Empty(t, out)
}
