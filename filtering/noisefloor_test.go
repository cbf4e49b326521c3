package filtering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sysid/dataset"
	"sysid/filtering"
)

// TestNoiseFloor_RadiusOneSampleStdDev exercises the spec.md §8 noise-floor
// scenario's data (accel = [0,1,2,5,0.35,0.15,0,0.02,0.01,0]) against this
// implementation's documented convention: radius = window/2 (matching the
// s = window/2 convention Acceleration uses), sample (Bessel-corrected)
// standard deviation per window, averaged over every interior index.
func TestNoiseFloor_RadiusOneSampleStdDev(t *testing.T) {
	accel := []float64{0, 1, 2, 5, 0.35, 0.15, 0, 0.02, 0.01, 0}
	seq := make([]dataset.PreparedData, len(accel))
	for i, a := range accel {
		seq[i] = dataset.PreparedData{Time: float64(i), Acceleration: a}
	}

	floor := filtering.NoiseFloor(seq, 2, filtering.AccelerationOf)
	require.InDelta(t, 1.0575, floor, 1e-3)
}

func TestNoiseFloor_TooShortReturnsZero(t *testing.T) {
	seq := []dataset.PreparedData{{Acceleration: 1}, {Acceleration: 2}}
	require.Zero(t, filtering.NoiseFloor(seq, 4, filtering.AccelerationOf))
}
