package feedforward_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sysid/analysistype"
	"sysid/dataset"
	"sysid/feedforward"
)

// TestFit_Simple_RecoversSyntheticPlant exercises spec.md §8 testable
// property 5: for V = Ks*sign(v) + Kv*v + Ka*a, OLS recovers (Ks,Kv,Ka)
// exactly given noise-free data.
func TestFit_Simple_RecoversSyntheticPlant(t *testing.T) {
	const ks, kv, ka = 0.8, 2.5, 0.3

	var pts []dataset.PreparedData
	v := -3.0
	for i := 0; i < 40; i++ {
		a := 1.5
		voltage := ks*sign(v) + kv*v + ka*a
		pts = append(pts, dataset.PreparedData{Velocity: v, Acceleration: a, Voltage: voltage})
		v += 0.15
	}

	result, err := feedforward.Fit(analysistype.Simple, pts)
	require.NoError(t, err)
	require.InDelta(t, ks, result.Ks, 1e-9)
	require.InDelta(t, kv, result.Kv, 1e-9)
	require.InDelta(t, ka, result.Ka, 1e-9)
	require.InDelta(t, 1.0, result.R2, 1e-9)
	require.True(t, result.IsPhysical())
}

func TestFit_Arm_IncludesCosineGain(t *testing.T) {
	const ks, kcos, kv, ka = 0.5, 1.2, 3.0, 0.4

	var pts []dataset.PreparedData
	v := -2.0
	for i := 0; i < 30; i++ {
		cos := 0.5 + 0.1*v*v
		a := 0.2
		voltage := ks*sign(v) + kcos*cos + kv*v + ka*a
		pts = append(pts, dataset.PreparedData{Velocity: v, Acceleration: a, Cos: cos, Voltage: voltage})
		v += 0.15
	}

	result, err := feedforward.Fit(analysistype.Arm, pts)
	require.NoError(t, err)
	require.InDelta(t, kcos, result.Kcos, 1e-8)
	require.InDelta(t, kv, result.Kv, 1e-8)
}

func TestFit_EmptyDataset(t *testing.T) {
	_, err := feedforward.Fit(analysistype.Simple, nil)
	require.ErrorIs(t, err, feedforward.ErrEmptyDataset)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
