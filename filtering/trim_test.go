package filtering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sysid/dataset"
	"sysid/filtering"
)

// TestTrimQuasistatic_Invariant checks spec.md §8 invariant 2: every
// surviving point has |v| >= threshold.
func TestTrimQuasistatic_Invariant(t *testing.T) {
	run := dataset.TestRun{
		Label: "slow-forward",
		Data: []dataset.PreparedData{
			{Voltage: 1, Velocity: 0.01},
			{Voltage: 1, Velocity: 0.2},
			{Voltage: 0, Velocity: 5},
			{Voltage: -1, Velocity: -0.3},
		},
	}

	filtering.TrimQuasistatic(&run, 0.05)

	require.Len(t, run.Data, 2)
	for _, pt := range run.Data {
		require.GreaterOrEqual(t, absf(pt.Velocity), 0.05)
		require.GreaterOrEqual(t, absf(pt.Voltage), filtering.Epsilon)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TestTrimStepVoltage_DecayingTransient exercises a clean, unambiguous
// worked example: acceleration rises above the noise floor, peaks, then
// decays back toward zero. The trim should retain from the first
// above-floor sample through the peak sample, and report the observed
// duration and minTime per spec.md §3 invariant 5.
func TestTrimStepVoltage_DecayingTransient(t *testing.T) {
	accel := []float64{0.001, 0.002, 8, 6, 3, 1, 0.001, 0.001}
	run := dataset.TestRun{Label: "fast-forward", Data: make([]dataset.PreparedData, len(accel))}
	for i, a := range accel {
		run.Data[i] = dataset.PreparedData{Time: float64(i), Acceleration: a}
	}

	trimmed, duration, minTime, err := filtering.TrimStepVoltage(run, 2, 0, 100, 9)
	require.NoError(t, err)

	require.Equal(t, 2.0, trimmed.First().Time, "retained run should start at the first above-floor sample")
	require.Equal(t, 2.0, trimmed.Last().Time, "retained run should end at the peak sample")
	require.InDelta(t, 0.0, duration, 1e-9)
	require.InDelta(t, 0.0, minTime, 1e-9)
}

func TestTrimStepVoltage_EmptyRunFails(t *testing.T) {
	_, _, _, err := filtering.TrimStepVoltage(dataset.TestRun{Label: "x"}, 2, 0, 100, 9)
	require.ErrorIs(t, err, filtering.ErrInsufficientData)
}

func TestTrimStepVoltage_DurationCapAppliesMaxTime(t *testing.T) {
	accel := make([]float64, 12)
	for i := range accel {
		if i == 0 {
			accel[i] = 0
			continue
		}
		// monotonically increasing so the peak is always the last sample,
		// keeping the example's duration cap the only thing that trims.
		accel[i] = float64(i)
	}
	run := dataset.TestRun{Label: "fast-forward", Data: make([]dataset.PreparedData, len(accel))}
	for i, a := range accel {
		run.Data[i] = dataset.PreparedData{Time: float64(i), Acceleration: a}
	}

	trimmed, duration, _, err := filtering.TrimStepVoltage(run, 2, 20, 100, 3)
	require.NoError(t, err)
	require.LessOrEqual(t, trimmed.Duration(), 3.0+1e-9)
	require.InDelta(t, trimmed.Duration(), duration, 1e-9)
}
