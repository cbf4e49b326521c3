package filtering

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"sysid/dataset"
)

// Epsilon is the voltage magnitude below which a point is considered to
// carry no commanded voltage, used by TrimQuasistatic.
const Epsilon = 1e-6

// TrimQuasistatic erases every point whose |velocity| < motionThreshold
// or whose |voltage| < Epsilon, in place, preserving the order of
// surviving points.
func TrimQuasistatic(run *dataset.TestRun, motionThreshold float64) {
	out := run.Data[:0]
	for _, pt := range run.Data {
		if math.Abs(pt.Velocity) < motionThreshold || math.Abs(pt.Voltage) < Epsilon {
			continue
		}
		out = append(out, pt)
	}
	run.Data = out
}

// TrimStepVoltage implements spec.md §4.A's step-voltage trim:
//  1. floor = NoiseFloor(run, windowSize, AccelerationOf)
//  2. trim everything strictly before the first index whose |acceleration|
//     exceeds floor
//  3. retain points from there through the index of maximum |acceleration|
//     in the surviving run
//  4. further truncate to t <= start.t + min(configuredDuration, maxTime)
//     when configuredDuration > 0
//
// configuredDuration is settings.stepTestDuration on entry; the returned
// duration is always recomputed as last.t-first.t of the final trimmed
// run, which is what spec.md §3 invariant 5 requires regardless of
// which branch of step 4 ran. The returned minTime is min(minTime, duration).
func TrimStepVoltage(run dataset.TestRun, windowSize int, configuredDuration, minTime, maxTime float64) (trimmed dataset.TestRun, duration, newMinTime float64, err error) {
	if run.Len() == 0 {
		return dataset.TestRun{}, 0, minTime, fmt.Errorf("%w: run %q is empty", ErrInsufficientData, run.Label)
	}

	floor := NoiseFloor(run.Data, windowSize, AccelerationOf)

	iStart := -1
	for i, pt := range run.Data {
		if math.Abs(pt.Acceleration) > floor {
			iStart = i
			break
		}
	}
	if iStart < 0 {
		return dataset.TestRun{}, 0, minTime, fmt.Errorf("%w: run %q never exceeds its noise floor", ErrInsufficientData, run.Label)
	}

	data := run.Data[iStart:]

	absAccel := make([]float64, len(data))
	for i, pt := range data {
		absAccel[i] = math.Abs(pt.Acceleration)
	}
	iPeak := floats.MaxIdx(absAccel)
	data = data[:iPeak+1]

	if configuredDuration > 0 {
		limit := math.Min(configuredDuration, maxTime)
		cutoff := data[0].Time + limit
		end := len(data)
		for i, pt := range data {
			if pt.Time > cutoff {
				end = i
				break
			}
		}
		data = data[:end]
	}

	if len(data) == 0 {
		return dataset.TestRun{}, 0, minTime, fmt.Errorf("%w: run %q emptied by step trim", ErrInsufficientData, run.Label)
	}

	out := dataset.TestRun{Label: run.Label, Data: data}
	duration = out.Last().Time - out.First().Time
	newMinTime = math.Min(minTime, duration)
	return out, duration, newMinTime, nil
}
