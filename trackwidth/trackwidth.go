package trackwidth

import (
	"math"

	"sysid/dataset"
	"sysid/filtering"
)

// Epsilon is the minimum |headingDelta| magnitude treated as a genuine
// rotation rather than noise.
const Epsilon = 1e-9

// CalculateTrackWidth returns (|leftDelta| + |rightDelta|) / |headingDelta|,
// per spec.md §4.E.
func CalculateTrackWidth(leftDelta, rightDelta, headingDelta float64) (float64, error) {
	if math.Abs(headingDelta) < Epsilon {
		return 0, ErrZeroHeadingChange
	}
	return (math.Abs(leftDelta) + math.Abs(rightDelta)) / math.Abs(headingDelta), nil
}

// FromRun reads the endpoint position deltas directly off the left and
// right runs of an angular drivetrain test and the heading delta
// observed over the same interval, and estimates the track width.
func FromRun(left, right dataset.TestRun, headingDelta float64) (float64, error) {
	if left.Len() == 0 || right.Len() == 0 {
		return 0, filtering.ErrInsufficientData
	}
	leftDelta := left.Last().Position - left.First().Position
	rightDelta := right.Last().Position - right.First().Position
	return CalculateTrackWidth(leftDelta, rightDelta, headingDelta)
}
