package filtering

import (
	"sysid/dataset"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Accessor projects a field out of a PreparedData point, replacing the
// source's template specialization on column indices with a plain
// closure, per the Design Notes.
type Accessor func(dataset.PreparedData) float64

// VelocityOf and AccelerationOf are the two accessors NoiseFloor is
// invoked with by the manager and step-trim passes.
func VelocityOf(pt dataset.PreparedData) float64     { return pt.Velocity }
func AccelerationOf(pt dataset.PreparedData) float64 { return pt.Acceleration }

// NoiseFloor computes, for each interior index, the standard deviation
// of accessor(pt) over a centered window of radius window/2 (the same
// s = window/2 convention Acceleration uses), then returns the average
// of those standard deviations. Points without a full window on both
// sides contribute nothing.
func NoiseFloor(sequence []dataset.PreparedData, window int, accessor Accessor) float64 {
	s := window / 2
	n := len(sequence)
	if n <= 2*s {
		return 0
	}

	scratch := make([]float64, 2*s+1)
	stdDevs := make([]float64, 0, n-2*s)
	for i := s; i < n-s; i++ {
		for k := 0; k < len(scratch); k++ {
			scratch[k] = accessor(sequence[i-s+k])
		}
		stdDevs = append(stdDevs, stat.StdDev(scratch, nil))
	}
	if len(stdDevs) == 0 {
		return 0
	}
	return floats.Sum(stdDevs) / float64(len(stdDevs))
}
