package filtering

import (
	"fmt"
	"sort"

	"sysid/dataset"
)

// ApplyMedianFilter replaces each interior point's velocity with the
// median of the surrounding window and discards the first and last
// (window-1)/2 points (it does not zero-pad them). window must be odd
// and >= 3; sequences shorter than window fail with ErrInsufficientData.
func ApplyMedianFilter(sequence []dataset.PreparedData, window int) ([]dataset.PreparedData, error) {
	if window < 3 || window%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	if len(sequence) < window {
		return nil, fmt.Errorf("%w: need >= %d points, got %d", ErrInsufficientData, window, len(sequence))
	}

	half := (window - 1) / 2
	out := make([]dataset.PreparedData, 0, len(sequence)-window+1)
	scratch := make([]float64, window)

	for i := half; i < len(sequence)-half; i++ {
		for k := 0; k < window; k++ {
			scratch[k] = sequence[i-half+k].Velocity
		}
		sort.Float64s(scratch)

		pt := sequence[i]
		pt.Velocity = median(scratch)
		out = append(out, pt)
	}
	return out, nil
}

// median returns the median of an already-sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
