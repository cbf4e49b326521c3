package filtering

import "sysid/dataset"

// Acceleration estimates acceleration for each point of sequence using
// the central-difference formula a_i = (v[i+s]-v[i-s])/(t[i+s]-t[i-s])
// with s = window/2 (integer division). Points with i < s or i >= N-s
// are dropped, as are points whose estimated acceleration is exactly
// zero — encoder quantization produces repeated velocity samples that
// would otherwise yield spurious zero-acceleration points.
func Acceleration(sequence []dataset.PreparedData, window int) []dataset.PreparedData {
	s := window / 2
	n := len(sequence)
	out := make([]dataset.PreparedData, 0, n)

	for i := s; i < n-s; i++ {
		dt := sequence[i+s].Time - sequence[i-s].Time
		if dt == 0 {
			continue
		}
		a := (sequence[i+s].Velocity - sequence[i-s].Velocity) / dt
		if a == 0 {
			continue
		}
		pt := sequence[i]
		pt.Acceleration = a
		out = append(out, pt)
	}
	return out
}
