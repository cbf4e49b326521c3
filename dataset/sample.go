package dataset

// Sample is a single raw row read from the experiment JSON, before any
// conditioning. General mechanisms (Simple, Elevator, Arm) carry the
// linear fields only; drivetrains additionally populate the *Right
// fields and Heading/HeadingRate.
type Sample struct {
	Time     float64
	Voltage  float64
	Position float64
	Velocity float64

	// Drivetrain-only fields (9-column rows). RightVoltage etc. are zero
	// for general mechanisms.
	RightVoltage  float64
	RightPosition float64
	RightVelocity float64
	Heading       float64
	HeadingRate   float64
}

// PreparedData is a conditioned sample: (t, voltage, position, velocity,
// dt, acceleration, cos). dt is the sampling interval to the next point;
// acceleration is a central finite-difference estimate; cos is cos(position)
// in radians, populated for Arm analyses only (zero otherwise).
type PreparedData struct {
	Time         float64
	Voltage      float64
	Position     float64
	Velocity     float64
	Dt           float64
	Acceleration float64
	Cos          float64
}

// TestRun is a labeled, ordered sequence of PreparedData. The four
// canonical labels are slow-forward, slow-backward, fast-forward,
// fast-backward.
type TestRun struct {
	Label string
	Data  []PreparedData
}

// Len reports the number of points in the run.
func (r TestRun) Len() int { return len(r.Data) }

// First returns the run's first point. Callers must check Len() > 0.
func (r TestRun) First() PreparedData { return r.Data[0] }

// Last returns the run's last point. Callers must check Len() > 0.
func (r TestRun) Last() PreparedData { return r.Data[len(r.Data)-1] }

// Duration returns Last().Time - First().Time. Callers must check Len() > 0.
func (r TestRun) Duration() float64 { return r.Last().Time - r.First().Time }

// Clone returns a run with an independently addressable Data slice,
// so trims on the copy never alias the original.
func (r TestRun) Clone() TestRun {
	out := make([]PreparedData, len(r.Data))
	copy(out, r.Data)
	return TestRun{Label: r.Label, Data: out}
}
