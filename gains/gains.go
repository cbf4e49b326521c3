package gains

import (
	"fmt"

	"github.com/SeanJxie/polygo"

	"sysid/feedback"
	"sysid/feedforward"
)

// Gains is the final output of one analysis run: the feedforward fit,
// the derived feedback gains, and — for angular drivetrains only — the
// estimated track width.
type Gains struct {
	Feedforward feedforward.Result
	Feedback    feedback.Result
	TrackWidth  *float64
}

// New bundles a feedforward fit with its derived feedback gains. Set
// TrackWidth afterward for angular-drivetrain analyses.
func New(ff feedforward.Result, fb feedback.Result) Gains {
	return Gains{Feedforward: ff, Feedback: fb}
}

// WithTrackWidth returns a copy of g with TrackWidth populated.
func (g Gains) WithTrackWidth(width float64) Gains {
	g.TrackWidth = &width
	return g
}

// String renders the fitted feedforward voltage model as a human-readable
// polynomial in velocity (holding acceleration and any gravity/cosine
// term at zero), followed by the feedback gains and, if present, the
// track width.
func (g Gains) String() string {
	poly, err := polygo.NewRealPolynomial([]float64{g.Feedforward.Ks, g.Feedforward.Kv})
	var curve string
	if err != nil {
		curve = fmt.Sprintf("Ks=%.6g Kv=%.6g Ka=%.6g", g.Feedforward.Ks, g.Feedforward.Kv, g.Feedforward.Ka)
	} else {
		curve = poly.String()
	}

	s := fmt.Sprintf("%s  %s", curve, g.Feedback.String())
	if g.TrackWidth != nil {
		s += fmt.Sprintf("  trackWidth=%.6g", *g.TrackWidth)
	}
	return s
}
