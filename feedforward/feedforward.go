package feedforward

import (
	"fmt"
	"math"

	"sysid/analysistype"
	"sysid/dataset"
	"sysid/ols"
)

// Result is the fitted feedforward model. Kg is only meaningful for
// Elevator; Kcos is only meaningful for Arm — callers should check the
// AnalysisType before reading them, same as the raw Beta vector would
// require knowing the column order.
type Result struct {
	Type analysistype.Type
	Ks   float64
	Kv   float64
	Ka   float64
	Kg   float64
	Kcos float64
	Beta []float64
	RMSE float64
	R2   float64
}

// Voltage evaluates the fitted model forward for a given velocity,
// acceleration, and position term (cos(position) for Arm, 1 for
// Elevator's gravity term, ignored otherwise). This is a supplemental
// capability for residual inspection; it is not part of the fit.
func (r Result) Voltage(velocity, acceleration, positionTerm float64) float64 {
	v := r.Ks*sign(velocity) + r.Kv*velocity + r.Ka*acceleration
	switch {
	case analysistype.IsElevator(r.Type):
		v += r.Kg * positionTerm
	case analysistype.IsArm(r.Type):
		v += r.Kcos * positionTerm
	}
	return v
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

// Fit builds the regressor matrix for t's per-type column layout
// (spec.md §4.C) over combined's points and solves it with ols.Solve.
func Fit(t analysistype.Type, combined []dataset.PreparedData) (Result, error) {
	if len(combined) == 0 {
		return Result{}, ErrEmptyDataset
	}

	x := make([][]float64, len(combined))
	y := make([]float64, len(combined))
	for i, pt := range combined {
		x[i] = regressorRow(t, pt)
		y[i] = pt.Voltage
	}

	fit, err := ols.Solve(x, y)
	if err != nil {
		return Result{}, fmt.Errorf("feedforward: %w", err)
	}

	return fromBeta(t, fit), nil
}

// regressorRow returns the per-type regressor columns of spec.md §4.C's
// table, in β order.
func regressorRow(t analysistype.Type, pt dataset.PreparedData) []float64 {
	switch {
	case analysistype.IsElevator(t):
		return []float64{sign(pt.Velocity), 1, pt.Velocity, pt.Acceleration}
	case analysistype.IsArm(t):
		return []float64{sign(pt.Velocity), pt.Cos, pt.Velocity, pt.Acceleration}
	default: // Simple, Drivetrain, DrivetrainAngular
		return []float64{sign(pt.Velocity), pt.Velocity, pt.Acceleration}
	}
}

func fromBeta(t analysistype.Type, fit ols.Result) Result {
	r := Result{Type: t, Beta: fit.Beta, RMSE: fit.RMSE, R2: fit.R2}
	switch {
	case analysistype.IsElevator(t):
		r.Ks, r.Kg, r.Kv, r.Ka = fit.Beta[0], fit.Beta[1], fit.Beta[2], fit.Beta[3]
	case analysistype.IsArm(t):
		r.Ks, r.Kcos, r.Kv, r.Ka = fit.Beta[0], fit.Beta[1], fit.Beta[2], fit.Beta[3]
	default:
		r.Ks, r.Kv, r.Ka = fit.Beta[0], fit.Beta[1], fit.Beta[2]
	}
	return r
}

// IsPhysical reports whether the fitted Kv and Ka are both strictly
// positive, the precondition feedback.Compute requires.
func (r Result) IsPhysical() bool {
	return r.Kv > 0 && r.Ka > 0 && !math.IsNaN(r.Kv) && !math.IsNaN(r.Ka)
}
