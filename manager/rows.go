package manager

import (
	"fmt"
	"math"

	"sysid/dataset"
)

// toGeneral converts 4-column rows [t, V, p, v] into PreparedData,
// scaling position and velocity by factor and sign-aligning voltage to
// the scaled velocity, per spec.md §4.F's general-mechanism pipeline.
func toGeneral(rows [][]float64, factor float64) ([]dataset.PreparedData, error) {
	out := make([]dataset.PreparedData, len(rows))
	for i, row := range rows {
		if len(row) != 4 {
			return nil, fmt.Errorf("%w: expected 4 columns, got %d", ErrSchemaMismatch, len(row))
		}
		v := row[3] * factor
		p := row[2] * factor
		out[i] = dataset.PreparedData{
			Time:     row[0],
			Voltage:  math.Copysign(row[1], v),
			Position: p,
			Velocity: v,
		}
	}
	return out, nil
}

// drivetrainSides is the result of splitting 9-column drivetrain rows
// into their independent left and right PreparedData sequences, plus
// the raw (unscaled) heading and position columns. The angular
// drivetrain pipeline does not use this type; it reads rows via toAngular.
type drivetrainSides struct {
	left, right    []dataset.PreparedData
	rawHeading     []float64
	rawHeadingRate []float64
	rawLeftPos     []float64
	rawRightPos    []float64
}

func toDrivetrain(rows [][]float64, factor float64) (drivetrainSides, error) {
	var sides drivetrainSides
	sides.left = make([]dataset.PreparedData, len(rows))
	sides.right = make([]dataset.PreparedData, len(rows))
	sides.rawHeading = make([]float64, len(rows))
	sides.rawHeadingRate = make([]float64, len(rows))
	sides.rawLeftPos = make([]float64, len(rows))
	sides.rawRightPos = make([]float64, len(rows))

	for i, row := range rows {
		if len(row) != 9 {
			return drivetrainSides{}, fmt.Errorf("%w: expected 9 columns, got %d", ErrSchemaMismatch, len(row))
		}
		t := row[0]
		vl := row[5] * factor
		vr := row[6] * factor
		pl := row[3] * factor
		pr := row[4] * factor

		sides.left[i] = dataset.PreparedData{Time: t, Voltage: math.Copysign(row[1], vl), Position: pl, Velocity: vl}
		sides.right[i] = dataset.PreparedData{Time: t, Voltage: math.Copysign(row[2], vr), Position: pr, Velocity: vr}
		sides.rawHeading[i] = row[7]
		sides.rawHeadingRate[i] = row[8]
		sides.rawLeftPos[i] = row[3]
		sides.rawRightPos[i] = row[4]
	}
	return sides, nil
}

// toAngular builds the angle/angular-rate PreparedData sequence for an
// angular-drivetrain row set: voltage is the left-minus-right command
// (which equals 2x either side's magnitude during a symmetric point
// turn, i.e. "doubled"), sign-aligned to the scaled angular rate.
func toAngular(rows [][]float64, factor float64) ([]dataset.PreparedData, error) {
	out := make([]dataset.PreparedData, len(rows))
	for i, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("%w: expected 9 columns, got %d", ErrSchemaMismatch, len(row))
		}
		rate := row[8] * factor
		voltage := row[1] - row[2]
		out[i] = dataset.PreparedData{
			Time:     row[0],
			Voltage:  math.Copysign(voltage, rate),
			Position: row[7] * factor,
			Velocity: rate,
		}
	}
	return out, nil
}
