package manager

import (
	"fmt"
	"math"

	"sysid/analysistype"
	"sysid/dataset"
	"sysid/filtering"
	"sysid/trackwidth"
)

func sliceDuration(data []dataset.PreparedData) float64 {
	return data[len(data)-1].Time - data[0].Time
}

func toRadians(angle float64, unit string) float64 {
	switch unit {
	case "Degrees":
		return angle * math.Pi / 180
	case "Rotations":
		return angle * 2 * math.Pi
	default: // "Radians" and linear units, where the cos term is unused
		return angle
	}
}

func applyCos(data []dataset.PreparedData, unit string) {
	for i := range data {
		data[i].Cos = math.Cos(toRadians(data[i].Position, unit))
	}
}

// conditionDirection runs one direction's worth of the spec.md §4.F
// pipeline (quasistatic trim, raw and median-filtered acceleration,
// optional Arm cosine term, step-voltage trim) and returns its raw and
// filtered Dataset. useMedianFilter is false only for the angular
// drivetrain, which applies no median filter at all — its "filtered"
// Dataset is then identical to its raw one.
//
// This threads m.settings.StepTestDuration and m.minDuration across
// calls exactly as the source's mutable m_minDuration/m_maxDuration
// accumulators did (see DESIGN.md): each step-trim call both consumes
// and updates them, so the forward call's observed duration becomes the
// backward call's truncation ceiling.
func (m *AnalysisManager) conditionDirection(slowData, fastData []dataset.PreparedData, dir dataset.Direction, maxStepTime float64, useMedianFilter bool) (dataset.Dataset, dataset.Dataset, error) {
	slowRun := dataset.TestRun{Label: dir.String() + " slow", Data: append([]dataset.PreparedData(nil), slowData...)}
	filtering.TrimQuasistatic(&slowRun, m.settings.MotionThreshold)

	rawSlowAccel := filtering.Acceleration(slowRun.Data, m.settings.WindowSize)
	rawFastAccel := filtering.Acceleration(fastData, m.settings.WindowSize)

	filtSlowAccel := rawSlowAccel
	filtFastAccel := rawFastAccel
	if useMedianFilter {
		medSlow, err := filtering.ApplyMedianFilter(slowRun.Data, m.settings.WindowSize)
		if err != nil {
			return dataset.Dataset{}, dataset.Dataset{}, fmt.Errorf("manager: %s slow run: %w", dir, err)
		}
		filtSlowAccel = filtering.Acceleration(medSlow, m.settings.WindowSize)

		medFast, err := filtering.ApplyMedianFilter(fastData, m.settings.WindowSize)
		if err != nil {
			return dataset.Dataset{}, dataset.Dataset{}, fmt.Errorf("manager: %s fast run: %w", dir, err)
		}
		filtFastAccel = filtering.Acceleration(medFast, m.settings.WindowSize)
	}

	if analysistype.IsArm(m.analysisType) {
		applyCos(rawSlowAccel, m.unit)
		applyCos(rawFastAccel, m.unit)
		if useMedianFilter {
			applyCos(filtSlowAccel, m.unit)
			applyCos(filtFastAccel, m.unit)
		}
	}

	rawFastRun := dataset.TestRun{Label: dir.String() + " fast (raw)", Data: rawFastAccel}
	rawTrimmed, rawDuration, _, err := filtering.TrimStepVoltage(rawFastRun, m.settings.WindowSize, m.settings.StepTestDuration, math.Inf(1), maxStepTime)
	if err != nil {
		return dataset.Dataset{}, dataset.Dataset{}, fmt.Errorf("manager: %w", err)
	}
	m.settings.StepTestDuration = rawDuration

	filtFastRun := dataset.TestRun{Label: dir.String() + " fast (filtered)", Data: filtFastAccel}
	filtTrimmed, filtDuration, newMin, err := filtering.TrimStepVoltage(filtFastRun, m.settings.WindowSize, m.settings.StepTestDuration, m.minDuration, maxStepTime)
	if err != nil {
		return dataset.Dataset{}, dataset.Dataset{}, fmt.Errorf("manager: %w", err)
	}
	m.settings.StepTestDuration = filtDuration
	m.minDuration = newMin
	m.startTimes[dir] = filtTrimmed.First().Time

	rawDS := dataset.Dataset{Quasistatic: rawSlowAccel, Dynamic: rawTrimmed.Data}
	filtDS := dataset.Dataset{Quasistatic: filtSlowAccel, Dynamic: filtTrimmed.Data}
	return rawDS, filtDS, nil
}

// prepareGeneral implements the Simple/Elevator/Arm pipeline: a single
// Forward/Backward/Combined publication from 4-column rows.
func (m *AnalysisManager) prepareGeneral() error {
	slowFwd, err := toGeneral(m.doc.SlowForward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	slowBwd, err := toGeneral(m.doc.SlowBackward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	fastFwd, err := toGeneral(m.doc.FastForward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	fastBwd, err := toGeneral(m.doc.FastBackward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	if len(fastFwd) == 0 || len(fastBwd) == 0 {
		return fmt.Errorf("manager: %w: fast run is empty", filtering.ErrInsufficientData)
	}

	maxStepTime := math.Max(sliceDuration(fastFwd), sliceDuration(fastBwd))

	rawFwd, filtFwd, err := m.conditionDirection(slowFwd, fastFwd, dataset.Forward, maxStepTime, true)
	if err != nil {
		return err
	}
	rawBwd, filtBwd, err := m.conditionDirection(slowBwd, fastBwd, dataset.Backward, maxStepTime, true)
	if err != nil {
		return err
	}

	m.rawDatasets.Set(dataset.Forward, rawFwd)
	m.rawDatasets.Set(dataset.Backward, rawBwd)
	m.rawDatasets.Set(dataset.Combined, dataset.CombineDatasets(rawFwd, rawBwd))

	m.filteredDatasets.Set(dataset.Forward, filtFwd)
	m.filteredDatasets.Set(dataset.Backward, filtBwd)
	m.filteredDatasets.Set(dataset.Combined, dataset.CombineDatasets(filtFwd, filtBwd))
	return nil
}

// prepareLinearDrivetrain implements the 9-column linear-drivetrain
// pipeline: left and right sides conditioned independently, then
// published both side-qualified and merged (concatenated) per the
// resolved Open Question in spec.md §9.
func (m *AnalysisManager) prepareLinearDrivetrain() error {
	slowFwd, err := toDrivetrain(m.doc.SlowForward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	slowBwd, err := toDrivetrain(m.doc.SlowBackward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	fastFwd, err := toDrivetrain(m.doc.FastForward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	fastBwd, err := toDrivetrain(m.doc.FastBackward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	if len(fastFwd.left) == 0 || len(fastBwd.left) == 0 {
		return fmt.Errorf("manager: %w: fast run is empty", filtering.ErrInsufficientData)
	}

	maxStepTime := math.Max(sliceDuration(fastFwd.left), sliceDuration(fastBwd.left))

	rawLeftFwd, filtLeftFwd, err := m.conditionDirection(slowFwd.left, fastFwd.left, dataset.LeftForward, maxStepTime, true)
	if err != nil {
		return err
	}
	rawLeftBwd, filtLeftBwd, err := m.conditionDirection(slowBwd.left, fastBwd.left, dataset.LeftBackward, maxStepTime, true)
	if err != nil {
		return err
	}
	rawRightFwd, filtRightFwd, err := m.conditionDirection(slowFwd.right, fastFwd.right, dataset.RightForward, maxStepTime, true)
	if err != nil {
		return err
	}
	rawRightBwd, filtRightBwd, err := m.conditionDirection(slowBwd.right, fastBwd.right, dataset.RightBackward, maxStepTime, true)
	if err != nil {
		return err
	}

	m.rawDatasets.Set(dataset.LeftForward, rawLeftFwd)
	m.rawDatasets.Set(dataset.LeftBackward, rawLeftBwd)
	m.rawDatasets.Set(dataset.LeftCombined, dataset.CombineDatasets(rawLeftFwd, rawLeftBwd))
	m.rawDatasets.Set(dataset.RightForward, rawRightFwd)
	m.rawDatasets.Set(dataset.RightBackward, rawRightBwd)
	m.rawDatasets.Set(dataset.RightCombined, dataset.CombineDatasets(rawRightFwd, rawRightBwd))

	m.filteredDatasets.Set(dataset.LeftForward, filtLeftFwd)
	m.filteredDatasets.Set(dataset.LeftBackward, filtLeftBwd)
	m.filteredDatasets.Set(dataset.LeftCombined, dataset.CombineDatasets(filtLeftFwd, filtLeftBwd))
	m.filteredDatasets.Set(dataset.RightForward, filtRightFwd)
	m.filteredDatasets.Set(dataset.RightBackward, filtRightBwd)
	m.filteredDatasets.Set(dataset.RightCombined, dataset.CombineDatasets(filtRightFwd, filtRightBwd))

	mergedRawFwd := dataset.CombineDatasets(rawLeftFwd, rawRightFwd)
	mergedRawBwd := dataset.CombineDatasets(rawLeftBwd, rawRightBwd)
	m.rawDatasets.Set(dataset.Forward, mergedRawFwd)
	m.rawDatasets.Set(dataset.Backward, mergedRawBwd)
	m.rawDatasets.Set(dataset.Combined, dataset.CombineDatasets(mergedRawFwd, mergedRawBwd))

	mergedFiltFwd := dataset.CombineDatasets(filtLeftFwd, filtRightFwd)
	mergedFiltBwd := dataset.CombineDatasets(filtLeftBwd, filtRightBwd)
	m.filteredDatasets.Set(dataset.Forward, mergedFiltFwd)
	m.filteredDatasets.Set(dataset.Backward, mergedFiltBwd)
	m.filteredDatasets.Set(dataset.Combined, dataset.CombineDatasets(mergedFiltFwd, mergedFiltBwd))
	return nil
}

// prepareAngularDrivetrain implements the rotate-in-place pipeline:
// target variables are (angle, angular rate), voltage is the two sides'
// difference (additive on rotation), no median filter is applied, and
// only Forward/Backward/Combined are published. Track width is derived
// from the raw slow-forward run's endpoint deltas.
func (m *AnalysisManager) prepareAngularDrivetrain() error {
	slowFwd, err := toAngular(m.doc.SlowForward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	slowBwd, err := toAngular(m.doc.SlowBackward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	fastFwd, err := toAngular(m.doc.FastForward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	fastBwd, err := toAngular(m.doc.FastBackward, m.unitsPerRotation)
	if err != nil {
		return err
	}
	if len(fastFwd) == 0 || len(fastBwd) == 0 {
		return fmt.Errorf("manager: %w: fast run is empty", filtering.ErrInsufficientData)
	}

	maxStepTime := math.Max(sliceDuration(fastFwd), sliceDuration(fastBwd))

	rawFwd, _, err := m.conditionDirection(slowFwd, fastFwd, dataset.Forward, maxStepTime, false)
	if err != nil {
		return err
	}
	rawBwd, _, err := m.conditionDirection(slowBwd, fastBwd, dataset.Backward, maxStepTime, false)
	if err != nil {
		return err
	}

	m.rawDatasets.Set(dataset.Forward, rawFwd)
	m.rawDatasets.Set(dataset.Backward, rawBwd)
	m.rawDatasets.Set(dataset.Combined, dataset.CombineDatasets(rawFwd, rawBwd))
	m.filteredDatasets.Set(dataset.Forward, rawFwd)
	m.filteredDatasets.Set(dataset.Backward, rawBwd)
	m.filteredDatasets.Set(dataset.Combined, dataset.CombineDatasets(rawFwd, rawBwd))

	if len(m.doc.SlowForward) == 0 {
		return fmt.Errorf("manager: %w: slow-forward run is empty", filtering.ErrInsufficientData)
	}
	first := m.doc.SlowForward[0]
	last := m.doc.SlowForward[len(m.doc.SlowForward)-1]
	leftRun := rawPositionRun(m.doc.SlowForward, 3)
	rightRun := rawPositionRun(m.doc.SlowForward, 4)
	width, err := trackwidth.FromRun(leftRun, rightRun, last[7]-first[7])
	if err != nil {
		return err
	}
	m.trackWidth = &width
	return nil
}

// rawPositionRun projects one position column out of raw drivetrain
// rows into the minimal dataset.TestRun trackwidth.FromRun needs: just
// enough of PreparedData.Position, in row order, for its endpoint delta.
func rawPositionRun(rows [][]float64, column int) dataset.TestRun {
	data := make([]dataset.PreparedData, len(rows))
	for i, row := range rows {
		data[i] = dataset.PreparedData{Time: row[0], Position: row[column]}
	}
	return dataset.TestRun{Data: data}
}
