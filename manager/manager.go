package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"sysid/analysistype"
	"sysid/dataset"
	"sysid/feedback"
	"sysid/feedforward"
	"sysid/gains"
	"sysid/telemetry"
)

// AnalysisManager orchestrates one experiment file: loading it,
// conditioning its test runs per mechanism family, and driving the
// feedforward/feedback/track-width pipeline, per spec.md §4.F.
type AnalysisManager struct {
	id     uuid.UUID
	path   string
	logger telemetry.Logger

	doc              document
	analysisType     analysistype.Type
	unit             string
	unitsPerRotation float64

	settings dataset.Settings

	rawDatasets      *dataset.DatasetSet
	filteredDatasets *dataset.DatasetSet
	startTimes       map[dataset.Direction]float64
	minDuration      float64
	trackWidth       *float64
}

// ID identifies this manager instance in log output (telemetry.WithRunID).
func (m *AnalysisManager) ID() uuid.UUID { return m.id }

// New loads path, validates its schema, parses its declared
// AnalysisType, and runs PrepareData. ctx governs only the initial file
// read; the analysis pipeline itself is synchronous and CPU-bound, per
// spec.md §5.
func New(ctx context.Context, path string, settings dataset.Settings, logger telemetry.Logger) (*AnalysisManager, error) {
	id := uuid.New()
	m := &AnalysisManager{
		id:       id,
		path:     path,
		logger:   telemetry.WithRunID(logger, id),
		settings: settings,
	}

	raw, err := readFileContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIoError, path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIoError, path, err)
	}
	if doc.Sysid == "" {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, path)
	}
	t, ok := analysistype.Parse(doc.Test)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnalysisType, doc.Test)
	}

	m.doc = doc
	m.analysisType = t
	m.unit = doc.Units
	m.unitsPerRotation = doc.UnitsPerRotation

	if err := m.PrepareData(); err != nil {
		m.logger.Errorf("PrepareData failed: %v", err)
		return nil, err
	}
	m.logger.Infof("loaded %s as %s", path, t.DisplayName())
	return m, nil
}

// OverrideUnits rewrites the unit label and conversion factor and
// re-runs PrepareData.
func (m *AnalysisManager) OverrideUnits(unit string, unitsPerRotation float64) error {
	m.unit = unit
	m.unitsPerRotation = unitsPerRotation
	return m.PrepareData()
}

// ResetUnitsFromJSON reloads the unit label and conversion factor from
// the stored document and re-runs PrepareData.
func (m *AnalysisManager) ResetUnitsFromJSON() error {
	m.unit = m.doc.Units
	m.unitsPerRotation = m.doc.UnitsPerRotation
	return m.PrepareData()
}

// PrepareData resets the per-run accumulators and dispatches to the
// mechanism family's Prepare variant. It is the re-entry point after a
// settings or unit change.
func (m *AnalysisManager) PrepareData() error {
	m.settings.StepTestDuration = 0
	m.minDuration = math.Inf(1)
	m.startTimes = make(map[dataset.Direction]float64)
	m.rawDatasets = dataset.NewDatasetSet()
	m.filteredDatasets = dataset.NewDatasetSet()
	m.trackWidth = nil

	switch m.analysisType.Family() {
	case analysistype.LinearDrivetrain:
		return m.prepareLinearDrivetrain()
	case analysistype.AngularDrivetrain:
		return m.prepareAngularDrivetrain()
	default:
		return m.prepareGeneral()
	}
}

// Calculate invokes FeedforwardAnalysis on the configured dataset
// direction, then FeedbackAnalysis on the resulting (Kv, Ka), per
// spec.md §4.F.
func (m *AnalysisManager) Calculate() (gains.Gains, error) {
	ds, ok := m.filteredDatasets.Select(m.settings.Dataset)
	if !ok {
		return gains.Gains{}, fmt.Errorf("manager: direction %s is not published for %s", m.settings.Dataset, m.analysisType.DisplayName())
	}

	combined := make([]dataset.PreparedData, 0, len(ds.Quasistatic)+len(ds.Dynamic))
	combined = append(combined, ds.Quasistatic...)
	combined = append(combined, ds.Dynamic...)

	ff, err := feedforward.Fit(m.analysisType, combined)
	if err != nil {
		return gains.Gains{}, fmt.Errorf("manager: %w", err)
	}
	m.logger.Infof("feedforward fit: Ks=%.4g Kv=%.4g Ka=%.4g r2=%.4g", ff.Ks, ff.Kv, ff.Ka, ff.R2)

	fb, err := feedback.Compute(ff.Kv, ff.Ka, m.settings)
	if err != nil {
		return gains.Gains{}, fmt.Errorf("manager: %w", err)
	}

	result := gains.New(ff, fb)
	if m.trackWidth != nil {
		result = result.WithTrackWidth(*m.trackWidth)
	}
	return result, nil
}
