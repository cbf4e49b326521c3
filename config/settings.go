package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"sysid/dataset"
	"sysid/feedback"
)

// presetConfig mirrors dataset.Preset's JSON shape, keyed by name so
// callers may override a looked-up preset's delays without re-stating
// its period and max effort.
type presetConfig struct {
	Name             string  `json:"name" yaml:"name"`
	LoopPeriod       float64 `json:"loopPeriod" yaml:"loopPeriod"`
	MaxControlEffort float64 `json:"maxControlEffort" yaml:"maxControlEffort"`
	MeasurementDelay float64 `json:"measurementDelay" yaml:"measurementDelay"`
	ControlDelay     float64 `json:"controlDelay" yaml:"controlDelay"`
}

type lqrConfig struct {
	QPosition float64 `json:"qPos" yaml:"qPos"`
	QVelocity float64 `json:"qVel" yaml:"qVel"`
	QEffort   float64 `json:"qEff" yaml:"qEff"`
}

// document is the JSON/YAML-facing shape of dataset.Settings, per
// spec.md §3's option list.
type document struct {
	MotionThreshold       float64      `json:"motionThreshold" yaml:"motionThreshold"`
	WindowSize            int          `json:"windowSize" yaml:"windowSize"`
	StepTestDuration      float64      `json:"stepTestDuration" yaml:"stepTestDuration"`
	VelocityThreshold     float64      `json:"velocityThreshold" yaml:"velocityThreshold"`
	Preset                presetConfig `json:"preset" yaml:"preset"`
	LQR                   lqrConfig    `json:"lqr" yaml:"lqr"`
	GainMethod            string       `json:"gainMethod" yaml:"gainMethod"`
	ConvertToEncoderTicks bool         `json:"convertGainsToEncTicks" yaml:"convertGainsToEncTicks"`
	Gearing               float64      `json:"gearing" yaml:"gearing"`
	CountsPerRevolution   float64      `json:"cpr" yaml:"cpr"`
	Dataset               string       `json:"dataset" yaml:"dataset"`
	Type                  string       `json:"type" yaml:"type"`
}

// Parse decodes JSON-encoded Settings, resolving the named preset
// against feedback.Presets when the document supplies only a name.
func Parse(data []byte) (dataset.Settings, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return dataset.Settings{}, fmt.Errorf("config: decode settings: %w", err)
	}
	return fromDocument(doc)
}

// ParseYAML decodes YAML-encoded Settings using the same field layout as Parse.
func ParseYAML(data []byte) (dataset.Settings, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return dataset.Settings{}, fmt.Errorf("config: decode settings: %w", err)
	}
	return fromDocument(doc)
}

func fromDocument(doc document) (dataset.Settings, error) {
	preset := dataset.Preset{
		Name:             doc.Preset.Name,
		LoopPeriod:       doc.Preset.LoopPeriod,
		MaxControlEffort: doc.Preset.MaxControlEffort,
		MeasurementDelay: doc.Preset.MeasurementDelay,
		ControlDelay:     doc.Preset.ControlDelay,
	}
	if known, ok := feedback.Preset(doc.Preset.Name); ok && preset.LoopPeriod == 0 {
		if preset.MeasurementDelay != 0 {
			known.MeasurementDelay = preset.MeasurementDelay
		}
		if preset.ControlDelay != 0 {
			known.ControlDelay = preset.ControlDelay
		}
		preset = known
	}
	preset.ObservationDelay = preset.MeasurementDelay + preset.ControlDelay

	gainMethod := dataset.PolePlacement
	if doc.GainMethod == "LQR" {
		gainMethod = dataset.LQR
	}

	direction, ok := dataset.ParseDirection(doc.Dataset)
	if doc.Dataset != "" && !ok {
		return dataset.Settings{}, fmt.Errorf("%w: %q", ErrUnknownDataset, doc.Dataset)
	}
	if doc.Dataset == "" {
		direction = dataset.Combined
	}

	mode := dataset.Position
	switch doc.Type {
	case "", "Position":
		mode = dataset.Position
	case "Velocity":
		mode = dataset.Velocity
	default:
		return dataset.Settings{}, fmt.Errorf("%w: %q", ErrUnknownFeedbackMode, doc.Type)
	}

	settings := dataset.Settings{
		MotionThreshold:   doc.MotionThreshold,
		WindowSize:        doc.WindowSize,
		StepTestDuration:  doc.StepTestDuration,
		VelocityThreshold: doc.VelocityThreshold,
		Preset:            preset,
		LQR: dataset.LQRWeights{
			QPosition: doc.LQR.QPosition,
			QVelocity: doc.LQR.QVelocity,
			QEffort:   doc.LQR.QEffort,
		},
		GainMethod:            gainMethod,
		ConvertToEncoderTicks: doc.ConvertToEncoderTicks,
		Gearing:               doc.Gearing,
		CountsPerRevolution:   doc.CountsPerRevolution,
		Dataset:               direction,
		Type:                  mode,
	}

	if err := Validate(settings); err != nil {
		return dataset.Settings{}, err
	}
	return settings, nil
}

// Validate enforces the conditioning invariants spec.md leaves implicit
// in "recognized options": odd windowSize ≥ 3, non-negative thresholds,
// and a known preset name.
func Validate(s dataset.Settings) error {
	if s.WindowSize < 3 || s.WindowSize%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWindowSize, s.WindowSize)
	}
	if s.MotionThreshold < 0 || s.VelocityThreshold < 0 || s.StepTestDuration < 0 {
		return ErrNegativeThreshold
	}
	if s.Preset.Name != "" {
		if _, ok := feedback.Preset(s.Preset.Name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPreset, s.Preset.Name)
		}
	}
	return nil
}
