package config

import "errors"

var (
	// ErrInvalidWindowSize indicates windowSize is even or below 3.
	ErrInvalidWindowSize = errors.New("config: windowSize must be odd and at least 3")
	// ErrNegativeThreshold indicates a threshold field was negative.
	ErrNegativeThreshold = errors.New("config: thresholds must be non-negative")
	// ErrUnknownPreset indicates the named preset has no feedback.Presets entry.
	ErrUnknownPreset = errors.New("config: unrecognized preset name")
	// ErrUnknownFeedbackMode indicates the "type" field is neither Position nor Velocity.
	ErrUnknownFeedbackMode = errors.New("config: unrecognized feedback mode")
	// ErrUnknownDataset indicates the "dataset" field does not parse as a dataset.Direction.
	ErrUnknownDataset = errors.New("config: unrecognized dataset direction")
)
