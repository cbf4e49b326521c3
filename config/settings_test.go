package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sysid/config"
	"sysid/dataset"
)

func TestParse_Defaults(t *testing.T) {
	s, err := config.Parse([]byte(`{
		"motionThreshold": 0.05,
		"windowSize": 9,
		"velocityThreshold": 0.1,
		"preset": {"name": "default"},
		"lqr": {"qPos": 1, "qVel": 1, "qEff": 12}
	}`))
	require.NoError(t, err)
	require.Equal(t, dataset.Combined, s.Dataset)
	require.Equal(t, dataset.Position, s.Type)
	require.Equal(t, dataset.PolePlacement, s.GainMethod)
	require.Equal(t, 0.02, s.Preset.LoopPeriod)
}

func TestParse_NamedPresetResolved(t *testing.T) {
	s, err := config.Parse([]byte(`{"windowSize": 9, "preset": {"name": "roborio-fast"}}`))
	require.NoError(t, err)
	require.Equal(t, 0.005, s.Preset.LoopPeriod)
	require.Equal(t, 0.002, s.Preset.ObservationDelay)
}

func TestParse_UnknownPreset(t *testing.T) {
	_, err := config.Parse([]byte(`{"windowSize": 9, "preset": {"name": "bogus"}}`))
	require.ErrorIs(t, err, config.ErrUnknownPreset)
}

func TestParse_InvalidWindowSize(t *testing.T) {
	_, err := config.Parse([]byte(`{"windowSize": 8}`))
	require.ErrorIs(t, err, config.ErrInvalidWindowSize)
}

func TestParse_UnknownDataset(t *testing.T) {
	_, err := config.Parse([]byte(`{"windowSize": 9, "dataset": "Sideways"}`))
	require.ErrorIs(t, err, config.ErrUnknownDataset)
}

func TestParse_GainMethodLQR(t *testing.T) {
	s, err := config.Parse([]byte(`{"windowSize": 9, "gainMethod": "LQR"}`))
	require.NoError(t, err)
	require.Equal(t, dataset.LQR, s.GainMethod)
}

func TestValidate_NegativeThreshold(t *testing.T) {
	s := dataset.DefaultSettings()
	s.MotionThreshold = -1
	require.ErrorIs(t, config.Validate(s), config.ErrNegativeThreshold)
}

func TestParseYAML_Defaults(t *testing.T) {
	s, err := config.ParseYAML([]byte("windowSize: 9\npreset:\n  name: canivore\n"))
	require.NoError(t, err)
	require.Equal(t, 0.001, s.Preset.LoopPeriod)
	require.Equal(t, dataset.Combined, s.Dataset)
}
