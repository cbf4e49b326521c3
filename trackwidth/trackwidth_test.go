package trackwidth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sysid/dataset"
	"sysid/filtering"
	"sysid/trackwidth"
)

func TestCalculateTrackWidth(t *testing.T) {
	width, err := trackwidth.CalculateTrackWidth(1.0, -1.2, 2.0)
	require.NoError(t, err)
	require.InDelta(t, 1.1, width, 1e-12)
}

func TestCalculateTrackWidth_ZeroHeadingChange(t *testing.T) {
	_, err := trackwidth.CalculateTrackWidth(1.0, 1.0, 0)
	require.ErrorIs(t, err, trackwidth.ErrZeroHeadingChange)
}

func TestFromRun(t *testing.T) {
	left := dataset.TestRun{Label: "left", Data: []dataset.PreparedData{
		{Position: 0}, {Position: 2.0},
	}}
	right := dataset.TestRun{Label: "right", Data: []dataset.PreparedData{
		{Position: 0}, {Position: -1.8},
	}}

	width, err := trackwidth.FromRun(left, right, 1.5)
	require.NoError(t, err)
	require.InDelta(t, (2.0+1.8)/1.5, width, 1e-12)
}

func TestFromRun_EmptyRun(t *testing.T) {
	_, err := trackwidth.FromRun(dataset.TestRun{}, dataset.TestRun{Data: []dataset.PreparedData{{}}}, 1.0)
	require.ErrorIs(t, err, filtering.ErrInsufficientData)
}
