package gains_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sysid/analysistype"
	"sysid/dataset"
	"sysid/feedback"
	"sysid/feedforward"
	"sysid/gains"
)

func TestNewAndString(t *testing.T) {
	ff := feedforward.Result{Type: analysistype.Simple, Ks: 0.5, Kv: 2.0, Ka: 0.3, R2: 0.99}
	fb, err := feedback.Compute(ff.Kv, ff.Ka, dataset.DefaultSettings())
	require.NoError(t, err)

	g := gains.New(ff, fb)
	require.Nil(t, g.TrackWidth)
	require.NotEmpty(t, g.String())

	g2 := g.WithTrackWidth(0.6)
	require.NotNil(t, g2.TrackWidth)
	require.True(t, strings.Contains(g2.String(), "trackWidth"))
	require.Nil(t, g.TrackWidth, "WithTrackWidth must not mutate the receiver")
}
