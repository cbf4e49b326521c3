package telemetry_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sysid/telemetry"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Infof(format string, args ...any)  { r.lines = append(r.lines, format) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.lines = append(r.lines, format) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.lines = append(r.lines, format) }

func TestWithRunID_PrefixesEveryLine(t *testing.T) {
	base := &recordingLogger{}
	id := uuid.New()
	tagged := telemetry.WithRunID(base, id)

	tagged.Infof("hello %d", 1)
	tagged.Warnf("careful")
	tagged.Errorf("broke")

	require.Len(t, base.lines, 3)
	for _, line := range base.lines {
		require.Contains(t, line, id.String())
	}
}

func TestNewStdLogger_DoesNotPanic(t *testing.T) {
	logger := telemetry.NewStdLogger()
	require.NotPanics(t, func() {
		logger.Infof("ready")
	})
}
