package telemetry

import (
	"log"
	"os"

	"github.com/google/uuid"
)

// Logger is the leveled text sink a caller may supply to an
// AnalysisManager. Implementations must be safe for sequential use by
// a single manager; the core never calls a Logger from more than one
// goroutine at a time.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// StdLogger is the default Logger, writing leveled lines through the
// standard library's log package.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger returns a Logger writing to os.Stderr with a timestamp
// prefix, in the spirit of the teacher's own warning output.
func NewStdLogger() *StdLogger {
	return &StdLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s *StdLogger) Infof(format string, args ...any)  { s.l.Printf("INFO  "+format, args...) }
func (s *StdLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN  "+format, args...) }
func (s *StdLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }

// WithRunID returns a Logger that prefixes every line with id, so log
// output from several concurrently-loaded AnalysisManager instances can
// be correlated.
func WithRunID(base Logger, id uuid.UUID) Logger {
	return &taggedLogger{base: base, tag: id.String()}
}

type taggedLogger struct {
	base Logger
	tag  string
}

func (t *taggedLogger) Infof(format string, args ...any) {
	t.base.Infof(t.tag+" "+format, args...)
}
func (t *taggedLogger) Warnf(format string, args ...any) {
	t.base.Warnf(t.tag+" "+format, args...)
}
func (t *taggedLogger) Errorf(format string, args ...any) {
	t.base.Errorf(t.tag+" "+format, args...)
}
