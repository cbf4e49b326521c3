// Package convert translates the legacy "frc-char" experiment schema
// into the native schema manager.AnalysisManager consumes, per
// spec.md §4.G.
package convert
