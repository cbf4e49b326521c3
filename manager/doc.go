// Package manager implements AnalysisManager: the orchestrator that
// loads an experiment JSON document, conditions its test runs per
// mechanism family, and drives the feedforward/feedback/track-width
// pipeline to produce Gains, per spec.md §4.F.
package manager
