// Package telemetry defines the leveled logger sink AnalysisManager
// emits diagnostics through, and a default implementation
// backed by the standard library's log package, per spec.md §6's opaque
// logger sink collaborator.
package telemetry
