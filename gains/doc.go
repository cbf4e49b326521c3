// Package gains bundles a fitted feedforward.Result with its derived
// feedback.Result and, for angular drivetrains, a trackwidth estimate —
// the manager.AnalysisManager.Calculate output shape from spec.md §3's
// Gains data model: ((β, rmse, r²), (Kp, Kd), trackWidth?).
package gains
