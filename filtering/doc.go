// Package filtering conditions raw test-run samples into analysis-ready
// PreparedData: median filtering, central finite-difference derivative
// estimation, noise-floor detection, and the quasistatic/step-voltage
// trim passes described in spec.md §4.A.
package filtering
