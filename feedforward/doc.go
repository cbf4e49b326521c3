// Package feedforward builds the per-mechanism-type regressor matrix
// from a dataset's combined PreparedData, invokes ols.Solve, and returns
// the fitted Ks/Kv/Ka (and Kg or Kcos, where applicable) by name rather
// than positional coefficients, per spec.md §4.C.
package feedforward
