// Package feedback synthesizes (Kp, Kd) feedback gains from a fitted
// feedforward plant (Kv, Ka), by pole placement or discrete LQR, for
// either a position loop (2-state plant) or a velocity loop (scalar
// plant), per spec.md §4.D.
package feedback
