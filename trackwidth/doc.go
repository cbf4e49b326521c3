// Package trackwidth estimates a drivetrain's effective track width from
// the left/right wheel displacement and the heading change observed
// during an angular (rotate-in-place) test, per spec.md §4.E.
package trackwidth
