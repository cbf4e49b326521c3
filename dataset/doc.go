// Package dataset holds the data shapes shared by every other package in
// this module: raw samples, conditioned (prepared) points, labeled test
// runs, the per-direction dataset family, and analysis settings. The
// gains structure produced by a full Calculate pass lives in package gains.
//
// Nothing in this package does conditioning or fitting — it only defines
// the vocabulary the rest of the module computes over.
package dataset
