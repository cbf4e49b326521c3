// Package config (de)serializes and validates dataset.Settings, the
// configuration independent of the external CLI argument parser, per
// spec.md §3.
package config
