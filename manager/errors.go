package manager

import "errors"

var (
	// ErrIoError wraps a failure to read the experiment JSON file.
	ErrIoError = errors.New("manager: failed to read experiment file")
	// ErrSchemaMismatch indicates the document is missing the "sysid"
	// tag — the caller should run the legacy-schema converter first.
	ErrSchemaMismatch = errors.New("manager: missing \"sysid\" schema tag; run the legacy converter first")
	// ErrUnknownAnalysisType indicates the document's "test" tag does
	// not name a registered mechanism family.
	ErrUnknownAnalysisType = errors.New("manager: unrecognized analysis type")
)
