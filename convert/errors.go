package convert

import "errors"

// ErrUnsupportedLegacyType indicates the legacy document's type tag does
// not map onto any native AnalysisType.
var ErrUnsupportedLegacyType = errors.New("convert: unrecognized legacy test type")
