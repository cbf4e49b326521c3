package convert

import "fmt"

// FromLegacy translates a legacy frc-char experiment into the native
// schema, stamping the sysid tag and renaming the type field so the
// result loads directly through manager.AnalysisManager.
func FromLegacy(legacy LegacyDocument) (Document, error) {
	name, ok := legacyTypeNames[legacy.Type]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedLegacyType, legacy.Type)
	}

	return Document{
		Sysid:            sysidVersion,
		Test:             name,
		Units:            legacy.Units,
		UnitsPerRotation: legacy.UnitsPerRotation,
		SlowForward:      legacy.SlowForward,
		SlowBackward:     legacy.SlowBackward,
		FastForward:      legacy.FastForward,
		FastBackward:     legacy.FastBackward,
	}, nil
}
