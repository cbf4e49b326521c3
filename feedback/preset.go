package feedback

import "sysid/dataset"

// Presets mirrors the retrieval pack's named-preset construction style
// (a controller's period, max effort, and measurement/control delays
// bundled together): common controller periods and encoder delays
// observed in the field. Callers may also build a dataset.Preset by
// hand; this table exists for convenience, not as the sole source.
var Presets = map[string]dataset.Preset{
	"default": {
		Name:             "default",
		LoopPeriod:       0.02,
		MaxControlEffort: 12,
	},
	"roborio-fast": {
		Name:             "roborio-fast",
		LoopPeriod:       0.005,
		MaxControlEffort: 12,
		MeasurementDelay: 0.001,
		ControlDelay:     0.001,
	},
	"canivore": {
		Name:             "canivore",
		LoopPeriod:       0.001,
		MaxControlEffort: 12,
		MeasurementDelay: 0.0005,
		ControlDelay:     0.0005,
	},
}

func init() {
	for name, p := range Presets {
		p.ObservationDelay = p.MeasurementDelay + p.ControlDelay
		Presets[name] = p
	}
}

// Preset looks up a named preset from the table.
func Preset(name string) (dataset.Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}
