package convert

// LegacyDocument is the frc-char tool's experiment schema: it carries
// no "sysid" tag (the reason loading it directly trips SchemaMismatch)
// and names the analysis type field "type" rather than "test".
type LegacyDocument struct {
	Type             string      `json:"type"`
	Units            string      `json:"units"`
	UnitsPerRotation float64     `json:"unitsPerRotation"`
	SlowForward      [][]float64 `json:"slow-forward"`
	SlowBackward     [][]float64 `json:"slow-backward"`
	FastForward      [][]float64 `json:"fast-forward"`
	FastBackward     [][]float64 `json:"fast-backward"`
}

// Document is the native schema manager.AnalysisManager loads, per
// spec.md §6. It mirrors manager's unexported document type field for
// field so FromLegacy's output can be marshalled straight to disk.
type Document struct {
	Sysid            string      `json:"sysid"`
	Test             string      `json:"test"`
	Units            string      `json:"units"`
	UnitsPerRotation float64     `json:"unitsPerRotation"`
	SlowForward      [][]float64 `json:"slow-forward"`
	SlowBackward     [][]float64 `json:"slow-backward"`
	FastForward      [][]float64 `json:"fast-forward"`
	FastBackward     [][]float64 `json:"fast-backward"`
}

// sysidVersion is stamped onto every document FromLegacy produces.
const sysidVersion = "1.0.0"

// legacyTypeNames maps the frc-char tool's type tags onto the native
// schema's display names, which post-date the legacy/linear split.
var legacyTypeNames = map[string]string{
	"Simple":              "Simple",
	"Elevator":            "Elevator",
	"Arm":                 "Arm",
	"Drivetrain":          "Drivetrain",
	"Drivetrain-Angular":  "Drivetrain (Angular)",
	"Drivetrain (Linear)": "Drivetrain",
}
