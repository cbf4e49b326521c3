package manager

// document is the native experiment JSON schema of spec.md §6. Row
// arity is 4 for general mechanisms (`t, V, p, v`) or 9 for drivetrains
// (`t, Vl, Vr, pl, pr, vl, vr, θ, θ̇`); unmarshalled rows are checked for
// that arity by toGeneral, toDrivetrain and toAngular in rows.go.
type document struct {
	Sysid            string      `json:"sysid"`
	Test             string      `json:"test"`
	Units            string      `json:"units"`
	UnitsPerRotation float64     `json:"unitsPerRotation"`
	SlowForward      [][]float64 `json:"slow-forward"`
	SlowBackward     [][]float64 `json:"slow-backward"`
	FastForward      [][]float64 `json:"fast-forward"`
	FastBackward     [][]float64 `json:"fast-backward"`
}
