package dataset

// Dataset is the (quasistatic, dynamic) pair used to fit one direction
// of one mechanism. Quasistatic is the trimmed slow ramp; Dynamic is the
// trimmed fast step.
type Dataset struct {
	Quasistatic []PreparedData
	Dynamic     []PreparedData
}

// CombineDatasets concatenates two datasets' quasistatic and dynamic sequences,
// quasistatic-then-dynamic is not implied here; Combined always means
// Forward-then-Backward concatenation per invariant 4 of spec.md §3 and
// is produced by CombineDatasets, not by this type directly.
func CombineDatasets(forward, backward Dataset) Dataset {
	q := make([]PreparedData, 0, len(forward.Quasistatic)+len(backward.Quasistatic))
	q = append(q, forward.Quasistatic...)
	q = append(q, backward.Quasistatic...)

	d := make([]PreparedData, 0, len(forward.Dynamic)+len(backward.Dynamic))
	d = append(d, forward.Dynamic...)
	d = append(d, backward.Dynamic...)

	return Dataset{Quasistatic: q, Dynamic: d}
}

// Direction is a tagged enumeration of the dataset keys a mechanism type
// can publish. It replaces the source's string-map keying per the
// tagged-variant design note.
type Direction uint8

const (
	Forward Direction = iota
	Backward
	Combined
	LeftForward
	LeftBackward
	LeftCombined
	RightForward
	RightBackward
	RightCombined
)

// String renders a Direction the way it would appear in settings.dataset
// or in a log line.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Combined:
		return "Combined"
	case LeftForward:
		return "Left Forward"
	case LeftBackward:
		return "Left Backward"
	case LeftCombined:
		return "Left Combined"
	case RightForward:
		return "Right Forward"
	case RightBackward:
		return "Right Backward"
	case RightCombined:
		return "Right Combined"
	default:
		return "Unknown"
	}
}

// ParseDirection maps a settings.dataset string onto a Direction. It
// accepts exactly the spellings String() produces.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range []Direction{Forward, Backward, Combined, LeftForward, LeftBackward, LeftCombined, RightForward, RightBackward, RightCombined} {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// DatasetSet bundles every Direction a given AnalysisType's Prepare may
// populate. Unused directions are left as the zero Dataset; Select
// rejects them rather than silently returning empty data.
type DatasetSet struct {
	populated map[Direction]Dataset
}

// NewDatasetSet builds a DatasetSet from the directions a Prepare pass
// actually computed.
func NewDatasetSet() *DatasetSet {
	return &DatasetSet{populated: make(map[Direction]Dataset)}
}

// Set records the dataset for a direction.
func (s *DatasetSet) Set(d Direction, ds Dataset) {
	s.populated[d] = ds
}

// Select returns the dataset published for d, or false if that direction
// was never populated by this mechanism type's Prepare pass.
func (s *DatasetSet) Select(d Direction) (Dataset, bool) {
	ds, ok := s.populated[d]
	return ds, ok
}

// Directions lists the populated keys, for callers (e.g. a GUI) that want
// to enumerate what is available without guessing.
func (s *DatasetSet) Directions() []Direction {
	out := make([]Direction, 0, len(s.populated))
	for d := range s.populated {
		out = append(out, d)
	}
	return out
}
