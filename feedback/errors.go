package feedback

import "errors"

// ErrNonPhysicalPlant indicates Kv or Ka is non-positive, so no
// stabilizing feedback gain exists for the identified plant.
var ErrNonPhysicalPlant = errors.New("feedback: Kv and Ka must both be strictly positive")
