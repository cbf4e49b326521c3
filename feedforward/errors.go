package feedforward

import "errors"

// ErrEmptyDataset indicates the selected dataset has no combined points
// to fit against.
var ErrEmptyDataset = errors.New("feedforward: selected dataset is empty")
