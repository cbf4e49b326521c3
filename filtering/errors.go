package filtering

import "errors"

var (
	// ErrInsufficientData indicates a sequence was shorter than the
	// window a filter or trim pass requires, or a trim step emptied a
	// run entirely.
	ErrInsufficientData = errors.New("filtering: insufficient data for requested window")
	// ErrInvalidWindow indicates a non-odd or too-small window size.
	ErrInvalidWindow = errors.New("filtering: window size must be odd and >= 3")
)
