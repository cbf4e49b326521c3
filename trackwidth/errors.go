package trackwidth

import "errors"

// ErrZeroHeadingChange indicates the run produced no measurable
// rotation, so the wheel-displacement ratio cannot be attributed to a
// track width.
var ErrZeroHeadingChange = errors.New("trackwidth: heading change is too small to estimate track width")
