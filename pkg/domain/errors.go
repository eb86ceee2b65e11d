package domain

import "errors"

// ErrInputClosed is returned when the input source has no more lines to offer.
// No prompt can make progress after it, so callers should treat it as fatal.
var ErrInputClosed = errors.New("input closed")

// ErrInvalidRange is returned when a caller supplies a bound whose low end is above
// its high end. No answer could ever satisfy it.
var ErrInvalidRange = errors.New("invalid range: low bound is greater than high bound")

// ErrInvalidCount is returned when an exact count constraint is negative.
var ErrInvalidCount = errors.New("invalid count: must not be negative")
