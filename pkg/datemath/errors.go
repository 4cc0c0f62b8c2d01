package datemath

import "errors"

// Resolution failure modes. Each maps to exactly one stage of slot
// resolution so callers can report precisely what went wrong.
var (
	ErrUnparseableDate    = errors.New("could not parse scheduled date")
	ErrUnparseableTime    = errors.New("could not parse scheduled time")
	ErrMalformedTimeRange = errors.New("malformed time range")
	ErrPastDate           = errors.New("scheduled date is in the past")
)
