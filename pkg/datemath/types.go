package datemath

import "time"

// Slot is a resolved start/end instant pair. Both instants are stored in UTC;
// callers apply a display timezone when presenting them.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot length.
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
