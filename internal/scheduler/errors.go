package scheduler

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the scheduler package. Date/time resolution
// failures (unparseable date or time, past date, malformed range) surface as
// the pkg/datemath sentinels.
var (
	ErrEmptyInput           = errors.New("appointment description is empty")
	ErrIncompleteExtraction = errors.New("essential scheduling details (Task, Date, or Time) missing from model output")
	ErrModelInvocation      = errors.New("model invocation failed")
)

// TransientError marks a timeout on an external call. Unlike the fatal
// errors above, the caller may reasonably resubmit the same request.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s timed out: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}
