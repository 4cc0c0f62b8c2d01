package gcalendar

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession means no usable stored session exists and no refresh
	// credential is available. Recovery requires the interactive
	// authorization flow (scripts/gcal-auth), never an automatic retry.
	ErrNoSession = errors.New("no stored calendar session: run `go run scripts/gcal-auth/main.go` to authorize")

	// ErrAuthExpired means the stored session is stale and the silent
	// refresh against Google's token endpoint failed.
	ErrAuthExpired = errors.New("calendar session expired and refresh failed")
)

// APIError carries the status and body of a failed Calendar API call.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calendar API error %d: %s", e.StatusCode, e.Body)
}
