package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// HTTPError is a transport-level error carrying the status code the delivery
// layer mapped a domain error to.
type HTTPError struct {
	Status  int
	Message string
	// Hint is an optional troubleshooting suggestion for the caller.
	Hint string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// WithHint attaches a troubleshooting hint and returns the error.
func (e *HTTPError) WithHint(hint string) *HTTPError {
	e.Hint = hint
	return e
}
