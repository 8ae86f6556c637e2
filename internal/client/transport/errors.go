package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNetwork wraps transport-level failures: connection, DNS, malformed responses.
	ErrNetwork = errors.New("network error")

	// ErrTimeout is returned when a request deadline elapses.
	ErrTimeout = errors.New("Request timed out")

	// ErrSessionExpired is returned after a terminal 401. Credentials have
	// been cleared and the logout hook invoked by the time it is seen.
	ErrSessionExpired = errors.New("session expired")
)

// APIError is a non-2xx response other than a session-ending 401.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError extracts the message from body: "message", then "error", then a
// synthesized "Request failed (<status>)". Only non-empty strings count.
func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Message: errorMessage(status, body)}
}

func errorMessage(status int, body []byte) string {
	var fields struct {
		Message any `json:"message"`
		Error   any `json:"error"`
	}
	if err := json.Unmarshal(body, &fields); err == nil {
		if s, ok := fields.Message.(string); ok && s != "" {
			return s
		}
		if s, ok := fields.Error.(string); ok && s != "" {
			return s
		}
	}
	return fmt.Sprintf("Request failed (%d)", status)
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
