package ciscosupport

import "fmt"

// ValidationError reports bad caller input. It is returned before any
// network I/O happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "ciscosupport: " + e.Message
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AuthenticationError reports a failed client-credentials token
// exchange. StatusCode and Body are populated when the token endpoint
// answered with a non-2xx status; Message covers malformed responses.
type AuthenticationError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ciscosupport: token exchange failed with status %d: %s", e.StatusCode, e.Body)
	}
	return "ciscosupport: " + e.Message
}

// APIError reports an error response from a support API endpoint. Body
// holds the raw response payload for caller inspection.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ciscosupport: API error %d: %s", e.StatusCode, e.Body)
}

// TransportError reports a network-level failure before a response was
// received. It wraps the underlying error.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "ciscosupport: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
