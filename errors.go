package autosend

import "fmt"

// ConfigurationError reports invalid client construction input, such as an
// empty API key. It is returned before any request is made.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// ValidationError reports caller-supplied data that failed a local rule
// before any network call. Field names the offending parameter and Value,
// when set, carries the rejected input so callers can handle failures
// programmatically.
type ValidationError struct {
	Message string
	Field   string
	Value   any
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg += fmt.Sprintf(" (field='%s')", e.Field)
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value='%v')", e.Value)
	}
	return msg
}

func newValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{Message: message, Field: field, Value: value}
}

// AuthenticationError indicates the remote API rejected the credential
// (HTTP 401). Retrying without fixing the API key will not help.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// RequestError indicates a transport-level failure: timeout, connection
// refused, DNS resolution. Potentially transient; retry policy is left to
// the caller.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying transport error for errors.Is/As.
func (e *RequestError) Unwrap() error { return e.Err }

// APIError indicates the remote API accepted the request shape but returned
// a non-2xx, non-401 status. StatusCode and the raw Body are retained for
// diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned %d: %s", e.StatusCode, e.Body)
}
