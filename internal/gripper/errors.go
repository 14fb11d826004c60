package gripper

import "fmt"

// ErrorType categorizes failures of the control API
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport-level failure (connection refused,
	// timeout, unreachable host)
	ErrTypeNetwork ErrorType = iota

	// ErrTypeHTTP indicates an HTTP status outside the 2xx range
	ErrTypeHTTP

	// ErrTypeProtocol indicates a 2xx response whose body reported
	// failure ("ok" missing or false)
	ErrTypeProtocol
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeProtocol:
		return "Protocol Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// APIError is a failure of a control API call.
//
// Message carries the text meant for the display: the server-supplied
// "error" field when the body had one, otherwise the HTTP status line.
type APIError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (0 for network errors)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a transport-level error
func NewNetworkError(message string, err error) *APIError {
	return &APIError{
		Type:    ErrTypeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewHTTPError creates an error for a non-2xx HTTP status
func NewHTTPError(statusCode int, message string) *APIError {
	return &APIError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewProtocolError creates an error for a 2xx response reporting failure
func NewProtocolError(message string) *APIError {
	return &APIError{
		Type:    ErrTypeProtocol,
		Message: message,
	}
}

// IsNetworkError checks if an error is a transport-level error
func IsNetworkError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrTypeNetwork
	}
	return false
}

// IsHTTPError checks if an error is a non-2xx HTTP error
func IsHTTPError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrTypeHTTP
	}
	return false
}

// IsProtocolError checks if an error is an ok:false body error
func IsProtocolError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrTypeProtocol
	}
	return false
}

// ErrorMessage returns the display text for an error: the bare Message for
// API errors, err.Error() for anything else.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Message
	}
	return err.Error()
}
