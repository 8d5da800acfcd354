package errclass

import "fmt"

// UUIDError is a stable, machine-readable error class.
type UUIDError struct {
	Code    string
	Message string
	Cause   error
}

func (e *UUIDError) Error() string {
	msg := e.Code
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *UUIDError) Is(target error) bool {
	t, ok := target.(*UUIDError)
	return ok && e.Code == t.Code
}

// Unwrap exposes the underlying cause, if any.
func (e *UUIDError) Unwrap() error {
	return e.Cause
}

// WithMessage returns a new UUIDError with the same Code but a specific message.
func (e *UUIDError) WithMessage(msg string) *UUIDError {
	return &UUIDError{Code: e.Code, Message: msg, Cause: e.Cause}
}

// WithMessagef returns a new UUIDError with a formatted message.
func (e *UUIDError) WithMessagef(format string, args ...any) *UUIDError {
	return &UUIDError{Code: e.Code, Message: fmt.Sprintf(format, args...), Cause: e.Cause}
}

// WithCause returns a new UUIDError with the same Code and Message wrapping cause.
func (e *UUIDError) WithCause(cause error) *UUIDError {
	return &UUIDError{Code: e.Code, Message: e.Message, Cause: cause}
}

// All stable error classes.
var (
	// ErrEntropyUnavailable means the secure random source could not be read
	// or returned fewer bytes than requested.
	ErrEntropyUnavailable = &UUIDError{Code: "E_ENTROPY_UNAVAILABLE"}
	// ErrInvalidFormat means an input did not have the shape of a UUID.
	ErrInvalidFormat = &UUIDError{Code: "E_INVALID_FORMAT"}
	// ErrInvalidBuffer is reported at the buffer boundary for nil or mis-sized buffers.
	ErrInvalidBuffer = &UUIDError{Code: "E_INVALID_BUFFER"}
	// ErrBufferTooSmall is reported when an output buffer cannot hold the result.
	ErrBufferTooSmall = &UUIDError{Code: "E_BUFFER_TOO_SMALL"}
)
