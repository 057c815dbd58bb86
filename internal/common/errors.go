package common

import (
	"errors"
	"fmt"
)

// AppError carries a stable code alongside a human-readable message and the
// underlying cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Import failure taxonomy. Every hard failure in the analysis pipeline wraps
// exactly one of these sentinels so callers can branch with errors.Is.
var (
	// ErrUnsupportedFormat: the file's MIME type cannot be processed by the
	// configured backend (e.g. PDF with a text-only model). Not retryable.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrDecodeFailure: the file content could not be read as text. Not retryable.
	ErrDecodeFailure = errors.New("file content could not be decoded")

	// ErrBackend: transport or HTTP failure reaching the extraction backend.
	// Retryable by the caller.
	ErrBackend = errors.New("extraction backend error")

	// ErrEmptyResponse: the backend answered but carried no usable text.
	// Treated like a transport error.
	ErrEmptyResponse = errors.New("no response from extraction backend")

	// ErrMalformedOutput: the response text was not valid JSON even after
	// fence stripping, or failed shape validation. Not retryable.
	ErrMalformedOutput = errors.New("extraction output is not valid JSON")
)

// Generic application errors.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// UnsupportedFormat builds an AppError wrapping ErrUnsupportedFormat.
func UnsupportedFormat(message string) error {
	return NewAppError("UNSUPPORTED_FORMAT", message, ErrUnsupportedFormat)
}

// DecodeFailure builds an AppError wrapping ErrDecodeFailure.
func DecodeFailure(message string) error {
	return NewAppError("DECODE_FAILURE", message, ErrDecodeFailure)
}

// BackendError builds an AppError wrapping ErrBackend, carrying the HTTP
// status received from the backend.
func BackendError(status int, statusText string) error {
	return NewAppError("BACKEND_ERROR", fmt.Sprintf("status %d %s", status, statusText), ErrBackend)
}

// MalformedOutput builds an AppError wrapping ErrMalformedOutput.
func MalformedOutput(cause error) error {
	return &AppError{Code: "MALFORMED_OUTPUT", Message: ErrMalformedOutput.Error(), Cause: fmt.Errorf("%w: %w", ErrMalformedOutput, cause)}
}
