package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies a failure of the tag-data reader.
type ErrorType string

const (
	// ErrTypeParsing covers malformed tag strings and unreadable
	// numeric fields.
	ErrTypeParsing ErrorType = "PARSING"
	// ErrTypeNotFound covers absent or unreadable input files.
	ErrTypeNotFound ErrorType = "NOT_FOUND"
	// ErrTypeSchema covers tables missing an expected column.
	ErrTypeSchema ErrorType = "SCHEMA"
	// ErrTypeConfig covers invalid configuration.
	ErrTypeConfig ErrorType = "CONFIG"
)

// AppError is the error type surfaced by every component. Nothing in the
// reader catches or retries one of these; they propagate to the caller of
// the top-level load.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair to the error.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new typed error.
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewParsingError creates a parse error (bad tag string, bad numeric field).
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewNotFoundError creates a not-found error for a missing input file.
func NewNotFoundError(resource string, cause error) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), cause)
}

// NewSchemaError creates a schema error for a table missing an expected
// column.
func NewSchemaError(message string) *AppError {
	return NewAppError(ErrTypeSchema, message, nil)
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Type == errType
}
