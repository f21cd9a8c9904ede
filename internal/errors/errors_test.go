package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "parsing error type", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "not found error type", errType: ErrTypeNotFound, expected: "NOT_FOUND"},
		{name: "schema error type", errType: ErrTypeSchema, expected: "SCHEMA"},
		{name: "config error type", errType: ErrTypeConfig, expected: "CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewSchemaError("expected column TILE not found"),
			expected: "[SCHEMA] expected column TILE not found",
		},
		{
			name:     "with cause",
			err:      NewParsingError("invalid year field", fmt.Errorf("bad syntax")),
			expected: "[PARSING] invalid year field: bad syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("file does not exist")
	err := NewNotFoundError("master index file", cause)

	assert.ErrorIs(t, err, cause)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewNotFoundError("master index file", nil).
		WithContext("path", "/data/fp_data_master")

	require.NotNil(t, err.Context)
	assert.Equal(t, "/data/fp_data_master", err.Context["path"])
}

func TestIsType(t *testing.T) {
	err := NewParsingError("tag string too short", nil)

	assert.True(t, IsType(err, ErrTypeParsing))
	assert.False(t, IsType(err, ErrTypeNotFound))
	assert.False(t, IsType(errors.New("plain"), ErrTypeParsing))

	wrapped := fmt.Errorf("loading tag: %w", err)
	assert.True(t, IsType(wrapped, ErrTypeParsing))
}
