package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrUnknownServiceType", ErrUnknownServiceType},
		{"ErrStoreClosed", ErrStoreClosed},
		{"ErrUnsupportedBackend", ErrUnsupportedBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrUnknownServiceType(t *testing.T) {
	assert.Equal(t, "no matching service type", ErrUnknownServiceType.Error())
	assert.False(t, errors.Is(ErrUnknownServiceType, ErrInvalidInput))
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrNotImplemented,
		ErrUnknownServiceType,
		ErrStoreClosed,
		ErrUnsupportedBackend,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests error wrapping behavior
func TestErrors_WithWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service id %q: %w", "X", ErrInvalidInput)

	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	assert.Contains(t, wrapped.Error(), "invalid input")
}
