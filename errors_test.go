package keyenv

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(*Error) bool
	}{
		{name: "401 unauthorized", status: 401, check: (*Error).IsUnauthorized},
		{name: "403 forbidden", status: 403, check: (*Error).IsForbidden},
		{name: "404 not found", status: 404, check: (*Error).IsNotFound},
		{name: "409 conflict", status: 409, check: (*Error).IsConflict},
		{name: "429 rate limited", status: 429, check: (*Error).IsRateLimited},
		{name: "500 server error", status: 500, check: (*Error).IsServerError},
		{name: "503 server error", status: 503, check: (*Error).IsServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newError(tt.status, "boom", "")
			assert.True(t, tt.check(err))
			assert.Equal(t, tt.status, err.Status)
		})
	}
}

func TestErrorPredicatesNegative(t *testing.T) {
	err := newError(404, "missing", "not_found")
	assert.False(t, err.IsUnauthorized())
	assert.False(t, err.IsForbidden())
	assert.False(t, err.IsConflict())
	assert.False(t, err.IsRateLimited())
	assert.False(t, err.IsServerError())
}

func TestErrorMessageFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "network error has no status",
			err:      wrapError("network error: connection refused", nil),
			expected: "keyenv: network error: connection refused",
		},
		{
			name:     "http error without code",
			err:      newError(500, "internal error", ""),
			expected: "keyenv: internal error (status=500)",
		},
		{
			name:     "http error with code",
			err:      newError(404, "secret not found", "not_found"),
			expected: "keyenv: secret not found (status=404, code=not_found)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestAsError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		err := newError(404, "missing", "")
		assert.Same(t, err, AsError(err))
	})

	t.Run("wrapped", func(t *testing.T) {
		inner := newError(409, "conflict", "")
		err := fmt.Errorf("operation failed: %w", inner)
		assert.Same(t, inner, AsError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, AsError(errors.New("some other error")))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, AsError(nil))
	})
}

func TestIsNotFoundHelper(t *testing.T) {
	assert.True(t, IsNotFound(newError(404, "missing", "")))
	assert.False(t, IsNotFound(newError(500, "boom", "")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestErrorUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := wrapError("network error: connection reset", cause)
	assert.True(t, errors.Is(err, cause))
}
