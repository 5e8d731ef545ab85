package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// TestMode_Keyword verifies the ddcutil subcommand chosen for each mode.
func TestMode_Keyword(t *testing.T) {
	assert.Equal(t, "getvcp", ModeRead.Keyword())
	assert.Equal(t, "setvcp", ModeWrite.Keyword())
	assert.Equal(t, "read", ModeRead.String())
	assert.Equal(t, "write", ModeWrite.String())
}

// TestRequest_Mode checks that any of value/up/down switches a request to write.
func TestRequest_Mode(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want Mode
	}{
		{"no options reads", Request{Feature: "brightness"}, ModeRead},
		{"value writes", Request{Feature: "brightness", Value: strPtr("50")}, ModeWrite},
		{"up writes", Request{Feature: "contrast", Up: strPtr("5")}, ModeWrite},
		{"down writes", Request{Feature: "contrast", Down: strPtr("5")}, ModeWrite},
		// Presence matters, not content.
		{"empty value still writes", Request{Feature: "10", Value: strPtr("")}, ModeWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Mode())
		})
	}
}

// TestRequest_Validate checks mutual exclusivity of value, up and down.
func TestRequest_Validate(t *testing.T) {
	t.Run("single option is valid", func(t *testing.T) {
		assert.NoError(t, Request{Feature: "10"}.Validate())
		assert.NoError(t, Request{Feature: "10", Value: strPtr("1")}.Validate())
		assert.NoError(t, Request{Feature: "10", Up: strPtr("1")}.Validate())
		assert.NoError(t, Request{Feature: "10", Down: strPtr("1")}.Validate())
	})

	t.Run("up with down is rejected", func(t *testing.T) {
		err := Request{Feature: "10", Up: strPtr("1"), Down: strPtr("2")}.Validate()
		require.Error(t, err)

		var cliErr *CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, ExitUsageError, cliErr.Code)
		assert.Contains(t, err.Error(), "up, down")
	})

	t.Run("value with up is rejected", func(t *testing.T) {
		err := Request{Feature: "10", Value: strPtr("1"), Up: strPtr("2")}.Validate()
		assert.Error(t, err)
	})

	t.Run("all three are rejected", func(t *testing.T) {
		err := Request{Feature: "10", Value: strPtr("1"), Up: strPtr("2"), Down: strPtr("3")}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value, up, down")
	})
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitInvalidCode, "invalid code")
		assert.Equal(t, ExitInvalidCode, err.Code)
		assert.Equal(t, "invalid code", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("executable file not found in $PATH")
		err := WrapCLIError(ExitSpawnFailed, "failed to execute ddcutil", inner)
		assert.Equal(t, ExitSpawnFailed, err.Code)
		assert.Equal(t, "failed to execute ddcutil: executable file not found in $PATH", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitConfigError, "failed to read config", inner)
		assert.True(t, errors.Is(err, inner))
	})
}
