package model

import (
	"fmt"
	"strings"
)

// Mode is the kind of VCP operation a request performs.
// It is derived from a Request and never stored on its own.
type Mode string

const (
	// ModeRead reads the current value of a feature (ddcutil getvcp).
	ModeRead Mode = "read"

	// ModeWrite sets or adjusts a feature (ddcutil setvcp).
	ModeWrite Mode = "write"
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	return string(m)
}

// Keyword returns the ddcutil subcommand for the mode.
func (m Mode) Keyword() string {
	if m == ModeWrite {
		return "setvcp"
	}
	return "getvcp"
}

// Request is the structured form of one command-line invocation.
//
// Value, Up and Down are optional; nil means the flag was not supplied.
// At most one of them may be set (see Validate).
type Request struct {
	// Feature is the VCP code or feature name as typed by the user
	// (e.g. "brightness", "10", "0x10", "16").
	Feature string `json:"feature"`

	// Value is the absolute value to set.
	Value *string `json:"value,omitempty"`

	// Up is the amount to add to the current value.
	Up *string `json:"up,omitempty"`

	// Down is the amount to subtract from the current value.
	Down *string `json:"down,omitempty"`
}

// Mode returns ModeWrite if any of Value, Up or Down is present, ModeRead otherwise.
func (r Request) Mode() Mode {
	if r.Value != nil || r.Up != nil || r.Down != nil {
		return ModeWrite
	}
	return ModeRead
}

// Validate checks that at most one of Value, Up and Down is set.
// The command line parser already enforces this; Validate guards
// requests built by other callers.
func (r Request) Validate() error {
	var set []string
	if r.Value != nil {
		set = append(set, "value")
	}
	if r.Up != nil {
		set = append(set, "up")
	}
	if r.Down != nil {
		set = append(set, "down")
	}
	if len(set) > 1 {
		return NewCLIError(ExitUsageError,
			fmt.Sprintf("options %s are mutually exclusive", strings.Join(set, ", ")))
	}
	return nil
}

// ExitCode defines the process exit codes of the CLI.
type ExitCode int

const (
	// ExitSuccess indicates the external utility was started and waited for.
	// The utility's own exit status is not reflected here.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates malformed, missing or conflicting arguments.
	ExitUsageError ExitCode = 2

	// ExitInvalidCode indicates the feature matched no resolution rule.
	ExitInvalidCode ExitCode = 3

	// ExitSpawnFailed indicates the external utility could not be started.
	ExitSpawnFailed ExitCode = 4

	// ExitConfigError indicates the configuration could not be loaded
	// or holds invalid values.
	ExitConfigError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
