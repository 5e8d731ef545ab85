// Package model defines the domain types and value objects for the
// monitor-cli tool.
//
// This package contains pure data structures with no external dependencies.
// A Request is built once from the command line and discarded when the
// process exits; nothing is persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
