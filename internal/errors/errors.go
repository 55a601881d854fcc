// Package errors provides sentinel errors and custom error types for gitstrap.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrDeclined indicates that the operator declined to reinitialize an existing repository
	ErrDeclined = errors.New("reinitialization declined")

	// ErrInvalidProfile indicates that a profile failed validation
	ErrInvalidProfile = errors.New("invalid profile")
)

// CommandError represents a failed external command.
// ExitCode is -1 when the command could not be started at all.
type CommandError struct {
	Command  string
	Dir      string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Started reports whether the command ran and exited non-zero, as opposed to
// failing before the process could start.
func (e *CommandError) Started() bool {
	return e.ExitCode >= 0
}

// NewCommandError creates a new CommandError
func NewCommandError(command, dir string, exitCode int, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command:  command,
		Dir:      dir,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}

// ProfileError represents a profile validation failure for a single field
type ProfileError struct {
	Field  string
	Reason string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Reason)
}

// Is returns true if the target error is ErrInvalidProfile
func (e *ProfileError) Is(target error) bool {
	return target == ErrInvalidProfile
}

// NewProfileError creates a new ProfileError
func NewProfileError(field, reason string) *ProfileError {
	return &ProfileError{Field: field, Reason: reason}
}
