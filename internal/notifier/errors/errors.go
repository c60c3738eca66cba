// Package errors defines the failure kinds of a deploy-and-notify run and
// maps them to process exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Configuration errors
	ErrConfigMissing = errors.New("config file not found")
	ErrConfigParse   = errors.New("config file could not be parsed")

	// Deploy errors
	ErrServiceNotFound = errors.New("deploy service not found on PATH")
	ErrDeployFailed    = errors.New("deploy command failed")
	ErrURLNotFound     = errors.New("no deployed URL found in deploy output")

	// Commit summary errors
	ErrGitLog = errors.New("git log failed")

	// Notification errors
	ErrNotificationSend = errors.New("notification could not be sent")

	// Command line errors
	ErrUsage = errors.New("invalid usage")
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitCode decides the process exit status for the error returned by a run.
// A failed notification never fails the process because the deploy has
// already happened by the time it is sent.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNotificationSend):
		return ExitOK
	default:
		return ExitFailure
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Kind attaches a sentinel to a lower level cause so callers can match
// either one with errors.Is.
func Kind(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
