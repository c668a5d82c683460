// Package common provides shared constants, types, and utilities
// used across the VPN Launcher application.
package common

import "errors"

// Sentinel errors for launcher operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Configuration errors.
	ErrConfigLoad    = errors.New("failed to load configuration")
	ErrConfigSave    = errors.New("failed to save configuration")
	ErrInvalidConfig = errors.New("invalid configuration file")

	// Selection errors.
	ErrInvalidChoice = errors.New("invalid choice")

	// Launch errors.
	ErrLaunchFailed = errors.New("failed to execute VPN client")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
