package loader

import "errors"

// Package-specific errors
var (
	// ErrMissingURL is returned when a loader is declared without a URL.
	ErrMissingURL = errors.New("loader requires a url")

	// ErrUnknownStep is returned when a scenario file declares a step type
	// this package does not know.
	ErrUnknownStep = errors.New("unknown scenario step type")

	// ErrSessionClosed is returned when running a loader on a closed session.
	ErrSessionClosed = errors.New("session is closed")
)
