package core

import "errors"

// Sentinel errors returned by generation and noise operations.
// Callers match them with errors.Is; messages carry the detail.
var (
	// ErrInvalidArgument rejects a call before any work is done.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrProviderUnavailable wraps failures of the synthesis provider or the id source.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrInvariantViolation signals a broken internal guarantee, e.g. an id collision.
	ErrInvariantViolation = errors.New("internal invariant violation")
)
