package source

import "errors"

// Failure taxonomy shared by all parsers. Callers classify wrapped failures
// with errors.Is; the core never converts a failure into an empty success.
var (
	// ErrInvalidQuery indicates a malformed keyword, page or size.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrSourceUnavailable indicates an upstream transport failure or timeout.
	// Transient: the caller may retry.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNotFound indicates an album reference that no longer resolves upstream.
	// Not retryable.
	ErrNotFound = errors.New("album not found")
)
