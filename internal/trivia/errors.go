package trivia

import "errors"

// Sentinel errors for the outcomes the HTTP layer maps onto fixed
// response envelopes. Anything else surfaces as an internal error.
var (
	// ErrInvalidInput marks malformed or incomplete client input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a missing entity or an empty required result.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks a write-path failure inside the persistence
	// gateway (constraint violation, lost connection mid-write).
	ErrStorage = errors.New("storage failure")
)
