package proofpad

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrBusy indicates a submission arrived while a previous request
	// is still outstanding. Overlapping submissions are rejected, not
	// queued; the caller must wait for completion or failure.
	ErrBusy = errors.New("request already in flight")

	// ErrUnknownModel indicates an unrecognized model label.
	ErrUnknownModel = errors.New("unknown model label")

	// ErrNoActiveSession indicates an operation that requires an active
	// session was called before any session existed.
	ErrNoActiveSession = errors.New("no active session")
)
