package xcs

import "errors"

// Precondition errors. Both fail fast at the entry point; the engine makes
// no attempt to recover from either.
var (
	// ErrEmptyActionSpace is returned by New when constructed with no actions.
	ErrEmptyActionSpace = errors.New("xcs: action space must not be empty")
	// ErrInvalidInput is returned when a state string is malformed, or its
	// dimensionality disagrees with every previously observed input in
	// this engine's session.
	ErrInvalidInput = errors.New("xcs: invalid or dimension-mismatched input state")
)
