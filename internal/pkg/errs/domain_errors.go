package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Wizard errors
	ErrSessionNotFound   = errors.New("wizard session not found")
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrIncompleteDraft   = errors.New("reservation draft is incomplete")
	ErrSubmitInFlight    = errors.New("submit already in flight")

	// Validation errors
	ErrValidation       = errors.New("validation error")
	ErrMalformedPattern = errors.New("malformed weekly pattern")
	ErrInvalidShift     = errors.New("invalid shift window")

	// Catalog errors
	ErrCourseNotFound = errors.New("course not found")
	ErrCastNotFound   = errors.New("cast not found")

	// Collaborator errors
	ErrRemoteCall = errors.New("backend call failed")
)
