package filter

import "errors"

var (
	// ErrValidatorNotFound is returned by MustLookup when no validator is registered for a type.
	ErrValidatorNotFound = errors.New("no validator registered for type")
	// ErrUnprocessable is the sentinel matched by a Rejection.
	ErrUnprocessable = errors.New("unprocessable entity")
)
