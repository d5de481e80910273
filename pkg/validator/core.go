package validator

import (
	"fmt"
	"strings"
)

// ValidationError is a single field failure.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is an ordered collection of field failures.
// An empty collection means the value is valid.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) detect validation failures.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && len(ve) > 0
}

// Map groups the messages by field. Message order within a field is kept.
// The result is never nil.
func (ve ValidationErrors) Map() map[string][]string {
	m := make(map[string][]string, len(ve))
	for _, err := range ve {
		m[err.Field] = append(m[err.Field], err.Message)
	}
	return m
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting message on failure.
func (r Rule) WithMessage(message string) Rule {
	r.Error.Message = message
	return r
}

// Collect evaluates every rule and returns all failures.
// Rules are never short-circuited.
func Collect(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	return errs
}
