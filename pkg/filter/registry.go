package filter

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/postapi/pkg/validator"
)

// TypedValidator validates values of one type.
// validator.RuleSet satisfies it.
type TypedValidator[T any] interface {
	Validate(v T) validator.ValidationErrors
}

// Validator is the type-erased form stored in descriptors.
type Validator interface {
	Validate(v any) validator.ValidationErrors
}

// Lookup resolves the validator registered for a type.
type Lookup interface {
	Lookup(t reflect.Type) (Validator, bool)
}

// Registry maps types to validators.
// Populate it during startup; it is not safe for concurrent writes.
type Registry struct {
	validators map[reflect.Type]Validator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[reflect.Type]Validator)}
}

// Register binds v as the validator for T, replacing any previous one.
func Register[T any](r *Registry, v TypedValidator[T]) {
	r.validators[reflect.TypeFor[T]()] = typed[T]{v: v}
}

// Lookup implements Lookup.
func (r *Registry) Lookup(t reflect.Type) (Validator, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.validators[t]
	return v, ok
}

// MustLookup returns the validator for t or an error wrapping ErrValidatorNotFound.
// Use it at startup to turn a missing registration into a configuration error.
func (r *Registry) MustLookup(t reflect.Type) (Validator, error) {
	v, ok := r.Lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrValidatorNotFound, t)
	}
	return v, nil
}

// Len returns the number of registered validators.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.validators)
}

type typed[T any] struct {
	v TypedValidator[T]
}

// Validate skips values that are not a T: the descriptor type and the
// registry key always agree, so this only happens on misuse.
func (t typed[T]) Validate(v any) validator.ValidationErrors {
	val, ok := v.(T)
	if !ok {
		return nil
	}
	return t.v.Validate(val)
}
