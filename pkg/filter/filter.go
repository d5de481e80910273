package filter

import (
	"net/http"
	"reflect"

	"github.com/dmitrymomot/postapi/pkg/validator"
)

// Invocation exposes the arguments bound for one call.
// Argument reports false when the value at position i is absent.
type Invocation interface {
	Argument(i int) (any, bool)
}

// Args is a slice-backed Invocation. Nil entries, including typed nil
// pointers, maps, slices and interfaces, count as absent.
type Args []any

func (a Args) Argument(i int) (any, bool) {
	if i < 0 || i >= len(a) {
		return nil, false
	}
	return Present(a[i])
}

// Present reports whether v counts as a bound argument. Nil values,
// including typed nil pointers, maps, slices and interfaces, are absent.
// Custom Invocation implementations use it to match Args.
func Present(v any) (any, bool) {
	if isNil(v) {
		return nil, false
	}
	return v, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Rejection is the structured result of a failed validation.
type Rejection struct {
	Status int
	// Index is the position of the argument that failed.
	Index  int
	Errors validator.ValidationErrors
}

func (r *Rejection) Error() string {
	return r.Errors.Error()
}

func (r *Rejection) Is(target error) bool {
	return target == ErrUnprocessable
}

// Fields returns the field to messages mapping.
func (r *Rejection) Fields() map[string][]string {
	return r.Errors.Map()
}

// Endpoint is the next stage of an invocation.
type Endpoint[R any] func(inv Invocation) R

// RejectFunc turns a rejection into the endpoint's result type.
type RejectFunc[R any] func(inv Invocation, rej *Rejection) R

// Filter holds the descriptors resolved for one route.
type Filter struct {
	descriptors []Descriptor
}

// New resolves params against lookup. Call it once per route registration.
func New(params []Param, lookup Lookup) *Filter {
	return &Filter{descriptors: Resolve(params, lookup)}
}

// PassThrough reports whether the filter has nothing to validate.
func (f *Filter) PassThrough() bool {
	return len(f.descriptors) == 0
}

// Descriptors returns a copy of the resolved descriptors.
func (f *Filter) Descriptors() []Descriptor {
	out := make([]Descriptor, len(f.descriptors))
	copy(out, f.descriptors)
	return out
}

// Check validates the invocation's arguments and returns the rejection for
// the first invalid one, or nil when every present argument is valid.
func (f *Filter) Check(inv Invocation) *Rejection {
	for _, d := range f.descriptors {
		arg, ok := inv.Argument(d.Index)
		if !ok {
			continue
		}
		if errs := d.Validator.Validate(arg); !errs.IsEmpty() {
			return &Rejection{
				Status: http.StatusUnprocessableEntity,
				Index:  d.Index,
				Errors: errs,
			}
		}
	}
	return nil
}

// Wrap puts f in front of next. A pass-through filter returns next as is.
func Wrap[R any](f *Filter, next Endpoint[R], reject RejectFunc[R]) Endpoint[R] {
	if f == nil || f.PassThrough() {
		return next
	}
	return func(inv Invocation) R {
		if rej := f.Check(inv); rej != nil {
			return reject(inv, rej)
		}
		return next(inv)
	}
}
