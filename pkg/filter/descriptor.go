package filter

import "reflect"

// Param declares one endpoint parameter.
type Param struct {
	Type     reflect.Type
	Validate bool
}

// Arg declares a parameter of type T that is never validated.
func Arg[T any]() Param {
	return Param{Type: reflect.TypeFor[T]()}
}

// Validated declares a parameter of type T that opts in to validation.
func Validated[T any]() Param {
	return Param{Type: reflect.TypeFor[T](), Validate: true}
}

// Descriptor associates a parameter position with its validator.
type Descriptor struct {
	Index     int
	Type      reflect.Type
	Validator Validator
}

// Resolve returns a descriptor for every parameter marked for validation
// that has a registered validator, in declaration order. Marked parameters
// without a validator are skipped.
func Resolve(params []Param, lookup Lookup) []Descriptor {
	if lookup == nil {
		return nil
	}

	var descriptors []Descriptor
	for i, p := range params {
		if !p.Validate {
			continue
		}
		v, ok := lookup.Lookup(p.Type)
		if !ok {
			continue
		}
		descriptors = append(descriptors, Descriptor{
			Index:     i,
			Type:      p.Type,
			Validator: v,
		})
	}
	return descriptors
}
