package validator

import "github.com/google/uuid"

// NonNilUUID fails for uuid.Nil, the value a missing identifier decodes to.
func NonNilUUID(field string, value uuid.UUID) Rule {
	return Rule{
		Check: func() bool {
			return value != uuid.Nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "UUID cannot be nil",
		},
	}
}
