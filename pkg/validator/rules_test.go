package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/postapi/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"non-empty", "hello", true},
		{"surrounded by spaces", "  hello ", true},
		{"empty", "", false},
		{"spaces only", "   ", false},
		{"tabs and newlines", "\t\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule := validator.Required("field", tt.value)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "field", rule.Error.Field)
		})
	}
}

func TestNonNilUUID(t *testing.T) {
	t.Parallel()

	assert.False(t, validator.NonNilUUID("id", uuid.Nil).Check())
	assert.True(t, validator.NonNilUUID("id", uuid.MustParse("8fbd7f90-dddc-479d-8211-0abd4815c0c7")).Check())
	assert.Equal(t, "UUID cannot be nil", validator.NonNilUUID("id", uuid.Nil).Error.Message)
}
