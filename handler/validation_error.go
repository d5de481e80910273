package handler

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ValidationError maps field names to their failure messages.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var parts []string
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}
