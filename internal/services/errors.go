package services

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors is a field-keyed validation error: one list of messages per
// input field name. Handlers render it directly into the failure envelope.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// Add appends a message for a field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}
