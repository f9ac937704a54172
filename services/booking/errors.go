package booking

import (
	"fmt"
	"strings"
)

// FieldError reports a single invalid draft field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failing field of a booking draft.
// It is user-correctable and never fatal.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "invalid booking draft: " + strings.Join(msgs, "; ")
}

// HasField reports whether the named field is among the failures.
func (e *ValidationError) HasField(name string) bool {
	for _, f := range e.Fields {
		if f.Field == name {
			return true
		}
	}
	return false
}
