package domain

import (
	"sort"
	"strings"
)

// ValidationError lists every field that failed validation on a write.
type ValidationError struct {
	Fields []string
}

// NewValidationError builds a ValidationError with a sorted, de-duplicated field list.
func NewValidationError(fields ...string) *ValidationError {
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return &ValidationError{Fields: out}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: missing or invalid " + strings.Join(e.Fields, ", ")
}
