package calculation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidParameters is matched by every ValidationError.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrInvalidBracketTable is matched by a ValidationError that contains bracket problems.
	ErrInvalidBracketTable = errors.New("invalid tax bracket table")
)

// FieldError describes one rejected input.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Reason)
}

// ValidationError aggregates every problem found while checking a parameter set.
type ValidationError struct {
	Problems []FieldError
	brackets bool
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidParameters, strings.Join(parts, "; "))
}

// Unwrap exposes the sentinels so callers can use errors.Is.
func (e *ValidationError) Unwrap() []error {
	if e.brackets {
		return []error{ErrInvalidParameters, ErrInvalidBracketTable}
	}
	return []error{ErrInvalidParameters}
}

// problems collects field errors while a validator walks its input.
type problems struct {
	list     []FieldError
	brackets bool
}

func (p *problems) add(field, format string, args ...any) {
	p.list = append(p.list, FieldError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func (p *problems) addBracket(field, format string, args ...any) {
	p.brackets = true
	p.add(field, format, args...)
}

func (p *problems) err() error {
	if len(p.list) == 0 {
		return nil
	}
	return &ValidationError{Problems: p.list, brackets: p.brackets}
}
