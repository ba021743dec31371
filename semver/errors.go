package semver

import (
	"errors"
	"fmt"
)

// ArgumentError indicates a structurally invalid construction argument
// (a negative version number). Malformed text is reported as a
// FormatError instead.
type ArgumentError struct {
	Field string
	Value int
}

func newArgumentError(field string, value int) *ArgumentError {
	return &ArgumentError{
		Field: field,
		Value: value,
	}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s version number: %d (must not be negative)", e.Field, e.Value)
}

func (e *ArgumentError) Is(target error) bool {
	var t *ArgumentError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

// FormatError indicates text that does not conform to the SemVer 2.0.0
// grammar: a missing major.minor.patch shape, a non-numeric version
// number, or an invalid pre-release/build identifier.
type FormatError struct {
	Value  string
	Reason string
}

func newFormatError(value, format string, args ...interface{}) *FormatError {
	return &FormatError{
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid semantic version %q: %s", e.Value, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	var t *FormatError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return t.Value == "" || t.Value == e.Value
}

// OverflowError indicates a major, minor, or patch number too large to be
// represented as an int. Pre-release numeric identifiers have no such
// limit since they are never materialized as bounded integers.
type OverflowError struct {
	Field string
	Value string
}

func newOverflowError(field, value string) *OverflowError {
	return &OverflowError{
		Field: field,
		Value: value,
	}
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s version number out of range: %s", e.Field, e.Value)
}

func (e *OverflowError) Is(target error) bool {
	var t *OverflowError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}
