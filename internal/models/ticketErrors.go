package models

import "fmt"

// MalformedInputError means the dataset itself is structurally invalid.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed tickets document: " + e.Reason
}

type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("ticket #%d: missing field %q", e.Index, e.Field)
}

type TypeMismatchError struct {
	Index int
	Field string
	Value string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("ticket #%d: field %q has unexpected value %s", e.Index, e.Field, e.Value)
}

type TimeParseError struct {
	Value string
	Err   error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("failed to parse time %q: %v", e.Value, e.Err)
}

func (e *TimeParseError) Unwrap() error {
	return e.Err
}
