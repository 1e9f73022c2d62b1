package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies pipeline failures. The set is closed; callers switch on it
// to decide what they may show the user and whether a retry makes sense.
type Kind string

const (
	// KindInvalidInput covers an empty prompt or required fields missing
	// from directly supplied data. Recoverable by the caller.
	KindInvalidInput Kind = "invalid_input"
	// KindMalformedResponse means the provider returned non-JSON or
	// truncated text. Distinct from a wrong-shaped but parseable payload.
	KindMalformedResponse Kind = "malformed_response"
	// KindSchemaViolation means structurally valid JSON that breaks one or
	// more resume invariants. Carries the complete field list.
	KindSchemaViolation Kind = "schema_violation"
	// KindRenderFailure signals an internal inconsistency during layout or
	// emission. Always a bug upstream of the renderer.
	KindRenderFailure Kind = "render_failure"
)

// FieldError names one offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the typed result returned for every failure in the pipeline.
// Fields is populated for the two field-addressable kinds.
type Error struct {
	Kind   Kind
	Fields []FieldError
	Err    error
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		return fmt.Sprintf("%s: %s", e.Kind, strings.Join(parts, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func NewInvalidInput(fields ...FieldError) *Error {
	return &Error{Kind: KindInvalidInput, Fields: fields}
}

func NewSchemaViolation(fields []FieldError) *Error {
	return &Error{Kind: KindSchemaViolation, Fields: fields}
}

func NewMalformedResponse(err error) *Error {
	return &Error{Kind: KindMalformedResponse, Err: err}
}

func NewRenderFailure(err error) *Error {
	return &Error{Kind: KindRenderFailure, Err: err}
}

// KindOf extracts the Kind from err, or "" when err is not a pipeline error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// FieldsOf returns the field list carried by err, if any.
func FieldsOf(err error) []FieldError {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
