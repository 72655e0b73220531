package notification

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrTargetNotFound   = errors.New("delivery target not configured")
)

// RenderError reports which payload field prevented rendering.
// Kind is ErrMissingField or ErrMalformedPayload.
type RenderError struct {
	Kind  error
	Field string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Field)
}

func (e *RenderError) Unwrap() error {
	return e.Kind
}

// MissingField builds a RenderError for an absent required field.
func MissingField(field string) error {
	return &RenderError{Kind: ErrMissingField, Field: field}
}

// MalformedField builds a RenderError for a field with the wrong shape.
func MalformedField(field string) error {
	return &RenderError{Kind: ErrMalformedPayload, Field: field}
}
