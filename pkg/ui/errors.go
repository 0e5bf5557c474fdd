package ui

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidProp is returned when a prop holds a value outside its
	// declared set.
	ErrInvalidProp = errors.New("invalid prop value")

	// ErrMissingContent is returned when a component's required label or
	// content is empty.
	ErrMissingContent = errors.New("missing required content")
)

// PropError describes a rejected prop.
type PropError struct {
	Component string
	Prop      string
	Value     string
	Allowed   []string
	Err       error
}

func (e *PropError) Error() string {
	var b strings.Builder
	if e.Component != "" {
		b.WriteString(e.Component)
		b.WriteString(": ")
	}
	switch {
	case errors.Is(e.Err, ErrMissingContent):
		fmt.Fprintf(&b, "%s is required", e.Prop)
	case len(e.Allowed) > 0:
		fmt.Fprintf(&b, "%s %q is not one of [%s]", e.Prop, e.Value, strings.Join(e.Allowed, ", "))
	default:
		fmt.Fprintf(&b, "%s %q is invalid", e.Prop, e.Value)
	}
	return b.String()
}

func (e *PropError) Unwrap() error { return e.Err }
