package ui

import (
	"strings"

	"github.com/orangehrm/oxd/pkg/style"
)

// ClassList is an ordered list of CSS class tokens.
type ClassList []string

// String joins the tokens with spaces, as in a class attribute.
func (c ClassList) String() string { return strings.Join(c, " ") }

// Has reports whether token is present.
func (c ClassList) Has(token string) bool {
	for _, t := range c {
		if t == token {
			return true
		}
	}
	return false
}

// Modifiers returns the tokens after the base token.
func (c ClassList) Modifiers() ClassList {
	if len(c) <= 1 {
		return nil
	}
	return c[1:]
}

// Resolution is the outcome of resolving a component's props.
type Resolution struct {
	// Tag is the root element tag.
	Tag string `json:"tag"`

	// Classes is the resolved class list; the base token is always first.
	Classes ClassList `json:"classes"`

	// Style is the caller's style map, unmodified.
	Style style.Map `json:"style"`
}

// Base returns the base class token.
func (r Resolution) Base() string {
	if len(r.Classes) == 0 {
		return ""
	}
	return r.Classes[0]
}
