// Package ui implements the oxd presentational components: Button, Text and
// Textarea.
//
// Each component is a thin shell around a pure variant resolver. A resolver
// maps the component's props to a Resolution: the root tag, an ordered
// ClassList and the caller's inline style map, untouched. The class list is
// built additively:
//
//  1. the base token ("oxd-button", "oxd-text", "oxd-textarea")
//  2. a size token, when a non-default size is set
//  3. a type token, when a type is set ("oxd-button--ghost-danger")
//  4. boolean flag tokens in a fixed order ("oxd-button--disabled")
//
// Text maps its tag to a semantic token (h1..h6 get their own token, other
// tags share "oxd-text--default") and Textarea always carries a resize token.
//
// # Construction
//
// NewButton, NewText and NewTextarea validate props and reject values outside
// the declared enumerations with an error wrapping ErrInvalidProp. The
// Resolve* functions skip validation and treat an unknown value as unset, so
// they are total over any input.
//
//	b, err := ui.NewButton(ui.ButtonProps{Label: "Save", Type: ui.TypeMain})
//	if err != nil {
//	    return err
//	}
//	html := render.RenderString(b.Render())
//
// # Catalog
//
// Catalog describes every component's controls (the enumerations above plus
// boolean, text and style inputs) and can build a component from a loosely
// typed Args bag. Documentation and snapshot tooling are driven from it.
package ui
