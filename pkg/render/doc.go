// Package render serializes vdom trees to HTML.
//
// The renderer produces deterministic output: attributes are written in
// sorted order, text and attribute values are escaped, void elements have no
// closing tag and boolean attributes are written bare. Deterministic markup
// is what snapshot baselines are compared against, so two renders of the
// same tree always produce identical bytes.
//
// # Basic Usage
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// # Pretty Output
//
// With Pretty set, block elements that contain other elements are broken
// across indented lines, while elements holding only text stay on one line:
//
//	<div class="wrapper">
//	  <button class="oxd-button" type="button">Button</button>
//	</div>
//
// # Full Page Rendering
//
// RenderPage wraps a body tree in a complete HTML document with a head
// section built from PageData.
package render
