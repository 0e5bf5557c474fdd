// Package style provides the ordered inline-style mapping that components
// pass through to their root element.
//
// A Map is an open set of CSS property/value pairs. Keys are kept exactly as
// the caller wrote them (camelCase such as "backgroundColor" or kebab-case
// such as "background-color") and are never validated. Declaration order is
// preserved so rendered style attributes are deterministic:
//
//	s := style.Of("backgroundColor", "palegreen", "color", "black")
//	s.CSS() // "background-color: palegreen; color: black;"
//
// Maps decode from JSON objects, YAML mappings and CSS declaration text
// without losing the order the caller used.
package style
