package style

import (
	"fmt"
	"sort"
	"strings"
)

// Decl is a single property/value declaration.
type Decl struct {
	Property string
	Value    string
}

// Map is an ordered mapping of CSS property names to values.
// The zero value is an empty map ready to use.
type Map struct {
	decls []Decl
}

// Of builds a Map from alternating property/value arguments.
// A trailing property without a value is ignored.
func Of(pairs ...string) Map {
	var m Map
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// FromMap builds a Map from a Go map. Go maps are unordered, so properties
// are sorted to keep the result deterministic.
func FromMap(values map[string]string) Map {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var m Map
	for _, k := range keys {
		m.Set(k, values[k])
	}
	return m
}

// Set assigns value to property. An existing property keeps its position.
func (m *Map) Set(property, value string) {
	for i := range m.decls {
		if m.decls[i].Property == property {
			m.decls[i].Value = value
			return
		}
	}
	m.decls = append(m.decls, Decl{Property: property, Value: value})
}

// Get returns the value for property and whether it was present.
func (m Map) Get(property string) (string, bool) {
	for _, d := range m.decls {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Delete removes property if present.
func (m *Map) Delete(property string) {
	for i, d := range m.decls {
		if d.Property == property {
			m.decls = append(m.decls[:i:i], m.decls[i+1:]...)
			return
		}
	}
}

// Len returns the number of declarations.
func (m Map) Len() int { return len(m.decls) }

// IsEmpty reports whether the map has no declarations.
func (m Map) IsEmpty() bool { return len(m.decls) == 0 }

// Keys returns the properties in declaration order.
func (m Map) Keys() []string {
	keys := make([]string, len(m.decls))
	for i, d := range m.decls {
		keys[i] = d.Property
	}
	return keys
}

// Decls returns a copy of the declarations in order.
func (m Map) Decls() []Decl {
	out := make([]Decl, len(m.decls))
	copy(out, m.decls)
	return out
}

// Each calls fn for every declaration in order.
func (m Map) Each(fn func(property, value string)) {
	for _, d := range m.decls {
		fn(d.Property, d.Value)
	}
}

// Equal reports whether both maps hold the same declarations in the same order.
func (m Map) Equal(other Map) bool {
	if len(m.decls) != len(other.decls) {
		return false
	}
	for i := range m.decls {
		if m.decls[i] != other.decls[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	if m.decls == nil {
		return Map{}
	}
	return Map{decls: m.Decls()}
}

// ToMap returns the declarations as a plain Go map.
func (m Map) ToMap() map[string]string {
	out := make(map[string]string, len(m.decls))
	for _, d := range m.decls {
		out[d.Property] = d.Value
	}
	return out
}

// String implements fmt.Stringer using the inline CSS form.
func (m Map) String() string {
	return m.CSS()
}

// GoString prints the map as an Of(...) call, useful in test failures.
func (m Map) GoString() string {
	parts := make([]string, 0, len(m.decls)*2)
	for _, d := range m.decls {
		parts = append(parts, fmt.Sprintf("%q", d.Property), fmt.Sprintf("%q", d.Value))
	}
	return "style.Of(" + strings.Join(parts, ", ") + ")"
}
