package style

import (
	"fmt"
	"strings"
	"unicode"
)

// CSS renders the map as inline style attribute text, e.g.
// "background-color: palegreen; color: red;". camelCase properties are
// hyphenated, custom properties ("--x") are written verbatim.
func (m Map) CSS() string {
	if len(m.decls) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range m.decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(PropertyName(d.Property))
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// PropertyName converts a property key to its CSS form.
// An uppercase letter that follows a word character starts a new
// hyphenated segment: "backgroundColor" -> "background-color".
func PropertyName(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	prevWord := false
	for _, r := range key {
		if unicode.IsUpper(r) && prevWord {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
		prevWord = r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return b.String()
}

// Parse reads CSS declaration text ("color: red; margin: 0 auto") into a
// Map. Semicolons inside parentheses or quotes do not end a declaration.
func Parse(text string) (Map, error) {
	var m Map
	for _, decl := range splitDecls(text) {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		idx := strings.IndexByte(decl, ':')
		if idx <= 0 {
			return Map{}, fmt.Errorf("style: malformed declaration %q", decl)
		}
		prop := strings.TrimSpace(decl[:idx])
		value := strings.TrimSpace(decl[idx+1:])
		if prop == "" {
			return Map{}, fmt.Errorf("style: empty property in %q", decl)
		}
		m.Set(prop, value)
	}
	return m, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) Map {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}

func splitDecls(text string) []string {
	var (
		out   []string
		start int
		depth int
		quote rune
	)
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == ';' && depth == 0:
			out = append(out, text[start:i])
			start = i + 1
		}
	}
	return append(out, text[start:])
}
