package snapshot

import (
	"fmt"
	"sort"
	"strings"
)

// Header is the first line of every .snap file.
const Header = "// oxd snapshot v1"

// File is the set of baselines of one suite, keyed by case name.
type File struct {
	entries map[string]string
}

// NewFile returns an empty File.
func NewFile() *File {
	return &File{entries: make(map[string]string)}
}

// Get returns the stored markup for name.
func (f *File) Get(name string) (string, bool) {
	m, ok := f.entries[name]
	return m, ok
}

// Set stores markup under name.
func (f *File) Set(name, markup string) {
	if f.entries == nil {
		f.entries = make(map[string]string)
	}
	f.entries[name] = markup
}

// Delete removes name.
func (f *File) Delete(name string) {
	delete(f.entries, name)
}

// Len returns the number of entries.
func (f *File) Len() int { return len(f.entries) }

// Names returns the entry names sorted.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.entries))
	for n := range f.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Marshal encodes the file. Entries are written in name order so the
// output is stable.
func (f *File) Marshal() []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for _, name := range f.Names() {
		b.WriteString("\nexports[`")
		b.WriteString(escape(name))
		b.WriteString("`] = `\n")
		b.WriteString(escape(f.entries[name]))
		b.WriteString("\n`;\n")
	}
	return []byte(b.String())
}

// Parse decodes a .snap file.
func Parse(data []byte) (*File, error) {
	f := NewFile()
	s := string(data)
	line := 1
	for {
		i := strings.Index(s, "exports[`")
		if i < 0 {
			if strings.TrimSpace(stripComments(s)) != "" {
				return nil, fmt.Errorf("snapshot: line %d: unexpected content", line)
			}
			return f, nil
		}
		if strings.TrimSpace(stripComments(s[:i])) != "" {
			return nil, fmt.Errorf("snapshot: line %d: unexpected content", line)
		}
		line += strings.Count(s[:i], "\n")
		s = s[i+len("exports[`"):]

		name, rest, ok := readQuoted(s)
		if !ok {
			return nil, fmt.Errorf("snapshot: line %d: unterminated name", line)
		}
		if !strings.HasPrefix(rest, "] = `") {
			return nil, fmt.Errorf("snapshot: line %d: expected \"] = `\" after %q", line, name)
		}
		line += strings.Count(s[:len(s)-len(rest)], "\n")
		s = rest[len("] = `"):]

		markup, rest, ok := readQuoted(s)
		if !ok {
			return nil, fmt.Errorf("snapshot: line %d: unterminated value for %q", line, name)
		}
		if !strings.HasPrefix(rest, ";") {
			return nil, fmt.Errorf("snapshot: line %d: expected \";\" after %q", line, name)
		}
		line += strings.Count(s[:len(s)-len(rest)], "\n")
		s = rest[1:]

		markup = strings.TrimPrefix(markup, "\n")
		markup = strings.TrimSuffix(markup, "\n")
		if _, dup := f.entries[name]; dup {
			return nil, fmt.Errorf("snapshot: line %d: duplicate entry %q", line, name)
		}
		f.entries[name] = markup
	}
}

// readQuoted reads up to the next unescaped backtick and returns the
// unescaped text and the remainder after the backtick.
func readQuoted(s string) (text, rest string, ok bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			}
		case '`':
			return b.String(), s[i+1:], true
		default:
			b.WriteByte(s[i])
		}
	}
	return "", "", false
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "`", "\\`").Replace(s)
}

// stripComments removes // line comments outside entries.
func stripComments(s string) string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(l), "//") {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}
