package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orangehrm/oxd/pkg/style"
)

// Args is a loosely typed prop bag, as produced by story files, query
// strings, CLI flags and JSON requests. Values are strings, bools, numbers
// or style maps; getters convert between the representations.
type Args map[string]any

// ArgsFromQuery builds Args from URL query values, keeping the first value
// of each key.
func ArgsFromQuery(q url.Values) Args {
	a := make(Args, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			a[k] = vs[0]
		}
	}
	return a
}

// Clone returns a shallow copy.
func (a Args) Clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge returns a copy of a overlaid with other.
func (a Args) Merge(other Args) Args {
	out := a.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Keys returns the argument names sorted.
func (a Args) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the named argument as a string. Absent keys yield "".
func (a Args) String(key string) (string, error) {
	switch v := a[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("arg %q: expected text, got %T", key, v)
	}
}

// Bool returns the named argument as a bool. HTML checkbox values ("on")
// count as true.
func (a Args) Bool(key string) (bool, error) {
	switch v := a[key].(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "false", "0", "off", "no":
			return false, nil
		case "true", "1", "on", "yes":
			return true, nil
		}
		return false, fmt.Errorf("arg %q: %q is not a boolean", key, v)
	default:
		return false, fmt.Errorf("arg %q: expected boolean, got %T", key, v)
	}
}

// Int returns the named argument as an int.
func (a Args) Int(key string) (int, error) {
	switch v := a[key].(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("arg %q: %v is not an integer", key, v)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("arg %q: %w", key, err)
		}
		return n, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("arg %q: %q is not an integer", key, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("arg %q: expected integer, got %T", key, v)
	}
}

// Style returns the named argument as a style map. Strings are parsed as
// CSS declarations or, when they start with "{", as a JSON object.
// Declaration order survives for style.Map values and parsed strings. Go
// maps carry no order, so map[string]string and map[string]any values come
// back sorted by property name; pass a style.Map when order matters.
func (a Args) Style(key string) (style.Map, error) {
	switch v := a[key].(type) {
	case nil:
		return style.Map{}, nil
	case style.Map:
		return v, nil
	case map[string]string:
		return style.FromMap(v), nil
	case map[string]any:
		flat := make(map[string]string, len(v))
		for k, val := range v {
			if val == nil {
				continue
			}
			flat[k] = fmt.Sprint(val)
		}
		return style.FromMap(flat), nil
	case string:
		text := strings.TrimSpace(v)
		if strings.HasPrefix(text, "{") {
			var m style.Map
			if err := json.Unmarshal([]byte(text), &m); err != nil {
				return style.Map{}, fmt.Errorf("arg %q: %w", key, err)
			}
			return m, nil
		}
		m, err := style.Parse(text)
		if err != nil {
			return style.Map{}, fmt.Errorf("arg %q: %w", key, err)
		}
		return m, nil
	default:
		return style.Map{}, fmt.Errorf("arg %q: expected style object, got %T", key, v)
	}
}

// UnmarshalJSON decodes a JSON object. Nested objects become style maps so
// their key order survives.
func (a *Args) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Args, len(raw))
	for k, msg := range raw {
		trimmed := bytes.TrimSpace(msg)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			var m style.Map
			if err := json.Unmarshal(trimmed, &m); err != nil {
				return fmt.Errorf("arg %q: %w", k, err)
			}
			out[k] = m
			continue
		}
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return fmt.Errorf("arg %q: %w", k, err)
		}
		if v != nil {
			out[k] = v
		}
	}
	*a = out
	return nil
}

// UnmarshalYAML decodes a YAML mapping. Nested mappings become style maps.
func (a *Args) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("args: line %d: expected mapping", node.Line)
	}
	out := make(Args, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i].Value, node.Content[i+1]
		switch v.Kind {
		case yaml.MappingNode:
			var m style.Map
			if err := v.Decode(&m); err != nil {
				return err
			}
			out[k] = m
		case yaml.ScalarNode:
			var val any
			if err := v.Decode(&val); err != nil {
				return err
			}
			if val != nil {
				out[k] = val
			}
		default:
			return fmt.Errorf("args: line %d: %q must be a scalar or mapping", v.Line, k)
		}
	}
	*a = out
	return nil
}
