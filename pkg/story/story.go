package story

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/orangehrm/oxd/pkg/ui"
)

// Story is one documented example of a component.
type Story struct {
	ID        string       `json:"id" yaml:"id,omitempty"`
	Title     string       `json:"title" yaml:"title,omitempty"`
	Component string       `json:"component" yaml:"component,omitempty"`
	Name      string       `json:"name" yaml:"name"`
	Args      ui.Args      `json:"args" yaml:"args,omitempty"`
	Controls  []ui.Control `json:"controls,omitempty" yaml:"controls,omitempty"`

	// Source is the file the story was loaded from, if any.
	Source string `json:"source,omitempty" yaml:"-"`
}

// Definition returns the catalog entry for the story's component.
func (s Story) Definition() (ui.Definition, error) {
	return ui.Lookup(s.Component)
}

// EffectiveControls returns the component's controls with the story's
// overrides applied by name. Overrides for unknown names are appended.
func (s Story) EffectiveControls() []ui.Control {
	def, err := s.Definition()
	if err != nil {
		return slices.Clone(s.Controls)
	}
	out := slices.Clone(def.Controls)
	for _, o := range s.Controls {
		i := slices.IndexFunc(out, func(c ui.Control) bool { return c.Name == o.Name })
		if i < 0 {
			out = append(out, o)
			continue
		}
		if o.Kind != "" {
			out[i].Kind = o.Kind
		}
		if o.Options != nil {
			out[i].Options = o.Options
		}
		if o.Default != nil {
			out[i].Default = o.Default
		}
	}
	return out
}

// Build constructs the story's component from its args overlaid with
// overrides. Select values outside the story's narrowed options are
// rejected even when the component itself would accept them.
func (s Story) Build(overrides ui.Args) (ui.Built, error) {
	def, err := s.Definition()
	if err != nil {
		return ui.Built{}, err
	}
	args := s.Args.Merge(overrides)
	for _, o := range s.Controls {
		if o.Kind != ui.ControlSelect || len(o.Options) == 0 {
			continue
		}
		v, err := args.String(o.Name)
		if err != nil || v == "" {
			continue
		}
		if !slices.Contains(o.Options, v) {
			return ui.Built{}, &ui.PropError{
				Component: s.Component,
				Prop:      o.Name,
				Value:     v,
				Allowed:   o.Options,
				Err:       ui.ErrInvalidProp,
			}
		}
	}
	return def.Build(args)
}

// Slug converts a display name to an id fragment: "Example/Button"
// becomes "example-button" and "GhostFeedback" becomes "ghost-feedback".
func Slug(s string) string {
	var b strings.Builder
	prev := rune(0)
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
		}
		prev = r
	}
	return strings.Trim(b.String(), "-")
}

// MakeID returns the id of a story with the given title and name.
func MakeID(title, name string) string {
	return fmt.Sprintf("%s--%s", Slug(title), Slug(name))
}
