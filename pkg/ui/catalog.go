package ui

import (
	"fmt"

	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/vdom"
)

// ControlKind is the kind of input a documentation control offers.
type ControlKind string

const (
	ControlSelect  ControlKind = "select"
	ControlBoolean ControlKind = "boolean"
	ControlObject  ControlKind = "object"
	ControlText    ControlKind = "text"
	ControlNumber  ControlKind = "number"
)

// Control describes one prop as an editable input.
type Control struct {
	Name    string      `json:"name" yaml:"name"`
	Kind    ControlKind `json:"kind" yaml:"kind"`
	Options []string    `json:"options,omitempty" yaml:"options,omitempty"`
	Default any         `json:"default,omitempty" yaml:"default,omitempty"`
}

// Built is a component constructed from Args together with its resolution.
type Built struct {
	Component  vdom.Component
	Resolution Resolution
}

// Definition describes a component for tooling.
type Definition struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Controls []Control `json:"controls"`

	build func(Args) (Built, error)
}

// Build decodes args into the component's props and constructs it.
// Construction applies the same validation as the New* constructors.
func (d Definition) Build(args Args) (Built, error) {
	return d.build(args)
}

// Control returns the named control.
func (d Definition) Control(name string) (Control, bool) {
	for _, c := range d.Controls {
		if c.Name == name {
			return c, true
		}
	}
	return Control{}, false
}

// Catalog returns the definitions of every component, in a fixed order.
func Catalog() []Definition {
	return []Definition{buttonDefinition(), textDefinition(), textareaDefinition()}
}

// Lookup returns the definition with the given name.
func Lookup(name string) (Definition, error) {
	for _, d := range Catalog() {
		if d.Name == name {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("unknown component %q", name)
}

// ComponentNames lists the catalog's component names.
func ComponentNames() []string {
	defs := Catalog()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

func buttonDefinition() Definition {
	return Definition{
		Name:  "button",
		Title: "Button",
		Controls: []Control{
			{Name: "label", Kind: ControlText, Default: "Button"},
			{Name: "size", Kind: ControlSelect, Options: Size("").Options()},
			{Name: "type", Kind: ControlSelect, Options: ButtonType("").Options()},
			{Name: "style", Kind: ControlObject},
			{Name: "disabled", Kind: ControlBoolean, Default: false},
		},
		build: func(a Args) (Built, error) {
			p, err := ButtonPropsFromArgs(a)
			if err != nil {
				return Built{}, err
			}
			b, err := NewButton(p)
			if err != nil {
				return Built{}, err
			}
			return Built{Component: b, Resolution: b.Resolve()}, nil
		},
	}
}

func textDefinition() Definition {
	return Definition{
		Name:  "text",
		Title: "Text",
		Controls: []Control{
			{Name: "content", Kind: ControlText},
			{Name: "tag", Kind: ControlSelect, Options: TextTag("").Options()},
			{Name: "style", Kind: ControlObject},
		},
		build: func(a Args) (Built, error) {
			p, err := TextPropsFromArgs(a)
			if err != nil {
				return Built{}, err
			}
			t, err := NewText(p)
			if err != nil {
				return Built{}, err
			}
			return Built{Component: t, Resolution: t.Resolve()}, nil
		},
	}
}

func textareaDefinition() Definition {
	return Definition{
		Name:  "textarea",
		Title: "Textarea",
		Controls: []Control{
			{Name: "value", Kind: ControlText},
			{Name: "resize", Kind: ControlSelect, Options: Resize("").Options()},
			{Name: "style", Kind: ControlObject},
			{Name: "hasError", Kind: ControlBoolean, Default: false},
			{Name: "disabled", Kind: ControlBoolean, Default: false},
			{Name: "readonly", Kind: ControlBoolean, Default: false},
			{Name: "placeholder", Kind: ControlText},
			{Name: "rows", Kind: ControlNumber},
		},
		build: func(a Args) (Built, error) {
			p, err := TextareaPropsFromArgs(a)
			if err != nil {
				return Built{}, err
			}
			t, err := NewTextarea(p)
			if err != nil {
				return Built{}, err
			}
			return Built{Component: t, Resolution: t.Resolve()}, nil
		},
	}
}

// ButtonPropsFromArgs decodes Args into ButtonProps. Enum values are
// carried as given; NewButton rejects unknown ones.
func ButtonPropsFromArgs(a Args) (ButtonProps, error) {
	d := argDecoder{args: a}
	p := ButtonProps{
		Label:    d.str("label"),
		Size:     Size(d.str("size")),
		Type:     ButtonType(d.str("type")),
		Disabled: d.boolean("disabled"),
		Style:    d.style(),
	}
	if d.err != nil {
		return ButtonProps{}, d.err
	}
	return p, nil
}

// TextPropsFromArgs decodes Args into TextProps.
func TextPropsFromArgs(a Args) (TextProps, error) {
	d := argDecoder{args: a}
	p := TextProps{
		Content: d.str("content"),
		Tag:     TextTag(d.str("tag")),
		Style:   d.style(),
	}
	if d.err != nil {
		return TextProps{}, d.err
	}
	return p, nil
}

// TextareaPropsFromArgs decodes Args into TextareaProps.
func TextareaPropsFromArgs(a Args) (TextareaProps, error) {
	d := argDecoder{args: a}
	p := TextareaProps{
		Value:       d.str("value"),
		Resize:      Resize(d.str("resize")),
		HasError:    d.boolean("hasError"),
		Disabled:    d.boolean("disabled"),
		Readonly:    d.boolean("readonly"),
		Placeholder: d.str("placeholder"),
		Rows:        d.integer("rows"),
		Style:       d.style(),
	}
	if d.err != nil {
		return TextareaProps{}, d.err
	}
	return p, nil
}

// argDecoder keeps the first conversion error so callers can decode a
// whole struct before checking.
type argDecoder struct {
	args Args
	err  error
}

func (d *argDecoder) str(key string) string {
	s, err := d.args.String(key)
	d.keep(key, err)
	return s
}

func (d *argDecoder) boolean(key string) bool {
	b, err := d.args.Bool(key)
	d.keep(key, err)
	return b
}

func (d *argDecoder) integer(key string) int {
	n, err := d.args.Int(key)
	d.keep(key, err)
	return n
}

func (d *argDecoder) style() style.Map {
	m, err := d.args.Style("style")
	d.keep("style", err)
	return m
}

func (d *argDecoder) keep(key string, err error) {
	if err != nil && d.err == nil {
		d.err = &PropError{Prop: key, Value: fmt.Sprint(d.args[key]), Err: ErrInvalidProp}
	}
}
