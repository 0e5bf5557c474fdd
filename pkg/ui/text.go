package ui

import (
	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/vdom"
)

const textBase = "oxd-text"

// TextProps are the inputs of a Text. Content or Children must be set.
type TextProps struct {
	Tag      TextTag       `json:"tag,omitempty" yaml:"tag,omitempty" validate:"omitempty,enum"`
	Content  string        `json:"content,omitempty" yaml:"content,omitempty"`
	Children []*vdom.VNode `json:"-" yaml:"-" validate:"-"`
	Style    style.Map     `json:"style" yaml:"style,omitempty" validate:"-"`
}

// ResolveText maps props to a Resolution without validating them.
// Headings get their own token; every other tag, including unknown ones,
// shares the default token and renders as a paragraph when unknown.
func ResolveText(p TextProps) Resolution {
	tag := p.Tag
	if !tag.Valid() {
		tag = TagP
	}
	classes := ClassList{textBase}
	if tag.IsHeading() {
		classes = append(classes, modifier(textBase, string(tag)))
	} else {
		classes = append(classes, modifier(textBase, "default"))
	}
	return Resolution{Tag: string(tag), Classes: classes, Style: p.Style}
}

// Text is a validated typography component.
type Text struct {
	props TextProps
}

// NewText validates props and returns the component.
func NewText(p TextProps) (*Text, error) {
	if err := validateProps("text", p); err != nil {
		return nil, err
	}
	return &Text{props: p}, nil
}

// Props returns the component props.
func (t *Text) Props() TextProps { return t.props }

// Resolve returns the resolved classes and style.
func (t *Text) Resolve() Resolution { return ResolveText(t.props) }

// Render implements vdom.Component. Content comes before Children.
func (t *Text) Render() *vdom.VNode {
	res := t.Resolve()
	var content *vdom.VNode
	if t.props.Content != "" {
		content = vdom.Text(t.props.Content)
	}
	return vdom.El(res.Tag,
		vdom.Class(res.Classes...),
		vdom.InlineStyle(res.Style),
		content,
		t.props.Children,
	)
}
