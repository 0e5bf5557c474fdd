package ui

import (
	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/vdom"
)

const textareaBase = "oxd-textarea"

// TextareaProps are the inputs of a Textarea.
type TextareaProps struct {
	Value       string    `json:"value,omitempty" yaml:"value,omitempty"`
	Resize      Resize    `json:"resize,omitempty" yaml:"resize,omitempty" validate:"omitempty,enum"`
	HasError    bool      `json:"hasError,omitempty" yaml:"hasError,omitempty"`
	Disabled    bool      `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Readonly    bool      `json:"readonly,omitempty" yaml:"readonly,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Rows        int       `json:"rows,omitempty" yaml:"rows,omitempty" validate:"gte=0"`
	Style       style.Map `json:"style" yaml:"style,omitempty" validate:"-"`
}

// ResolveTextarea maps props to a Resolution without validating them.
// An unset or unknown resize mode resolves to vertical.
func ResolveTextarea(p TextareaProps) Resolution {
	resize := p.Resize
	if !resize.Valid() {
		resize = ResizeVertical
	}
	classes := ClassList{
		textareaBase,
		modifier(textareaBase, "resize-"+string(resize)),
	}
	if p.HasError {
		classes = append(classes, modifier(textareaBase, "error"))
	}
	return Resolution{Tag: "textarea", Classes: classes, Style: p.Style}
}

// Textarea is a validated multi-line input component.
type Textarea struct {
	props TextareaProps
}

// NewTextarea validates props and returns the component.
func NewTextarea(p TextareaProps) (*Textarea, error) {
	if err := validateProps("textarea", p); err != nil {
		return nil, err
	}
	return &Textarea{props: p}, nil
}

// Props returns the component props.
func (t *Textarea) Props() TextareaProps { return t.props }

// Resolve returns the resolved classes and style.
func (t *Textarea) Resolve() Resolution { return ResolveTextarea(t.props) }

// Render implements vdom.Component.
func (t *Textarea) Render() *vdom.VNode {
	res := t.Resolve()
	p := t.props
	return vdom.Textarea(
		vdom.Class(res.Classes...),
		vdom.InlineStyle(res.Style),
		vdom.AttrIf(p.Disabled, vdom.Disabled()),
		vdom.AttrIf(p.Readonly, vdom.Readonly()),
		vdom.AttrIf(p.Placeholder != "", vdom.Placeholder(p.Placeholder)),
		vdom.AttrIf(p.Rows > 0, vdom.Rows(p.Rows)),
		vdom.Text(p.Value),
	)
}
