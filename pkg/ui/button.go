package ui

import (
	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/vdom"
)

const buttonBase = "oxd-button"

// ButtonProps are the inputs of a Button.
type ButtonProps struct {
	Label    string     `json:"label" yaml:"label" validate:"required"`
	Size     Size       `json:"size,omitempty" yaml:"size,omitempty" validate:"omitempty,enum"`
	Type     ButtonType `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,enum"`
	Disabled bool       `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Style    style.Map  `json:"style" yaml:"style,omitempty" validate:"-"`
}

// ResolveButton maps props to a Resolution without validating them.
// Sizes and types outside the declared sets add no token.
func ResolveButton(p ButtonProps) Resolution {
	classes := ClassList{buttonBase}
	if p.Size.Valid() && p.Size != SizeMedium {
		classes = append(classes, modifier(buttonBase, string(p.Size)))
	}
	if p.Type.Valid() {
		classes = append(classes, modifier(buttonBase, string(p.Type)))
	}
	if p.Disabled {
		classes = append(classes, modifier(buttonBase, "disabled"))
	}
	return Resolution{Tag: "button", Classes: classes, Style: p.Style}
}

// Button is a validated button component.
type Button struct {
	props ButtonProps
}

// NewButton validates props and returns the component.
func NewButton(p ButtonProps) (*Button, error) {
	if err := validateProps("button", p); err != nil {
		return nil, err
	}
	return &Button{props: p}, nil
}

// Props returns the component props.
func (b *Button) Props() ButtonProps { return b.props }

// Resolve returns the resolved classes and style.
func (b *Button) Resolve() Resolution { return ResolveButton(b.props) }

// Render implements vdom.Component.
func (b *Button) Render() *vdom.VNode {
	res := b.Resolve()
	return vdom.Button(
		vdom.Type("button"),
		vdom.Class(res.Classes...),
		vdom.AttrIf(b.props.Disabled, vdom.Disabled()),
		vdom.InlineStyle(res.Style),
		vdom.Text(b.props.Label),
	)
}
