// Package oxd provides the public API for the OXD component library.
//
// This is the recommended import for most applications:
//
//	import "github.com/orangehrm/oxd"
//
// Usage:
//
//	save, err := oxd.NewButton(oxd.ButtonProps{Label: "Save", Type: oxd.TypeMain})
//	title, err := oxd.NewText(oxd.TextProps{Tag: oxd.TagH1, Content: "Employees"})
//	html := oxd.RenderString(save.Render())
package oxd

import (
	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/ui"
	"github.com/orangehrm/oxd/pkg/vdom"
)

// =============================================================================
// Components (re-export from pkg/ui)
// =============================================================================

type (
	Button        = ui.Button
	ButtonProps   = ui.ButtonProps
	Text          = ui.Text
	TextProps     = ui.TextProps
	Textarea      = ui.Textarea
	TextareaProps = ui.TextareaProps
)

// NewButton validates p and returns a Button.
func NewButton(p ButtonProps) (*Button, error) { return ui.NewButton(p) }

// NewText validates p and returns a Text.
func NewText(p TextProps) (*Text, error) { return ui.NewText(p) }

// NewTextarea validates p and returns a Textarea.
func NewTextarea(p TextareaProps) (*Textarea, error) { return ui.NewTextarea(p) }

// =============================================================================
// Resolution
// =============================================================================

// Resolution is a component's root tag, ordered classes and inline style.
type Resolution = ui.Resolution

// ClassList is an ordered list of class tokens; the base token comes first.
type ClassList = ui.ClassList

var (
	ResolveButton   = ui.ResolveButton
	ResolveText     = ui.ResolveText
	ResolveTextarea = ui.ResolveTextarea
)

// =============================================================================
// Variants
// =============================================================================

type (
	Size       = ui.Size
	ButtonType = ui.ButtonType
	TextTag    = ui.TextTag
	Resize     = ui.Resize
)

const (
	SizeSmall  = ui.SizeSmall
	SizeMedium = ui.SizeMedium
	SizeLarge  = ui.SizeLarge
)

const (
	TypeMain         = ui.TypeMain
	TypeSecondary    = ui.TypeSecondary
	TypeDanger       = ui.TypeDanger
	TypeWarn         = ui.TypeWarn
	TypeSuccess      = ui.TypeSuccess
	TypeInfo         = ui.TypeInfo
	TypeGhost        = ui.TypeGhost
	TypeGhostInfo    = ui.TypeGhostInfo
	TypeGhostDanger  = ui.TypeGhostDanger
	TypeGhostWarn    = ui.TypeGhostWarn
	TypeGhostSuccess = ui.TypeGhostSuccess
	TypeLabel        = ui.TypeLabel
	TypeLabelInfo    = ui.TypeLabelInfo
	TypeLabelDanger  = ui.TypeLabelDanger
	TypeLabelWarn    = ui.TypeLabelWarn
	TypeLabelSuccess = ui.TypeLabelSuccess
)

const (
	TagH1   = ui.TagH1
	TagH2   = ui.TagH2
	TagH3   = ui.TagH3
	TagH4   = ui.TagH4
	TagH5   = ui.TagH5
	TagH6   = ui.TagH6
	TagP    = ui.TagP
	TagSpan = ui.TagSpan
	TagDiv  = ui.TagDiv
)

const (
	ResizeVertical   = ui.ResizeVertical
	ResizeHorizontal = ui.ResizeHorizontal
	ResizeNone       = ui.ResizeNone
)

// Errors returned by the constructors. Test with errors.Is.
var (
	ErrInvalidProp    = ui.ErrInvalidProp
	ErrMissingContent = ui.ErrMissingContent
)

// PropError describes a rejected prop value.
type PropError = ui.PropError

// =============================================================================
// Style and rendering
// =============================================================================

// Style is an ordered map of camelCase CSS properties.
type Style = style.Map

// StyleOf builds a Style from key/value pairs, keeping their order.
func StyleOf(pairs ...string) Style { return style.Of(pairs...) }

// VNode is a virtual DOM node.
type VNode = vdom.VNode

// RenderString renders node as compact HTML.
func RenderString(node *VNode) string { return render.RenderString(node) }
