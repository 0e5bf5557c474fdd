package ui

// Size selects a button size. The zero value means unset and renders like
// SizeMedium.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

var buttonSizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// ButtonSizes returns the declared button sizes in order.
func ButtonSizes() []Size { return append([]Size(nil), buttonSizes...) }

// Valid reports whether s is a declared size.
func (s Size) Valid() bool { return contains(buttonSizes, s) }

// Options lists the accepted values.
func (Size) Options() []string { return stringsOf(buttonSizes) }

// ButtonType selects a button's visual treatment. The zero value is the
// unstyled basic button.
type ButtonType string

const (
	TypeMain         ButtonType = "main"
	TypeSecondary    ButtonType = "secondary"
	TypeDanger       ButtonType = "danger"
	TypeWarn         ButtonType = "warn"
	TypeSuccess      ButtonType = "success"
	TypeInfo         ButtonType = "info"
	TypeGhost        ButtonType = "ghost"
	TypeGhostInfo    ButtonType = "ghost-info"
	TypeGhostDanger  ButtonType = "ghost-danger"
	TypeGhostWarn    ButtonType = "ghost-warn"
	TypeGhostSuccess ButtonType = "ghost-success"
	TypeLabel        ButtonType = "label"
	TypeLabelInfo    ButtonType = "label-info"
	TypeLabelDanger  ButtonType = "label-danger"
	TypeLabelWarn    ButtonType = "label-warn"
	TypeLabelSuccess ButtonType = "label-success"
)

var buttonTypes = []ButtonType{
	TypeMain, TypeSecondary, TypeDanger, TypeWarn, TypeSuccess, TypeInfo,
	TypeGhost, TypeGhostInfo, TypeGhostDanger, TypeGhostWarn, TypeGhostSuccess,
	TypeLabel, TypeLabelInfo, TypeLabelDanger, TypeLabelWarn, TypeLabelSuccess,
}

// ButtonTypes returns the declared button types in order.
func ButtonTypes() []ButtonType { return append([]ButtonType(nil), buttonTypes...) }

// Valid reports whether t is a declared type.
func (t ButtonType) Valid() bool { return contains(buttonTypes, t) }

// Options lists the accepted values.
func (ButtonType) Options() []string { return stringsOf(buttonTypes) }

// TextTag is the element a Text component renders as. The zero value
// renders as TagP.
type TextTag string

const (
	TagH1   TextTag = "h1"
	TagH2   TextTag = "h2"
	TagH3   TextTag = "h3"
	TagH4   TextTag = "h4"
	TagH5   TextTag = "h5"
	TagH6   TextTag = "h6"
	TagP    TextTag = "p"
	TagSpan TextTag = "span"
	TagDiv  TextTag = "div"
)

var textTags = []TextTag{TagH1, TagH2, TagH3, TagH4, TagH5, TagH6, TagP, TagSpan, TagDiv}

// TextTags returns the declared text tags in order.
func TextTags() []TextTag { return append([]TextTag(nil), textTags...) }

// Valid reports whether t is a declared tag.
func (t TextTag) Valid() bool { return contains(textTags, t) }

// Options lists the accepted values.
func (TextTag) Options() []string { return stringsOf(textTags) }

// IsHeading reports whether t is one of h1..h6.
func (t TextTag) IsHeading() bool {
	switch t {
	case TagH1, TagH2, TagH3, TagH4, TagH5, TagH6:
		return true
	}
	return false
}

// Resize controls which way a textarea can be resized. The zero value
// behaves as ResizeVertical.
type Resize string

const (
	ResizeVertical   Resize = "vertical"
	ResizeHorizontal Resize = "horizontal"
	ResizeNone       Resize = "none"
)

var resizes = []Resize{ResizeVertical, ResizeHorizontal, ResizeNone}

// Resizes returns the declared resize modes in order.
func Resizes() []Resize { return append([]Resize(nil), resizes...) }

// Valid reports whether r is a declared resize mode.
func (r Resize) Valid() bool { return contains(resizes, r) }

// Options lists the accepted values.
func (Resize) Options() []string { return stringsOf(resizes) }

// ParseSize converts s to a Size. "" yields the unset size.
func ParseSize(s string) (Size, error) { return parseEnum[Size]("size", s) }

// ParseButtonType converts s to a ButtonType. "" yields the unset type.
func ParseButtonType(s string) (ButtonType, error) { return parseEnum[ButtonType]("type", s) }

// ParseTextTag converts s to a TextTag. "" yields the unset tag.
func ParseTextTag(s string) (TextTag, error) { return parseEnum[TextTag]("tag", s) }

// ParseResize converts s to a Resize. "" yields the unset mode.
func ParseResize(s string) (Resize, error) { return parseEnum[Resize]("resize", s) }

type enum interface {
	~string
	Valid() bool
	Options() []string
}

func parseEnum[E enum](prop, s string) (E, error) {
	v := E(s)
	if s == "" || v.Valid() {
		return v, nil
	}
	var zero E
	return zero, &PropError{Prop: prop, Value: s, Allowed: v.Options(), Err: ErrInvalidProp}
}

func contains[E comparable](set []E, v E) bool {
	for _, e := range set {
		if e == v {
			return true
		}
	}
	return false
}

func stringsOf[E ~string](set []E) []string {
	out := make([]string, len(set))
	for i, e := range set {
		out[i] = string(e)
	}
	return out
}

// modifier builds a BEM modifier token: modifier("oxd-button", "small")
// is "oxd-button--small".
func modifier(base, value string) string {
	return base + "--" + value
}
