package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orangehrm/oxd/pkg/style"
)

func TestResolveScenarios(t *testing.T) {
	t.Run("button defaults", func(t *testing.T) {
		res := ResolveButton(ButtonProps{Label: "Button"})
		assert.Equal(t, "button", res.Tag)
		assert.Equal(t, ClassList{"oxd-button"}, res.Classes)
		assert.True(t, res.Style.IsEmpty())
	})

	t.Run("button small", func(t *testing.T) {
		res := ResolveButton(ButtonProps{Label: "Button", Size: SizeSmall})
		assert.Equal(t, ClassList{"oxd-button", "oxd-button--small"}, res.Classes)
	})

	t.Run("button ghost-danger", func(t *testing.T) {
		res := ResolveButton(ButtonProps{Label: "Button", Type: TypeGhostDanger})
		assert.Equal(t, ClassList{"oxd-button", "oxd-button--ghost-danger"}, res.Classes)
	})

	t.Run("button custom color", func(t *testing.T) {
		in := style.Of("backgroundColor", "palegreen")
		res := ResolveButton(ButtonProps{Label: "Button", Style: in})
		assert.Equal(t, ClassList{"oxd-button"}, res.Classes)
		assert.True(t, res.Style.Equal(style.Of("backgroundColor", "palegreen")))
		assert.Equal(t, []string{"backgroundColor"}, res.Style.Keys())
	})

	t.Run("text h1", func(t *testing.T) {
		res := ResolveText(TextProps{Tag: TagH1, Content: "x"})
		assert.Equal(t, "h1", res.Tag)
		assert.Equal(t, ClassList{"oxd-text", "oxd-text--h1"}, res.Classes)
		assert.False(t, res.Classes.Has("oxd-text--default"))
	})

	t.Run("textarea error", func(t *testing.T) {
		res := ResolveTextarea(TextareaProps{HasError: true})
		assert.Equal(t, "textarea", res.Tag)
		assert.Equal(t, ClassList{
			"oxd-textarea",
			"oxd-textarea--resize-vertical",
			"oxd-textarea--error",
		}, res.Classes)
	})
}

func TestResolveDeterministic(t *testing.T) {
	for _, size := range append(ButtonSizes(), "") {
		for _, typ := range append(ButtonTypes(), "") {
			for _, disabled := range []bool{false, true} {
				p := ButtonProps{
					Label:    "Button",
					Size:     size,
					Type:     typ,
					Disabled: disabled,
					Style:    style.Of("color", "red", "marginTop", "4px"),
				}
				a, b := ResolveButton(p), ResolveButton(p)
				require.Equal(t, a.Classes, b.Classes)
				require.True(t, a.Style.Equal(b.Style))
			}
		}
	}
}

func TestResolveAdditiveFlags(t *testing.T) {
	for _, size := range append(ButtonSizes(), "") {
		for _, typ := range append(ButtonTypes(), "") {
			off := ResolveButton(ButtonProps{Label: "Button", Size: size, Type: typ})
			on := ResolveButton(ButtonProps{Label: "Button", Size: size, Type: typ, Disabled: true})

			require.Len(t, on.Classes, len(off.Classes)+1, "size=%q type=%q", size, typ)
			assert.Equal(t, off.Classes, on.Classes[:len(off.Classes)])
			assert.Equal(t, "oxd-button--disabled", on.Classes[len(on.Classes)-1])
		}
	}

	for _, resize := range append(Resizes(), "") {
		off := ResolveTextarea(TextareaProps{Resize: resize})
		on := ResolveTextarea(TextareaProps{Resize: resize, HasError: true})
		require.Len(t, on.Classes, len(off.Classes)+1)
		assert.Equal(t, off.Classes, on.Classes[:len(off.Classes)])
		assert.Equal(t, "oxd-textarea--error", on.Classes[len(on.Classes)-1])
	}
}

func TestResolveDefaultFallback(t *testing.T) {
	assert.Equal(t,
		ResolveButton(ButtonProps{Label: "Button", Size: SizeMedium}).Classes,
		ResolveButton(ButtonProps{Label: "Button"}).Classes)

	assert.Equal(t,
		ResolveText(TextProps{Tag: TagP, Content: "x"}),
		ResolveText(TextProps{Content: "x"}))

	assert.Equal(t,
		ResolveTextarea(TextareaProps{Resize: ResizeVertical}).Classes,
		ResolveTextarea(TextareaProps{}).Classes)
}

func TestResolveUnknownValuesFallThrough(t *testing.T) {
	res := ResolveButton(ButtonProps{Label: "Button", Size: "huge", Type: "shiny"})
	assert.Equal(t, ClassList{"oxd-button"}, res.Classes)

	res = ResolveText(TextProps{Tag: "marquee", Content: "x"})
	assert.Equal(t, "p", res.Tag)
	assert.Equal(t, ClassList{"oxd-text", "oxd-text--default"}, res.Classes)

	res = ResolveTextarea(TextareaProps{Resize: "diagonal"})
	assert.Equal(t, ClassList{"oxd-textarea", "oxd-textarea--resize-vertical"}, res.Classes)
}

func TestResolveStylePassthrough(t *testing.T) {
	in := style.Of("zIndex", "2", "backgroundColor", "aliceblue", "--gap", "4px")

	for name, got := range map[string]style.Map{
		"button":   ResolveButton(ButtonProps{Label: "Button", Type: TypeMain, Style: in}).Style,
		"text":     ResolveText(TextProps{Tag: TagH3, Content: "x", Style: in}).Style,
		"textarea": ResolveTextarea(TextareaProps{HasError: true, Style: in}).Style,
	} {
		assert.True(t, in.Equal(got), name)
		assert.Equal(t, []string{"zIndex", "backgroundColor", "--gap"}, got.Keys(), name)
	}
}

func TestEnumerationTokensDistinct(t *testing.T) {
	seen := map[string]ButtonType{}
	for _, typ := range ButtonTypes() {
		mods := ResolveButton(ButtonProps{Label: "Button", Type: typ}).Classes.Modifiers()
		require.Len(t, mods, 1, typ)
		require.NotEmpty(t, mods[0])
		prev, dup := seen[mods[0]]
		require.False(t, dup, "%s shares %s with %s", typ, mods[0], prev)
		seen[mods[0]] = typ
	}
	assert.Len(t, seen, 16)

	// The unset type is the seventeenth option and carries no modifier.
	assert.Empty(t, ResolveButton(ButtonProps{Label: "Button"}).Classes.Modifiers())

	headings := map[string]bool{}
	for _, tag := range TextTags() {
		if !tag.IsHeading() {
			continue
		}
		mods := ResolveText(TextProps{Tag: tag, Content: "x"}).Classes.Modifiers()
		require.Len(t, mods, 1)
		headings[mods[0]] = true
	}
	assert.Len(t, headings, 6)

	resizeTokens := map[string]bool{}
	for _, r := range Resizes() {
		resizeTokens[ResolveTextarea(TextareaProps{Resize: r}).Classes[1]] = true
	}
	assert.Len(t, resizeTokens, 3)
}

func TestTextNonHeadingTagsShareDefault(t *testing.T) {
	for _, tag := range []TextTag{TagP, TagSpan, TagDiv} {
		res := ResolveText(TextProps{Tag: tag, Content: "x"})
		assert.Equal(t, string(tag), res.Tag)
		assert.Equal(t, ClassList{"oxd-text", "oxd-text--default"}, res.Classes)
	}
}

func TestButtonTokenOrder(t *testing.T) {
	res := ResolveButton(ButtonProps{Label: "Button", Size: SizeLarge, Type: TypeLabelWarn, Disabled: true})
	assert.Equal(t, ClassList{
		"oxd-button",
		"oxd-button--large",
		"oxd-button--label-warn",
		"oxd-button--disabled",
	}, res.Classes)
	assert.Equal(t, "oxd-button", res.Base())
	assert.Equal(t, "oxd-button oxd-button--large oxd-button--label-warn oxd-button--disabled", res.Classes.String())
}

func TestParseEnums(t *testing.T) {
	s, err := ParseSize("large")
	require.NoError(t, err)
	assert.Equal(t, SizeLarge, s)

	s, err = ParseSize("")
	require.NoError(t, err)
	assert.Equal(t, Size(""), s)

	_, err = ParseSize("huge")
	require.ErrorIs(t, err, ErrInvalidProp)
	assert.EqualError(t, err, `size "huge" is not one of [small, medium, large]`)

	typ, err := ParseButtonType("ghost-success")
	require.NoError(t, err)
	assert.Equal(t, TypeGhostSuccess, typ)

	_, err = ParseTextTag("h7")
	assert.ErrorIs(t, err, ErrInvalidProp)

	r, err := ParseResize("none")
	require.NoError(t, err)
	assert.Equal(t, ResizeNone, r)
}

func TestEnumOptionsOrder(t *testing.T) {
	assert.Equal(t, []string{"small", "medium", "large"}, Size("").Options())
	assert.Equal(t, []string{"vertical", "horizontal", "none"}, Resize("").Options())
	assert.Equal(t, []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "span", "div"}, TextTag("").Options())
	assert.Len(t, ButtonType("").Options(), 16)
	assert.Equal(t, "main", ButtonType("").Options()[0])
}
