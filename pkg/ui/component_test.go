package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/vdom"
)

const dummyText = "Nunito is a well balanced sans serif typeface"

func TestButtonRender(t *testing.T) {
	tests := []struct {
		name  string
		props ButtonProps
		want  string
	}{
		{"default", ButtonProps{Label: "Button"},
			`<button class="oxd-button" type="button">Button</button>`},
		{"small", ButtonProps{Label: "Button", Size: SizeSmall},
			`<button class="oxd-button oxd-button--small" type="button">Button</button>`},
		{"large", ButtonProps{Label: "Button", Size: SizeLarge},
			`<button class="oxd-button oxd-button--large" type="button">Button</button>`},
		{"medium", ButtonProps{Label: "Button", Size: SizeMedium},
			`<button class="oxd-button" type="button">Button</button>`},
		{"main", ButtonProps{Label: "Button", Type: TypeMain},
			`<button class="oxd-button oxd-button--main" type="button">Button</button>`},
		{"label-success", ButtonProps{Label: "Button", Type: TypeLabelSuccess},
			`<button class="oxd-button oxd-button--label-success" type="button">Button</button>`},
		{"custom color", ButtonProps{Label: "Button", Style: style.Of("backgroundColor", "palegreen")},
			`<button class="oxd-button" style="background-color: palegreen;" type="button">Button</button>`},
		{"disabled", ButtonProps{Label: "Button", Disabled: true},
			`<button class="oxd-button oxd-button--disabled" disabled type="button">Button</button>`},
		{"escaped label", ButtonProps{Label: "Save & <close>"},
			`<button class="oxd-button" type="button">Save &amp; &lt;close&gt;</button>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewButton(tt.props)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render.RenderString(b.Render()))
		})
	}
}

func TestTextRender(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		txt, err := NewText(TextProps{Content: dummyText})
		require.NoError(t, err)
		assert.Equal(t, `<p class="oxd-text oxd-text--default">`+dummyText+`</p>`, render.RenderString(txt.Render()))
	})

	t.Run("h1 with style", func(t *testing.T) {
		txt, err := NewText(TextProps{Tag: TagH1, Content: dummyText, Style: style.Of("backgroundColor", "brown")})
		require.NoError(t, err)
		assert.Equal(t,
			`<h1 class="oxd-text oxd-text--h1" style="background-color: brown;">`+dummyText+`</h1>`,
			render.RenderString(txt.Render()))
	})

	for _, tag := range TextTags() {
		if !tag.IsHeading() {
			continue
		}
		t.Run(string(tag), func(t *testing.T) {
			txt, err := NewText(TextProps{Tag: tag, Content: dummyText})
			require.NoError(t, err)
			want := "<" + string(tag) + ` class="oxd-text oxd-text--` + string(tag) + `">` + dummyText + "</" + string(tag) + ">"
			assert.Equal(t, want, render.RenderString(txt.Render()))
		})
	}

	t.Run("children", func(t *testing.T) {
		txt, err := NewText(TextProps{
			Tag:      TagSpan,
			Content:  "Hello ",
			Children: []*vdom.VNode{vdom.Strong(vdom.Text("world"))},
		})
		require.NoError(t, err)
		assert.Equal(t,
			`<span class="oxd-text oxd-text--default">Hello <strong>world</strong></span>`,
			render.RenderString(txt.Render()))
	})
}

func TestTextareaRender(t *testing.T) {
	tests := []struct {
		name  string
		props TextareaProps
		want  string
	}{
		{"default", TextareaProps{Value: "Textarea"},
			`<textarea class="oxd-textarea oxd-textarea--resize-vertical">Textarea</textarea>`},
		{"colored", TextareaProps{Value: "Textarea", Style: style.Of("backgroundColor", "aliceblue")},
			`<textarea class="oxd-textarea oxd-textarea--resize-vertical" style="background-color: aliceblue;">Textarea</textarea>`},
		{"error", TextareaProps{Value: "Textarea", HasError: true},
			`<textarea class="oxd-textarea oxd-textarea--resize-vertical oxd-textarea--error">Textarea</textarea>`},
		{"attributes", TextareaProps{Resize: ResizeNone, Disabled: true, Readonly: true, Placeholder: "Type here", Rows: 4},
			`<textarea class="oxd-textarea oxd-textarea--resize-none" disabled placeholder="Type here" readonly rows="4"></textarea>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta, err := NewTextarea(tt.props)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render.RenderString(ta.Render()))
		})
	}
}

func TestConstructorsRejectUnknownValues(t *testing.T) {
	_, err := NewButton(ButtonProps{Label: "Button", Size: "huge"})
	var pe *PropError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, ErrInvalidProp)
	assert.Equal(t, "button", pe.Component)
	assert.Equal(t, "size", pe.Prop)
	assert.Equal(t, "huge", pe.Value)
	assert.Equal(t, []string{"small", "medium", "large"}, pe.Allowed)
	assert.EqualError(t, err, `button: size "huge" is not one of [small, medium, large]`)

	_, err = NewButton(ButtonProps{Label: "Button", Type: "ghost-pink"})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "type", pe.Prop)

	_, err = NewText(TextProps{Tag: "h7", Content: "x"})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "text", pe.Component)
	assert.Equal(t, "tag", pe.Prop)

	_, err = NewTextarea(TextareaProps{Resize: "both"})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "resize", pe.Prop)

	_, err = NewTextarea(TextareaProps{Rows: -1})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "rows", pe.Prop)
	assert.ErrorIs(t, err, ErrInvalidProp)
	assert.EqualError(t, err, `textarea: rows "-1" is invalid`)
}

func TestConstructorsRequireContent(t *testing.T) {
	_, err := NewButton(ButtonProps{})
	require.True(t, errors.Is(err, ErrMissingContent))
	assert.EqualError(t, err, "button: label is required")

	_, err = NewText(TextProps{Tag: TagH2})
	require.ErrorIs(t, err, ErrMissingContent)
	assert.EqualError(t, err, "text: content is required")

	_, err = NewText(TextProps{Children: []*vdom.VNode{vdom.Text("x")}})
	assert.NoError(t, err)

	// Textarea has no required content.
	_, err = NewTextarea(TextareaProps{})
	assert.NoError(t, err)
}

func TestComponentsAreVDOMComponents(t *testing.T) {
	b, err := NewButton(ButtonProps{Label: "Go", Type: TypeMain})
	require.NoError(t, err)

	page := vdom.Div(vdom.Class("wrap"), b)
	assert.Equal(t,
		`<div class="wrap"><button class="oxd-button oxd-button--main" type="button">Go</button></div>`,
		render.RenderString(page))
	assert.Equal(t, TypeMain, b.Props().Type)
}
