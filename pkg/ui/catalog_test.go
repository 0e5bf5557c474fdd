package ui

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/style"
)

func TestCatalogDefinitions(t *testing.T) {
	assert.Equal(t, []string{"button", "text", "textarea"}, ComponentNames())

	button, err := Lookup("button")
	require.NoError(t, err)
	typ, ok := button.Control("type")
	require.True(t, ok)
	assert.Equal(t, ControlSelect, typ.Kind)
	assert.Equal(t, ButtonType("").Options(), typ.Options)

	disabled, ok := button.Control("disabled")
	require.True(t, ok)
	assert.Equal(t, ControlBoolean, disabled.Kind)

	textarea, err := Lookup("textarea")
	require.NoError(t, err)
	resize, ok := textarea.Control("resize")
	require.True(t, ok)
	assert.Equal(t, []string{"vertical", "horizontal", "none"}, resize.Options)

	_, ok = textarea.Control("size")
	assert.False(t, ok)

	_, err = Lookup("slider")
	assert.EqualError(t, err, `unknown component "slider"`)
}

func TestDefinitionBuild(t *testing.T) {
	def, err := Lookup("button")
	require.NoError(t, err)

	built, err := def.Build(Args{
		"label":    "Button",
		"type":     "ghost-info",
		"size":     "small",
		"disabled": "on",
		"style":    map[string]any{"backgroundColor": "palegreen"},
	})
	require.NoError(t, err)
	assert.Equal(t, ClassList{
		"oxd-button", "oxd-button--small", "oxd-button--ghost-info", "oxd-button--disabled",
	}, built.Resolution.Classes)

	html := render.RenderString(built.Component.Render())
	assert.Equal(t,
		`<button class="oxd-button oxd-button--small oxd-button--ghost-info oxd-button--disabled" disabled style="background-color: palegreen;" type="button">Button</button>`,
		html)

	_, err = def.Build(Args{"label": "Button", "type": "rainbow"})
	assert.ErrorIs(t, err, ErrInvalidProp)

	_, err = def.Build(Args{"label": "Button", "disabled": "maybe"})
	var pe *PropError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "disabled", pe.Prop)
}

func TestDefinitionBuildTextarea(t *testing.T) {
	def, err := Lookup("textarea")
	require.NoError(t, err)

	built, err := def.Build(Args{"value": "Textarea", "hasError": true, "rows": float64(3), "resize": "horizontal"})
	require.NoError(t, err)
	assert.Equal(t,
		`<textarea class="oxd-textarea oxd-textarea--resize-horizontal oxd-textarea--error" rows="3">Textarea</textarea>`,
		render.RenderString(built.Component.Render()))
}

func TestArgsFromQuery(t *testing.T) {
	q := url.Values{
		"tag":     {"h2"},
		"content": {"Hello"},
		"style":   {"color: red; backgroundColor: brown"},
	}
	p, err := TextPropsFromArgs(ArgsFromQuery(q))
	require.NoError(t, err)
	assert.Equal(t, TagH2, p.Tag)
	assert.Equal(t, "Hello", p.Content)
	assert.Equal(t, []string{"color", "backgroundColor"}, p.Style.Keys())
}

func TestArgsJSONKeepsStyleOrder(t *testing.T) {
	var a Args
	require.NoError(t, json.Unmarshal([]byte(`{"label":"Button","disabled":true,"style":{"zIndex":"1","color":"red"},"extra":null}`), &a))

	assert.Equal(t, []string{"disabled", "label", "style"}, a.Keys())
	s, err := a.Style("style")
	require.NoError(t, err)
	assert.Equal(t, []string{"zIndex", "color"}, s.Keys())

	d, err := a.Bool("disabled")
	require.NoError(t, err)
	assert.True(t, d)
}

func TestArgsStyleFromGoMaps(t *testing.T) {
	a := Args{
		"ordered": style.Of("zIndex", "1", "color", "red"),
		"strings": map[string]string{"zIndex": "1", "color": "red"},
		"any":     map[string]any{"zIndex": "1", "color": "red", "margin": nil},
	}

	s, err := a.Style("ordered")
	require.NoError(t, err)
	assert.Equal(t, []string{"zIndex", "color"}, s.Keys())

	for _, key := range []string{"strings", "any"} {
		s, err := a.Style(key)
		require.NoError(t, err)
		assert.Equal(t, []string{"color", "zIndex"}, s.Keys(), key)
	}
}

func TestArgsYAML(t *testing.T) {
	src := `
label: Button
rows: 4
hasError: false
style:
  width: 100%
  backgroundColor: aliceblue
`
	var a Args
	require.NoError(t, yaml.Unmarshal([]byte(src), &a))

	n, err := a.Int("rows")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	s, err := a.Style("style")
	require.NoError(t, err)
	assert.Equal(t, []string{"width", "backgroundColor"}, s.Keys())

	var bad Args
	assert.Error(t, yaml.Unmarshal([]byte("- a\n- b\n"), &bad))
}

func TestArgsConversions(t *testing.T) {
	a := Args{"n": "12", "f": 2.5, "b": "off", "s": true, "j": `{"color":"red"}`}

	n, err := a.Int("n")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = a.Int("f")
	assert.Error(t, err)

	b, err := a.Bool("b")
	require.NoError(t, err)
	assert.False(t, b)

	s, err := a.String("s")
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	st, err := a.Style("j")
	require.NoError(t, err)
	v, _ := st.Get("color")
	assert.Equal(t, "red", v)

	missing, err := a.Style("nope")
	require.NoError(t, err)
	assert.True(t, missing.IsEmpty())

	merged := a.Merge(Args{"n": 1})
	assert.Equal(t, 1, merged["n"])
	assert.Equal(t, "12", a["n"])
}
