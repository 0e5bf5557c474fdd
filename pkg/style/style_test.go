package style

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSetKeepsPosition(t *testing.T) {
	m := Of("color", "red", "margin", "0")
	m.Set("color", "blue")
	m.Set("padding", "4px")

	assert.Equal(t, []string{"color", "margin", "padding"}, m.Keys())
	v, ok := m.Get("color")
	assert.True(t, ok)
	assert.Equal(t, "blue", v)
}

func TestDeleteDoesNotMutateShared(t *testing.T) {
	original := Of("a", "1", "b", "2", "c", "3")
	shared := original
	shared.Delete("a")

	assert.Equal(t, 3, original.Len())
	assert.Equal(t, []string{"a", "b", "c"}, original.Keys())
	assert.Equal(t, []string{"b", "c"}, shared.Keys())
}

func TestCSS(t *testing.T) {
	tests := []struct {
		name string
		in   Map
		want string
	}{
		{"empty", Map{}, ""},
		{"camel", Of("backgroundColor", "palegreen"), "background-color: palegreen;"},
		{"multiple", Of("color", "red", "fontSize", "12px"), "color: red; font-size: 12px;"},
		{"custom property", Of("--oxd-accent", "#f00"), "--oxd-accent: #f00;"},
		{"already kebab", Of("border-top", "1px solid"), "border-top: 1px solid;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.CSS())
		})
	}
}

func TestPropertyName(t *testing.T) {
	assert.Equal(t, "background-color", PropertyName("backgroundColor"))
	assert.Equal(t, "webkit-line-clamp", PropertyName("webkitLineClamp"))
	assert.Equal(t, "-webkit-box", PropertyName("-webkitBox"))
	assert.Equal(t, "color", PropertyName("Color"))
	assert.Equal(t, "--myVar", PropertyName("--myVar"))
}

func TestParse(t *testing.T) {
	m, err := Parse(`background: url("a;b.png"); color : red ;; font-family: 'x;y'`)
	require.NoError(t, err)

	assert.Equal(t, []string{"background", "color", "font-family"}, m.Keys())
	v, _ := m.Get("background")
	assert.Equal(t, `url("a;b.png")`, v)
	v, _ = m.Get("font-family")
	assert.Equal(t, `'x;y'`, v)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse("color red")
	assert.Error(t, err)

	_, err = Parse(": red")
	assert.Error(t, err)
}

func TestJSONPreservesOrder(t *testing.T) {
	var m Map
	require.NoError(t, json.Unmarshal([]byte(`{"zIndex": 2, "color": "red", "gone": null, "opacity": 0.5}`), &m))

	assert.Equal(t, []string{"zIndex", "color", "opacity"}, m.Keys())
	v, _ := m.Get("zIndex")
	assert.Equal(t, "2", v)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zIndex":"2","color":"red","opacity":"0.5"}`, string(out))
	assert.Equal(t, `{"zIndex":"2","color":"red","opacity":"0.5"}`, string(out))
}

func TestJSONRejectsNested(t *testing.T) {
	var m Map
	assert.Error(t, json.Unmarshal([]byte(`{"color": {"r": 1}}`), &m))
	assert.Error(t, json.Unmarshal([]byte(`["color"]`), &m))
}

func TestYAMLPreservesOrder(t *testing.T) {
	var doc struct {
		Style Map `yaml:"style"`
	}
	src := "style:\n  width: 10px\n  backgroundColor: aliceblue\n  height: 2em\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	assert.Equal(t, []string{"width", "backgroundColor", "height"}, doc.Style.Keys())

	out, err := yaml.Marshal(doc.Style)
	require.NoError(t, err)
	assert.Equal(t, "width: 10px\nbackgroundColor: aliceblue\nheight: 2em\n", string(out))
}

func TestYAMLAcceptsCSSText(t *testing.T) {
	var doc struct {
		Style Map `yaml:"style"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`style: "color: red; margin: 0"`), &doc))
	assert.Equal(t, "color: red; margin: 0;", doc.Style.CSS())
}

func TestEqualAndClone(t *testing.T) {
	a := Of("color", "red", "margin", "0")
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.Set("color", "blue")
	assert.False(t, a.Equal(b))
	assert.False(t, Of("a", "1", "b", "2").Equal(Of("b", "2", "a", "1")))
	assert.True(t, Map{}.Equal(Of()))
}

func TestFromMapSorted(t *testing.T) {
	m := FromMap(map[string]string{"z": "1", "a": "2"})
	assert.Equal(t, []string{"a", "z"}, m.Keys())
}
