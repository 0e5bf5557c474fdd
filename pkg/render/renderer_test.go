package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if html != "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;" {
		t.Errorf("unexpected escaping %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	node := vdom.Button(
		vdom.Type("button"),
		vdom.InlineStyle(style.Of("backgroundColor", "palegreen")),
		vdom.Class("oxd-button"),
		vdom.Disabled(),
		vdom.Attr{Key: "_story", Value: "ignored"},
		vdom.Text("Button"),
	)

	got := RenderString(node)
	want := `<button class="oxd-button" disabled style="background-color: palegreen;" type="button">Button</button>`
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"true", vdom.Textarea(vdom.Readonly()), `<textarea readonly></textarea>`},
		{"false", vdom.Textarea(vdom.Attr{Key: "readonly", Value: false}), `<textarea></textarea>`},
		{"non boolean attr", vdom.Div(vdom.AriaInvalid(true)), `<div aria-invalid="true"></div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderString(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderVoidElements(t *testing.T) {
	got := RenderString(vdom.Input(vdom.Type("text"), vdom.Name("email")))
	if got != `<input name="email" type="text">` {
		t.Errorf("got %q", got)
	}
}

func TestRenderAttrEscaping(t *testing.T) {
	got := RenderString(vdom.Div(vdom.TitleAttr("a \"quoted\"\nline")))
	if got != `<div title="a &quot;quoted&quot;&#10;line"></div>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderRowsAndEmptyValues(t *testing.T) {
	got := RenderString(vdom.Textarea(vdom.Rows(4), vdom.Placeholder(""), vdom.Text("v")))
	if got != `<textarea rows="4">v</textarea>` {
		t.Errorf("got %q", got)
	}

	got = RenderString(vdom.Option(vdom.Value(""), vdom.Text("(default)")))
	if got != `<option value="">(default)</option>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderComponentAndFragment(t *testing.T) {
	comp := vdom.Func(func() *vdom.VNode { return vdom.Span(vdom.Text("c")) })
	node := vdom.Fragment(vdom.Text("a"), comp, vdom.Raw("<b>raw</b>"))

	got := RenderString(node)
	if got != `a<span>c</span><b>raw</b>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.Class("wrapper"),
		vdom.Button(vdom.Class("oxd-button"), vdom.Text("Button")),
		vdom.Text("caption"),
		vdom.P(vdom.Strong(vdom.Text("bold")), vdom.Text(" tail")),
		vdom.Input(vdom.Type("text")),
	)

	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="wrapper">
  <button class="oxd-button">Button</button>
  caption
  <p>
    <strong>bold</strong>
     tail
  </p>
  <input type="text">
</div>
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPrettyTextOnly(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true, Indent: "\t"})
	got, _ := renderer.RenderToString(vdom.H1(vdom.Class("oxd-text"), vdom.Text("Title")))
	if got != "<h1 class=\"oxd-text\">Title</h1>\n" {
		t.Errorf("got %q", got)
	}
	if renderer.Config().Indent != "\t" {
		t.Errorf("indent not kept")
	}
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Title:       "Docs & Stories",
		Body:        vdom.Main(vdom.Text("hi")),
		StyleSheets: []string{"/static/oxd.css"},
		Styles:      []string{".a{color:red}"},
		Scripts:     []string{"console.log(1)"},
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>\n<html lang=\"en\">",
		"<title>Docs &amp; Stories</title>",
		`<link href="/static/oxd.css" rel="stylesheet">`,
		"<style>.a{color:red}</style>",
		"<body><main>hi</main><script>console.log(1)</script></body>",
		"</html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q in:\n%s", want, html)
		}
	}
}

func TestEscapeHTMLExported(t *testing.T) {
	if EscapeHTML(`a&b`) != "a&amp;b" {
		t.Error("EscapeHTML mismatch")
	}
}
