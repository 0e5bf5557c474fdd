package render

import (
	"fmt"
	"io"

	"github.com/orangehrm/oxd/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string

	// Scripts contains inline scripts appended to the end of the body.
	Scripts []string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}

	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.Title(vdom.Text(page.Title)),
		vdom.Range(page.StyleSheets, func(href string, _ int) *vdom.VNode {
			return vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href))
		}),
		vdom.Range(page.Styles, func(css string, _ int) *vdom.VNode {
			return vdom.Style(vdom.Raw(css))
		}),
	)
	if err := r.renderNode(w, head, 0, r.config.Pretty); err != nil {
		return err
	}

	body := vdom.Body(
		page.Body,
		vdom.Range(page.Scripts, func(js string, _ int) *vdom.VNode {
			return vdom.Script(vdom.Raw(js))
		}),
	)
	if err := r.renderNode(w, body, 0, r.config.Pretty); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</html>\n")
	return err
}
