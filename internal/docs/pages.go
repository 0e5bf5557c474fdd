package docs

import (
	"strconv"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/story"
	"github.com/orangehrm/oxd/pkg/ui"
	. "github.com/orangehrm/oxd/pkg/vdom"
)

// formMarker is submitted with the controls form so that an unchecked
// checkbox can be told apart from an untouched one.
const formMarker = "_form"

// site holds what every page needs.
type site struct {
	title  string
	groups []story.Group
	live   bool
	static bool
}

func storyHref(id string) string  { return "/stories/" + id }
func iframeHref(id string) string { return "/iframe/" + id }

func (st site) page(title string, body *VNode, scripts ...string) render.PageData {
	return render.PageData{
		Title:   title,
		Body:    body,
		Styles:  []string{docsCSS, componentCSS},
		Scripts: scripts,
	}
}

func (st site) sidebar(current string) *VNode {
	return Nav(Class("oxd-docs-nav"),
		A(Class("oxd-docs-brand"), Href("/"), st.title),
		Range(st.groups, func(g story.Group, _ int) *VNode {
			return Section(
				H2(g.Title),
				Ul(Range(g.Stories, func(s *story.Story, _ int) *VNode {
					return Li(
						A(Href(storyHref(s.ID)), ClassIf(s.ID == current, "active"),
							AttrIf(s.ID == current, AriaCurrent("page")),
							s.Name),
					)
				})),
			)
		}),
	)
}

func (st site) indexPage(previews map[string]Rendered) render.PageData {
	body := Div(Class("oxd-docs"),
		st.sidebar(""),
		Main(Class("oxd-docs-main"),
			H1(st.title),
			Range(st.groups, func(g story.Group, _ int) *VNode {
				return Section(Class("oxd-docs-group"),
					H2(g.Title),
					Div(Class("oxd-docs-grid"),
						Range(g.Stories, func(s *story.Story, _ int) *VNode {
							return Div(Class("oxd-docs-card"), Data("story", s.ID),
								Div(Class("oxd-docs-preview"), Raw(previews[s.ID].HTML)),
								A(Href(storyHref(s.ID)), s.Name),
							)
						}),
					),
				)
			}),
		),
	)
	return st.page(st.title, body)
}

func (st site) storyPage(s story.Story, args ui.Args, res Rendered, renderErr error) render.PageData {
	var scripts []string
	if st.live {
		scripts = append(scripts, liveScript)
	}
	body := Div(Class("oxd-docs"),
		st.sidebar(s.ID),
		Main(Class("oxd-docs-main"), Data("story", s.ID),
			P(Class("oxd-docs-crumb"), s.Title),
			H1(s.Name),
			Div(ID("oxd-error"), Class("oxd-docs-error"), errorPanel(renderErr)),
			Div(ID("oxd-canvas"), Class("oxd-docs-canvas"), Raw(res.HTML)),
			A(Class("oxd-docs-isolate"), Href(iframeHref(s.ID)), Target("_blank"), "Open in isolation"),
			resolutionPanel(res),
			If(!st.static, controlsForm(s, args)),
			If(st.static, argsTable(args)),
		),
	)
	return st.page(s.Name+" · "+s.Title, body, scripts...)
}

func (st site) iframePage(s story.Story, res Rendered) render.PageData {
	return render.PageData{
		Title:  s.Name,
		Body:   Div(ID("oxd-canvas"), Class("oxd-docs-isolated"), Raw(res.HTML)),
		Styles: []string{componentCSS},
	}
}

func errorPanel(err error) *VNode {
	if err == nil {
		return nil
	}
	oe := errors.FromError(err, errors.CodeInvalidProp)
	return Fragment(
		Strong(oe.Code+": "+oe.Message),
		If(oe.Detail != "", P(oe.Detail)),
	)
}

func resolutionPanel(res Rendered) *VNode {
	return Section(Class("oxd-docs-resolution"),
		H2("Resolution"),
		Dl(
			Dt("Tag"), Dd(Code(ID("oxd-tag"), res.Tag)),
			Dt("Classes"), Dd(Code(ID("oxd-classes"), res.Classes.String())),
			Dt("Style"), Dd(Code(ID("oxd-style"), res.Style.CSS())),
		),
		H2("Markup"),
		Pre(Code(ID("oxd-markup"), res.HTML)),
	)
}

func controlsForm(s story.Story, args ui.Args) *VNode {
	return Form(ID("oxd-controls"), Class("oxd-docs-controls"), Method("get"), Action(storyHref(s.ID)),
		H2("Controls"),
		Input(Type("hidden"), Name(formMarker), Value("1")),
		Range(s.EffectiveControls(), func(c ui.Control, _ int) *VNode {
			return Div(Class("oxd-docs-control"),
				Label(For("ctl-"+c.Name), c.Name),
				controlInput(c, args),
			)
		}),
		Button(Type("submit"), "Apply"),
		A(Href(storyHref(s.ID)), "Reset"),
	)
}

func controlInput(c ui.Control, args ui.Args) *VNode {
	id := ID("ctl-" + c.Name)
	switch c.Kind {
	case ui.ControlSelect:
		cur, _ := args.String(c.Name)
		return Select(id, Name(c.Name),
			Option(Value(""), AttrIf(cur == "", Selected()), "(default)"),
			Range(c.Options, func(opt string, _ int) *VNode {
				return Option(Value(opt), AttrIf(opt == cur, Selected()), opt)
			}),
		)
	case ui.ControlBoolean:
		on, _ := args.Bool(c.Name)
		return Input(id, Type("checkbox"), Name(c.Name), Value("true"), AttrIf(on, Checked()))
	case ui.ControlObject:
		m, _ := args.Style(c.Name)
		return Input(id, Type("text"), Name(c.Name), Value(m.CSS()), Placeholder("background-color: palegreen"))
	case ui.ControlNumber:
		n, _ := args.Int(c.Name)
		v := ""
		if n != 0 {
			v = strconv.Itoa(n)
		}
		return Input(id, Type("number"), Name(c.Name), Value(v))
	default:
		cur, _ := args.String(c.Name)
		return Input(id, Type("text"), Name(c.Name), Value(cur))
	}
}

func argsTable(args ui.Args) *VNode {
	return Section(Class("oxd-docs-args"),
		H2("Args"),
		Table(Tbody(Range(args.Keys(), func(k string, _ int) *VNode {
			v, _ := args.String(k)
			if m, err := args.Style(k); err == nil && !m.IsEmpty() {
				v = m.CSS()
			}
			return Tr(Th(k), Td(Code(v)))
		}))),
	)
}
