package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/story"
)

// pane identifies which side has keyboard focus.
type pane int

const (
	paneList pane = iota
	paneDetail
)

// item adapts a story to the list.
type item struct {
	story story.Story
}

func (i item) Title() string       { return i.story.Name }
func (i item) Description() string { return i.story.Title + " · " + i.story.Component }
func (i item) FilterValue() string { return i.story.Title + " " + i.story.Name }

// Model is the story browser.
type Model struct {
	list     list.Model
	detail   viewport.Model
	renderer *render.Renderer

	focus    pane
	selected string
	width    int
	height   int
}

// NewModel creates a browser over the stories of book.
func NewModel(book *story.Book) Model {
	stories := book.Stories()
	items := make([]list.Item, len(stories))
	for i, s := range stories {
		items[i] = item{story: s}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "OXD stories"
	l.SetShowHelp(false)

	m := Model{
		list:     l,
		detail:   viewport.New(0, 0),
		renderer: render.NewRenderer(render.RendererConfig{Pretty: true}),
	}
	m.resize(80, 24)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted story.
func (m Model) Selected() (story.Story, bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return story.Story{}, false
	}
	return it.story, true
}

// Detail returns the detail pane's content.
func (m Model) Detail() string {
	st, ok := m.Selected()
	if !ok {
		return helpStyle.Render("No story selected.")
	}
	return m.describe(st)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	listWidth := width * 2 / 5
	if listWidth < 24 {
		listWidth = 24
	}
	paneHeight := height - 3
	if paneHeight < 3 {
		paneHeight = 3
	}
	m.list.SetSize(listWidth, paneHeight)
	m.detail.Width = max(width-listWidth-4, 10)
	m.detail.Height = paneHeight
	m.refresh(true)
}

// refresh rebuilds the detail pane when the selection changed or force
// is set.
func (m *Model) refresh(force bool) {
	st, ok := m.Selected()
	if !ok {
		m.selected = ""
		m.detail.SetContent(m.Detail())
		return
	}
	if !force && st.ID == m.selected {
		return
	}
	m.selected = st.ID
	m.detail.SetContent(m.describe(st))
	m.detail.GotoTop()
}

func (m Model) describe(st story.Story) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(st.Title + " / " + st.Name))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(st.ID))
	b.WriteString("\n\n")

	built, err := st.Build(nil)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		return b.String()
	}
	res := built.Resolution
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("tag", res.Tag)
	row("classes", classStyle.Render(res.Classes.String()))
	row("style", res.Style.CSS())

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Args"))
	b.WriteString("\n")
	for _, k := range st.Args.Keys() {
		v, err := st.Args.String(k)
		if err != nil {
			if sm, serr := st.Args.Style(k); serr == nil {
				v = "{" + sm.CSS() + "}"
			}
		}
		row(k, v)
	}

	markup, err := m.renderer.RenderToString(built.Component.Render())
	if err != nil {
		markup = fmt.Sprintf("render failed: %v", err)
	}
	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Markup"))
	b.WriteString("\n")
	b.WriteString(strings.TrimSuffix(markup, "\n"))
	return b.String()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			if m.focus == paneList {
				m.focus = paneDetail
			} else {
				m.focus = paneList
			}
			return m, nil
		case "enter":
			m.focus = paneDetail
			return m, nil
		case "esc":
			if m.focus == paneDetail {
				m.focus = paneList
				return m, nil
			}
		}
		if m.focus == paneDetail {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refresh(false)
	return m, cmd
}
