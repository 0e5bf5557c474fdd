package snapshot

import (
	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/ui"
	"github.com/orangehrm/oxd/pkg/vdom"
)

// SampleText is the copy used by the text cases.
const SampleText = "Nunito is a well balanced sans serif typeface"

// DefaultSuites returns the baseline cases of every component.
func DefaultSuites() []Suite {
	return []Suite{ButtonSuite(), TextSuite(), TextareaSuite()}
}

// ButtonSuite covers every size, every type and a custom style.
func ButtonSuite() Suite {
	s := Suite{Name: "button"}
	add := func(name string, p ui.ButtonProps) {
		p.Label = "Button"
		s.Cases = append(s.Cases, Case{Name: "Button " + name, Node: node(ui.NewButton(p))})
	}

	add("default", ui.ButtonProps{})
	add("small", ui.ButtonProps{Size: ui.SizeSmall})
	add("large", ui.ButtonProps{Size: ui.SizeLarge})
	add("medium", ui.ButtonProps{Size: ui.SizeMedium})
	for _, t := range []ui.ButtonType{
		ui.TypeMain, ui.TypeSecondary,
		ui.TypeGhost, ui.TypeGhostInfo, ui.TypeGhostDanger, ui.TypeGhostWarn, ui.TypeGhostSuccess,
		ui.TypeLabel, ui.TypeLabelInfo, ui.TypeLabelDanger, ui.TypeLabelWarn, ui.TypeLabelSuccess,
	} {
		add(string(t), ui.ButtonProps{Type: t})
	}
	add("custom color", ui.ButtonProps{Style: style.Of("backgroundColor", "palegreen")})
	return s
}

// TextSuite covers the default paragraph, a styled heading and every
// heading level.
func TextSuite() Suite {
	s := Suite{Name: "text"}
	add := func(name string, p ui.TextProps) {
		p.Content = SampleText
		s.Cases = append(s.Cases, Case{Name: "Text " + name, Node: node(ui.NewText(p))})
	}

	add("default", ui.TextProps{})
	add("h1 with style", ui.TextProps{Tag: ui.TagH1, Style: style.Of("backgroundColor", "brown")})
	for _, tag := range ui.TextTags() {
		if tag.IsHeading() {
			add(string(tag), ui.TextProps{Tag: tag})
		}
	}
	return s
}

// TextareaSuite covers the default, colored and error textareas.
func TextareaSuite() Suite {
	s := Suite{Name: "textarea"}
	add := func(name string, p ui.TextareaProps) {
		p.Value = "Textarea"
		s.Cases = append(s.Cases, Case{Name: "Textarea " + name, Node: node(ui.NewTextarea(p))})
	}

	add("default", ui.TextareaProps{})
	add("colored", ui.TextareaProps{Style: style.Of("backgroundColor", "aliceblue")})
	add("error", ui.TextareaProps{HasError: true})
	for _, r := range ui.Resizes() {
		add("resize "+string(r), ui.TextareaProps{Resize: r})
	}
	return s
}

// node renders a fixture component. Fixture props are constants, so a
// construction error is a programming error.
func node(c vdom.Component, err error) *vdom.VNode {
	if err != nil {
		panic(err)
	}
	return c.Render()
}
