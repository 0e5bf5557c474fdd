package story

import (
	"strings"

	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/ui"
)

const (
	buttonTitle   = "Example/Button"
	textTitle     = "Example/Text"
	textareaTitle = "Example/Textarea"

	// SampleText is the copy used by the text stories.
	SampleText = "Nunito is a well balanced sans serif typeface"
)

func selectOf(name string, options ...string) []ui.Control {
	return []ui.Control{{Name: name, Kind: ui.ControlSelect, Options: options}}
}

// Default returns the built-in stories.
func Default() *Book {
	b := NewBook()
	for _, s := range defaultStories() {
		if err := b.Add(s); err != nil {
			panic("story: default book: " + err.Error())
		}
	}
	return b
}

func defaultStories() []Story {
	button := func(name string, args ui.Args, controls ...ui.Control) Story {
		return Story{
			Title:     buttonTitle,
			Component: "button",
			Name:      name,
			Args:      ui.Args{"label": "Button"}.Merge(args),
			Controls:  controls,
		}
	}
	text := func(name string, args ui.Args) Story {
		return Story{
			Title:     textTitle,
			Component: "text",
			Name:      name,
			Args:      ui.Args{"content": SampleText}.Merge(args),
		}
	}
	textarea := func(name string, args ui.Args) Story {
		return Story{
			Title:     textareaTitle,
			Component: "textarea",
			Name:      name,
			Args:      ui.Args{"value": "Textarea"}.Merge(args),
		}
	}

	stories := []Story{
		button("Main", ui.Args{"type": string(ui.TypeMain)}),
		button("Secondary", ui.Args{"type": string(ui.TypeSecondary)}),
		button("Ghost", ui.Args{"type": string(ui.TypeGhost)}),
		button("GhostFeedback", ui.Args{"type": string(ui.TypeGhostDanger)},
			selectOf("type", "ghost-info", "ghost-danger", "ghost-warn", "ghost-success")...),
		button("Feedback", ui.Args{"type": string(ui.TypeDanger)},
			selectOf("type", "info", "danger", "warn", "success")...),
		button("Label", ui.Args{"type": string(ui.TypeLabel)}),
		button("LabelFeedback", ui.Args{"type": string(ui.TypeLabelDanger)},
			selectOf("type", "label-info", "label-danger", "label-warn", "label-success")...),
		button("Large", ui.Args{"size": string(ui.SizeLarge)}),
		button("Small", ui.Args{"size": string(ui.SizeSmall)}),
		button("CustomColor", ui.Args{"style": style.Of("backgroundColor", "palegreen")}),
		button("Disabled", ui.Args{"disabled": true}),

		textarea("Default", ui.Args{"style": style.Map{}}),
		textarea("Colored", ui.Args{"style": style.Of("backgroundColor", "aliceblue")}),
		textarea("Error", ui.Args{"hasError": true}),

		text("Default", nil),
	}
	for _, tag := range ui.TextTags() {
		if tag.IsHeading() {
			stories = append(stories, text(strings.ToUpper(string(tag)), ui.Args{"tag": string(tag)}))
		}
	}
	stories = append(stories, text("CustomColor", ui.Args{"tag": string(ui.TagH1), "style": style.Of("backgroundColor", "brown")}))
	return stories
}
