package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/orangehrm/oxd/internal/docs"
	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/story"
	"github.com/orangehrm/oxd/pkg/ui"
)

// propFlags maps flag names to the prop they set.
var propFlags = map[string]string{
	"label":       "label",
	"content":     "content",
	"value":       "value",
	"size":        "size",
	"type":        "type",
	"tag":         "tag",
	"resize":      "resize",
	"style":       "style",
	"disabled":    "disabled",
	"has-error":   "hasError",
	"readonly":    "readonly",
	"placeholder": "placeholder",
	"rows":        "rows",
}

func renderCmd(a *app) *cobra.Command {
	var (
		pretty  bool
		asJSON  bool
		textual struct {
			label, content, value, size, typ, tag, resize, style, placeholder string
		}
		disabled, hasError, readonly bool
		rows                         int
	)

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Render a component from flags",
		Long: `Render a Button, Text or Textarea and print its markup.

Only the flags given are passed as props, so omitted props take their
defaults. Flags that the component does not have are rejected.

Examples:
  oxd render button --label Save --type main --size large
  oxd render text --tag h2 --content "Hello"
  oxd render textarea --has-error --style "backgroundColor: aliceblue"
  oxd render button --label Save --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := argsFromFlags(args[0], cmd.Flags())
			if err != nil {
				return err
			}
			return runRender(cmd, a, args[0], props, pretty, asJSON)
		},
	}

	f := cmd.Flags()
	f.StringVar(&textual.label, "label", "", "Button label")
	f.StringVar(&textual.content, "content", "", "Text content")
	f.StringVar(&textual.value, "value", "", "Textarea value")
	f.StringVar(&textual.size, "size", "", "Button size ("+strings.Join(ui.Size("").Options(), ", ")+")")
	f.StringVar(&textual.typ, "type", "", "Button type")
	f.StringVar(&textual.tag, "tag", "", "Text tag ("+strings.Join(ui.TextTag("").Options(), ", ")+")")
	f.StringVar(&textual.resize, "resize", "", "Textarea resize ("+strings.Join(ui.Resize("").Options(), ", ")+")")
	f.StringVar(&textual.style, "style", "", `Inline style as CSS ("color: red") or JSON`)
	f.StringVar(&textual.placeholder, "placeholder", "", "Textarea placeholder")
	f.BoolVar(&disabled, "disabled", false, "Disable the control")
	f.BoolVar(&hasError, "has-error", false, "Mark the textarea as invalid")
	f.BoolVar(&readonly, "readonly", false, "Make the textarea read-only")
	f.IntVar(&rows, "rows", 0, "Textarea rows")
	f.BoolVar(&pretty, "pretty", false, "Indent the markup")
	f.BoolVar(&asJSON, "json", false, "Print the resolution as JSON")

	return cmd
}

// argsFromFlags collects the changed prop flags into Args, rejecting flags
// the component has no control for.
func argsFromFlags(component string, flags *pflag.FlagSet) (ui.Args, error) {
	def, err := ui.Lookup(component)
	if err != nil {
		return nil, errors.New(errors.CodeUnknownComponent).
			WithDetailf("%q is not one of %v", component, ui.ComponentNames()).
			Wrap(err)
	}

	args := ui.Args{}
	var bad error
	flags.Visit(func(fl *pflag.Flag) {
		prop, ok := propFlags[fl.Name]
		if !ok || bad != nil {
			return
		}
		c, ok := def.Control(prop)
		if !ok {
			bad = errors.New(errors.CodeInvalidArgs).
				WithDetailf("--%s does not apply to %s", fl.Name, component).
				WithSuggestion("Run 'oxd variants " + component + "' to list its props")
			return
		}
		switch c.Kind {
		case ui.ControlBoolean:
			args[prop] = fl.Value.String() == "true"
		default:
			args[prop] = fl.Value.String()
		}
	})
	if bad != nil {
		return nil, bad
	}
	return args, nil
}

func runRender(cmd *cobra.Command, a *app, component string, props ui.Args, pretty, asJSON bool) error {
	if _, err := a.config(); err != nil {
		return err
	}

	srv := docs.New(story.NewBook(), docs.OptionsFromConfig(a.cfg, a.logger))
	res, err := srv.RenderComponent(cmd.Context(), component, props)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if !pretty {
		fmt.Fprintln(out, res.HTML)
		return nil
	}
	html, err := render.NewRenderer(render.RendererConfig{Pretty: true}).RenderToString(res.Node())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, strings.TrimRight(html, "\n"))
	return nil
}
