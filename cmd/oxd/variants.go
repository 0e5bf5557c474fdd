package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/ui"
)

func variantsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "variants [component]",
		Short: "List component props and their allowed values",
		Long: `List the props of every component, or of one, with the values each
select prop accepts.

Examples:
  oxd variants
  oxd variants button
  oxd variants textarea --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := ui.Catalog()
			if len(args) == 1 {
				def, err := ui.Lookup(args[0])
				if err != nil {
					return errors.New(errors.CodeUnknownComponent).
						WithDetailf("%q is not one of %v", args[0], ui.ComponentNames()).
						Wrap(err)
				}
				defs = []ui.Definition{def}
			}
			return runVariants(a, defs, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the definitions as JSON")

	return cmd
}

func runVariants(a *app, defs []ui.Definition, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(defs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, string(data))
		return nil
	}

	for i, def := range defs {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		fmt.Fprintf(a.out, "%s %s\n", a.paint(headStyle, def.Title), a.paint(dimStyle, "("+def.Name+")"))

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("PROP", "KIND", "VALUES", "DEFAULT")
		for _, c := range def.Controls {
			dflt := ""
			if c.Default != nil {
				dflt = fmt.Sprint(c.Default)
			}
			t.Row(c.Name, string(c.Kind), strings.Join(c.Options, " | "), dflt)
		}
		fmt.Fprintln(a.out, t.String())
	}
	return nil
}
