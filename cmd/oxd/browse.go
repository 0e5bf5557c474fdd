package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/orangehrm/oxd/internal/browse"
	"github.com/orangehrm/oxd/internal/errors"
)

func browseCmd(a *app) *cobra.Command {
	var stories []string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the stories in the terminal",
		Long: `Open a terminal browser listing every story with its resolved classes,
style and rendered markup.

Keys:
  ↑/↓    select a story
  /      filter
  tab    switch between the list and the detail pane
  q      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, ok := a.in.(*os.File)
			if !ok || !term.IsTerminal(int(in.Fd())) || !isTerminal(a.out) {
				return errors.New(errors.CodeTerminalRequired).
					WithSuggestion("Use 'oxd stories' for plain output")
			}
			book, err := a.book(stories)
			if err != nil {
				return err
			}
			return browse.Run(cmd.Context(), book, a.in, a.out)
		},
	}

	cmd.Flags().StringSliceVar(&stories, "stories", nil, "Story directory (repeatable, default from oxd.json)")

	return cmd
}
