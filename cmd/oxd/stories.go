package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/orangehrm/oxd/pkg/story"
)

func storiesCmd(a *app) *cobra.Command {
	var (
		dirs   []string
		asYAML bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List the documentation stories",
		Long: `List the built-in stories and those loaded from story directories.

Story directories come from --dir or, when none is given, from the
"stories.dirs" list in oxd.json.

Examples:
  oxd stories
  oxd stories --dir ./stories
  oxd stories --yaml > all-stories.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.book(dirs)
			if err != nil {
				return err
			}
			return runStories(a, book, asYAML, asJSON)
		},
	}

	cmd.Flags().StringSliceVarP(&dirs, "dir", "d", nil, "Story directory (repeatable)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the stories as story files")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the stories as JSON")

	return cmd
}

// book loads the default stories plus dirs, or the configured story
// directories when dirs is empty.
func (a *app) book(dirs []string) (*story.Book, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		dirs = cfg.StoryPaths()
	}
	book, err := story.Load(dirs...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("stories loaded", "count", book.Len(), "dirs", dirs)
	return book, nil
}

func runStories(a *app, book *story.Book, asYAML, asJSON bool) error {
	switch {
	case asJSON:
		data, err := json.MarshalIndent(book.Stories(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, string(data))
		return nil

	case asYAML:
		for i, g := range book.Groups() {
			data, err := story.Marshal(g)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(a.out, "---")
			}
			fmt.Fprint(a.out, string(data))
		}
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "COMPONENT", "TITLE", "NAME")
	for _, s := range book.Stories() {
		t.Row(s.ID, s.Component, s.Title, s.Name)
	}
	fmt.Fprintln(a.out, t.String())
	a.info("%d stories in %d groups", book.Len(), len(book.Groups()))
	return nil
}
