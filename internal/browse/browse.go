// Package browse is a terminal browser for component stories.
package browse

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/orangehrm/oxd/pkg/story"
)

// Run starts the browser and blocks until the user quits or ctx ends.
func Run(ctx context.Context, book *story.Book, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewModel(book),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
