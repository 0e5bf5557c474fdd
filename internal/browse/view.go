package browse

import "github.com/charmbracelet/lipgloss"

// View implements tea.Model.
func (m Model) View() string {
	listStyle, detailStyle := focusedPaneStyle, paneStyle
	if m.focus == paneDetail {
		listStyle, detailStyle = paneStyle, focusedPaneStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.list.View()),
		detailStyle.Render(m.detail.View()),
	)
	help := helpStyle.Render("↑/↓ select · / filter · tab switch pane · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}
