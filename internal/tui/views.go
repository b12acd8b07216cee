package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/whole/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return ""
	}

	switch m.State {
	case StateLoading:
		return m.Loading.View()
	case StateHelp:
		return m.renderHelp()
	case StateJump:
		return m.Jump.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.nav.View(),
		m.stage.viewport.View(),
		m.renderFooter(),
	)
}

// renderFooter renders the reading progress and status line
func (m Model) renderFooter() string {
	bar := m.bar.ViewAs(m.stage.progress / 100)
	pct := styles.DimStyle.Render(fmt.Sprintf(" %3.0f%%", m.stage.progress))

	right := styles.DimStyle.Render("? help")
	if m.StatusMsg != "" {
		style := styles.AccentStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		right = style.Render(m.StatusMsg)
	}

	left := bar + pct
	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right)-1, 1)
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the full key reference
func (m Model) renderHelp() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Keys"),
		m.help.View(Keys),
	)
	modal := styles.ModalStyle.Render(body)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}
