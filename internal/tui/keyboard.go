package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/whole/internal/search"
)

// wheelRows is how far one wheel notch scrolls
const wheelRows = 3

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle state-specific keys
	switch m.State {
	case StateLoading:
		if key.Matches(msg, Keys.Quit) {
			m.unmount()
			return m, tea.Quit
		}
		// Any other key skips the intro; the next frame mounts the page.
		m.loader.Finish()
		return m, nil

	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
			m.help.ShowAll = false
		}
		return m, nil

	case StateJump:
		return m.updateJump(msg)
	}

	vpHeight := m.stage.viewport.Height

	switch {
	case key.Matches(msg, Keys.Quit):
		m.unmount()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.carousel.SetHover(false)
		m.State = StateHelp
		m.help.ShowAll = true

	case key.Matches(msg, Keys.Jump):
		m.carousel.SetHover(false)
		m.State = StateJump
		m.Jump.Show()
		m.Jump.SetSize(m.Width, m.Height)
		return m, m.Jump.Init()

	case key.Matches(msg, Keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, Keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, Keys.HalfUp):
		m.scrollBy(-vpHeight / 2)
	case key.Matches(msg, Keys.HalfDown):
		m.scrollBy(vpHeight / 2)
	case key.Matches(msg, Keys.PageUp):
		m.scrollBy(-vpHeight)
	case key.Matches(msg, Keys.PageDown):
		m.scrollBy(vpHeight)
	case key.Matches(msg, Keys.Home):
		m.scroll.Start(m.stage.viewport.YOffset, 0)
	case key.Matches(msg, Keys.End):
		m.scroll.Start(m.stage.viewport.YOffset, m.maxRow())

	case key.Matches(msg, Keys.NextSection):
		if anchor, ok := m.sectionStep(1); ok {
			m.glideTo(anchor)
		}
	case key.Matches(msg, Keys.PrevSection):
		if anchor, ok := m.sectionStep(-1); ok {
			m.glideTo(anchor)
		}

	case key.Matches(msg, Keys.NextQuote):
		m.carousel.Next()
	case key.Matches(msg, Keys.PrevQuote):
		m.carousel.Prev()
	case key.Matches(msg, Keys.HoldQuote):
		m.carousel.ToggleHold()
	case key.Matches(msg, Keys.PickQuote):
		n, _ := strconv.Atoi(msg.String())
		if err := m.carousel.Select(n - 1); err != nil {
			m.logger.Debug("passage selection rejected", "error", err)
			return m, statusCmd("No passage "+msg.String(), true)
		}
	}
	return m, nil
}

// updateJump routes input to the jump modal and follows a chosen result
func (m Model) updateJump(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var chosen bool
	m.Jump, cmd, chosen = m.Jump.Update(msg)

	if !m.Jump.IsVisible() {
		m.State = StateBrowsing
		return m, cmd
	}
	if !chosen {
		return m, cmd
	}

	result, ok := m.Jump.Selected()
	m.Jump.Hide()
	m.State = StateBrowsing
	if !ok {
		return m, cmd
	}
	m.follow(result)
	return m, cmd
}

// follow scrolls to a jump result. Passages also bring the quote up.
func (m *Model) follow(r search.Result) {
	if r.Kind == search.KindPassage {
		if err := m.carousel.Select(r.Item); err != nil {
			m.logger.Warn("jump to passage", "error", err)
		}
	}
	m.glideTo(r.Anchor)
	m.logger.Debug("jump", "kind", r.Kind.String(), "anchor", r.Anchor)
}

// handleMouseMsg handles wheel scrolling, nav clicks and carousel hover
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.State != StateBrowsing {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelRows)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelRows)
		return m, nil
	}

	navHeight := m.nav.Height()
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y < navHeight {
		if anchor, ok := m.nav.HitTest(msg.X); ok {
			m.glideTo(anchor)
		}
		return m, nil
	}

	row := msg.Y - navHeight + m.stage.viewport.YOffset
	top, height, ok := m.doc.BlockSpan("scripture/carousel")
	m.carousel.SetHover(ok && msg.Y >= navHeight && row >= top && row < top+height)
	return m, nil
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: text, IsError: isErr}
	}
}
