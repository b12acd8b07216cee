package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/whole/internal/search"
	"github.com/mmcdole/whole/internal/tui/styles"
)

const maxJumpResults = 8

// Jump is the fuzzy "go to" modal over sections, values, practices and
// passages.
type Jump struct {
	index   *search.Index
	input   textinput.Model
	results []search.Result
	cursor  int
	visible bool
	width   int
	height  int
}

// NewJump creates a jump modal over index
func NewJump(index *search.Index) Jump {
	ti := textinput.New()
	ti.Placeholder = "Jump to..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "› "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.Cream)
	ti.PlaceholderStyle = styles.DimStyle

	return Jump{index: index, input: ti}
}

// Show makes the modal visible and focuses the input
func (j *Jump) Show() {
	j.visible = true
	j.input.SetValue("")
	j.input.Focus()
	j.results = nil
	j.cursor = 0
}

// Hide hides the modal
func (j *Jump) Hide() {
	j.visible = false
	j.input.Blur()
}

// IsVisible returns true if the modal is visible
func (j Jump) IsVisible() bool { return j.visible }

// SetSize updates the component dimensions
func (j *Jump) SetSize(width, height int) {
	j.width = width
	j.height = height
	j.input.Width = max(min(width*2/3, 80)-10, 10)
}

// Results returns the current matches
func (j Jump) Results() []search.Result { return j.results }

// Selected returns the highlighted result
func (j Jump) Selected() (search.Result, bool) {
	if j.cursor < 0 || j.cursor >= len(j.results) {
		return search.Result{}, false
	}
	return j.results[j.cursor], true
}

// Init initializes the component
func (j Jump) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. The bool reports that a result was chosen.
func (j Jump) Update(msg tea.Msg) (Jump, tea.Cmd, bool) {
	if !j.visible {
		return j, nil, false
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, JumpKeys.Escape):
			j.Hide()
			return j, nil, false
		case key.Matches(msg, JumpKeys.Enter):
			return j, nil, len(j.results) > 0
		case key.Matches(msg, JumpKeys.Down):
			if j.cursor < len(j.results)-1 {
				j.cursor++
			}
			return j, nil, false
		case key.Matches(msg, JumpKeys.Up):
			if j.cursor > 0 {
				j.cursor--
			}
			return j, nil, false
		}
	}

	prev := j.input.Value()
	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	if q := j.input.Value(); q != prev {
		j.results = j.index.Find(q, maxJumpResults)
		j.cursor = 0
	}
	return j, cmd, false
}

// View renders the component
func (j Jump) View() string {
	if !j.visible {
		return ""
	}
	modalWidth := min(max(j.width*2/3, 40), 80)

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Jump"))
	b.WriteString("\n")
	b.WriteString(styles.ActiveBorder.Width(modalWidth - 6).Render(j.input.View()))
	b.WriteString("\n\n")

	switch {
	case len(j.results) == 0 && j.input.Value() != "":
		b.WriteString(styles.DimStyle.Render("No matches"))
	default:
		for i, r := range j.results {
			selected := i == j.cursor
			kind := styles.DimStyle.Render(fmt.Sprintf("%-8s", r.Kind))
			title := r.Title
			matched := r.MatchedIndexes
			if w := modalWidth - 16; lipgloss.Width(title) > w {
				title = styles.Truncate(title, w)
			}
			b.WriteString(kind + " " + styles.RenderHighlighted(title, matched, selected))
			b.WriteString("\n")
		}
	}

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(lipgloss.NewStyle().Width(modalWidth - 4).Render(b.String()))

	return lipgloss.Place(j.width, j.height, lipgloss.Center, lipgloss.Center, modal)
}
