package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/whole/internal/motion"
	"github.com/mmcdole/whole/internal/tui/styles"
)

// LoadingScreen shows the loader's progress before the page appears.
type LoadingScreen struct {
	loader *motion.Loader
	bar    progress.Model
	width  int
	height int
}

// NewLoadingScreen creates a loading screen driven by loader
func NewLoadingScreen(loader *motion.Loader) LoadingScreen {
	bar := progress.New(
		progress.WithGradient(string(styles.GoldDim), string(styles.GoldBright)),
		progress.WithoutPercentage(),
	)
	return LoadingScreen{loader: loader, bar: bar}
}

// SetSize updates the component dimensions
func (l *LoadingScreen) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.bar.Width = min(max(width/3, 10), 48)
}

// View renders the component
func (l LoadingScreen) View() string {
	pct := l.loader.Progress()
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render("W H O L E"),
		"",
		l.bar.ViewAs(pct/100),
		"",
		styles.DimStyle.Render(fmt.Sprintf("%3.0f%%", pct)),
	)
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, body)
}
