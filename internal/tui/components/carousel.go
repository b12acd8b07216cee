package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/whole/internal/domain"
	"github.com/mmcdole/whole/internal/motion"
	"github.com/mmcdole/whole/internal/tui/styles"
)

// Carousel rotates the scripture passages. Hovering pauses it; so does
// the pause key.
type Carousel struct {
	presenter *motion.Presenter[domain.Quote]
	hovered   bool
	held      bool // paused from the keyboard
}

// NewCarousel creates a carousel over quotes
func NewCarousel(loop *motion.Loop, quotes []domain.Quote, interval time.Duration) (*Carousel, error) {
	p, err := motion.NewPresenter(loop, quotes, interval)
	if err != nil {
		return nil, fmt.Errorf("quote carousel: %w", err)
	}
	return &Carousel{presenter: p}, nil
}

// Mount starts rotation
func (c *Carousel) Mount() { c.presenter.Mount() }

// Unmount stops rotation and releases the timer
func (c *Carousel) Unmount() { c.presenter.Unmount() }

// Presenter exposes the underlying presenter
func (c *Carousel) Presenter() *motion.Presenter[domain.Quote] { return c.presenter }

// Current returns the quote on display
func (c *Carousel) Current() domain.Quote { return c.presenter.Current() }

// Active returns the index on display
func (c *Carousel) Active() int { return c.presenter.Active() }

// Select shows quote i
func (c *Carousel) Select(i int) error { return c.presenter.Select(i) }

// Next shows the following quote
func (c *Carousel) Next() { c.presenter.Advance() }

// Prev shows the preceding quote
func (c *Carousel) Prev() {
	n := c.presenter.Len()
	_ = c.presenter.Select((c.presenter.Active() + n - 1) % n)
}

// SetHover records whether the pointer is over the carousel
func (c *Carousel) SetHover(over bool) {
	if c.hovered == over {
		return
	}
	c.hovered = over
	c.sync()
}

// ToggleHold pauses or resumes from the keyboard
func (c *Carousel) ToggleHold() {
	c.held = !c.held
	c.sync()
}

// Paused reports whether rotation is paused
func (c *Carousel) Paused() bool { return c.presenter.Paused() }

func (c *Carousel) sync() {
	if c.hovered || c.held {
		c.presenter.Pause()
	} else {
		c.presenter.Resume()
	}
}

// Height returns the rows every quote needs at width, so the block never
// changes size as quotes rotate.
func (c *Carousel) Height(width int) int {
	h := 0
	for _, q := range c.presenter.Items() {
		h = max(h, len(c.quoteLines(q, width)))
	}
	return h + 2 // blank and dots
}

// Lines renders the current quote padded to Height
func (c *Carousel) Lines(width int, opacity float64) []string {
	height := c.Height(width)
	text := styles.QuoteStyle.Foreground(styles.Fade(styles.CreamSoft, opacity))
	cite := lipgloss.NewStyle().Foreground(styles.Fade(styles.GoldDim, opacity))

	raw := c.quoteLines(c.Current(), width)
	lines := make([]string, 0, height)
	for i, l := range raw {
		style := text
		if i == len(raw)-1 {
			style = cite
		}
		lines = append(lines, center(style.Render(l), width))
	}
	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	lines = append(lines, "", center(c.dots(opacity), width))
	return lines
}

func (c *Carousel) quoteLines(q domain.Quote, width int) []string {
	lines := styles.Wrap(`"`+q.Text+`"`, min(max(width-8, 20), 72))
	return append(lines, "", "— "+q.Citation())
}

func (c *Carousel) dots(opacity float64) string {
	active := lipgloss.NewStyle().Foreground(styles.Fade(styles.Gold, opacity))
	idle := lipgloss.NewStyle().Foreground(styles.Fade(styles.IndigoMist, opacity))
	var parts []string
	for i := 0; i < c.presenter.Len(); i++ {
		if i == c.presenter.Active() {
			parts = append(parts, active.Render(styles.DotActive))
		} else {
			parts = append(parts, idle.Render(styles.DotInactive))
		}
	}
	out := strings.Join(parts, " ")
	if c.Paused() {
		out += "  " + idle.Render("❚❚")
	}
	return out
}

func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
