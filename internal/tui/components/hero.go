package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/whole/internal/domain"
	"github.com/mmcdole/whole/internal/motion"
	"github.com/mmcdole/whole/internal/tui/styles"
)

// Hero renders the opening screen. The title decodes from noise once the
// loader has finished.
type Hero struct {
	content   domain.Hero
	scrambler *motion.Scrambler
	frame     int
	started   bool
}

// NewHero creates the hero with its title scrambler
func NewHero(content domain.Hero, opts ...motion.ScrambleOption) *Hero {
	title := strings.Join(strings.Split(content.Title, ""), " ")
	return &Hero{
		content:   content,
		scrambler: motion.NewScrambler(title, opts...),
	}
}

// Start begins decoding the title
func (h *Hero) Start() { h.started = true }

// Tick advances the decode by one frame. It reports whether the title
// changed.
func (h *Hero) Tick() bool {
	if !h.started || h.scrambler.Done(h.frame) {
		return false
	}
	h.frame++
	return true
}

// Decoded reports whether the title has settled
func (h *Hero) Decoded() bool { return h.scrambler.Done(h.frame) }

// Title renders the title at its current decode frame
func (h *Hero) Title() string {
	if !h.started {
		return h.scrambler.Frame(0)
	}
	return h.scrambler.Frame(h.frame)
}

// TaglineLines renders the badge above the title
func (h *Hero) TaglineLines(width int, opacity float64) []string {
	badge := styles.BadgeStyle.
		Foreground(styles.Fade(styles.GoldPale, opacity)).
		BorderForeground(styles.Fade(styles.IndigoMist, opacity)).
		Render(strings.ToUpper(h.content.Tagline))
	return centerBlock(badge, width)
}

// TitleLines renders the scrambled title
func (h *Hero) TitleLines(width int, opacity float64) []string {
	style := lipgloss.NewStyle().Bold(true).Foreground(styles.Fade(styles.GoldBright, opacity))
	return []string{center(style.Render(h.Title()), width)}
}

// WordLines renders the five words
func (h *Hero) WordLines(width int, opacity float64) []string {
	word := lipgloss.NewStyle().Foreground(styles.Fade(styles.CreamMuted, opacity))
	dot := lipgloss.NewStyle().Foreground(styles.Fade(styles.GoldDim, opacity))
	var parts []string
	for _, w := range h.content.Words {
		parts = append(parts, word.Render(w))
	}
	return []string{center(strings.Join(parts, dot.Render(" · ")), width)}
}

// QuoteLines renders the opening passage and its attribution
func (h *Hero) QuoteLines(width int, opacity float64) []string {
	text := lipgloss.NewStyle().Foreground(styles.Fade(styles.CreamSoft, opacity)).Italic(true)
	cite := lipgloss.NewStyle().Foreground(styles.Fade(styles.GoldDim, opacity))
	var lines []string
	for _, l := range styles.Wrap(`"`+h.content.Quote+`"`, min(max(width-8, 20), 72)) {
		lines = append(lines, center(text.Render(l), width))
	}
	return append(lines, "", center(cite.Render(h.content.Attribution), width))
}

// CallToActionLines renders the button leading into the page
func (h *Hero) CallToActionLines(width int, opacity float64) []string {
	btn := styles.GhostButtonStyle.
		Foreground(styles.Fade(styles.Cream, opacity)).
		BorderForeground(styles.Fade(styles.GoldDim, opacity)).
		Render(h.content.CallToAction + "  ↓")
	return centerBlock(btn, width)
}

func centerBlock(s string, width int) []string {
	return strings.Split(lipgloss.PlaceHorizontal(width, lipgloss.Center, s), "\n")
}
