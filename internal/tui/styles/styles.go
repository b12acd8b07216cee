package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Color palette
var (
	Void     = lipgloss.Color("#0a0a0f")
	VoidDeep = lipgloss.Color("#050508")

	Gold       = lipgloss.Color("#c9a84c")
	GoldDim    = lipgloss.Color("#8b7355")
	GoldMuted  = lipgloss.Color("#a08c5c")
	GoldBright = lipgloss.Color("#d4af37")
	GoldPale   = lipgloss.Color("#e8d5a3")

	IndigoDeep   = lipgloss.Color("#1a1625")
	IndigoCosmic = lipgloss.Color("#252040")
	IndigoMist   = lipgloss.Color("#3d3560")
	IndigoGlow   = lipgloss.Color("#5c4f8a")

	Cream      = lipgloss.Color("#f5f0e8")
	CreamSoft  = lipgloss.Color("#e8e4dc")
	CreamMuted = lipgloss.Color("#d4d0c8")
)

// ActiveBorder frames the focused input
var ActiveBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Gold)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(GoldBright).
			Bold(true)

	HeadingStyle = lipgloss.NewStyle().
			Foreground(Cream)

	BodyStyle = lipgloss.NewStyle().
			Foreground(CreamMuted)

	DimStyle = lipgloss.NewStyle().
			Foreground(GoldDim)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Gold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0584c"))

	QuoteStyle = lipgloss.NewStyle().
			Foreground(CreamSoft).
			Italic(true)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(GoldPale).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(IndigoMist).
			Padding(0, 2)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(VoidDeep).
			Background(GoldBright).
			Bold(true).
			Padding(0, 3)

	GhostButtonStyle = lipgloss.NewStyle().
				Foreground(Cream).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(GoldDim).
				Padding(0, 3)
)

// Navigation styles
var (
	NavStyle = lipgloss.NewStyle().
			Padding(1, 2)

	NavCompactStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Background(IndigoDeep)

	NavItemStyle = lipgloss.NewStyle().
			Foreground(CreamMuted)

	NavActiveStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Underline(true)
)

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(IndigoMist).
			Padding(1, 2)

	CardLetterStyle = lipgloss.NewStyle().
			Foreground(GoldDim).
			Bold(true)

	CardIconStyle = lipgloss.NewStyle().
			Foreground(GoldMuted)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gold).
			Padding(1, 2).
			Background(IndigoDeep)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(Cream).
			Bold(true).
			MarginBottom(1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(Cream).
				Background(IndigoCosmic).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(CreamMuted).
			Padding(0, 1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Gold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(GoldDim)
)

// Match highlight styles for jump results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(GoldBright).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(GoldBright).
					Background(IndigoCosmic).
					Bold(true)
)

// Carousel dots
const (
	DotActive   = "●"
	DotInactive = "○"
)

// Fade blends from the page background towards c. opacity 0 is invisible,
// 1 is c itself.
func Fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return Void
	}
	bg, err := colorful.Hex(string(Void))
	if err != nil {
		return c
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	return lipgloss.Color(bg.BlendLab(fg, opacity).Clamped().Hex())
}

// Truncate truncates a string to the given cell width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Pad pads a string to the given cell width
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Wrap word-wraps plain text to width cells.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// RenderHighlighted renders text with the given byte positions emphasized.
func RenderHighlighted(text string, matched []int, selected bool) string {
	base := NormalItemStyle.UnsetPadding()
	hi := MatchHighlightStyle
	if selected {
		base = SelectedItemStyle.UnsetPadding()
		hi = MatchHighlightSelectedStyle
	}
	set := make(map[int]struct{}, len(matched))
	for _, i := range matched {
		set[i] = struct{}{}
	}
	var b strings.Builder
	for i, r := range text {
		if _, ok := set[i]; ok {
			b.WriteString(hi.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
