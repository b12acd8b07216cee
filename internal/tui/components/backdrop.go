package components

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/whole/internal/motion"
	"github.com/mmcdole/whole/internal/tui/styles"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// DefaultParallaxSpeed matches the hero's slow drift against the page.
const DefaultParallaxSpeed = 0.3

var starGlyphs = []string{"·", "∙", "✦", "*"}

type star struct {
	x, y  int
	glyph string
	color lipgloss.Color
}

// Backdrop is a starfield that drifts with the parallax stream.
type Backdrop struct {
	rowPx  float64
	speed  float64
	offset float64
	stars  []star
	field  int // rows in the generated field
	noise  opensimplex.Noise
	sub    *motion.Subscription
}

// NewBackdrop creates a starfield. rowPx converts page pixels to rows.
func NewBackdrop(seed uint64, rowPx, speed float64) *Backdrop {
	if speed == 0 {
		speed = DefaultParallaxSpeed
	}
	b := &Backdrop{
		rowPx: max(rowPx, 1),
		speed: speed,
		field: 64,
		noise: opensimplex.NewNormalized(int64(seed)),
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	palette := []lipgloss.Color{styles.GoldDim, styles.IndigoGlow, styles.GoldMuted, styles.IndigoMist}
	for range 96 {
		b.stars = append(b.stars, star{
			x:     rng.IntN(512),
			y:     rng.IntN(b.field),
			glyph: starGlyphs[rng.IntN(len(starGlyphs))],
			color: palette[rng.IntN(len(palette))],
		})
	}
	return b
}

// Mount subscribes to the parallax stream
func (b *Backdrop) Mount(pub *motion.Publisher) {
	if b.sub != nil {
		return
	}
	b.sub = pub.SubscribeParallax(b.speed, func(offset float64) {
		b.offset = offset
	})
}

// Unmount releases the subscription
func (b *Backdrop) Unmount() {
	b.sub.Unsubscribe()
	b.sub = nil
}

// Offset returns the last parallax offset in page pixels
func (b *Backdrop) Offset() float64 { return b.offset }

// ShiftRows returns the parallax offset in rows
func (b *Backdrop) ShiftRows() int {
	return int(math.Round(b.offset / b.rowPx))
}

// twinkle returns a star's brightness in [0.35, 1]. It drifts with the
// parallax offset so the sky shimmers while the page moves.
func (b *Backdrop) twinkle(s star) float64 {
	n := b.noise.Eval2(float64(s.x)*0.07, float64(s.y)*0.07+b.offset/600)
	return 0.35 + 0.65*n
}

// Lines renders height rows of sky starting at row top of the field.
// The field scrolls down by the parallax shift so the sky lags the page.
func (b *Backdrop) Lines(top, width, height int, opacity float64) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}
	shift := b.ShiftRows()
	for _, s := range b.stars {
		x := s.x % width
		y := ((s.y+shift-top)%b.field + b.field) % b.field
		if y >= height {
			continue
		}
		grid[y][x] = lipgloss.NewStyle().
			Foreground(styles.Fade(s.color, opacity*b.twinkle(s))).
			Render(s.glyph)
	}
	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = strings.Join(row, "")
	}
	return lines
}
