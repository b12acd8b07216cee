package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/whole/internal/domain"
	"github.com/mmcdole/whole/internal/motion"
	"github.com/mmcdole/whole/internal/tui/components"
	"github.com/mmcdole/whole/internal/tui/styles"
	"k8s.io/utils/clock"
)

// renderFunc draws a block at width with the given opacity.
type renderFunc func(width int, opacity float64) []string

// block is one independently revealed element of the page.
type block struct {
	id     string
	anchor string
	render renderFunc
	delay  time.Duration
	reveal *motion.Reveal // nil blocks are always shown

	top    int
	height int
}

// span is a run of document rows.
type span struct {
	top, height int
}

// Document lays the page out as rows and renders it frame by frame.
type Document struct {
	blocks   []*block
	byID     map[string]*block
	sections map[string]span
	order    []string

	width   int
	minHero int
	rows    int
	rowPx   float64

	newReveal func(id string, delay time.Duration) *motion.Reveal
}

// documentParts are the live components the document draws.
type documentParts struct {
	page     *domain.Page
	hero     *components.Hero
	carousel *components.Carousel
	backdrop *components.Backdrop
	observer *motion.Observer
	clock    clock.PassiveClock

	threshold     float64
	delayStep     time.Duration
	revealFor     time.Duration
	revealOffset  float64
	rowPx         float64
	heroSkyHeight int
}

func newDocument(p documentParts) *Document {
	d := &Document{
		byID:     make(map[string]*block),
		sections: make(map[string]span),
		rowPx:    p.rowPx,
		newReveal: func(id string, delay time.Duration) *motion.Reveal {
			tracker := p.observer.Observe(id, motion.WithThreshold(p.threshold))
			return motion.NewReveal(tracker, delay, p.clock,
				motion.WithDuration(p.revealFor), motion.WithOffset(p.revealOffset))
		},
	}
	b := &docBuilder{doc: d, parts: p}
	b.hero()
	b.values()
	b.philosophy()
	b.practices()
	b.scripture()
	b.community()
	b.footer()
	return d
}

// Layout assigns rows to every block for width. The hero section is
// stretched to at least minHero rows.
func (d *Document) Layout(width, minHero int) {
	if width == d.width && minHero == d.minHero && d.rows > 0 {
		return
	}
	d.width, d.minHero = width, minHero

	row := 0
	for _, anchor := range d.order {
		start := row
		for _, b := range d.blocks {
			if b.anchor != anchor {
				continue
			}
			b.top = row
			b.height = len(b.render(width, 1))
			row += b.height
		}
		if anchor == domain.AnchorHero && row-start < minHero {
			d.padHero(minHero - (row - start))
			row = start + minHero
		}
		d.sections[anchor] = span{top: start, height: row - start}
	}
	d.rows = row
}

// padHero splits spare rows evenly around the hero blocks, shifting them
// down by half.
func (d *Document) padHero(extra int) {
	shift := extra / 2
	for _, b := range d.blocks {
		if b.anchor == domain.AnchorHero {
			b.top += shift
		}
	}
}

// Rows returns the laid out height
func (d *Document) Rows() int { return d.rows }

// Width returns the laid out width
func (d *Document) Width() int { return d.width }

// SectionSpan returns the rows of a section
func (d *Document) SectionSpan(anchor string) (top, height int, ok bool) {
	s, ok := d.sections[anchor]
	return s.top, s.height, ok
}

// BlockSpan returns the rows of a block
func (d *Document) BlockSpan(id string) (top, height int, ok bool) {
	b, ok := d.byID[id]
	if !ok || d.rows == 0 {
		return 0, 0, false
	}
	return b.top, b.height, true
}

// OffsetTop implements motion.Layout in page pixels
func (d *Document) OffsetTop(anchor string) (float64, bool) {
	top, _, ok := d.SectionSpan(anchor)
	if !ok || d.rows == 0 {
		return 0, false
	}
	return float64(top) * d.rowPx, true
}

// Bounds implements motion.Geometry in page pixels
func (d *Document) Bounds(id string) (motion.Rect, bool) {
	top, height, ok := d.BlockSpan(id)
	if !ok {
		return motion.Rect{}, false
	}
	return motion.Rect{Top: float64(top) * d.rowPx, Height: float64(height) * d.rowPx}, true
}

// Reveals returns every reveal in document order
func (d *Document) Reveals() []*motion.Reveal {
	var out []*motion.Reveal
	for _, b := range d.blocks {
		if b.reveal != nil {
			out = append(out, b.reveal)
		}
	}
	return out
}

// Animating reports whether any reveal is mid-transition at now
func (d *Document) Animating(now time.Time) bool {
	for _, b := range d.blocks {
		if b.reveal != nil && b.reveal.Phase(now) == motion.PhaseRevealing {
			return true
		}
	}
	return false
}

// Mount observes every block that has not revealed yet. Blocks already
// revealed keep their reveal.
func (d *Document) Mount() {
	for _, b := range d.blocks {
		if b.reveal == nil || b.reveal.Triggered() {
			continue
		}
		b.reveal.Release()
		b.reveal = d.newReveal(b.id, b.delay)
	}
}

// Release stops every reveal's tracker
func (d *Document) Release() {
	for _, r := range d.Reveals() {
		r.Release()
	}
}

// Render draws the whole document at now
func (d *Document) Render(now time.Time) []string {
	lines := make([]string, d.rows)
	for _, b := range d.blocks {
		out := d.renderBlock(b, now)
		for i := 0; i < b.height && b.top+i < d.rows; i++ {
			if i < len(out) {
				lines[b.top+i] = out[i]
			}
		}
	}
	return lines
}

func (d *Document) renderBlock(b *block, now time.Time) []string {
	if b.reveal == nil {
		return b.render(d.width, 1)
	}
	switch b.reveal.Phase(now) {
	case motion.PhaseHidden:
		return nil
	case motion.PhaseRevealed:
		return b.render(d.width, 1)
	}
	out := b.render(d.width, b.reveal.Opacity(now))
	shift := int(math.Round(b.reveal.OffsetY(now) / d.rowPx))
	if shift <= 0 {
		return out
	}
	shifted := make([]string, 0, len(out))
	for range shift {
		shifted = append(shifted, "")
	}
	shifted = append(shifted, out...)
	return shifted[:min(len(shifted), b.height)]
}

// docBuilder appends the page's blocks in document order.
type docBuilder struct {
	doc   *Document
	parts documentParts
}

func (b *docBuilder) section(anchor string) {
	b.doc.order = append(b.doc.order, anchor)
}

// add registers a block. delay < 0 means the block is always shown.
func (b *docBuilder) add(anchor, id string, delay time.Duration, render renderFunc) {
	blk := &block{id: id, anchor: anchor, render: render, delay: delay}
	if delay >= 0 {
		blk.reveal = b.doc.newReveal(id, delay)
	}
	b.doc.blocks = append(b.doc.blocks, blk)
	b.doc.byID[id] = blk
}

func (b *docBuilder) stagger(i int) time.Duration {
	return time.Duration(i) * b.parts.delayStep
}

func blank(n int) renderFunc {
	return func(int, float64) []string { return make([]string, n) }
}

func (b *docBuilder) hero() {
	h := b.parts.hero
	sky := b.parts.heroSkyHeight
	b.section(domain.AnchorHero)

	b.add(domain.AnchorHero, "hero/sky-top", -1, func(width int, _ float64) []string {
		return b.parts.backdrop.Lines(0, width, sky, 1)
	})
	// Load-time fade-up cascade: 0.2s, 0.4s, 0.6s, 0.8s, 1s.
	b.add(domain.AnchorHero, "hero/tagline", 200*time.Millisecond, h.TaglineLines)
	b.add(domain.AnchorHero, "hero/gap-1", -1, blank(1))
	b.add(domain.AnchorHero, "hero/title", 400*time.Millisecond, h.TitleLines)
	b.add(domain.AnchorHero, "hero/gap-2", -1, blank(1))
	b.add(domain.AnchorHero, "hero/words", 600*time.Millisecond, h.WordLines)
	b.add(domain.AnchorHero, "hero/gap-3", -1, blank(2))
	b.add(domain.AnchorHero, "hero/quote", 800*time.Millisecond, h.QuoteLines)
	b.add(domain.AnchorHero, "hero/gap-4", -1, blank(2))
	b.add(domain.AnchorHero, "hero/cta", time.Second, h.CallToActionLines)
	b.add(domain.AnchorHero, "hero/sky-bottom", -1, func(width int, _ float64) []string {
		return b.parts.backdrop.Lines(sky, width, sky, 1)
	})
}

func (b *docBuilder) heading(anchor string, s domain.Section) {
	b.add(anchor, anchor+"/heading", 0, func(width int, op float64) []string {
		title := styles.HeadingStyle.Foreground(styles.Fade(styles.Cream, op)).Bold(true)
		intro := lipgloss.NewStyle().Foreground(styles.Fade(styles.CreamMuted, op))
		lines := []string{"", "", center(title.Render(s.Title), width)}
		if s.Intro != "" {
			lines = append(lines, "")
			for _, l := range styles.Wrap(s.Intro, min(max(width-8, 20), 64)) {
				lines = append(lines, center(intro.Render(l), width))
			}
		}
		return append(lines, "")
	})
}

func (b *docBuilder) values() {
	p := b.parts.page
	s, _ := p.Section(domain.AnchorValues)
	b.section(domain.AnchorValues)
	b.heading(domain.AnchorValues, s)
	for i, v := range p.Values {
		b.add(domain.AnchorValues, fmt.Sprintf("values/card/%d", i), b.stagger(i), func(width int, op float64) []string {
			letter := styles.CardLetterStyle.Foreground(styles.Fade(styles.GoldDim, op)).Render(v.Letter)
			name := lipgloss.NewStyle().Foreground(styles.Fade(styles.Cream, op)).Render(v.Name)
			return card(width, op, letter+"  "+name, v.Description)
		})
	}
}

func (b *docBuilder) philosophy() {
	p := b.parts.page
	s, _ := p.Section(domain.AnchorPhilosophy)
	b.section(domain.AnchorPhilosophy)
	b.add(domain.AnchorPhilosophy, "philosophy/badge", 0, func(width int, op float64) []string {
		badge := styles.BadgeStyle.
			Foreground(styles.Fade(styles.GoldPale, op)).
			BorderForeground(styles.Fade(styles.IndigoMist, op)).
			Render(strings.ToUpper(p.Philosophy.Badge))
		return append([]string{"", ""}, strings.Split(center(badge, width), "\n")...)
	})
	b.heading(domain.AnchorPhilosophy, s)
	b.add(domain.AnchorPhilosophy, "philosophy/text", b.stagger(1), func(width int, op float64) []string {
		body := lipgloss.NewStyle().Foreground(styles.Fade(styles.CreamMuted, op))
		emph := lipgloss.NewStyle().Foreground(styles.Fade(styles.GoldMuted, op)).Italic(true)
		wrap := min(max(width-8, 20), 72)
		var lines []string
		for _, para := range p.Philosophy.Paragraphs {
			for _, l := range styles.Wrap(para, wrap) {
				lines = append(lines, center(body.Render(l), width))
			}
			lines = append(lines, "")
		}
		for _, l := range styles.Wrap(p.Philosophy.Emphasis, wrap) {
			lines = append(lines, center(emph.Render(l), width))
		}
		return lines
	})
	b.add(domain.AnchorPhilosophy, "philosophy/orbit", b.stagger(2), func(width int, op float64) []string {
		word := lipgloss.NewStyle().Foreground(styles.Fade(styles.GoldDim, op))
		inf := lipgloss.NewStyle().Foreground(styles.Fade(styles.GoldBright, op)).Bold(true)
		words := p.Hero.Words
		var top, bottom []string
		for i, w := range words {
			if i%2 == 0 {
				top = append(top, word.Render(w))
			} else {
				bottom = append(bottom, word.Render(w))
			}
		}
		return []string{
			"",
			center(strings.Join(top, "      "), width),
			center(inf.Render("∞"), width),
			center(strings.Join(bottom, "      "), width),
			"",
		}
	})
}

func (b *docBuilder) practices() {
	p := b.parts.page
	s, _ := p.Section(domain.AnchorPractices)
	b.section(domain.AnchorPractices)
	b.heading(domain.AnchorPractices, s)
	for i, pr := range p.Practices {
		b.add(domain.AnchorPractices, fmt.Sprintf("practices/card/%d", i), b.stagger(i), func(width int, op float64) []string {
			icon := styles.CardIconStyle.Foreground(styles.Fade(styles.GoldMuted, op)).Render(pr.Icon)
			title := lipgloss.NewStyle().Foreground(styles.Fade(styles.Cream, op)).Render(pr.Title)
			return card(width, op, icon+"  "+title, pr.Description)
		})
	}
}

func (b *docBuilder) scripture() {
	p := b.parts.page
	s, _ := p.Section(domain.AnchorScripture)
	b.section(domain.AnchorScripture)
	b.heading(domain.AnchorScripture, s)
	b.add(domain.AnchorScripture, "scripture/carousel", b.stagger(2), b.parts.carousel.Lines)
	b.add(domain.AnchorScripture, "scripture/gap", -1, blank(2))
}

func (b *docBuilder) community() {
	p := b.parts.page
	s, _ := p.Section(domain.AnchorCommunity)
	b.section(domain.AnchorCommunity)
	b.heading(domain.AnchorCommunity, s)
	b.add(domain.AnchorCommunity, "community/body", b.stagger(2), func(width int, op float64) []string {
		body := lipgloss.NewStyle().Foreground(styles.Fade(styles.CreamMuted, op))
		var lines []string
		for _, l := range styles.Wrap(p.Community.Body, min(max(width-8, 20), 64)) {
			lines = append(lines, center(body.Render(l), width))
		}
		return append(lines, "")
	})
	b.add(domain.AnchorCommunity, "community/links", b.stagger(4), func(width int, op float64) []string {
		var buttons, row []string
		for i, l := range p.Community.Links {
			style := styles.GhostButtonStyle.
				Foreground(styles.Fade(styles.Cream, op)).
				BorderForeground(styles.Fade(styles.GoldDim, op))
			label := l.Label
			if i == 0 {
				style = styles.ButtonStyle.
					Foreground(styles.Fade(styles.VoidDeep, op)).
					Background(styles.Fade(styles.GoldBright, op)).
					Border(lipgloss.RoundedBorder()).
					BorderForeground(styles.Fade(styles.GoldBright, op))
				label += "  →"
			}
			buttons = append(buttons, style.Render(label))
		}
		for i, btn := range buttons {
			if i > 0 {
				row = append(row, "   ")
			}
			row = append(row, btn)
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Center, row...)
		if lipgloss.Width(joined) > width {
			joined = lipgloss.JoinVertical(lipgloss.Center, buttons...)
		}
		return append(strings.Split(center(joined, width), "\n"), "", "")
	})
}

func (b *docBuilder) footer() {
	p := b.parts.page
	b.section(domain.AnchorFooter)
	b.add(domain.AnchorFooter, "footer", -1, func(width int, _ float64) []string {
		rule := styles.DimStyle.Render(strings.Repeat("─", width))
		var nav []string
		for _, s := range p.NavSections() {
			if s.Anchor == domain.AnchorCommunity {
				continue
			}
			nav = append(nav, styles.BodyStyle.Render(s.NavName))
		}
		return []string{
			rule,
			"",
			center(styles.TitleStyle.Render(p.Hero.Title), width),
			center(styles.DimStyle.Render(p.Motto()), width),
			"",
			center(strings.Join(nav, "   "), width),
			"",
			center(styles.DimStyle.Render(p.Footer.Motto), width),
			"",
		}
	})
}

// card renders a bordered card with a title row and wrapped body.
func card(width int, op float64, title, body string) []string {
	inner := min(max(width-10, 20), 68)
	text := lipgloss.NewStyle().Foreground(styles.Fade(styles.CreamMuted, op))
	lines := []string{title, ""}
	for _, l := range styles.Wrap(body, inner) {
		lines = append(lines, text.Render(l))
	}
	box := styles.CardStyle.
		BorderForeground(styles.Fade(styles.IndigoMist, op)).
		Width(inner + 4).
		Render(strings.Join(lines, "\n"))
	return append(strings.Split(center(box, width), "\n"), "")
}

func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
