package motion

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
)

// NoMatchPolicy decides what the active section becomes when the scroll
// position is past the floor but no registered section qualifies.
type NoMatchPolicy int

const (
	// NoMatchReset clears the active section.
	NoMatchReset NoMatchPolicy = iota
	// NoMatchKeep leaves the previous active section in place.
	NoMatchKeep
)

func (p NoMatchPolicy) String() string {
	switch p {
	case NoMatchKeep:
		return "keep"
	default:
		return "reset"
	}
}

// ParseNoMatchPolicy parses "reset" or "keep".
func ParseNoMatchPolicy(s string) (NoMatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reset":
		return NoMatchReset, nil
	case "keep":
		return NoMatchKeep, nil
	default:
		return NoMatchReset, fmt.Errorf("unknown no-match policy %q", s)
	}
}

// Section is a navigable region of the page, registered in document order.
type Section struct {
	Name     string
	AnchorID string
}

// PlacedSection is a section with its top edge resolved for one frame.
type PlacedSection struct {
	AnchorID  string
	OffsetTop float64
}

// PublisherConfig tunes the scroll publisher. Distances are in pixels.
type PublisherConfig struct {
	// LookAhead is added to the scroll position before matching sections,
	// roughly the height of the fixed navigation bar.
	LookAhead float64
	// ActiveFloor is the scroll position below which no section is active.
	ActiveFloor float64
	// FrameInterval bounds how often scroll events are recomputed.
	FrameInterval time.Duration
	// ClampProgress keeps ProgressPercent within [0, 100].
	ClampProgress bool
	NoMatch       NoMatchPolicy
}

// DefaultPublisherConfig returns the page's tuning: a 150px look-ahead,
// a 200px floor and one recompute per 60Hz frame.
func DefaultPublisherConfig() PublisherConfig {
	return PublisherConfig{
		LookAhead:     150,
		ActiveFloor:   200,
		FrameInterval: 16 * time.Millisecond,
		ClampProgress: true,
		NoMatch:       NoMatchReset,
	}
}

// State is the publisher's snapshot after a frame.
type State struct {
	ScrollY         float64
	ProgressPercent float64
	ActiveSectionID string
	HasActive       bool
	Frame           uint64
}

// Scrolled reports whether the page has moved past threshold pixels.
func (s State) Scrolled(threshold float64) bool {
	return s.ScrollY > threshold
}

type parallaxSub struct {
	speed  float64
	fn     func(float64)
	last   float64
	primed bool
}

// Publisher recomputes scroll-derived values at most once per frame and
// fans them out to independent subscribers. It is constructed once per
// page view and handed to every consumer.
type Publisher struct {
	loop    *Loop
	metrics MetricsSource
	layout  Layout
	cfg     PublisherConfig
	logger  *slog.Logger

	sections []Section
	state    State

	initialized bool
	frameTimer  TimerID
	pending     int // scroll events folded into the scheduled frame

	scrollSubs   listeners[func(State)]
	progressSubs listeners[func(float64)]
	activeSubs   listeners[func(string, bool)]
	parallaxSubs listeners[*parallaxSub]
}

// NewPublisher creates a publisher. It does nothing until Init.
func NewPublisher(loop *Loop, metrics MetricsSource, layout Layout, cfg PublisherConfig, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultPublisherConfig().FrameInterval
	}
	return &Publisher{
		loop:    loop,
		metrics: metrics,
		layout:  layout,
		cfg:     cfg,
		logger:  logger,
	}
}

// Init starts the publisher and computes the first frame.
func (p *Publisher) Init() error {
	if p.initialized {
		return ErrAlreadyInitialized
	}
	p.initialized = true
	p.logger.Debug("scroll publisher initialized",
		"sections", len(p.sections),
		"frameInterval", p.cfg.FrameInterval,
		"noMatch", p.cfg.NoMatch.String())
	p.Flush()
	return nil
}

// Teardown cancels any scheduled frame and drops every subscriber. The
// publisher may be initialized again afterwards.
func (p *Publisher) Teardown() {
	if p.frameTimer != 0 {
		p.loop.Cancel(p.frameTimer)
		p.frameTimer = 0
	}
	p.pending = 0
	p.scrollSubs.clear()
	p.progressSubs.clear()
	p.activeSubs.clear()
	p.parallaxSubs.clear()
	p.state = State{}
	p.initialized = false
}

// Initialized reports whether Init has run without a matching Teardown.
func (p *Publisher) Initialized() bool {
	return p.initialized
}

// RegisterSections replaces the tracked sections. They must be in
// document order.
func (p *Publisher) RegisterSections(sections []Section) {
	p.sections = append([]Section(nil), sections...)
}

// Sections returns the registered sections.
func (p *Publisher) Sections() []Section {
	return append([]Section(nil), p.sections...)
}

// State returns the most recent frame.
func (p *Publisher) State() State {
	return p.state
}

// HandleScroll records a scroll event. The recompute happens on the next
// frame; any further events before then are folded into it.
func (p *Publisher) HandleScroll() {
	if !p.initialized {
		return
	}
	p.pending++
	if p.frameTimer != 0 {
		return
	}
	p.frameTimer = p.loop.After(p.cfg.FrameInterval, func() {
		p.frameTimer = 0
		p.Flush()
	})
}

// FramePending reports whether a recompute is scheduled.
func (p *Publisher) FramePending() bool {
	return p.frameTimer != 0
}

// Flush recomputes every derived value now and notifies subscribers.
func (p *Publisher) Flush() {
	if !p.initialized {
		return
	}
	if p.frameTimer != 0 {
		p.loop.Cancel(p.frameTimer)
		p.frameTimer = 0
	}
	folded := p.pending
	p.pending = 0

	m := p.metrics.Metrics()
	prev := p.state
	next := State{
		ScrollY:         m.ScrollY,
		ProgressPercent: ProgressPercent(m, p.cfg.ClampProgress),
		Frame:           prev.Frame + 1,
	}

	if m.ScrollY >= p.cfg.ActiveFloor {
		next.ActiveSectionID, next.HasActive = scanActiveSection(p.place(), m.ScrollY, p.cfg.LookAhead)
		if !next.HasActive && p.cfg.NoMatch == NoMatchKeep {
			next.ActiveSectionID, next.HasActive = prev.ActiveSectionID, prev.HasActive
		}
	}
	p.state = next

	if folded > 1 {
		p.logger.Debug("coalesced scroll events", "events", folded, "frame", next.Frame)
	}

	p.scrollSubs.each(func(fn func(State)) { fn(next) })

	if next.ProgressPercent != prev.ProgressPercent || prev.Frame == 0 {
		p.progressSubs.each(func(fn func(float64)) { fn(next.ProgressPercent) })
	}

	if next.ActiveSectionID != prev.ActiveSectionID || next.HasActive != prev.HasActive || prev.Frame == 0 {
		p.activeSubs.each(func(fn func(string, bool)) { fn(next.ActiveSectionID, next.HasActive) })
	}

	p.parallaxSubs.each(func(s *parallaxSub) {
		offset := ParallaxOffset(next.ScrollY, s.speed)
		if s.primed && offset == s.last {
			return
		}
		s.last, s.primed = offset, true
		s.fn(offset)
	})
}

// place resolves every registered section's top edge for this frame.
func (p *Publisher) place() []PlacedSection {
	if p.layout == nil {
		return nil
	}
	placed := make([]PlacedSection, 0, len(p.sections))
	for _, s := range p.sections {
		top, ok := p.layout.OffsetTop(s.AnchorID)
		if !ok {
			continue
		}
		placed = append(placed, PlacedSection{AnchorID: s.AnchorID, OffsetTop: top})
	}
	return placed
}

// SubscribeScroll delivers every frame.
func (p *Publisher) SubscribeScroll(fn func(State)) *Subscription {
	id := p.scrollSubs.add(fn)
	if p.state.Frame > 0 {
		fn(p.state)
	}
	return &Subscription{cancel: func() { p.scrollSubs.remove(id) }}
}

// SubscribeProgress delivers the scroll progress percentage when it changes.
func (p *Publisher) SubscribeProgress(fn func(percent float64)) *Subscription {
	id := p.progressSubs.add(fn)
	if p.state.Frame > 0 {
		fn(p.state.ProgressPercent)
	}
	return &Subscription{cancel: func() { p.progressSubs.remove(id) }}
}

// SubscribeActiveSection delivers the active section when it changes. ok
// is false when no section is active.
func (p *Publisher) SubscribeActiveSection(fn func(anchorID string, ok bool)) *Subscription {
	id := p.activeSubs.add(fn)
	if p.state.Frame > 0 {
		fn(p.state.ActiveSectionID, p.state.HasActive)
	}
	return &Subscription{cancel: func() { p.activeSubs.remove(id) }}
}

// SubscribeParallax delivers scrollY*speed whenever it changes.
func (p *Publisher) SubscribeParallax(speed float64, fn func(offset float64)) *Subscription {
	s := &parallaxSub{speed: speed, fn: fn}
	id := p.parallaxSubs.add(s)
	if p.state.Frame > 0 {
		s.last, s.primed = ParallaxOffset(p.state.ScrollY, speed), true
		fn(s.last)
	}
	return &Subscription{cancel: func() { p.parallaxSubs.remove(id) }}
}

// SubscriberCount returns the number of live subscribers across all streams.
func (p *Publisher) SubscriberCount() int {
	return p.scrollSubs.len() + p.progressSubs.len() + p.activeSubs.len() + p.parallaxSubs.len()
}

// ProgressPercent returns how far through the scrollable distance the
// viewport is. With no scrollable distance the result is 0.
func ProgressPercent(m Metrics, clamp bool) float64 {
	scrollable := m.Scrollable()
	if scrollable <= 0 || math.IsNaN(scrollable) {
		return 0
	}
	pct := m.ScrollY / scrollable * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	if clamp {
		pct = math.Max(0, math.Min(100, pct))
	}
	return pct
}

// ParallaxOffset returns the displacement for a layer moving at speed.
func ParallaxOffset(scrollY, speed float64) float64 {
	return scrollY * speed
}

// ResolveActiveSection picks the section the viewport is in. Sections must
// be in document order; the scan runs bottom-up so the lowest qualifying
// section wins, including on ties. Below floor nothing is active.
func ResolveActiveSection(placed []PlacedSection, scrollY, lookAhead, floor float64) (string, bool) {
	if scrollY < floor {
		return "", false
	}
	return scanActiveSection(placed, scrollY, lookAhead)
}

func scanActiveSection(placed []PlacedSection, scrollY, lookAhead float64) (string, bool) {
	for i := len(placed) - 1; i >= 0; i-- {
		if placed[i].OffsetTop <= scrollY+lookAhead {
			return placed[i].AnchorID, true
		}
	}
	return "", false
}
