package motion

import (
	"math"
	"time"

	"k8s.io/utils/clock"
)

// Reveal transition defaults, matching the page's fade-up animation.
const (
	DefaultRevealDuration = 800 * time.Millisecond
	DefaultRevealOffset   = 40.0
)

// RevealPhase is where a Reveal is in its one-way transition.
type RevealPhase int

const (
	PhaseHidden RevealPhase = iota
	PhaseRevealing
	PhaseRevealed
)

func (p RevealPhase) String() string {
	switch p {
	case PhaseRevealing:
		return "revealing"
	case PhaseRevealed:
		return "revealed"
	default:
		return "hidden"
	}
}

// RevealOption configures a Reveal.
type RevealOption func(*Reveal)

// WithDuration sets the length of the transition.
func WithDuration(d time.Duration) RevealOption {
	return func(r *Reveal) {
		if d >= 0 {
			r.duration = d
		}
	}
}

// WithOffset sets how far below its resting place hidden content sits.
func WithOffset(px float64) RevealOption {
	return func(r *Reveal) {
		r.offset = px
	}
}

// Reveal binds a tracker to a fade-and-rise transition. Content stays
// hidden until the tracker fires, waits delay, then transitions once and
// never hides again.
type Reveal struct {
	tracker  *Tracker
	clock    clock.PassiveClock
	delay    time.Duration
	duration time.Duration
	offset   float64

	triggered bool
	start     time.Time
}

// NewReveal creates a reveal driven by tracker. Several reveals may share
// one tracker, each with its own delay.
func NewReveal(tracker *Tracker, delay time.Duration, clk clock.PassiveClock, opts ...RevealOption) *Reveal {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if delay < 0 {
		delay = 0
	}
	r := &Reveal{
		tracker:  tracker,
		clock:    clk,
		delay:    delay,
		duration: DefaultRevealDuration,
		offset:   DefaultRevealOffset,
	}
	for _, opt := range opts {
		opt(r)
	}
	tracker.OnVisible(func(at time.Time) {
		r.triggered = true
		r.start = at.Add(r.delay)
	})
	return r
}

// Delay returns the delay applied before the transition starts.
func (r *Reveal) Delay() time.Duration { return r.delay }

// Triggered reports whether the tracker has fired.
func (r *Reveal) Triggered() bool { return r.triggered }

// StartsAt returns when the transition begins.
func (r *Reveal) StartsAt() (time.Time, bool) {
	return r.start, r.triggered
}

// RevealedAt returns when the transition completes.
func (r *Reveal) RevealedAt() (time.Time, bool) {
	if !r.triggered {
		return time.Time{}, false
	}
	return r.start.Add(r.duration), true
}

// Phase returns the transition phase at now.
func (r *Reveal) Phase(now time.Time) RevealPhase {
	if !r.triggered || now.Before(r.start) {
		return PhaseHidden
	}
	if now.Before(r.start.Add(r.duration)) {
		return PhaseRevealing
	}
	return PhaseRevealed
}

// Progress returns the eased transition progress at now, from 0 to 1.
func (r *Reveal) Progress(now time.Time) float64 {
	switch r.Phase(now) {
	case PhaseHidden:
		return 0
	case PhaseRevealed:
		return 1
	}
	t := float64(now.Sub(r.start)) / float64(r.duration)
	return easeOutCubic(t)
}

// Opacity returns the content opacity at now.
func (r *Reveal) Opacity(now time.Time) float64 {
	return r.Progress(now)
}

// OffsetY returns the content's downward displacement at now.
func (r *Reveal) OffsetY(now time.Time) float64 {
	return r.offset * (1 - r.Progress(now))
}

// Now returns the reveal's clock time.
func (r *Reveal) Now() time.Time {
	return r.clock.Now()
}

// Release stops observing. A reveal that already started keeps its state.
func (r *Reveal) Release() {
	r.tracker.Release()
}

func easeOutCubic(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Pow(1-t, 3)
}
