package motion

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"
)

// DefaultVisibilityThreshold is the fraction of an element that has to be
// inside the viewport before it counts as seen.
const DefaultVisibilityThreshold = 0.1

// TrackOption configures a Tracker.
type TrackOption func(*Tracker)

// WithThreshold sets the visible fraction required to trigger. Values
// outside (0, 1] leave the default in place.
func WithThreshold(fraction float64) TrackOption {
	return func(t *Tracker) {
		if fraction > 0 && fraction <= 1 {
			t.threshold = fraction
		}
	}
}

// WithCondition adds a trigger condition that must also hold.
func WithCondition(cond func() bool) TrackOption {
	return func(t *Tracker) {
		if cond != nil {
			t.conditions = append(t.conditions, cond)
		}
	}
}

// Tracker is a one-shot visibility flag for one element. Once visible it
// stays visible.
type Tracker struct {
	handle     uuid.UUID
	elementID  string
	threshold  float64
	conditions []func() bool

	visible   bool
	visibleAt time.Time
	callbacks []func(time.Time)

	observer *Observer
}

// Handle returns the tracker's registration handle.
func (t *Tracker) Handle() uuid.UUID { return t.handle }

// ElementID returns the observed element.
func (t *Tracker) ElementID() string { return t.elementID }

// Threshold returns the visible fraction that triggers the tracker.
func (t *Tracker) Threshold() float64 { return t.threshold }

// Visible reports whether the element has ever been seen.
func (t *Tracker) Visible() bool { return t.visible }

// VisibleAt returns when the element was first seen.
func (t *Tracker) VisibleAt() (time.Time, bool) {
	return t.visibleAt, t.visible
}

// OnVisible registers fn to run when the element is first seen. If that
// already happened fn runs immediately.
func (t *Tracker) OnVisible(fn func(at time.Time)) {
	if t.visible {
		fn(t.visibleAt)
		return
	}
	t.callbacks = append(t.callbacks, fn)
}

// Release stops observing the element. Safe to call at any time and more
// than once.
func (t *Tracker) Release() {
	if t.observer != nil {
		t.observer.deregister(t)
	}
	t.callbacks = nil
}

// Observer watches registered elements against the viewport.
type Observer struct {
	metrics  MetricsSource
	geometry Geometry
	clock    clock.PassiveClock
	logger   *slog.Logger

	tracked map[uuid.UUID]*Tracker
	order   []*Tracker
}

// NewObserver creates an observer reading viewport and element geometry on
// every evaluation.
func NewObserver(metrics MetricsSource, geometry Geometry, clk clock.PassiveClock, logger *slog.Logger) *Observer {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Observer{
		metrics:  metrics,
		geometry: geometry,
		clock:    clk,
		logger:   logger,
		tracked:  make(map[uuid.UUID]*Tracker),
	}
}

// Observe starts tracking elementID and evaluates it once right away. An
// element that does not exist simply never becomes visible.
func (o *Observer) Observe(elementID string, opts ...TrackOption) *Tracker {
	t := &Tracker{
		handle:    uuid.New(),
		elementID: elementID,
		threshold: DefaultVisibilityThreshold,
		observer:  o,
	}
	for _, opt := range opts {
		opt(t)
	}
	o.tracked[t.handle] = t
	o.order = append(o.order, t)

	o.evaluate(t, o.metrics.Metrics())
	return t
}

// Observed returns the number of trackers still waiting to become visible.
func (o *Observer) Observed() int {
	return len(o.order)
}

// Evaluate checks every waiting tracker against the current viewport and
// returns how many became visible.
func (o *Observer) Evaluate() int {
	if len(o.order) == 0 {
		return 0
	}
	m := o.metrics.Metrics()
	pending := append([]*Tracker(nil), o.order...)
	flipped := 0
	for _, t := range pending {
		if _, ok := o.tracked[t.handle]; !ok {
			continue
		}
		if o.evaluate(t, m) {
			flipped++
		}
	}
	return flipped
}

// Attach evaluates on every frame the publisher produces.
func (o *Observer) Attach(p *Publisher) *Subscription {
	return p.SubscribeScroll(func(State) { o.Evaluate() })
}

func (o *Observer) evaluate(t *Tracker, m Metrics) bool {
	if o.geometry == nil {
		return false
	}
	bounds, ok := o.geometry.Bounds(t.elementID)
	if !ok {
		return false
	}
	ratio := IntersectionRatio(m.ScrollY, m.ViewportHeight, bounds)
	if ratio <= 0 || ratio < t.threshold {
		return false
	}
	for _, cond := range t.conditions {
		if !cond() {
			return false
		}
	}

	t.visible = true
	t.visibleAt = o.clock.Now()
	o.deregister(t)

	o.logger.Debug("element visible", "element", t.elementID, "ratio", ratio)

	callbacks := t.callbacks
	t.callbacks = nil
	for _, fn := range callbacks {
		fn(t.visibleAt)
	}
	return true
}

func (o *Observer) deregister(t *Tracker) {
	if _, ok := o.tracked[t.handle]; !ok {
		return
	}
	delete(o.tracked, t.handle)
	for i, other := range o.order {
		if other == t {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// IntersectionRatio returns the fraction of r inside the viewport that
// starts at top and spans height. An element with no height counts as
// fully visible when its top edge is inside the viewport.
func IntersectionRatio(top, height float64, r Rect) float64 {
	if height <= 0 {
		return 0
	}
	bottom := top + height
	if r.Height <= 0 {
		if r.Top >= top && r.Top < bottom {
			return 1
		}
		return 0
	}
	overlap := min(bottom, r.Bottom()) - max(top, r.Top)
	if overlap <= 0 {
		return 0
	}
	return overlap / r.Height
}
