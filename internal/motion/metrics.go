// Package motion coordinates scroll- and time-driven presentation state.
//
// It provides a scroll publisher with derived progress, parallax and
// active-section streams, one-shot visibility trackers, reveal transitions,
// a cycling presenter and a couple of small decorative state machines. All
// of it is confined to a single goroutine, the host's update loop, and
// advances only when the host delivers scroll events or runs the Loop.
package motion

import "errors"

var (
	// ErrAlreadyInitialized is returned by Init on a live publisher.
	ErrAlreadyInitialized = errors.New("publisher already initialized")
	// ErrNoItems is returned when a presenter is created without items.
	ErrNoItems = errors.New("presenter requires at least one item")
	// ErrIndexOutOfRange is returned by Select for indices outside the item list.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Metrics is a snapshot of the viewport's vertical geometry, in pixels.
type Metrics struct {
	ScrollY        float64
	DocumentHeight float64
	ViewportHeight float64
}

// Scrollable returns the distance the viewport can travel.
func (m Metrics) Scrollable() float64 {
	return m.DocumentHeight - m.ViewportHeight
}

// MetricsSource reads the current viewport geometry on demand.
type MetricsSource interface {
	Metrics() Metrics
}

// MetricsFunc adapts a function to MetricsSource.
type MetricsFunc func() Metrics

// Metrics implements MetricsSource.
func (f MetricsFunc) Metrics() Metrics { return f() }

// Rect is the vertical extent of an element within the document.
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the element's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Layout resolves a section anchor to the current top edge of that section.
type Layout interface {
	OffsetTop(anchorID string) (float64, bool)
}

// Geometry resolves an element to its current bounds.
type Geometry interface {
	Bounds(elementID string) (Rect, bool)
}
