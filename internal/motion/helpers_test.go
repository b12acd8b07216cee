package motion

import (
	"io"
	"log/slog"
	"time"

	testingclock "k8s.io/utils/clock/testing"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLoop() (*Loop, *testingclock.FakeClock) {
	clk := testingclock.NewFakeClock(epoch)
	return NewLoop(clk), clk
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// page is a fake viewport with mutable geometry.
type page struct {
	metrics  Metrics
	sections map[string]float64
	elements map[string]Rect
}

func newPage(docHeight, viewHeight float64) *page {
	return &page{
		metrics:  Metrics{DocumentHeight: docHeight, ViewportHeight: viewHeight},
		sections: make(map[string]float64),
		elements: make(map[string]Rect),
	}
}

func (p *page) Metrics() Metrics { return p.metrics }

func (p *page) OffsetTop(anchorID string) (float64, bool) {
	top, ok := p.sections[anchorID]
	return top, ok
}

func (p *page) Bounds(elementID string) (Rect, bool) {
	r, ok := p.elements[elementID]
	return r, ok
}

func (p *page) scrollTo(y float64) { p.metrics.ScrollY = y }

// step advances the clock and runs whatever became due.
func step(loop *Loop, clk *testingclock.FakeClock, d time.Duration) int {
	clk.Step(d)
	return loop.RunDue()
}
