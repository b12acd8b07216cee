package motion

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func newTestObserver() (*Observer, *page, *testingclock.FakeClock) {
	clk := testingclock.NewFakeClock(epoch)
	pg := newPage(5000, 1000)
	return NewObserver(pg, pg, clk, discardLogger()), pg, clk
}

func TestIntersectionRatio(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		top  float64
		rect Rect
		want float64
	}{
		{name: "below viewport", top: 0, rect: Rect{Top: 1200, Height: 200}, want: 0},
		{name: "touching bottom edge", top: 0, rect: Rect{Top: 1000, Height: 200}, want: 0},
		{name: "half in", top: 0, rect: Rect{Top: 900, Height: 200}, want: 0.5},
		{name: "fully in", top: 0, rect: Rect{Top: 100, Height: 200}, want: 1},
		{name: "taller than viewport", top: 500, rect: Rect{Top: 0, Height: 4000}, want: 0.25},
		{name: "scrolled past", top: 2000, rect: Rect{Top: 100, Height: 200}, want: 0},
		{name: "zero height inside", top: 0, rect: Rect{Top: 10}, want: 1},
		{name: "zero height outside", top: 0, rect: Rect{Top: 1000}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, IntersectionRatio(tt.top, 1000, tt.rect), 1e-9)
		})
	}
}

func TestObserver_OneShotVisibility(t *testing.T) {
	t.Parallel()
	obs, pg, _ := newTestObserver()
	pg.elements["card"] = Rect{Top: 1500, Height: 200}

	tracker := obs.Observe("card")
	require.False(t, tracker.Visible())
	assert.NotEqual(t, uuid.Nil, tracker.Handle())

	// In, out, in, out: the flag only ever moves forward.
	var seen []bool
	for _, y := range []float64{0, 600, 0, 2500, 700, 0} {
		pg.scrollTo(y)
		obs.Evaluate()
		seen = append(seen, tracker.Visible())
	}
	assert.Equal(t, []bool{false, true, true, true, true, true}, seen)
	assert.Zero(t, obs.Observed(), "tracker deregisters after firing")
}

func TestObserver_Threshold(t *testing.T) {
	t.Parallel()
	obs, pg, _ := newTestObserver()
	pg.elements["card"] = Rect{Top: 950, Height: 200}

	// 50px of 200px visible: 25%.
	loose := obs.Observe("card", WithThreshold(0.2))
	strict := obs.Observe("card", WithThreshold(0.5))
	fallback := obs.Observe("card", WithThreshold(7))

	assert.True(t, loose.Visible())
	assert.False(t, strict.Visible())
	assert.True(t, fallback.Visible())
	assert.InDelta(t, DefaultVisibilityThreshold, fallback.Threshold(), 1e-9)

	pg.scrollTo(100)
	obs.Evaluate()
	assert.True(t, strict.Visible())
}

func TestObserver_ExtraConditions(t *testing.T) {
	t.Parallel()
	obs, pg, _ := newTestObserver()
	pg.elements["card"] = Rect{Top: 100, Height: 200}

	ready := false
	tracker := obs.Observe("card", WithCondition(func() bool { return ready }))
	assert.False(t, tracker.Visible())

	ready = true
	assert.Equal(t, 1, obs.Evaluate())
	assert.True(t, tracker.Visible())
}

func TestObserver_MissingElementNeverVisible(t *testing.T) {
	t.Parallel()
	obs, pg, _ := newTestObserver()

	tracker := obs.Observe("nowhere")
	for y := 0.0; y < 5000; y += 500 {
		pg.scrollTo(y)
		obs.Evaluate()
	}
	assert.False(t, tracker.Visible())

	tracker.Release()
	tracker.Release()
	assert.Zero(t, obs.Observed())
}

func TestObserver_ReleaseBeforeVisible(t *testing.T) {
	t.Parallel()
	obs, pg, _ := newTestObserver()
	pg.elements["card"] = Rect{Top: 3000, Height: 200}

	fired := false
	tracker := obs.Observe("card")
	tracker.OnVisible(func(time.Time) { fired = true })
	tracker.Release()

	pg.scrollTo(2800)
	obs.Evaluate()
	assert.False(t, tracker.Visible())
	assert.False(t, fired)
}

func TestObserver_OnVisibleTimestamps(t *testing.T) {
	t.Parallel()
	obs, pg, clk := newTestObserver()
	pg.elements["card"] = Rect{Top: 1500, Height: 200}

	tracker := obs.Observe("card")
	var at time.Time
	tracker.OnVisible(func(ts time.Time) { at = ts })

	clk.Step(3 * time.Second)
	pg.scrollTo(1000)
	obs.Evaluate()
	assert.Equal(t, epoch.Add(3*time.Second), at)

	// Late registration still hears about it.
	var late time.Time
	tracker.OnVisible(func(ts time.Time) { late = ts })
	assert.Equal(t, at, late)

	got, ok := tracker.VisibleAt()
	require.True(t, ok)
	assert.Equal(t, at, got)
}

func TestObserver_AttachFollowsPublisher(t *testing.T) {
	t.Parallel()
	loop, clk := newTestLoop()
	pg := newPage(5000, 1000)
	pg.elements["card"] = Rect{Top: 2000, Height: 300}
	pub := NewPublisher(loop, pg, pg, DefaultPublisherConfig(), discardLogger())
	obs := NewObserver(pg, pg, clk, discardLogger())
	require.NoError(t, pub.Init())

	sub := obs.Attach(pub)
	tracker := obs.Observe("card")

	pg.scrollTo(1200)
	pub.HandleScroll()
	assert.False(t, tracker.Visible(), "nothing happens until the frame runs")

	step(loop, clk, 16*time.Millisecond)
	assert.True(t, tracker.Visible())

	sub.Unsubscribe()
	assert.Zero(t, pub.SubscriberCount())
}
