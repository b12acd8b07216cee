package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReveal_DelayOrdering(t *testing.T) {
	t.Parallel()
	obs, pg, clk := newTestObserver()
	pg.elements["values"] = Rect{Top: 1200, Height: 400}

	tracker := obs.Observe("values")
	first := NewReveal(tracker, 0, clk)
	second := NewReveal(tracker, 200*time.Millisecond, clk)

	assert.Equal(t, PhaseHidden, first.Phase(clk.Now()))
	assert.Equal(t, PhaseHidden, second.Phase(clk.Now()))

	pg.scrollTo(600)
	obs.Evaluate()

	clk.Step(100 * time.Millisecond)
	assert.Equal(t, PhaseRevealing, first.Phase(clk.Now()))
	assert.Equal(t, PhaseHidden, second.Phase(clk.Now()))

	clk.Step(time.Second)
	assert.Equal(t, PhaseRevealed, first.Phase(clk.Now()))
	assert.Equal(t, PhaseRevealed, second.Phase(clk.Now()))

	firstDone, ok := first.RevealedAt()
	require.True(t, ok)
	secondDone, ok := second.RevealedAt()
	require.True(t, ok)
	assert.True(t, secondDone.After(firstDone))
	assert.Equal(t, 200*time.Millisecond, secondDone.Sub(firstDone))
}

func TestReveal_NeverHidesAgain(t *testing.T) {
	t.Parallel()
	obs, pg, clk := newTestObserver()
	pg.elements["card"] = Rect{Top: 100, Height: 100}

	r := NewReveal(obs.Observe("card"), 0, clk, WithDuration(500*time.Millisecond))
	clk.Step(time.Second)
	require.Equal(t, PhaseRevealed, r.Phase(clk.Now()))

	pg.scrollTo(4000)
	obs.Evaluate()
	clk.Step(time.Second)
	assert.Equal(t, PhaseRevealed, r.Phase(clk.Now()))
	assert.InDelta(t, 1.0, r.Opacity(clk.Now()), 1e-9)
	assert.Zero(t, r.OffsetY(clk.Now()))
}

func TestReveal_ProgressCurve(t *testing.T) {
	t.Parallel()
	obs, pg, clk := newTestObserver()
	pg.elements["card"] = Rect{Top: 100, Height: 100}

	r := NewReveal(obs.Observe("card"), 0, clk,
		WithDuration(time.Second),
		WithOffset(40))
	start, ok := r.StartsAt()
	require.True(t, ok)

	assert.Zero(t, r.Progress(start.Add(-time.Millisecond)))
	assert.InDelta(t, 40.0, r.OffsetY(start), 1e-9)

	half := r.Progress(start.Add(500 * time.Millisecond))
	assert.InDelta(t, 0.875, half, 1e-9)
	assert.InDelta(t, 5.0, r.OffsetY(start.Add(500*time.Millisecond)), 1e-9)

	assert.InDelta(t, 1.0, r.Progress(start.Add(time.Second)), 1e-9)
}

func TestReveal_UntriggeredStaysHidden(t *testing.T) {
	t.Parallel()
	obs, _, clk := newTestObserver()

	r := NewReveal(obs.Observe("missing"), 0, clk)
	clk.Step(time.Minute)
	assert.Equal(t, PhaseHidden, r.Phase(clk.Now()))
	assert.False(t, r.Triggered())
	_, ok := r.RevealedAt()
	assert.False(t, ok)

	r.Release()
	assert.Zero(t, obs.Observed())
}

func TestRevealPhase_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hidden", PhaseHidden.String())
	assert.Equal(t, "revealing", PhaseRevealing.String())
	assert.Equal(t, "revealed", PhaseRevealed.String())
}
