package motion

import (
	"fmt"
	"time"
)

// DefaultCycleInterval is how long each item stays up before the next.
const DefaultCycleInterval = 8 * time.Second

// Presenter rotates through a fixed list of items on a timer. It can be
// paused, resumed and moved directly to an item.
//
// The presenter owns at most one timer on its Loop. Mount and Resume arm
// it, Pause and Unmount cancel it, and repeated calls are no-ops, so any
// amount of pause/resume toggling leaves exactly one timer or none.
type Presenter[T any] struct {
	loop     *Loop
	items    []T
	interval time.Duration

	active  int
	paused  bool
	mounted bool
	timer   TimerID

	onChange []func(index int)
}

// PresenterOption configures a Presenter.
type PresenterOption[T any] func(*Presenter[T])

// StartAt sets the initial index. Out-of-range values are ignored.
func StartAt[T any](index int) PresenterOption[T] {
	return func(p *Presenter[T]) {
		if index >= 0 && index < len(p.items) {
			p.active = index
		}
	}
}

// NewPresenter creates a presenter over items. A non-positive interval
// means DefaultCycleInterval.
func NewPresenter[T any](loop *Loop, items []T, interval time.Duration, opts ...PresenterOption[T]) (*Presenter[T], error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if interval <= 0 {
		interval = DefaultCycleInterval
	}
	p := &Presenter[T]{
		loop:     loop,
		items:    append([]T(nil), items...),
		interval: interval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Mount starts automatic rotation unless paused.
func (p *Presenter[T]) Mount() {
	if p.mounted {
		return
	}
	p.mounted = true
	p.arm()
}

// Unmount stops automatic rotation and releases the timer.
func (p *Presenter[T]) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	p.disarm()
}

// Advance moves to the next item, wrapping at the end.
func (p *Presenter[T]) Advance() {
	p.set((p.active + 1) % len(p.items))
}

// Select moves to item i. Out-of-range indices are rejected and leave the
// presenter unchanged. The rotation timer keeps its cadence.
func (p *Presenter[T]) Select(i int) error {
	if i < 0 || i >= len(p.items) {
		return fmt.Errorf("select %d of %d: %w", i, len(p.items), ErrIndexOutOfRange)
	}
	p.set(i)
	return nil
}

// Pause stops automatic rotation. Manual Select and Advance still work.
func (p *Presenter[T]) Pause() {
	if p.paused {
		return
	}
	p.paused = true
	p.disarm()
}

// Resume restarts automatic rotation with a full interval.
func (p *Presenter[T]) Resume() {
	if !p.paused {
		return
	}
	p.paused = false
	p.arm()
}

// OnChange registers fn to run whenever the active index changes.
func (p *Presenter[T]) OnChange(fn func(index int)) {
	p.onChange = append(p.onChange, fn)
}

// Active returns the active index.
func (p *Presenter[T]) Active() int { return p.active }

// Current returns the active item.
func (p *Presenter[T]) Current() T { return p.items[p.active] }

// Items returns a copy of the items.
func (p *Presenter[T]) Items() []T { return append([]T(nil), p.items...) }

// Len returns the number of items.
func (p *Presenter[T]) Len() int { return len(p.items) }

// Paused reports whether automatic rotation is paused.
func (p *Presenter[T]) Paused() bool { return p.paused }

// Mounted reports whether the presenter is mounted.
func (p *Presenter[T]) Mounted() bool { return p.mounted }

// Interval returns the rotation interval.
func (p *Presenter[T]) Interval() time.Duration { return p.interval }

// TimerActive reports whether the rotation timer is armed.
func (p *Presenter[T]) TimerActive() bool { return p.timer != 0 }

func (p *Presenter[T]) set(i int) {
	if i == p.active {
		return
	}
	p.active = i
	for _, fn := range p.onChange {
		fn(i)
	}
}

func (p *Presenter[T]) arm() {
	if !p.mounted || p.paused || p.timer != 0 {
		return
	}
	p.timer = p.loop.Every(p.interval, p.Advance)
}

func (p *Presenter[T]) disarm() {
	if p.timer == 0 {
		return
	}
	p.loop.Cancel(p.timer)
	p.timer = 0
}
