package motion

import (
	"math/rand/v2"
	"time"
)

// DefaultLoaderInterval is the pause between loader steps.
const DefaultLoaderInterval = 120 * time.Millisecond

// Loader is the loading screen's progress bar. It creeps towards 100% in
// random steps and reports completion once.
type Loader struct {
	loop     *Loop
	interval time.Duration
	step     func() float64

	progress float64
	timer    TimerID
	done     bool

	onProgress []func(percent float64)
	onDone     []func()
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithStepInterval sets the pause between steps.
func WithStepInterval(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithStepSource replaces the random step size, in percentage points.
func WithStepSource(step func() float64) LoaderOption {
	return func(l *Loader) {
		if step != nil {
			l.step = step
		}
	}
}

// NewLoader creates a loader that is idle until Start.
func NewLoader(loop *Loop, opts ...LoaderOption) *Loader {
	l := &Loader{
		loop:     loop,
		interval: DefaultLoaderInterval,
		step:     func() float64 { return 5 + rand.Float64()*15 },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start begins stepping. It does nothing once running or finished.
func (l *Loader) Start() {
	if l.done || l.timer != 0 {
		return
	}
	l.timer = l.loop.Every(l.interval, l.tick)
}

// Cancel stops stepping without completing.
func (l *Loader) Cancel() {
	if l.timer == 0 {
		return
	}
	l.loop.Cancel(l.timer)
	l.timer = 0
}

// Finish jumps to 100% and completes.
func (l *Loader) Finish() {
	if l.done {
		return
	}
	l.progress = 100
	l.complete()
}

// OnProgress registers fn to run after every step.
func (l *Loader) OnProgress(fn func(percent float64)) {
	l.onProgress = append(l.onProgress, fn)
}

// OnDone registers fn to run when the loader reaches 100%.
func (l *Loader) OnDone(fn func()) {
	l.onDone = append(l.onDone, fn)
}

// Progress returns the current percentage.
func (l *Loader) Progress() float64 { return l.progress }

// Done reports whether the loader has completed.
func (l *Loader) Done() bool { return l.done }

// Running reports whether the loader is stepping.
func (l *Loader) Running() bool { return l.timer != 0 }

func (l *Loader) tick() {
	if step := l.step(); step > 0 {
		l.progress += step
	}
	if l.progress >= 100 {
		l.progress = 100
		l.complete()
		return
	}
	for _, fn := range l.onProgress {
		fn(l.progress)
	}
}

func (l *Loader) complete() {
	l.Cancel()
	l.done = true
	for _, fn := range l.onProgress {
		fn(l.progress)
	}
	for _, fn := range l.onDone {
		fn()
	}
}
