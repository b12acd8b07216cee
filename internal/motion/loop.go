package motion

import (
	"container/heap"
	"time"

	"k8s.io/utils/clock"
)

// TimerID identifies a timer scheduled on a Loop. The zero value never
// refers to a live timer.
type TimerID uint64

// Loop is a timer queue confined to its host's update goroutine.
//
// Nothing fires on its own: the host calls RunDue once per frame and every
// due callback runs synchronously inside that call. This keeps interval
// timers, frame coalescing and reveal transitions on one logical thread,
// the same way a browser delivers them on its main thread.
type Loop struct {
	clock  clock.PassiveClock
	seq    uint64
	queue  timerQueue
	timers map[TimerID]*timer
}

type timer struct {
	id       TimerID
	deadline time.Time
	interval time.Duration // 0 for one-shot timers
	seq      uint64        // scheduling order, breaks deadline ties
	fn       func()
	index    int // position in the heap, -1 once removed
}

// NewLoop creates a loop that reads time from c. A nil clock means the
// wall clock.
func NewLoop(c clock.PassiveClock) *Loop {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Loop{
		clock:  c,
		timers: make(map[TimerID]*timer),
	}
}

// Now returns the loop's current time.
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// Clock returns the time source the loop reads from.
func (l *Loop) Clock() clock.PassiveClock {
	return l.clock
}

// After schedules fn to run once, d from now.
func (l *Loop) After(d time.Duration, fn func()) TimerID {
	return l.schedule(d, 0, fn)
}

// Every schedules fn to run every d, starting d from now. Non-positive
// intervals are treated as one millisecond.
func (l *Loop) Every(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		d = time.Millisecond
	}
	return l.schedule(d, d, fn)
}

func (l *Loop) schedule(d, interval time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &timer{
		id:       TimerID(l.seq),
		deadline: l.clock.Now().Add(d),
		interval: interval,
		seq:      l.seq,
		fn:       fn,
	}
	heap.Push(&l.queue, t)
	l.timers[t.id] = t
	return t.id
}

// Cancel stops a timer. It reports whether the timer was still live.
func (l *Loop) Cancel(id TimerID) bool {
	t, ok := l.timers[id]
	if !ok {
		return false
	}
	delete(l.timers, id)
	if t.index >= 0 {
		heap.Remove(&l.queue, t.index)
	}
	return true
}

// Pending returns the number of live timers.
func (l *Loop) Pending() int {
	return len(l.timers)
}

// NextDeadline returns the earliest deadline among live timers.
func (l *Loop) NextDeadline() (time.Time, bool) {
	if len(l.queue) == 0 {
		return time.Time{}, false
	}
	return l.queue[0].deadline, true
}

// RunDue fires every timer whose deadline has passed, earliest first, and
// returns how many callbacks ran. Interval timers fire at most once per call
// and are re-armed on their own cadence, skipping periods that were missed.
// Timers scheduled by a callback are not considered until the next call.
func (l *Loop) RunDue() int {
	now := l.clock.Now()
	var due []*timer
	for len(l.queue) > 0 && !l.queue[0].deadline.After(now) {
		due = append(due, heap.Pop(&l.queue).(*timer))
	}

	// Re-arm intervals before running anything so a callback that cancels
	// its own timer sees it live.
	for _, t := range due {
		if t.interval <= 0 {
			continue
		}
		next := t.deadline.Add(t.interval)
		for !next.After(now) {
			next = next.Add(t.interval)
		}
		t.deadline = next
		heap.Push(&l.queue, t)
	}

	fired := 0
	for _, t := range due {
		if _, live := l.timers[t.id]; !live {
			continue
		}
		if t.interval <= 0 {
			delete(l.timers, t.id)
		}
		t.fn()
		fired++
	}
	return fired
}

// timerQueue orders timers by deadline, then by scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
