package motion

// Subscription is the handle returned by every Subscribe call.
type Subscription struct {
	cancel func()
}

// Unsubscribe detaches the subscriber. Calling it more than once, or on a
// nil subscription, is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	cancel := s.cancel
	s.cancel = nil
	cancel()
}

// listeners keeps callbacks in registration order.
type listeners[F any] struct {
	seq     uint64
	entries []listener[F]
}

type listener[F any] struct {
	id uint64
	fn F
}

func (l *listeners[F]) add(fn F) uint64 {
	l.seq++
	l.entries = append(l.entries, listener[F]{id: l.seq, fn: fn})
	return l.seq
}

func (l *listeners[F]) remove(id uint64) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// snapshot returns the current callbacks so a callback may unsubscribe
// itself or others while the list is being walked.
func (l *listeners[F]) snapshot() []listener[F] {
	out := make([]listener[F], len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *listeners[F]) len() int { return len(l.entries) }

func (l *listeners[F]) clear() {
	l.entries = nil
}

// each calls fn for every listener in registration order. Listeners removed
// by an earlier callback in the same walk are skipped.
func (l *listeners[F]) each(fn func(F)) {
	for _, e := range l.snapshot() {
		if !l.contains(e.id) {
			continue
		}
		fn(e.fn)
	}
}

func (l *listeners[F]) contains(id uint64) bool {
	for _, e := range l.entries {
		if e.id == id {
			return true
		}
	}
	return false
}
