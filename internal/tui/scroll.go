package tui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// smoothScroll eases the viewport towards a target row with a critically
// damped spring, one step per frame.
type smoothScroll struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

func newSmoothScroll(fps int) *smoothScroll {
	return &smoothScroll{spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 8.0, 1.0)}
}

// Start begins easing from row from to row to.
func (s *smoothScroll) Start(from, to int) {
	if !s.active {
		s.pos = float64(from)
		s.vel = 0
	}
	s.target = float64(to)
	s.active = true
}

// Stop abandons the current ease, e.g. when the user scrolls by hand.
func (s *smoothScroll) Stop() { s.active = false }

// Active reports whether an ease is running
func (s *smoothScroll) Active() bool { return s.active }

// Target returns the row being eased to
func (s *smoothScroll) Target() int { return int(s.target) }

// Step advances one frame and returns the row to show.
func (s *smoothScroll) Step() int {
	if !s.active {
		return int(math.Round(s.pos))
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos, s.vel = s.target, 0
		s.active = false
	}
	return int(math.Round(s.pos))
}
