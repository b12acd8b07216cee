package motion

import (
	"math"
	"math/rand/v2"
	"strings"
	"unicode"
)

// DefaultGlyphs are drawn for runes that have not resolved yet.
const DefaultGlyphs = "!<>-_\\/[]{}=+*^?#~"

// Scrambler decodes a string from noise, left to right, one frame at a
// time.
type Scrambler struct {
	target []rune
	glyphs []rune
	rate   float64
	intn   func(n int) int
}

// ScrambleOption configures a Scrambler.
type ScrambleOption func(*Scrambler)

// WithGlyphs sets the noise alphabet.
func WithGlyphs(glyphs string) ScrambleOption {
	return func(s *Scrambler) {
		if glyphs != "" {
			s.glyphs = []rune(glyphs)
		}
	}
}

// WithRate sets how many runes resolve per frame.
func WithRate(runesPerFrame float64) ScrambleOption {
	return func(s *Scrambler) {
		if runesPerFrame > 0 {
			s.rate = runesPerFrame
		}
	}
}

// WithRand replaces the noise source; intn must return a value in [0, n).
func WithRand(intn func(n int) int) ScrambleOption {
	return func(s *Scrambler) {
		if intn != nil {
			s.intn = intn
		}
	}
}

// NewScrambler creates a scrambler for target.
func NewScrambler(target string, opts ...ScrambleOption) *Scrambler {
	s := &Scrambler{
		target: []rune(target),
		glyphs: []rune(DefaultGlyphs),
		rate:   1.0 / 3,
		intn:   rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Target returns the decoded text.
func (s *Scrambler) Target() string { return string(s.target) }

// Frame renders frame n. Whitespace is never scrambled.
func (s *Scrambler) Frame(n int) string {
	resolved := s.resolved(n)
	if resolved >= len(s.target) {
		return string(s.target)
	}
	var b strings.Builder
	for i, r := range s.target {
		if i < resolved || unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(s.glyphs[s.intn(len(s.glyphs))])
	}
	return b.String()
}

// Done reports whether frame n shows the decoded text.
func (s *Scrambler) Done(n int) bool {
	return s.resolved(n) >= len(s.target)
}

// Frames returns how many frames a full decode takes.
func (s *Scrambler) Frames() int {
	n := int(math.Ceil(float64(len(s.target)) / s.rate))
	for n > 0 && s.resolved(n-1) >= len(s.target) {
		n--
	}
	for s.resolved(n) < len(s.target) {
		n++
	}
	return n
}

func (s *Scrambler) resolved(n int) int {
	if n <= 0 {
		return 0
	}
	// Nudge so 1/3-style rates land on whole runes.
	return int(float64(n)*s.rate + 1e-9)
}
