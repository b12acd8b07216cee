package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrambler_ResolvesLeftToRight(t *testing.T) {
	t.Parallel()
	s := NewScrambler("ab c", WithRand(func(int) int { return 0 }))

	assert.Equal(t, "!! !", s.Frame(0))
	assert.Equal(t, "a! !", s.Frame(3))
	assert.Equal(t, "ab !", s.Frame(6))
	assert.Equal(t, "ab c", s.Frame(12))
	assert.Equal(t, "ab c", s.Frame(500))
}

func TestScrambler_Frames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		target string
		opts   []ScrambleOption
		want   int
	}{
		{name: "default rate", target: "Hello world", want: 33},
		{name: "one per frame", target: "Wonder", opts: []ScrambleOption{WithRate(1)}, want: 6},
		{name: "two per frame", target: "Life!", opts: []ScrambleOption{WithRate(2)}, want: 3},
		{name: "empty", target: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewScrambler(tt.target, tt.opts...)
			n := s.Frames()
			assert.Equal(t, tt.want, n)
			assert.True(t, s.Done(n))
			if n > 0 {
				assert.False(t, s.Done(n-1))
			}
			assert.Equal(t, tt.target, s.Frame(n))
		})
	}
}

func TestScrambler_Glyphs(t *testing.T) {
	t.Parallel()
	s := NewScrambler("xyz", WithGlyphs("#"))
	assert.Equal(t, "###", s.Frame(0))
	assert.Equal(t, "xyz", s.Target())
}
