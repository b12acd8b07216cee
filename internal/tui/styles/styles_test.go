package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFade(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Gold, Fade(Gold, 1))
	assert.Equal(t, Gold, Fade(Gold, 2))
	assert.Equal(t, lipgloss.Color("#0a0a0f"), Fade(Gold, 0))
	assert.Equal(t, lipgloss.Color("#0a0a0f"), Fade(Gold, -1))

	mid := Fade(Gold, 0.5)
	assert.NotEqual(t, Gold, mid)
	assert.NotEqual(t, Void, mid)
}

func TestWrap(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		[]string{"Dance, Tai", "Chi, and", "natural"},
		Wrap("Dance, Tai Chi, and natural", 10))
	assert.Nil(t, Wrap("anything", 0))
	assert.Empty(t, Wrap("   ", 10))
	assert.Equal(t, []string{"Orthobiosis"}, Wrap("Orthobiosis", 4))
}

func TestTruncateAndPad(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Wonder", Truncate("Wonder", 10))
	assert.Equal(t, "Wond…", Truncate("Wonder", 5))
	assert.Equal(t, "", Truncate("Wonder", 0))
	assert.Equal(t, "Life  ", Pad("Life", 6))
	assert.Equal(t, "Entelechy", Pad("Entelechy", 3))
}
