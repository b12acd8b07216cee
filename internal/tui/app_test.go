package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/whole/internal/config"
	"github.com/mmcdole/whole/internal/domain"
	wlog "github.com/mmcdole/whole/internal/log"
	"github.com/mmcdole/whole/internal/motion"
	"github.com/mmcdole/whole/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

const frameStep = 16 * time.Millisecond

func newTestModel(t *testing.T, skipLoader bool) (Model, *testingclock.FakeClock) {
	t.Helper()
	clk := testingclock.NewFakeClock(epoch)
	m, err := NewModel(Options{
		Motion:     config.DefaultConfig().Motion,
		SkipLoader: skipLoader,
		Clock:      clk,
		Logger:     wlog.NullLogger(),
		Seed:       7,
	})
	require.NoError(t, err)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, clk
}

// newMountedModel returns a model past its first frame
func newMountedModel(t *testing.T) (Model, *testingclock.FakeClock) {
	t.Helper()
	m, clk := newTestModel(t, true)
	m = send(t, m, FrameMsg{At: clk.Now()})
	require.Equal(t, StateBrowsing, m.State)
	return m, clk
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func frame(t *testing.T, m Model, clk *testingclock.FakeClock, d time.Duration) Model {
	t.Helper()
	clk.Step(d)
	return send(t, m, FrameMsg{At: clk.Now()})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_MountsOnFirstFrame(t *testing.T) {
	m, _ := newTestModel(t, true)
	assert.Equal(t, StateLoading, m.State)
	assert.False(t, m.Nav().Mounted())

	m = send(t, m, FrameMsg{At: epoch})
	assert.Equal(t, StateBrowsing, m.State)
	assert.True(t, m.Nav().Mounted())
	assert.True(t, m.Publisher().Initialized())
	assert.Positive(t, m.Document().Rows())
	assert.Empty(t, m.Nav().Active(), "no section is active at the top")
	assert.Zero(t, m.Progress())
}

func TestModel_AnyKeySkipsLoader(t *testing.T) {
	m, clk := newTestModel(t, false)
	m.Init()
	require.Equal(t, StateLoading, m.State)

	m = send(t, m, runes("x"))
	m = frame(t, m, clk, frameStep)
	assert.Equal(t, StateBrowsing, m.State)
}

func TestModel_LoaderMountsWhenDone(t *testing.T) {
	m, clk := newTestModel(t, false)
	m.Init()

	for i := 0; i < 200 && m.State == StateLoading; i++ {
		m = frame(t, m, clk, 100*time.Millisecond)
	}
	assert.Equal(t, StateBrowsing, m.State)
}

func TestModel_ScrollUpdatesActiveSection(t *testing.T) {
	m, clk := newMountedModel(t)

	top, _, ok := m.Document().SectionSpan(domain.AnchorValues)
	require.True(t, ok)
	m.scrollTo(top)
	assert.Empty(t, m.Nav().Active(), "published on the next frame only")

	m = frame(t, m, clk, frameStep)
	assert.Equal(t, domain.AnchorValues, m.Nav().Active())
	assert.True(t, m.Nav().Compact())
	assert.Positive(t, m.Progress())

	m.scrollTo(0)
	m = frame(t, m, clk, frameStep)
	assert.Empty(t, m.Nav().Active())
	assert.False(t, m.Nav().Compact())
}

func TestModel_PageDownScrollsOneScreen(t *testing.T) {
	m, _ := newMountedModel(t)
	height := m.stage.viewport.Height

	m = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, height, m.ScrollRow())

	m = send(t, m, runes("k"))
	assert.Equal(t, height-1, m.ScrollRow())
}

func TestModel_WheelScrolls(t *testing.T) {
	m, _ := newMountedModel(t)

	m = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, wheelRows, m.ScrollRow())

	m = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Zero(t, m.ScrollRow())
}

func TestModel_NextSectionGlides(t *testing.T) {
	m, clk := newMountedModel(t)
	top, _, ok := m.Document().SectionSpan(domain.AnchorValues)
	require.True(t, ok)

	m = send(t, m, runes("n"))
	require.True(t, m.scroll.Active())
	assert.Equal(t, top, m.scroll.Target())

	for i := 0; i < 300 && m.scroll.Active(); i++ {
		m = frame(t, m, clk, frameStep)
	}
	assert.Equal(t, top, m.ScrollRow())
	m = frame(t, m, clk, frameStep)
	assert.Equal(t, domain.AnchorValues, m.Nav().Active())
}

func TestModel_CarouselRotates(t *testing.T) {
	m, clk := newMountedModel(t)
	require.Zero(t, m.Carousel().Active())

	m = frame(t, m, clk, 8*time.Second)
	assert.Equal(t, 1, m.Carousel().Active())

	m = send(t, m, runes("p"))
	m = frame(t, m, clk, 8*time.Second)
	assert.Equal(t, 1, m.Carousel().Active(), "held carousel stays put")

	m = send(t, m, runes("3"))
	assert.Equal(t, 2, m.Carousel().Active())

	send(t, m, runes("9"))
	assert.Equal(t, 2, m.Carousel().Active())
}

func TestModel_JumpToValue(t *testing.T) {
	m, _ := newMountedModel(t)

	m = send(t, m, runes("/"))
	require.Equal(t, StateJump, m.State)

	m = send(t, m, runes("orthobiosis"))
	require.NotEmpty(t, m.Jump.Results())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateBrowsing, m.State)
	assert.False(t, m.Jump.IsVisible())

	top, _, ok := m.Document().SectionSpan(domain.AnchorValues)
	require.True(t, ok)
	assert.True(t, m.scroll.Active())
	assert.Equal(t, top, m.scroll.Target())
}

func TestModel_JumpEscapeReturns(t *testing.T) {
	m, _ := newMountedModel(t)

	m = send(t, m, runes("/"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateBrowsing, m.State)
	assert.Zero(t, m.ScrollRow())
}

func TestModel_HelpToggles(t *testing.T) {
	m, _ := newMountedModel(t)

	m = send(t, m, runes("?"))
	assert.Equal(t, StateHelp, m.State)
	assert.Contains(t, m.View(), "next section")

	m = send(t, m, runes("?"))
	assert.Equal(t, StateBrowsing, m.State)
}

func TestModel_ViewShowsNavAndFooter(t *testing.T) {
	m, _ := newMountedModel(t)
	view := m.View()
	assert.Contains(t, view, "Values")
	assert.Contains(t, view, "Community")
	assert.Contains(t, view, "0%")
}

func TestModel_QuitReleasesEverything(t *testing.T) {
	m, clk := newMountedModel(t)
	m.scrollBy(10)
	require.Positive(t, m.Publisher().SubscriberCount())
	require.Positive(t, m.Loop().Pending())

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	m = next.(Model)

	assert.Zero(t, m.Publisher().SubscriberCount())
	assert.Zero(t, m.Loop().Pending())
	assert.Zero(t, m.Loop().RunDue())
	clk.Step(time.Minute)
	assert.Zero(t, m.Loop().RunDue())
}

func TestModel_RepeatedMountUnmount(t *testing.T) {
	m, _ := newMountedModel(t)

	for i := 0; i < 100; i++ {
		m.unmount()
		assert.Zero(t, m.Publisher().SubscriberCount())
		assert.Zero(t, m.Loop().Pending())
		m.mount()
	}
	assert.True(t, m.Nav().Mounted())
	assert.Equal(t, 1, m.Loop().Pending(), "only the carousel timer is armed")

	m.unmount()
	assert.Zero(t, m.Publisher().SubscriberCount())
	assert.Zero(t, m.Loop().Pending())
}

func TestApplicationState_String(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "browsing", StateBrowsing.String())
	assert.Equal(t, "jump", StateJump.String())
	assert.Equal(t, "help", StateHelp.String())
}

// scrollThrough walks the viewport from top to bottom a row at a time.
func scrollThrough(t *testing.T, m Model, clk *testingclock.FakeClock) Model {
	t.Helper()
	for row := 0; row <= m.maxRow(); row++ {
		m.scrollTo(row)
		m = frame(t, m, clk, frameStep)
		m = frame(t, m, clk, frameStep)
	}
	return m
}

func hiddenReveals(m Model) int {
	hidden := 0
	for _, r := range m.Document().Reveals() {
		if !r.Triggered() {
			hidden++
		}
	}
	return hidden
}

func TestModel_RemountRevealsOnScroll(t *testing.T) {
	m, clk := newMountedModel(t)
	require.Positive(t, hiddenReveals(m), "blocks below the fold start hidden")

	m.unmount()
	assert.Zero(t, m.observer.Observed())
	m.mount()
	assert.Equal(t, hiddenReveals(m), m.observer.Observed())

	m = scrollThrough(t, m, clk)
	assert.Zero(t, hiddenReveals(m))
	assert.Zero(t, m.observer.Observed())
}

func TestModel_RemountKeepsRevealedBlocks(t *testing.T) {
	m, clk := newMountedModel(t)
	m = frame(t, m, clk, 2*time.Second)

	hero := m.Document().Reveals()[0]
	require.True(t, hero.Triggered())

	m.unmount()
	m.mount()
	assert.Same(t, hero, m.Document().Reveals()[0])
	assert.Equal(t, motion.PhaseRevealed, hero.Phase(clk.Now()))
}

func TestModel_OverlaysReleaseCarouselHover(t *testing.T) {
	for _, k := range []string{"?", "/"} {
		t.Run(k, func(t *testing.T) {
			m, _ := newMountedModel(t)
			m.carousel.SetHover(true)
			require.True(t, m.Carousel().Paused())

			m = send(t, m, runes(k))
			assert.NotEqual(t, StateBrowsing, m.State)
			assert.False(t, m.Carousel().Paused())
		})
	}
}

func TestModel_HelpUsesThemeStyles(t *testing.T) {
	m, _ := newMountedModel(t)
	assert.Equal(t, styles.HelpKeyStyle, m.help.Styles.FullKey)
	assert.Equal(t, styles.HelpDescStyle, m.help.Styles.FullDesc)
	assert.Equal(t, styles.HelpKeyStyle, m.help.Styles.ShortKey)
	assert.Equal(t, styles.HelpDescStyle, m.help.Styles.ShortDesc)
}
