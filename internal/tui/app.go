package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/whole/internal/config"
	"github.com/mmcdole/whole/internal/domain"
	"github.com/mmcdole/whole/internal/motion"
	"github.com/mmcdole/whole/internal/search"
	"github.com/mmcdole/whole/internal/tui/components"
	"github.com/mmcdole/whole/internal/tui/styles"
	"k8s.io/utils/clock"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateLoading ApplicationState = iota
	StateBrowsing
	StateJump
	StateHelp
)

func (s ApplicationState) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateJump:
		return "jump"
	case StateHelp:
		return "help"
	default:
		return "loading"
	}
}

// Vertical chrome
const (
	FooterHeight  = 1
	HeroSkyHeight = 3
)

// Options configures a Model
type Options struct {
	Page        *domain.Page
	Motion      config.MotionConfig
	RowHeightPx int
	SkipLoader  bool
	Clock       clock.PassiveClock // nil means the real clock
	Logger      *slog.Logger
	Seed        uint64 // starfield layout
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Dimensions
	Width  int
	Height int

	// Coordinator
	loop      *motion.Loop
	publisher *motion.Publisher
	observer  *motion.Observer
	loader    *motion.Loader
	subs      []*motion.Subscription

	// Page and its live parts
	page     *domain.Page
	doc      *Document
	stage    *stage
	nav      *components.NavBar
	backdrop *components.Backdrop
	carousel *components.Carousel
	hero     *components.Hero
	scroll   *smoothScroll

	// UI Components
	Loading components.LoadingScreen
	Jump    components.Jump
	help    help.Model
	bar     progress.Model

	// UI state
	StatusMsg   string
	StatusIsErr bool

	frameEvery time.Duration
	logger     *slog.Logger
}

// stage is the mutable state the coordinator reads between frames.
type stage struct {
	viewport viewport.Model
	doc      *Document
	rowPx    float64
	progress float64
	mounted  bool
}

// Metrics implements motion.MetricsSource in page pixels
func (s *stage) Metrics() motion.Metrics {
	if s.doc == nil {
		return motion.Metrics{}
	}
	return motion.Metrics{
		ScrollY:        float64(s.viewport.YOffset) * s.rowPx,
		DocumentHeight: float64(s.doc.Rows()) * s.rowPx,
		ViewportHeight: float64(s.viewport.Height) * s.rowPx,
	}
}

// OffsetTop implements motion.Layout
func (s *stage) OffsetTop(anchor string) (float64, bool) {
	if s.doc == nil {
		return 0, false
	}
	return s.doc.OffsetTop(anchor)
}

// Bounds implements motion.Geometry
func (s *stage) Bounds(id string) (motion.Rect, bool) {
	if s.doc == nil {
		return motion.Rect{}, false
	}
	return s.doc.Bounds(id)
}

// NewModel creates a new application model
func NewModel(opts Options) (Model, error) {
	if opts.Page == nil {
		opts.Page = domain.DefaultPage()
	}
	if err := opts.Page.Validate(); err != nil {
		return Model{}, fmt.Errorf("page: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.RowHeightPx <= 0 {
		opts.RowHeightPx = config.DefaultConfig().UI.RowHeightPx
	}
	mc := opts.Motion
	if mc.FrameInterval <= 0 {
		mc = config.DefaultConfig().Motion
	}
	policy, err := motion.ParseNoMatchPolicy(mc.NoMatchPolicy)
	if err != nil {
		return Model{}, err
	}
	rowPx := float64(opts.RowHeightPx)

	loop := motion.NewLoop(opts.Clock)
	st := &stage{viewport: viewport.New(0, 0), rowPx: rowPx}

	carousel, err := components.NewCarousel(loop, opts.Page.Quotes, mc.QuoteInterval)
	if err != nil {
		return Model{}, err
	}
	hero := components.NewHero(opts.Page.Hero)
	backdrop := components.NewBackdrop(opts.Seed, rowPx, mc.ParallaxSpeed)
	observer := motion.NewObserver(st, st, opts.Clock, opts.Logger)

	doc := newDocument(documentParts{
		page:          opts.Page,
		hero:          hero,
		carousel:      carousel,
		backdrop:      backdrop,
		observer:      observer,
		clock:         opts.Clock,
		threshold:     mc.VisibilityThreshold,
		delayStep:     mc.RevealDelayStep,
		revealFor:     mc.RevealDuration,
		revealOffset:  motion.DefaultRevealOffset,
		rowPx:         rowPx,
		heroSkyHeight: HeroSkyHeight,
	})
	st.doc = doc

	publisher := motion.NewPublisher(loop, st, st, motion.PublisherConfig{
		LookAhead:     mc.LookAheadPx,
		ActiveFloor:   mc.ActiveFloorPx,
		FrameInterval: mc.FrameInterval,
		ClampProgress: mc.ClampProgress,
		NoMatch:       policy,
	}, opts.Logger)

	var sections []motion.Section
	for _, s := range opts.Page.NavSections() {
		sections = append(sections, motion.Section{Name: s.NavName, AnchorID: s.Anchor})
	}
	publisher.RegisterSections(sections)

	loader := motion.NewLoader(loop)
	if opts.SkipLoader {
		loader.Finish()
	}

	bar := progress.New(
		progress.WithGradient(string(styles.GoldDim), string(styles.GoldBright)),
		progress.WithoutPercentage(),
	)

	return Model{
		State:      StateLoading,
		loop:       loop,
		publisher:  publisher,
		observer:   observer,
		loader:     loader,
		page:       opts.Page,
		doc:        doc,
		stage:      st,
		nav:        components.NewNavBar(opts.Page.Sections),
		backdrop:   backdrop,
		carousel:   carousel,
		hero:       hero,
		scroll:     newSmoothScroll(int(time.Second / mc.FrameInterval)),
		Loading:    components.NewLoadingScreen(loader),
		Jump:       components.NewJump(search.NewIndex(opts.Page, opts.Logger)),
		help:       newHelp(),
		bar:        bar,
		frameEvery: mc.FrameInterval,
		logger:     opts.Logger,
	}, nil
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	return h
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	m.loader.Start()
	return FrameCmd(m.frameEvery)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case FrameMsg:
		m.frame()
		return m, FrameCmd(m.frameEvery)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	if m.State == StateJump {
		var cmd tea.Cmd
		m.Jump, cmd, _ = m.Jump.Update(msg)
		return m, cmd
	}
	return m, nil
}

// frame runs one animation frame: eased scrolling, due timers, then the
// document is redrawn.
func (m *Model) frame() {
	if m.scroll.Active() {
		m.scrollTo(m.scroll.Step())
	}
	m.loop.RunDue()

	if m.State == StateLoading && m.loader.Done() {
		m.mount()
	}
	if m.stage.mounted {
		m.hero.Tick()
	}
	m.updateLayout()
	m.refresh()
}

// mount wires every component to the coordinator once the loader finishes.
func (m *Model) mount() {
	if m.stage.mounted {
		return
	}
	if err := m.publisher.Init(); err != nil {
		m.logger.Error("publisher init failed", "error", err)
		return
	}
	m.stage.mounted = true
	m.State = StateBrowsing

	m.nav.Mount(m.publisher)
	m.backdrop.Mount(m.publisher)
	m.carousel.Mount()
	m.hero.Start()
	m.doc.Mount()

	st := m.stage
	m.subs = append(m.subs,
		m.observer.Attach(m.publisher),
		m.publisher.SubscribeProgress(func(pct float64) { st.progress = pct }),
	)
	// Whatever is on screen at load reveals straight away.
	m.observer.Evaluate()
	m.logger.Info("page mounted", "sections", len(m.publisher.Sections()))
}

// unmount releases every subscription and timer. The coordinator is left
// with no live listeners.
func (m *Model) unmount() {
	if !m.stage.mounted {
		m.loader.Cancel()
		return
	}
	m.stage.mounted = false
	for _, s := range m.subs {
		s.Unsubscribe()
	}
	m.subs = nil
	m.nav.Unmount()
	m.backdrop.Unmount()
	m.carousel.Unmount()
	m.doc.Release()
	m.publisher.Teardown()
	m.logger.Info("page unmounted", "timers", m.loop.Pending())
}

// refresh redraws the document into the viewport
func (m *Model) refresh() {
	if !m.Ready || m.doc.Rows() == 0 {
		return
	}
	lines := m.doc.Render(m.loop.Now())
	m.stage.viewport.SetContent(strings.Join(lines, "\n"))
}

// maxRow is the last row the viewport can start at
func (m *Model) maxRow() int {
	return max(m.doc.Rows()-m.stage.viewport.Height, 0)
}

// scrollTo moves the viewport to row and reports the scroll
func (m *Model) scrollTo(row int) {
	row = min(max(row, 0), m.maxRow())
	if row == m.stage.viewport.YOffset {
		return
	}
	m.stage.viewport.SetYOffset(row)
	m.publisher.HandleScroll()
}

// scrollBy moves the viewport by delta rows, cancelling any ease
func (m *Model) scrollBy(delta int) {
	m.scroll.Stop()
	m.scrollTo(m.stage.viewport.YOffset + delta)
}

// glideTo eases the viewport to the top of a section
func (m *Model) glideTo(anchor string) bool {
	top, _, ok := m.doc.SectionSpan(anchor)
	if !ok {
		return false
	}
	m.scroll.Start(m.stage.viewport.YOffset, min(top, m.maxRow()))
	return true
}

// sectionStep returns the anchor n sections away from the one at the top
// of the viewport.
func (m *Model) sectionStep(n int) (string, bool) {
	row := m.stage.viewport.YOffset
	if m.scroll.Active() {
		row = m.scroll.Target()
	}
	current := 0
	for i, s := range m.page.Sections {
		top, _, ok := m.doc.SectionSpan(s.Anchor)
		if ok && top <= row {
			current = i
		}
	}
	next := current + n
	if next < 0 || next >= len(m.page.Sections) {
		return "", false
	}
	return m.page.Sections[next].Anchor, true
}

// Publisher exposes the scroll publisher
func (m Model) Publisher() *motion.Publisher { return m.publisher }

// Loop exposes the timer loop
func (m Model) Loop() *motion.Loop { return m.loop }

// Nav exposes the navigation bar
func (m Model) Nav() *components.NavBar { return m.nav }

// Carousel exposes the scripture carousel
func (m Model) Carousel() *components.Carousel { return m.carousel }

// ScrollRow returns the viewport's first row
func (m Model) ScrollRow() int { return m.stage.viewport.YOffset }

// Progress returns the last published reading progress
func (m Model) Progress() float64 { return m.stage.progress }

// Document exposes the laid out page
func (m Model) Document() *Document { return m.doc }
