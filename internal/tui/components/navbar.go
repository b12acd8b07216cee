package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/whole/internal/domain"
	"github.com/mmcdole/whole/internal/motion"
	"github.com/mmcdole/whole/internal/tui/styles"
)

// ScrolledThreshold is how far the page moves before the nav bar turns
// compact, in page pixels.
const ScrolledThreshold = 50

const navGap = 4

// NavBar is the fixed navigation strip. It highlights the active section
// and turns compact once the page scrolls.
type NavBar struct {
	items   []domain.Section
	active  string
	compact bool
	width   int

	subs []*motion.Subscription
}

// NewNavBar creates a nav bar over the navigable sections
func NewNavBar(sections []domain.Section) *NavBar {
	var items []domain.Section
	for _, s := range sections {
		if s.InNav() {
			items = append(items, s)
		}
	}
	return &NavBar{items: items}
}

// Mount subscribes to the publisher. Mounting twice is a no-op.
func (n *NavBar) Mount(pub *motion.Publisher) {
	if len(n.subs) > 0 {
		return
	}
	n.subs = append(n.subs,
		pub.SubscribeActiveSection(func(anchor string, ok bool) {
			if !ok {
				anchor = ""
			}
			n.active = anchor
		}),
		pub.SubscribeScroll(func(s motion.State) {
			n.compact = s.Scrolled(ScrolledThreshold)
		}),
	)
}

// Unmount releases every subscription
func (n *NavBar) Unmount() {
	for _, s := range n.subs {
		s.Unsubscribe()
	}
	n.subs = nil
}

// Mounted reports whether the nav bar is subscribed
func (n *NavBar) Mounted() bool { return len(n.subs) > 0 }

// Active returns the highlighted anchor, empty when none
func (n *NavBar) Active() string { return n.active }

// Compact reports whether the page has scrolled past the threshold
func (n *NavBar) Compact() bool { return n.compact }

// SetWidth sets the render width
func (n *NavBar) SetWidth(width int) { n.width = width }

// Height returns the rows the nav bar occupies
func (n *NavBar) Height() int {
	if n.compact {
		return 1
	}
	return 3
}

// HitTest returns the anchor of the nav item under column x
func (n *NavBar) HitTest(x int) (string, bool) {
	start := n.itemsStart()
	for _, it := range n.items {
		w := lipgloss.Width(it.NavName)
		if x >= start && x < start+w {
			return it.Anchor, true
		}
		start += w + navGap
	}
	return "", false
}

func (n *NavBar) itemsWidth() int {
	w := 0
	for i, it := range n.items {
		if i > 0 {
			w += navGap
		}
		w += lipgloss.Width(it.NavName)
	}
	return w
}

// itemsStart is the column of the first item; items are right-aligned
// inside the two-column horizontal padding.
func (n *NavBar) itemsStart() int {
	return max(n.width-2-n.itemsWidth(), 4)
}

// View renders the nav bar
func (n *NavBar) View() string {
	var items []string
	for _, it := range n.items {
		style := styles.NavItemStyle
		if it.Anchor == n.active {
			style = styles.NavActiveStyle
		}
		items = append(items, style.Render(it.NavName))
	}
	links := strings.Join(items, strings.Repeat(" ", navGap))

	brand := styles.TitleStyle.Render("W")
	inner := max(n.width-4, 0)
	gap := max(inner-lipgloss.Width(brand)-lipgloss.Width(links), 1)
	row := brand + strings.Repeat(" ", gap) + links

	style := styles.NavStyle
	if n.compact {
		style = styles.NavCompactStyle
	}
	return style.Width(n.width).MaxWidth(n.width).Render(row)
}
