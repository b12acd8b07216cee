package domain

import (
	"fmt"
	"strings"
)

// Section anchors in document order
const (
	AnchorHero       = "hero"
	AnchorValues     = "values"
	AnchorPhilosophy = "philosophy"
	AnchorPractices  = "practices"
	AnchorScripture  = "scripture"
	AnchorCommunity  = "community"
	AnchorFooter     = "footer"
)

// Section is one block of the page
type Section struct {
	Anchor  string // Unique id, also the jump target
	Title   string // Heading shown in the section
	NavName string // Label in the navigation bar; empty when not navigable
	Intro   string // Lead paragraph under the heading
}

// InNav reports whether the section has a navigation entry
func (s Section) InNav() bool {
	return s.NavName != ""
}

// Value is one of the five values spelling the name
type Value struct {
	Letter      string
	Name        string
	Description string
}

// Practice is one card in the practices grid
type Practice struct {
	Icon        string
	Title       string
	Description string
}

// Quote is a numbered passage from the scripture
type Quote struct {
	Number int
	Text   string
}

// Citation returns the passage reference, e.g. "§ 14"
func (q Quote) Citation() string {
	return fmt.Sprintf("§ %d", q.Number)
}

// Hero is the opening screen
type Hero struct {
	Tagline      string
	Title        string
	Words        []string
	Quote        string
	Attribution  string
	CallToAction string
}

// Philosophy is the holographic structure section
type Philosophy struct {
	Badge      string
	Paragraphs []string
	Emphasis   string
}

// Link is a call to action
type Link struct {
	Label string
	URL   string
}

// Community is the closing call to action
type Community struct {
	Body  string
	Links []Link
}

// Footer is the bottom strip of the page
type Footer struct {
	Motto string
}

// Page is the full static content of the site
type Page struct {
	Sections   []Section
	Hero       Hero
	Values     []Value
	Philosophy Philosophy
	Practices  []Practice
	Quotes     []Quote
	Community  Community
	Footer     Footer
}

// Validate checks that the page has sections with unique anchors
func (p *Page) Validate() error {
	if len(p.Sections) == 0 {
		return ErrEmptyPage
	}
	seen := make(map[string]struct{}, len(p.Sections))
	for _, s := range p.Sections {
		if _, dup := seen[s.Anchor]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateAnchor, s.Anchor)
		}
		seen[s.Anchor] = struct{}{}
	}
	return nil
}

// Section returns the section with the given anchor
func (p *Page) Section(anchor string) (Section, error) {
	for _, s := range p.Sections {
		if s.Anchor == anchor {
			return s, nil
		}
	}
	return Section{}, fmt.Errorf("%w: %q", ErrUnknownAnchor, anchor)
}

// SectionIndex returns the document position of anchor, or -1
func (p *Page) SectionIndex(anchor string) int {
	for i, s := range p.Sections {
		if s.Anchor == anchor {
			return i
		}
	}
	return -1
}

// NavSections returns the sections shown in the navigation bar
func (p *Page) NavSections() []Section {
	var out []Section
	for _, s := range p.Sections {
		if s.InNav() {
			out = append(out, s)
		}
	}
	return out
}

// Motto joins the hero words with middle dots
func (p *Page) Motto() string {
	return strings.Join(p.Hero.Words, " · ")
}
