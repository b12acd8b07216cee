package search

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/whole/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Kind classifies what an entry points at
type Kind int

const (
	KindSection Kind = iota
	KindValue
	KindPractice
	KindPassage
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindPractice:
		return "practice"
	case KindPassage:
		return "passage"
	default:
		return "section"
	}
}

// Entry is a searchable jump target
type Entry struct {
	Kind   Kind
	Title  string // Searchable display text
	Anchor string // Section to scroll to
	Item   int    // Position within its kind, e.g. the quote index
}

// Result is a matched entry with highlight metadata
type Result struct {
	Entry
	MatchedIndexes []int // Byte positions in Title that matched
	Score          int   // Higher is better
	Distance       int   // Levenshtein distance to the title, -1 if unranked
}

// Index implements sahilm/fuzzy.Source over the page's jump targets
type Index struct {
	entries     []Entry
	lowerTitles []string
	logger      *slog.Logger
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *Index) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of entries (implements fuzzy.Source)
func (idx *Index) Len() int { return len(idx.entries) }

// NewIndex builds the jump index for page
func NewIndex(page *domain.Page, logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.Default()
	}
	idx := &Index{logger: logger}

	for i, s := range page.Sections {
		if s.Anchor == domain.AnchorFooter {
			continue
		}
		idx.add(Entry{Kind: KindSection, Title: s.Title, Anchor: s.Anchor, Item: i})
	}
	for i, v := range page.Values {
		idx.add(Entry{Kind: KindValue, Title: v.Name, Anchor: domain.AnchorValues, Item: i})
	}
	for i, p := range page.Practices {
		idx.add(Entry{Kind: KindPractice, Title: p.Title, Anchor: domain.AnchorPractices, Item: i})
	}
	for i, q := range page.Quotes {
		idx.add(Entry{
			Kind:   KindPassage,
			Title:  fmt.Sprintf("%s %s", q.Citation(), q.Text),
			Anchor: domain.AnchorScripture,
			Item:   i,
		})
	}

	logger.Debug("built jump index", "entries", len(idx.entries))
	return idx
}

func (idx *Index) add(e Entry) {
	idx.entries = append(idx.entries, e)
	idx.lowerTitles = append(idx.lowerTitles, strings.ToLower(e.Title))
}

// Entries returns every entry in index order
func (idx *Index) Entries() []Entry {
	return append([]Entry(nil), idx.entries...)
}

// Find returns up to limit entries matching query, best first. A
// non-positive limit returns every match.
func (idx *Index) Find(query string, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" || len(idx.entries) == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), idx)
	if len(matches) == 0 {
		return nil
	}

	// Edit distance breaks ties between equally scored matches.
	distances := make(map[int]int, len(matches))
	for _, r := range lfuzzy.RankFindFold(strings.ToLower(query), idx.lowerTitles) {
		distances[r.OriginalIndex] = r.Distance
	}

	results := make([]Result, len(matches))
	for i, m := range matches {
		dist, ok := distances[m.Index]
		if !ok {
			dist = -1
		}
		results[i] = Result{
			Entry:          idx.entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
			Distance:       dist,
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if (a.Distance >= 0) != (b.Distance >= 0) {
			return a.Distance >= 0
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.Kind < b.Kind
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	idx.logger.Debug("jump search", "query", query, "results", len(results))
	return results
}
