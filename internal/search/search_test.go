package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/whole/internal/domain"
)

func newTestIndex() *Index {
	return NewIndex(domain.DefaultPage(), nil)
}

func TestNewIndex_Entries(t *testing.T) {
	t.Parallel()
	idx := newTestIndex()

	counts := map[Kind]int{}
	for _, e := range idx.Entries() {
		counts[e.Kind]++
	}
	assert.Equal(t, 6, counts[KindSection], "every section but the footer")
	assert.Equal(t, 5, counts[KindValue])
	assert.Equal(t, 6, counts[KindPractice])
	assert.Equal(t, 4, counts[KindPassage])
	assert.Equal(t, len(idx.Entries()), idx.Len())
}

func TestFind_EmptyQuery(t *testing.T) {
	t.Parallel()
	idx := newTestIndex()
	assert.Nil(t, idx.Find("", 10))
	assert.Nil(t, idx.Find("   ", 10))
}

func TestFind_ExactTitleFirst(t *testing.T) {
	t.Parallel()
	idx := newTestIndex()

	results := idx.Find("Movement", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "Movement", results[0].Title)
	assert.Equal(t, domain.AnchorPractices, results[0].Anchor)
	assert.Equal(t, 3, results[0].Item)
	assert.Zero(t, results[0].Distance)
}

func TestFind_CaseInsensitive(t *testing.T) {
	t.Parallel()
	idx := newTestIndex()

	results := idx.Find("ORTHOBIOSIS", 1)
	require.Len(t, results, 1)
	assert.Equal(t, KindValue, results[0].Kind)
	assert.Equal(t, domain.AnchorValues, results[0].Anchor)
}

func TestFind_PassageJumpsToScripture(t *testing.T) {
	t.Parallel()
	idx := newTestIndex()

	results := idx.Find("ceaseless process", 3)
	require.NotEmpty(t, results)
	top := results[0]
	assert.Equal(t, KindPassage, top.Kind)
	assert.Equal(t, domain.AnchorScripture, top.Anchor)
	assert.Equal(t, 3, top.Item)
}

func TestFind_MatchedIndexesHighlightTitle(t *testing.T) {
	t.Parallel()
	idx := newTestIndex()

	results := idx.Find("life", 0)
	require.NotEmpty(t, results)
	for _, r := range results {
		require.Len(t, r.MatchedIndexes, 4)
		for _, i := range r.MatchedIndexes {
			assert.Less(t, i, len(r.Title))
		}
	}
}

func TestFind_Limit(t *testing.T) {
	t.Parallel()
	idx := newTestIndex()

	all := idx.Find("e", 0)
	require.Greater(t, len(all), 3)
	assert.Len(t, idx.Find("e", 3), 3)
}

func TestFind_NoMatch(t *testing.T) {
	t.Parallel()
	assert.Empty(t, newTestIndex().Find("zzzzqqq", 5))
}
