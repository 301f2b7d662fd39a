package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumScorer(query, keyword string) float64 {
	return float64(len(query))
}

func TestRegisterAndStats(t *testing.T) {
	g := New[string]()
	items, keywords, fragments := g.Stats()
	assert.Equal(t, 0, items)
	assert.Equal(t, 0, keywords)
	assert.Equal(t, 0, fragments)

	ok := g.Register("X", []string{"banana"})
	require.True(t, ok)

	items, keywords, fragments = g.Stats()
	assert.Equal(t, 1, items)
	assert.Equal(t, 1, keywords)
	assert.Greater(t, fragments, 0)
}

func TestRegisterEmptyIsNoop(t *testing.T) {
	g := New[string]()
	ok := g.Register("X", nil)
	assert.False(t, ok)

	items, keywords, fragments := g.Stats()
	assert.Zero(t, items)
	assert.Zero(t, keywords)
	assert.Zero(t, fragments)
}

func TestRegisterIdempotentOnDuplicateKeyword(t *testing.T) {
	g := New[string]()
	require.True(t, g.Register("X", []string{"banana"}))
	_, _, fragmentsBefore := g.Stats()

	require.True(t, g.Register("X", []string{"banana"}))
	_, _, fragmentsAfter := g.Stats()

	assert.Equal(t, fragmentsBefore, fragmentsAfter)
}

func TestBananaRefcounting(t *testing.T) {
	// "banana" contains "an" at two distinct positions: an(1,3), an(3,5).
	g := New[string]()
	require.True(t, g.Register("X", []string{"banana"}))

	fn, ok := g.fragments["an"]
	require.True(t, ok)
	assert.Equal(t, 2, fn.refs["banana"])
}

func TestWalkAndScore(t *testing.T) {
	g := New[string]()
	g.Register("X", []string{"banana"})

	scores := g.WalkAndScore("ana", sumScorer)
	require.Contains(t, scores, "X")
	assert.Equal(t, float64(len("ana")), scores["X"])

	empty := g.WalkAndScore("zzz", sumScorer)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

func TestWalkBacktracking(t *testing.T) {
	g := New[string]()
	g.Register("Hero", []string{"walt", "kowalski"})

	// "walk" is not indexed anywhere, but backtracking to "wal" matches.
	scores := g.WalkBacktracking("walk", sumScorer, Backtracking)
	assert.Contains(t, scores, "Hero")
}

func TestWalkExactDoesNotBacktrack(t *testing.T) {
	g := New[string]()
	g.Register("Hero", []string{"walt"})

	scores := g.WalkBacktracking("walk", sumScorer, Exact)
	assert.Empty(t, scores)
}

func TestKeywordsOf(t *testing.T) {
	g := New[string]()
	g.Register("X", []string{"banana", "apple"})

	kws := g.KeywordsOf("X")
	assert.Equal(t, []string{"apple", "banana"}, kws)

	assert.Nil(t, g.KeywordsOf("unknown"))
}

func TestUnregisterRemovesPurity(t *testing.T) {
	g := New[string]()
	g.Register("X", []string{"banana"})
	g.Unregister("X")

	items, keywords, fragments := g.Stats()
	assert.Zero(t, items)
	assert.Zero(t, keywords)
	assert.Zero(t, fragments)

	scores := g.WalkAndScore("ana", sumScorer)
	assert.Empty(t, scores)
}

func TestUnregisterUnknownIsNoop(t *testing.T) {
	g := New[string]()
	g.Register("X", []string{"banana"})
	g.Unregister("nobody")

	items, _, _ := g.Stats()
	assert.Equal(t, 1, items)
}

func TestUnregisterSharedFragmentKeepsOtherItem(t *testing.T) {
	g := New[string]()
	g.Register("A", []string{"cat"})
	g.Register("B", []string{"category"})

	g.Unregister("A")

	scores := g.WalkAndScore("cat", sumScorer)
	assert.NotContains(t, scores, "A")
	assert.Contains(t, scores, "B")
}

func TestRegisterAddBeyondIdempotence(t *testing.T) {
	g := New[string]()
	require.True(t, g.Register("X", []string{"banana"}))
	// Adding the same keyword again plus a new one should still report true
	// and should leave the old keyword's refcounts untouched.
	ok := g.Register("X", []string{"banana", "apple"})
	assert.True(t, ok)
	assert.ElementsMatch(t, []string{"apple", "banana"}, g.KeywordsOf("X"))
}
