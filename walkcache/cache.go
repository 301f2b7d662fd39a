// Package walkcache provides an optional bounded memoization layer over the
// fragment graph's walk, for interactive type-ahead workloads where the same
// fragment (a partially-typed prefix) is re-walked many times in a row.
//
// The cache knows nothing about the graph; it is invalidated wholesale by
// the engine on every mutation (Register, Unregister, Clear), which is
// cheap and correct: a stale entry would otherwise require per-fragment
// invalidation logic the graph has no efficient way to compute (a single
// keyword removal can affect any number of fragments).
package walkcache

import lru "github.com/hashicorp/golang-lru/v2"

// Cache memoizes walk results for items of type T, keyed by the normalized
// fragment string that produced them.
type Cache[T comparable] struct {
	entries *lru.Cache[string, map[T]float64]
}

// New creates a Cache holding at most size entries. New panics if size <= 0;
// callers only construct a Cache when the engine's walk-cache option is
// enabled with a positive size.
func New[T comparable](size int) *Cache[T] {
	c, err := lru.New[string, map[T]float64](size)
	if err != nil {
		panic(err)
	}
	return &Cache[T]{entries: c}
}

// Get returns the cached score map for fragment, if present.
func (c *Cache[T]) Get(fragment string) (map[T]float64, bool) {
	return c.entries.Get(fragment)
}

// Put stores the score map for fragment.
func (c *Cache[T]) Put(fragment string, scores map[T]float64) {
	c.entries.Add(fragment, scores)
}

// Invalidate discards every cached entry. Called after any graph mutation.
func (c *Cache[T]) Invalidate() {
	c.entries.Purge()
}
