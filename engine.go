// Package fragsearch is the public façade over the fragment graph: an
// in-memory, low-latency, incremental-substring search engine. Items are
// registered with a free-form keyword blob; queries are free-form text
// matched against substrings of those keywords and ranked by a pluggable
// scorer.
//
// Construct an Engine with New, tag items with AddItem, and query with
// FindItem/FindItems (or the *WithDetail variants, which also report the
// matched item's current keywords and score).
package fragsearch

import (
	"log/slog"

	"github.com/google/uuid"

	"fragsearch/combine"
	"fragsearch/graph"
	"fragsearch/pipeline"
	"fragsearch/scorer"
	"fragsearch/walkcache"
)

// Engine indexes items of type T against keyword blobs and answers
// substring queries over them. T must be comparable: item identity is
// plain Go equality, so items are hashable and usable directly as map
// keys without a separate identity-extraction callback.
type Engine[T comparable] struct {
	graph    *graph.Graph[T]
	pipeline pipeline.Pipeline

	scorer       scorer.Scorer
	unmatched    graph.UnmatchedPolicy
	accumulation combine.AccumulationPolicy
	parallel     bool

	cache  *walkcache.Cache[T]
	logger *slog.Logger
}

// New builds an Engine from the given options, applying package defaults
// for anything not overridden: a regex/whitespace extractor and
// lowercasing normalizer, the length-ratio-plus-prefix-bonus scorer,
// Backtracking unmatched policy, Union accumulation, and sequential
// combine.
func New[T comparable](opts ...Option[T]) *Engine[T] {
	cfg := defaultConfig[T]()
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Engine[T]{
		graph:        graph.New[T](),
		pipeline:     pipeline.New(cfg.extractor, cfg.normalizer),
		scorer:       cfg.scorer,
		unmatched:    cfg.unmatched,
		accumulation: cfg.accumulation,
		parallel:     cfg.parallel,
		logger:       cfg.logger,
	}
	if cfg.walkCache > 0 {
		e.cache = walkcache.New[T](cfg.walkCache)
	}
	return e
}

// AddItem tags item with the keywords extracted and normalized from
// rawKeywords, merging with any keywords already registered for item.
// Reports true if at least one keyword survived the pipeline and item is
// now indexed; false (a no-op) if rawKeywords normalized to nothing.
func (e *Engine[T]) AddItem(item T, rawKeywords string) bool {
	keywords := e.pipeline.Process(rawKeywords)
	if len(keywords) == 0 {
		e.logger.Debug("addItem ignored: no keywords survived the pipeline", "raw", rawKeywords)
		return false
	}

	ok := e.graph.Register(item, keywords)
	if ok {
		e.invalidateCache()
		e.logger.Debug("addItem", "item", item, "keywords", keywords)
	}
	return ok
}

// RemoveItem removes item and every keyword/fragment edge it solely
// sustained. Removing an unknown item is a no-op.
func (e *Engine[T]) RemoveItem(item T) {
	e.graph.Unregister(item)
	e.invalidateCache()
	e.logger.Debug("removeItem", "item", item)
}

// Clear removes every item, keyword, and fragment.
func (e *Engine[T]) Clear() {
	e.graph.Clear()
	e.invalidateCache()
	e.logger.Debug("clear")
}

// Stats reports the current graph size.
func (e *Engine[T]) Stats() (items, keywords, fragments int) {
	return e.graph.Stats()
}

func (e *Engine[T]) invalidateCache() {
	if e.cache != nil {
		e.cache.Invalidate()
	}
}

// walk performs one fragment's backtracking walk, transparently consulting
// and populating the walk cache when one is configured.
func (e *Engine[T]) walk(fragment string) map[T]float64 {
	if e.cache != nil {
		if cached, ok := e.cache.Get(fragment); ok {
			return cached
		}
	}

	result := e.graph.WalkBacktracking(fragment, graph.Scorer(e.scorer), e.unmatched)

	if e.cache != nil {
		e.cache.Put(fragment, result)
	}
	return result
}

// score runs the full query side of the pipeline: extract and normalize
// query into fragments, walk each (with backtracking per policy), and
// combine the results per the configured accumulation policy.
func (e *Engine[T]) score(query string) map[T]float64 {
	fragments := e.pipeline.Process(query)
	if len(fragments) == 0 {
		return nil
	}

	reqID := uuid.New().String()
	e.logger.Debug("query", "request_id", reqID, "query", query, "fragments", fragments)

	return combine.Combine(fragments, e.walk, e.accumulation, e.parallel)
}
