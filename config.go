package fragsearch

import (
	"io"
	"log/slog"

	"fragsearch/combine"
	"fragsearch/graph"
	"fragsearch/pipeline"
	"fragsearch/scorer"
)

// Config holds the configuration an Engine is built from. Use New with
// Option values to construct one; Config itself has no exported
// constructor since its zero value is not useful (the callback fields must
// fall back to the package defaults).
type Config[T comparable] struct {
	extractor    pipeline.Extractor
	normalizer   pipeline.Normalizer
	scorer       scorer.Scorer
	unmatched    graph.UnmatchedPolicy
	accumulation combine.AccumulationPolicy
	parallel     bool
	walkCache    int
	logger       *slog.Logger
}

// Option configures an Engine at construction time.
type Option[T comparable] func(*Config[T])

// WithExtractor overrides the default keyword/token extractor.
func WithExtractor[T comparable](e pipeline.Extractor) Option[T] {
	return func(c *Config[T]) { c.extractor = e }
}

// WithNormalizer overrides the default per-token normalizer.
func WithNormalizer[T comparable](n pipeline.Normalizer) Option[T] {
	return func(c *Config[T]) { c.normalizer = n }
}

// WithScorer overrides the default keyword match scorer. Scorers must be
// pure; if WithParallelCombine is also set, the scorer may be called from
// multiple goroutines concurrently.
func WithScorer[T comparable](s scorer.Scorer) Option[T] {
	return func(c *Config[T]) { c.scorer = s }
}

// WithUnmatchedPolicy selects how an empty walk result is handled.
func WithUnmatchedPolicy[T comparable](p graph.UnmatchedPolicy) Option[T] {
	return func(c *Config[T]) { c.unmatched = p }
}

// WithAccumulationPolicy selects how per-fragment results are combined for a
// multi-fragment query.
func WithAccumulationPolicy[T comparable](p combine.AccumulationPolicy) Option[T] {
	return func(c *Config[T]) { c.accumulation = p }
}

// WithParallelCombine enables fork-join parallel combine for multi-fragment
// queries.
func WithParallelCombine[T comparable](enabled bool) Option[T] {
	return func(c *Config[T]) { c.parallel = enabled }
}

// WithWalkCache bounds and enables a walk-result cache of the given size.
// Disabled (size 0, the default) means every query walks the graph fresh.
func WithWalkCache[T comparable](size int) Option[T] {
	return func(c *Config[T]) { c.walkCache = size }
}

// WithLogger sets the structured logger the engine reports mutations and
// queries to. The default logger discards everything, so the engine stays
// silent unless a caller opts in.
func WithLogger[T comparable](l *slog.Logger) Option[T] {
	return func(c *Config[T]) { c.logger = l }
}

func defaultConfig[T comparable]() *Config[T] {
	return &Config[T]{
		extractor:    pipeline.DefaultExtractor,
		normalizer:   pipeline.DefaultNormalizer,
		scorer:       scorer.Default,
		unmatched:    graph.Backtracking,
		accumulation: combine.Union,
		parallel:     false,
		walkCache:    0,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
