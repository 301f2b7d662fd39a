package fragsearch

import "fragsearch/topk"

// Detail pairs a matched item with its current keywords and the score it
// accumulated for the query that found it.
type Detail[T comparable] struct {
	Item     T
	Keywords []string
	Score    float64
}

// FindItem returns the single best-matching item for query, or the zero
// value and false if query is empty or nothing matched.
func (e *Engine[T]) FindItem(query string) (T, bool) {
	results := e.topK(query, 1)
	if len(results) == 0 {
		var zero T
		return zero, false
	}
	return results[0].Item, true
}

// FindItems returns up to k best-matching items for query, highest score
// first. Returns nil if query is empty, k < 1, or nothing matched.
func (e *Engine[T]) FindItems(query string, k int) []T {
	results := e.topK(query, k)
	if len(results) == 0 {
		return nil
	}
	items := make([]T, len(results))
	for i, r := range results {
		items[i] = r.Item
	}
	return items
}

// FindItemWithDetail is FindItem plus the matched item's current keywords
// and accumulated score.
func (e *Engine[T]) FindItemWithDetail(query string) (Detail[T], bool) {
	results := e.topK(query, 1)
	if len(results) == 0 {
		return Detail[T]{}, false
	}
	return e.detail(results[0]), true
}

// FindItemsWithDetail is FindItems plus each matched item's current
// keywords and accumulated score. The query string is echoed back unchanged
// alongside the results, for callers that thread queries through
// asynchronous pipelines.
func (e *Engine[T]) FindItemsWithDetail(query string, k int) (string, []Detail[T]) {
	results := e.topK(query, k)
	if len(results) == 0 {
		return query, nil
	}
	details := make([]Detail[T], len(results))
	for i, r := range results {
		details[i] = e.detail(r)
	}
	return query, details
}

func (e *Engine[T]) topK(query string, k int) []topk.Result[T] {
	if query == "" || k < 1 {
		return nil
	}
	scores := e.score(query)
	return topk.Select(scores, k)
}

func (e *Engine[T]) detail(r topk.Result[T]) Detail[T] {
	return Detail[T]{
		Item:     r.Item,
		Keywords: e.graph.KeywordsOf(r.Item),
		Score:    r.Score,
	}
}
