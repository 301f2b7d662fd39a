// Package topk selects the k highest-scoring items out of an item->score
// map using a bounded min-heap, so selection costs O(n log k) instead of a
// full O(n log n) sort for the common case of k much smaller than n.
package topk

import "container/heap"

// Result pairs an item with its accumulated score.
type Result[T any] struct {
	Item  T
	Score float64
}

// Select returns the k items with the highest score, sorted descending by
// score. Ties are broken by map iteration order, which Go randomizes per
// run; callers must not assume a particular tie order beyond "every item
// with the k-th highest score is eligible to appear." Returns nil if k < 1
// or scores is empty.
func Select[T comparable](scores map[T]float64, k int) []Result[T] {
	if k < 1 || len(scores) == 0 {
		return nil
	}

	h := make(resultHeap[T], 0, k)
	for item, score := range scores {
		if len(h) < k {
			heap.Push(&h, Result[T]{Item: item, Score: score})
			continue
		}
		if score > h[0].Score {
			h[0] = Result[T]{Item: item, Score: score}
			heap.Fix(&h, 0)
		}
	}

	out := make([]Result[T], len(h))
	// Popping a min-heap yields ascending order; fill out back-to-front to
	// land on descending without a second sort pass.
	for i := len(h) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(Result[T])
	}
	return out
}

// resultHeap is a min-heap by Score, used to keep only the top k candidates
// seen so far.
type resultHeap[T comparable] []Result[T]

func (h resultHeap[T]) Len() int            { return len(h) }
func (h resultHeap[T]) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h resultHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultHeap[T]) Push(x interface{}) { *h = append(*h, x.(Result[T])) }
func (h *resultHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
