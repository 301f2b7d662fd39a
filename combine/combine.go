// Package combine implements the union and intersection combinators that
// merge per-fragment item/score maps into the single result map a
// multi-keyword query returns. It mirrors the fan-out/reduce shape the
// corpus uses for fusing results from several independent retrievers,
// generalized here to two set-combination rules instead of rank fusion.
package combine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AccumulationPolicy selects how per-fragment result maps are combined
// across a multi-fragment query.
type AccumulationPolicy int

const (
	// Union keeps every item that matched at least one fragment, summing
	// scores for items that matched more than one.
	Union AccumulationPolicy = iota
	// Intersection keeps only items that matched every fragment, summing
	// scores across the fragments that contributed.
	Intersection
)

// Walker computes the score map for a single normalized fragment.
type Walker[T comparable] func(fragment string) map[T]float64

// forkJoinLeafSize bounds the smallest unit of work dispatched as its own
// goroutine in parallel mode, so task overhead doesn't dominate on small
// queries.
const forkJoinLeafSize = 2

// Combine merges the walk results for every fragment in fragments according
// to policy. With parallel set, per-fragment walks and the reduction tree
// run concurrently via a divide-and-conquer fork-join; the membership and
// (for deterministic scorers) scores are identical to the sequential path,
// though floating-point summation order may differ.
func Combine[T comparable](fragments []string, walk Walker[T], policy AccumulationPolicy, parallel bool) map[T]float64 {
	switch len(fragments) {
	case 0:
		return map[T]float64{}
	case 1:
		return walk(fragments[0])
	}

	if !parallel {
		return sequential(fragments, walk, policy)
	}
	result, _ := forkJoin(context.Background(), fragments, walk, policy)
	return result
}

func sequential[T comparable](fragments []string, walk Walker[T], policy AccumulationPolicy) map[T]float64 {
	acc := walk(fragments[0])
	for _, f := range fragments[1:] {
		if policy == Intersection && len(acc) == 0 {
			return acc
		}
		acc = merge(acc, walk(f), policy)
	}
	return acc
}

// forkJoin recursively splits fragments in half, computing the two halves
// concurrently via errgroup and reducing them with merge. A slice of at most
// forkJoinLeafSize fragments is not split further and is walked sequentially.
func forkJoin[T comparable](ctx context.Context, fragments []string, walk Walker[T], policy AccumulationPolicy) (map[T]float64, error) {
	if len(fragments) <= forkJoinLeafSize {
		return sequential(fragments, walk, policy), nil
	}

	mid := len(fragments) / 2
	left, right := fragments[:mid], fragments[mid:]

	var leftResult, rightResult map[T]float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := forkJoin(gctx, left, walk, policy)
		leftResult = r
		return err
	})
	g.Go(func() error {
		r, err := forkJoin(gctx, right, walk, policy)
		rightResult = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merge(leftResult, rightResult, policy), nil
}

// merge combines two score maps per policy, summing scores for coinciding
// keys. Union keeps every key; Intersection keeps only keys present in both.
func merge[T comparable](a, b map[T]float64, policy AccumulationPolicy) map[T]float64 {
	if policy == Intersection {
		out := make(map[T]float64, min(len(a), len(b)))
		for item, score := range a {
			if other, ok := b[item]; ok {
				out[item] = score + other
			}
		}
		return out
	}

	out := make(map[T]float64, len(a)+len(b))
	for item, score := range a {
		out[item] = score
	}
	for item, score := range b {
		out[item] += score
	}
	return out
}
