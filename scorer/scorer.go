// Package scorer provides the default keyword match scorer used by the
// fragment graph's walk (see package graph). Callers may substitute any
// function of the same shape through the engine's WithScorer option.
package scorer

import (
	"strings"
	"unicode/utf8"
)

// Scorer computes a non-negative match score for a query fragment against a
// keyword it matched. It has the same shape as graph.Scorer (and converts to
// it directly) so callers don't need to import graph just to write one.
type Scorer func(query, keyword string) float64

// Default scores a (query, keyword) pair as the query's length relative to
// the keyword's length, plus a full-point bonus when the keyword starts with
// the query. A query equal to the keyword therefore scores 2.0; a query that
// is a short prefix scores just over 1.0.
func Default(query, keyword string) float64 {
	qLen := utf8.RuneCountInString(query)
	kLen := utf8.RuneCountInString(keyword)
	if kLen == 0 {
		return 0
	}

	score := float64(qLen) / float64(kLen)
	if strings.HasPrefix(keyword, query) {
		score += 1.0
	}
	return score
}
