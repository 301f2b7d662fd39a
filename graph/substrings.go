package graph

// substringCounts enumerates every contiguous substring of keyword (including
// keyword itself) and tallies, per distinct substring value, the number of
// (start, end) positions that produced it. For a keyword of length L this
// walks all L*(L+1)/2 positions once; the result is the exact refcount
// contribution that keyword makes to every fragment it touches.
//
// Substrings are taken over runes, not bytes, so multi-byte normalized
// keywords still produce correct fragment boundaries.
func substringCounts(keyword string) map[string]int {
	runes := []rune(keyword)
	n := len(runes)
	counts := make(map[string]int, n*(n+1)/2)
	for start := 0; start < n; start++ {
		for end := start + 1; end <= n; end++ {
			counts[string(runes[start:end])]++
		}
	}
	return counts
}
