package graph

// Register indexes item against the given normalized, non-empty keywords.
// It is idempotent: a keyword the item already carries is left untouched,
// and re-registering an existing keyword never re-inflates fragment
// refcounts (those are tallied once, the first time a keyword node is
// created). Register reports false and makes no change if keywords is empty
// after the caller's own filtering.
func (g *Graph[T]) Register(item T, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	existing := g.itemKeywords[item]
	changed := false

	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if existing != nil {
			if _, has := existing[kw]; has {
				continue
			}
		}

		node, ok := g.keywords[kw]
		if !ok {
			node = &keywordNode[T]{items: make(map[T]struct{})}
			g.keywords[kw] = node
			g.addFragments(kw)
		}
		node.items[item] = struct{}{}

		if existing == nil {
			existing = make(map[string]struct{})
			g.itemKeywords[item] = existing
		}
		existing[kw] = struct{}{}
		changed = true
	}

	if changed {
		g.generation++
		return true
	}
	// Item already held every keyword in the request: still a success,
	// just a no-op, unless the item has no keywords at all (never indexed).
	return existing != nil && len(existing) > 0
}

// addFragments creates or updates the fragment nodes for every substring of
// a newly-created keyword node. Must be called with the write lock held.
func (g *Graph[T]) addFragments(keyword string) {
	for frag, count := range substringCounts(keyword) {
		fn, ok := g.fragments[frag]
		if !ok {
			fn = &fragmentNode{refs: make(map[string]int)}
			g.fragments[frag] = fn
		}
		fn.refs[keyword] += count
	}
}

// removeFragments decrements the fragment refcounts contributed by keyword's
// substring enumeration, deleting edges and fragment nodes that reach zero.
// Must be called with the write lock held.
func (g *Graph[T]) removeFragments(keyword string) {
	for frag, count := range substringCounts(keyword) {
		fn, ok := g.fragments[frag]
		if !ok {
			continue
		}
		fn.refs[keyword] -= count
		if fn.refs[keyword] <= 0 {
			delete(fn.refs, keyword)
		}
		if len(fn.refs) == 0 {
			delete(g.fragments, frag)
		}
	}
}

// Unregister removes item from every keyword it carries. Keywords left with
// no items are deleted, cascading a decrement through their fragments.
// Unregistering an unknown item is a no-op.
func (g *Graph[T]) Unregister(item T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	kws, ok := g.itemKeywords[item]
	if !ok {
		return
	}

	for kw := range kws {
		node, ok := g.keywords[kw]
		if !ok {
			continue
		}
		delete(node.items, item)
		if len(node.items) == 0 {
			delete(g.keywords, kw)
			g.removeFragments(kw)
		}
	}

	delete(g.itemKeywords, item)
	g.generation++
}
