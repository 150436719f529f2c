package trie

import "fmt"

// Verify walks the whole trie and checks its structure: every node is
// reachable once, no node but the root lacks both a value and children, the
// root holds no value and the counters match the nodes found.
func (t *Trie) Verify() error {
	if t.pool == nil {
		return ErrDestroyed
	}

	var (
		nodes   = t.pool.nodes
		seen    = make(map[ref]struct{}, t.nodeCount)
		stack   = []ref{t.root}
		items   int
		visited int
	)

	if nodes[t.root].set {
		return fmt.Errorf("%w: root holds a value", ErrCorrupt)
	}

	for l := len(stack); l > 0; l = len(stack) {
		n := stack[l-1]
		stack = stack[:l-1]

		if n < 0 || int(n) >= len(nodes) || !t.pool.live.Has(int(n)) {
			return fmt.Errorf("%w: link to a free slot %d", ErrCorrupt, n)
		}
		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w: node %d reached twice", ErrCorrupt, n)
		}
		seen[n] = struct{}{}
		visited++

		nd := &nodes[n]
		if nd.set {
			items++
		}
		if n != t.root && !nd.set && nd.children == nilRef {
			return fmt.Errorf("%w: garbage node %d (%q)", ErrCorrupt, n, rune(nd.ch))
		}

		for c := nd.children; c != nilRef; c = nodes[c].next {
			if c < 0 || int(c) >= len(nodes) {
				return fmt.Errorf("%w: node %d links to %d", ErrCorrupt, n, c)
			}
			stack = append(stack, c)
			if len(stack) > len(nodes) {
				return fmt.Errorf("%w: sibling cycle under node %d", ErrCorrupt, n)
			}
		}
	}

	switch {
	case items != t.itemCount:
		return fmt.Errorf("%w: %d items found, %d counted", ErrCorrupt, items, t.itemCount)
	case visited != t.nodeCount:
		return fmt.Errorf("%w: %d nodes found, %d counted", ErrCorrupt, visited, t.nodeCount)
	case t.pool.inUse() != t.nodeCount:
		return fmt.Errorf("%w: %d nodes allocated, %d counted", ErrCorrupt, t.pool.inUse(), t.nodeCount)
	}

	return nil
}
