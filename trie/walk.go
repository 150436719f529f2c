package trie

// child returns the child of parent holding ch or nilRef.
func (t *Trie) child(parent ref, ch uint32) ref {
	nodes := t.pool.nodes
	for n := nodes[parent].children; n != nilRef; n = nodes[n].next {
		if nodes[n].ch == ch {
			return n
		}
	}
	return nilRef
}

// prefixWalk follows key from start and returns the node reached by its last
// character, start itself for an empty key or nilRef when the path breaks.
func (t *Trie) prefixWalk(start ref, key Key) ref {
	return t.walkFrom(start, key, 0)
}

// walkFrom is prefixWalk over key[off:].
func (t *Trie) walkFrom(start ref, key Key, off int) ref {
	n := start
	for i := off; i < key.Len() && n != nilRef; i++ {
		n = t.child(n, key.get(i))
	}
	return n
}
