package trie

import "fmt"

// reach caps a depth bound by the longest key ever added, no walk goes deeper.
func (t *Trie) reach(depth int) int {
	if depth > t.height {
		return t.height
	}
	return depth
}

// Suffixes calls fn for every stored key starting with key and at most
// maxDepth characters longer than it (key itself included). A negative
// maxDepth stands for Height. Siblings are visited most recently inserted
// first.
//
// The key passed to fn is scratch storage, Clone it to keep it.
// fn can continue the walk by returning true or abort it with false.
func (t *Trie) Suffixes(key Key, maxDepth int, fn func(Key, any) bool) error {
	if err := t.checkKey(key); err != nil {
		return err
	}
	if maxDepth < 0 {
		maxDepth = t.height
	}

	start := t.prefixWalk(t.root, key)
	if start == nilRef {
		return nil
	}

	scratch := NewKey(key.Len()+t.reach(maxDepth), t.width)
	Copy(&scratch, key, 0, 0, key.Len())
	scratch.SetLen(key.Len())

	t.suffixes(start, &scratch, maxDepth, fn)

	return nil
}

// suffixes reports n (when set) and walks its children while depth allows.
// scratch holds the key of n on entry and on return.
func (t *Trie) suffixes(n ref, scratch *Key, depth int, fn func(Key, any) bool) bool {
	if nd := &t.pool.nodes[n]; nd.set {
		if !fn(*scratch, nd.val) {
			return false
		}
	}
	if depth == 0 {
		return true
	}

	l := scratch.Len()
	for c := t.pool.nodes[n].children; c != nilRef; c = t.pool.nodes[c].next {
		scratch.grow(l + 1)
		scratch.SetLen(l + 1)
		scratch.put(l, t.pool.nodes[c].ch)

		if !t.suffixes(c, scratch, depth-1, fn) {
			return false
		}
	}
	scratch.SetLen(l)

	return true
}

// Prefixes calls fn for every stored key being a prefix of key (key itself
// included), shortest first. Only the first maxDepth characters of key are
// considered; a negative maxDepth stands for the whole key.
func (t *Trie) Prefixes(key Key, maxDepth int, fn func(Key, any) bool) error {
	if err := t.checkKey(key); err != nil {
		return err
	}
	if key.Len() == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if maxDepth < 0 || maxDepth > key.Len() {
		maxDepth = key.Len()
	}

	scratch := NewKey(key.Len(), t.width)
	Copy(&scratch, key, 0, 0, key.Len())

	n := t.root
	for i := 0; i < maxDepth; i++ {
		if n = t.child(n, key.get(i)); n == nilRef {
			break
		}
		if nd := &t.pool.nodes[n]; nd.set {
			scratch.SetLen(i + 1)
			if !fn(scratch, nd.val) {
				break
			}
		}
	}

	return nil
}

// Keys returns clones of all stored keys starting with prefix.
func (t *Trie) Keys(prefix Key) ([]Key, error) {
	keys := make([]Key, 0, t.itemCount)

	err := t.Suffixes(prefix, -1, func(k Key, _ any) bool {
		keys = append(keys, k.Clone())
		return true
	})

	return keys, err
}
