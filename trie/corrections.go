package trie

import (
	"fmt"

	"github.com/aglyzov/go-triez/critbit/set"
)

// Corrections calls fn for every stored key within maxDistance edits of key.
// An edit is a deletion, an insertion or a substitution of one character, or
// a transposition of two adjacent ones. Every key is reported once, in the
// order of its code units.
//
// Inserted and substituted characters are only taken from the trie branches
// met on the way, so the search costs O(fanout^maxDistance) at worst rather
// than depending on the alphabet.
func (t *Trie) Corrections(key Key, maxDistance int, fn func(Key, any) bool) error {
	if err := t.checkKey(key); err != nil {
		return err
	}
	if maxDistance < 0 {
		return fmt.Errorf("%w: negative distance %d", ErrInvalidArgument, maxDistance)
	}
	// no stored key is further away than that
	if limit := key.Len() + t.height; maxDistance > limit {
		maxDistance = limit
	}

	c := corrector{
		t:     t,
		found: set.NewSet(),
		key:   NewKey(key.Len()+t.reach(maxDistance), t.width),
	}
	Copy(&c.key, key, 0, 0, key.Len())
	c.key.SetLen(key.Len())

	c.search(t.root, 0, maxDistance)

	tracer().Debugf("corrections of %q within %d: %d found", key, maxDistance, c.found.Len())

	c.found.Iter(nil, func(enc []byte) bool {
		k := decodeKey(enc, t.width)
		n := t.prefixWalk(t.root, k)
		if n == nilRef || !t.pool.nodes[n].set {
			return true // deleted by fn
		}
		return fn(k, t.pool.nodes[n].val)
	})

	return nil
}

// Correct returns the stored keys within maxDistance edits of key.
func (t *Trie) Correct(key Key, maxDistance int) ([]Key, error) {
	var keys []Key

	err := t.Corrections(key, maxDistance, func(k Key, _ any) bool {
		keys = append(keys, k)
		return true
	})

	return keys, err
}

// corrector explores the edit ball around a key. The key is edited in place
// and every edit is undone before returning.
type corrector struct {
	t     *Trie
	found *set.Set
	key   Key
}

// search expects n to be the node reached by key[:pos].
func (c *corrector) search(n ref, pos, budget int) {
	t := c.t

	if m := t.walkFrom(n, c.key, pos); m != nilRef && t.pool.nodes[m].set {
		c.found.Add(c.key.encode(nil, t.width))
	}
	if budget == 0 {
		return
	}

	klen := c.key.Len()

	if pos < klen {
		// deletion
		ch := c.key.removeAt(pos)
		c.search(n, pos, budget-1)
		c.key.insertAt(pos, ch)

		// transposition
		if pos+1 < klen && c.key.get(pos) != c.key.get(pos+1) {
			c.key.swap(pos, pos+1)
			if m := t.child(n, c.key.get(pos)); m != nilRef {
				if m = t.child(m, c.key.get(pos+1)); m != nilRef {
					c.search(m, pos+2, budget-1)
				}
			}
			c.key.swap(pos, pos+1)
		}
	}

	for r := t.pool.nodes[n].children; r != nilRef; r = t.pool.nodes[r].next {
		ch := t.pool.nodes[r].ch

		// insertion
		c.key.insertAt(pos, ch)
		c.search(r, pos+1, budget-1)
		c.key.removeAt(pos)

		// substitution
		if pos < klen {
			if old := c.key.get(pos); old != ch {
				c.key.put(pos, ch)
				c.search(r, pos+1, budget-1)
				c.key.put(pos, old)
			}
		}
	}

	// keep the character and edit further on
	if pos < klen {
		if m := t.child(n, c.key.get(pos)); m != nilRef {
			c.search(m, pos+1, budget)
		}
	}
}
