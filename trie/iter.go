package trie

import "fmt"

type iterKind uint8

const (
	suffixIter iterKind = iota
	prefixIter
)

type phase uint8

const (
	// phaseDescend: the frame's node was just entered and is not reported yet
	phaseDescend phase = iota
	// phaseAdvance: the node was reported (if set), children are being visited
	phaseAdvance
)

type frame struct {
	node ref
	// next is the next child to visit in phaseAdvance
	next  ref
	phase phase
}

// Iterator is a resumable walk over the keys of a Trie. It is created by
// IterSuffixes or IterPrefixes.
//
//	it, _ := t.IterSuffixes(trie.FromString("te"), -1)
//	defer it.Close()
//	for it.Next() {
//		fmt.Println(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// Any successful Add or Delete on the trie makes the following Next fail
// with ErrIteratorInvalidated. The trie keeps a single modification bit which
// is cleared whenever an iterator is created or reset, so only the most
// recently created (or reset) iterator is guaranteed to notice a change.
type Iterator struct {
	t        *Trie
	kind     iterKind
	start    Key // starting key (owned copy)
	maxDepth int

	key   Key // scratch
	val   any
	stack []frame

	// prefix walk position
	cur ref
	pos int

	exhausted bool
	failed    bool
	closed    bool
	err       error
}

// IterSuffixes returns an Iterator over the stored keys starting with key and
// at most maxDepth characters longer than it, in the order of Suffixes. A
// negative maxDepth stands for Height at the time of the call.
func (t *Trie) IterSuffixes(key Key, maxDepth int) (*Iterator, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		maxDepth = t.height
	}

	it := &Iterator{
		t:        t,
		kind:     suffixIter,
		start:    key.Clone(),
		maxDepth: maxDepth,
		key:      NewKey(key.Len()+t.reach(maxDepth), t.width),
		stack:    make([]frame, 0, t.reach(maxDepth)+1),
	}
	it.Reset()

	return it, nil
}

// IterPrefixes returns an Iterator over the stored keys being prefixes of
// key, in the order of Prefixes.
func (t *Trie) IterPrefixes(key Key, maxDepth int) (*Iterator, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}
	if key.Len() == 0 {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if maxDepth < 0 || maxDepth > key.Len() {
		maxDepth = key.Len()
	}

	it := &Iterator{
		t:        t,
		kind:     prefixIter,
		start:    key.Clone(),
		maxDepth: maxDepth,
		key:      NewKey(key.Len(), t.width),
	}
	it.Reset()

	return it, nil
}

// Reset moves the iterator back to its initial position, clears the
// exhausted and failed states and marks the trie as unmodified.
func (it *Iterator) Reset() {
	if it.closed {
		return
	}

	it.exhausted, it.failed, it.err, it.val = false, false, nil, nil
	it.stack = it.stack[:0]

	if it.t.pool == nil {
		it.fail(ErrDestroyed)
		return
	}
	it.t.dirty = false

	it.key.SetLen(0)
	Copy(&it.key, it.start, 0, 0, it.start.Len())

	switch it.kind {
	case suffixIter:
		n := it.t.prefixWalk(it.t.root, it.start)
		if n == nilRef {
			it.exhausted = true
			return
		}
		it.stack = append(it.stack, frame{node: n, next: nilRef, phase: phaseDescend})
	case prefixIter:
		it.cur, it.pos = it.t.root, 0
		it.key.SetLen(0)
	}
}

// Next advances to the next key and reports whether there is one. It returns
// false when the walk is exhausted or the iterator failed, see Err.
func (it *Iterator) Next() bool {
	switch {
	case it.closed:
		it.err = ErrIteratorClosed
		return false
	case it.failed, it.exhausted:
		return false
	case it.t.pool == nil:
		it.fail(ErrDestroyed)
		return false
	case it.t.dirty:
		tracer().Infof("iterator invalidated: trie modified during iteration")
		it.fail(ErrIteratorInvalidated)
		return false
	}

	if it.kind == prefixIter {
		return it.nextPrefix()
	}
	return it.nextSuffix()
}

func (it *Iterator) nextSuffix() bool {
	nodes := it.t.pool.nodes

	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		switch top.phase {
		case phaseDescend:
			top.phase = phaseAdvance
			top.next = nilRef
			if len(it.stack)-1 < it.maxDepth {
				top.next = nodes[top.node].children
			}
			if nd := &nodes[top.node]; nd.set {
				it.val = nd.val
				return true
			}

		case phaseAdvance:
			if c := top.next; c != nilRef {
				top.next = nodes[c].next
				it.key.push(nodes[c].ch)
				it.stack = append(it.stack, frame{node: c, next: nilRef, phase: phaseDescend})
				continue
			}
			// all children done
			it.stack = it.stack[:len(it.stack)-1]
			if len(it.stack) > 0 {
				it.key.SetLen(it.key.Len() - 1)
			}
		}
	}

	it.exhausted = true
	it.val = nil
	return false
}

func (it *Iterator) nextPrefix() bool {
	for it.pos < it.maxDepth {
		it.cur = it.t.child(it.cur, it.start.get(it.pos))
		if it.cur == nilRef {
			break
		}
		it.pos++

		if nd := &it.t.pool.nodes[it.cur]; nd.set {
			it.key.SetLen(it.pos)
			it.val = nd.val
			return true
		}
	}

	it.exhausted = true
	it.val = nil
	return false
}

func (it *Iterator) fail(err error) {
	it.failed = true
	it.err = err
	it.val = nil
	it.stack = it.stack[:0]
}

// Key returns the current key. It is a view of the iterator's scratch buffer
// valid until the next call to Next or Reset.
func (it *Iterator) Key() Key {
	return it.key
}

// Value returns the value of the current key.
func (it *Iterator) Value() any {
	return it.val
}

// Err returns the error which made the iterator fail, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Exhausted reports whether every key has been produced.
func (it *Iterator) Exhausted() bool {
	return it.exhausted
}

// Failed reports whether the iterator stopped on an error.
func (it *Iterator) Failed() bool {
	return it.failed
}

// Close releases the iterator's buffers. Next returns false afterwards.
func (it *Iterator) Close() {
	it.closed = true
	it.stack = nil
	it.key = Key{}
	it.start = Key{}
	it.val = nil
}
