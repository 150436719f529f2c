package trie

import (
	"fmt"
	"unsafe"
)

// Trie maps keys to opaque values. The zero value is not usable, see New.
type Trie struct {
	pool  *nodePool
	root  ref
	width Width

	nodeCount int
	itemCount int
	// height is the longest key ever added
	height int
	// dirty is set by every change and cleared by iterators
	dirty bool
}

type options struct {
	width    Width
	maxNodes int
	capacity int
}

// Option configures a Trie.
type Option func(*options)

// WithCharWidth sets the character width of the nodes (4 by default). Keys
// wider than that are rejected.
func WithCharWidth(w Width) Option {
	return func(o *options) {
		o.width = w
	}
}

// WithMaxNodes limits the number of nodes (the root included). Add fails
// with ErrAllocation once the limit is reached.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		o.maxNodes = n
	}
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// New returns an empty Trie.
func New(opts ...Option) (*Trie, error) {
	o := options{width: Width4}

	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case !o.width.Valid():
		return nil, fmt.Errorf("%w: character width %d", ErrInvalidConfig, o.width)
	case o.maxNodes < 0:
		return nil, fmt.Errorf("%w: max nodes %d", ErrInvalidConfig, o.maxNodes)
	}

	t := &Trie{
		pool:   newNodePool(o.capacity, o.maxNodes),
		width:  o.width,
		height: 1,
	}

	root, err := t.pool.get(0, nil) // root is a dummy node
	if err != nil {
		return nil, err
	}

	t.root = root
	t.nodeCount = 1

	return t, nil
}

// NodeCount returns the number of nodes including the root.
func (t *Trie) NodeCount() int {
	return t.nodeCount
}

// ItemCount returns the number of stored keys.
func (t *Trie) ItemCount() int {
	return t.itemCount
}

// Height returns the length of the longest key ever added (at least 1).
func (t *Trie) Height() int {
	return t.height
}

// Width returns the character width of the nodes.
func (t *Trie) Width() Width {
	return t.width
}

// MemUsage returns an approximate number of bytes held by the trie.
func (t *Trie) MemUsage() uint64 {
	return uint64(unsafe.Sizeof(*t)) + uint64(t.nodeCount)*uint64(unsafe.Sizeof(node{}))
}

// Destroy frees every node. The trie can't be used afterwards; calling
// Destroy again does nothing.
func (t *Trie) Destroy() {
	if t.pool == nil {
		return
	}

	var (
		nodes = t.pool.nodes
		freed = t.nodeCount
	)

	// peel the deepest first-child leaf until only the root is left
	for t.nodeCount > 0 {
		var (
			cur    = t.root
			parent = nilRef
		)

		for nodes[cur].children != nilRef {
			parent = cur
			cur = nodes[cur].children
		}

		if parent != nilRef {
			nodes[parent].children = nodes[cur].next
			t.pool.put(cur)
		} else {
			t.pool.put(t.root) // root remaining
		}
		t.nodeCount--
	}

	tracer().Debugf("trie destroyed, %d nodes freed", freed)

	t.pool.reset()
	t.pool = nil
	t.root = nilRef
	t.itemCount = 0
	t.dirty = true
}

// checkKey validates a key against the trie.
func (t *Trie) checkKey(key Key) error {
	if t.pool == nil {
		return ErrDestroyed
	}
	if key.Width() > t.width {
		return fmt.Errorf("%w: %d-byte key in a %d-byte trie", ErrInvalidKey, key.Width(), t.width)
	}
	return nil
}

// Search returns the value stored for key. A missing key (or a key being
// only a prefix of stored ones) is reported with ok == false.
func (t *Trie) Search(key Key) (val any, ok bool, err error) {
	if err = t.checkKey(key); err != nil || key.Len() == 0 {
		return nil, false, err
	}

	n := t.prefixWalk(t.root, key)
	if n == nilRef || !t.pool.nodes[n].set {
		return nil, false, nil
	}

	return t.pool.nodes[n].val, true, nil
}

// Add associates val with key, replacing the previous value (if any).
func (t *Trie) Add(key Key, val any) error {
	if err := t.checkKey(key); err != nil {
		return err
	}
	if key.Len() == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	var (
		parent = t.root
		first  = nilRef // the first node created by this call
		anchor = nilRef // its parent
	)

	for i := 0; i < key.Len(); i++ {
		ch := key.get(i)
		cur := t.child(parent, ch)

		if cur == nilRef {
			n, err := t.pool.get(ch, nil)
			if err != nil {
				t.unlinkChain(anchor, first)
				tracer().Errorf("adding %q failed at character %d of %d: %v", key, i, key.Len(), err)
				return fmt.Errorf("%w: %d nodes in use", err, t.nodeCount)
			}

			// prepend to the siblings
			t.pool.nodes[n].next = t.pool.nodes[parent].children
			t.pool.nodes[parent].children = n
			t.nodeCount++

			if first == nilRef {
				first, anchor = n, parent
			}
			cur = n
		}
		parent = cur
	}

	term := &t.pool.nodes[parent]

	if !term.set {
		term.set = true
		t.itemCount++
	}
	term.val = val
	t.dirty = true

	if key.Len() > t.height {
		t.height = key.Len()
	}

	return nil
}

// unlinkChain removes a chain of value-less nodes created by a failed Add.
// The chain head is the first child of anchor; every node of the chain has
// exactly one child.
func (t *Trie) unlinkChain(anchor, head ref) {
	if head == nilRef {
		return
	}

	nodes := t.pool.nodes
	nodes[anchor].children = nodes[head].next

	for cur := head; cur != nilRef; {
		next := nodes[cur].children
		t.pool.put(cur)
		t.nodeCount--
		cur = next
	}
}

// Delete removes key and reports whether it was present. Nodes left without
// a value and without children are freed on the way.
func (t *Trie) Delete(key Key) (bool, error) {
	if err := t.checkKey(key); err != nil || key.Len() == 0 {
		return false, err
	}

	// a missing key must not touch the tree at all
	if n := t.prefixWalk(t.root, key); n == nilRef || !t.pool.nodes[n].set {
		return false, nil
	}

	t.deleteFast(key)
	t.itemCount--
	t.dirty = true

	return true, nil
}

// deleteFast removes a key known to be present in O(len(key)).
//
// On the way down every matched node is moved to the head of its sibling
// list and its children link is borrowed to point back at its parent. On the
// way up the links are restored, and nodes having neither a value nor
// children are freed. Being at the head of the list, a freed node is
// replaced by its next sibling.
func (t *Trie) deleteFast(key Key) {
	var (
		nodes  = t.pool.nodes
		parent = t.root
		curr   = nodes[t.root].children
		depth  int
	)

	for ; depth < key.Len(); depth++ {
		var (
			ch   = key.get(depth)
			prev = curr
			it   = curr
		)

		for nodes[it].ch != ch {
			prev = it
			it = nodes[it].next
		}
		if it != curr {
			// move the matched node to the head
			nodes[prev].next = nodes[it].next
			nodes[it].next = curr
		}

		curr = nodes[it].children
		nodes[it].children = parent
		parent = it
	}

	nodes[parent].set = false
	nodes[parent].val = nil

	// walk back up
	prev := curr
	curr = parent

	for ; depth > 0; depth-- {
		up := nodes[curr].children
		nodes[curr].children = prev

		if prev == nilRef && !nodes[curr].set {
			prev = nodes[curr].next
			t.pool.put(curr)
			t.nodeCount--
		} else {
			prev = curr
		}
		curr = up
	}

	nodes[t.root].children = prev
}
