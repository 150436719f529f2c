// Package set implements a sorted set of byte strings as a crit-bit tree.
//
// Keys are compared as if padded with zero bytes, so a key ending where
// another one continues with zeros can't be told apart from it, and the empty
// key can't be stored. Callers storing such keys should encode them first,
// e.g. by prefixing every unit with a non-zero marker byte.
package set

// Ref holds either a Key or a Node pointer
type Ref struct {
	Key  []byte
	node *Node
}

type Node struct {
	child [2]Ref
	// off is the offset of the differing byte
	off int
	// bit contains the single crit bit in the differing byte
	bit byte
}

type Set struct {
	size int
	root Ref
}

// dir calculates the direction for the given key
func (n *Node) dir(key []byte) byte {
	if n.off < len(key) && key[n.off]&n.bit != 0 {
		return 1
	}
	return 0
}

func NewSet(keys ...[]byte) *Set {
	set := &Set{}
	for _, key := range keys {
		set.Add(key)
	}
	return set
}

// Len returns the number of keys in the set.
func (t *Set) Len() int {
	return t.size
}

func (t *Set) Empty() bool {
	return t.root.node == nil && len(t.root.Key) == 0
}

// best walks to the leaf sharing the most bits with key.
func (t *Set) best(key []byte) *Ref {
	p := &t.root
	for p.node != nil {
		p = &p.node.child[p.node.dir(key)]
	}
	return p
}

// Add inserts a key and reports whether it was not there before. The set
// keeps the key slice, it must not be modified afterwards.
func (t *Set) Add(key []byte) bool {
	if len(key) == 0 {
		return false
	}
	if t.Empty() {
		t.root.Key = key
		t.size++
		return true
	}

	p := t.best(key)

	// find critical bit
	var (
		off     int
		ch, bit byte
		klen    = len(key)
		plen    = len(p.Key)
	)
	for off = 0; off < klen; off++ {
		if ch = 0; off < plen {
			ch = p.Key[off]
		}
		if keych := key[off]; ch != keych {
			bit = ch ^ keych
			goto ByteFound
		}
	}
	if off < plen {
		ch = p.Key[off]
		bit = ch
		goto ByteFound
	}
	// key exists
	return false

ByteFound:
	// keep the highest differing bit only
	bit |= bit >> 1
	bit |= bit >> 2
	bit |= bit >> 4
	bit = bit &^ (bit >> 1)

	var ndir byte
	if ch&bit != 0 {
		ndir++
	}

	nn := Node{off: off, bit: bit}
	nn.child[1-ndir].Key = key

	// walk for best insertion node
	wp := &t.root
	for wp.node != nil {
		n := wp.node
		if n.off > off || n.off == off && n.bit < bit {
			break
		}
		wp = &n.child[n.dir(key)]
	}
	nn.child[ndir] = *wp
	wp.node = &nn
	wp.Key = nil
	t.size++

	return true
}

// Iter calls a handler for all keys with a given prefix in the sorted order.
// It returns whether all prefixed keys were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Set) Iter(prefix []byte, handler func([]byte) bool) bool {
	if t.Empty() {
		return true
	}
	if len(prefix) == 0 {
		return t.iterate(t.root, handler)
	}

	// walk for best member
	p, top := t.root, t.root
	for p.node != nil {
		newtop := p.node.off < len(prefix)
		p = p.node.child[p.node.dir(prefix)]
		if newtop {
			top = p
		}
	}
	if len(p.Key) < len(prefix) {
		return true
	}
	for i := 0; i < len(prefix); i++ {
		if p.Key[i] != prefix[i] {
			return true
		}
	}
	return t.iterate(top, handler)
}

// iterate calls the key handler or traverses both node children unless aborted.
func (t *Set) iterate(p Ref, h func([]byte) bool) bool {
	if p.node != nil {
		return t.iterate(p.node.child[0], h) && t.iterate(p.node.child[1], h)
	}
	return h(p.Key)
}
