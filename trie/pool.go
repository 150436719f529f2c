package trie

import (
	"math"

	"github.com/aglyzov/go-triez/bitmap"
)

// ref is an index of a node in the pool
type ref int32

const nilRef ref = -1

type node struct {
	ch  uint32
	val any
	// set tells whether the node terminates a stored key
	set bool
	// next is the next sibling sharing the same parent
	next ref
	// children is the first child
	children ref
}

// nodePool is an arena of nodes addressed by index. Freed slots are reused
// by subsequent get calls.
type nodePool struct {
	nodes   []node
	freeIdx []ref
	live    *bitmap.Bitmap
	max     int // 0 - unlimited
}

func newNodePool(preAlloc, max int) *nodePool {
	if preAlloc <= 0 {
		preAlloc = 256
	}
	return &nodePool{
		nodes:   make([]node, 0, preAlloc),
		freeIdx: make([]ref, 0, 21),
		live:    bitmap.New(preAlloc),
		max:     max,
	}
}

// get allocates a new node (if necessary) and returns its index.
// Pointers into the pool are not valid across get calls.
func (p *nodePool) get(ch uint32, val any) (idx ref, err error) {
	if p.max > 0 && p.live.Len() >= uint64(p.max) {
		return nilRef, ErrAllocation
	}

	if l := len(p.freeIdx); l > 0 {
		idx = p.freeIdx[l-1]
		p.freeIdx = p.freeIdx[:l-1]
	} else {
		if len(p.nodes) >= math.MaxInt32 {
			return nilRef, ErrAllocation
		}
		p.nodes = append(p.nodes, node{})
		idx = ref(len(p.nodes) - 1)
	}

	p.nodes[idx] = node{
		ch:       ch,
		val:      val,
		next:     nilRef,
		children: nilRef,
	}
	p.live.Add(int(idx))

	return idx, nil
}

// put frees exactly one node and keeps its index for a re-use. The stored
// value is dropped, never finalized.
func (p *nodePool) put(idx ref) {
	p.nodes[idx] = node{next: nilRef, children: nilRef}
	p.freeIdx = append(p.freeIdx, idx)
	p.live.Del(int(idx))
}

// inUse returns the number of allocated nodes.
func (p *nodePool) inUse() int {
	return int(p.live.Count())
}

// reset forgets about stored nodes and free-list indices (not freeing the memory)
func (p *nodePool) reset() {
	for i := range p.nodes {
		p.nodes[i] = node{}
	}
	p.nodes = p.nodes[:0]
	p.freeIdx = p.freeIdx[:0]
	p.live.Reset()
}
