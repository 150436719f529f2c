// Package trie implements a character trie (prefix tree) keyed by sequences of
// fixed-width code units.
//
// Nodes are kept in an arena and linked with a first-child/next-sibling
// encoding, so every node holds a single character:
//
//	[root]--[i]*--[n]*--[n]*
//	         |
//	        [t]---[e]---[n]*
//	               |     |
//	               |    [a]*
//	               |
//	              [o]*
//
// Edges to the right lead to the first child, edges down lead to the next
// sibling, and * marks a node holding a value. The trie above stores "to",
// "tea", "ten", "i", "in" and "inn" inserted in that order. New siblings are
// always prepended, so the most recently inserted branch is visited first.
//
// Keys may use 1, 2 or 4-byte code units. A trie is created with a fixed
// character width and accepts any key whose width is not larger than that.
// Narrower keys are widened on read, never the other way round.
//
// The trie is not safe for concurrent use. Iterators detect (but do not
// prevent) modifications made while they are active: any successful Add or
// Delete makes the next call to Iterator.Next fail with
// ErrIteratorInvalidated.
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'triez'
func tracer() tracing.Trace {
	return tracing.Select("triez")
}
