package trie

import "errors"

var (
	// ErrAllocation signals that a node could not be allocated.
	ErrAllocation = errors.New("trie: node allocation failed")
	// ErrInvalidKey signals a key that is too wide for the trie or empty
	// where a non-empty key is required.
	ErrInvalidKey = errors.New("trie: invalid key")
	// ErrInvalidConfig signals an invalid trie option.
	ErrInvalidConfig = errors.New("trie: invalid configuration")
	// ErrInvalidArgument signals an invalid non-key argument.
	ErrInvalidArgument = errors.New("trie: invalid argument")
	// ErrIteratorInvalidated signals that the trie was modified while an
	// iterator was active. The iterator stays failed until Reset.
	ErrIteratorInvalidated = errors.New("trie: modified during iteration")
	// ErrIteratorClosed signals the use of a closed iterator.
	ErrIteratorClosed = errors.New("trie: iterator is closed")
	// ErrDestroyed signals the use of a destroyed trie.
	ErrDestroyed = errors.New("trie: trie is destroyed")
	// ErrCorrupt is reported by Verify when an invariant does not hold.
	ErrCorrupt = errors.New("trie: structure is corrupt")
)
