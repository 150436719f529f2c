// Package bitmap keeps a growable set of small non-negative integers packed
// into 64-bit words.
package bitmap

import (
	"github.com/hideo55/go-popcount"
)

// Bitmap is a set of non-negative ints packed into 64-bit words.
type Bitmap struct {
	words []uint64
	size  uint64
}

// New returns a Bitmap with room for at least preAlloc entries.
func New(preAlloc int) *Bitmap {
	if preAlloc <= 0 {
		preAlloc = 256
	}
	return &Bitmap{
		words: make([]uint64, 0, (preAlloc+63)>>6),
	}
}

// Len returns the number of set bits as maintained by Add/Del.
func (b *Bitmap) Len() uint64 {
	if b == nil {
		return 0
	}
	return b.size
}

// Has reports whether bit i is set.
func (b *Bitmap) Has(i int) bool {
	if b == nil || i < 0 {
		return false
	}
	off := i >> 6
	if off >= len(b.words) {
		return false
	}
	return (b.words[off]>>(uint(i)&0x3F))&0x01 != 0
}

// Add sets bit i and reports whether it was clear before.
func (b *Bitmap) Add(i int) bool {
	if i < 0 {
		return false
	}
	off := i >> 6
	for off >= len(b.words) {
		b.words = append(b.words, 0)
	}
	mask := uint64(1) << (uint(i) & 0x3F) // the lowest 6 bits (2**6 == 64)
	if b.words[off]&mask != 0 {
		return false
	}
	b.words[off] |= mask
	b.size++
	return true
}

// Del clears bit i and reports whether it was set before.
func (b *Bitmap) Del(i int) bool {
	if !b.Has(i) {
		return false
	}
	b.words[i>>6] &^= uint64(1) << (uint(i) & 0x3F)
	b.size--
	return true
}

// Count recounts the set bits word by word.
func (b *Bitmap) Count() (cnt uint64) {
	if b == nil {
		return 0
	}
	for _, w := range b.words {
		cnt += popcount.Count(w)
	}
	return
}

// Reset forgets every bit (not freeing the memory)
func (b *Bitmap) Reset() {
	b.words = b.words[:0]
	b.size = 0
}
