package trie

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Width is the size of a single code unit in bytes.
type Width uint8

const (
	Width1 Width = 1
	Width2 Width = 2
	Width4 Width = 4
)

// Valid reports whether w is a supported width.
func (w Width) Valid() bool {
	return w == Width1 || w == Width2 || w == Width4
}

// Max returns the largest code unit a Width can hold.
func (w Width) Max() uint32 {
	switch w {
	case Width1:
		return 0xFF
	case Width2:
		return 0xFFFF
	default:
		return 0xFFFFFFFF
	}
}

// widthFor returns the narrowest Width able to hold v.
func widthFor(v uint32) Width {
	switch {
	case v <= 0xFF:
		return Width1
	case v <= 0xFFFF:
		return Width2
	default:
		return Width4
	}
}

// Key is a growable buffer of code units of a single Width.
//
// Keys are small values sharing their backing buffer when copied: a Key
// handed out by an enumeration is scratch storage and has to be cloned to be
// kept past the call.
type Key struct {
	data  []byte // little-endian code units
	width Width
	n     int // units in use
}

// NewKey returns a zero-filled key of the given length and width.
func NewKey(length int, width Width) Key {
	if !width.Valid() {
		panic(fmt.Sprintf("trie: invalid key width %d", width))
	}
	if length < 0 {
		panic("trie: negative key length")
	}
	return Key{
		data:  make([]byte, length*int(width)),
		width: width,
		n:     length,
	}
}

// FromBytes returns a 1-byte key holding a copy of b.
func FromBytes(b []byte) Key {
	k := NewKey(len(b), Width1)
	copy(k.data, b)
	return k
}

// FromUTF16 returns a 2-byte key holding the given UTF-16 code units
// (surrogate pairs stay as two units).
func FromUTF16(units []uint16) Key {
	k := NewKey(len(units), Width2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(k.data[i<<1:], u)
	}
	return k
}

// FromRunes returns a 4-byte key holding the given runes.
func FromRunes(runes []rune) Key {
	k := NewKey(len(runes), Width4)
	for i, r := range runes {
		binary.LittleEndian.PutUint32(k.data[i<<2:], uint32(r))
	}
	return k
}

// FromString returns a key holding the runes of s using the narrowest width
// able to represent every one of them.
func FromString(s string) Key {
	var (
		maxRune rune
		count   int
	)

	for _, r := range s {
		if r > maxRune {
			maxRune = r
		}
		count++
	}

	k := NewKey(count, widthFor(uint32(maxRune)))
	i := 0
	for _, r := range s {
		k.put(i, uint32(r))
		i++
	}

	return k
}

// FromUnits returns a key of the given width holding units. It fails with
// ErrInvalidKey when a unit does not fit the width.
func FromUnits(units []uint32, width Width) (Key, error) {
	if !width.Valid() {
		return Key{}, fmt.Errorf("%w: width %d", ErrInvalidKey, width)
	}

	k := NewKey(len(units), width)
	for i, u := range units {
		if u > width.Max() {
			return Key{}, fmt.Errorf("%w: unit %#x at %d exceeds width %d", ErrInvalidKey, u, i, width)
		}
		k.put(i, u)
	}

	return k, nil
}

// Len returns the number of units in use.
func (k Key) Len() int {
	return k.n
}

// Cap returns the number of units the buffer can hold without growing.
func (k Key) Cap() int {
	if k.width == 0 {
		return 0
	}
	return len(k.data) / int(k.width)
}

// Width returns the unit width. The zero Key reports Width1.
func (k Key) Width() Width {
	if k.width == 0 {
		return Width1
	}
	return k.width
}

// At returns the unit at index i, or false when i is out of range.
func (k Key) At(i int) (uint32, bool) {
	if i < 0 || i >= k.n {
		return 0, false
	}
	return k.get(i), true
}

// get reads a unit without checking i against the length.
func (k Key) get(i int) uint32 {
	switch k.width {
	case Width1:
		return uint32(k.data[i])
	case Width2:
		return uint32(binary.LittleEndian.Uint16(k.data[i<<1:]))
	default:
		return binary.LittleEndian.Uint32(k.data[i<<2:])
	}
}

// put writes a unit without any check.
func (k Key) put(i int, v uint32) {
	switch k.width {
	case Width1:
		k.data[i] = byte(v)
	case Width2:
		binary.LittleEndian.PutUint16(k.data[i<<1:], uint16(v))
	default:
		binary.LittleEndian.PutUint32(k.data[i<<2:], v)
	}
}

// Set writes v at index i. It panics when i is beyond the capacity or v
// doesn't fit the width. Set doesn't change the length.
func (k Key) Set(i int, v uint32) {
	if i < 0 || i >= k.Cap() {
		panic(fmt.Sprintf("trie: key index %d out of range [0:%d]", i, k.Cap()))
	}
	if v > k.width.Max() {
		panic(fmt.Sprintf("trie: unit %#x doesn't fit a %d-byte key", v, k.width))
	}
	k.put(i, v)
}

// SetLen changes the number of units in use within the capacity.
func (k *Key) SetLen(n int) {
	if n < 0 || n > k.Cap() {
		panic(fmt.Sprintf("trie: key length %d out of range [0:%d]", n, k.Cap()))
	}
	k.n = n
}

// Copy copies count units from src[srcOff:] into dst[dstOff:], widening each
// unit when dst is wider than src. dst's length grows to cover the copied
// range. It panics when dst is narrower than src or a range doesn't fit.
func Copy(dst *Key, src Key, dstOff, srcOff, count int) {
	if dst.Width() < src.Width() {
		panic(fmt.Sprintf("trie: narrowing copy from %d-byte to %d-byte key", src.Width(), dst.Width()))
	}
	if count < 0 || srcOff < 0 || dstOff < 0 || srcOff+count > src.n || dstOff+count > dst.Cap() {
		panic(fmt.Sprintf("trie: key copy out of range: dst[%d:%d] cap %d, src[%d:%d] len %d",
			dstOff, dstOff+count, dst.Cap(), srcOff, srcOff+count, src.n))
	}

	if count == 0 {
		return
	}

	if dst.width == src.width {
		w := int(src.width)
		copy(dst.data[dstOff*w:(dstOff+count)*w], src.data[srcOff*w:(srcOff+count)*w])
	} else {
		for i := 0; i < count; i++ {
			dst.put(dstOff+i, src.get(srcOff+i))
		}
	}

	if end := dstOff + count; end > dst.n {
		dst.n = end
	}
}

// Clone returns a copy of k not sharing its buffer.
func (k Key) Clone() Key {
	if k.width == 0 {
		return Key{}
	}
	c := NewKey(k.n, k.width)
	copy(c.data, k.data[:k.n*int(k.width)])
	return c
}

// Equal compares keys unit by unit regardless of their widths.
func (k Key) Equal(other Key) bool {
	if k.n != other.n {
		return false
	}
	for i := 0; i < k.n; i++ {
		if k.get(i) != other.get(i) {
			return false
		}
	}
	return true
}

// Units returns the units in use.
func (k Key) Units() []uint32 {
	units := make([]uint32, k.n)
	for i := range units {
		units[i] = k.get(i)
	}
	return units
}

// String decodes the units as text: 2-byte keys as UTF-16, the others as
// code points.
func (k Key) String() string {
	if k.width == Width2 {
		u16 := make([]uint16, k.n)
		for i := range u16 {
			u16[i] = uint16(k.get(i))
		}
		return string(utf16.Decode(u16))
	}

	var b strings.Builder

	b.Grow(k.n)
	for i := 0; i < k.n; i++ {
		r := rune(k.get(i))
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		b.WriteRune(r)
	}

	return b.String()
}

// grow makes sure the buffer holds at least n units.
func (k *Key) grow(n int) {
	if k.width == 0 {
		k.width = Width1
	}
	if n <= k.Cap() {
		return
	}
	c := k.Cap() * 2
	if c < n {
		c = n
	}
	data := make([]byte, c*int(k.width))
	copy(data, k.data)
	k.data = data
}

// push appends a unit.
func (k *Key) push(v uint32) {
	k.grow(k.n + 1)
	k.n++
	k.put(k.n-1, v)
}

// insertAt shifts k[i:] right by one unit and writes v at i.
func (k *Key) insertAt(i int, v uint32) {
	k.grow(k.n + 1)
	w := int(k.width)
	copy(k.data[(i+1)*w:(k.n+1)*w], k.data[i*w:k.n*w])
	k.n++
	k.put(i, v)
}

// removeAt shifts k[i+1:] left by one unit and returns the removed one.
func (k *Key) removeAt(i int) uint32 {
	v := k.get(i)
	w := int(k.width)
	copy(k.data[i*w:(k.n-1)*w], k.data[(i+1)*w:k.n*w])
	k.n--
	return v
}

// swap exchanges units i and j.
func (k Key) swap(i, j int) {
	a, b := k.get(i), k.get(j)
	k.put(i, b)
	k.put(j, a)
}

// encode appends a byte-wise comparable form of k widened to width w: every
// unit is written big-endian behind a 0x01 marker, so a key sorts before its
// extensions and no encoded key ends where another one has a zero byte.
func (k Key) encode(dst []byte, w Width) []byte {
	for i := 0; i < k.n; i++ {
		u := k.get(i)
		dst = append(dst, 0x01)
		switch w {
		case Width1:
			dst = append(dst, byte(u))
		case Width2:
			dst = append(dst, byte(u>>8), byte(u))
		default:
			dst = append(dst, byte(u>>24), byte(u>>16), byte(u>>8), byte(u))
		}
	}
	return dst
}

// decodeKey reverses encode.
func decodeKey(b []byte, w Width) Key {
	step := 1 + int(w)
	k := NewKey(len(b)/step, w)
	for i := 0; i < k.n; i++ {
		var (
			u   uint32
			off = i*step + 1
		)
		for j := 0; j < int(w); j++ {
			u = u<<8 | uint32(b[off+j])
		}
		k.put(i, u)
	}
	return k
}
