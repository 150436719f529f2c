package trie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Str      string
		ExpWidth Width
		ExpLen   int
	}{
		{"", Width1, 0},
		{"abc", Width1, 3},
		{"café", Width1, 4},
		{"дом", Width2, 3},
		{"a€", Width2, 2},
		{"😀x", Width4, 2},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%q", tcase.Str)
		)

		t.Run(name, func(t *testing.T) {
			k := FromString(tcase.Str)

			assert.Equal(t, tcase.ExpWidth, k.Width())
			assert.Equal(t, tcase.ExpLen, k.Len())
			assert.Equal(t, tcase.Str, k.String())
		})
	}
}

func TestWidth_Valid(t *testing.T) {
	t.Parallel()

	for _, w := range []Width{Width1, Width2, Width4} {
		assert.True(t, w.Valid(), w)
	}
	for _, w := range []Width{0, 3, 8} {
		assert.False(t, w.Valid(), w)
	}
}

func TestKey_AtSet(t *testing.T) {
	t.Parallel()

	k := NewKey(3, Width2)

	k.Set(0, 'a')
	k.Set(2, 0xFFFF)

	u, ok := k.At(0)
	assert.True(t, ok)
	assert.Equal(t, uint32('a'), u)

	u, ok = k.At(2)
	assert.True(t, ok)
	assert.Equal(t, uint32(0xFFFF), u)

	_, ok = k.At(3)
	assert.False(t, ok, "reading past the length")

	_, ok = k.At(-1)
	assert.False(t, ok)

	assert.Panics(t, func() { k.Set(3, 'x') }, "writing past the capacity")
	assert.Panics(t, func() { k.Set(0, 0x10000) }, "unit too wide")
}

func TestKey_SetLen(t *testing.T) {
	t.Parallel()

	k := FromString("hello")

	k.SetLen(2)
	assert.Equal(t, "he", k.String())
	assert.Equal(t, 5, k.Cap())

	k.SetLen(5)
	assert.Equal(t, "hello", k.String())

	assert.Panics(t, func() { k.SetLen(6) })
}

func TestCopy(t *testing.T) {
	t.Parallel()

	t.Run("same width", func(t *testing.T) {
		dst := NewKey(6, Width1)
		dst.SetLen(0)

		Copy(&dst, FromString("abc"), 0, 0, 3)
		Copy(&dst, FromString("xyz"), 3, 1, 2)

		assert.Equal(t, "abcyz", dst.String())
	})

	t.Run("widening", func(t *testing.T) {
		dst := NewKey(4, Width4)
		dst.SetLen(0)

		Copy(&dst, FromBytes([]byte{0xFF, 'b'}), 1, 0, 2)

		assert.Equal(t, 3, dst.Len())
		assert.Equal(t, []uint32{0, 0xFF, 'b'}, dst.Units())
	})

	t.Run("narrowing", func(t *testing.T) {
		dst := NewKey(4, Width1)

		assert.Panics(t, func() { Copy(&dst, FromString("дом"), 0, 0, 3) })
	})

	t.Run("out of range", func(t *testing.T) {
		dst := NewKey(2, Width1)

		assert.Panics(t, func() { Copy(&dst, FromString("abc"), 0, 0, 3) })
		assert.Panics(t, func() { Copy(&dst, FromString("abc"), 0, 2, 2) })
	})
}

func TestFromUnits(t *testing.T) {
	t.Parallel()

	k, err := FromUnits([]uint32{'a', 0x100}, Width2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{'a', 0x100}, k.Units())

	_, err = FromUnits([]uint32{'a', 0x100}, Width1)
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = FromUnits(nil, 3)
	assert.ErrorIs(t, err, ErrInvalidKey)

	assert.Panics(t, func() { NewKey(1, 3) })
}

func TestKey_Equal(t *testing.T) {
	t.Parallel()

	narrow := FromString("abc")
	wide := FromRunes([]rune("abc"))

	assert.True(t, narrow.Equal(wide))
	assert.True(t, wide.Equal(narrow))
	assert.False(t, narrow.Equal(FromString("ab")))
	assert.False(t, narrow.Equal(FromString("abd")))
	assert.True(t, Key{}.Equal(FromString("")))
}

func TestKey_Clone(t *testing.T) {
	t.Parallel()

	k := FromString("abc")
	c := k.Clone()

	k.Set(0, 'x')

	assert.Equal(t, "abc", c.String())
	assert.Equal(t, "xbc", k.String())
}

func TestFromUTF16(t *testing.T) {
	t.Parallel()

	k := FromUTF16([]uint16{'h', 0xD83D, 0xDE00}) // h + surrogate pair

	assert.Equal(t, Width2, k.Width())
	assert.Equal(t, 3, k.Len())
	assert.Equal(t, "h😀", k.String())
}

func TestKey_Edits(t *testing.T) {
	t.Parallel()

	var k Key // zero keys grow as 1-byte ones

	k.push('a')
	k.push('c')
	k.insertAt(1, 'b')
	assert.Equal(t, "abc", k.String())

	k.insertAt(3, 'd')
	assert.Equal(t, "abcd", k.String())

	assert.Equal(t, uint32('a'), k.removeAt(0))
	assert.Equal(t, "bcd", k.String())

	k.swap(0, 2)
	assert.Equal(t, "dcb", k.String())
}

func TestKey_Encode(t *testing.T) {
	t.Parallel()

	for _, str := range []string{"a", "дом", "😀x", "a\x00b"} {
		k := FromString(str)

		for _, w := range []Width{Width2, Width4} {
			if w < k.Width() {
				continue
			}
			enc := k.encode(nil, w)

			assert.Len(t, enc, k.Len()*(1+int(w)))

			dec := decodeKey(enc, w)
			assert.Equal(t, w, dec.Width())
			assert.True(t, k.Equal(dec), "%q at width %d", str, w)
		}
	}

	// a key sorts before its extensions
	assert.Less(t, string(FromString("ab").encode(nil, Width1)), string(FromString("ab\x00").encode(nil, Width1)))
}
