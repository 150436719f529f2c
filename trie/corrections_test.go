package trie

import (
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "triez")
	defer teardown()

	tr := newTrie(t, "cat", "cats", "bat")

	for _, tcase := range []*struct {
		Key  string
		Dist int
		Exp  []string
	}{
		{"cat", 0, []string{"cat"}},
		{"cot", 1, []string{"cat"}},
		{"at", 1, []string{"bat", "cat"}},
		{"cat", 1, []string{"bat", "cat", "cats"}},
		{"act", 1, []string{"cat"}},  // transposition
		{"caat", 1, []string{"cat"}}, // deletion
		{"cts", 1, []string{"cats"}}, // insertion
		{"cst", 1, []string{"cat"}},  // substitution
		{"at", 2, []string{"bat", "cat", "cats"}},
		{"dog", 1, nil},
		{"", 0, nil},
		{"", 1, nil},
		{"", 3, []string{"bat", "cat"}},
		{"", 1 << 40, []string{"bat", "cat", "cats"}},
		{"cat", 100, []string{"bat", "cat", "cats"}},
		{"cat", math.MaxInt, []string{"bat", "cat", "cats"}},
		{"dog", math.MaxInt, []string{"bat", "cat", "cats"}},
	} {
		name := fmt.Sprintf("%s/%d", tcase.Key, tcase.Dist)

		keys, err := tr.Correct(FromString(tcase.Key), tcase.Dist)
		require.NoError(t, err, name)
		assert.Equal(t, tcase.Exp, strs(keys), name)
	}
}

func TestCorrections_Values(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "cat", "cats", "bat")

	got := map[string]any{}
	err := tr.Corrections(FromString("bats"), 1, func(k Key, v any) bool {
		got[k.String()] = v
		return true
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"bat": 2, "cats": 1}, got)
}

func TestCorrections_Stop(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "cat", "cats", "bat")

	var found []string
	err := tr.Corrections(FromString("cat"), 1, func(k Key, _ any) bool {
		found = append(found, k.String())
		return false
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"bat"}, found)
}

func TestCorrections_Invalid(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "cat")

	_, err := tr.Correct(FromString("cat"), -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	narrow, err := New(WithCharWidth(Width1))
	require.NoError(t, err)
	_, err = narrow.Correct(FromString("дом"), 1)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestCorrections_Unchanged(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "kitten", "sitting", "mitten", "bitten", "kitchen")
	tr.dirty = false

	keys, err := tr.Correct(FromString("kitten"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"bitten", "kitchen", "kitten", "mitten"}, strs(keys))

	// a search doesn't modify the trie
	assert.False(t, tr.dirty)
	assert.Equal(t, 5, tr.ItemCount())
	assert.NoError(t, tr.Verify())
}

func TestCorrections_WideKeys(t *testing.T) {
	t.Parallel()

	tr, err := New(WithCharWidth(Width2))
	require.NoError(t, err)

	for i, w := range []string{"дом", "дым", "дома"} {
		require.NoError(t, tr.Add(FromString(w), i))
	}

	keys, err := tr.Correct(FromString("дол"), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"дом"}, strs(keys))

	// a 1-byte query matches 2-byte branches
	tr2, err := New(WithCharWidth(Width2))
	require.NoError(t, err)
	require.NoError(t, tr2.Add(FromString("ab€"), 1))

	keys, err = tr2.Correct(FromString("ab"), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab€"}, strs(keys))
}
