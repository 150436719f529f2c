package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	corrupt := func(t *testing.T, mutate func(tr *Trie)) error {
		tr := newTrie(t, "ab", "ac", "b")
		require.NoError(t, tr.Verify())

		mutate(tr)
		return tr.Verify()
	}

	for _, tcase := range []*struct {
		Name   string
		Mutate func(tr *Trie)
	}{
		{"item count", func(tr *Trie) { tr.itemCount++ }},
		{"node count", func(tr *Trie) { tr.nodeCount-- }},
		{"root value", func(tr *Trie) { tr.pool.nodes[tr.root].set = true }},
		{"garbage", func(tr *Trie) {
			n := tr.child(tr.root, 'b')
			tr.pool.nodes[n].set = false
			tr.itemCount--
		}},
		{"leaked node", func(tr *Trie) {
			_, _ = tr.pool.get('x', nil)
		}},
		{"cycle", func(tr *Trie) {
			a := tr.child(tr.root, 'a')
			c := tr.child(a, 'c')
			tr.pool.nodes[c].children = a
		}},
		{"free slot", func(tr *Trie) {
			a := tr.child(tr.root, 'a')
			b := tr.child(a, 'b')
			tr.pool.live.Del(int(b))
		}},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			assert.ErrorIs(t, corrupt(t, tcase.Mutate), ErrCorrupt)
		})
	}
}
