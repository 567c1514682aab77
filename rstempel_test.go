package rstempel

import (
	"testing"

	"github.com/mattico/rstempel/internal/demotable"
	"github.com/mattico/rstempel/packed"
	"github.com/mattico/rstempel/trie"
	"github.com/stretchr/testify/require"
)

func TestStemIdentityUnderThreshold(t *testing.T) {
	s := NewFromMultiTrie2(demotable.Build())
	for _, w := range []string{"", "a", "ab", "abc"} {
		result := s.Stem(w)
		require.False(t, result.Changed)
		require.Equal(t, w, result.Word)
	}
}

func TestStemDeterministic(t *testing.T) {
	s := NewFromMultiTrie2(demotable.Build())
	a := s.Stem("kowalski")
	b := s.Stem("kowalski")
	require.Equal(t, a, b)
}

func TestStemNoPathUnchanged(t *testing.T) {
	s := NewFromMultiTrie2(demotable.Build())
	result := s.Stem("xyzxyzxyz")
	require.False(t, result.Changed)
	require.Equal(t, "xyzxyzxyz", result.Word)
}

func TestStemPlainTrieDispatch(t *testing.T) {
	tr := trie.New(false)
	tr.Add([]rune("ski"), "Dc")
	s := NewFromTrie(tr)

	result := s.Stem("kowalski")
	require.True(t, result.Changed)
	require.Equal(t, "kowal", result.Word)
}

func TestPackedEngineMatchesReferenceEngine(t *testing.T) {
	words := []string{"kowalski", "domów", "abc", "xyzxyzxyz", "zażółć"}

	mt := demotable.Build()
	ref := NewFromMultiTrie2(mt)
	pk, err := packed.Build(mt)
	require.NoError(t, err)

	for _, w := range words {
		refResult := ref.Stem(w)
		pkResult := pk.Stem(w)
		require.Equal(t, refResult.Word, pkResult.Word, "word %q", w)
		require.Equal(t, refResult.Changed, pkResult.Changed, "word %q", w)
	}
}
