// Package demotable builds a small, self-contained suffix-stripping table
// in-process. The retrieval pack that grounds this rebuild ships no real
// upstream binary table or word/stem corpus, so the cmd/ front-ends
// demonstrate the engines against a hand-built table instead of an
// embedded binary blob.
package demotable

import "github.com/mattico/rstempel/trie"

// Build returns a tiny MultiTrie2 over a single suffix-stripping trie:
// Polish-style nominal endings "ski"/"ów" are deleted outright, and a
// plain "a" ending is left alone (a skip command), giving both a Delete
// and a Skip path to exercise.
func Build() *trie.MultiTrie2 {
	t := trie.New(false) // consumed last-character-first: suffix stripping
	t.Add([]rune("ski"), "Dc") // delete 3 trailing chars ('c'-'a'=2, width 3)
	t.Add([]rune("ów"), "Db")  // delete 2 trailing chars ('b'-'a'=1, width 2)
	t.Add([]rune("a"), "-a")   // leave a trailing "a" alone

	mt := trie.NewMultiTrie(false, 0)
	mt.Tries = append(mt.Tries, t)
	return &trie.MultiTrie2{Inner: mt}
}
