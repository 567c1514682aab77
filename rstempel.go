// Package rstempel loads a table-driven stemmer and stems words against
// it, compatible with the upstream Egothor/Stempel binary table format.
package rstempel

import (
	"io"
	"strings"

	"github.com/mattico/rstempel/editcmd"
	"github.com/mattico/rstempel/javaio"
	"github.com/mattico/rstempel/trie"
)

// stemEngine is a tagged union over the two table shapes a loaded method
// string can select: a plain Trie, or a MultiTrie2. Exactly one of the two
// fields is set, and which one is set selects the case; this beats an interface here because there are only
// ever two cases and dispatch happens once per Stem call.
type stemEngine struct {
	multi *trie.MultiTrie2
	plain *trie.Trie
}

func (e stemEngine) getLastOnPath(word []rune) (string, bool) {
	if e.multi != nil {
		return e.multi.GetLastOnPath(word)
	}
	return e.plain.GetLastOnPath(word)
}

// Stemmer holds an immutable, loaded table. It is safe for concurrent use
// by multiple goroutines: nothing mutates after Load returns.
type Stemmer struct {
	method string
	engine stemEngine
}

// Result distinguishes a word returned unchanged (which aliases the
// caller's input, avoiding an allocation) from one that was actually
// edited.
type Result struct {
	Word    string
	Changed bool
}

// minStemLength is the upstream rune-count floor: a word at or below this
// many runes is never stemmed.
const minStemLength = 3

// NewFromMultiTrie2 wraps an already-built MultiTrie2 in a Stemmer,
// bypassing Load's byte stream. It exists for callers (the cmd/stem demo
// table, tests) that construct a table in-process rather than reading one
// from an external file.
func NewFromMultiTrie2(mt *trie.MultiTrie2) *Stemmer {
	return &Stemmer{method: "M", engine: stemEngine{multi: mt}}
}

// NewFromTrie wraps an already-built plain Trie in a Stemmer, bypassing
// Load's byte stream.
func NewFromTrie(t *trie.Trie) *Stemmer {
	return &Stemmer{method: "", engine: stemEngine{plain: t}}
}

// Load reads one method string, then deserializes either a MultiTrie2 (if
// the method string contains 'M' or 'm') or a plain Trie.
func Load(r io.Reader) (*Stemmer, error) {
	method, err := javaio.ReadString(r)
	if err != nil {
		return nil, err
	}
	dr := javaio.NewReader(r)
	var engine stemEngine
	if strings.ContainsAny(method, "Mm") {
		mt, err := trie.LoadMultiTrie2(dr)
		if err != nil {
			return nil, err
		}
		engine = stemEngine{multi: mt}
	} else {
		t, err := trie.Load(dr)
		if err != nil {
			return nil, err
		}
		engine = stemEngine{plain: t}
	}
	return &Stemmer{method: method, engine: engine}, nil
}

// Stem returns word's stem, or word itself (unchanged) if it is at or below
// the length floor, the table has no path for it, or applying its edit
// command fails or yields the empty string.
func (s *Stemmer) Stem(word string) Result {
	runes := []rune(word)
	if len(runes) <= minStemLength {
		return Result{Word: word}
	}

	cmd, ok := s.engine.getLastOnPath(runes)
	if !ok || cmd == "" {
		return Result{Word: word}
	}

	stemmed, err := editcmd.Apply(word, cmd)
	if err != nil || stemmed == "" {
		return Result{Word: word}
	}
	return Result{Word: stemmed, Changed: true}
}
