package trie

import (
	"fmt"
	"strings"

	"github.com/mattico/rstempel/javaio"
)

// MultiTrie is an ordered stack of Tries whose per-key answers are
// concatenated under a sentinel stop. Forward and By are carried through
// serialization but never consulted by GetLastOnPath; they exist for the
// upstream table format and for diagnostics.
type MultiTrie struct {
	Tries   []*Trie
	Forward bool
	By      uint32
}

// NewMultiTrie returns an empty MultiTrie.
func NewMultiTrie(forward bool, by uint32) *MultiTrie {
	return &MultiTrie{Forward: forward, By: by}
}

// GetLastOnPath concatenates every trie's answer for key, in order. Any
// trie that fails to produce a command aborts the whole lookup with no
// result; the sentinel "*" is a positive stop that keeps whatever has been
// accumulated so far.
func (m *MultiTrie) GetLastOnPath(key []rune) (string, bool) {
	var b strings.Builder
	for _, t := range m.Tries {
		r, ok := t.GetLastOnPath(key)
		if !ok {
			return "", false
		}
		if r == "*" {
			return b.String(), true
		}
		b.WriteString(r)
	}
	return b.String(), true
}

// LoadMultiTrie reads a MultiTrie: bool forward, i32 by, i32 count, then
// count Tries.
func LoadMultiTrie(r *javaio.Reader) (*MultiTrie, error) {
	forward, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	by, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadUsize()
	if err != nil {
		return nil, err
	}
	tries := make([]*Trie, count)
	for i := range tries {
		tries[i], err = Load(r)
		if err != nil {
			return nil, err
		}
	}
	return &MultiTrie{Tries: tries, Forward: forward, By: by}, nil
}

// Write serializes the MultiTrie in the same layout LoadMultiTrie reads.
func (m *MultiTrie) Write(w *javaio.Writer) error {
	if err := w.WriteBool(m.Forward); err != nil {
		return err
	}
	if err := w.WriteUint32(m.By); err != nil {
		return err
	}
	if err := w.WriteUsize(len(m.Tries)); err != nil {
		return err
	}
	for _, t := range m.Tries {
		if err := t.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// MultiTrie2 wraps a MultiTrie with a stricter composition: it rejects
// certain illegal command adjacencies across tries and rewrites the
// probing key between tries according to how many characters the previous
// command already consumed. On disk it is byte-identical to a MultiTrie;
// only the runtime composition differs.
type MultiTrie2 struct {
	Inner *MultiTrie
}

// LoadMultiTrie2 reads the same layout as LoadMultiTrie and wraps it.
func LoadMultiTrie2(r *javaio.Reader) (*MultiTrie2, error) {
	inner, err := LoadMultiTrie(r)
	if err != nil {
		return nil, err
	}
	return &MultiTrie2{Inner: inner}, nil
}

// Write serializes the wrapped MultiTrie.
func (m *MultiTrie2) Write(w *javaio.Writer) error {
	return m.Inner.Write(w)
}

// GetLastOnPath always returns a result. The sentinel "*" from any trie
// yields the empty string, discarding what earlier tries produced; every
// other early stop (a trie with no answer, a forbidden adjacency, a skip
// that would empty the key) yields what was accumulated before it. The
// stemmer treats an empty result as "no stem" and applies a non-empty one.
// It never reports "absent" the way MultiTrie.GetLastOnPath can.
func (m *MultiTrie2) GetLastOnPath(key []rune) (string, bool) {
	var result strings.Builder
	lastKey := key
	curKey := key
	var prevCmd string
	havePrevCmd := false
	lastCh := ' '

	for _, t := range m.Inner.Tries {
		r, ok := t.GetLastOnPath(lastKey)
		if !ok {
			break
		}
		if r == "*" {
			return "", true
		}
		cmdRunes := []rune(r)
		if len(cmdRunes) == 0 {
			break
		}
		firstOp := cmdRunes[0]

		if (lastCh == '-' || lastCh == 'D') && firstOp == lastCh {
			break
		}
		if len(cmdRunes) >= 2 {
			lastCh = cmdRunes[len(cmdRunes)-2]
		}

		if firstOp == '-' {
			n := lengthPP(r)
			if havePrevCmd {
				n = lengthPP(prevCmd)
			}
			next, ok := skipDirectional(t.Forward, curKey, n)
			if !ok || len(next) == 0 {
				break
			}
			curKey = next
		}

		prevCmd, havePrevCmd = r, true
		result.WriteString(r)
		if len(curKey) > 0 {
			lastKey = curKey
		}
	}
	return result.String(), true
}

// lengthPP returns the number of source characters cmd accounts for:
// skip ('-') and delete ('D') pairs contribute 1+(arg-'a'), replace ('R')
// contributes 1, insert ('I') contributes 0.
func lengthPP(cmd string) int {
	runes := []rune(cmd)
	total := 0
	for i := 0; i+1 < len(runes); i += 2 {
		op, arg := runes[i], runes[i+1]
		switch op {
		case '-', 'D':
			if arg < 'a' || arg > 'z' {
				panic(fmt.Sprintf("trie: lengthPP: op %q carries non-lowercase arg %q, table is corrupt", op, arg))
			}
			total += 1 + int(arg-'a')
		case 'R':
			total++
		case 'I':
		default:
			panic(fmt.Sprintf("trie: lengthPP: unknown op %q, table is corrupt", op))
		}
	}
	return total
}
