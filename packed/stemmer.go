package packed

import (
	"fmt"

	"github.com/mattico/rstempel/trie"
)

// minStemLength mirrors rstempel.minStemLength: words at or below this
// many runes are never stemmed.
const minStemLength = 3

// Stemmer is the packed equivalent of rstempel.Stemmer: a flat command
// pool plus an ordered slice of Tries, implementing the same lengthPP
// accounting and skip-skip/delete-delete adjacency rule as
// trie.MultiTrie2, without ever re-parsing a command string at lookup
// time.
type Stemmer struct {
	Commands []Command
	Tries    []Trie
}

// Result mirrors rstempel.Result.
type Result struct {
	Word    string
	Changed bool
}

// Build converts an already-loaded trie.MultiTrie2 into a Stemmer, parsing
// every command string in every component trie's command pool exactly
// once into the shared Commands pool.
func Build(mt *trie.MultiTrie2) (*Stemmer, error) {
	s := &Stemmer{}
	for _, t := range mt.Inner.Tries {
		pt, err := s.buildTrie(t)
		if err != nil {
			return nil, err
		}
		s.Tries = append(s.Tries, pt)
	}
	return s, nil
}

func (s *Stemmer) buildTrie(t *trie.Trie) (Trie, error) {
	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		chars := row.SortedChars()
		kept := make([]rune, 0, len(chars))
		cells := make([]Cell, 0, len(chars))
		for _, ch := range chars {
			cell := row.Cells[ch]
			if !cell.Used() {
				continue
			}
			pc := Cell{}
			if cell.HasRef {
				pc.Ref = cell.Ref + 1
			}
			if cell.HasCmd {
				cmdStr := t.Cmds[cell.Cmd]
				if cmdStr == "*" {
					pc.Cmds = commandSliceEOM
				} else {
					parsed, err := parseCommands(cmdStr)
					if err != nil {
						return Trie{}, err
					}
					idx := len(s.Commands)
					s.Commands = append(s.Commands, parsed...)
					cs, ok := newCommandSlice(idx, len(parsed))
					if !ok {
						return Trie{}, fmt.Errorf("command %q too long to pack: %w", cmdStr, ErrMalformed)
					}
					pc.Cmds = cs
				}
			}
			kept = append(kept, ch)
			cells = append(cells, pc)
		}
		rows[i] = Row{Chars: kept, Cells: cells}
	}
	return Trie{Rows: rows, Forward: t.Forward}, nil
}

// stemCommands runs the MultiTrie2 composition directly over CommandSlice
// windows into s.Commands, never rebuilding a command string.
func (s *Stemmer) stemCommands(word []rune) []Command {
	var result []Command
	lastKey := word
	curKey := word
	var prevLen int
	havePrev := false
	var lastKind CommandKind
	haveLastKind := false

	for _, t := range s.Tries {
		slice, ok := t.getLastOnPath(lastKey)
		if !ok {
			break
		}
		if slice.isEOM() {
			return nil
		}
		idx, length := slice.bounds()
		cmds := s.Commands[idx : idx+length]
		if len(cmds) == 0 {
			break
		}
		firstKind := cmds[0].Kind

		if haveLastKind && (lastKind == CmdSkip || lastKind == CmdDelete) && firstKind == lastKind {
			break
		}
		lastKind, haveLastKind = cmds[len(cmds)-1].Kind, true

		if firstKind == CmdSkip {
			n := commandsLength(cmds)
			if havePrev {
				n = prevLen
			}
			next, ok := skipDirectional(t.Forward, curKey, n)
			if !ok || len(next) == 0 {
				break
			}
			curKey = next
		}

		prevLen, havePrev = commandsLength(cmds), true
		result = append(result, cmds...)
		if len(curKey) > 0 {
			lastKey = curKey
		}
	}
	return result
}

// Stem returns word's stem using the packed engine, falling back to the
// unchanged word under the same conditions rstempel.Stemmer.Stem does.
func (s *Stemmer) Stem(word string) Result {
	runes := []rune(word)
	if len(runes) <= minStemLength {
		return Result{Word: word}
	}
	cmds := s.stemCommands(runes)
	if len(cmds) == 0 {
		return Result{Word: word}
	}
	stemmed, err := applyCommands(word, cmds)
	if err != nil || stemmed == "" {
		return Result{Word: word}
	}
	return Result{Word: stemmed, Changed: true}
}

func applyCommands(word string, cmds []Command) (string, error) {
	runes := []rune(word)
	if len(runes) == 0 {
		return "", nil
	}
	cursor := len(runes) - 1
	for _, c := range cmds {
		var err error
		runes, cursor, err = applyOne(runes, cursor, c)
		if err != nil {
			return "", err
		}
		cursor--
		if cursor < 0 {
			return "", fmt.Errorf("step back past start of word: %w", ErrOutOfRange)
		}
	}
	return string(runes), nil
}

func applyOne(runes []rune, cursor int, c Command) ([]rune, int, error) {
	switch c.Kind {
	case CmdSkip:
		// c.Chars carries the skip distance 1+(arg-'a'), the same quantity
		// lengthPP counts for the pair -- see editcmd.Apply.
		cursor -= int(c.Chars)
		if cursor < 0 {
			return nil, 0, fmt.Errorf("skip past start of word: %w", ErrOutOfRange)
		}
		return runes, cursor, nil

	case CmdReplace:
		if cursor < 0 || cursor >= len(runes) {
			return nil, 0, fmt.Errorf("replace at %d out of range for length %d: %w", cursor, len(runes), ErrOutOfRange)
		}
		runes[cursor] = c.Char
		return runes, cursor, nil

	case CmdDelete:
		lo := cursor - (int(c.Chars) - 1)
		if lo < 0 || cursor >= len(runes) {
			return nil, 0, fmt.Errorf("delete [%d,%d] out of range for length %d: %w", lo, cursor, len(runes), ErrOutOfRange)
		}
		out := make([]rune, 0, len(runes)-(cursor-lo+1))
		out = append(out, runes[:lo]...)
		out = append(out, runes[cursor+1:]...)
		return out, lo, nil

	case CmdInsert:
		cursor++
		if cursor < 0 || cursor > len(runes) {
			return nil, 0, fmt.Errorf("insert at %d out of range for length %d: %w", cursor, len(runes), ErrOutOfRange)
		}
		out := make([]rune, 0, len(runes)+1)
		out = append(out, runes[:cursor]...)
		out = append(out, c.Char)
		out = append(out, runes[cursor:]...)
		return out, cursor, nil

	default:
		return nil, 0, fmt.Errorf("unknown command kind %d: %w", c.Kind, ErrMalformed)
	}
}
