// Package editcmd applies a compact edit-command string -- the payload
// stored on trie command edges -- to a word, producing its stem.
package editcmd

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrMalformed reports a command string that is not a well-formed sequence
// of (op, arg) pairs, or whose op is not one of '-', 'D', 'R', 'I'.
var ErrMalformed = xerrors.New("editcmd: malformed command string")

// ErrOutOfRange reports a command whose cursor arithmetic would move
// outside the word being edited.
var ErrOutOfRange = xerrors.New("editcmd: cursor out of range")

// Apply interprets cmd as a sequence of (op, arg) pairs and applies them to
// word, starting with the cursor at word's last rune index. An empty word
// is returned unchanged. Apply returns an error rather than silently
// ignoring a malformed command or an out-of-range cursor move, so a
// corrupt table is diagnosable; callers that want the "decline to stem"
// behavior map any error to the original word themselves.
func Apply(word, cmd string) (string, error) {
	runes := []rune(word)
	if len(runes) == 0 {
		return "", nil
	}
	cmdRunes := []rune(cmd)
	if len(cmdRunes)%2 != 0 {
		return "", fmt.Errorf("command %q has an odd number of characters: %w", cmd, ErrMalformed)
	}

	cursor := len(runes) - 1
	for i := 0; i+1 < len(cmdRunes); i += 2 {
		op, arg := cmdRunes[i], cmdRunes[i+1]
		var err error
		runes, cursor, err = applyOne(runes, cursor, op, arg)
		if err != nil {
			return "", err
		}
		// The trailing "step back one" applies after every pair; a cursor
		// that would go below the start of the word fails the application.
		cursor--
		if cursor < 0 {
			return "", fmt.Errorf("step back past start of word: %w", ErrOutOfRange)
		}
	}
	return string(runes), nil
}

func applyOne(runes []rune, cursor int, op, arg rune) ([]rune, int, error) {
	switch op {
	case '-':
		// The cursor moves back by 1+(arg-'a'), the same quantity lengthPP
		// counts for this pair when MultiTrie2 rewrites the probing key.
		n := 1 + int(arg-'a')
		cursor -= n
		if cursor < 0 {
			return nil, 0, fmt.Errorf("skip %d past start of word: %w", n, ErrOutOfRange)
		}
		return runes, cursor, nil

	case 'R':
		if cursor < 0 || cursor >= len(runes) {
			return nil, 0, fmt.Errorf("replace at %d out of range for length %d: %w", cursor, len(runes), ErrOutOfRange)
		}
		runes[cursor] = arg
		return runes, cursor, nil

	case 'D':
		n := int(arg - 'a')
		lo := cursor - n
		if lo < 0 || cursor >= len(runes) {
			return nil, 0, fmt.Errorf("delete [%d,%d] out of range for length %d: %w", lo, cursor, len(runes), ErrOutOfRange)
		}
		out := make([]rune, 0, len(runes)-(cursor-lo+1))
		out = append(out, runes[:lo]...)
		out = append(out, runes[cursor+1:]...)
		return out, lo, nil

	case 'I':
		cursor++
		if cursor < 0 || cursor > len(runes) {
			return nil, 0, fmt.Errorf("insert at %d out of range for length %d: %w", cursor, len(runes), ErrOutOfRange)
		}
		out := make([]rune, 0, len(runes)+1)
		out = append(out, runes[:cursor]...)
		out = append(out, arg)
		out = append(out, runes[cursor:]...)
		return out, cursor, nil

	default:
		return nil, 0, fmt.Errorf("unknown op %q: %w", op, ErrMalformed)
	}
}
