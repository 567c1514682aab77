// Package packed is an alternate, allocation-light runtime representation
// of a loaded multi-trie: commands are parsed once at build time into a
// flat pool and referenced by index, so stemming never re-parses a command
// string. It must produce the same stems as the trie/editcmd engine for
// the same table; packed.Build converts a trie.MultiTrie2 into one.
package packed

import (
	"fmt"
	"math"

	"golang.org/x/xerrors"
)

// ErrMalformed reports a command string that could not be parsed into
// Commands, or an unknown Command kind encountered while applying one.
var ErrMalformed = xerrors.New("packed: malformed command")

// ErrOutOfRange reports a command whose cursor arithmetic would move
// outside the word being edited.
var ErrOutOfRange = xerrors.New("packed: cursor out of range")

// CommandKind tags the four edit operations a Command can carry.
type CommandKind uint8

const (
	CmdSkip CommandKind = iota
	CmdDelete
	CmdReplace
	CmdInsert
)

// Command is one parsed (op, arg) pair. Chars carries the already-resolved
// magnitude for Skip (total cursor movement, 1+(arg-'a')) and Delete
// (total deleted-range length, 1+(arg-'a')); Char carries the literal
// character for Replace and Insert.
type Command struct {
	Kind  CommandKind
	Chars byte
	Char  rune
}

const (
	commandSliceIndexBits = 24
	commandSliceIndexMask = 1<<commandSliceIndexBits - 1
	commandSliceMaxLen    = 15

	// commandSliceEOM is the distinguished CommandSlice value meaning
	// "this cell's answer is the multi-trie end-of-sequence sentinel",
	// not a real parsed command. It is never a value newCommandSlice can
	// produce (its bits above the 24-bit index read as a length of 255,
	// and lengths are capped at 15), so no real slice collides with it.
	commandSliceEOM = CommandSlice(math.MaxUint32)
)

// CommandSlice identifies a (start index, length) window into a
// Stemmer's flat Commands pool, packed into a single uint32: the index in
// the low 24 bits, the length in the 4 bits above them (bits 24-27). The zero value means "no
// commands" (an unused cell); commandSliceEOM means the multi-trie
// sentinel. Both are distinct from every real, non-empty slice, since a
// real slice always has length >= 1.
type CommandSlice uint32

func newCommandSlice(index, length int) (CommandSlice, bool) {
	if index < 0 || index > commandSliceIndexMask {
		return 0, false
	}
	if length <= 0 || length > commandSliceMaxLen {
		return 0, false
	}
	return CommandSlice(uint32(length)<<commandSliceIndexBits | uint32(index)), true
}

func (c CommandSlice) hasCommands() bool { return c != 0 }
func (c CommandSlice) isEOM() bool       { return c == commandSliceEOM }

func (c CommandSlice) bounds() (index, length int) {
	v := uint32(c)
	return int(v & commandSliceIndexMask), int(v >> commandSliceIndexBits)
}

// parseCommands parses a reference-engine command string ("*" excluded --
// callers check for the sentinel before calling this) into Commands.
func parseCommands(cmd string) ([]Command, error) {
	runes := []rune(cmd)
	if len(runes)%2 != 0 {
		return nil, fmt.Errorf("command %q has an odd number of characters: %w", cmd, ErrMalformed)
	}
	out := make([]Command, 0, len(runes)/2)
	for i := 0; i+1 < len(runes); i += 2 {
		op, arg := runes[i], runes[i+1]
		switch op {
		case '-':
			out = append(out, Command{Kind: CmdSkip, Chars: byte(1 + int(arg-'a'))})
		case 'D':
			out = append(out, Command{Kind: CmdDelete, Chars: byte(1 + int(arg-'a'))})
		case 'R':
			out = append(out, Command{Kind: CmdReplace, Char: arg})
		case 'I':
			out = append(out, Command{Kind: CmdInsert, Char: arg})
		default:
			return nil, fmt.Errorf("unknown op %q in command %q: %w", op, cmd, ErrMalformed)
		}
	}
	return out, nil
}

// commandsLength is lengthPP computed directly over parsed Commands:
// Skip/Delete contribute their resolved Chars magnitude, Replace
// contributes 1, Insert contributes 0.
func commandsLength(cmds []Command) int {
	total := 0
	for _, c := range cmds {
		switch c.Kind {
		case CmdSkip, CmdDelete:
			total += int(c.Chars)
		case CmdReplace:
			total++
		}
	}
	return total
}
