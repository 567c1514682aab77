// Package trie implements the character-indexed trie, and the MultiTrie /
// MultiTrie2 composition over a stack of tries, that back the stemmer's
// edit-command lookup. See the root rstempel package for how a loaded trie
// is turned into a stemmed word.
package trie

import (
	"sort"

	"github.com/mattico/rstempel/javaio"
)

// Cell is one edge out of a Row: an optional reference to the next row and
// an optional command-pool index, plus the two book-keeping counters the
// upstream reduce/optimize pass produces and that stemming never consults.
type Cell struct {
	Ref    uint32
	HasRef bool
	Cmd    uint32
	HasCmd bool
	Cnt    uint32
	Skip   uint32
}

// Used reports whether the cell carries a reference or a command; unused
// cells need not be persisted.
func (c Cell) Used() bool {
	return c.HasRef || c.HasCmd
}

// Row maps a single rune to a Cell. Cells are kept in a plain map; callers
// that need the upstream's sorted-by-character serialization order should
// use SortedChars.
type Row struct {
	Cells        map[rune]Cell
	UniformCount uint32
	UniformSkip  uint32
}

// NewRow returns an empty row.
func NewRow() Row {
	return Row{Cells: make(map[rune]Cell)}
}

// SortedChars returns the row's keys in ascending rune order, matching the
// iteration order the on-disk format requires on serialization.
func (r Row) SortedChars() []rune {
	chars := make([]rune, 0, len(r.Cells))
	for ch := range r.Cells {
		chars = append(chars, ch)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// GetCmd returns the command-pool index stored at way, if any.
func (r Row) GetCmd(way rune) (uint32, bool) {
	c, ok := r.Cells[way]
	if !ok || !c.HasCmd {
		return 0, false
	}
	return c.Cmd, true
}

// GetRef returns the next-row index stored at way, if any.
func (r Row) GetRef(way rune) (uint32, bool) {
	c, ok := r.Cells[way]
	if !ok || !c.HasRef {
		return 0, false
	}
	return c.Ref, true
}

// UniformCmds reports whether every used cell in the row carries the same
// command (and, if eqSkip, the same skip value) and no cell carries a Ref.
// It is a pure function:
// some upstream implementations stash the answer back onto the row's
// UniformCount/UniformSkip fields as a side effect; this version returns
// them instead of mutating the receiver. Only the offline reduce/optimize
// pass needs this; the runtime stemmer never calls it.
func (r Row) UniformCmds(eqSkip bool) (cmd uint32, count, skip uint32, ok bool) {
	count = 1
	found := false
	for _, cell := range r.Cells {
		if cell.HasRef {
			return 0, 0, 0, false
		}
		if !cell.HasCmd {
			continue
		}
		if !found {
			cmd = cell.Cmd
			skip = cell.Skip
			found = true
			continue
		}
		if cell.Cmd != cmd {
			return 0, 0, 0, false
		}
		if eqSkip {
			if cell.Skip != skip {
				return 0, 0, 0, false
			}
			count++
		}
	}
	if !found {
		return 0, 0, 0, false
	}
	return cmd, count, skip, true
}

// Trie is a character-indexed arena of Rows plus a pool of command
// strings. Forward=false means keys are consumed from their last character
// toward their first, which is how suffix stripping is encoded.
type Trie struct {
	Rows    []Row
	Cmds    []string
	Root    uint32
	Forward bool
}

// New returns a Trie with a single empty root row, ready for Add.
func New(forward bool) *Trie {
	return &Trie{
		Rows:    []Row{NewRow()},
		Root:    0,
		Forward: forward,
	}
}

func (t *Trie) row(idx uint32) (Row, bool) {
	if int(idx) >= len(t.Rows) {
		return Row{}, false
	}
	return t.Rows[idx], true
}

func (t *Trie) cmd(idx uint32) (string, bool) {
	if int(idx) >= len(t.Cmds) {
		return "", false
	}
	return t.Cmds[idx], true
}

// GetLastOnPath walks key in the trie's direction and returns the command
// string at the latest transition that carried one, or ("", false) if the
// walk dies before the final character. key must be non-empty.
func (t *Trie) GetLastOnPath(key []rune) (string, bool) {
	now, ok := t.row(t.Root)
	if !ok {
		return "", false
	}
	it := newKeyIter(t.Forward, key)
	last := it.popLast()

	var lastCmd string
	haveLast := false
	for {
		ch, ok := it.next()
		if !ok {
			break
		}
		if idx, has := now.GetCmd(ch); has {
			if s, ok := t.cmd(idx); ok {
				lastCmd, haveLast = s, true
			}
		}
		if idx, has := now.GetRef(ch); has {
			now, ok = t.row(idx)
			if !ok {
				return "", false
			}
		} else {
			return lastCmd, haveLast
		}
	}
	if idx, has := now.GetCmd(last); has {
		if s, ok := t.cmd(idx); ok {
			return s, true
		}
	}
	return lastCmd, haveLast
}

// GetFully is the exact-match walk: at each step it takes the cell's
// command as provisional, then consumes Skip additional key characters
// before following Ref. It returns the command from the last matched
// character, whose cell need not carry a Ref; a cell without a Ref before
// the key is used up ends the walk with no result. Not used by the
// mainline stemmer; kept for completeness.
func (t *Trie) GetFully(key []rune) (string, bool) {
	now, ok := t.row(t.Root)
	if !ok {
		return "", false
	}
	it := newKeyIter(t.Forward, key)
	var cmdIdx uint32
	haveCmd := false
	for {
		ch, ok := it.next()
		if !ok {
			break
		}
		cell, present := now.Cells[ch]
		if !present {
			return "", false
		}
		cmdIdx, haveCmd = cell.Cmd, cell.HasCmd
		for i := uint32(0); i < cell.Skip; i++ {
			if _, ok := it.next(); !ok {
				return "", false
			}
		}
		if !cell.HasRef {
			// The final character may commit its command without a Ref;
			// running out of Refs before the key is used up is no match.
			if _, more := it.next(); more {
				return "", false
			}
			break
		}
		now, ok = t.row(cell.Ref)
		if !ok {
			return "", false
		}
	}
	if !haveCmd {
		return "", false
	}
	return t.cmd(cmdIdx)
}

// Add inserts key with the given command string, allocating new rows as
// needed and interning cmd in the command pool. This is the offline
// table-builder write path; the runtime stemmer never calls it, but it lets
// this package's round-trip tests build tries in-process instead of only
// reading pre-built binaries.
func (t *Trie) Add(key []rune, cmd string) {
	if len(key) == 0 || cmd == "" {
		return
	}
	cmdIdx := uint32(0)
	found := false
	for i, c := range t.Cmds {
		if c == cmd {
			cmdIdx, found = uint32(i), true
			break
		}
	}
	if !found {
		cmdIdx = uint32(len(t.Cmds))
		t.Cmds = append(t.Cmds, cmd)
	}

	it := newKeyIter(t.Forward, key)
	last := it.popLast()
	rowIdx := t.Root
	for {
		ch, ok := it.next()
		if !ok {
			break
		}
		cell := t.Rows[rowIdx].Cells[ch]
		if cell.HasRef {
			rowIdx = cell.Ref
			continue
		}
		newIdx := uint32(len(t.Rows))
		t.Rows = append(t.Rows, NewRow())
		cell.Ref, cell.HasRef = newIdx, true
		t.Rows[rowIdx].Cells[ch] = cell
		rowIdx = newIdx
	}
	cell := t.Rows[rowIdx].Cells[last]
	cell.Cmd, cell.HasCmd = cmdIdx, true
	t.Rows[rowIdx].Cells[last] = cell
}
