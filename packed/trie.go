package packed

import "sort"

// Cell is one edge out of a Row. Ref is a 1-based row index (0 meaning
// "no next row"); Cmds is a CommandSlice window into the owning Stemmer's
// command pool (zero meaning "no commands").
type Cell struct {
	Ref  uint32
	Cmds CommandSlice
}

// Row holds Chars (sorted ascending) and the parallel Cells slice,
// supporting binary search on character.
type Row struct {
	Chars []rune
	Cells []Cell
}

func (r Row) find(ch rune) (Cell, bool) {
	i := sort.Search(len(r.Chars), func(i int) bool { return r.Chars[i] >= ch })
	if i < len(r.Chars) && r.Chars[i] == ch {
		return r.Cells[i], true
	}
	return Cell{}, false
}

// Trie is a flat arena of Rows with row 0 as root, plus the direction its
// keys are consumed in.
type Trie struct {
	Rows    []Row
	Forward bool
}

// getLastOnPath mirrors trie.Trie.GetLastOnPath but returns a CommandSlice
// instead of a command string, so the caller never re-parses it.
func (t Trie) getLastOnPath(key []rune) (CommandSlice, bool) {
	if len(t.Rows) == 0 || len(key) == 0 {
		return 0, false
	}
	now := t.Rows[0]
	it := newDirIter(t.Forward, key)
	last := it.popLast()

	var best CommandSlice
	haveBest := false
	for {
		ch, ok := it.next()
		if !ok {
			break
		}
		cell, found := now.find(ch)
		if !found {
			return best, haveBest
		}
		if cell.Cmds.hasCommands() {
			best, haveBest = cell.Cmds, true
		}
		if cell.Ref == 0 {
			return best, haveBest
		}
		now = t.Rows[cell.Ref-1]
	}
	if cell, found := now.find(last); found && cell.Cmds.hasCommands() {
		return cell.Cmds, true
	}
	return best, haveBest
}

// dirIter is packed's own copy of trie.keyIter: a direction-reversible
// rune-slice walk. Kept local rather than exported from package trie so
// the two engines stay independently testable.
type dirIter struct {
	runes   []rune
	forward bool
	i, j    int
}

func newDirIter(forward bool, key []rune) *dirIter {
	return &dirIter{runes: key, forward: forward, i: 0, j: len(key)}
}

func (d *dirIter) next() (rune, bool) {
	if d.i >= d.j {
		return 0, false
	}
	if d.forward {
		r := d.runes[d.i]
		d.i++
		return r, true
	}
	d.j--
	return d.runes[d.j], true
}

func (d *dirIter) popLast() rune {
	if d.forward {
		d.j--
		return d.runes[d.j]
	}
	r := d.runes[d.i]
	d.i++
	return r
}

func skipDirectional(forward bool, key []rune, n int) ([]rune, bool) {
	if n > len(key) {
		return nil, false
	}
	if forward {
		return key[n:], true
	}
	return key[:len(key)-n], true
}
