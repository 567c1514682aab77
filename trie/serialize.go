package trie

import "github.com/mattico/rstempel/javaio"

// Load deserializes a Trie from its on-disk format: bool forward, i32 root,
// i32 num_cmds, num_cmds strings, i32 num_rows, num_rows Rows.
func Load(r *javaio.Reader) (*Trie, error) {
	forward, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	root, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	numCmds, err := r.ReadUsize()
	if err != nil {
		return nil, err
	}
	cmds := make([]string, numCmds)
	for i := range cmds {
		cmds[i], err = r.ReadString()
		if err != nil {
			return nil, err
		}
	}
	numRows, err := r.ReadUsize()
	if err != nil {
		return nil, err
	}
	rows := make([]Row, numRows)
	for i := range rows {
		rows[i], err = loadRow(r)
		if err != nil {
			return nil, err
		}
	}
	t := &Trie{Rows: rows, Cmds: cmds, Root: root, Forward: forward}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Trie) validate() error {
	if len(t.Rows) == 0 {
		return javaio.Invalid("trie has no rows")
	}
	if int(t.Root) >= len(t.Rows) {
		return javaio.Invalid("trie root %d out of range (have %d rows)", t.Root, len(t.Rows))
	}
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			if cell.HasRef && int(cell.Ref) >= len(t.Rows) {
				return javaio.Invalid("cell ref %d out of range (have %d rows)", cell.Ref, len(t.Rows))
			}
			if cell.HasCmd && int(cell.Cmd) >= len(t.Cmds) {
				return javaio.Invalid("cell cmd %d out of range (have %d cmds)", cell.Cmd, len(t.Cmds))
			}
		}
	}
	for _, c := range t.Cmds {
		if c == "*" {
			continue
		}
		runes := []rune(c)
		for i := 0; i < len(runes); i += 2 {
			switch runes[i] {
			case '-', 'D', 'R', 'I':
			default:
				return javaio.Invalid("command %q has unknown op %q", c, runes[i])
			}
		}
	}
	return nil
}

func loadRow(r *javaio.Reader) (Row, error) {
	n, err := r.ReadUsize()
	if err != nil {
		return Row{}, err
	}
	row := NewRow()
	for i := 0; i < n; i++ {
		ch, err := r.ReadChar()
		if err != nil {
			return Row{}, err
		}
		cell, err := loadCell(r)
		if err != nil {
			return Row{}, err
		}
		row.Cells[ch] = cell
	}
	return row, nil
}

func loadCell(r *javaio.Reader) (Cell, error) {
	cmd, hasCmd, err := r.ReadUint32Opt()
	if err != nil {
		return Cell{}, err
	}
	cnt, err := r.ReadUint32()
	if err != nil {
		return Cell{}, err
	}
	ref, hasRef, err := r.ReadUint32Opt()
	if err != nil {
		return Cell{}, err
	}
	skip, err := r.ReadUint32()
	if err != nil {
		return Cell{}, err
	}
	return Cell{Ref: ref, HasRef: hasRef, Cmd: cmd, HasCmd: hasCmd, Cnt: cnt, Skip: skip}, nil
}

// Write serializes the trie in the same on-disk format Load reads,
// producing byte-identical output for a table that was itself loaded
// with Load.
//
// Row.UniformCount/UniformSkip are deliberately not persisted: the upstream
// format never wrote them either (they are an in-memory-only artifact of
// the reduce/optimize pass in the reference implementation), so there is
// nothing to round-trip for them.
func (t *Trie) Write(w *javaio.Writer) error {
	if err := w.WriteBool(t.Forward); err != nil {
		return err
	}
	if err := w.WriteUint32(t.Root); err != nil {
		return err
	}
	if err := w.WriteUsize(len(t.Cmds)); err != nil {
		return err
	}
	for _, c := range t.Cmds {
		if err := w.WriteString(c); err != nil {
			return err
		}
	}
	if err := w.WriteUsize(len(t.Rows)); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w *javaio.Writer, row Row) error {
	chars := row.SortedChars()
	used := 0
	for _, ch := range chars {
		if row.Cells[ch].Used() {
			used++
		}
	}
	if err := w.WriteUsize(used); err != nil {
		return err
	}
	for _, ch := range chars {
		cell := row.Cells[ch]
		if !cell.Used() {
			continue
		}
		if err := w.WriteChar(ch); err != nil {
			return err
		}
		if err := writeCell(w, cell); err != nil {
			return err
		}
	}
	return nil
}

func writeCell(w *javaio.Writer, c Cell) error {
	if err := w.WriteUint32Opt(c.Cmd, c.HasCmd); err != nil {
		return err
	}
	if err := w.WriteUint32(c.Cnt); err != nil {
		return err
	}
	if err := w.WriteUint32Opt(c.Ref, c.HasRef); err != nil {
		return err
	}
	return w.WriteUint32(c.Skip)
}
