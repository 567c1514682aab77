package trie

import (
	"bytes"
	"testing"

	"github.com/mattico/rstempel/javaio"
	"github.com/stretchr/testify/require"
)

func TestGetLastOnPathFollowsRefsAndRemembersBest(t *testing.T) {
	tr := New(false) // suffix direction: last char first
	tr.Add([]rune("ski"), "Dc")
	tr.Add([]rune("ów"), "Db")

	cmd, ok := tr.GetLastOnPath([]rune("kowalski"))
	require.True(t, ok)
	require.Equal(t, "Dc", cmd)

	cmd, ok = tr.GetLastOnPath([]rune("domów"))
	require.True(t, ok)
	require.Equal(t, "Db", cmd)
}

func TestGetLastOnPathNoMatch(t *testing.T) {
	tr := New(false)
	tr.Add([]rune("ski"), "Dc")

	_, ok := tr.GetLastOnPath([]rune("xyz"))
	require.False(t, ok)
}

func TestGetLastOnPathFinalCharacterCanCommit(t *testing.T) {
	tr := New(true)
	tr.Add([]rune("a"), "Ra")

	cmd, ok := tr.GetLastOnPath([]rune("a"))
	require.True(t, ok)
	require.Equal(t, "Ra", cmd)
}

func TestAddLoadWriteRoundTrip(t *testing.T) {
	tr := New(false)
	tr.Add([]rune("ski"), "Dc")
	tr.Add([]rune("ów"), "Db")
	tr.Add([]rune("a"), "-a")

	var buf bytes.Buffer
	require.NoError(t, tr.Write(javaio.NewWriter(&buf)))

	loaded, err := Load(javaio.NewReader(&buf))
	require.NoError(t, err)
	require.Equal(t, tr.Forward, loaded.Forward)
	require.Equal(t, tr.Root, loaded.Root)
	require.ElementsMatch(t, tr.Cmds, loaded.Cmds)

	cmd, ok := loaded.GetLastOnPath([]rune("kowalski"))
	require.True(t, ok)
	require.Equal(t, "Dc", cmd)

	var rewritten bytes.Buffer
	require.NoError(t, loaded.Write(javaio.NewWriter(&rewritten)))
	require.Equal(t, buf.Bytes(), rewritten.Bytes())
}

func TestLoadRejectsOutOfRangeRoot(t *testing.T) {
	var buf bytes.Buffer
	w := javaio.NewWriter(&buf)
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteUint32(5)) // root index, no such row
	require.NoError(t, w.WriteUsize(0))  // no commands
	require.NoError(t, w.WriteUsize(1))  // one empty row
	require.NoError(t, w.WriteUsize(0))  // row has no cells

	_, err := Load(javaio.NewReader(&buf))
	require.Error(t, err)
}

func TestGetFullyFollowsSkipThenRef(t *testing.T) {
	tr := New(true)
	root := tr.Root
	mid := uint32(len(tr.Rows))
	tr.Rows = append(tr.Rows, NewRow())
	last := uint32(len(tr.Rows))
	tr.Rows = append(tr.Rows, NewRow())
	tr.Cmds = append(tr.Cmds, "Ra", "Rb")
	tr.Rows[root].Cells['a'] = Cell{Ref: mid, HasRef: true, Cmd: 0, HasCmd: true, Skip: 1}
	tr.Rows[mid].Cells['c'] = Cell{Ref: last, HasRef: true, Cmd: 1, HasCmd: true}

	cmd, ok := tr.GetFully([]rune("abc"))
	require.True(t, ok)
	require.Equal(t, "Rb", cmd)
}

// A cell at the very last matched character may commit its own command
// even though it carries no outgoing ref (see GetFully's doc comment).
func TestGetFullyFinalCellCommitsWithoutRef(t *testing.T) {
	tr := New(true)
	root := tr.Root
	next := uint32(len(tr.Rows))
	tr.Rows = append(tr.Rows, NewRow())
	tr.Cmds = append(tr.Cmds, "Ra")
	tr.Rows[root].Cells['a'] = Cell{Ref: next, HasRef: true, Cmd: 0, HasCmd: true, Skip: 1}
	tr.Rows[next].Cells['c'] = Cell{Cmd: 0, HasCmd: true}

	cmd, ok := tr.GetFully([]rune("abc"))
	require.True(t, ok)
	require.Equal(t, "Ra", cmd)
}

func TestUniformCmdsIsPure(t *testing.T) {
	row := NewRow()
	row.Cells['a'] = Cell{Cmd: 0, HasCmd: true, Skip: 1}
	row.Cells['b'] = Cell{Cmd: 0, HasCmd: true, Skip: 1}

	cmd, count, skip, ok := row.UniformCmds(true)
	require.True(t, ok)
	require.EqualValues(t, 0, cmd)
	require.EqualValues(t, 2, count)
	require.EqualValues(t, 1, skip)

	// Pure: calling again must return the same answer (the value receiver
	// leaves UniformCount/UniformSkip as they were).
	cmd2, count2, skip2, ok2 := row.UniformCmds(true)
	require.Equal(t, cmd, cmd2)
	require.Equal(t, count, count2)
	require.Equal(t, skip, skip2)
	require.Equal(t, ok, ok2)
}

func TestUniformCmdsFalseWhenCellsDisagree(t *testing.T) {
	row := NewRow()
	row.Cells['a'] = Cell{Cmd: 0, HasCmd: true}
	row.Cells['b'] = Cell{Cmd: 1, HasCmd: true}

	_, _, _, ok := row.UniformCmds(false)
	require.False(t, ok)
}
