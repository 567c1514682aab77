package editcmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyEmptyWord(t *testing.T) {
	got, err := Apply("", "Dc")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestApplyDeleteTrailingRange(t *testing.T) {
	// "Dc": delete inclusive range [cursor-2, cursor], cursor starts at
	// the last index. "kowalski" (len 8, cursor 7) -> delete [5,7] ("ski").
	got, err := Apply("kowalski", "Dc")
	require.NoError(t, err)
	require.Equal(t, "kowal", got)
}

func TestApplyDeleteZeroRangeDeletesOne(t *testing.T) {
	got, err := Apply("cats", "Da")
	require.NoError(t, err)
	require.Equal(t, "cat", got)
}

func TestApplySkipThenReplace(t *testing.T) {
	// "-bRx": skip back 2 (1+('b'-'a'), cursor 4->2), trailing decrement
	// moves to 1, then replace at cursor 1 with 'x'; the final decrement
	// leaves the cursor at 0.
	got, err := Apply("abcde", "-bRx")
	require.NoError(t, err)
	require.Equal(t, "axcde", got)
}

func TestApplySkipArgAMovesBackOne(t *testing.T) {
	// "-a" moves the cursor back by 1+('a'-'a') = 1 (3->2), the same
	// quantity lengthPP counts for the pair; the trailing decrement then
	// moves it to 1, where 'x' replaces 'b'.
	got, err := Apply("abcd", "-aRx")
	require.NoError(t, err)
	require.Equal(t, "axcd", got)
}

func TestApplyInsert(t *testing.T) {
	// "Ix": advance cursor by 1 (3->4, past the end), insert 'x' there.
	got, err := Apply("abcd", "Ix")
	require.NoError(t, err)
	require.Equal(t, "abcdx", got)
}

func TestApplyOutOfRangeSkipFails(t *testing.T) {
	_, err := Apply("ab", "-z") // skip 26 past a 2-rune word
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestApplyUnknownOpFails(t *testing.T) {
	_, err := Apply("abc", "Xa")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformed))
}

func TestApplyOddLengthCommandFails(t *testing.T) {
	_, err := Apply("abc", "Da-")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformed))
}

func TestApplyAbadanScenario(t *testing.T) {
	// "Abadan"/"Ia-e" is the worked example in SPEC_FULL.md §8, where the
	// stemmer leaves "Abadan" unchanged. Cursor 5; "Ia" moves it to 6 and
	// inserts 'a' ("Abadana"), the trailing decrement moves it to 5; "-e"
	// moves it back by 1+('e'-'a') = 5, to 0; the trailing decrement would
	// take it to -1, so Apply fails and Stem returns the word unchanged.
	_, err := Apply("Abadan", "Ia-e")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestApplyCursorGoingNegativeFails(t *testing.T) {
	// Four pairs, but the cursor is at 0 while applying the third; its
	// trailing decrement would go negative, so Apply fails instead of
	// returning a partial edit or attempting the fourth pair.
	_, err := Apply("xyz", "RaRbRcRd")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
}
