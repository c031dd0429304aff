package optparse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dzonerzy/go-optparse/optparse"
)

func TestWordsFromArgs(t *testing.T) {
	t.Parallel()

	words := optparse.WordsFromArgs([]string{"--tags=a,b", "-v", "file"})
	require.Equal(t, []optparse.Word{
		{Text: "--tags=a,b", Start: 0, End: 10},
		{Text: "-v", Start: 11, End: 13},
		{Text: "file", Start: 14, End: 18},
	}, words)

	require.Empty(t, optparse.WordsFromArgs(nil))
}

func TestSliceCursor(t *testing.T) {
	t.Parallel()

	cur := optparse.NewArgsCursor([]string{"a", "b"})
	require.True(t, cur.HasNext())
	require.Equal(t, "a", cur.Peek().Text)
	require.Equal(t, "a", cur.Peek().Text, "peek must not advance")
	require.Equal(t, "a", cur.Next().Text)
	require.Len(t, cur.Remaining(), 1)
	require.Equal(t, "b", cur.Next().Text)
	require.False(t, cur.HasNext())
	require.Empty(t, cur.Remaining())
}

func TestSliceCursorExhausted(t *testing.T) {
	t.Parallel()

	cur := optparse.NewCursor(nil)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, optparse.ErrAssertion))
	}()
	cur.Next()
}

// The assignment engine accepts any Cursor implementation.
type recordingCursor struct {
	words    []optparse.Word
	consumed []string
}

func (c *recordingCursor) HasNext() bool       { return len(c.words) > 0 }
func (c *recordingCursor) Peek() optparse.Word { return c.words[0] }
func (c *recordingCursor) Next() optparse.Word {
	w := c.words[0]
	c.words = c.words[1:]
	c.consumed = append(c.consumed, w.Text)
	return w
}

func TestAssignWithCustomCursor(t *testing.T) {
	t.Parallel()

	reg := optparse.NewRegistry("custom")
	tags := reg.List("tags")
	reg.Bool("verbose")

	cur := &recordingCursor{words: optparse.WordsFromArgs([]string{"--tags", "x", "y", "--verbose"})}
	require.NoError(t, optparse.Assign(cur, reg.Lookup("--tags")))

	require.Equal(t, []string{"x", "y"}, tags.Values())
	require.Equal(t, []string{"--tags", "x", "y"}, cur.consumed)
	require.True(t, cur.HasNext())
	require.Equal(t, "--verbose", cur.Peek().Text)
}
