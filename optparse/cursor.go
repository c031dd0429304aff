package optparse

// Word is one token of the original input line. Start and End are byte
// offsets into that line.
type Word struct {
	Text  string
	Start int
	End   int
}

// Cursor is a forward-only, peekable iterator over words. Peek and Next must
// only be called when HasNext reports true.
type Cursor interface {
	HasNext() bool
	Peek() Word
	Next() Word
}

// SliceCursor is a Cursor over an in-memory slice of words.
type SliceCursor struct {
	words []Word
	pos   int
}

// NewCursor returns a cursor positioned before the first word.
func NewCursor(words []Word) *SliceCursor {
	return &SliceCursor{words: words}
}

// NewArgsCursor builds a cursor over process-style arguments.
func NewArgsCursor(args []string) *SliceCursor {
	return NewCursor(WordsFromArgs(args))
}

// HasNext reports whether a word remains.
func (c *SliceCursor) HasNext() bool { return c.pos < len(c.words) }

// Peek returns the next word without consuming it.
func (c *SliceCursor) Peek() Word {
	if !c.HasNext() {
		panic(assertf("cursor exhausted"))
	}
	return c.words[c.pos]
}

// Next consumes and returns the next word.
func (c *SliceCursor) Next() Word {
	w := c.Peek()
	c.pos++
	return w
}

// Remaining returns the words not consumed yet.
func (c *SliceCursor) Remaining() []Word {
	return c.words[c.pos:]
}

// WordsFromArgs assigns offsets to args as if they had been joined by single
// spaces.
func WordsFromArgs(args []string) []Word {
	return appendWords(make([]Word, 0, len(args)), args)
}

func appendWords(dst []Word, args []string) []Word {
	offset := 0
	for _, arg := range args {
		dst = append(dst, Word{Text: arg, Start: offset, End: offset + len(arg)})
		offset += len(arg) + 1
	}
	return dst
}
