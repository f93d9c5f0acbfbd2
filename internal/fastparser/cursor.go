package fastparser

// Cursor is a bounds-checked read position over an immutable buffer.
// All components of the parser go through a Cursor; none of them index the
// buffer directly.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the first byte of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// initCursor initializes a cursor in-place (stack-friendly, avoids heap alloc).
func initCursor(c *Cursor, data []byte) {
	c.data = data
	c.pos = 0
}

// Pos returns the current offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.data) }

// AtEnd reports whether every byte has been consumed.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.data) }

// Peek returns the byte at pos+offset without advancing.
func (c *Cursor) Peek(offset int) (byte, error) {
	i := c.pos + offset
	if offset < 0 || i >= len(c.data) {
		return 0, c.endError()
	}
	return c.data[i], nil
}

// Advance moves the position forward by n. The new position may equal the
// buffer length but never exceed it.
func (c *Cursor) Advance(n int) error {
	if n < 0 || c.pos+n > len(c.data) {
		return c.endError()
	}
	c.pos += n
	return nil
}

// Next returns the byte at the current position and advances past it.
func (c *Cursor) Next() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, c.endError()
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// MatchLiteral consumes len(lit) bytes and reports whether they equal lit.
// Bytes are consumed even when the match fails; on a mismatch the cursor stops
// right after the first differing byte. Callers treat a mismatch as terminal.
func (c *Cursor) MatchLiteral(lit []byte) (bool, error) {
	for _, want := range lit {
		got, err := c.Next()
		if err != nil {
			return false, err
		}
		if got != want {
			return false, nil
		}
	}
	return true, nil
}

// Until advances to the next occurrence of stop and returns the bytes before
// it. The stop byte itself is not consumed. The returned slice aliases the
// buffer; callers copy it before it leaves the parser.
func (c *Cursor) Until(stop byte) ([]byte, error) {
	start := c.pos
	for {
		b, err := c.Peek(0)
		if err != nil {
			return nil, err
		}
		if b == stop {
			return c.data[start:c.pos], nil
		}
		c.pos++
	}
}

// Since returns the bytes between start and the current position. Like Until,
// the slice aliases the buffer.
func (c *Cursor) Since(start int) []byte {
	if start < 0 || start > c.pos {
		return nil
	}
	return c.data[start:c.pos]
}

// Rest returns a copy of every byte from the current position to the end and
// moves the cursor to the end. It returns nil when nothing remains.
func (c *Cursor) Rest() []byte {
	if c.AtEnd() {
		return nil
	}
	rest := make([]byte, len(c.data)-c.pos)
	copy(rest, c.data[c.pos:])
	c.pos = len(c.data)
	return rest
}

func (c *Cursor) endError() *ParseError {
	return newError(UnexpectedEnd, len(c.data))
}
