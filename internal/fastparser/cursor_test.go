package fastparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, kind ErrorKind) *ParseError {
	t.Helper()
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
	require.Equal(t, kind, perr.Kind, "error: %v", err)
	return perr
}

func TestCursor(t *testing.T) {
	t.Run("peek does not advance", func(t *testing.T) {
		c := NewCursor([]byte("ab"))
		b, err := c.Peek(1)
		require.NoError(t, err)
		require.Equal(t, byte('b'), b)
		require.Zero(t, c.Pos())
	})

	t.Run("peek past end", func(t *testing.T) {
		c := NewCursor([]byte("ab"))
		_, err := c.Peek(2)
		perr := requireKind(t, err, UnexpectedEnd)
		require.Equal(t, 2, perr.Offset)

		_, err = NewCursor(nil).Peek(0)
		requireKind(t, err, UnexpectedEnd)
	})

	t.Run("advance to end is allowed", func(t *testing.T) {
		c := NewCursor([]byte("abc"))
		require.NoError(t, c.Advance(3))
		require.True(t, c.AtEnd())
		requireKind(t, c.Advance(1), UnexpectedEnd)
		require.Equal(t, 3, c.Pos())
	})

	t.Run("next", func(t *testing.T) {
		c := NewCursor([]byte("x"))
		b, err := c.Next()
		require.NoError(t, err)
		require.Equal(t, byte('x'), b)
		_, err = c.Next()
		requireKind(t, err, UnexpectedEnd)
	})

	t.Run("match literal consumes on mismatch", func(t *testing.T) {
		c := NewCursor([]byte("GEX /"))
		ok, err := c.MatchLiteral([]byte("GET "))
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, 3, c.Pos())
	})

	t.Run("match literal past end", func(t *testing.T) {
		c := NewCursor([]byte("GE"))
		_, err := c.MatchLiteral([]byte("GET "))
		requireKind(t, err, UnexpectedEnd)
	})

	t.Run("until", func(t *testing.T) {
		c := NewCursor([]byte("/path HTTP"))
		run, err := c.Until(' ')
		require.NoError(t, err)
		require.Equal(t, "/path", string(run))
		require.Equal(t, 5, c.Pos())

		_, err = c.Until('#')
		requireKind(t, err, UnexpectedEnd)
	})

	t.Run("rest copies", func(t *testing.T) {
		data := []byte("head|body")
		c := NewCursor(data)
		require.NoError(t, c.Advance(5))
		rest := c.Rest()
		require.Equal(t, "body", string(rest))
		require.True(t, c.AtEnd())

		rest[0] = 'B'
		assert.Equal(t, "head|body", string(data))
		assert.Nil(t, c.Rest())
	})
}

func TestParseError(t *testing.T) {
	err := newError(MalformedMethod, 4)
	assert.Equal(t, "http: malformed method at offset 4", err.Error())
	assert.True(t, errors.Is(err, &ParseError{Kind: MalformedMethod}))
	assert.False(t, errors.Is(err, &ParseError{Kind: MalformedVersion}))
	assert.Equal(t, "MalformedMethod", err.Kind.String())
	assert.Equal(t, "ErrorKind(42)", ErrorKind(42).String())
}
