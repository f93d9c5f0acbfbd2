package http

import (
	"errors"

	"github.com/shapestone/shape-httpmsg/internal/fastparser"
)

// ParseError reports the first lexical failure of a parse: its Kind and the
// byte Offset at which it was detected. For ErrorUnexpectedEnd the offset is
// the length of the input.
type ParseError = fastparser.ParseError

// ErrorKind classifies a ParseError. The set is closed.
type ErrorKind = fastparser.ErrorKind

const (
	ErrorUnexpectedEnd       = fastparser.UnexpectedEnd
	ErrorMalformedStartLine  = fastparser.MalformedStartLine
	ErrorMalformedMethod     = fastparser.MalformedMethod
	ErrorMalformedVersion    = fastparser.MalformedVersion
	ErrorMalformedStatusCode = fastparser.MalformedStatusCode
	ErrorMalformedHeader     = fastparser.MalformedHeader
)

// Sentinels for errors.Is. A *ParseError matches the sentinel of its kind
// regardless of offset.
var (
	ErrUnexpectedEnd       error = &ParseError{Kind: ErrorUnexpectedEnd}
	ErrMalformedStartLine  error = &ParseError{Kind: ErrorMalformedStartLine}
	ErrMalformedMethod     error = &ParseError{Kind: ErrorMalformedMethod}
	ErrMalformedVersion    error = &ParseError{Kind: ErrorMalformedVersion}
	ErrMalformedStatusCode error = &ParseError{Kind: ErrorMalformedStatusCode}
	ErrMalformedHeader     error = &ParseError{Kind: ErrorMalformedHeader}
)

// ErrKindMismatch is returned by ParseRequest, ParseResponse and Unmarshal
// when the buffer holds the other kind of message.
var ErrKindMismatch = errors.New("http: message kind does not match target")

// KindOf returns the ErrorKind of err if it is or wraps a *ParseError.
func KindOf(err error) (ErrorKind, bool) {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}
