package fastparser

import "fmt"

// ErrorKind classifies a parse failure. The set is closed.
type ErrorKind uint8

const (
	// UnexpectedEnd means a read, peek or advance ran past the end of the buffer.
	UnexpectedEnd ErrorKind = iota + 1
	// MalformedStartLine means the leading bytes match neither a request nor a
	// response, the resource is empty, or a start-line separator is missing.
	MalformedStartLine
	// MalformedMethod means the method token is none of the recognized literals.
	MalformedMethod
	// MalformedVersion means the "HTTP/" literal or the version digits are wrong.
	MalformedVersion
	// MalformedStatusCode means the status code is not exactly three ASCII digits.
	MalformedStatusCode
	// MalformedHeader means a header line has no ':' separator or no name.
	MalformedHeader
)

var kindText = [...]string{
	UnexpectedEnd:       "unexpected end of message",
	MalformedStartLine:  "malformed start line",
	MalformedMethod:     "malformed method",
	MalformedVersion:    "malformed version",
	MalformedStatusCode: "malformed status code",
	MalformedHeader:     "malformed header",
}

var kindNames = [...]string{
	UnexpectedEnd:       "UnexpectedEnd",
	MalformedStartLine:  "MalformedStartLine",
	MalformedMethod:     "MalformedMethod",
	MalformedVersion:    "MalformedVersion",
	MalformedStatusCode: "MalformedStatusCode",
	MalformedHeader:     "MalformedHeader",
}

// String returns the identifier of the kind, e.g. "MalformedMethod".
func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Description returns a lower-case human readable phrase for the kind.
func (k ErrorKind) Description() string {
	if int(k) < len(kindText) && kindText[k] != "" {
		return kindText[k]
	}
	return "unknown parse error"
}

// ParseError reports the first failure of a parse and the byte offset at
// which it was detected. For UnexpectedEnd the offset equals the buffer length.
type ParseError struct {
	Kind   ErrorKind
	Offset int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("http: %s at offset %d", e.Kind.Description(), e.Offset)
}

// Is reports whether target is a *ParseError of the same kind. The offset is
// ignored so that sentinel values match any occurrence.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, offset int) *ParseError {
	return &ParseError{Kind: kind, Offset: offset}
}
