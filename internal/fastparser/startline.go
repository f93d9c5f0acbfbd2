package fastparser

// methodLiteral is a method spelling including its trailing separator.
type methodLiteral struct {
	lit    []byte
	method Method
}

var (
	litGet     = methodLiteral{[]byte("GET "), MethodGet}
	litPut     = methodLiteral{[]byte("PUT "), MethodPut}
	litPost    = methodLiteral{[]byte("POST "), MethodPost}
	litHead    = methodLiteral{[]byte("HEAD "), MethodHead}
	litDelete  = methodLiteral{[]byte("DELETE "), MethodDelete}
	litPatch   = methodLiteral{[]byte("PATCH "), MethodPatch}
	litOptions = methodLiteral{[]byte("OPTIONS "), MethodOptions}
)

// methodByLead resolves every method whose first byte is unique.
var methodByLead = [256]*methodLiteral{
	'G': &litGet,
	'H': &litHead,
	'D': &litDelete,
	'O': &litOptions,
}

// methodByP resolves the P family by its second byte.
var methodByP = [256]*methodLiteral{
	'U': &litPut,
	'O': &litPost,
	'A': &litPatch,
}

// parseMethod consumes the method and the single space after it.
func parseMethod(c *Cursor) (Method, error) {
	start := c.Pos()

	first, err := c.Peek(0)
	if err != nil {
		return MethodUnknown, err
	}

	lit := methodByLead[first]
	if first == 'P' {
		second, err := c.Peek(1)
		if err != nil {
			return MethodUnknown, err
		}
		lit = methodByP[second]
	}
	if lit == nil {
		return MethodUnknown, newError(MalformedMethod, start)
	}

	ok, err := c.MatchLiteral(lit.lit)
	if err != nil {
		return MethodUnknown, err
	}
	if !ok {
		return MethodUnknown, newError(MalformedMethod, start)
	}
	return lit.method, nil
}

// parseRequestLine parses "METHOD SP RESOURCE SP VERSION CRLF".
func parseRequestLine(c *Cursor) (Method, string, Version, error) {
	method, err := parseMethod(c)
	if err != nil {
		return MethodUnknown, "", VersionUnknown, err
	}

	resStart := c.Pos()
	res, err := c.Until(' ')
	if err != nil {
		return MethodUnknown, "", VersionUnknown, err
	}
	if len(res) == 0 {
		return MethodUnknown, "", VersionUnknown, newError(MalformedStartLine, resStart)
	}
	resource := string(res)
	if err := c.Advance(1); err != nil {
		return MethodUnknown, "", VersionUnknown, err
	}

	version, err := parseVersion(c)
	if err != nil {
		return MethodUnknown, "", VersionUnknown, err
	}
	if err := expectCRLF(c); err != nil {
		return MethodUnknown, "", VersionUnknown, err
	}

	return method, resource, version, nil
}

// parseStatusLine parses "VERSION SP STATUS-CODE SP REASON-PHRASE CRLF".
// The reason phrase may be empty.
func parseStatusLine(c *Cursor) (Version, [3]byte, string, error) {
	var code [3]byte

	version, err := parseVersion(c)
	if err != nil {
		return VersionUnknown, code, "", err
	}
	if err := expectSP(c, MalformedStartLine); err != nil {
		return VersionUnknown, code, "", err
	}

	codeStart := c.Pos()
	for i := range code {
		b, err := c.Next()
		if err != nil {
			return VersionUnknown, code, "", err
		}
		if !isDigit(b) {
			return VersionUnknown, code, "", newError(MalformedStatusCode, codeStart)
		}
		code[i] = b
	}

	// A fourth digit means the code is longer than three digits.
	if b, err := c.Peek(0); err == nil && isDigit(b) {
		return VersionUnknown, code, "", newError(MalformedStatusCode, codeStart)
	}
	if err := expectSP(c, MalformedStartLine); err != nil {
		return VersionUnknown, code, "", err
	}

	reason, err := c.Until('\r')
	if err != nil {
		return VersionUnknown, code, "", err
	}
	phrase := internReason(reason)
	if err := expectCRLF(c); err != nil {
		return VersionUnknown, code, "", err
	}

	return version, code, phrase, nil
}

// expectSP consumes exactly one space, reporting kind when something else is there.
func expectSP(c *Cursor, kind ErrorKind) error {
	start := c.Pos()
	b, err := c.Next()
	if err != nil {
		return err
	}
	if b != ' ' {
		return newError(kind, start)
	}
	return nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
