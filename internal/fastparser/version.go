package fastparser

var (
	httpPrefix = []byte("HTTP/")
	minor09    = []byte(".9")
	crlf       = []byte("\r\n")
)

// parseVersion reads "HTTP/" followed by one of 0.9, 1.0, 1.1 or 2[.0].
//
// A bare "HTTP/2" is accepted because that is how it appears on the wire.
// A ".0" after the 2 is consumed when present; any other suffix is left for
// the caller's next literal check.
func parseVersion(c *Cursor) (Version, error) {
	start := c.Pos()

	ok, err := c.MatchLiteral(httpPrefix)
	if err != nil {
		return VersionUnknown, err
	}
	if !ok {
		return VersionUnknown, newError(MalformedVersion, start)
	}

	major, err := c.Next()
	if err != nil {
		return VersionUnknown, err
	}

	switch major {
	case '0':
		ok, err := c.MatchLiteral(minor09)
		if err != nil {
			return VersionUnknown, err
		}
		if !ok {
			return VersionUnknown, newError(MalformedVersion, start)
		}
		return Version09, nil

	case '1':
		dot, err := c.Next()
		if err != nil {
			return VersionUnknown, err
		}
		if dot != '.' {
			return VersionUnknown, newError(MalformedVersion, start)
		}
		minor, err := c.Next()
		if err != nil {
			return VersionUnknown, err
		}
		switch minor {
		case '0':
			return Version10, nil
		case '1':
			return Version11, nil
		}
		return VersionUnknown, newError(MalformedVersion, start)

	case '2':
		if b, err := c.Peek(0); err == nil && b == '.' {
			if z, err := c.Peek(1); err == nil && z == '0' {
				_ = c.Advance(2)
			}
		}
		return Version20, nil
	}

	return VersionUnknown, newError(MalformedVersion, start)
}

// expectCRLF consumes the line terminator of a start line.
func expectCRLF(c *Cursor) error {
	start := c.Pos()
	ok, err := c.MatchLiteral(crlf)
	if err != nil {
		return err
	}
	if !ok {
		return newError(MalformedStartLine, start)
	}
	return nil
}
