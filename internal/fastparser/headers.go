package fastparser

// parseHeaders reads "Name: Value" lines until the blank line that ends the
// header block and consumes that blank line. A block with no fields at all is
// just the blank line.
//
// Names are stored byte-exact. A repeated name overwrites the earlier value.
func parseHeaders(c *Cursor) (map[string]string, error) {
	headers := make(map[string]string, 8)

	for {
		blank, err := atBlankLine(c)
		if err != nil {
			return nil, err
		}
		if blank {
			if err := c.Advance(2); err != nil {
				return nil, err
			}
			return headers, nil
		}

		name, err := parseHeaderName(c)
		if err != nil {
			return nil, err
		}
		value, err := parseHeaderValue(c)
		if err != nil {
			return nil, err
		}

		headers[name] = value
	}
}

// atBlankLine reports whether the next two bytes are CRLF. Running out of
// bytes here means the terminating blank line is missing.
func atBlankLine(c *Cursor) (bool, error) {
	b, err := c.Peek(0)
	if err != nil {
		return false, err
	}
	if b != '\r' {
		return false, nil
	}
	lf, err := c.Peek(1)
	if err != nil {
		return false, err
	}
	return lf == '\n', nil
}

// parseHeaderName reads up to the ':' separator, consumes it and at most one
// following space.
func parseHeaderName(c *Cursor) (string, error) {
	start := c.Pos()
	for {
		b, err := c.Peek(0)
		if err != nil {
			return "", err
		}
		if b == ':' {
			break
		}
		if b == '\r' || b == '\n' {
			return "", newError(MalformedHeader, start)
		}
		if err := c.Advance(1); err != nil {
			return "", err
		}
	}

	raw := c.Since(start)
	if len(raw) == 0 {
		return "", newError(MalformedHeader, start)
	}
	name := internHeaderName(raw)

	if err := c.Advance(1); err != nil {
		return "", err
	}
	if b, err := c.Peek(0); err == nil && b == ' ' {
		_ = c.Advance(1)
	}
	return name, nil
}

// parseHeaderValue reads up to the CRLF that ends the line and consumes it.
// A CR that is not followed by LF belongs to the value.
func parseHeaderValue(c *Cursor) (string, error) {
	start := c.Pos()
	for {
		b, err := c.Peek(0)
		if err != nil {
			return "", err
		}
		if b == '\r' {
			lf, err := c.Peek(1)
			if err != nil {
				return "", err
			}
			if lf == '\n' {
				break
			}
		}
		if err := c.Advance(1); err != nil {
			return "", err
		}
	}

	value := string(c.Since(start))
	if err := c.Advance(2); err != nil {
		return "", err
	}
	return value, nil
}
