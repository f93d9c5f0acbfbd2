package fastparser

// leadKinds maps the first byte of a message to its variant. 'H' is
// ambiguous between HEAD and HTTP/ and is resolved by the second byte.
var leadKinds = [256]Kind{
	'G': KindRequest,
	'P': KindRequest,
	'D': KindRequest,
	'O': KindRequest,
}

// Classify decides from the first two bytes whether data holds a request or a
// response.
//
// The table works only because the first two letters of every recognized
// method differ from "HT".
func Classify(data []byte) (Kind, error) {
	var c Cursor
	initCursor(&c, data)
	return classify(&c)
}

// classify inspects the two bytes at the cursor without consuming them.
func classify(c *Cursor) (Kind, error) {
	if c.Len()-c.Pos() < 2 {
		return KindUnknown, c.endError()
	}

	first, _ := c.Peek(0)
	if k := leadKinds[first]; k != KindUnknown {
		return k, nil
	}
	if first == 'H' {
		second, _ := c.Peek(1)
		switch second {
		case 'E':
			return KindRequest, nil
		case 'T':
			return KindResponse, nil
		}
	}
	return KindUnknown, newError(MalformedStartLine, c.Pos())
}
