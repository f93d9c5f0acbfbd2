// Package fastparser implements a single-pass HTTP/1.x message parser over a
// complete, already-buffered message. It scans bytes directly into Request and
// Response values through a bounds-checked Cursor and stops at the first
// failure with a typed *ParseError.
package fastparser

// Parser assembles one message from a buffer. A Parser is used for a single
// parse and is not safe for concurrent use; separate Parsers share nothing.
type Parser struct {
	cur Cursor
}

// NewParser creates a new parser for the given data.
func NewParser(data []byte) *Parser {
	p := &Parser{}
	initCursor(&p.cur, data)
	return p
}

// initParser initializes a parser in-place (stack-friendly, avoids heap alloc).
func initParser(p *Parser, data []byte) {
	initCursor(&p.cur, data)
}

// Parse classifies the buffer and parses it as a request or a response. No
// partial message is returned: on error the result is nil.
func (p *Parser) Parse() (*Message, error) {
	kind, err := classify(&p.cur)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindRequest:
		req, err := p.parseRequest()
		if err != nil {
			return nil, err
		}
		return &Message{Kind: KindRequest, Request: req}, nil
	default:
		resp, err := p.parseResponse()
		if err != nil {
			return nil, err
		}
		return &Message{Kind: KindResponse, Response: resp}, nil
	}
}

// Offset returns how many bytes have been consumed so far.
func (p *Parser) Offset() int {
	return p.cur.Pos()
}

func (p *Parser) parseRequest() (*Request, error) {
	method, resource, version, err := parseRequestLine(&p.cur)
	if err != nil {
		return nil, err
	}

	headers, err := parseHeaders(&p.cur)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method:   method,
		Resource: resource,
		Version:  version,
		Headers:  headers,
		Body:     extractBody(&p.cur),
	}, nil
}

func (p *Parser) parseResponse() (*Response, error) {
	version, code, reason, err := parseStatusLine(&p.cur)
	if err != nil {
		return nil, err
	}

	headers, err := parseHeaders(&p.cur)
	if err != nil {
		return nil, err
	}

	return &Response{
		Version:    version,
		StatusCode: code,
		Reason:     reason,
		Headers:    headers,
		Body:       extractBody(&p.cur),
	}, nil
}
