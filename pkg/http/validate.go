package http

import (
	"bytes"
	"io"

	"github.com/shapestone/shape-httpmsg/internal/fastparser"
)

// Validate checks that data is one lexically well-formed HTTP/1.x message.
// It runs the full parser and discards the result. Returns nil if valid, or
// the *ParseError describing the first problem.
func Validate(data []byte) error {
	return fastparser.Validate(data)
}

// ValidateReader reads all data from r and validates it as one message.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return fastparser.Validate(data)
}

// ParseReader reads all data from r and parses it as one message.
func ParseReader(r io.Reader) (Message, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
