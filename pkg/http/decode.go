package http

import (
	"io"

	"github.com/pkg/errors"
)

// DefaultChunkSize is the read size used when NewDecoder is given a
// non-positive chunk size.
const DefaultChunkSize = 8

// ErrMessageTooLarge is returned by Decode when the buffered message grows
// past the limit set with SetMaxMessageSize.
var ErrMessageTooLarge = errors.New("http: message exceeds maximum size")

// Decoder buffers one HTTP message from a stream and parses it.
//
// The stream is read in fixed-size chunks until a read returns fewer bytes
// than the chunk size (or io.EOF); the bytes gathered so far are taken as
// the whole message. There is no Content-Length or chunked framing, so the
// writer is expected to send the message in one piece and then pause or
// close. A single Decoder is not safe for concurrent use.
type Decoder struct {
	r         io.Reader
	chunkSize int
	maxSize   int
}

// NewDecoder returns a decoder that reads from r in chunks of chunkSize
// bytes.
func NewDecoder(r io.Reader, chunkSize int) *Decoder {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Decoder{r: r, chunkSize: chunkSize}
}

// SetMaxMessageSize limits how many bytes ReadMessage buffers. Zero or a
// negative value removes the limit.
func (dec *Decoder) SetMaxMessageSize(n int) {
	dec.maxSize = n
}

// ReadMessage reads until a short read and returns the buffered bytes.
// It returns io.EOF, unwrapped, when the stream ends before any byte
// arrives.
func (dec *Decoder) ReadMessage() ([]byte, error) {
	var buf []byte
	chunk := make([]byte, dec.chunkSize)

	for {
		n, err := dec.r.Read(chunk)
		buf = append(buf, chunk[:n]...)

		if dec.maxSize > 0 && len(buf) > dec.maxSize {
			return nil, errors.Wrapf(ErrMessageTooLarge, "read %d bytes, limit %d", len(buf), dec.maxSize)
		}

		if err == io.EOF {
			if len(buf) == 0 {
				return nil, io.EOF
			}
			return buf, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "http: decode")
		}
		if n < dec.chunkSize {
			return buf, nil
		}
	}
}

// Decode reads the next message and parses it. Parse failures are returned
// as *ParseError, read failures are wrapped with context.
func (dec *Decoder) Decode() (Message, error) {
	data, err := dec.ReadMessage()
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
