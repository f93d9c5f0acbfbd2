package fastparser

import (
	"bytes"
	"errors"
	"testing"
)

var fuzzSeeds = [][]byte{
	[]byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"),
	[]byte("POST /api HTTP/1.1\r\nHost: example.com\r\nContent-Length: 4\r\n\r\ndata"),
	[]byte("DELETE /resource/1 HTTP/1.0\r\nAuthorization: Bearer tok\r\n\r\n"),
	[]byte("OPTIONS * HTTP/2\r\n\r\n"),
	[]byte("PATCH /x HTTP/0.9\r\nA:b\r\n\r\n"),
	[]byte("HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhello"),
	[]byte("HTTP/1.1 204 No Content\r\n\r\n"),
	[]byte("HTTP/2.0 404 \r\nX: a\rb\r\n\r\n"),
	[]byte(""),
	[]byte("\r\n\r\n"),
	[]byte("GET"),
	[]byte("GET/x HTTP/1.1\r\n\r\n"),
	[]byte("HTTP/1.1 2x0 OK\r\n\r\n"),
}

// FuzzUnmarshal checks that arbitrary input never panics, that failures
// carry a known kind and an in-range offset, and that successes never carry
// a half-filled message.
func FuzzUnmarshal(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Unmarshal panicked on input %q: %v", data, r)
			}
		}()

		msg, err := Unmarshal(data)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if perr.Kind < UnexpectedEnd || perr.Kind > MalformedHeader {
				t.Fatalf("unknown kind %d", perr.Kind)
			}
			if perr.Offset < 0 || perr.Offset > len(data) {
				t.Fatalf("offset %d out of range for %d bytes", perr.Offset, len(data))
			}
			if msg != nil {
				t.Fatalf("partial message returned with error %v", err)
			}
			return
		}

		switch msg.Kind {
		case KindRequest:
			if msg.Request == nil || msg.Response != nil {
				t.Fatalf("request variant is inconsistent: %+v", msg)
			}
			if msg.Request.Body != nil && len(msg.Request.Body) == 0 {
				t.Fatal("empty non-nil body")
			}
		case KindResponse:
			if msg.Response == nil || msg.Request != nil {
				t.Fatalf("response variant is inconsistent: %+v", msg)
			}
			if !bytes.HasPrefix(data, []byte("HT")) {
				t.Fatalf("response from input not starting with HT: %q", data)
			}
		default:
			t.Fatalf("unknown kind %v", msg.Kind)
		}
	})
}

// FuzzDeterminism checks that parsing the same bytes twice gives the same
// outcome.
func FuzzDeterminism(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		first, err1 := Unmarshal(data)
		second, err2 := Unmarshal(data)

		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("error mismatch: %v vs %v", err1, err2)
		}
		if err1 != nil {
			if err1.Error() != err2.Error() {
				t.Fatalf("error mismatch: %v vs %v", err1, err2)
			}
			return
		}
		if first.Kind != second.Kind {
			t.Fatalf("kind mismatch: %v vs %v", first.Kind, second.Kind)
		}
	})
}
