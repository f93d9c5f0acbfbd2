// Package http parses one complete, already-buffered HTTP/1.x message into a
// typed Request or Response.
//
// The parser is a single pass over the buffer with no backtracking: the first
// two bytes decide between request and response, the start line and header
// block are matched byte by byte, and whatever follows the blank line is the
// body. The first lexical failure aborts the parse with a *ParseError that
// names the failure kind and the byte offset where it was detected.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each function call creates its own parser instance with no shared mutable state.
// Parsed values own their memory: nothing in a result aliases the input buffer.
//
// # Parsing APIs
//
//   - Parse/ParseRequest/ParseResponse/Unmarshal - direct parsing into typed values
//   - ParseAST/MessageToNode/NodeToMessage - shape-core AST view of a message
//   - Tokenize - start-line token stream for diagnostics
//   - NewDecoder - reads one message from an io.Reader, then parses it
package http

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shapestone/shape-httpmsg/internal/fastparser"
)

// Method is a request method. The set is closed.
type Method = fastparser.Method

const (
	MethodUnknown = fastparser.MethodUnknown
	MethodGet     = fastparser.MethodGet
	MethodPut     = fastparser.MethodPut
	MethodPost    = fastparser.MethodPost
	MethodHead    = fastparser.MethodHead
	MethodDelete  = fastparser.MethodDelete
	MethodPatch   = fastparser.MethodPatch
	MethodOptions = fastparser.MethodOptions
)

// Version is a protocol version. The set is closed.
type Version = fastparser.Version

const (
	VersionUnknown = fastparser.VersionUnknown
	Version09      = fastparser.Version09
	Version10      = fastparser.Version10
	Version11      = fastparser.Version11
	Version20      = fastparser.Version20
)

// Kind tells whether a message is a request or a response.
type Kind = fastparser.Kind

const (
	KindUnknown  = fastparser.KindUnknown
	KindRequest  = fastparser.KindRequest
	KindResponse = fastparser.KindResponse
)

// ParseMethod returns the Method spelled exactly as s, or MethodUnknown.
func ParseMethod(s string) Method { return fastparser.MethodFromString(s) }

// ParseVersion returns the Version spelled as s ("HTTP/1.1"), or VersionUnknown.
func ParseVersion(s string) Version { return fastparser.VersionFromString(s) }

// Headers maps header names to values.
//
// Names are compared byte for byte, so "Host" and "host" are different keys,
// and a repeated name keeps only its last value. Lookup is the one
// case-insensitive helper; it reads without changing how names are stored.
type Headers map[string]string

// Get returns the value stored under exactly key, or "".
func (h Headers) Get(key string) string {
	return h[key]
}

// Has reports whether exactly key is present.
func (h Headers) Has(key string) bool {
	_, ok := h[key]
	return ok
}

// Lookup finds a value by ASCII case-insensitive name. When several names
// fold to the same key, the lexically smallest name wins so that the result
// does not depend on map iteration order.
func (h Headers) Lookup(key string) (string, bool) {
	if v, ok := h[key]; ok {
		return v, true
	}
	found := ""
	value := ""
	ok := false
	for k, v := range h {
		if strings.EqualFold(k, key) && (!ok || k < found) {
			found, value, ok = k, v, true
		}
	}
	return value, ok
}

// Set stores value under exactly key, replacing any previous value.
func (h Headers) Set(key, value string) {
	h[key] = value
}

// Del removes exactly key.
func (h Headers) Del(key string) {
	delete(h, key)
}

// Len returns the number of distinct names.
func (h Headers) Len() int {
	return len(h)
}

// Keys returns the names in sorted order.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	for k, v := range h {
		clone[k] = v
	}
	return clone
}

// Request represents a parsed HTTP request.
type Request struct {
	Method   Method  // one of the seven recognized methods
	Resource string  // request target exactly as written, not percent-decoded
	Version  Version // HTTP/0.9 through HTTP/2.0
	Headers  Headers // exact names, last write wins
	Body     []byte  // nil when nothing follows the header block
}

// Response represents a parsed HTTP response.
type Response struct {
	Version    Version // HTTP/0.9 through HTTP/2.0
	StatusCode [3]byte // the three raw ASCII digits, e.g. {'2','0','0'}
	Reason     string  // reason phrase, possibly empty
	Headers    Headers // exact names, last write wins
	Body       []byte  // nil when nothing follows the header block
}

// StatusCodeString returns the status code as written, e.g. "200" or "007".
func (r *Response) StatusCodeString() string {
	return string(r.StatusCode[:])
}

// StatusCodeInt returns the numeric value of the status code.
func (r *Response) StatusCodeInt() int {
	n, _ := strconv.Atoi(r.StatusCodeString())
	return n
}

// Message is either a *Request or a *Response; no other type implements it.
// Use a type switch or Kind to tell them apart.
type Message interface {
	Kind() Kind
	GetVersion() Version
	GetHeaders() Headers
	GetBody() []byte

	isMessage()
}

// Kind returns KindRequest.
func (r *Request) Kind() Kind { return KindRequest }

// GetVersion returns the HTTP version.
func (r *Request) GetVersion() Version { return r.Version }

// GetHeaders returns the headers.
func (r *Request) GetHeaders() Headers { return r.Headers }

// GetBody returns the body bytes.
func (r *Request) GetBody() []byte { return r.Body }

func (r *Request) isMessage() {}

// Kind returns KindResponse.
func (r *Response) Kind() Kind { return KindResponse }

// GetVersion returns the HTTP version.
func (r *Response) GetVersion() Version { return r.Version }

// GetHeaders returns the headers.
func (r *Response) GetHeaders() Headers { return r.Headers }

// GetBody returns the body bytes.
func (r *Response) GetBody() []byte { return r.Body }

func (r *Response) isMessage() {}

// Unmarshaler is the interface implemented by types that can unmarshal
// an HTTP wire-format description of themselves.
type Unmarshaler interface {
	UnmarshalHTTP([]byte) error
}
