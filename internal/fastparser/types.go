package fastparser

// Kind tells which variant a buffer holds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRequest
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Method is one of the recognized request methods. There is no extension
// mechanism; anything else is rejected while parsing.
type Method uint8

const (
	MethodUnknown Method = iota
	MethodGet
	MethodPut
	MethodPost
	MethodHead
	MethodDelete
	MethodPatch
	MethodOptions
)

var methodNames = [...]string{
	MethodGet:     "GET",
	MethodPut:     "PUT",
	MethodPost:    "POST",
	MethodHead:    "HEAD",
	MethodDelete:  "DELETE",
	MethodPatch:   "PATCH",
	MethodOptions: "OPTIONS",
}

// Methods lists every recognized method in declaration order.
var Methods = []Method{MethodGet, MethodPut, MethodPost, MethodHead, MethodDelete, MethodPatch, MethodOptions}

func (m Method) String() string {
	if int(m) < len(methodNames) && methodNames[m] != "" {
		return methodNames[m]
	}
	return "UNKNOWN"
}

// MethodFromString maps an exact, upper-case method name to its Method.
func MethodFromString(s string) Method {
	for _, m := range Methods {
		if methodNames[m] == s {
			return m
		}
	}
	return MethodUnknown
}

// Version is one of the recognized protocol versions.
type Version uint8

const (
	VersionUnknown Version = iota
	Version09
	Version10
	Version11
	Version20
)

var versionNames = [...]string{
	Version09: "HTTP/0.9",
	Version10: "HTTP/1.0",
	Version11: "HTTP/1.1",
	Version20: "HTTP/2.0",
}

// Versions lists every recognized version in ascending order.
var Versions = []Version{Version09, Version10, Version11, Version20}

func (v Version) String() string {
	if int(v) < len(versionNames) && versionNames[v] != "" {
		return versionNames[v]
	}
	return "HTTP/?"
}

// VersionFromString maps the canonical spelling ("HTTP/1.1") to its Version.
// "HTTP/2" is accepted as an alias of "HTTP/2.0".
func VersionFromString(s string) Version {
	if s == "HTTP/2" {
		return Version20
	}
	for _, v := range Versions {
		if versionNames[v] == s {
			return v
		}
	}
	return VersionUnknown
}

// Request is a parsed request. Strings and Body never alias the input buffer.
type Request struct {
	Method   Method
	Resource string
	Version  Version
	Headers  map[string]string
	Body     []byte
}

// Response is a parsed response. StatusCode holds the three raw digits.
type Response struct {
	Version    Version
	StatusCode [3]byte
	Reason     string
	Headers    map[string]string
	Body       []byte
}

// Message is the tagged result of a parse: exactly one of Request and
// Response is non-nil, as indicated by Kind.
type Message struct {
	Kind     Kind
	Request  *Request
	Response *Response
}
