package http

import (
	"fmt"

	"github.com/shapestone/shape-httpmsg/internal/fastparser"
)

// Parse parses data as exactly one HTTP/1.x message.
//
// data must hold the complete message: start line, header block ending in a
// blank line, and optionally a body. The first two bytes decide whether it
// is a request or a response. Everything after the blank line becomes the
// body verbatim; Content-Length and Transfer-Encoding are not consulted.
//
// On failure Parse returns a nil Message and a *ParseError.
func Parse(data []byte) (Message, error) {
	msg, err := fastparser.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return fromInternal(msg), nil
}

// ParseRequest parses data and requires it to be a request.
func ParseRequest(data []byte) (*Request, error) {
	msg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	req, ok := msg.(*Request)
	if !ok {
		return nil, fmt.Errorf("%w: data is a %s, want request", ErrKindMismatch, msg.Kind())
	}
	return req, nil
}

// ParseResponse parses data and requires it to be a response.
func ParseResponse(data []byte) (*Response, error) {
	msg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	resp, ok := msg.(*Response)
	if !ok {
		return nil, fmt.Errorf("%w: data is a %s, want response", ErrKindMismatch, msg.Kind())
	}
	return resp, nil
}

// Unmarshal parses the HTTP wire-format data and stores the result in v.
//
// v must be a *Request, a *Response, or implement Unmarshaler. The message
// kind is detected from data and must match v.
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("http: Unmarshal(nil)")
	}

	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalHTTP(data)
	}

	switch target := v.(type) {
	case *Request:
		req, err := ParseRequest(data)
		if err != nil {
			return err
		}
		*target = *req
		return nil

	case *Response:
		resp, err := ParseResponse(data)
		if err != nil {
			return err
		}
		*target = *resp
		return nil

	default:
		return fmt.Errorf("http: Unmarshal unsupported type %T (expected *Request or *Response)", v)
	}
}

// DetectMessageType classifies data from its first two bytes without parsing
// the rest.
func DetectMessageType(data []byte) (Kind, error) {
	return fastparser.Classify(data)
}

func fromInternal(msg *fastparser.Message) Message {
	if msg.Kind == fastparser.KindRequest {
		req := msg.Request
		return &Request{
			Method:   req.Method,
			Resource: req.Resource,
			Version:  req.Version,
			Headers:  Headers(req.Headers),
			Body:     req.Body,
		}
	}

	resp := msg.Response
	return &Response{
		Version:    resp.Version,
		StatusCode: resp.StatusCode,
		Reason:     resp.Reason,
		Headers:    Headers(resp.Headers),
		Body:       resp.Body,
	}
}
