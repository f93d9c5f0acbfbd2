package http

import (
	json "github.com/json-iterator/go"
)

// Header maps are written with sorted keys so output is stable.
var jsonConfig = json.ConfigCompatibleWithStandardLibrary

type requestJSON struct {
	Type     string  `json:"type"`
	Method   string  `json:"method"`
	Resource string  `json:"resource"`
	Version  string  `json:"version"`
	Headers  Headers `json:"headers"`
	Body     *string `json:"body,omitempty"`
}

type responseJSON struct {
	Type       string  `json:"type"`
	Version    string  `json:"version"`
	StatusCode string  `json:"statusCode"`
	Reason     string  `json:"reason"`
	Headers    Headers `json:"headers"`
	Body       *string `json:"body,omitempty"`
}

// MarshalJSON renders the request with the same field names as its AST form.
// The body is written as text and omitted when nil.
func (r *Request) MarshalJSON() ([]byte, error) {
	return marshal(requestJSON{
		Type:     "request",
		Method:   r.Method.String(),
		Resource: r.Resource,
		Version:  r.Version.String(),
		Headers:  r.Headers,
		Body:     bodyText(r.Body),
	})
}

// MarshalJSON renders the response with the same field names as its AST form.
// The status code stays a three-character string.
func (r *Response) MarshalJSON() ([]byte, error) {
	return marshal(responseJSON{
		Type:       "response",
		Version:    r.Version.String(),
		StatusCode: r.StatusCodeString(),
		Reason:     r.Reason,
		Headers:    r.Headers,
		Body:       bodyText(r.Body),
	})
}

func marshal(v interface{}) ([]byte, error) {
	stream := jsonConfig.BorrowStream(nil)
	stream.WriteVal(v)
	data := append([]byte(nil), stream.Buffer()...)
	err := stream.Error
	jsonConfig.ReturnStream(stream)

	if err != nil {
		return nil, err
	}
	return data, nil
}

func bodyText(body []byte) *string {
	if body == nil {
		return nil
	}
	s := string(body)
	return &s
}
