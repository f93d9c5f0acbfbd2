// Package parser builds shape-core AST nodes (ObjectNode, LiteralNode) from
// parsed HTTP messages and converts them back.
//
// The message is mapped to an ObjectNode with the following structure:
//
// Request:
//
//	{ "type": "request", "method": "POST", "resource": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": {"Host": "example.com", ...},
//	  "body": "..." }
//
// Response:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": "200",
//	  "reason": "OK",
//	  "headers": {"Content-Type": "text/plain", ...},
//	  "body": "..." }
//
// The status code stays a three-character string so leading zeros survive.
// "body" is present only when the message has one.
package parser

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpmsg/internal/fastparser"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from HTTP wire-format data.
type Parser struct {
	data []byte
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the HTTP message and returns an AST ObjectNode.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	msg, err := fastparser.Unmarshal(p.data)
	if err != nil {
		return nil, err
	}
	return MessageToNode(msg), nil
}

// MessageToNode converts a parsed message into its ObjectNode.
func MessageToNode(msg *fastparser.Message) ast.SchemaNode {
	if msg.Kind == fastparser.KindRequest {
		return RequestToNode(msg.Request)
	}
	return ResponseToNode(msg.Response)
}

// RequestToNode converts a request into its ObjectNode.
func RequestToNode(req *fastparser.Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":     ast.NewLiteralNode("request", zeroPos),
		"method":   ast.NewLiteralNode(req.Method.String(), zeroPos),
		"resource": ast.NewLiteralNode(req.Resource, zeroPos),
		"version":  ast.NewLiteralNode(req.Version.String(), zeroPos),
		"headers":  headersToNode(req.Headers),
	}
	if req.Body != nil {
		props["body"] = ast.NewLiteralNode(string(req.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// ResponseToNode converts a response into its ObjectNode.
func ResponseToNode(resp *fastparser.Response) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("response", zeroPos),
		"version":    ast.NewLiteralNode(resp.Version.String(), zeroPos),
		"statusCode": ast.NewLiteralNode(string(resp.StatusCode[:]), zeroPos),
		"reason":     ast.NewLiteralNode(resp.Reason, zeroPos),
		"headers":    headersToNode(resp.Headers),
	}
	if resp.Body != nil {
		props["body"] = ast.NewLiteralNode(string(resp.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers map[string]string) ast.SchemaNode {
	props := make(map[string]ast.SchemaNode, len(headers))
	for k, v := range headers {
		props[k] = ast.NewLiteralNode(v, zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// NodeToMessage converts an ObjectNode produced by MessageToNode back into a
// message. The "type" property selects the variant.
func NodeToMessage(node ast.SchemaNode) (*fastparser.Message, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	typ, err := stringProp(obj.Properties(), "type")
	if err != nil {
		return nil, err
	}

	switch typ {
	case "request":
		req, err := NodeToRequest(node)
		if err != nil {
			return nil, err
		}
		return &fastparser.Message{Kind: fastparser.KindRequest, Request: req}, nil
	case "response":
		resp, err := NodeToResponse(node)
		if err != nil {
			return nil, err
		}
		return &fastparser.Message{Kind: fastparser.KindResponse, Response: resp}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", typ)
	}
}

// NodeToRequest converts an AST ObjectNode back to a fastparser.Request.
func NodeToRequest(node ast.SchemaNode) (*fastparser.Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}
	props := obj.Properties()

	req := &fastparser.Request{}

	method, err := stringProp(props, "method")
	if err != nil {
		return nil, err
	}
	if req.Method = fastparser.MethodFromString(method); req.Method == fastparser.MethodUnknown {
		return nil, fmt.Errorf("unknown method %q", method)
	}

	if req.Resource, err = stringProp(props, "resource"); err != nil {
		return nil, err
	}
	if req.Version, err = versionProp(props); err != nil {
		return nil, err
	}
	if req.Headers, err = headersProp(props); err != nil {
		return nil, err
	}
	if req.Body, err = bodyProp(props); err != nil {
		return nil, err
	}
	return req, nil
}

// NodeToResponse converts an AST ObjectNode back to a fastparser.Response.
func NodeToResponse(node ast.SchemaNode) (*fastparser.Response, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}
	props := obj.Properties()

	resp := &fastparser.Response{}

	var err error
	if resp.Version, err = versionProp(props); err != nil {
		return nil, err
	}
	if resp.StatusCode, err = statusCodeProp(props); err != nil {
		return nil, err
	}
	if resp.Reason, err = stringProp(props, "reason"); err != nil {
		return nil, err
	}
	if resp.Headers, err = headersProp(props); err != nil {
		return nil, err
	}
	if resp.Body, err = bodyProp(props); err != nil {
		return nil, err
	}
	return resp, nil
}

func stringProp(props map[string]ast.SchemaNode, name string) (string, error) {
	v, ok := props[name]
	if !ok {
		return "", fmt.Errorf("missing %q property", name)
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return "", fmt.Errorf("%q is not a literal", name)
	}
	s, ok := lit.Value().(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string", name)
	}
	return s, nil
}

func versionProp(props map[string]ast.SchemaNode) (fastparser.Version, error) {
	s, err := stringProp(props, "version")
	if err != nil {
		return fastparser.VersionUnknown, err
	}
	v := fastparser.VersionFromString(s)
	if v == fastparser.VersionUnknown {
		return v, fmt.Errorf("unknown version %q", s)
	}
	return v, nil
}

// statusCodeProp accepts the three-digit string form and, for hand-built
// trees, integer literals in 0..999.
func statusCodeProp(props map[string]ast.SchemaNode) ([3]byte, error) {
	var code [3]byte

	v, ok := props["statusCode"]
	if !ok {
		return code, fmt.Errorf("missing %q property", "statusCode")
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return code, fmt.Errorf("%q is not a literal", "statusCode")
	}

	var s string
	switch c := lit.Value().(type) {
	case string:
		s = c
	case int64:
		s = fmt.Sprintf("%03d", c)
	case float64:
		s = fmt.Sprintf("%03d", int64(c))
	default:
		return code, fmt.Errorf("statusCode has unsupported type %T", c)
	}

	if len(s) != 3 {
		return code, fmt.Errorf("statusCode %q is not three digits", s)
	}
	if _, err := strconv.ParseUint(s, 10, 16); err != nil {
		return code, fmt.Errorf("statusCode %q is not three digits", s)
	}
	copy(code[:], s)
	return code, nil
}

func headersProp(props map[string]ast.SchemaNode) (map[string]string, error) {
	v, ok := props["headers"]
	if !ok {
		return map[string]string{}, nil
	}
	obj, ok := v.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode for headers, got %T", v)
	}

	fields := obj.Properties()
	headers := make(map[string]string, len(fields))
	for name, field := range fields {
		lit, ok := field.(*ast.LiteralNode)
		if !ok {
			return nil, fmt.Errorf("header %q is not a literal", name)
		}
		s, ok := lit.Value().(string)
		if !ok {
			return nil, fmt.Errorf("header %q is not a string", name)
		}
		headers[name] = s
	}
	return headers, nil
}

func bodyProp(props map[string]ast.SchemaNode) ([]byte, error) {
	v, ok := props["body"]
	if !ok {
		return nil, nil
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return nil, fmt.Errorf("%q is not a literal", "body")
	}
	s, ok := lit.Value().(string)
	if !ok {
		return nil, fmt.Errorf("%q is not a string", "body")
	}
	if s == "" {
		return nil, nil
	}
	return []byte(s), nil
}
