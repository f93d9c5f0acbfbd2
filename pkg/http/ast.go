package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpmsg/internal/fastparser"
	"github.com/shapestone/shape-httpmsg/internal/parser"
)

// ParseAST parses data as one HTTP message and returns its AST form.
//
// For requests:
//
//	{ "type": "request", "method": "GET", "resource": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": {"Host": "example.com", ...},
//	  "body": "..." }
//
// For responses:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": "200",
//	  "reason": "OK",
//	  "headers": {"Content-Type": "text/plain", ...},
//	  "body": "..." }
//
// "body" is omitted when the message has none.
func ParseAST(data []byte) (ast.SchemaNode, error) {
	return parser.NewParser(data).Parse()
}

// ParseASTReader reads all data from r and parses it into an AST.
func ParseASTReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return ParseAST(data)
}

// MessageToNode converts a Request or Response to an AST ObjectNode.
// It returns nil for a nil message.
func MessageToNode(msg Message) ast.SchemaNode {
	switch m := msg.(type) {
	case *Request:
		return parser.RequestToNode(&fastparser.Request{
			Method:   m.Method,
			Resource: m.Resource,
			Version:  m.Version,
			Headers:  m.Headers,
			Body:     m.Body,
		})
	case *Response:
		return parser.ResponseToNode(&fastparser.Response{
			Version:    m.Version,
			StatusCode: m.StatusCode,
			Reason:     m.Reason,
			Headers:    m.Headers,
			Body:       m.Body,
		})
	default:
		return nil
	}
}

// NodeToMessage converts an AST ObjectNode back into a *Request or *Response.
// The node's "type" property picks the variant; method, version and status
// code are validated against the same closed sets the wire parser accepts.
func NodeToMessage(node ast.SchemaNode) (Message, error) {
	msg, err := parser.NodeToMessage(node)
	if err != nil {
		return nil, err
	}
	return fromInternal(msg), nil
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}
