package http

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAST(t *testing.T) {
	node, err := ParseAST([]byte("POST /api HTTP/1.1\r\nHost: example.com\r\n\r\n{}"))
	require.NoError(t, err)

	got := NodeToInterface(node)
	assert.Equal(t, map[string]interface{}{
		"type":     "request",
		"method":   "POST",
		"resource": "/api",
		"version":  "HTTP/1.1",
		"headers":  map[string]interface{}{"Host": "example.com"},
		"body":     "{}",
	}, got)
}

func TestParseAST_Error(t *testing.T) {
	node, err := ParseAST([]byte("HTTP/1.1 20 OK\r\n\r\n"))
	assert.Nil(t, node)
	require.ErrorIs(t, err, ErrMalformedStatusCode)
}

func TestParseASTReader(t *testing.T) {
	node, err := ParseASTReader(strings.NewReader("HTTP/1.1 204 No Content\r\n\r\n"))
	require.NoError(t, err)

	props := node.(*ast.ObjectNode).Properties()
	assert.Equal(t, "204", props["statusCode"].(*ast.LiteralNode).Value())
	assert.NotContains(t, props, "body")
}

func TestMessageToNode_RoundTrip(t *testing.T) {
	inputs := []string{
		"GET /index.html HTTP/1.1\r\nHost: example.com\r\n\r\n",
		"PATCH /users/7 HTTP/2\r\nContent-Type: application/json\r\n\r\n{\"a\":1}",
		"HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\nHello",
		"HTTP/1.0 007 \r\n\r\n",
	}

	for _, in := range inputs {
		t.Run(strings.SplitN(in, "\r\n", 2)[0], func(t *testing.T) {
			msg, err := Parse([]byte(in))
			require.NoError(t, err)

			back, err := NodeToMessage(MessageToNode(msg))
			require.NoError(t, err)
			assert.Equal(t, msg, back)
		})
	}
}

func TestMessageToNode_Nil(t *testing.T) {
	assert.Nil(t, MessageToNode(nil))
}

func TestNodeToMessage_Invalid(t *testing.T) {
	_, err := NodeToMessage(ast.NewLiteralNode("request", ast.Position{}))
	require.Error(t, err)

	node := ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":     ast.NewLiteralNode("request", ast.Position{}),
		"method":   ast.NewLiteralNode("CONNECT", ast.Position{}),
		"resource": ast.NewLiteralNode("/", ast.Position{}),
		"version":  ast.NewLiteralNode("HTTP/1.1", ast.Position{}),
	}, ast.Position{})
	_, err = NodeToMessage(node)
	require.Error(t, err)
}

func TestNodeToInterface(t *testing.T) {
	arr := ast.NewArrayDataNode([]ast.SchemaNode{
		ast.NewLiteralNode("a", ast.Position{}),
		ast.NewLiteralNode(int64(2), ast.Position{}),
	}, ast.Position{})
	assert.Equal(t, []interface{}{"a", int64(2)}, NodeToInterface(arr))
	assert.Nil(t, NodeToInterface(nil))
}
