// Package tokenizer provides start-line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for HTTP start lines.
const (
	TokenMethod     = "Method"     // GET, PUT, POST, HEAD, DELETE, PATCH, OPTIONS
	TokenVersion    = "Version"    // HTTP/0.9, HTTP/1.0, HTTP/1.1, HTTP/2, HTTP/2.0
	TokenStatusCode = "StatusCode" // exactly three digits: 200, 404, 007
	TokenText       = "Text"       // resource, reason phrase words, header names

	TokenColon = "Colon" // :
	TokenSP    = "SP"    // single space
	TokenCRLF  = "CRLF"  // \r\n
)
