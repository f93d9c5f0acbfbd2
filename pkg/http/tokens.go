package http

import (
	"strings"

	"github.com/shapestone/shape-httpmsg/internal/tokenizer"
)

// Token kinds produced by Tokenize.
const (
	TokenMethod     = tokenizer.TokenMethod
	TokenVersion    = tokenizer.TokenVersion
	TokenStatusCode = tokenizer.TokenStatusCode
	TokenText       = tokenizer.TokenText
	TokenColon      = tokenizer.TokenColon
	TokenSP         = tokenizer.TokenSP
	TokenCRLF       = tokenizer.TokenCRLF
)

// Token is one lexical unit of a start line.
type Token struct {
	Kind  string
	Value string
}

// Tokenize splits the start line of input (everything up to and including
// the first CRLF) into tokens. It is a diagnostic view: it never fails, and
// tokenization simply stops at the first character no matcher accepts, such
// as a bare CR.
func Tokenize(input string) []Token {
	if i := strings.Index(input, "\r\n"); i >= 0 {
		input = input[:i+2]
	}

	tok := tokenizer.NewTokenizer()
	tok.Initialize(input)
	raw, _ := tok.Tokenize()

	tokens := make([]Token, len(raw))
	for i, t := range raw {
		tokens[i] = Token{Kind: t.Kind(), Value: t.ValueString()}
	}
	return tokens
}
