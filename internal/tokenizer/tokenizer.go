package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for HTTP start lines. Matchers are tried
// in order:
// 1. CRLF (line endings; a bare CR or LF is not a line ending)
// 2. SP (space separator)
// 3. Colon
// 4. HTTP version literal
// 5. Method literal from the closed set
// 6. Three-digit status code
// 7. Generic text (everything else until SP, CR, LF, or colon)
//
// The default whitespace skipper is not used because spaces are significant.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		CRLFMatcher(),
		SPMatcher(),
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		VersionMatcher(),
		MethodMatcher(),
		StatusCodeMatcher(),
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// CRLFMatcher matches \r\n only.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '\r' {
			return nil
		}
		stream.NextChar()
		r, ok = stream.PeekChar()
		if !ok || r != '\n' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenCRLF, []rune{'\r', '\n'})
	}
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != ' ' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenSP, []rune{' '})
	}
}

// versionSpellings are the accepted version literals.
var versionSpellings = []string{"HTTP/0.9", "HTTP/1.0", "HTTP/1.1", "HTTP/2.0", "HTTP/2"}

// VersionMatcher matches one of the recognized version literals when it is
// followed by a delimiter.
func VersionMatcher() tokenizer.Matcher {
	return literalMatcher(TokenVersion, versionSpellings)
}

var methodSpellings = []string{"GET", "PUT", "POST", "HEAD", "DELETE", "PATCH", "OPTIONS"}

// MethodMatcher matches one of the recognized method names when it is
// followed by a delimiter, so "GETX" is text rather than a method.
func MethodMatcher() tokenizer.Matcher {
	return literalMatcher(TokenMethod, methodSpellings)
}

// StatusCodeMatcher matches exactly three ASCII digits followed by a delimiter.
func StatusCodeMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		value := make([]rune, 0, 3)
		for i := 0; i < 3; i++ {
			r, ok := stream.PeekChar()
			if !ok || r < '0' || r > '9' {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}
		if !atDelimiter(stream) {
			return nil
		}
		return tokenizer.NewToken(TokenStatusCode, value)
	}
}

// TextMatcher matches any sequence of characters until SP, CR, LF, colon, or EOS.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || isDelimiter(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}

// literalMatcher tries each spelling in order. A spelling matches only when
// it is followed by a delimiter or the end of the stream.
func literalMatcher(kind string, spellings []string) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || isDelimiter(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		word := string(value)
		for _, s := range spellings {
			if word == s {
				return tokenizer.NewToken(kind, value)
			}
		}
		return nil
	}
}

func atDelimiter(stream tokenizer.Stream) bool {
	r, ok := stream.PeekChar()
	return !ok || isDelimiter(r)
}

func isDelimiter(r rune) bool {
	return r == ' ' || r == '\r' || r == '\n' || r == ':'
}
