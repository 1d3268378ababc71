package sql

import (
	"strings"
	"unicode"

	"tinyDB/internal/schema"
	"tinyDB/internal/sqlerr"
)

// Lexer splits statement text into tokens. It only classifies characters;
// whether the tokens form a valid statement is decided by the grammar.
type Lexer struct {
	input []rune
	pos   int
	line  int
}

// NewLexer creates a lexer positioned at the start of input, line 1.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input), line: 1}
}

// NextToken returns the next token. ok is false once the input is exhausted.
func (l *Lexer) NextToken() (tok Token, ok bool, err error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{}, false, nil
	}

	ch := l.input[l.pos]
	if d, isDelimiter := delimitersByRune[ch]; isDelimiter {
		l.pos++
		return Token{Value: Delimiting(d), LineNumber: l.line}, true, nil
	}
	if isIdentifierChar(ch) {
		return Token{Value: classify(l.readIdentifier()), LineNumber: l.line}, true, nil
	}
	return Token{}, false, sqlerr.Syntax("Unexpected character `%c` at line %d.", ch, l.line)
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		if l.input[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
}

// readIdentifier consumes the longest run of identifier characters.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for l.pos < len(l.input) && isIdentifierChar(l.input[l.pos]) {
		l.pos++
	}
	return string(l.input[start:l.pos])
}

// classify resolves identifier-shaped text to a keyword, then a type name,
// falling back to an arbitrary name. Matching ignores case.
func classify(text string) TokenValue {
	if k, ok := keywordsByName[strings.ToUpper(text)]; ok {
		return Const(k)
	}
	if t, err := schema.ParseDataTypeRaw(text); err == nil {
		return TypeName(t)
	}
	return Arbitrary(text)
}

func isIdentifierChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

// Tokenize lexes the whole input.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, ok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
