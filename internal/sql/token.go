package sql

import (
	"fmt"

	"tinyDB/internal/schema"
)

// Keyword is a reserved word.
type Keyword uint8

const (
	KeywordCreate Keyword = iota
	KeywordTable
	KeywordIf
	KeywordNot
	KeywordExists
	KeywordPrimary
	KeywordKey
	KeywordNullable
	KeywordSelect
	KeywordInsert
	KeywordUpdate
	KeywordDelete
	KeywordDrop
	KeywordAlter
)

var keywordNames = [...]string{
	KeywordCreate:   "CREATE",
	KeywordTable:    "TABLE",
	KeywordIf:       "IF",
	KeywordNot:      "NOT",
	KeywordExists:   "EXISTS",
	KeywordPrimary:  "PRIMARY",
	KeywordKey:      "KEY",
	KeywordNullable: "NULLABLE",
	KeywordSelect:   "SELECT",
	KeywordInsert:   "INSERT",
	KeywordUpdate:   "UPDATE",
	KeywordDelete:   "DELETE",
	KeywordDrop:     "DROP",
	KeywordAlter:    "ALTER",
}

// keywordsByName is keyed by the uppercase spelling.
var keywordsByName = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for k, name := range keywordNames {
		m[name] = Keyword(k)
	}
	return m
}()

func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return fmt.Sprintf("Keyword(%d)", uint8(k))
}

// Delimiter is a single-character punctuation token.
type Delimiter uint8

const (
	ParenthesisOpening Delimiter = iota
	ParenthesisClosing
	Comma
	Semicolon
)

var delimitersByRune = map[rune]Delimiter{
	'(': ParenthesisOpening,
	')': ParenthesisClosing,
	',': Comma,
	';': Semicolon,
}

func (d Delimiter) String() string {
	switch d {
	case ParenthesisOpening:
		return "("
	case ParenthesisClosing:
		return ")"
	case Comma:
		return ","
	case Semicolon:
		return ";"
	default:
		return fmt.Sprintf("Delimiter(%d)", uint8(d))
	}
}

// TokenKind selects which field of a TokenValue is meaningful.
type TokenKind uint8

const (
	TokenConst TokenKind = iota
	TokenType
	TokenDelimiting
	TokenArbitrary
)

// TokenValue is what a token is, independent of where it was found.
// Values are comparable with ==; build them with Const, TypeName,
// Delimiting or Arbitrary so unused fields stay zero.
type TokenValue struct {
	Kind      TokenKind
	Keyword   Keyword            // TokenConst
	DataType  schema.DataTypeRaw // TokenType
	Delimiter Delimiter          // TokenDelimiting
	Text      string             // TokenArbitrary, case preserved
}

func Const(k Keyword) TokenValue               { return TokenValue{Kind: TokenConst, Keyword: k} }
func TypeName(t schema.DataTypeRaw) TokenValue { return TokenValue{Kind: TokenType, DataType: t} }
func Delimiting(d Delimiter) TokenValue        { return TokenValue{Kind: TokenDelimiting, Delimiter: d} }
func Arbitrary(text string) TokenValue         { return TokenValue{Kind: TokenArbitrary, Text: text} }

// String renders the value the way diagnostics quote it.
func (v TokenValue) String() string {
	switch v.Kind {
	case TokenConst:
		return v.Keyword.String()
	case TokenType:
		return v.DataType.String()
	case TokenDelimiting:
		return v.Delimiter.String()
	case TokenArbitrary:
		return v.Text
	default:
		return fmt.Sprintf("TokenValue(%d)", uint8(v.Kind))
	}
}

// Token is a classified lexical unit and the 1-based line it started on.
type Token struct {
	Value      TokenValue
	LineNumber int
}

func (t Token) String() string {
	return fmt.Sprintf("`%s` at line %d", t.Value, t.LineNumber)
}
