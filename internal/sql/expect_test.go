package sql

import (
	"errors"
	"testing"

	"tinyDB/internal/schema"
	"tinyDB/internal/sqlerr"
)

// line1 builds tokens that all sit on line 1.
func line1(values ...TokenValue) []Token {
	tokens := make([]Token, len(values))
	for i, v := range values {
		tokens[i] = Token{Value: v, LineNumber: 1}
	}
	return tokens
}

func expectSyntaxError(t *testing.T, err error, want string) {
	t.Helper()
	var serr *sqlerr.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *sqlerr.SyntaxError %q, got %T (%v)", want, err, err)
	}
	if serr.Message != want {
		t.Fatalf("expected message %q, got %q", want, serr.Message)
	}
}

var ifNotExistsValues = []TokenValue{Const(KeywordIf), Const(KeywordNot), Const(KeywordExists)}

func TestExpectTokenValues_Ok(t *testing.T) {
	ok, err := ExpectTokenValues(line1(ifNotExistsValues...), ifNotExistsValues)
	if err != nil {
		t.Fatalf("ExpectTokenValues failed: %v", err)
	}
	if len(ok.Rest) != 0 || ok.TokensConsumedCount != 3 {
		t.Fatalf("expected 0 rest and 3 consumed, got %d rest and %d consumed", len(ok.Rest), ok.TokensConsumedCount)
	}
}

func TestExpectTokenValues_ReportsFirstMismatchOnly(t *testing.T) {
	tokens := line1(Const(KeywordIf), Arbitrary("xyz"), Arbitrary("abc"))
	_, err := ExpectTokenValues(tokens, ifNotExistsValues)
	expectSyntaxError(t, err, "Expected `NOT`, instead found `xyz` at line 1.")

	tokens = line1(Const(KeywordIf), Const(KeywordNot), Arbitrary("xyz"))
	_, err = ExpectTokenValues(tokens, ifNotExistsValues)
	expectSyntaxError(t, err, "Expected `EXISTS`, instead found `xyz` at line 1.")
}

func TestExpectTokenValues_TooFewTokens(t *testing.T) {
	_, err := ExpectTokenValues(line1(Const(KeywordIf)), ifNotExistsValues)
	expectSyntaxError(t, err, "Expected `NOT`, instead found end of statement.")

	_, err = ExpectTokenValues(nil, ifNotExistsValues)
	expectSyntaxError(t, err, "Expected `IF`, instead found end of statement.")
}

func TestExpectTokenValue(t *testing.T) {
	tokens := line1(Const(KeywordPrimary), Arbitrary("foo"))
	ok, err := ExpectTokenValue(tokens, Const(KeywordPrimary))
	if err != nil {
		t.Fatalf("ExpectTokenValue failed: %v", err)
	}
	if ok.TokensConsumedCount != 1 || len(ok.Rest) != 1 || ok.Rest[0].Value != Arbitrary("foo") {
		t.Fatalf("unexpected result: %+v", ok)
	}

	_, err = ExpectTokenValue(line1(Const(KeywordCreate)), Const(KeywordPrimary))
	expectSyntaxError(t, err, "Expected `PRIMARY`, instead found `CREATE` at line 1.")

	_, err = ExpectTokenValue(nil, Const(KeywordPrimary))
	expectSyntaxError(t, err, "Expected `PRIMARY`, instead found end of statement.")

	// a semicolon ends the statement
	_, err = ExpectTokenValue(line1(Delimiting(Semicolon), Const(KeywordPrimary)), Const(KeywordPrimary))
	expectSyntaxError(t, err, "Expected `PRIMARY`, instead found end of statement.")
}

func TestExpectIdentifier(t *testing.T) {
	ok, err := ExpectIdentifier(line1(Arbitrary("foo")))
	if err != nil {
		t.Fatalf("ExpectIdentifier failed: %v", err)
	}
	if ok.Outcome != "foo" || ok.TokensConsumedCount != 1 || len(ok.Rest) != 0 {
		t.Fatalf("unexpected result: %+v", ok)
	}

	_, err = ExpectIdentifier(line1(Const(KeywordCreate)))
	expectSyntaxError(t, err, "Expected an identifier, instead found `CREATE` at line 1.")

	_, err = ExpectIdentifier(line1(TypeName(schema.TypeString)))
	expectSyntaxError(t, err, "Expected an identifier, instead found `String` at line 1.")

	_, err = ExpectIdentifier(nil)
	expectSyntaxError(t, err, "Expected an identifier, instead found end of statement.")
}

func TestExpectEndOfStatement(t *testing.T) {
	ok, err := ExpectEndOfStatement(nil)
	if err != nil || ok.TokensConsumedCount != 0 {
		t.Fatalf("expected success consuming 0 tokens, got %+v, %v", ok, err)
	}

	ok, err = ExpectEndOfStatement(line1(Delimiting(Semicolon)))
	if err != nil || ok.TokensConsumedCount != 1 || len(ok.Rest) != 0 {
		t.Fatalf("expected success consuming the semicolon, got %+v, %v", ok, err)
	}

	_, err = ExpectEndOfStatement(line1(Delimiting(Semicolon), Arbitrary("x")))
	expectSyntaxError(t, err, "Found tokens after a semicolon! Only a single statement at once can be provided.")

	_, err = ExpectEndOfStatement(line1(Delimiting(ParenthesisClosing)))
	expectSyntaxError(t, err, "Expected no more tokens or a semicolon, instead found `)` at line 1.")
}

func TestExpectEnclosed(t *testing.T) {
	tokens := line1(
		Delimiting(ParenthesisOpening),
		Const(KeywordIf), Const(KeywordNot), Const(KeywordExists),
		Delimiting(ParenthesisClosing),
		Arbitrary("after"),
	)
	ok, err := ExpectEnclosed(tokens, Sequence(ifNotExistsValues...))
	if err != nil {
		t.Fatalf("ExpectEnclosed failed: %v", err)
	}
	if ok.TokensConsumedCount != 5 {
		t.Fatalf("expected 5 consumed, got %d", ok.TokensConsumedCount)
	}
	if len(ok.Rest) != 1 || ok.Rest[0].Value != Arbitrary("after") {
		t.Fatalf("unexpected rest: %v", ok.Rest)
	}

	_, err = ExpectEnclosed(line1(Arbitrary("x")), ExpectIdentifier)
	expectSyntaxError(t, err, "Expected `(`, instead found `x` at line 1.")

	_, err = ExpectEnclosed(line1(Delimiting(ParenthesisOpening), Arbitrary("x")), ExpectIdentifier)
	expectSyntaxError(t, err, "Expected `)`, instead found end of statement.")
}

func TestExpectCommaSeparated(t *testing.T) {
	// a UInt8, b NULLABLE(Bool), c Uuid PRIMARY KEY
	tokens := line1(
		Arbitrary("a"), TypeName(schema.TypeUInt8), Delimiting(Comma),
		Arbitrary("b"), Const(KeywordNullable), Delimiting(ParenthesisOpening), TypeName(schema.TypeBool), Delimiting(ParenthesisClosing), Delimiting(Comma),
		Arbitrary("c"), TypeName(schema.TypeUuid), Const(KeywordPrimary), Const(KeywordKey),
		Delimiting(ParenthesisClosing),
	)
	ok, err := ExpectCommaSeparated(tokens, ExpectColumnDefinition)
	if err != nil {
		t.Fatalf("ExpectCommaSeparated failed: %v", err)
	}

	// widths 2 + 5 + 4, plus 2 commas
	if ok.TokensConsumedCount != 13 {
		t.Fatalf("expected 13 consumed, got %d", ok.TokensConsumedCount)
	}
	if len(ok.Rest) != 1 || ok.Rest[0].Value != Delimiting(ParenthesisClosing) {
		t.Fatalf("expected the closing parenthesis to remain, got %v", ok.Rest)
	}

	want := []schema.ColumnSpec{
		{Name: "a", DataType: schema.DataType{Raw: schema.TypeUInt8}},
		{Name: "b", DataType: schema.DataType{Raw: schema.TypeBool, IsNullable: true}},
		{Name: "c", DataType: schema.DataType{Raw: schema.TypeUuid}, PrimaryKey: true},
	}
	if len(ok.Outcome) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(ok.Outcome))
	}
	for i := range want {
		if ok.Outcome[i] != want[i] {
			t.Fatalf("column %d: expected %+v, got %+v", i, want[i], ok.Outcome[i])
		}
	}
}

func TestExpectCommaSeparated_TrailingComma(t *testing.T) {
	tokens := line1(
		Arbitrary("a"), TypeName(schema.TypeUInt8), Delimiting(Comma),
		Delimiting(ParenthesisClosing),
	)
	_, err := ExpectCommaSeparated(tokens, ExpectColumnDefinition)
	expectSyntaxError(t, err, "Expected an identifier, instead found `)` at line 1.")
}

func TestExpectDataTypeWrapped(t *testing.T) {
	ok, err := ExpectDataTypeWrapped(line1(TypeName(schema.TypeUInt64)))
	if err != nil {
		t.Fatalf("ExpectDataTypeWrapped failed: %v", err)
	}
	if ok.Outcome != (schema.DataType{Raw: schema.TypeUInt64}) || ok.TokensConsumedCount != 1 || len(ok.Rest) != 0 {
		t.Fatalf("unexpected result: %+v", ok)
	}

	ok, err = ExpectDataTypeWrapped(line1(
		Const(KeywordNullable), Delimiting(ParenthesisOpening), TypeName(schema.TypeTimestamp), Delimiting(ParenthesisClosing),
	))
	if err != nil {
		t.Fatalf("ExpectDataTypeWrapped failed: %v", err)
	}
	if ok.Outcome != (schema.DataType{Raw: schema.TypeTimestamp, IsNullable: true}) || ok.TokensConsumedCount != 4 || len(ok.Rest) != 0 {
		t.Fatalf("unexpected result: %+v", ok)
	}
}

func TestExpectDataTypeWrapped_Errors(t *testing.T) {
	cases := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			"nullable not closed",
			line1(Const(KeywordNullable), Delimiting(ParenthesisOpening), TypeName(schema.TypeTimestamp), Delimiting(Comma)),
			"Expected a closing parenthesis, instead found `,` at line 1.",
		},
		{
			"nullable closing missing",
			line1(Const(KeywordNullable), Delimiting(ParenthesisOpening), TypeName(schema.TypeTimestamp)),
			"Expected a closing parenthesis, instead found end of statement.",
		},
		{
			"no type",
			line1(Arbitrary("foo")),
			"Expected a type or `NULLABLE(`, instead found `foo` at line 1.",
		},
		{
			"end of statement",
			nil,
			"Expected a type or `NULLABLE(`, instead found end of statement.",
		},
		{
			"no type but nullable",
			line1(Const(KeywordNullable), Delimiting(ParenthesisOpening), Arbitrary("bar")),
			"Expected a type, instead found `bar` at line 1.",
		},
		{
			"end of statement but nullable",
			line1(Const(KeywordNullable), Delimiting(ParenthesisOpening)),
			"Expected a type, instead found end of statement.",
		},
		{
			"nullable without parenthesis",
			line1(Const(KeywordNullable), TypeName(schema.TypeUInt8)),
			"Expected a type or `NULLABLE(`, instead found `NULLABLE` at line 1.",
		},
	}
	for _, tc := range cases {
		_, err := ExpectDataTypeWrapped(tc.tokens)
		if err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
		expectSyntaxError(t, err, tc.want)
	}
}

func TestExpectColumnDefinition_PrimaryWithoutKey(t *testing.T) {
	_, err := ExpectColumnDefinition(line1(Arbitrary("id"), TypeName(schema.TypeUInt64), Const(KeywordPrimary), Delimiting(Comma)))
	expectSyntaxError(t, err, "Expected `KEY`, instead found `,` at line 1.")
}

func TestExpectTableDefinition(t *testing.T) {
	tokens := line1(
		Arbitrary("t"), Delimiting(ParenthesisOpening),
		Arbitrary("id"), TypeName(schema.TypeUInt64), Const(KeywordPrimary), Const(KeywordKey),
		Delimiting(ParenthesisClosing), Delimiting(Semicolon),
	)
	ok, err := ExpectTableDefinition(tokens)
	if err != nil {
		t.Fatalf("ExpectTableDefinition failed: %v", err)
	}
	if ok.Outcome.Name != "t" || len(ok.Outcome.Columns) != 1 {
		t.Fatalf("unexpected outcome: %+v", ok.Outcome)
	}
	if ok.TokensConsumedCount != 7 || len(ok.Rest) != 1 {
		t.Fatalf("expected 7 consumed and the semicolon left, got %d consumed, rest %v", ok.TokensConsumedCount, ok.Rest)
	}
}
