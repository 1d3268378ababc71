package sql

import (
	"tinyDB/internal/schema"
)

var (
	nullableOpening = Sequence(Const(KeywordNullable), Delimiting(ParenthesisOpening))
	primaryKey      = Sequence(Const(KeywordPrimary), Const(KeywordKey))
	ifNotExists     = Sequence(Const(KeywordIf), Const(KeywordNot), Const(KeywordExists))
	createTable     = Sequence(Const(KeywordCreate), Const(KeywordTable))
)

// ExpectDataTypeWrapped matches `Type` or `NULLABLE(Type)`.
func ExpectDataTypeWrapped(tokens []Token) (ExpectOk[schema.DataType], error) {
	consumed := 0
	nullable := false
	if opening, err := nullableOpening(tokens); err == nil {
		consumed += opening.TokensConsumedCount
		nullable = true
	}

	expected := "a type or `NULLABLE(`"
	if nullable {
		expected = "a type"
	}
	rest := tokens[consumed:]
	if atEndOfStatement(rest) || rest[0].Value.Kind != TokenType {
		return ExpectOk[schema.DataType]{}, foundError(expected, rest)
	}
	dt := schema.DataType{Raw: rest[0].Value.DataType, IsNullable: nullable}
	consumed++

	if nullable {
		closing, err := ExpectTokenValue(tokens[consumed:], Delimiting(ParenthesisClosing))
		if err != nil {
			return ExpectOk[schema.DataType]{}, foundError("a closing parenthesis", tokens[consumed:])
		}
		consumed += closing.TokensConsumedCount
	}
	return ExpectOk[schema.DataType]{Rest: tokens[consumed:], TokensConsumedCount: consumed, Outcome: dt}, nil
}

// ExpectColumnDefinition matches `name Type [PRIMARY KEY]`.
func ExpectColumnDefinition(tokens []Token) (ExpectOk[schema.ColumnSpec], error) {
	name, err := ExpectIdentifier(tokens)
	if err != nil {
		return ExpectOk[schema.ColumnSpec]{}, err
	}
	dt, err := ExpectDataTypeWrapped(name.Rest)
	if err != nil {
		return ExpectOk[schema.ColumnSpec]{}, err
	}
	consumed := name.TokensConsumedCount + dt.TokensConsumedCount
	rest := dt.Rest

	// PRIMARY commits to the suffix; KEY must follow.
	isPrimaryKey := false
	if len(rest) > 0 && rest[0].Value == Const(KeywordPrimary) {
		pk, err := primaryKey(rest)
		if err != nil {
			return ExpectOk[schema.ColumnSpec]{}, err
		}
		consumed += pk.TokensConsumedCount
		rest = pk.Rest
		isPrimaryKey = true
	}

	return ExpectOk[schema.ColumnSpec]{
		Rest:                rest,
		TokensConsumedCount: consumed,
		Outcome:             schema.ColumnSpec{Name: name.Outcome, DataType: dt.Outcome, PrimaryKey: isPrimaryKey},
	}, nil
}

func expectColumnList(tokens []Token) (ExpectOk[[]schema.ColumnSpec], error) {
	return ExpectCommaSeparated(tokens, ExpectColumnDefinition)
}

// ExpectTableDefinition matches `name (column, ...)`.
func ExpectTableDefinition(tokens []Token) (ExpectOk[schema.TableSpec], error) {
	name, err := ExpectIdentifier(tokens)
	if err != nil {
		return ExpectOk[schema.TableSpec]{}, err
	}
	columns, err := ExpectEnclosed(name.Rest, expectColumnList)
	if err != nil {
		return ExpectOk[schema.TableSpec]{}, err
	}
	return ExpectOk[schema.TableSpec]{
		Rest:                columns.Rest,
		TokensConsumedCount: name.TokensConsumedCount + columns.TokensConsumedCount,
		Outcome:             schema.TableSpec{Name: name.Outcome, Columns: columns.Outcome},
	}, nil
}

// parseCreateTable handles
//
//	CREATE TABLE [IF NOT EXISTS] name (column, ...) [;]
//
// and validates the resulting table.
func parseCreateTable(tokens []Token) (Statement, error) {
	head, err := createTable(tokens)
	if err != nil {
		return nil, err
	}
	rest := head.Rest

	stmt := &CreateTableStmt{}
	if len(rest) > 0 && rest[0].Value == Const(KeywordIf) {
		ine, err := ifNotExists(rest)
		if err != nil {
			return nil, err
		}
		rest = ine.Rest
		stmt.IfNotExists = true
	}

	def, err := ExpectTableDefinition(rest)
	if err != nil {
		return nil, err
	}
	if _, err := ExpectEndOfStatement(def.Rest); err != nil {
		return nil, err
	}

	table, err := schema.Validate(def.Outcome)
	if err != nil {
		return nil, err
	}
	stmt.Table = table
	return stmt, nil
}
