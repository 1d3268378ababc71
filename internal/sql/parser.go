package sql

import (
	"tinyDB/internal/schema"
	"tinyDB/internal/sqlerr"
)

// unsupported lists statement keywords that are recognized but not handled yet.
var unsupported = map[Keyword]bool{
	KeywordSelect: true,
	KeywordInsert: true,
	KeywordUpdate: true,
	KeywordDelete: true,
	KeywordDrop:   true,
	KeywordAlter:  true,
}

// Parse parses a single SQL statement string into an AST Statement.
// For now it only supports CREATE TABLE statements.
//
// Errors are *sqlerr.SyntaxError when the text does not have the shape of a
// statement and *sqlerr.StatementValidationError when a well-formed table
// definition breaks a schema rule. Parse keeps no state between calls.
func Parse(query string) (Statement, error) {
	tokens, err := Tokenize(query)
	if err != nil {
		return nil, err
	}
	if atEndOfStatement(tokens) {
		return nil, foundError("a statement (`CREATE TABLE`)", tokens)
	}

	first := tokens[0].Value
	switch {
	case first == Const(KeywordCreate):
		return parseCreateTable(tokens)
	case first.Kind == TokenConst && unsupported[first.Keyword]:
		return nil, sqlerr.Syntax("`%s` statements are not supported yet.", first)
	default:
		return nil, foundError("a statement (`CREATE TABLE`)", tokens)
	}
}

// ParseTableDefinition parses a CREATE TABLE statement and returns only the
// validated table.
func ParseTableDefinition(query string) (*schema.TableDefinition, error) {
	stmt, err := Parse(query)
	if err != nil {
		return nil, err
	}
	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		return nil, sqlerr.Syntax("Expected a `CREATE TABLE` statement.")
	}
	return ct.Table, nil
}
