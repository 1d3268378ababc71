package sqlerr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind discriminates the two error families when errors are serialized.
type Kind string

const (
	KindSyntax              Kind = "syntax"
	KindStatementValidation Kind = "statement_validation"
)

// Error is implemented by both error kinds.
type Error interface {
	error
	Kind() Kind
	Msg() string
}

// SyntaxError reports that the token stream did not have the expected shape.
type SyntaxError struct {
	Message string
}

// Syntax builds a SyntaxError from a format string.
func Syntax(format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.Message }
func (e *SyntaxError) Kind() Kind    { return KindSyntax }
func (e *SyntaxError) Msg() string   { return e.Message }

func (e *SyntaxError) MarshalJSON() ([]byte, error) {
	return marshal(e)
}

// StatementValidationError reports that a well-formed statement breaks a
// schema rule (duplicate column, primary key count, empty name, ...).
type StatementValidationError struct {
	Message string
}

// Validation builds a StatementValidationError from a format string.
func Validation(format string, args ...any) *StatementValidationError {
	return &StatementValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *StatementValidationError) Error() string {
	return "statement validation error: " + e.Message
}
func (e *StatementValidationError) Kind() Kind  { return KindStatementValidation }
func (e *StatementValidationError) Msg() string { return e.Message }

func (e *StatementValidationError) MarshalJSON() ([]byte, error) {
	return marshal(e)
}

// wire is the serialized shape shared by both kinds. Field order is fixed.
type wire struct {
	Type    Kind   `json:"type"`
	Message string `json:"message"`
}

func marshal(e Error) ([]byte, error) {
	return json.Marshal(wire{Type: e.Kind(), Message: e.Msg()})
}

// As finds the first SyntaxError or StatementValidationError in err's chain.
func As(err error) (Error, bool) {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr, true
	}
	var validationErr *StatementValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
