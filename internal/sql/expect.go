package sql

import (
	"tinyDB/internal/sqlerr"
)

// ExpectOk is the result of a successful match: the tokens left over, how
// many were consumed, and what was parsed from them.
type ExpectOk[O any] struct {
	Rest                []Token
	TokensConsumedCount int
	Outcome             O
}

// Expect is a grammar rule. It matches a prefix of tokens or fails with a
// *sqlerr.SyntaxError; it never modifies tokens.
type Expect[O any] func(tokens []Token) (ExpectOk[O], error)

// Empty is the outcome of rules that only check shape.
type Empty struct{}

// atEndOfStatement reports whether there is nothing left to match. A
// semicolon counts as the end too, since it may only come last.
func atEndOfStatement(tokens []Token) bool {
	return len(tokens) == 0 || tokens[0].Value == Delimiting(Semicolon)
}

// foundError reports what was expected and what was found instead.
func foundError(expected string, tokens []Token) error {
	if atEndOfStatement(tokens) {
		return sqlerr.Syntax("Expected %s, instead found end of statement.", expected)
	}
	return sqlerr.Syntax("Expected %s, instead found %s.", expected, tokens[0])
}

// ExpectTokenValue matches exactly one token equal to expected.
func ExpectTokenValue(tokens []Token, expected TokenValue) (ExpectOk[Empty], error) {
	if atEndOfStatement(tokens) || tokens[0].Value != expected {
		return ExpectOk[Empty]{}, foundError("`"+expected.String()+"`", tokens)
	}
	return ExpectOk[Empty]{Rest: tokens[1:], TokensConsumedCount: 1}, nil
}

// ExpectTokenValues matches expected position by position. Only the first
// mismatch is reported.
func ExpectTokenValues(tokens []Token, expected []TokenValue) (ExpectOk[Empty], error) {
	for i, value := range expected {
		if _, err := ExpectTokenValue(tokens[i:], value); err != nil {
			return ExpectOk[Empty]{}, err
		}
	}
	return ExpectOk[Empty]{Rest: tokens[len(expected):], TokensConsumedCount: len(expected)}, nil
}

// ExpectIdentifier matches one arbitrary (non-reserved) name.
func ExpectIdentifier(tokens []Token) (ExpectOk[string], error) {
	if atEndOfStatement(tokens) || tokens[0].Value.Kind != TokenArbitrary {
		return ExpectOk[string]{}, foundError("an identifier", tokens)
	}
	return ExpectOk[string]{Rest: tokens[1:], TokensConsumedCount: 1, Outcome: tokens[0].Value.Text}, nil
}

// ExpectEndOfStatement succeeds on no tokens, or on a single trailing
// semicolon which it consumes.
func ExpectEndOfStatement(tokens []Token) (ExpectOk[Empty], error) {
	switch {
	case len(tokens) == 0:
		return ExpectOk[Empty]{Rest: tokens}, nil
	case tokens[0].Value == Delimiting(Semicolon):
		if len(tokens) > 1 {
			return ExpectOk[Empty]{}, sqlerr.Syntax("Found tokens after a semicolon! Only a single statement at once can be provided.")
		}
		return ExpectOk[Empty]{Rest: tokens[1:], TokensConsumedCount: 1}, nil
	default:
		return ExpectOk[Empty]{}, sqlerr.Syntax("Expected no more tokens or a semicolon, instead found %s.", tokens[0])
	}
}

// ExpectEnclosed matches inside between a pair of parentheses.
func ExpectEnclosed[O any](tokens []Token, inside Expect[O]) (ExpectOk[O], error) {
	opening, err := ExpectTokenValue(tokens, Delimiting(ParenthesisOpening))
	if err != nil {
		return ExpectOk[O]{}, err
	}
	inner, err := inside(opening.Rest)
	if err != nil {
		return ExpectOk[O]{}, err
	}
	closing, err := ExpectTokenValue(inner.Rest, Delimiting(ParenthesisClosing))
	if err != nil {
		return ExpectOk[O]{}, err
	}
	return ExpectOk[O]{
		Rest:                closing.Rest,
		TokensConsumedCount: inner.TokensConsumedCount + 2,
		Outcome:             inner.Outcome,
	}, nil
}

// ExpectCommaSeparated matches one or more elements separated by commas.
// It stops before the first element not followed by a comma, so a trailing
// comma makes the element rule fail on whatever follows it.
func ExpectCommaSeparated[O any](tokens []Token, element Expect[O]) (ExpectOk[[]O], error) {
	consumed := 0
	var outcomes []O
	for {
		elem, err := element(tokens[consumed:])
		if err != nil {
			return ExpectOk[[]O]{}, err
		}
		consumed += elem.TokensConsumedCount
		outcomes = append(outcomes, elem.Outcome)

		if _, err := ExpectTokenValue(tokens[consumed:], Delimiting(Comma)); err != nil {
			break
		}
		consumed++
	}
	return ExpectOk[[]O]{Rest: tokens[consumed:], TokensConsumedCount: consumed, Outcome: outcomes}, nil
}

// Sequence adapts ExpectTokenValues to an Expect.
func Sequence(expected ...TokenValue) Expect[Empty] {
	return func(tokens []Token) (ExpectOk[Empty], error) {
		return ExpectTokenValues(tokens, expected)
	}
}
