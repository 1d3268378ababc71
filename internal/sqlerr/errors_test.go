package sqlerr

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestSyntaxErrorJSON(t *testing.T) {
	err := Syntax("Expected `%s`, instead found end of statement.", "TABLE")

	got, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal failed: %v", jerr)
	}

	want := "{\"type\":\"syntax\",\"message\":\"Expected `TABLE`, instead found end of statement.\"}"
	if string(got) != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestValidationErrorJSON(t *testing.T) {
	err := Validation("A table must have exactly 1 PRIMARY KEY column, not %d", 0)

	got, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal failed: %v", jerr)
	}

	var decoded map[string]string
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected exactly 2 keys, got %v", decoded)
	}
	if decoded["type"] != "statement_validation" {
		t.Fatalf("expected type %q, got %q", "statement_validation", decoded["type"])
	}
	if decoded["message"] != "A table must have exactly 1 PRIMARY KEY column, not 0" {
		t.Fatalf("unexpected message: %q", decoded["message"])
	}
}

func TestAsUnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", Validation("A table must have a name"))

	e, ok := As(wrapped)
	if !ok {
		t.Fatalf("expected As to find the validation error")
	}
	if e.Kind() != KindStatementValidation {
		t.Fatalf("expected kind %q, got %q", KindStatementValidation, e.Kind())
	}
	if e.Msg() != "A table must have a name" {
		t.Fatalf("unexpected message: %q", e.Msg())
	}

	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Fatalf("expected As to reject a plain error")
	}
}

func TestErrorStrings(t *testing.T) {
	if got := Syntax("boom").Error(); got != "syntax error: boom" {
		t.Fatalf("unexpected syntax error string: %q", got)
	}
	if got := Validation("boom").Error(); got != "statement validation error: boom" {
		t.Fatalf("unexpected validation error string: %q", got)
	}
}
