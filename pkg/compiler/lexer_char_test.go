package compiler

import (
	"testing"
)

func TestLexer_HarfDeclaration(t *testing.T) {
	input := "harf c = 'a';"
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}

	expected := []TokenKind{
		HARF, IDENTIFIER, ASSIGN, CHAR_LIT, SEMICOLON, EOF,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %s, got %s", i, expected[i], tok.Kind)
		}
	}
	if tokens[3].Value != 'a' {
		t.Errorf("expected char literal value 'a', got %v", tokens[3].Value)
	}
}

func TestLexer_UnknownWordIsIdentifier(t *testing.T) {
	// "byte" has no meaning in AkbarLang; it must lex as a plain identifier.
	input := "byte b = 10;"
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if tokens[0].Kind != IDENTIFIER {
		t.Errorf("expected %q to lex as IDENTIFIER, got %s", "byte", tokens[0].Kind)
	}
}
