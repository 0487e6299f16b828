package compiler

import (
	"testing"
)

func TestParse_CharAndStringLiterals(t *testing.T) {
	prog, err := Parse(mustLex(t, `harf c = 'z'; benvis("salam");`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Stmts))
	}

	decl, ok := prog.Stmts[0].(*VarDecl)
	if !ok {
		t.Fatalf("statement 0: expected *VarDecl, got %T", prog.Stmts[0])
	}
	if decl.Type != TypeChar {
		t.Errorf("expected TypeChar, got %s", decl.Type)
	}
	lit, ok := decl.Init.(*Literal)
	if !ok || lit.Kind != TypeChar || lit.Value != 'z' {
		t.Errorf("expected char literal 'z', got %#v", decl.Init)
	}

	out, ok := prog.Stmts[1].(*Output)
	if !ok {
		t.Fatalf("statement 1: expected *Output, got %T", prog.Stmts[1])
	}
	strLit, ok := out.Expr.(*Literal)
	if !ok || strLit.Kind != TypeString || strLit.Value != "salam" {
		t.Errorf("expected string literal \"salam\", got %#v", out.Expr)
	}
}

func TestParse_UnknownWordAsExpressionStatement(t *testing.T) {
	// "byte" has no keyword meaning; it parses as a bare identifier
	// expression statement, same as any other undeclared name would.
	prog, err := Parse(mustLex(t, "byte;"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "ExprStmt(byte)"
	if got := prog.Stmts[0].String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
