package compiler

import (
	"testing"
)

func TestParse_MultipleTopLevelStatements(t *testing.T) {
	prog, err := Parse(mustLex(t, "sahih x = 1; sahih y = 2; benvis(x + y);"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := prog.String(), "Program(len=3)"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParse_EqualityBetweenMatchingNonNumericTypes(t *testing.T) {
	// EQ/NEQ additionally allow identical non-numeric operand types.
	_, err := analyzeSrc(t, `harf a = 'x'; harf b = 'y'; benvis(a == b);`)
	if err != nil {
		t.Fatalf("unexpected error comparing two chars: %v", err)
	}
}

func TestParse_EqualityBetweenMismatchedNonNumericTypesFails(t *testing.T) {
	_, err := analyzeSrc(t, `harf a = 'x'; sahih b = 1; benvis(a == b);`)
	if err == nil {
		t.Fatal("expected an error comparing a char and an int with ==")
	}
}

func TestParse_NestedParentheses(t *testing.T) {
	prog, err := Parse(mustLex(t, "x = ((1 + 2) * (3 - 4));"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "ExprStmt((x = ((Literal(1:int) + Literal(2:int)) * (Literal(3:int) - Literal(4:int)))))"
	if got := prog.Stmts[0].String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
