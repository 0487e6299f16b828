package compiler

import (
	"testing"
)

func TestParse_ForLoop(t *testing.T) {
	prog, err := Parse(mustLex(t, "baraye (sahih i = 1; i <= 10; i = i + 1) benvis(i);"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	forStmt, ok := prog.Stmts[0].(*For)
	if !ok {
		t.Fatalf("expected *For, got %T", prog.Stmts[0])
	}
	if got, want := forStmt.Init.String(), "VarDecl(int i = Literal(1:int))"; got != want {
		t.Errorf("Init = %s, want %s", got, want)
	}
	if got, want := forStmt.Cond.String(), "(i <= Literal(10:int))"; got != want {
		t.Errorf("Cond = %s, want %s", got, want)
	}
	if got, want := forStmt.Incr.String(), "(i = (i + Literal(1:int)))"; got != want {
		t.Errorf("Incr = %s, want %s", got, want)
	}
	if got, want := forStmt.Body.String(), "Output(i)"; got != want {
		t.Errorf("Body = %s, want %s", got, want)
	}
}

// REDESIGN FLAG #3: "ta" is tolerated between the init clause and the
// condition but carries no semantic weight; it must parse identically to
// the same loop without it.
func TestParse_ForLoopWithTaConnective(t *testing.T) {
	withTa, err := Parse(mustLex(t, "baraye (sahih i = 1; ta i <= 10; i = i + 1) benvis(i);"))
	if err != nil {
		t.Fatalf("unexpected error with ta: %v", err)
	}
	withoutTa, err := Parse(mustLex(t, "baraye (sahih i = 1; i <= 10; i = i + 1) benvis(i);"))
	if err != nil {
		t.Fatalf("unexpected error without ta: %v", err)
	}
	if withTa.Stmts[0].String() != withoutTa.Stmts[0].String() {
		t.Errorf("ta connective changed the parse tree:\nwith ta:    %s\nwithout ta: %s", withTa.Stmts[0], withoutTa.Stmts[0])
	}
}

func TestParse_ForLoopWithExprInit(t *testing.T) {
	prog, err := Parse(mustLex(t, "baraye (i = 0; i < n; i = i + 1) { benvis(i); }"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	forStmt := prog.Stmts[0].(*For)
	if _, ok := forStmt.Init.(*ExprStmt); !ok {
		t.Fatalf("expected *ExprStmt init, got %T", forStmt.Init)
	}
	if got, want := forStmt.Body.String(), "Block(len=1)"; got != want {
		t.Errorf("Body = %s, want %s", got, want)
	}
}
