package compiler

import "fmt"

// semanticAnalyzer walks the AST once, building the flat SymbolTable and
// accumulating every Diagnostic it finds rather than stopping at the
// first one (see §4.3 / §7: semantic errors are batched).
type semanticAnalyzer struct {
	table *SymbolTable
	diags []Diagnostic
}

func (a *semanticAnalyzer) errorf(pos Pos, format string, args ...any) {
	a.diags = append(a.diags, Diagnostic{
		Stage:   StageSemantic,
		Line:    pos.Line,
		Column:  pos.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

func isNumeric(t ValueType) bool { return t == TypeInt || t == TypeFloat }

// compatible reports whether a value of type actual may be stored in a
// location declared as declared: reflexive, plus integer-to-float widening.
func compatible(declared, actual ValueType) bool {
	if declared == actual {
		return true
	}
	return declared == TypeFloat && actual == TypeInt
}

// Analyze type-checks prog, returning its symbol table on success or a
// *SemanticError carrying every Diagnostic found, in the order encountered.
func Analyze(prog *Program) (*SymbolTable, error) {
	a := &semanticAnalyzer{table: NewSymbolTable()}
	for _, stmt := range prog.Stmts {
		a.analyzeStmt(stmt)
	}
	if len(a.diags) > 0 {
		return nil, &SemanticError{Diagnostics: a.diags}
	}
	return a.table, nil
}

func (a *semanticAnalyzer) analyzeStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *VarDecl:
		initialized := s.Init != nil
		if s.Init != nil {
			actual := a.exprType(s.Init)
			if !compatible(s.Type, actual) {
				a.errorf(s.Pos, "cannot initialize %s variable %q with a %s value", s.Type, s.Name, actual)
			}
		}
		if !a.table.Declare(s.Name, s.Type, initialized) {
			a.errorf(s.Pos, "redeclaration of %q", s.Name)
		}
	case *ExprStmt:
		a.exprType(s.Expr)
	case *Input:
		if _, ok := a.table.Lookup(s.Name); !ok {
			a.errorf(s.Pos, "undeclared identifier %q", s.Name)
			return
		}
		a.table.MarkInitialized(s.Name)
	case *Output:
		a.exprType(s.Expr)
	case *If:
		a.exprType(s.Cond)
		a.analyzeStmt(s.Then)
		if s.Else != nil {
			a.analyzeStmt(s.Else)
		}
	case *Block:
		for _, inner := range s.Stmts {
			a.analyzeStmt(inner)
		}
	case *For:
		a.analyzeStmt(s.Init)
		a.exprType(s.Cond)
		a.exprType(s.Incr)
		a.analyzeStmt(s.Body)
	case *While:
		a.exprType(s.Cond)
		a.analyzeStmt(s.Body)
	}
}

// exprType computes expr's result type, recording any violation as a
// Diagnostic and returning a best-effort type so the walk can continue.
func (a *semanticAnalyzer) exprType(expr Expr) ValueType {
	switch e := expr.(type) {
	case *Literal:
		return e.Kind

	case *VarRef:
		sym, ok := a.table.Lookup(e.Name)
		if !ok {
			a.errorf(e.Pos, "undeclared identifier %q", e.Name)
			return TypeInt
		}
		if !sym.Initialized {
			a.errorf(e.Pos, "use of uninitialized variable %q", e.Name)
		}
		return sym.Type

	case *Assign:
		sym, ok := a.table.Lookup(e.Name)
		valType := a.exprType(e.Value)
		if !ok {
			a.errorf(e.Pos, "undeclared identifier %q", e.Name)
			return TypeInt
		}
		if !compatible(sym.Type, valType) {
			a.errorf(e.Pos, "cannot assign a %s value to %s variable %q", valType, sym.Type, e.Name)
		}
		a.table.MarkInitialized(e.Name)
		return sym.Type

	case *Unary:
		operand := a.exprType(e.Operand)
		if e.Op.Kind == MINUS {
			if !isNumeric(operand) {
				a.errorf(e.Pos, "unary - requires a numeric operand, got %s", operand)
			}
			return operand
		}
		// NOT ("!"): permissive, like a condition; result is always int.
		return TypeInt

	case *Binary:
		left := a.exprType(e.Left)
		right := a.exprType(e.Right)
		switch e.Op.Kind {
		case PLUS, MINUS, STAR, SLASH:
			if !isNumeric(left) || !isNumeric(right) {
				a.errorf(e.Pos, "operator %q requires numeric operands, got %s and %s", e.Op.Lexeme, left, right)
			}
			if left == TypeFloat || right == TypeFloat {
				return TypeFloat
			}
			return TypeInt
		case LT, GT, LE, GE:
			if !isNumeric(left) || !isNumeric(right) {
				a.errorf(e.Pos, "comparison %q requires numeric operands, got %s and %s", e.Op.Lexeme, left, right)
			}
			return TypeInt
		case EQ, NEQ:
			if !(isNumeric(left) && isNumeric(right)) && left != right {
				a.errorf(e.Pos, "equality %q requires compatible operands, got %s and %s", e.Op.Lexeme, left, right)
			}
			return TypeInt
		case VA, YA:
			// Conditions are deliberately permissive; no operand constraint.
			return TypeInt
		}
		return TypeInt

	default:
		return TypeInt
	}
}
