package compiler

import "fmt"

// ValueType is the closed set of declared/inferred AkbarLang types.
type ValueType int

const (
	TypeInt ValueType = iota
	TypeFloat
	TypeChar
	TypeString // not a declarable type; only valid as a direct output literal
)

func (t ValueType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeChar:
		return "char"
	case TypeString:
		return "string"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Pos is the source position of the first character of a node's lexeme.
// Every AST node embeds one so diagnostics can point back at the source.
type Pos struct {
	Line   int
	Column int
}

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	Position() Pos
	String() string
}

// Literal is a compile-time constant: a number, string, or character.
type Literal struct {
	Pos
	Value any       // int64, float64, string (string text) or rune (char)
	Kind  ValueType // TypeInt, TypeFloat, TypeString, or TypeChar
}

func (*Literal) exprNode()        {}
func (l *Literal) Position() Pos  { return l.Pos }
func (l *Literal) String() string { return fmt.Sprintf("Literal(%v:%s)", l.Value, l.Kind) }

// VarRef is a read of a named variable.
type VarRef struct {
	Pos
	Name string
}

func (*VarRef) exprNode()        {}
func (v *VarRef) Position() Pos  { return v.Pos }
func (v *VarRef) String() string { return v.Name }

// Binary represents Left Op Right for arithmetic, comparison and logical
// operators alike (va/ya included): the semantic analyzer, not the AST,
// distinguishes their typing rules.
type Binary struct {
	Pos
	Op    Token
	Left  Expr
	Right Expr
}

func (*Binary) exprNode()       {}
func (b *Binary) Position() Pos { return b.Pos }
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.Lexeme, b.Right)
}

// Unary represents Op Operand: unary minus, or logical not ("!").
type Unary struct {
	Pos
	Op      Token
	Operand Expr
}

func (*Unary) exprNode()       {}
func (u *Unary) Position() Pos { return u.Pos }
func (u *Unary) String() string {
	return fmt.Sprintf("(%s%s)", u.Op.Lexeme, u.Operand)
}

// Assign represents name = value; it is an expression so it may appear
// inside a for-loop header as well as as a standalone ExprStmt.
type Assign struct {
	Pos
	Name  string
	Value Expr
}

func (*Assign) exprNode()       {}
func (a *Assign) Position() Pos { return a.Pos }
func (a *Assign) String() string {
	return fmt.Sprintf("(%s = %s)", a.Name, a.Value)
}

//  Statement nodes

// Stmt is implemented by every node that does not itself produce a value.
type Stmt interface {
	stmtNode()
	Position() Pos
	String() string
}

// VarDecl represents ('sahih'|'ashar'|'harf') name ('=' expr)? ';'
type VarDecl struct {
	Pos
	Type Type
	Name string
	Init Expr // nil when the declaration has no initializer
}

func (*VarDecl) stmtNode()       {}
func (d *VarDecl) Position() Pos { return d.Pos }
func (d *VarDecl) String() string {
	if d.Init != nil {
		return fmt.Sprintf("VarDecl(%s %s = %s)", d.Type, d.Name, d.Init)
	}
	return fmt.Sprintf("VarDecl(%s %s)", d.Type, d.Name)
}

// Type is the declared-type tag carried by VarDecl; it is deliberately its
// own alias of ValueType so a reader doesn't confuse a declaration's type
// with an expression's inferred result type even though they share
// representation. The alias does not restrict the value; the parser only
// ever stores one of the three declarable types in it.
type Type = ValueType

// ExprStmt is an expression evaluated for its side effect. Any expression
// may appear here (see grammar's exprStmt production); only an assignment
// has an effect.
type ExprStmt struct {
	Pos
	Expr Expr
}

func (*ExprStmt) stmtNode()       {}
func (e *ExprStmt) Position() Pos { return e.Pos }
func (e *ExprStmt) String() string {
	return fmt.Sprintf("ExprStmt(%s)", e.Expr)
}

// If represents age (cond) then [vali/vagarna else].
type If struct {
	Pos
	Cond Expr
	Then Stmt
	Else Stmt // nil when there is no alternative
}

func (*If) stmtNode()       {}
func (i *If) Position() Pos { return i.Pos }
func (i *If) String() string {
	if i.Else != nil {
		return fmt.Sprintf("If(%s then %s else %s)", i.Cond, i.Then, i.Else)
	}
	return fmt.Sprintf("If(%s then %s)", i.Cond, i.Then)
}

// Block represents { statement* } — braces do not introduce a new scope
// for the flat symbol table (see §3's Symbol table note).
type Block struct {
	Pos
	Stmts []Stmt
}

func (*Block) stmtNode()       {}
func (b *Block) Position() Pos { return b.Pos }
func (b *Block) String() string {
	return fmt.Sprintf("Block(len=%d)", len(b.Stmts))
}

// For represents baraye (init; cond; incr) body.
type For struct {
	Pos
	Init Stmt // a VarDecl or ExprStmt
	Cond Expr
	Incr Expr
	Body Stmt
}

func (*For) stmtNode()       {}
func (f *For) Position() Pos { return f.Pos }
func (f *For) String() string {
	return fmt.Sprintf("For(init=%s, cond=%s, incr=%s, body=%s)", f.Init, f.Cond, f.Incr, f.Body)
}

// While represents vaghti (cond) body.
type While struct {
	Pos
	Cond Expr
	Body Stmt
}

func (*While) stmtNode()       {}
func (w *While) Position() Pos { return w.Pos }
func (w *While) String() string {
	return fmt.Sprintf("While(%s do %s)", w.Cond, w.Body)
}

// Input represents begir(name);
type Input struct {
	Pos
	Name string
}

func (*Input) stmtNode()       {}
func (i *Input) Position() Pos { return i.Pos }
func (i *Input) String() string {
	return fmt.Sprintf("Input(%s)", i.Name)
}

// Output represents benvis(expr);
type Output struct {
	Pos
	Expr Expr
}

func (*Output) stmtNode()       {}
func (o *Output) Position() Pos { return o.Pos }
func (o *Output) String() string {
	return fmt.Sprintf("Output(%s)", o.Expr)
}

// Program is the root node: an ordered list of top-level statements.
type Program struct {
	Stmts []Stmt
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(len=%d)", len(p.Stmts))
}
