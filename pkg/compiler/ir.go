package compiler

import (
	"fmt"
	"strings"
)

// Opcode is the closed set of three-address-style IR operations (see §3).
type Opcode int

const (
	INCLUDE Opcode = iota
	MAIN_BEGIN
	MAIN_END
	DECLARE
	DECLARE_INIT
	ASSIGN_OP
	LOAD
	ADD
	SUB
	MUL
	DIV
	EQOP
	NEQOP
	LTOP
	GTOP
	LEOP
	GEOP
	ANDOP
	OROP
	NOTOP
	NEG
	INPUT
	OUTPUT
	LABEL
	JUMP
	JUMP_IF_FALSE
	SCOPE_BEGIN
	SCOPE_END
	FOR_LOOP_START
	FOR_LOOP_END
)

var opcodeNames = [...]string{
	INCLUDE:        "INCLUDE",
	MAIN_BEGIN:     "MAIN_BEGIN",
	MAIN_END:       "MAIN_END",
	DECLARE:        "DECLARE",
	DECLARE_INIT:   "DECLARE_INIT",
	ASSIGN_OP:      "ASSIGN",
	LOAD:           "LOAD",
	ADD:            "ADD",
	SUB:            "SUB",
	MUL:            "MUL",
	DIV:            "DIV",
	EQOP:           "EQ",
	NEQOP:          "NEQ",
	LTOP:           "LT",
	GTOP:           "GT",
	LEOP:           "LE",
	GEOP:           "GE",
	ANDOP:          "AND",
	OROP:           "OR",
	NOTOP:          "NOT",
	NEG:            "NEG",
	INPUT:          "INPUT",
	OUTPUT:         "OUTPUT",
	LABEL:          "LABEL",
	JUMP:           "JUMP",
	JUMP_IF_FALSE:  "JUMP_IF_FALSE",
	SCOPE_BEGIN:    "SCOPE_BEGIN",
	SCOPE_END:      "SCOPE_END",
	FOR_LOOP_START: "FOR_LOOP_START",
	FOR_LOOP_END:   "FOR_LOOP_END",
}

func (op Opcode) String() string {
	if int(op) >= 0 && int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// binaryCppOperator maps every opcode that produces a value from two
// operands to its C++ infix operator; the emitter uses it to render those
// instructions.
var binaryCppOperator = map[Opcode]string{
	ADD:   "+",
	SUB:   "-",
	MUL:   "*",
	DIV:   "/",
	EQOP:  "==",
	NEQOP: "!=",
	LTOP:  "<",
	GTOP:  ">",
	LEOP:  "<=",
	GEOP:  ">=",
	ANDOP: "&&",
	OROP:  "||",
}

// Instr is one IR instruction: an opcode plus its ordered operand strings
// (identifier, temporary tN, a literal rendered in C++ syntax, a type name,
// or a label name — see §3).
type Instr struct {
	Op       Opcode
	Operands []string
}

func (i Instr) String() string {
	return fmt.Sprintf("%s %s", i.Op, strings.Join(i.Operands, ", "))
}

func instr(op Opcode, operands ...string) Instr {
	return Instr{Op: op, Operands: operands}
}

// cppTypeName renders a ValueType as the C++ type keyword used in DECLARE
// operands and, ultimately, in the emitter's declaration block.
func cppTypeName(t ValueType) string {
	switch t {
	case TypeFloat:
		return "double"
	case TypeChar:
		return "char"
	case TypeString:
		return "std::string"
	default:
		return "int"
	}
}
