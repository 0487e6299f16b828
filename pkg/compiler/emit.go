package compiler

import (
	"fmt"
	"strings"
)

// scanTypes walks instrs once, inferring the C++ type of every declared
// variable and temporary. Declared variables carry their type explicitly
// in the DECLARE/DECLARE_INIT operand (REDESIGN FLAG #1: the emitter
// trusts that tag instead of defaulting every variable to int); temps
// take the type of whatever produced them. order preserves first-seen
// order so the declaration block reads top to bottom the way the source
// introduced each name.
func scanTypes(instrs []Instr) (types map[string]string, order []string) {
	types = map[string]string{}
	note := func(name, typ string) {
		if _, seen := types[name]; !seen {
			order = append(order, name)
		}
		types[name] = typ
	}
	typeOf := func(name string) string {
		if t, ok := types[name]; ok {
			return t
		}
		return "int"
	}

	for _, in := range instrs {
		switch in.Op {
		case DECLARE:
			note(in.Operands[1], in.Operands[0])
		case DECLARE_INIT:
			note(in.Operands[1], in.Operands[0])
		case INPUT, ASSIGN_OP:
			// The optimizer's dead-code pass drops a bare DECLARE for any
			// name it doesn't count as used, and neither INPUT nor an
			// ASSIGN target is a use (pkg compiler/optimize.go's
			// removeDeadCode only tracks OUTPUT and ASSIGN right-hand
			// operands). A variable that is only ever read via begir or
			// assigned would otherwise never get a declaration here; with
			// its DECLARE gone, it is declared as int.
			if _, declared := types[in.Operands[0]]; !declared {
				note(in.Operands[0], "int")
			}
		case LOAD:
			note(in.Operands[0], cppTypeOfLiteralText(in.Operands[1]))
		case ADD, SUB, MUL, DIV:
			lt, rt := typeOf(in.Operands[1]), typeOf(in.Operands[2])
			result := "int"
			if lt == "double" || rt == "double" {
				result = "double"
			}
			note(in.Operands[0], result)
		case EQOP, NEQOP, LTOP, GTOP, LEOP, GEOP, ANDOP, OROP, NOTOP:
			note(in.Operands[0], "int")
		case NEG:
			note(in.Operands[0], typeOf(in.Operands[1]))
		}
	}
	return types, order
}

func cppTypeOfLiteralText(s string) string {
	switch {
	case s == "":
		return "int"
	case strings.HasPrefix(s, "\""):
		return "std::string"
	case strings.HasPrefix(s, "'"):
		return "char"
	case strings.Contains(s, "."):
		return "double"
	default:
		return "int"
	}
}

// Emit renders an optimized IR instruction list as complete C++ source
// text (see §4.6): a fixed preamble, a hoisted declaration block for
// every variable and temporary, the translated instruction stream, then
// "return 0; }". Control flow that reached this stage as LABEL/JUMP/
// JUMP_IF_FALSE (anything other than a for-loop, which keeps its own
// structured header via FOR_LOOP_START/FOR_LOOP_END) lowers to C++
// goto, the natural target for unstructured three-address jumps.
func Emit(instrs []Instr) string {
	types, order := scanTypes(instrs)

	var b strings.Builder
	b.WriteString("#include <iostream>\n")
	b.WriteString("#include <string>\n\n")
	b.WriteString("int main() {\n")

	indent := 1
	pad := func() string { return strings.Repeat("    ", indent) }

	for _, name := range order {
		fmt.Fprintf(&b, "%s%s %s;\n", pad(), types[name], name)
	}
	if len(order) > 0 {
		b.WriteString("\n")
	}

	for _, in := range instrs {
		switch in.Op {
		case INCLUDE, MAIN_BEGIN, MAIN_END, DECLARE:
			// INCLUDE/MAIN_BEGIN/MAIN_END are already represented by the
			// fixed preamble and the function braces; a bare DECLARE's
			// effect is already captured by the hoisted block above.

		case DECLARE_INIT:
			fmt.Fprintf(&b, "%s%s = %s;\n", pad(), in.Operands[1], in.Operands[2])

		case ASSIGN_OP, LOAD:
			fmt.Fprintf(&b, "%s%s = %s;\n", pad(), in.Operands[0], in.Operands[1])

		case NEG:
			fmt.Fprintf(&b, "%s%s = -%s;\n", pad(), in.Operands[0], in.Operands[1])

		case NOTOP:
			fmt.Fprintf(&b, "%s%s = !%s;\n", pad(), in.Operands[0], in.Operands[1])

		case ADD, SUB, MUL, DIV, EQOP, NEQOP, LTOP, GTOP, LEOP, GEOP, ANDOP, OROP:
			fmt.Fprintf(&b, "%s%s = %s %s %s;\n", pad(), in.Operands[0], in.Operands[1], binaryCppOperator[in.Op], in.Operands[2])

		case INPUT:
			fmt.Fprintf(&b, "%sstd::cin >> %s;\n", pad(), in.Operands[0])

		case OUTPUT:
			fmt.Fprintf(&b, "%sstd::cout << %s << std::endl;\n", pad(), in.Operands[0])

		case LABEL:
			fmt.Fprintf(&b, "%s%s:;\n", pad(), in.Operands[0])

		case JUMP:
			fmt.Fprintf(&b, "%sgoto %s;\n", pad(), in.Operands[0])

		case JUMP_IF_FALSE:
			fmt.Fprintf(&b, "%sif (!(%s)) goto %s;\n", pad(), in.Operands[0], in.Operands[1])

		case SCOPE_BEGIN:
			b.WriteString(pad() + "{\n")
			indent++

		case SCOPE_END:
			indent--
			b.WriteString(pad() + "}\n")

		case FOR_LOOP_START:
			fmt.Fprintf(&b, "%sfor (%s; %s; %s) {\n", pad(), in.Operands[0], in.Operands[1], in.Operands[2])
			indent++

		case FOR_LOOP_END:
			indent--
			b.WriteString(pad() + "}\n")
		}
	}

	b.WriteString("    return 0;\n")
	b.WriteString("}\n")
	return b.String()
}
