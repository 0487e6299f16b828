package compiler

import (
	"strconv"
	"strings"
)

// Optimize runs the three conservative passes over list in order: constant
// folding, dead-code removal, control-flow simplification. Each pass
// produces a fresh list; none of them can change the observable behavior
// of a valid program (see §4.5).
func Optimize(list []Instr) []Instr {
	list = foldConstants(list)
	list = removeDeadCode(list)
	list = simplifyControlFlow(list)
	return list
}

//  Pass 1 — constant folding

// foldVal is a compile-time-known value tracked per temporary/variable
// name during the fold pass.
type foldVal struct {
	Kind ValueType // TypeInt or TypeFloat
	IVal int64
	FVal float64
}

func intVal(i int64) foldVal { return foldVal{Kind: TypeInt, IVal: i} }

func (v foldVal) asFloat() float64 {
	if v.Kind == TypeFloat {
		return v.FVal
	}
	return float64(v.IVal)
}

func (v foldVal) render() string {
	if v.Kind == TypeFloat {
		s := strconv.FormatFloat(v.FVal, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatInt(v.IVal, 10)
}

// tryParseLiteralOperand recognizes an already-rendered C++ numeric
// literal; string/char literals ("..."/'.') are never folded.
func tryParseLiteralOperand(s string) (foldVal, bool) {
	if s == "" || strings.HasPrefix(s, "\"") || strings.HasPrefix(s, "'") {
		return foldVal{}, false
	}
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return foldVal{}, false
		}
		return foldVal{Kind: TypeFloat, FVal: f}, true
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return foldVal{}, false
	}
	return foldVal{Kind: TypeInt, IVal: i}, true
}

func resolveOperand(s string, known map[string]foldVal) (foldVal, bool) {
	if v, ok := known[s]; ok {
		return v, true
	}
	return tryParseLiteralOperand(s)
}

func foldUnary(op Opcode, v foldVal) (foldVal, bool) {
	switch op {
	case NEG:
		if v.Kind == TypeFloat {
			return foldVal{Kind: TypeFloat, FVal: -v.FVal}, true
		}
		return intVal(-v.IVal), true
	case NOTOP:
		if v.asFloat() == 0 {
			return intVal(1), true
		}
		return intVal(0), true
	default:
		return foldVal{}, false
	}
}

func foldBinary(op Opcode, l, r foldVal) (foldVal, bool) {
	switch op {
	case ADD, SUB, MUL, DIV:
		if l.Kind == TypeFloat || r.Kind == TypeFloat {
			lf, rf := l.asFloat(), r.asFloat()
			var res float64
			switch op {
			case ADD:
				res = lf + rf
			case SUB:
				res = lf - rf
			case MUL:
				res = lf * rf
			case DIV:
				res = lf / rf
			}
			return foldVal{Kind: TypeFloat, FVal: res}, true
		}
		switch op {
		case ADD:
			return intVal(l.IVal + r.IVal), true
		case SUB:
			return intVal(l.IVal - r.IVal), true
		case MUL:
			return intVal(l.IVal * r.IVal), true
		case DIV:
			if r.IVal == 0 {
				// Division by a known-zero constant is not specially
				// handled (§4.5): fall back to float math so folding
				// still produces a value (+Inf/-Inf/NaN) instead of a
				// Go integer-divide-by-zero panic; the emitter passes
				// the resulting text through unchanged.
				return foldVal{Kind: TypeFloat, FVal: float64(l.IVal) / float64(r.IVal)}, true
			}
			return intVal(l.IVal / r.IVal), true
		}
	case EQOP, NEQOP, LTOP, GTOP, LEOP, GEOP:
		lf, rf := l.asFloat(), r.asFloat()
		var b bool
		switch op {
		case EQOP:
			b = lf == rf
		case NEQOP:
			b = lf != rf
		case LTOP:
			b = lf < rf
		case GTOP:
			b = lf > rf
		case LEOP:
			b = lf <= rf
		case GEOP:
			b = lf >= rf
		}
		if b {
			return intVal(1), true
		}
		return intVal(0), true
	case ANDOP, OROP:
		lb, rb := l.asFloat() != 0, r.asFloat() != 0
		b := lb && rb
		if op == OROP {
			b = lb || rb
		}
		if b {
			return intVal(1), true
		}
		return intVal(0), true
	}
	return foldVal{}, false
}

func foldConstants(list []Instr) []Instr {
	known := map[string]foldVal{}
	out := make([]Instr, 0, len(list))

	for _, in := range list {
		switch in.Op {
		case LOAD:
			if v, ok := tryParseLiteralOperand(in.Operands[1]); ok {
				known[in.Operands[0]] = v
			}
			out = append(out, in)

		case NEG, NOTOP:
			dest, x := in.Operands[0], in.Operands[1]
			if v, ok := resolveOperand(x, known); ok {
				if res, ok := foldUnary(in.Op, v); ok {
					out = append(out, instr(LOAD, dest, res.render()))
					known[dest] = res
					continue
				}
			}
			delete(known, dest)
			out = append(out, in)

		case ADD, SUB, MUL, DIV, EQOP, NEQOP, LTOP, GTOP, LEOP, GEOP, ANDOP, OROP:
			dest, l, r := in.Operands[0], in.Operands[1], in.Operands[2]
			lv, lok := resolveOperand(l, known)
			rv, rok := resolveOperand(r, known)
			if lok && rok {
				if res, ok := foldBinary(in.Op, lv, rv); ok {
					out = append(out, instr(LOAD, dest, res.render()))
					known[dest] = res
					continue
				}
			}
			delete(known, dest)
			out = append(out, in)

		case ASSIGN_OP:
			name, v := in.Operands[0], in.Operands[1]
			if val, ok := resolveOperand(v, known); ok {
				known[name] = val
			} else {
				delete(known, name)
			}
			out = append(out, in)

		case DECLARE_INIT:
			name, v := in.Operands[1], in.Operands[2]
			if val, ok := resolveOperand(v, known); ok {
				known[name] = val
			} else {
				delete(known, name)
			}
			out = append(out, in)

		case DECLARE:
			delete(known, in.Operands[1])
			out = append(out, in)

		case LABEL, FOR_LOOP_START, FOR_LOOP_END:
			// A label or a for-loop boundary can be reached from more than
			// one place (a back-edge, a skipped branch, another iteration),
			// so no value known before it is still certain after it.
			known = map[string]foldVal{}
			out = append(out, in)

		default:
			out = append(out, in)
		}
	}
	return out
}

//  Pass 2 — dead-code removal

func removeDeadCode(list []Instr) []Instr {
	usedNames := map[string]bool{}
	usedLabels := map[string]bool{}
	for _, in := range list {
		switch in.Op {
		case OUTPUT:
			usedNames[in.Operands[0]] = true
		case ASSIGN_OP:
			usedNames[in.Operands[1]] = true
		case JUMP:
			usedLabels[in.Operands[0]] = true
		case JUMP_IF_FALSE:
			usedLabels[in.Operands[1]] = true
		}
	}

	var out []Instr
	reachable := true
	for _, in := range list {
		if in.Op == LABEL && usedLabels[in.Operands[0]] {
			reachable = true
		}
		if in.Op == DECLARE && !usedNames[in.Operands[1]] {
			continue
		}
		if !reachable && in.Op != LABEL {
			continue
		}
		out = append(out, in)
		if in.Op == JUMP {
			reachable = false
		}
	}
	return out
}

//  Pass 3 — control-flow simplification

func simplifyControlFlow(list []Instr) []Instr {
	referenced := map[string]bool{}
	for _, in := range list {
		if in.Op == JUMP {
			referenced[in.Operands[0]] = true
		}
		if in.Op == JUMP_IF_FALSE {
			referenced[in.Operands[1]] = true
		}
	}

	// Drop unreferenced LABELs.
	withoutDeadLabels := make([]Instr, 0, len(list))
	for _, in := range list {
		if in.Op == LABEL && !referenced[in.Operands[0]] {
			continue
		}
		withoutDeadLabels = append(withoutDeadLabels, in)
	}

	// Drop a JUMP L immediately followed by LABEL L.
	withoutNoopJumps := make([]Instr, 0, len(withoutDeadLabels))
	for i := 0; i < len(withoutDeadLabels); i++ {
		in := withoutDeadLabels[i]
		if in.Op == JUMP && i+1 < len(withoutDeadLabels) {
			next := withoutDeadLabels[i+1]
			if next.Op == LABEL && next.Operands[0] == in.Operands[0] {
				continue
			}
		}
		withoutNoopJumps = append(withoutNoopJumps, in)
	}

	// Thread a jump that lands on another jump, one hop.
	labelPos := map[string]int{}
	for i, in := range withoutNoopJumps {
		if in.Op == LABEL {
			labelPos[in.Operands[0]] = i
		}
	}
	out := make([]Instr, len(withoutNoopJumps))
	copy(out, withoutNoopJumps)
	for i, in := range out {
		var labelIdx int
		switch in.Op {
		case JUMP:
			labelIdx = 0
		case JUMP_IF_FALSE:
			labelIdx = 1
		default:
			continue
		}
		pos, ok := labelPos[in.Operands[labelIdx]]
		if !ok || pos+1 >= len(out) || out[pos+1].Op != JUMP {
			continue
		}
		newOperands := append([]string(nil), in.Operands...)
		newOperands[labelIdx] = out[pos+1].Operands[0]
		out[i] = instr(in.Op, newOperands...)
	}

	// Dropping no-op jumps and threading can leave labels that nothing
	// jumps to any more; drop those too.
	live := map[string]bool{}
	for _, in := range out {
		if in.Op == JUMP || in.Op == JUMP_IF_FALSE {
			live[in.Operands[len(in.Operands)-1]] = true
		}
	}
	final := make([]Instr, 0, len(out))
	for _, in := range out {
		if in.Op != LABEL || live[in.Operands[0]] {
			final = append(final, in)
		}
	}
	return final
}
