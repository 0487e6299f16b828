package compiler

// Result carries everything a caller might want out of a successful
// compilation: the optimized IR (useful to --emit-ir) and the final C++
// source text.
type Result struct {
	IR  []Instr
	CXX string
}

// Compile runs the full six-stage pipeline over src: Lex, Parse, Analyze,
// GenerateIR, Optimize, Emit. Each stage is a pure function of the
// previous stage's output; the first error encountered is returned
// immediately, except for semantic errors, which are batched into a
// single *SemanticError (see §4.3).
func Compile(src string) (*Result, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	prog, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	if _, err := Analyze(prog); err != nil {
		return nil, err
	}

	ir := GenerateIR(prog)
	ir = Optimize(ir)
	cxx := Emit(ir)

	return &Result{IR: ir, CXX: cxx}, nil
}
