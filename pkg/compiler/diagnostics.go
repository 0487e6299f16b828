package compiler

import (
	"fmt"
	"strings"
)

// Stage names a pipeline phase for diagnostic reporting.
type Stage string

const (
	StageLexer    Stage = "lexer"
	StageParser   Stage = "parser"
	StageSemantic Stage = "semantic"
	StageIR       Stage = "ir"
)

// Diagnostic is one reportable problem found while compiling a source unit.
// Its String form matches the driver-facing contract:
//
//	<stage> error at line L, column C: <message>
type Diagnostic struct {
	Stage   Stage
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s error at line %d, column %d: %s", d.Stage, d.Line, d.Column, d.Message)
}

// stageError wraps a single Diagnostic so the lexer, parser and IR
// generator can fail fast with a normal Go error while still carrying
// structured position information for callers that want it.
type stageError struct {
	Diagnostic
}

func (e *stageError) Error() string { return e.Diagnostic.String() }

func newStageError(stage Stage, line, column int, format string, args ...any) error {
	return &stageError{Diagnostic{Stage: stage, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}}
}

// SemanticError batches every Diagnostic the semantic analyzer collected
// during one pass over the AST. The analyzer never stops at the first
// problem; it reports all of them together (see §4.3).
type SemanticError struct {
	Diagnostics []Diagnostic
}

func (e *SemanticError) Error() string {
	var sb strings.Builder
	for i, d := range e.Diagnostics {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}
