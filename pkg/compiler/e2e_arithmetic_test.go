package compiler

import (
	"fmt"
	"strings"
	"testing"
)

func TestArithmetic_FoldsToConstant(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"6 * 7", "42"},
		{"100 / 10", "10"},
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"10 - 3 - 2", "5"},
	}
	for _, tt := range tests {
		got := evalConstant(t, tt.expr)
		if got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.expr, tt.expected, got)
		}
	}
}

func TestArithmetic_MixedIntFloatFoldsToFloat(t *testing.T) {
	result, err := Compile(`ashar x = 7 / 2.0;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	place, got := "", ""
	for _, in := range result.IR {
		if in.Op == DECLARE_INIT && in.Operands[1] == "x" {
			place = in.Operands[2]
		}
	}
	for _, in := range result.IR {
		if in.Op == LOAD && in.Operands[0] == place {
			got = in.Operands[1]
		}
	}
	if got != "3.5" {
		t.Errorf("expected x to fold to 3.5, got %q", got)
	}
}

func TestComparison_FoldsToConstant(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"5 < 10", "1"},
		{"10 < 5", "0"},
		{"5 > 3", "1"},
		{"1 != 2", "1"},
		{"1 != 1", "0"},
		{"1 <= 1", "1"},
		{"2 >= 3", "0"},
	}
	for _, tt := range tests {
		got := evalConstant(t, tt.expr)
		if got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.expr, tt.expected, got)
		}
	}
}

func TestArithmetic_NonConstantOperandsSurviveAsCpp(t *testing.T) {
	src := fmt.Sprintf("sahih n; begir(n); sahih s = n %s 2;", "+")
	result, err := Compile(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, in := range result.IR {
		if in.Op == ADD {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the ADD with an unknown operand n to survive folding, got %v", result.IR)
	}
}

func TestControlFlow_ForLoopAccumulatesViaGeneratedCpp(t *testing.T) {
	result, err := Compile(`
	sahih s = 0;
	baraye (sahih i = 0; i < 5; i = i + 1) {
		s = s + i;
	}
	benvis(s);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.CXX, "for (") {
		t.Errorf("expected a structured for-loop in the emitted source, got:\n%s", result.CXX)
	}
}
