package logic

import (
	"testing"

	"github.com/go-entail/entail/resolution"
)

// To each expression, associate the expected clause-set rendering. Literals
// inside a clause come out in variable order, clauses in derivation order.
var exprToCNF = map[string]string{
	"a":               "(a)",
	"!a":              "(!a)",
	"b | a":           "(a | b)",
	"a & b":           "(a) & (b)",
	"a -> b":          "(!a | b)",
	"a <- b":          "(a | !b)",
	"a <-> b":         "(!a | b) & (a | !b)",
	"!(a & b)":        "(!a | !b)",
	"!(a | b)":        "(!a) & (!b)",
	"!!a":             "(a)",
	"a | (b & c)":     "(a | b) & (a | c)",
	"(a & b) | c":     "(a | c) & (b | c)",
	"(a & b) | (c & d)": "(a | c) & (a | d) & (b | c) & (b | d)",
	"*":               "*",
	"~":               "(~)",
	"!*":              "(~)",
	"!~":              "*",
	"a & *":           "(a)",
	"* & a":           "(a)",
	"a & ~":           "(~)",
	"a | *":           "*",
	"a | ~":           "(a)",
	"a | !a":          "*",
	"(a | !a) & b":    "(b)",
	"a -> a":          "*",
	"~ -> a":          "*",
	"a -> ~":          "(!a)",
	"* -> a":          "(a)",
	"!(a -> b)":       "(a) & (!b)",
	"a <-> a":         "*",
	"a <-> !a":        "(!a) & (a)",
	"(a -> b) & (b -> c) & a": "(!a | b) & (!b | c) & (a)",
}

func TestClauses(t *testing.T) {
	for expr, expected := range exprToCNF {
		f, err := Parse(expr)
		if err != nil {
			t.Fatalf("could not parse expression %q: %v", expr, err)
		}
		if got := Clauses(f).String(); got != expected {
			t.Errorf("for expression %q, expected CNF %q, got %q", expr, expected, got)
		}
	}
}

func TestDesugar(t *testing.T) {
	tests := map[string]string{
		"a -> b":  "(!a | b)",
		"a <- b":  "(a | !b)",
		"a <-> b": "((!a | b) & (a | !b))",
		"!(a -> b) -> (c <- d)": "(!!(!a | b) | (c | !d))",
	}
	for expr, expected := range tests {
		f, err := Parse(expr)
		if err != nil {
			t.Fatal(err)
		}
		if got := desugar(f).String(); got != expected {
			t.Errorf("for expression %q, expected %q after desugaring, got %q", expr, expected, got)
		}
	}
}

func TestPushNegations(t *testing.T) {
	tests := map[string]string{
		"!(a & b)":        "(!a | !b)",
		"!(a | b)":        "(!a & !b)",
		"!!a":             "a",
		"!!!a":            "!a",
		"!(!a & !b)":      "(a | b)",
		"!(a & (b | !c))": "(!a | (!b & c))",
	}
	for expr, expected := range tests {
		f, err := Parse(expr)
		if err != nil {
			t.Fatal(err)
		}
		if got := pushNegations(f).String(); got != expected {
			t.Errorf("for expression %q, expected %q in NNF, got %q", expr, expected, got)
		}
	}
}

func TestDistribute(t *testing.T) {
	tests := map[string]string{
		"a | (b & c)":       "((a | b) & (a | c))",
		"(a & b) | (c & d)": "(((a | c) & (a | d)) & ((b | c) & (b | d)))",
		"a | b":             "(a | b)",
		"a | (b & (c | (d & e)))": "((a | b) & ((a | (c | d)) & (a | (c | e))))",
	}
	for expr, expected := range tests {
		f, err := Parse(expr)
		if err != nil {
			t.Fatal(err)
		}
		if got := distribute(f).String(); got != expected {
			t.Errorf("for expression %q, expected %q after distribution, got %q", expr, expected, got)
		}
	}
}

// evalClauses evaluates a clause set: every clause must contain at least one
// literal that is true under the model.
func evalClauses(cs *resolution.ClauseSet, model map[byte]bool) bool {
	for _, clause := range cs.Clauses() {
		sat := false
		for _, lit := range clause.Lits() {
			if model[lit.Name] != lit.Neg {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}

// TestClausesEquivalence checks the round-trip property: a formula and its
// clause set agree under every assignment of its variables.
func TestClausesEquivalence(t *testing.T) {
	exprs := []string{
		"a",
		"!a",
		"*",
		"~",
		"a -> b",
		"a <- b",
		"a <-> b",
		"!(a & b)",
		"!(a | b) <-> (!a & !b)",
		"a <-> (b -> !a)",
		"(a | b) & (!a | c) -> (b | c)",
		"((a -> b) -> a) -> a",
		"!(a <-> b) | (c & !c)",
		"(a & b) | (c & d)",
		"a & !(b <- (c | a))",
		"(a <-> b) <-> (c <-> d)",
		"~ -> (a & !a)",
		"a | !a | b",
	}
	for _, expr := range exprs {
		f, err := Parse(expr)
		if err != nil {
			t.Fatalf("could not parse expression %q: %v", expr, err)
		}
		cs := Clauses(f)
		vars := Vars(f)
		for bits := 0; bits < 1<<len(vars); bits++ {
			model := make(map[byte]bool, len(vars))
			for i, name := range vars {
				model[name] = bits&(1<<i) != 0
			}
			if f.Eval(model) != evalClauses(cs, model) {
				t.Errorf("formula %q and its CNF %q disagree under %v", expr, cs, model)
			}
		}
	}
}
