package logic

import "testing"

// To each expression, associate the expected parse tree rendering.
var exprToString = map[string]string{
	"a":             "a",
	"A":             "A",
	"*":             "*",
	"~":             "~",
	"!a":            "!a",
	"!!a":           "!!a",
	"(a)":           "a",
	"((a))":         "a",
	"a | b":         "(a | b)",
	"a & b":         "(a & b)",
	"a -> b":        "(a -> b)",
	"a <- b":        "(a <- b)",
	"a <-> b":       "(a <-> b)",
	"a|b|c":         "((a | b) | c)",
	"a & b & c":     "((a & b) & c)",
	"a -> b -> c":   "((a -> b) -> c)",
	"a -> b <- c":   "((a -> b) <- c)",
	"a <-> b -> c":  "((a <-> b) -> c)",
	"a & b | c":     "((a & b) | c)",
	"a | b & c":     "(a | (b & c))",
	"a & b -> c":    "(a & (b -> c))",
	"a -> b | c":    "((a -> b) | c)",
	"!a | b":        "(!a | b)",
	"!(a | b)":      "!(a | b)",
	"! ( a & b )":   "!(a & b)",
	"a & (b | c)":   "(a & (b | c))",
	"~ -> a":        "(~ -> a)",
	"* <-> a":       "(* <-> a)",
	"  a   &  b  ":  "(a & b)",
	"a&!b|c":        "((a & !b) | c)",
	"p <-> q <-> r": "((p <-> q) <-> r)",
}

func TestParse(t *testing.T) {
	for expr, expected := range exprToString {
		f, err := Parse(expr)
		if err != nil {
			t.Errorf("could not parse expression %q: %v", expr, err)
		} else if f.String() != expected {
			t.Errorf("for expression %q, expected formula %q, got %q", expr, expected, f.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		expr string
		pos  int
	}{
		{"", 0},
		{"   ", 3},
		{"a &", 3},
		{"a |", 3},
		{"a ->", 4},
		{"!", 1},
		{"(a", 0},
		{"(a | b", 0},
		{"a)", 1},
		{"a b", 2},
		{"&a", 0},
		{"a ? b", 2},
		{"a # b", 2},
		{"ab", 1},
		{"a <>", 2},
	}
	for _, test := range tests {
		f, err := Parse(test.expr)
		if err == nil {
			t.Errorf("expected error for expression %q, got formula %q", test.expr, f.String())
			continue
		}
		syntaxErr, ok := err.(*SyntaxError)
		if !ok {
			t.Errorf("for expression %q, expected *SyntaxError, got %T", test.expr, err)
			continue
		}
		if syntaxErr.Pos != test.pos {
			t.Errorf("for expression %q, expected error at column %d, got %v", test.expr, test.pos, err)
		}
	}
}

func TestParseStatement(t *testing.T) {
	tests := []struct {
		line    string
		kind    StmtKind
		formula string
	}{
		{"", StmtStop, ""},
		{"   \t", StmtStop, ""},
		{"a", StmtAxiom, "a"},
		{"a -> b", StmtAxiom, "(a -> b)"},
		{"a?", StmtQuestion, "a"},
		{"a & b ?", StmtQuestion, "(a & b)"},
		{"!(a | b)?  ", StmtQuestion, "!(a | b)"},
	}
	for _, test := range tests {
		stmt, err := ParseStatement(test.line)
		if err != nil {
			t.Errorf("could not parse line %q: %v", test.line, err)
			continue
		}
		if stmt.Kind != test.kind {
			t.Errorf("for line %q, expected kind %v, got %v", test.line, test.kind, stmt.Kind)
		}
		if test.kind != StmtStop && stmt.Formula.String() != test.formula {
			t.Errorf("for line %q, expected formula %q, got %q", test.line, test.formula, stmt.Formula)
		}
	}
}

func TestParseStatementErrors(t *testing.T) {
	for _, line := range []string{"?", "a ? b", "a??", "(?"} {
		if _, err := ParseStatement(line); err == nil {
			t.Errorf("expected error for line %q", line)
		}
	}
}

func TestVars(t *testing.T) {
	f, err := Parse("b & (a | !b) -> c & *")
	if err != nil {
		t.Fatal(err)
	}
	got := Vars(f)
	want := []byte{'b', 'a', 'c'}
	if string(got) != string(want) {
		t.Errorf("expected vars %q, got %q", want, got)
	}
}
