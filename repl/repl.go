// Package repl implements the interactive session loop: it reads one line at
// a time, asserts axioms, answers questions and reports syntax errors
// without ever ending the session over bad input.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/go-entail/entail/kb"
	"github.com/go-entail/entail/logic"
	"github.com/go-entail/entail/resolution"
)

// A REPL drives one interactive session over a knowledge base.
//
// Line routing: a blank line ends the session, a line ending in "?" is a
// question, any other line is an axiom. Each accepted submission echoes its
// clause form; syntax errors are marked with a caret under the offending
// column and the session continues.
type REPL struct {
	kb    *kb.KB
	out   io.Writer
	color bool
}

// An Option configures a REPL.
type Option func(*REPL)

// WithColor enables or disables colored verdicts. Callers typically enable
// it only when writing to a terminal.
func WithColor(enabled bool) Option {
	return func(r *REPL) { r.color = enabled }
}

// New returns a REPL over the given knowledge base, writing to out.
func New(base *kb.KB, out io.Writer, opts ...Option) *REPL {
	r := &REPL{kb: base, out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads lines from in until a blank line or end of input, processing
// each line in turn. It only returns an error when reading itself fails;
// malformed formulas are reported and skipped.
func (r *REPL) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !r.handle(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// handle processes one line, reporting whether the session continues.
func (r *REPL) handle(line string) bool {
	stmt, err := logic.ParseStatement(line)
	if err != nil {
		var syntaxErr *logic.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintf(r.out, "%s^\n", strings.Repeat(" ", syntaxErr.Pos))
		}
		fmt.Fprintf(r.out, "> Error! %v\n", err)
		return true
	}
	switch stmt.Kind {
	case logic.StmtStop:
		return false
	case logic.StmtQuestion:
		proved, err := r.kb.Prove(stmt.Formula)
		switch {
		case errors.Is(err, resolution.ErrExhausted):
			fmt.Fprintf(r.out, "> %s\n", r.paint(color.FgYellow, "Unknown: "+err.Error()))
		case err != nil:
			fmt.Fprintf(r.out, "> Error! %v\n", err)
		case proved:
			fmt.Fprintf(r.out, "> %s\n", r.paint(color.FgGreen, "Proved!"))
		default:
			fmt.Fprintf(r.out, "> %s\n", r.paint(color.FgRed, "Not proved."))
		}
	default:
		wasInconsistent := r.kb.Inconsistent()
		cs := r.kb.AddAxiom(stmt.Formula)
		fmt.Fprintf(r.out, "> CNF: %s\n", cs)
		if r.kb.Inconsistent() && !wasInconsistent {
			fmt.Fprintf(r.out, "> %s\n", r.paint(color.FgYellow, "Contradiction! The axioms entail anything."))
		}
	}
	return true
}

func (r *REPL) paint(attr color.Attribute, s string) string {
	if !r.color {
		return s
	}
	return color.New(attr).Sprint(s)
}
