package logic

import (
	"fmt"
	"strings"
)

// A SyntaxError describes malformed formula text. Pos is the zero-based
// column of the offending character (or of the end of input).
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at column %d: %s", e.Pos+1, e.Msg)
}

// StmtKind classifies one line of session input.
type StmtKind int

const (
	// StmtAxiom asserts a formula for the rest of the session.
	StmtAxiom StmtKind = iota
	// StmtQuestion asks whether a formula follows from the axioms so far.
	StmtQuestion
	// StmtStop ends the session. Blank input parses as StmtStop.
	StmtStop
)

// A Statement is one classified line of session input. Formula is nil for
// StmtStop.
type Statement struct {
	Kind    StmtKind
	Formula Formula
}

// Parse parses a single formula. It fails with a *SyntaxError on empty
// input, unknown characters, unbalanced parentheses, missing operands and
// trailing text.
func Parse(line string) (Formula, error) {
	p := &parser{input: line}
	p.ws()
	if p.pos == len(p.input) {
		return nil, &SyntaxError{Pos: p.pos, Msg: "empty input"}
	}
	f, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	p.ws()
	if p.pos < len(p.input) {
		return nil, &SyntaxError{Pos: p.pos, Msg: "expected end of input"}
	}
	return f, nil
}

// ParseStatement parses one line of session input: a blank line is a stop
// signal, a line ending in "?" is a question, anything else is an axiom.
func ParseStatement(line string) (Statement, error) {
	trimmed := strings.TrimRight(line, " \t\r\n")
	if strings.TrimSpace(trimmed) == "" {
		return Statement{Kind: StmtStop}, nil
	}
	kind := StmtAxiom
	if strings.HasSuffix(trimmed, "?") {
		kind = StmtQuestion
		trimmed = trimmed[:len(trimmed)-1]
	}
	f, err := Parse(trimmed)
	if err != nil {
		return Statement{}, err
	}
	return Statement{Kind: kind, Formula: f}, nil
}

// parser is a character-level recursive-descent parser. Each precedence tier
// gets one method, loosest first; same-tier chains group left-to-right.
type parser struct {
	input string
	pos   int
}

func (p *parser) ws() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos < len(p.input) {
		return p.input[p.pos], true
	}
	return 0, false
}

// accept consumes s if it is next in the input.
func (p *parser) accept(s string) bool {
	if strings.HasPrefix(p.input[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

// disjunction parses "a | b | ..." over conjunctions. It is the loosest tier.
func (p *parser) disjunction() (Formula, error) {
	f, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	for {
		p.ws()
		if !p.accept("|") {
			return f, nil
		}
		r, err := p.conjunction()
		if err != nil {
			return nil, err
		}
		f = Or(f, r)
	}
}

// conjunction parses "a & b & ..." over implications.
func (p *parser) conjunction() (Formula, error) {
	f, err := p.implication()
	if err != nil {
		return nil, err
	}
	for {
		p.ws()
		if !p.accept("&") {
			return f, nil
		}
		r, err := p.implication()
		if err != nil {
			return nil, err
		}
		f = And(f, r)
	}
}

// implication parses the shared tier of "->", "<-" and "<->" over atoms.
// Mixed chains like "a -> b <- c" group strictly left-to-right, so that
// example reads "(a -> b) <- c".
func (p *parser) implication() (Formula, error) {
	f, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		p.ws()
		switch {
		case p.accept("->"):
			r, err := p.atom()
			if err != nil {
				return nil, err
			}
			f = Implies(f, r)
		case p.accept("<->"):
			r, err := p.atom()
			if err != nil {
				return nil, err
			}
			f = BiImplies(f, r)
		case p.accept("<-"):
			r, err := p.atom()
			if err != nil {
				return nil, err
			}
			f = RevImplies(f, r)
		default:
			return f, nil
		}
	}
}

// atom parses the tightest tier: constants, variables, negation and
// parenthesized subformulas.
func (p *parser) atom() (Formula, error) {
	p.ws()
	c, ok := p.peek()
	if !ok {
		return nil, &SyntaxError{Pos: p.pos, Msg: "expected expression"}
	}
	switch {
	case c == '!':
		p.pos++
		sub, err := p.atom()
		if err != nil {
			return nil, err
		}
		return Not(sub), nil
	case c == '*':
		p.pos++
		return Taut, nil
	case c == '~':
		p.pos++
		return Contra, nil
	case c == '(':
		open := p.pos
		p.pos++
		f, err := p.disjunction()
		if err != nil {
			return nil, err
		}
		p.ws()
		if !p.accept(")") {
			return nil, &SyntaxError{Pos: open, Msg: "unmatched '('"}
		}
		return f, nil
	case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		p.pos++
		return Var(c), nil
	default:
		return nil, &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
}
