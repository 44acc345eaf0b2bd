// Package kb holds the knowledge base of one session: the clauses of every
// axiom asserted so far, and the entailment check for questions.
package kb

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/go-entail/entail/logic"
	"github.com/go-entail/entail/resolution"
)

// A KB accumulates axiom clauses over one session. The store only ever
// grows: axioms are permanent truths for the session's lifetime, and a
// question is proved against a clone of the store, never against the store
// itself.
//
// A KB is not safe for concurrent mutation. Since Prove works on a clone, a
// KB may be read by several goroutines as long as no AddAxiom call is in
// flight.
type KB struct {
	store        *resolution.ClauseSet
	log          logrus.FieldLogger
	maxSteps     int
	inconsistent bool
}

// An Option configures a KB.
type Option func(*KB)

// WithLogger routes the KB's log output, including the engine's debug-level
// resolution trace, to the given logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(kb *KB) { kb.log = log }
}

// WithMaxSteps bounds the number of resolution steps per question. Zero
// means unbounded, which is safe: saturation terminates on its own.
func WithMaxSteps(n int) Option {
	return func(kb *KB) { kb.maxSteps = n }
}

// New returns an empty knowledge base.
func New(opts ...Option) *KB {
	kb := &KB{
		store: resolution.NewClauseSet(),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(kb)
	}
	return kb
}

// AddAxiom normalizes f and unions its clauses into the store. It returns
// the clauses contributed by this axiom. Asserting a redundant axiom is a
// no-op in effect; asserting contradictory axioms leaves the store intact
// but marks the session inconsistent.
func (kb *KB) AddAxiom(f logic.Formula) *resolution.ClauseSet {
	cs := logic.Clauses(f)
	kb.store.Union(cs)
	if cs.HasEmpty() && !kb.inconsistent {
		kb.inconsistent = true
		kb.log.Warn("axioms are inconsistent: every question is now entailed")
	}
	kb.log.WithFields(logrus.Fields{
		"axiom":   f.String(),
		"clauses": cs.String(),
		"stored":  kb.store.Len(),
	}).Debug("axiom asserted")
	return cs
}

// Prove reports whether q follows from the axioms asserted so far. It
// normalizes the negation of q, unions those clauses with a clone of the
// store, and saturates: deriving the empty clause proves entailment,
// saturating without it disproves entailment. The store itself is never
// modified, whatever the outcome.
//
// A non-nil error wraps resolution.ErrExhausted and means the step budget
// ran out; the boolean is then meaningless.
func (kb *KB) Prove(q logic.Formula) (bool, error) {
	working := kb.store.Clone()
	working.Union(logic.Clauses(logic.Not(q)))
	engine := resolution.NewEngine(working)
	engine.MaxSteps = kb.maxSteps
	engine.Log = kb.log
	verdict, err := engine.Saturate()
	if err != nil {
		return false, err
	}
	kb.log.WithFields(logrus.Fields{
		"question": q.String(),
		"verdict":  verdict.String(),
		"steps":    engine.Steps(),
	}).Debug("question resolved")
	return verdict == resolution.Proved, nil
}

// SubmitAxiom parses text as a formula and asserts it.
func (kb *KB) SubmitAxiom(text string) error {
	f, err := logic.Parse(text)
	if err != nil {
		return err
	}
	kb.AddAxiom(f)
	return nil
}

// SubmitQuestion parses text as a formula and reports whether it is
// entailed.
func (kb *KB) SubmitQuestion(text string) (bool, error) {
	f, err := logic.Parse(text)
	if err != nil {
		return false, err
	}
	return kb.Prove(f)
}

// Len returns the number of stored clauses.
func (kb *KB) Len() int {
	return kb.store.Len()
}

// Clauses returns the stored clauses in insertion order. The returned slice
// must not be modified.
func (kb *KB) Clauses() []resolution.Clause {
	return kb.store.Clauses()
}

// Inconsistent reports whether some asserted axiom normalized to an explicit
// contradiction, putting the empty clause in the store. An inconsistent
// store entails every question. Axioms that only contradict each other
// jointly (say "A" and "!A") are not flagged here; their questions still all
// prove, since resolution derives the empty clause from the stored clauses.
func (kb *KB) Inconsistent() bool {
	return kb.inconsistent
}

// String renders the store as a conjunction of clauses.
func (kb *KB) String() string {
	return kb.store.String()
}

// WriteDimacs writes the store in DIMACS CNF format. Variable names are
// mapped to consecutive indices in sorted order; the mapping is recorded in
// comment lines such as "c A=1" between the prolog and the clauses.
func (kb *KB) WriteDimacs(w io.Writer) error {
	clauses := kb.store.Clauses()
	names := make(map[byte]int)
	var order []byte
	for _, c := range clauses {
		for _, l := range c.Lits() {
			if _, ok := names[l.Name]; !ok {
				names[l.Name] = 0
				order = append(order, l.Name)
			}
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for i, name := range order {
		names[name] = i + 1
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", len(order), len(clauses)); err != nil {
		return fmt.Errorf("could not write DIMACS output: %w", err)
	}
	for _, name := range order {
		if _, err := fmt.Fprintf(w, "c %c=%d\n", name, names[name]); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	for _, c := range clauses {
		lits := c.Lits()
		strs := make([]string, len(lits))
		for i, l := range lits {
			idx := names[l.Name]
			if l.Neg {
				idx = -idx
			}
			strs[i] = fmt.Sprint(idx)
		}
		line := "0\n"
		if len(strs) > 0 {
			line = strings.Join(strs, " ") + " 0\n"
		}
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	return nil
}
