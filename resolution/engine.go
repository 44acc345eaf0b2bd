package resolution

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// A Verdict is the outcome of a saturation run.
type Verdict int

const (
	// Unknown means the run was cut short before reaching a terminal state.
	Unknown Verdict = iota
	// Proved means the empty clause was derived: the set is unsatisfiable.
	Proved
	// Disproved means the set saturated without deriving the empty clause:
	// the set is satisfiable.
	Disproved
)

func (v Verdict) String() string {
	switch v {
	case Proved:
		return "proved"
	case Disproved:
		return "disproved"
	default:
		return "unknown"
	}
}

// ErrExhausted is returned when a step budget ran out before saturation
// reached a terminal state. The result is then neither a proof nor a
// disproof.
var ErrExhausted = errors.New("resolution step budget exhausted")

// An Engine runs resolution saturation over one clause set. The engine owns
// the set for the duration of the run and extends it with derived clauses.
type Engine struct {
	// MaxSteps bounds the number of clause pairs tried. Zero means no bound;
	// saturation terminates regardless because the clause universe over a
	// finite variable set is finite.
	MaxSteps int
	// Log receives a debug-level trace of every kept resolvent.
	Log logrus.FieldLogger

	set   *ClauseSet
	queue []pair
	steps int
}

// A pair indexes two clauses in the working set whose resolvents have not
// been computed yet.
type pair struct {
	left, right int
}

// NewEngine returns an engine over the given working set. The set is mutated
// during saturation: callers wanting to keep the original must pass a clone.
func NewEngine(set *ClauseSet) *Engine {
	return &Engine{set: set, Log: logrus.StandardLogger()}
}

// Steps returns the number of clause pairs tried so far.
func (e *Engine) Steps() int {
	return e.steps
}

// Set returns the engine's working set, including any derived clauses.
func (e *Engine) Set() *ClauseSet {
	return e.set
}

// Saturate resolves clause pairs until the empty clause is derived (Proved),
// no untried pair remains (Disproved), or the step budget runs out (Unknown,
// with an error wrapping ErrExhausted).
//
// Pairs are tried first-in first-out: all pairs over the initial clauses in
// insertion order, then pairs involving derived clauses in derivation order.
func (e *Engine) Saturate() (Verdict, error) {
	if e.set.HasEmpty() {
		return Proved, nil
	}
	n := e.set.Len()
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			e.queue = append(e.queue, pair{i, j})
		}
	}
	for len(e.queue) > 0 {
		if e.MaxSteps > 0 && e.steps >= e.MaxSteps {
			return Unknown, fmt.Errorf("%w after %d steps", ErrExhausted, e.steps)
		}
		e.steps++
		p := e.queue[0]
		e.queue = e.queue[1:]
		clauses := e.set.Clauses()
		left, right := clauses[p.left], clauses[p.right]
		for _, res := range left.Resolvents(right) {
			if res.IsEmpty() {
				e.Log.WithFields(logrus.Fields{
					"left":  left.String(),
					"right": right.String(),
				}).Debug("derived the empty clause")
				e.set.Add(res)
				return Proved, nil
			}
			if res.IsTautology() {
				continue
			}
			if e.set.Subsumed(res) {
				continue
			}
			idx := e.set.Len()
			e.set.Add(res)
			e.Log.WithFields(logrus.Fields{
				"left":      left.String(),
				"right":     right.String(),
				"resolvent": res.String(),
			}).Debug("derived clause")
			for i := 0; i < idx; i++ {
				e.queue = append(e.queue, pair{i, idx})
			}
		}
	}
	return Disproved, nil
}
