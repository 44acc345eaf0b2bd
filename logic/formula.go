package logic

// A Formula is a propositional formula tree. The variant types are fixed:
// variables, the two constants, negation, and the five binary connectives.
// Transformations over formulas use exhaustive type switches rather than
// method dispatch, so each rewrite stage reads as one unit.
//
// Formulas are immutable: every transformation builds a new tree.
type Formula interface {
	// String renders the formula in the surface syntax, fully parenthesized
	// around binary connectives.
	String() string
	// Eval evaluates the formula under the given assignment. A variable
	// missing from the model counts as false.
	Eval(model map[byte]bool) bool

	formula()
}

type variable byte

type tautology struct{}

type contradiction struct{}

type not struct{ sub Formula }

type conj struct{ l, r Formula }

type disj struct{ l, r Formula }

type implies struct{ l, r Formula }

// revImplies is "l <- r", i.e. r implies l.
type revImplies struct{ l, r Formula }

type biImplies struct{ l, r Formula }

// Taut is the always-true constant, written "*".
var Taut Formula = tautology{}

// Contra is the always-false constant, written "~".
var Contra Formula = contradiction{}

// Var returns a formula consisting of the single variable name.
func Var(name byte) Formula { return variable(name) }

// Not negates a formula.
func Not(f Formula) Formula { return not{f} }

// And conjoins two formulas.
func And(l, r Formula) Formula { return conj{l, r} }

// Or disjoins two formulas.
func Or(l, r Formula) Formula { return disj{l, r} }

// Implies builds the implication "l -> r".
func Implies(l, r Formula) Formula { return implies{l, r} }

// RevImplies builds the reverse implication "l <- r", equivalent to "r -> l".
func RevImplies(l, r Formula) Formula { return revImplies{l, r} }

// BiImplies builds the bi-implication "l <-> r".
func BiImplies(l, r Formula) Formula { return biImplies{l, r} }

func (variable) formula()      {}
func (tautology) formula()     {}
func (contradiction) formula() {}
func (not) formula()           {}
func (conj) formula()          {}
func (disj) formula()          {}
func (implies) formula()       {}
func (revImplies) formula()    {}
func (biImplies) formula()     {}

func (v variable) String() string { return string(rune(v)) }
func (tautology) String() string { return "*" }
func (contradiction) String() string { return "~" }
func (n not) String() string { return "!" + n.sub.String() }
func (f conj) String() string { return "(" + f.l.String() + " & " + f.r.String() + ")" }
func (f disj) String() string { return "(" + f.l.String() + " | " + f.r.String() + ")" }
func (f implies) String() string { return "(" + f.l.String() + " -> " + f.r.String() + ")" }
func (f revImplies) String() string { return "(" + f.l.String() + " <- " + f.r.String() + ")" }
func (f biImplies) String() string { return "(" + f.l.String() + " <-> " + f.r.String() + ")" }

func (v variable) Eval(model map[byte]bool) bool { return model[byte(v)] }
func (tautology) Eval(map[byte]bool) bool { return true }
func (contradiction) Eval(map[byte]bool) bool { return false }
func (n not) Eval(model map[byte]bool) bool { return !n.sub.Eval(model) }
func (f conj) Eval(model map[byte]bool) bool { return f.l.Eval(model) && f.r.Eval(model) }
func (f disj) Eval(model map[byte]bool) bool { return f.l.Eval(model) || f.r.Eval(model) }
func (f implies) Eval(model map[byte]bool) bool { return !f.l.Eval(model) || f.r.Eval(model) }
func (f revImplies) Eval(model map[byte]bool) bool { return f.l.Eval(model) || !f.r.Eval(model) }
func (f biImplies) Eval(model map[byte]bool) bool { return f.l.Eval(model) == f.r.Eval(model) }

// Vars returns the distinct variables of f in first-occurrence order.
func Vars(f Formula) []byte {
	var names []byte
	seen := make(map[byte]bool)
	var walk func(Formula)
	walk = func(f Formula) {
		switch f := f.(type) {
		case variable:
			if !seen[byte(f)] {
				seen[byte(f)] = true
				names = append(names, byte(f))
			}
		case tautology, contradiction:
		case not:
			walk(f.sub)
		case conj:
			walk(f.l)
			walk(f.r)
		case disj:
			walk(f.l)
			walk(f.r)
		case implies:
			walk(f.l)
			walk(f.r)
		case revImplies:
			walk(f.l)
			walk(f.r)
		case biImplies:
			walk(f.l)
			walk(f.r)
		}
	}
	walk(f)
	return names
}
