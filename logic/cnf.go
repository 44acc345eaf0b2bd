package logic

import "github.com/go-entail/entail/resolution"

// Clauses converts f into an equivalent set of clauses. The conversion is a
// pipeline of equivalence-preserving rewrites:
//
//  1. desugar: eliminate "<->", "<-" and "->" in favor of "!", "&", "|";
//  2. simplify: fold the constants "*" and "~" out of connectives;
//  3. pushNegations: drive "!" onto variables with the De Morgan laws;
//  4. distribute: rewrite "|" over "&" until the tree is a conjunction of
//     disjunctions of literals;
//  5. flatten the tree into a clause set.
//
// A formula equivalent to the tautology yields the empty set; a formula
// equivalent to the contradiction yields a set holding the empty clause.
// Tautological clauses (containing some variable in both polarities) are
// dropped during flattening.
func Clauses(f Formula) *resolution.ClauseSet {
	f = desugar(f)
	f = simplify(f)
	f = pushNegations(f)
	f = simplify(f)
	f = distribute(f)
	cs := resolution.NewClauseSet()
	flatten(f, cs)
	return cs
}

// desugar removes the three implication connectives:
//
//	a <-> b  becomes  (a -> b) & (b -> a)
//	a <- b   becomes  b -> a
//	a -> b   becomes  !a | b
func desugar(f Formula) Formula {
	switch f := f.(type) {
	case variable, tautology, contradiction:
		return f
	case not:
		return Not(desugar(f.sub))
	case conj:
		return And(desugar(f.l), desugar(f.r))
	case disj:
		return Or(desugar(f.l), desugar(f.r))
	case implies:
		return Or(Not(desugar(f.l)), desugar(f.r))
	case revImplies:
		return Or(desugar(f.l), Not(desugar(f.r)))
	case biImplies:
		l, r := desugar(f.l), desugar(f.r)
		return And(Or(Not(l), r), Or(l, Not(r)))
	default:
		panic("logic: unknown formula variant")
	}
}

// simplify folds constants out of a desugared formula: "a & *" is "a",
// "a & ~" is "~", "a | *" is "*", "a | ~" is "a", "!*" is "~" and "!~" is
// "*", applied bottom-up.
func simplify(f Formula) Formula {
	switch f := f.(type) {
	case variable, tautology, contradiction:
		return f
	case not:
		switch sub := simplify(f.sub).(type) {
		case tautology:
			return Contra
		case contradiction:
			return Taut
		default:
			return Not(sub)
		}
	case conj:
		l, r := simplify(f.l), simplify(f.r)
		if l == Contra || r == Contra {
			return Contra
		}
		if l == Taut {
			return r
		}
		if r == Taut {
			return l
		}
		return And(l, r)
	case disj:
		l, r := simplify(f.l), simplify(f.r)
		if l == Taut || r == Taut {
			return Taut
		}
		if l == Contra {
			return r
		}
		if r == Contra {
			return l
		}
		return Or(l, r)
	default:
		panic("logic: implication connective survived desugaring")
	}
}

// pushNegations drives negations down to the variables of a desugared
// formula, so that afterwards "!" only ever wraps a variable.
func pushNegations(f Formula) Formula {
	switch f := f.(type) {
	case variable, tautology, contradiction:
		return f
	case not:
		return negate(f.sub)
	case conj:
		return And(pushNegations(f.l), pushNegations(f.r))
	case disj:
		return Or(pushNegations(f.l), pushNegations(f.r))
	default:
		panic("logic: implication connective survived desugaring")
	}
}

// negate returns the negation-normal form of "!f", applying the De Morgan
// laws and eliminating double negations on the way down.
func negate(f Formula) Formula {
	switch f := f.(type) {
	case variable:
		return Not(f)
	case tautology:
		return Contra
	case contradiction:
		return Taut
	case not:
		return pushNegations(f.sub)
	case conj:
		return Or(negate(f.l), negate(f.r))
	case disj:
		return And(negate(f.l), negate(f.r))
	default:
		panic("logic: implication connective survived desugaring")
	}
}

// distribute rewrites disjunctions over conjunctions until no conjunction
// remains under a disjunction:
//
//	a | (b & c)  becomes  (a | b) & (a | c)
func distribute(f Formula) Formula {
	switch f := f.(type) {
	case conj:
		return And(distribute(f.l), distribute(f.r))
	case disj:
		l, r := distribute(f.l), distribute(f.r)
		if lc, ok := l.(conj); ok {
			return And(distribute(Or(lc.l, r)), distribute(Or(lc.r, r)))
		}
		if rc, ok := r.(conj); ok {
			return And(distribute(Or(l, rc.l)), distribute(Or(l, rc.r)))
		}
		return Or(l, r)
	default:
		return f
	}
}

// flatten walks a distributed formula, adding one clause per top-level
// disjunction. Tautological clauses are dropped.
func flatten(f Formula, cs *resolution.ClauseSet) {
	if c, ok := f.(conj); ok {
		flatten(c.l, cs)
		flatten(c.r, cs)
		return
	}
	lits, taut := clauseLits(f)
	if taut {
		return
	}
	clause := resolution.NewClause(lits...)
	if !clause.IsTautology() {
		cs.Add(clause)
	}
}

// clauseLits collects the literals of one disjunction. It reports taut for a
// disjunction containing the tautology constant, whose clause is vacuous.
// The contradiction constant contributes no literal, so a bare "~" yields
// the empty clause.
func clauseLits(f Formula) (lits []resolution.Lit, taut bool) {
	switch f := f.(type) {
	case disj:
		l, taut := clauseLits(f.l)
		if taut {
			return nil, true
		}
		r, taut := clauseLits(f.r)
		if taut {
			return nil, true
		}
		return append(l, r...), false
	case variable:
		return []resolution.Lit{resolution.Pos(byte(f))}, false
	case not:
		v, ok := f.sub.(variable)
		if !ok {
			panic("logic: negation of a non-variable survived normalization")
		}
		return []resolution.Lit{resolution.Neg(byte(v))}, false
	case tautology:
		return nil, true
	case contradiction:
		return nil, false
	default:
		panic("logic: connective survived normalization")
	}
}
