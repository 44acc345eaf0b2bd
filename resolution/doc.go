// Package resolution implements propositional resolution refutation.
//
// A Clause is a disjunction of literals, stored as two bit sets (positive and
// negative occurrences) indexed by the variable's character code. A ClauseSet
// is an insertion-ordered, structurally deduplicated set of clauses.
//
// The Engine saturates a clause set: it repeatedly resolves pairs of clauses
// on complementary literals, discarding tautological and subsumed resolvents,
// until either the empty clause is derived (the set is unsatisfiable) or no
// untried pair remains (the set is satisfiable). Because the number of
// distinct non-tautological clauses over a finite set of variables is finite,
// saturation always terminates.
//
// Pairs are tried breadth-first, in clause insertion order, so derivation
// traces are reproducible.
package resolution
