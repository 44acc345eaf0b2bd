// Package logic defines propositional formulas, a parser for their surface
// syntax, and the conversion to conjunctive normal form.
//
// The surface syntax uses single-character variables and the following
// operators, from tightest to loosest binding:
//
//   - "~" the contradiction constant, "*" the tautology constant,
//   - "!" for negation,
//   - "->", "<-" and "<->" for implication, reverse implication and
//     bi-implication (one shared precedence tier, grouping left-to-right),
//   - "&" for conjunction,
//   - "|" for disjunction.
//
// Parentheses override precedence. For example:
//
//	!(a & b) -> (c | !d <-> e)
//
// Unlike a Tseitin encoding, the CNF conversion here is fully
// equivalence-preserving: it eliminates the implication connectives, pushes
// negations onto variables, and distributes disjunction over conjunction, so
// the resulting clause set is true under exactly the same assignments as the
// original formula. The blow-up is acceptable because formulas entered at an
// interactive session are small.
package logic
