package resolution

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// clauseBits is the size of the bit sets backing a clause. Variable names are
// single ASCII characters, so 128 bits cover the whole identifier space.
const clauseBits = 128

// A Clause is a disjunction of literals, represented as two disjoint bit
// sets: one for variables occurring positively, one for variables occurring
// negatively. The empty clause (no literals at all) is the derived
// contradiction. Clauses are immutable once built.
type Clause struct {
	pos *bitset.BitSet
	neg *bitset.BitSet
}

// NewClause builds a clause from the given literals. Duplicate literals
// collapse. A clause mentioning some variable in both polarities is kept as
// is: use IsTautology to detect and discard it.
func NewClause(lits ...Lit) Clause {
	c := Clause{pos: bitset.New(clauseBits), neg: bitset.New(clauseBits)}
	for _, l := range lits {
		if l.Neg {
			c.neg.Set(uint(l.Name))
		} else {
			c.pos.Set(uint(l.Name))
		}
	}
	return c
}

// EmptyClause returns the clause with no literals, i.e. the contradiction.
func EmptyClause() Clause {
	return NewClause()
}

// IsEmpty reports whether c has no literals.
func (c Clause) IsEmpty() bool {
	return c.pos.None() && c.neg.None()
}

// IsTautology reports whether c contains some variable in both polarities.
// Such a clause is true under every assignment and carries no information.
func (c Clause) IsTautology() bool {
	return c.pos.IntersectionCardinality(c.neg) > 0
}

// Len returns the number of literals in c.
func (c Clause) Len() int {
	return int(c.pos.Count() + c.neg.Count())
}

// Has reports whether c contains the given literal.
func (c Clause) Has(l Lit) bool {
	if l.Neg {
		return c.neg.Test(uint(l.Name))
	}
	return c.pos.Test(uint(l.Name))
}

// Lits returns the literals of c, ordered by variable name, a positive
// occurrence before a negative one.
func (c Clause) Lits() []Lit {
	lits := make([]Lit, 0, c.Len())
	all := c.pos.Union(c.neg)
	for i, ok := all.NextSet(0); ok; i, ok = all.NextSet(i + 1) {
		if c.pos.Test(i) {
			lits = append(lits, Lit{Name: byte(i)})
		}
		if c.neg.Test(i) {
			lits = append(lits, Lit{Name: byte(i), Neg: true})
		}
	}
	return lits
}

// Subsumes reports whether every literal of c occurs in other. A subsuming
// clause makes the subsumed one redundant: whenever c holds, other holds.
func (c Clause) Subsumes(other Clause) bool {
	return other.pos.IsSuperSet(c.pos) && other.neg.IsSuperSet(c.neg)
}

// Equal reports whether c and other contain exactly the same literals.
func (c Clause) Equal(other Clause) bool {
	return c.pos.Equal(other.pos) && c.neg.Equal(other.neg)
}

// resolveOn resolves c against other on the variable v, which must occur
// positively in c and negatively in other. The resolvent is the union of both
// clauses minus the two complementary occurrences of v.
func (c Clause) resolveOn(other Clause, v uint) Clause {
	pos := c.pos.Union(other.pos)
	neg := c.neg.Union(other.neg)
	pos.Clear(v)
	neg.Clear(v)
	return Clause{pos: pos, neg: neg}
}

// Resolvents returns every clause derivable from c and other by a single
// resolution step, one per variable occurring with opposite polarities in the
// two clauses. Tautological resolvents are included; callers filter them.
func (c Clause) Resolvents(other Clause) []Clause {
	var out []Clause
	onVars := c.pos.Intersection(other.neg)
	for v, ok := onVars.NextSet(0); ok; v, ok = onVars.NextSet(v + 1) {
		out = append(out, c.resolveOn(other, v))
	}
	onVars = other.pos.Intersection(c.neg)
	for v, ok := onVars.NextSet(0); ok; v, ok = onVars.NextSet(v + 1) {
		out = append(out, other.resolveOn(c, v))
	}
	return out
}

// Key returns a canonical string identifying c's literal set, suitable as a
// map key for structural deduplication.
func (c Clause) Key() string {
	var sb strings.Builder
	for _, l := range c.Lits() {
		if l.Neg {
			sb.WriteByte('-')
		} else {
			sb.WriteByte('+')
		}
		sb.WriteByte(l.Name)
	}
	return sb.String()
}

// String renders c in the surface syntax, e.g. "A | !B". The empty clause
// renders as the contradiction constant "~".
func (c Clause) String() string {
	if c.IsEmpty() {
		return "~"
	}
	lits := c.Lits()
	strs := make([]string, len(lits))
	for i, l := range lits {
		strs[i] = l.String()
	}
	return strings.Join(strs, " | ")
}
