package resolution

import "strings"

// A ClauseSet is a set of clauses with structural deduplication. Clauses keep
// their insertion order, which the engine relies on for a deterministic pair
// selection policy.
type ClauseSet struct {
	clauses []Clause
	index   map[string]int
}

// NewClauseSet returns an empty clause set.
func NewClauseSet(clauses ...Clause) *ClauseSet {
	cs := &ClauseSet{index: make(map[string]int)}
	for _, c := range clauses {
		cs.Add(c)
	}
	return cs
}

// Add inserts c unless an identical clause is already present.
// It reports whether the set changed.
func (cs *ClauseSet) Add(c Clause) bool {
	key := c.Key()
	if _, ok := cs.index[key]; ok {
		return false
	}
	cs.index[key] = len(cs.clauses)
	cs.clauses = append(cs.clauses, c)
	return true
}

// Contains reports whether a clause with exactly c's literals is present.
func (cs *ClauseSet) Contains(c Clause) bool {
	_, ok := cs.index[c.Key()]
	return ok
}

// Union adds every clause of other to cs, reporting whether cs changed.
func (cs *ClauseSet) Union(other *ClauseSet) bool {
	changed := false
	for _, c := range other.clauses {
		if cs.Add(c) {
			changed = true
		}
	}
	return changed
}

// Clone returns an independent copy of cs. The clauses themselves are
// immutable and shared.
func (cs *ClauseSet) Clone() *ClauseSet {
	cp := &ClauseSet{
		clauses: make([]Clause, len(cs.clauses)),
		index:   make(map[string]int, len(cs.index)),
	}
	copy(cp.clauses, cs.clauses)
	for k, v := range cs.index {
		cp.index[k] = v
	}
	return cp
}

// Len returns the number of clauses in the set.
func (cs *ClauseSet) Len() int {
	return len(cs.clauses)
}

// Clauses returns the clauses in insertion order. The returned slice must not
// be modified.
func (cs *ClauseSet) Clauses() []Clause {
	return cs.clauses
}

// HasEmpty reports whether the set contains the empty clause, i.e. an
// explicit contradiction.
func (cs *ClauseSet) HasEmpty() bool {
	_, ok := cs.index[""]
	return ok
}

// Subsumed reports whether some clause already in the set subsumes c.
func (cs *ClauseSet) Subsumed(c Clause) bool {
	for _, existing := range cs.clauses {
		if existing.Subsumes(c) {
			return true
		}
	}
	return false
}

// String renders the set as a conjunction of parenthesized clauses. The empty
// set renders as the tautology constant "*": it constrains nothing.
func (cs *ClauseSet) String() string {
	if len(cs.clauses) == 0 {
		return "*"
	}
	strs := make([]string, len(cs.clauses))
	for i, c := range cs.clauses {
		strs[i] = "(" + c.String() + ")"
	}
	return strings.Join(strs, " & ")
}
