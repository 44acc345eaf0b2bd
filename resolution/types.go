package resolution

// A Lit is a propositional variable together with a polarity.
// Variables are single-character identifiers, so the name is a plain byte.
type Lit struct {
	Name byte
	Neg  bool
}

// Pos returns a positive literal over the given variable.
func Pos(name byte) Lit {
	return Lit{Name: name}
}

// Neg returns a negative literal over the given variable.
func Neg(name byte) Lit {
	return Lit{Name: name, Neg: true}
}

// Complement returns the literal over the same variable with opposite polarity.
func (l Lit) Complement() Lit {
	return Lit{Name: l.Name, Neg: !l.Neg}
}

func (l Lit) String() string {
	if l.Neg {
		return "!" + string(rune(l.Name))
	}
	return string(rune(l.Name))
}
