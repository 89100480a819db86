package pregroup

import "strings"

// Ob is an atomic pregroup type: a base name plus an adjoint winding number.
// Z == 0 is the base type, negative Z counts iterated left adjoints and
// positive Z iterated right adjoints. Ob is a comparable value type.
type Ob struct {
	Name string
	Z    int
}

// NewOb creates a base atomic type with winding number zero.
func NewOb(name string) Ob {
	return Ob{Name: name}
}

// Left returns the left adjoint of the atom.
func (o Ob) Left() Ob {
	return Ob{Name: o.Name, Z: o.Z - 1}
}

// Right returns the right adjoint of the atom.
func (o Ob) Right() Ob {
	return Ob{Name: o.Name, Z: o.Z + 1}
}

// Base returns the underlying base type with winding number zero.
func (o Ob) Base() Ob {
	return Ob{Name: o.Name}
}

// String renders the atom with its adjoint suffixes, e.g. "n.r" or "s.l.l".
func (o Ob) String() string {
	var sb strings.Builder
	sb.WriteString(o.Name)
	for i := o.Z; i < 0; i++ {
		sb.WriteString(".l")
	}
	for i := 0; i < o.Z; i++ {
		sb.WriteString(".r")
	}
	return sb.String()
}

// Ty is an ordered sequence of atomic types. The empty sequence is the
// tensor unit. Ty values are never mutated after construction; all
// operations return fresh slices.
type Ty []Ob

// T builds a type from base atom names, e.g. T("n", "s").
func T(names ...string) Ty {
	t := make(Ty, len(names))
	for i, name := range names {
		t[i] = NewOb(name)
	}
	return t
}

// NewTy builds a type from atoms.
func NewTy(obs ...Ob) Ty {
	t := make(Ty, len(obs))
	copy(t, obs)
	return t
}

// Tensor concatenates types left to right.
func (t Ty) Tensor(others ...Ty) Ty {
	n := len(t)
	for _, u := range others {
		n += len(u)
	}
	out := make(Ty, 0, n)
	out = append(out, t...)
	for _, u := range others {
		out = append(out, u...)
	}
	return out
}

// Left returns the left adjoint: atoms are adjointed and the order reversed,
// so that (s @ n).Left() == n.l @ s.l.
func (t Ty) Left() Ty {
	out := make(Ty, len(t))
	for i, o := range t {
		out[len(t)-1-i] = o.Left()
	}
	return out
}

// Right returns the right adjoint, reversing order like Left.
func (t Ty) Right() Ty {
	out := make(Ty, len(t))
	for i, o := range t {
		out[len(t)-1-i] = o.Right()
	}
	return out
}

// Equal reports element-wise equality of two types.
func (t Ty) Equal(u Ty) bool {
	if len(t) != len(u) {
		return false
	}
	for i := range t {
		if t[i] != u[i] {
			return false
		}
	}
	return true
}

// String renders the type as atoms joined by the tensor symbol,
// or "Ty()" for the unit.
func (t Ty) String() string {
	if len(t) == 0 {
		return "Ty()"
	}
	parts := make([]string, len(t))
	for i, o := range t {
		parts[i] = o.String()
	}
	return strings.Join(parts, " @ ")
}
