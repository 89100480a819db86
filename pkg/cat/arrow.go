package cat

import (
	"strings"

	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

// Generator is a named elementary morphism with a fixed domain and codomain.
// Generators are immutable values; two generators are equal only when name,
// domain and codomain all match.
type Generator struct {
	Name string
	Dom  pregroup.Ty
	Cod  pregroup.Ty
}

// NewGenerator creates a generator over the given domain and codomain.
func NewGenerator(name string, dom, cod pregroup.Ty) Generator {
	return Generator{Name: name, Dom: dom, Cod: cod}
}

// Equal reports structural equality: same name, domain and codomain.
func (g Generator) Equal(h Generator) bool {
	return g.Name == h.Name && g.Dom.Equal(h.Dom) && g.Cod.Equal(h.Cod)
}

// Key returns a canonical string identifying the generator, usable as a map
// key where Generator itself cannot be (Ty is a slice type).
func (g Generator) Key() string {
	return g.Name + " : " + g.Dom.String() + " -> " + g.Cod.String()
}

// String renders the generator by name.
func (g Generator) String() string {
	return g.Name
}

// Arrow is a sequential composite of generators. The zero-generator arrow
// over a type is the identity. Arrows are immutable after construction.
type Arrow struct {
	dom  pregroup.Ty
	cod  pregroup.Ty
	gens []Generator
}

// Identity returns the zero-generator arrow over t.
func Identity(t pregroup.Ty) Arrow {
	return Arrow{dom: t, cod: t}
}

// NewArrow builds an arrow from a non-empty generator chain, checking that
// the codomain of each generator matches the domain of the next.
func NewArrow(gens ...Generator) (Arrow, error) {
	if len(gens) == 0 {
		return Arrow{}, NewTypeMismatch("NewArrow", nil, nil)
	}
	for i := 0; i+1 < len(gens); i++ {
		if !gens[i].Cod.Equal(gens[i+1].Dom) {
			return Arrow{}, NewTypeMismatch("NewArrow", gens[i].Cod, gens[i+1].Dom)
		}
	}
	chain := make([]Generator, len(gens))
	copy(chain, gens)
	return Arrow{dom: gens[0].Dom, cod: gens[len(gens)-1].Cod, gens: chain}, nil
}

// Lift returns the one-generator arrow for g.
func Lift(g Generator) Arrow {
	return Arrow{dom: g.Dom, cod: g.Cod, gens: []Generator{g}}
}

// Dom returns the arrow's domain.
func (a Arrow) Dom() pregroup.Ty { return a.dom }

// Cod returns the arrow's codomain.
func (a Arrow) Cod() pregroup.Ty { return a.cod }

// Len returns the number of generators in the chain.
func (a Arrow) Len() int { return len(a.gens) }

// Generators returns a copy of the generator chain.
func (a Arrow) Generators() []Generator {
	out := make([]Generator, len(a.gens))
	copy(out, a.gens)
	return out
}

// Then composes a before g, requiring cod(a) == dom(g).
func (a Arrow) Then(g Arrow) (Arrow, error) {
	return Compose(a, g)
}

// Compose returns the sequential composite f then g. The codomain of f must
// equal the domain of g as an ordered sequence; otherwise a TypeMismatchError
// naming both sequences is returned and no arrow is built.
func Compose(f, g Arrow) (Arrow, error) {
	if !f.cod.Equal(g.dom) {
		return Arrow{}, NewTypeMismatch("Compose", f.cod, g.dom)
	}
	chain := make([]Generator, 0, len(f.gens)+len(g.gens))
	chain = append(chain, f.gens...)
	chain = append(chain, g.gens...)
	return Arrow{dom: f.dom, cod: g.cod, gens: chain}, nil
}

// Equal reports structural equality: same domain, codomain and generator
// chain. No normalization is performed at this layer.
func (a Arrow) Equal(b Arrow) bool {
	if !a.dom.Equal(b.dom) || !a.cod.Equal(b.cod) || len(a.gens) != len(b.gens) {
		return false
	}
	for i := range a.gens {
		if !a.gens[i].Equal(b.gens[i]) {
			return false
		}
	}
	return true
}

// String renders the arrow as its generator chain, e.g. "f >> g >> h",
// or "Id(n @ s)" for identities.
func (a Arrow) String() string {
	if len(a.gens) == 0 {
		return "Id(" + a.dom.String() + ")"
	}
	parts := make([]string, len(a.gens))
	for i, g := range a.gens {
		parts[i] = g.Name
	}
	return strings.Join(parts, " >> ")
}
