// Package grammar builds pregroup grammatical derivations as diagrams:
// words are states, cups and caps cancel adjacent adjoint types, and a Parse
// is a complete reduction of a sentence down to its sentence type.
package grammar

import (
	"fmt"

	"github.com/dd0wney/cluso-semantics/pkg/diagram"
	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

// Word creates a lexical box: empty domain, codomain the word's grammatical
// type as assigned by the lexicon (e.g. n.r @ s @ n.l for a transitive verb).
func Word(name string, t pregroup.Ty) diagram.Box {
	return diagram.Box{Name: name, Dom: pregroup.Ty{}, Cod: t, Kind: diagram.KindWord}
}

// Cup creates the box cancelling the adjacent adjoint pair x @ y down to the
// unit. It is well-typed only between single atoms where y is the right
// adjoint of x, which covers both Cup(n, n.r) and Cup(n.l, n). Anything else
// is an AdjointError.
func Cup(x, y pregroup.Ty) (diagram.Box, error) {
	if len(x) != 1 || len(y) != 1 {
		return diagram.Box{}, NewAdjointError("Cup", x, y)
	}
	if x[0].Right() != y[0] {
		return diagram.Box{}, NewAdjointError("Cup", x, y)
	}
	return diagram.Box{
		Name: fmt.Sprintf("Cup(%s, %s)", x, y),
		Dom:  x.Tensor(y),
		Cod:  pregroup.Ty{},
		Kind: diagram.KindCup,
	}, nil
}

// Cap creates the box introducing the adjoint pair x @ y from the unit. It is
// well-typed only between single atoms where x is the right adjoint of y,
// covering Cap(n, n.l) and Cap(n.r, n).
func Cap(x, y pregroup.Ty) (diagram.Box, error) {
	if len(x) != 1 || len(y) != 1 {
		return diagram.Box{}, NewAdjointError("Cap", x, y)
	}
	if y[0].Right() != x[0] {
		return diagram.Box{}, NewAdjointError("Cap", x, y)
	}
	return diagram.Box{
		Name: fmt.Sprintf("Cap(%s, %s)", x, y),
		Dom:  pregroup.Ty{},
		Cod:  x.Tensor(y),
		Kind: diagram.KindCap,
	}, nil
}

// Cups builds the nested cup diagram witnessing the adjointness of composite
// types, telescoping x @ y down to the unit from the inside out:
//
//	Cups(a @ b, (a @ b).Right()) == Id(a) @ Cup(b, b.r) @ Id(a.r) >> Cup(a, a.r)
func Cups(x, y pregroup.Ty) (*diagram.Diagram, error) {
	if len(x) != len(y) {
		return nil, NewAdjointError("Cups", x, y)
	}
	out := diagram.Id(x.Tensor(y))
	for i := 0; i < len(x); i++ {
		j := len(x) - i - 1
		cup, err := Cup(pregroup.NewTy(x[j]), pregroup.NewTy(y[i]))
		if err != nil {
			return nil, err
		}
		layer := diagram.Id(pregroup.NewTy(x[:j]...)).
			Tensor(diagram.FromBox(cup)).
			Tensor(diagram.Id(pregroup.NewTy(y[i+1:]...)))
		out, err = out.Then(layer)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Caps builds the nested cap diagram introducing x @ y from the unit, the
// upside-down mirror of Cups:
//
//	Caps(a @ b, (a @ b).Left()) == Cap(a, a.l) >> Id(a) @ Cap(b, b.l) @ Id(a.l)
func Caps(x, y pregroup.Ty) (*diagram.Diagram, error) {
	if len(x) != len(y) {
		return nil, NewAdjointError("Caps", x, y)
	}
	out := diagram.Id(x.Tensor(y))
	for i := 0; i < len(x); i++ {
		j := len(x) - i - 1
		cap, err := Cap(pregroup.NewTy(x[j]), pregroup.NewTy(y[i]))
		if err != nil {
			return nil, err
		}
		layer := diagram.Id(pregroup.NewTy(x[:j]...)).
			Tensor(diagram.FromBox(cap)).
			Tensor(diagram.Id(pregroup.NewTy(y[i+1:]...)))
		out, err = layer.Then(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// TransposeR bends a diagram around a right adjoint: for d mapping x to y the
// result maps y.Right() to x.Right(), using a cap above and a cup below. The
// transpose is contravariant, like the matrix transpose it generalizes.
func TransposeR(d *diagram.Diagram) (*diagram.Diagram, error) {
	domR, codR := d.Dom().Right(), d.Cod().Right()
	caps, err := Caps(domR, d.Dom())
	if err != nil {
		return nil, err
	}
	cups, err := Cups(d.Cod(), codR)
	if err != nil {
		return nil, err
	}
	top := caps.Tensor(diagram.Id(codR))
	middle := diagram.Id(domR).Tensor(d).Tensor(diagram.Id(codR))
	bottom := diagram.Id(domR).Tensor(cups)
	out, err := top.Then(middle)
	if err != nil {
		return nil, err
	}
	return out.Then(bottom)
}

// TransposeL is the left-adjoint mirror of TransposeR: for d mapping x to y
// the result maps y.Left() to x.Left().
func TransposeL(d *diagram.Diagram) (*diagram.Diagram, error) {
	domL, codL := d.Dom().Left(), d.Cod().Left()
	caps, err := Caps(d.Dom(), domL)
	if err != nil {
		return nil, err
	}
	cups, err := Cups(codL, d.Cod())
	if err != nil {
		return nil, err
	}
	top := diagram.Id(codL).Tensor(caps)
	middle := diagram.Id(codL).Tensor(d).Tensor(diagram.Id(domL))
	bottom := cups.Tensor(diagram.Id(domL))
	out, err := top.Then(middle)
	if err != nil {
		return nil, err
	}
	return out.Then(bottom)
}
