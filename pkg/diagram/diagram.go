package diagram

import (
	"strings"

	"github.com/dd0wney/cluso-semantics/pkg/cat"
	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

// Kind discriminates how a box behaves under grammatical reduction and
// functor application. The engine traverses all kinds uniformly; kind-specific
// behavior lives in the functor's generator mapping.
type Kind int

const (
	// KindBox is a plain generator.
	KindBox Kind = iota
	// KindWord is a lexical item: empty domain, codomain its grammatical type.
	KindWord
	// KindCup cancels an adjacent adjoint pair down to the unit.
	KindCup
	// KindCap introduces an adjoint pair from the unit.
	KindCap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindWord:
		return "word"
	case KindCup:
		return "cup"
	case KindCap:
		return "cap"
	default:
		return "unknown"
	}
}

// Box is a generator occupying one layer of a diagram. Boxes are immutable
// value types.
type Box struct {
	Name string
	Dom  pregroup.Ty
	Cod  pregroup.Ty
	Kind Kind
}

// NewBox creates a plain generator box.
func NewBox(name string, dom, cod pregroup.Ty) Box {
	return Box{Name: name, Dom: dom, Cod: cod, Kind: KindBox}
}

// Generator converts the box to its free-category generator.
func (b Box) Generator() cat.Generator {
	return cat.NewGenerator(b.Name, b.Dom, b.Cod)
}

// Key returns a canonical string identifying the box by name, domain and
// codomain, usable as a map key.
func (b Box) Key() string {
	return b.Generator().Key()
}

// Equal reports structural equality of boxes: name, domain, codomain and kind.
func (b Box) Equal(c Box) bool {
	return b.Name == c.Name && b.Kind == c.Kind && b.Dom.Equal(c.Dom) && b.Cod.Equal(c.Cod)
}

// String renders the box by name.
func (b Box) String() string {
	return b.Name
}

// Diagram is a morphism in the free monoidal category, stored in the
// boxes-and-offsets normal representation: box i occupies layer i and acts on
// the wires starting at offsets[i], with identity wires passing through on
// either side. Diagrams are immutable; every operation returns a fresh value.
type Diagram struct {
	dom     pregroup.Ty
	cod     pregroup.Ty
	boxes   []Box
	offsets []int
}

// New builds a diagram and validates every layer: at layer k the wires
// left of the box, the box domain, and the wires right of the box must
// concatenate to exactly the type feeding that layer, and the final type must
// equal cod. Returns a TypeMismatchError on the first violating layer.
func New(dom, cod pregroup.Ty, boxes []Box, offsets []int) (*Diagram, error) {
	if len(boxes) != len(offsets) {
		return nil, &LayoutError{Boxes: len(boxes), Offsets: len(offsets)}
	}
	cur := dom
	for i, b := range boxes {
		off := offsets[i]
		if off < 0 || off+len(b.Dom) > len(cur) {
			return nil, &LayoutError{Boxes: len(boxes), Offsets: len(offsets), Layer: i, Offset: off}
		}
		if !pregroup.Ty(cur[off : off+len(b.Dom)]).Equal(b.Dom) {
			return nil, cat.NewTypeMismatch("New", b.Dom, pregroup.Ty(cur[off:off+len(b.Dom)]))
		}
		cur = substitute(cur, off, len(b.Dom), b.Cod)
	}
	if !cur.Equal(cod) {
		return nil, cat.NewTypeMismatch("New", cod, cur)
	}
	bs := make([]Box, len(boxes))
	copy(bs, boxes)
	os := make([]int, len(offsets))
	copy(os, offsets)
	return &Diagram{dom: dom, cod: cod, boxes: bs, offsets: os}, nil
}

// substitute replaces cur[off:off+n] with repl, returning a fresh type.
func substitute(cur pregroup.Ty, off, n int, repl pregroup.Ty) pregroup.Ty {
	out := make(pregroup.Ty, 0, len(cur)-n+len(repl))
	out = append(out, cur[:off]...)
	out = append(out, repl...)
	out = append(out, cur[off+n:]...)
	return out
}

// Id returns the identity diagram over t.
func Id(t pregroup.Ty) *Diagram {
	return &Diagram{dom: t, cod: t}
}

// Wire returns the identity diagram on a single atom, an ergonomic helper
// for tensoring pass-through wires between boxes.
func Wire(o pregroup.Ob) *Diagram {
	t := pregroup.NewTy(o)
	return &Diagram{dom: t, cod: t}
}

// FromBox lifts a box into the one-layer diagram containing only that box.
func FromBox(b Box) *Diagram {
	return &Diagram{dom: b.Dom, cod: b.Cod, boxes: []Box{b}, offsets: []int{0}}
}

// Dom returns the diagram's domain.
func (d *Diagram) Dom() pregroup.Ty { return d.dom }

// Cod returns the diagram's codomain.
func (d *Diagram) Cod() pregroup.Ty { return d.cod }

// Len returns the number of layers.
func (d *Diagram) Len() int { return len(d.boxes) }

// Boxes returns a copy of the boxes in left-to-right, top-to-bottom order.
func (d *Diagram) Boxes() []Box {
	out := make([]Box, len(d.boxes))
	copy(out, d.boxes)
	return out
}

// Offsets returns a copy of the per-layer wire offsets.
func (d *Diagram) Offsets() []int {
	out := make([]int, len(d.offsets))
	copy(out, d.offsets)
	return out
}

// Box returns the box at layer i.
func (d *Diagram) Box(i int) Box { return d.boxes[i] }

// Offset returns the offset at layer i.
func (d *Diagram) Offset(i int) int { return d.offsets[i] }

// LayerTypes returns the type at every layer boundary, from the domain
// (index 0) down to the codomain (index Len()). The evaluator walks these.
func (d *Diagram) LayerTypes() []pregroup.Ty {
	out := make([]pregroup.Ty, 0, len(d.boxes)+1)
	cur := d.dom
	out = append(out, cur)
	for i, b := range d.boxes {
		cur = substitute(cur, d.offsets[i], len(b.Dom), b.Cod)
		out = append(out, cur)
	}
	return out
}

// Layer returns the decomposition of layer i into the identity wires left of
// the box, the box itself, and the identity wires right of it.
func (d *Diagram) Layer(i int) (left pregroup.Ty, box Box, right pregroup.Ty) {
	cur := d.dom
	for k := 0; k < i; k++ {
		cur = substitute(cur, d.offsets[k], len(d.boxes[k].Dom), d.boxes[k].Cod)
	}
	box = d.boxes[i]
	off := d.offsets[i]
	left = pregroup.NewTy(cur[:off]...)
	right = pregroup.NewTy(cur[off+len(box.Dom):]...)
	return left, box, right
}

// Arrow flattens the diagram into a free-category arrow whose generators are
// whole layers: each generator spans the full width of its layer, so adjacent
// generators chain by construction.
func (d *Diagram) Arrow() cat.Arrow {
	if len(d.boxes) == 0 {
		return cat.Identity(d.dom)
	}
	types := d.LayerTypes()
	gens := make([]cat.Generator, len(d.boxes))
	for i, b := range d.boxes {
		gens[i] = cat.NewGenerator(b.Name, types[i], types[i+1])
	}
	a, err := cat.NewArrow(gens...)
	if err != nil {
		// Layer types chain by construction; a failure here is a bug.
		panic(err)
	}
	return a
}

// Then stacks e below d, requiring cod(d) == dom(e) as an ordered sequence.
// No implicit permutation is performed: types that match only after
// reordering are a mismatch.
func (d *Diagram) Then(e *Diagram) (*Diagram, error) {
	if !d.cod.Equal(e.dom) {
		return nil, cat.NewTypeMismatch("Then", d.cod, e.dom)
	}
	boxes := make([]Box, 0, len(d.boxes)+len(e.boxes))
	boxes = append(boxes, d.boxes...)
	boxes = append(boxes, e.boxes...)
	offsets := make([]int, 0, len(d.offsets)+len(e.offsets))
	offsets = append(offsets, d.offsets...)
	offsets = append(offsets, e.offsets...)
	return &Diagram{dom: d.dom, cod: e.cod, boxes: boxes, offsets: offsets}, nil
}

// Tensor places e to the right of d: domains and codomains concatenate and
// e's boxes are shifted past d's output wires. Tensoring is always
// well-typed.
func (d *Diagram) Tensor(e *Diagram) *Diagram {
	boxes := make([]Box, 0, len(d.boxes)+len(e.boxes))
	boxes = append(boxes, d.boxes...)
	boxes = append(boxes, e.boxes...)
	offsets := make([]int, 0, len(d.offsets)+len(e.offsets))
	offsets = append(offsets, d.offsets...)
	shift := len(d.cod)
	for _, off := range e.offsets {
		offsets = append(offsets, off+shift)
	}
	return &Diagram{
		dom:     d.dom.Tensor(e.dom),
		cod:     d.cod.Tensor(e.cod),
		boxes:   boxes,
		offsets: offsets,
	}
}

// TensorAll folds Tensor over a sequence of diagrams, unit first.
func TensorAll(ds ...*Diagram) *Diagram {
	out := Id(pregroup.Ty{})
	for _, d := range ds {
		out = out.Tensor(d)
	}
	return out
}

// Equal reports structural equality: same domain, codomain, boxes and
// offsets. No normalization is applied.
func (d *Diagram) Equal(e *Diagram) bool {
	if !d.dom.Equal(e.dom) || !d.cod.Equal(e.cod) || len(d.boxes) != len(e.boxes) {
		return false
	}
	for i := range d.boxes {
		if d.offsets[i] != e.offsets[i] || !d.boxes[i].Equal(e.boxes[i]) {
			return false
		}
	}
	return true
}

// String renders the diagram layer by layer, e.g.
// "alice @ Id(n.r @ s @ n.l @ n) >> Cup(n, n.r) @ Id(s @ n.l @ n)".
func (d *Diagram) String() string {
	if len(d.boxes) == 0 {
		return "Id(" + d.dom.String() + ")"
	}
	layers := make([]string, len(d.boxes))
	for i := range d.boxes {
		left, box, right := d.Layer(i)
		var parts []string
		if len(left) > 0 {
			parts = append(parts, "Id("+left.String()+")")
		}
		parts = append(parts, box.Name)
		if len(right) > 0 {
			parts = append(parts, "Id("+right.String()+")")
		}
		layers[i] = strings.Join(parts, " @ ")
	}
	return strings.Join(layers, " >> ")
}
