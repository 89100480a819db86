package functor

import (
	"github.com/dd0wney/cluso-semantics/pkg/cat"
	"github.com/dd0wney/cluso-semantics/pkg/diagram"
	"github.com/dd0wney/cluso-semantics/pkg/grammar"
	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

// TyMap assigns a type image to each base atom. Adjoint atoms map to the
// corresponding adjoint of the base image.
type TyMap map[pregroup.Ob]pregroup.Ty

// DiagramMap assigns a diagram image to each box, keyed canonically like
// TensorMap.
type DiagramMap struct {
	images map[string]*diagram.Diagram
}

// NewDiagramMap creates an empty box-to-diagram mapping.
func NewDiagramMap() *DiagramMap {
	return &DiagramMap{images: make(map[string]*diagram.Diagram)}
}

// Set registers the image of a box. Returns the map for chaining.
func (m *DiagramMap) Set(b diagram.Box, d *diagram.Diagram) *DiagramMap {
	m.images[b.Key()] = d
	return m
}

// Get looks up the image of a box.
func (m *DiagramMap) Get(b diagram.Box) (*diagram.Diagram, bool) {
	d, ok := m.images[b.Key()]
	return d, ok
}

// DiagramFunctor rewrites diagrams into diagrams over translated types:
// atoms map through TyMap (adjoints follow their base), boxes map through
// DiagramMap, and cups and caps map to the nested Cups and Caps of their
// translated types, so adjoint structure is preserved without any explicit
// registration. Immutable after construction.
type DiagramFunctor struct {
	obs map[pregroup.Ob]pregroup.Ty
	ars map[string]*diagram.Diagram
}

// NewDiagramFunctor builds a diagram-to-diagram functor.
func NewDiagramFunctor(obs TyMap, ars *DiagramMap) *DiagramFunctor {
	f := &DiagramFunctor{
		obs: make(map[pregroup.Ob]pregroup.Ty, len(obs)),
		ars: make(map[string]*diagram.Diagram),
	}
	for o, t := range obs {
		f.obs[o.Base()] = t
	}
	if ars != nil {
		for k, v := range ars.images {
			f.ars[k] = v
		}
	}
	return f
}

// ObjectImage returns the type image of an atom, winding the base image
// through as many adjoints as the atom carries.
func (f *DiagramFunctor) ObjectImage(o pregroup.Ob) (pregroup.Ty, error) {
	img, ok := f.obs[o.Base()]
	if !ok {
		return nil, &FunctorDomainError{Kind: "object", Name: o.String()}
	}
	for z := o.Z; z < 0; z++ {
		img = img.Left()
	}
	for z := 0; z < o.Z; z++ {
		img = img.Right()
	}
	return img, nil
}

// TypeImage translates a whole type atom by atom.
func (f *DiagramFunctor) TypeImage(t pregroup.Ty) (pregroup.Ty, error) {
	out := pregroup.Ty{}
	for _, o := range t {
		img, err := f.ObjectImage(o)
		if err != nil {
			return nil, err
		}
		out = out.Tensor(img)
	}
	return out, nil
}

// boxImage translates a single box into its image diagram.
func (f *DiagramFunctor) boxImage(b diagram.Box) (*diagram.Diagram, error) {
	switch b.Kind {
	case diagram.KindCup:
		x, err := f.ObjectImage(b.Dom[0])
		if err != nil {
			return nil, err
		}
		y, err := f.ObjectImage(b.Dom[1])
		if err != nil {
			return nil, err
		}
		return grammar.Cups(x, y)
	case diagram.KindCap:
		x, err := f.ObjectImage(b.Cod[0])
		if err != nil {
			return nil, err
		}
		y, err := f.ObjectImage(b.Cod[1])
		if err != nil {
			return nil, err
		}
		return grammar.Caps(x, y)
	}
	img, ok := f.ars[b.Key()]
	if !ok {
		return nil, &FunctorDomainError{Kind: "box", Name: b.Name}
	}
	wantDom, err := f.TypeImage(b.Dom)
	if err != nil {
		return nil, err
	}
	wantCod, err := f.TypeImage(b.Cod)
	if err != nil {
		return nil, err
	}
	if !img.Dom().Equal(wantDom) {
		return nil, cat.NewTypeMismatch("DiagramFunctor", wantDom, img.Dom())
	}
	if !img.Cod().Equal(wantCod) {
		return nil, cat.NewTypeMismatch("DiagramFunctor", wantCod, img.Cod())
	}
	return img, nil
}

// Apply rewrites the diagram layer by layer, tensoring each box image with
// identities on the translated pass-through wires and composing the layers in
// order. Composition, tensor and identities are preserved by construction.
func (f *DiagramFunctor) Apply(d *diagram.Diagram) (*diagram.Diagram, error) {
	domImg, err := f.TypeImage(d.Dom())
	if err != nil {
		return nil, err
	}
	out := diagram.Id(domImg)
	for i := 0; i < d.Len(); i++ {
		left, box, right := d.Layer(i)
		leftImg, err := f.TypeImage(left)
		if err != nil {
			return nil, err
		}
		rightImg, err := f.TypeImage(right)
		if err != nil {
			return nil, err
		}
		img, err := f.boxImage(box)
		if err != nil {
			return nil, err
		}
		layer := diagram.Id(leftImg).Tensor(img).Tensor(diagram.Id(rightImg))
		out, err = out.Then(layer)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
