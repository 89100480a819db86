// Package functor maps free-category diagrams into semantic categories while
// preserving composition, tensor and identities: TensorFunctor evaluates into
// numeric tensors, DiagramFunctor rewrites into other diagrams.
package functor

import (
	"fmt"

	"github.com/dd0wney/cluso-semantics/pkg/diagram"
	"github.com/dd0wney/cluso-semantics/pkg/logging"
	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
	"github.com/dd0wney/cluso-semantics/pkg/tensor"
)

// ObjectMap assigns a dimension to each atomic object. Adjoints share the
// dimension of their base atom, so only base atoms need entries.
type ObjectMap map[pregroup.Ob]int

// TensorMap assigns a tensor image to each box, keyed by the box's canonical
// key so that two boxes agreeing on name, domain and codomain share an image.
type TensorMap struct {
	images map[string]*tensor.Tensor
}

// NewTensorMap creates an empty box-to-tensor mapping.
func NewTensorMap() *TensorMap {
	return &TensorMap{images: make(map[string]*tensor.Tensor)}
}

// Set registers the image of a box. Returns the map for chaining.
func (m *TensorMap) Set(b diagram.Box, v *tensor.Tensor) *TensorMap {
	m.images[b.Key()] = v
	return m
}

// Get looks up the image of a box.
func (m *TensorMap) Get(b diagram.Box) (*tensor.Tensor, bool) {
	v, ok := m.images[b.Key()]
	return v, ok
}

// TensorFunctor evaluates diagrams into dense tensors. The image of a box
// with domain D and codomain C is a tensor of shape dims(D)+dims(C); cups and
// caps default to Kronecker deltas over the cancelled pair unless an explicit
// image is registered. The functor copies its maps at construction and is
// immutable afterwards, so it may be shared across goroutines.
type TensorFunctor struct {
	obs    map[pregroup.Ob]int
	ars    map[string]*tensor.Tensor
	logger *logging.Logger
}

// TensorOption configures a TensorFunctor.
type TensorOption func(*TensorFunctor)

// WithLogger makes the evaluator emit a debug entry per layer. The default is
// no logging at all.
func WithLogger(l *logging.Logger) TensorOption {
	return func(f *TensorFunctor) { f.logger = l }
}

// NewTensorFunctor builds a functor from an object mapping and a box mapping.
func NewTensorFunctor(obs ObjectMap, ars *TensorMap, opts ...TensorOption) *TensorFunctor {
	f := &TensorFunctor{
		obs: make(map[pregroup.Ob]int, len(obs)),
		ars: make(map[string]*tensor.Tensor),
	}
	for o, dim := range obs {
		f.obs[o.Base()] = dim
	}
	if ars != nil {
		for k, v := range ars.images {
			f.ars[k] = v
		}
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dim returns the dimension of an atomic object; adjoints map to the
// dimension of their base atom.
func (f *TensorFunctor) Dim(o pregroup.Ob) (int, error) {
	dim, ok := f.obs[o.Base()]
	if !ok {
		return 0, &FunctorDomainError{Kind: "object", Name: o.String()}
	}
	return dim, nil
}

// Dims returns the per-axis dimensions of a type.
func (f *TensorFunctor) Dims(t pregroup.Ty) ([]int, error) {
	out := make([]int, len(t))
	for i, o := range t {
		dim, err := f.Dim(o)
		if err != nil {
			return nil, err
		}
		out[i] = dim
	}
	return out, nil
}

// BoxImage returns the tensor image of a box, checking its shape against the
// box signature. Cups and caps fall back to the delta contraction when no
// explicit image is registered.
func (f *TensorFunctor) BoxImage(b diagram.Box) (*tensor.Tensor, error) {
	domDims, err := f.Dims(b.Dom)
	if err != nil {
		return nil, err
	}
	codDims, err := f.Dims(b.Cod)
	if err != nil {
		return nil, err
	}
	want := append(append([]int{}, domDims...), codDims...)

	img, ok := f.ars[b.Key()]
	if !ok {
		switch {
		case b.Kind == diagram.KindCup && len(domDims) == 2:
			img = tensor.Identity(domDims[:1])
		case b.Kind == diagram.KindCap && len(codDims) == 2:
			img = tensor.Identity(codDims[:1])
		default:
			return nil, &FunctorDomainError{Kind: "box", Name: b.Name}
		}
	}
	got := img.Shape()
	if len(got) != len(want) {
		return nil, fmt.Errorf("box %s: %w: image shape %v, want %v", b.Name, tensor.ErrShapeMismatch, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			return nil, fmt.Errorf("box %s: %w: image shape %v, want %v", b.Name, tensor.ErrShapeMismatch, got, want)
		}
	}
	return img, nil
}

// Apply evaluates the diagram layer by layer: the running value starts as the
// identity on the domain axes, and each layer contributes the image of its
// box sandwiched between identities on the pass-through wires, contracted
// against the running value's output axes. The result has shape
// dims(dom)+dims(cod) exactly.
func (f *TensorFunctor) Apply(d *diagram.Diagram) (*tensor.Tensor, error) {
	domDims, err := f.Dims(d.Dom())
	if err != nil {
		return nil, err
	}
	cur := tensor.Identity(domDims)
	curCod := len(domDims)

	for i := 0; i < d.Len(); i++ {
		left, box, right := d.Layer(i)
		leftDims, err := f.Dims(left)
		if err != nil {
			return nil, err
		}
		rightDims, err := f.Dims(right)
		if err != nil {
			return nil, err
		}
		img, err := f.BoxImage(box)
		if err != nil {
			return nil, err
		}

		layer := tensor.Identity(leftDims)
		layerDom := len(leftDims)
		layerCod := len(leftDims)
		layer, err = tensorMorphism(layer, layerDom, layerCod, img, len(box.Dom), len(box.Cod))
		if err != nil {
			return nil, err
		}
		layerDom += len(box.Dom)
		layerCod += len(box.Cod)
		idRight := tensor.Identity(rightDims)
		layer, err = tensorMorphism(layer, layerDom, layerCod, idRight, len(rightDims), len(rightDims))
		if err != nil {
			return nil, err
		}
		layerCod += len(rightDims)

		cur, err = composeMorphism(cur, len(domDims), curCod, layer)
		if err != nil {
			return nil, err
		}
		curCod = layerCod

		if f.logger != nil {
			f.logger.Debug("layer applied",
				logging.F("layer", i),
				logging.F("box", box.Name),
				logging.F("kind", box.Kind.String()),
				logging.F("shape", cur.Shape()))
		}
	}
	return cur, nil
}

// tensorMorphism places two morphism tensors side by side: the product of
// a (aDom+aCod axes) and b (bDom+bCod axes) with axes interleaved to
// (aDom, bDom, aCod, bCod).
func tensorMorphism(a *tensor.Tensor, aDom, aCod int, b *tensor.Tensor, bDom, bCod int) (*tensor.Tensor, error) {
	p := tensor.Product(a, b)
	perm := make([]int, 0, aDom+aCod+bDom+bCod)
	for k := 0; k < aDom; k++ {
		perm = append(perm, k)
	}
	for k := 0; k < bDom; k++ {
		perm = append(perm, aDom+aCod+k)
	}
	for k := 0; k < aCod; k++ {
		perm = append(perm, aDom+k)
	}
	for k := 0; k < bCod; k++ {
		perm = append(perm, aDom+aCod+bDom+k)
	}
	return tensor.Permute(p, perm)
}

// composeMorphism contracts the k codomain axes of f (which has m domain
// axes) against the first k axes of g, yielding f then g.
func composeMorphism(f *tensor.Tensor, m, k int, g *tensor.Tensor) (*tensor.Tensor, error) {
	cur := tensor.Product(f, g)
	var err error
	for i := 0; i < k; i++ {
		cur, err = tensor.Contract(cur, m, m+k-i)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
