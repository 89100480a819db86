// Package tensor implements the dense numeric backend the built-in functor
// evaluates into: tensor products, axis contraction, axis permutation and
// Kronecker-delta identities over flat float64 storage.
package tensor

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrShapeMismatch is the sentinel for any shape or axis disagreement.
var ErrShapeMismatch = errors.New("shape mismatch")

// Tensor is a dense multi-dimensional array in row-major order. A rank-0
// tensor is a scalar. Tensors are immutable once returned; every operation
// allocates fresh storage.
type Tensor struct {
	shape []int
	data  []float64
}

// New builds a tensor from a shape and flat row-major data.
func New(shape []int, data []float64) (*Tensor, error) {
	n := 1
	for _, d := range shape {
		if d < 1 {
			return nil, fmt.Errorf("%w: dimension %d is not positive", ErrShapeMismatch, d)
		}
		n *= d
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: shape %v needs %d entries, got %d", ErrShapeMismatch, shape, n, len(data))
	}
	s := make([]int, len(shape))
	copy(s, shape)
	d := make([]float64, len(data))
	copy(d, data)
	return &Tensor{shape: s, data: d}, nil
}

// Zeros returns a zero-filled tensor of the given shape.
func Zeros(shape ...int) *Tensor {
	n := 1
	for _, d := range shape {
		n *= d
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return &Tensor{shape: s, data: make([]float64, n)}
}

// Scalar returns the rank-0 tensor holding v.
func Scalar(v float64) *Tensor {
	return &Tensor{data: []float64{v}}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)
	return out
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int { return len(t.shape) }

// Size returns the total number of entries.
func (t *Tensor) Size() int { return len(t.data) }

// Data returns a copy of the flat row-major entries.
func (t *Tensor) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// At returns the entry at the given multi-index.
func (t *Tensor) At(idx ...int) float64 {
	return t.data[t.flat(idx)]
}

// flat converts a multi-index to a flat row-major offset.
func (t *Tensor) flat(idx []int) int {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("tensor: index rank %d against shape %v", len(idx), t.shape))
	}
	off := 0
	for i, d := range t.shape {
		off = off*d + idx[i]
	}
	return off
}

// unflat fills idx with the multi-index of the flat offset.
func (t *Tensor) unflat(off int, idx []int) {
	for i := len(t.shape) - 1; i >= 0; i-- {
		idx[i] = off % t.shape[i]
		off /= t.shape[i]
	}
}

// Identity returns the Kronecker-delta identity over the given dimensions:
// shape dims+dims, entry 1 exactly where the first half of the index equals
// the second half. Identity(nil) is the scalar 1, the identity on the unit.
func Identity(dims []int) *Tensor {
	out := Zeros(append(append([]int{}, dims...), dims...)...)
	n := 1
	for _, d := range dims {
		n *= d
	}
	idx := make([]int, len(dims))
	full := make([]int, 2*len(dims))
	for off := 0; off < n; off++ {
		rem := off
		for i := len(dims) - 1; i >= 0; i-- {
			idx[i] = rem % dims[i]
			rem /= dims[i]
		}
		copy(full, idx)
		copy(full[len(dims):], idx)
		out.data[out.flat(full)] = 1
	}
	return out
}

// Product returns the tensor (outer) product of a and b: shapes concatenate
// and entries multiply pairwise.
func Product(a, b *Tensor) *Tensor {
	shape := append(append([]int{}, a.shape...), b.shape...)
	data := make([]float64, len(a.data)*len(b.data))
	for i, av := range a.data {
		base := i * len(b.data)
		for j, bv := range b.data {
			data[base+j] = av * bv
		}
	}
	return &Tensor{shape: shape, data: data}
}

// Contract sums over a pair of equal-dimension axes, removing both. This is
// the "sum over shared index" primitive behind cup and cap semantics.
func Contract(t *Tensor, i, j int) (*Tensor, error) {
	if i == j || i < 0 || j < 0 || i >= len(t.shape) || j >= len(t.shape) {
		return nil, fmt.Errorf("%w: cannot contract axes %d and %d of rank %d", ErrShapeMismatch, i, j, len(t.shape))
	}
	if t.shape[i] != t.shape[j] {
		return nil, fmt.Errorf("%w: axes %d and %d have dimensions %d and %d", ErrShapeMismatch, i, j, t.shape[i], t.shape[j])
	}
	outShape := make([]int, 0, len(t.shape)-2)
	for k, d := range t.shape {
		if k != i && k != j {
			outShape = append(outShape, d)
		}
	}
	out := Zeros(outShape...)
	idx := make([]int, len(t.shape))
	outIdx := make([]int, 0, len(outShape))
	for off, v := range t.data {
		if v == 0 {
			continue
		}
		t.unflat(off, idx)
		if idx[i] != idx[j] {
			continue
		}
		outIdx = outIdx[:0]
		for k, x := range idx {
			if k != i && k != j {
				outIdx = append(outIdx, x)
			}
		}
		out.data[out.flat(outIdx)] += v
	}
	return out, nil
}

// Permute reorders axes: axis k of the result is axis perm[k] of t.
func Permute(t *Tensor, perm []int) (*Tensor, error) {
	if len(perm) != len(t.shape) {
		return nil, fmt.Errorf("%w: permutation %v against rank %d", ErrShapeMismatch, perm, len(t.shape))
	}
	seen := make([]bool, len(perm))
	shape := make([]int, len(perm))
	for k, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return nil, fmt.Errorf("%w: %v is not a permutation", ErrShapeMismatch, perm)
		}
		seen[p] = true
		shape[k] = t.shape[p]
	}
	out := Zeros(shape...)
	oldIdx := make([]int, len(t.shape))
	newIdx := make([]int, len(t.shape))
	for off, v := range t.data {
		t.unflat(off, oldIdx)
		for k, p := range perm {
			newIdx[k] = oldIdx[p]
		}
		out.data[out.flat(newIdx)] = v
	}
	return out, nil
}

// ApproxEqual reports whether a and b have the same shape and entries within
// eps of each other.
func (t *Tensor) ApproxEqual(u *Tensor, eps float64) bool {
	if len(t.shape) != len(u.shape) {
		return false
	}
	for i := range t.shape {
		if t.shape[i] != u.shape[i] {
			return false
		}
	}
	for i := range t.data {
		if math.Abs(t.data[i]-u.data[i]) > eps {
			return false
		}
	}
	return true
}

// String renders the shape and entries, e.g. "Tensor[2 1 2](0 1 1 0)".
func (t *Tensor) String() string {
	parts := make([]string, len(t.data))
	for i, v := range t.data {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("Tensor%v(%s)", t.shape, strings.Join(parts, " "))
}
