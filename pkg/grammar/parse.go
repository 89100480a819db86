package grammar

import (
	"fmt"

	"github.com/dd0wney/cluso-semantics/pkg/cat"
	"github.com/dd0wney/cluso-semantics/pkg/diagram"
	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

// Parse is a complete grammatical reduction: the tensor of the sentence's
// word boxes followed by a reduction of cups and caps that telescopes the
// word types down to exactly the sentence type. A Parse either constructs
// well-typed or not at all; once built it is terminal and immutable.
type Parse struct {
	*diagram.Diagram
	words    []diagram.Box
	sentence pregroup.Ty
}

// NewParse validates and assembles a parse. Every box in words must be a
// Word; every box in reduction must be a cup or a cap; the reduction must
// take the tensored word types to the sentence type. Violations surface as
// ErrNoWords, ErrNotWord, ErrNotReduction, or a TypeMismatchError naming the
// offending sequences; no partially built parse is ever returned.
func NewParse(sentence pregroup.Ty, words []diagram.Box, reduction *diagram.Diagram) (*Parse, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("parse: %w", ErrNoWords)
	}
	derivation := diagram.Id(pregroup.Ty{})
	for _, w := range words {
		if w.Kind != diagram.KindWord {
			return nil, fmt.Errorf("parse: %w: %s", ErrNotWord, w.Name)
		}
		derivation = derivation.Tensor(diagram.FromBox(w))
	}
	for _, b := range reduction.Boxes() {
		if b.Kind != diagram.KindCup && b.Kind != diagram.KindCap {
			return nil, fmt.Errorf("parse: %w: %s", ErrNotReduction, b.Name)
		}
	}
	grounded, err := derivation.Then(reduction)
	if err != nil {
		return nil, err
	}
	if !grounded.Cod().Equal(sentence) {
		return nil, cat.NewTypeMismatch("Parse", sentence, grounded.Cod())
	}
	ws := make([]diagram.Box, len(words))
	copy(ws, words)
	return &Parse{Diagram: grounded, words: ws, sentence: sentence}, nil
}

// Words returns the parse's word boxes in sentence order.
func (p *Parse) Words() []diagram.Box {
	out := make([]diagram.Box, len(p.words))
	copy(out, p.words)
	return out
}

// Sentence returns the declared sentence type.
func (p *Parse) Sentence() pregroup.Ty {
	return p.sentence
}
