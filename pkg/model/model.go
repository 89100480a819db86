// Package model decodes semantic model definitions: named objects with
// dimensions and words with pregroup types and tensor entries. It turns a
// definition into a lexicon of word boxes plus a ready tensor functor.
// Definitions arrive as bytes; where they are stored is the caller's concern.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-semantics/pkg/diagram"
	"github.com/dd0wney/cluso-semantics/pkg/functor"
	"github.com/dd0wney/cluso-semantics/pkg/grammar"
	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
	"github.com/dd0wney/cluso-semantics/pkg/tensor"
)

// validate is a singleton validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ObjectDef declares an atomic object and its semantic dimension.
type ObjectDef struct {
	Name string `yaml:"name" validate:"required"`
	Dim  int    `yaml:"dim" validate:"required,min=1"`
}

// WordDef declares a lexical item: its pregroup type expression (e.g.
// "n.r @ s @ n.l") and the flat row-major entries of its meaning tensor.
type WordDef struct {
	Name    string    `yaml:"name" validate:"required"`
	Type    string    `yaml:"type" validate:"required"`
	Entries []float64 `yaml:"entries" validate:"required,min=1"`
}

// Definition is a complete YAML-decodable semantic model.
type Definition struct {
	Sentence string      `yaml:"sentence" validate:"required"`
	Objects  []ObjectDef `yaml:"objects" validate:"required,min=1,dive"`
	Words    []WordDef   `yaml:"words" validate:"required,min=1,dive"`
}

// Parse decodes and validates a model definition from YAML bytes.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("model: decode: %w", err)
	}
	if err := validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("model: validate: %w", err)
	}
	seen := make(map[string]bool, len(def.Objects))
	for _, o := range def.Objects {
		if seen[o.Name] {
			return nil, fmt.Errorf("model: duplicate object %q", o.Name)
		}
		seen[o.Name] = true
	}
	return &def, nil
}

// Lexicon is the usable form of a definition: word boxes by name, the
// sentence type, and a functor carrying every word's meaning tensor.
type Lexicon struct {
	Sentence pregroup.Ty
	Words    map[string]diagram.Box
	Functor  *functor.TensorFunctor
}

// Lexicon builds word boxes and the tensor functor from the definition,
// checking that every word's entries match the dimensions of its type.
func (def *Definition) Lexicon() (*Lexicon, error) {
	obs := functor.ObjectMap{}
	dims := make(map[string]int, len(def.Objects))
	for _, o := range def.Objects {
		obs[pregroup.NewOb(o.Name)] = o.Dim
		dims[o.Name] = o.Dim
	}

	sentence, err := ParseTy(def.Sentence)
	if err != nil {
		return nil, err
	}

	words := make(map[string]diagram.Box, len(def.Words))
	ars := functor.NewTensorMap()
	for _, w := range def.Words {
		if _, dup := words[w.Name]; dup {
			return nil, fmt.Errorf("model: duplicate word %q", w.Name)
		}
		t, err := ParseTy(w.Type)
		if err != nil {
			return nil, fmt.Errorf("model: word %q: %w", w.Name, err)
		}
		shape := make([]int, len(t))
		size := 1
		for i, o := range t {
			d, ok := dims[o.Name]
			if !ok {
				return nil, fmt.Errorf("model: word %q uses undeclared object %q", w.Name, o.Name)
			}
			shape[i] = d
			size *= d
		}
		if len(w.Entries) != size {
			return nil, fmt.Errorf("model: word %q: type %s needs %d entries, got %d",
				w.Name, t, size, len(w.Entries))
		}
		value, err := tensor.New(shape, w.Entries)
		if err != nil {
			return nil, fmt.Errorf("model: word %q: %w", w.Name, err)
		}
		box := grammar.Word(w.Name, t)
		words[w.Name] = box
		ars.Set(box, value)
	}

	return &Lexicon{
		Sentence: sentence,
		Words:    words,
		Functor:  functor.NewTensorFunctor(obs, ars),
	}, nil
}

// ErrBadType is the sentinel for an unparseable pregroup type expression.
var ErrBadType = errors.New("bad type expression")

// ParseTy parses a pregroup type expression: atom names joined by "@", each
// optionally suffixed with iterated ".l"/".r" adjoints, e.g. "n.r @ s @ n.l".
// The empty string parses to the unit type.
func ParseTy(s string) (pregroup.Ty, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return pregroup.Ty{}, nil
	}
	var out pregroup.Ty
	for _, tok := range strings.Split(s, "@") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("%w: empty atom in %q", ErrBadType, s)
		}
		parts := strings.Split(tok, ".")
		if parts[0] == "" {
			return nil, fmt.Errorf("%w: missing atom name in %q", ErrBadType, tok)
		}
		ob := pregroup.NewOb(parts[0])
		for _, suffix := range parts[1:] {
			switch suffix {
			case "l":
				ob = ob.Left()
			case "r":
				ob = ob.Right()
			default:
				return nil, fmt.Errorf("%w: unknown adjoint suffix %q in %q", ErrBadType, suffix, tok)
			}
		}
		out = append(out, ob)
	}
	return out, nil
}
