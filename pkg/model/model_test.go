package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-semantics/pkg/diagram"
	"github.com/dd0wney/cluso-semantics/pkg/grammar"
	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

const goodModel = `
sentence: s
objects:
  - name: n
    dim: 2
  - name: s
    dim: 1
words:
  - name: Alice
    type: n
    entries: [1, 0]
  - name: Bob
    type: n
    entries: [0, 1]
  - name: loves
    type: n.r @ s @ n.l
    entries: [0, 1, 1, 0]
`

func TestParseDecodesModel(t *testing.T) {
	def, err := Parse([]byte(goodModel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if def.Sentence != "s" {
		t.Errorf("sentence = %q, want s", def.Sentence)
	}
	if len(def.Objects) != 2 || len(def.Words) != 3 {
		t.Errorf("got %d objects and %d words", len(def.Objects), len(def.Words))
	}
	if def.Objects[0].Name != "n" || def.Objects[0].Dim != 2 {
		t.Errorf("first object = %+v", def.Objects[0])
	}
}

func TestParseRejectsInvalidModels(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"not yaml", "sentence: [unclosed"},
		{"missing sentence", "objects:\n  - {name: n, dim: 2}\nwords:\n  - {name: w, type: n, entries: [1, 0]}"},
		{"no objects", "sentence: s\nwords:\n  - {name: w, type: n, entries: [1, 0]}"},
		{"zero dim", "sentence: s\nobjects:\n  - {name: n, dim: 0}\nwords:\n  - {name: w, type: n, entries: [1]}"},
		{"no entries", "sentence: s\nobjects:\n  - {name: n, dim: 2}\nwords:\n  - {name: w, type: n}"},
		{"duplicate object", "sentence: s\nobjects:\n  - {name: n, dim: 2}\n  - {name: n, dim: 3}\nwords:\n  - {name: w, type: n, entries: [1, 0]}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.yaml)); err == nil {
				t.Error("invalid model should not parse")
			}
		})
	}
}

func TestLexiconBuildsFunctor(t *testing.T) {
	def, err := Parse([]byte(goodModel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	lex, err := def.Lexicon()
	if err != nil {
		t.Fatalf("Lexicon failed: %v", err)
	}

	if !lex.Sentence.Equal(pregroup.T("s")) {
		t.Errorf("sentence type = %v, want s", lex.Sentence)
	}
	loves, ok := lex.Words["loves"]
	if !ok {
		t.Fatal("lexicon should contain loves")
	}
	if loves.Kind != diagram.KindWord {
		t.Errorf("loves should be a word box, got %v", loves.Kind)
	}
	n := pregroup.NewOb("n")
	if !loves.Cod.Equal(pregroup.NewTy(n.Right(), pregroup.NewOb("s"), n.Left())) {
		t.Errorf("loves type = %v", loves.Cod)
	}

	// The functor carries every word's tensor at the declared shape.
	img, err := lex.Functor.BoxImage(loves)
	if err != nil {
		t.Fatalf("BoxImage failed: %v", err)
	}
	if got := img.Shape(); len(got) != 3 || got[0] != 2 || got[1] != 1 || got[2] != 2 {
		t.Errorf("loves image shape = %v, want [2 1 2]", got)
	}
}

// TestLexiconEvaluates runs a model definition end to end through a parse.
func TestLexiconEvaluates(t *testing.T) {
	def, err := Parse([]byte(goodModel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	lex, err := def.Lexicon()
	if err != nil {
		t.Fatalf("Lexicon failed: %v", err)
	}

	n := pregroup.NewOb("n")
	nt := pregroup.NewTy(n)
	leftCup, err := grammar.Cup(nt, pregroup.NewTy(n.Right()))
	if err != nil {
		t.Fatalf("Cup failed: %v", err)
	}
	rightCup, err := grammar.Cup(pregroup.NewTy(n.Left()), nt)
	if err != nil {
		t.Fatalf("Cup failed: %v", err)
	}
	reduction := diagram.FromBox(leftCup).
		Tensor(diagram.Wire(pregroup.NewOb("s"))).
		Tensor(diagram.FromBox(rightCup))

	words := []diagram.Box{lex.Words["Alice"], lex.Words["loves"], lex.Words["Bob"]}
	p, err := grammar.NewParse(lex.Sentence, words, reduction)
	if err != nil {
		t.Fatalf("NewParse failed: %v", err)
	}
	v, err := lex.Functor.Apply(p.Diagram)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if v.At(0) != 1 {
		t.Errorf("Alice loves Bob = %g, want 1", v.At(0))
	}
}

func TestLexiconChecksEntries(t *testing.T) {
	short := strings.Replace(goodModel, "entries: [0, 1, 1, 0]", "entries: [0, 1]", 1)
	def, err := Parse([]byte(short))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := def.Lexicon(); err == nil {
		t.Error("entry count not matching the type dimensions should fail")
	}

	undeclared := strings.Replace(goodModel, "type: n.r @ s @ n.l", "type: n.r @ q @ n.l", 1)
	def, err = Parse([]byte(undeclared))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := def.Lexicon(); err == nil {
		t.Error("undeclared object in a word type should fail")
	}
}

func TestParseTy(t *testing.T) {
	n, s := pregroup.NewOb("n"), pregroup.NewOb("s")

	got, err := ParseTy("n.r @ s @ n.l")
	if err != nil {
		t.Fatalf("ParseTy failed: %v", err)
	}
	if !got.Equal(pregroup.NewTy(n.Right(), s, n.Left())) {
		t.Errorf("ParseTy = %v", got)
	}

	got, err = ParseTy("n.r.r")
	if err != nil {
		t.Fatalf("ParseTy failed: %v", err)
	}
	if !got.Equal(pregroup.NewTy(n.Right().Right())) {
		t.Errorf("ParseTy(n.r.r) = %v", got)
	}

	got, err = ParseTy("")
	if err != nil {
		t.Fatalf("ParseTy failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty expression should parse to the unit, got %v", got)
	}

	for _, bad := range []string{"n @@ s", "n.x", ".l", "@"} {
		if _, err := ParseTy(bad); !errors.Is(err, ErrBadType) {
			t.Errorf("ParseTy(%q) should fail with ErrBadType, got %v", bad, err)
		}
	}
}
