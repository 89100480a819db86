package functor

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-semantics/pkg/cat"
	"github.com/dd0wney/cluso-semantics/pkg/diagram"
	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

func TestObjectImageWindsAdjoints(t *testing.T) {
	n := pregroup.NewOb("n")
	a, b := pregroup.NewOb("a"), pregroup.NewOb("b")
	ab := pregroup.NewTy(a, b)

	f := NewDiagramFunctor(TyMap{n: ab}, nil)

	img, err := f.ObjectImage(n)
	if err != nil {
		t.Fatalf("ObjectImage(n) failed: %v", err)
	}
	if !img.Equal(ab) {
		t.Errorf("ObjectImage(n) = %v, want a @ b", img)
	}

	// Left adjoints reverse and wind down.
	img, err = f.ObjectImage(n.Left())
	if err != nil {
		t.Fatalf("ObjectImage(n.l) failed: %v", err)
	}
	if !img.Equal(pregroup.NewTy(b.Left(), a.Left())) {
		t.Errorf("ObjectImage(n.l) = %v, want b.l @ a.l", img)
	}

	img, err = f.ObjectImage(n.Right().Right())
	if err != nil {
		t.Fatalf("ObjectImage(n.r.r) failed: %v", err)
	}
	if !img.Equal(ab.Right().Right()) {
		t.Errorf("ObjectImage(n.r.r) = %v, want (a @ b).r.r", img)
	}

	if _, err := f.ObjectImage(pregroup.NewOb("s")); !errors.Is(err, ErrNoImage) {
		t.Errorf("unmapped atom should fail with ErrNoImage, got %v", err)
	}
}

func TestDiagramApplyTranslatesBoxes(t *testing.T) {
	n := pregroup.NewOb("n")
	nt := pregroup.NewTy(n)
	m := pregroup.T("m")

	g := diagram.NewBox("g", nt, nt)
	gImg := diagram.FromBox(diagram.NewBox("G", m, m))

	f := NewDiagramFunctor(TyMap{n: m}, NewDiagramMap().Set(g, gImg))

	out, err := f.Apply(diagram.FromBox(g))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !out.Equal(gImg) {
		t.Errorf("Apply(g) = %v, want %v", out, gImg)
	}

	// Identities translate to identities on the image type.
	id, err := f.Apply(diagram.Id(nt))
	if err != nil {
		t.Fatalf("Apply(Id) failed: %v", err)
	}
	if !id.Equal(diagram.Id(m)) {
		t.Errorf("Apply(Id(n)) = %v, want Id(m)", id)
	}
}

// TestDiagramApplyExpandsCups maps an atom to a composite type and checks
// that a single cup translates into the nested cups of the image, with no
// explicit registration.
func TestDiagramApplyExpandsCups(t *testing.T) {
	n := pregroup.NewOb("n")
	a, b := pregroup.NewOb("a"), pregroup.NewOb("b")
	ab := pregroup.NewTy(a, b)

	f := NewDiagramFunctor(TyMap{n: ab}, nil)

	cup := diagram.Box{
		Name: "Cup(n, n.r)",
		Dom:  pregroup.NewTy(n, n.Right()),
		Cod:  pregroup.Ty{},
		Kind: diagram.KindCup,
	}
	out, err := f.Apply(diagram.FromBox(cup))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !out.Dom().Equal(ab.Tensor(ab.Right())) {
		t.Errorf("translated cup domain = %v, want a @ b @ b.r @ a.r", out.Dom())
	}
	if len(out.Cod()) != 0 {
		t.Errorf("translated cup codomain = %v, want the unit", out.Cod())
	}
	if out.Len() != 2 {
		t.Errorf("cup over a 2-atom image should expand to 2 cups, got %d", out.Len())
	}
	for _, bx := range out.Boxes() {
		if bx.Kind != diagram.KindCup {
			t.Errorf("expansion should contain only cups, found %s", bx.Name)
		}
	}
}

func TestDiagramApplyChecksImageSignatures(t *testing.T) {
	n := pregroup.NewOb("n")
	nt := pregroup.NewTy(n)
	m := pregroup.T("m")

	g := diagram.NewBox("g", nt, nt)

	// The registered image ends at the wrong type.
	badImg := diagram.FromBox(diagram.NewBox("G", m, m.Tensor(m)))
	f := NewDiagramFunctor(TyMap{n: m}, NewDiagramMap().Set(g, badImg))

	_, err := f.Apply(diagram.FromBox(g))
	if !errors.Is(err, cat.ErrTypeMismatch) {
		t.Errorf("image with wrong signature should fail with ErrTypeMismatch, got %v", err)
	}

	// No image at all.
	empty := NewDiagramFunctor(TyMap{n: m}, nil)
	_, err = empty.Apply(diagram.FromBox(g))
	if !errors.Is(err, ErrNoImage) {
		t.Errorf("unmapped box should fail with ErrNoImage, got %v", err)
	}
}
