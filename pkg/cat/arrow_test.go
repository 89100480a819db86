package cat

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

func TestGeneratorEquality(t *testing.T) {
	x, y := pregroup.T("x"), pregroup.T("y")

	f := NewGenerator("f", x, y)
	if !f.Equal(NewGenerator("f", x, y)) {
		t.Error("generators with same name, dom and cod should be equal")
	}
	if f.Equal(NewGenerator("g", x, y)) {
		t.Error("generators with different names should not be equal")
	}
	if f.Equal(NewGenerator("f", y, x)) {
		t.Error("generators with different signatures should not be equal")
	}
}

func TestComposeChecksTypes(t *testing.T) {
	x, y, z := pregroup.T("x"), pregroup.T("y"), pregroup.T("z")
	f := Lift(NewGenerator("f", x, y))
	g := Lift(NewGenerator("g", y, z))

	fg, err := Compose(f, g)
	if err != nil {
		t.Fatalf("Compose(f, g) failed: %v", err)
	}
	if !fg.Dom().Equal(x) || !fg.Cod().Equal(z) {
		t.Errorf("Compose(f, g): got %v -> %v, want x -> z", fg.Dom(), fg.Cod())
	}
	if fg.Len() != 2 {
		t.Errorf("Compose(f, g) should have 2 generators, got %d", fg.Len())
	}
}

func TestComposeMismatchFails(t *testing.T) {
	x, y, z := pregroup.T("x"), pregroup.T("y"), pregroup.T("z")
	f := Lift(NewGenerator("f", x, y))
	h := Lift(NewGenerator("h", z, x))

	_, err := Compose(f, h)
	if err == nil {
		t.Fatal("composing arrows with mismatched types should fail")
	}
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("error should match ErrTypeMismatch, got %v", err)
	}
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error should be a TypeMismatchError, got %T", err)
	}
	if !mismatch.Expected.Equal(y) || !mismatch.Got.Equal(z) {
		t.Errorf("mismatch should name cod(f)=%v and dom(h)=%v, got %v and %v",
			y, z, mismatch.Expected, mismatch.Got)
	}
}

func TestNewArrowValidatesChain(t *testing.T) {
	x, y, z := pregroup.T("x"), pregroup.T("y"), pregroup.T("z")

	if _, err := NewArrow(NewGenerator("f", x, y), NewGenerator("g", y, z)); err != nil {
		t.Fatalf("valid chain should construct: %v", err)
	}
	if _, err := NewArrow(NewGenerator("f", x, y), NewGenerator("g", z, x)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("broken chain should fail with ErrTypeMismatch, got %v", err)
	}
}

func TestIdentityLaws(t *testing.T) {
	x, y := pregroup.T("x"), pregroup.T("y")
	f := Lift(NewGenerator("f", x, y))

	left, err := Compose(Identity(x), f)
	if err != nil {
		t.Fatalf("Compose(Id, f) failed: %v", err)
	}
	if !left.Equal(f) {
		t.Error("Id(dom(f)) >> f should equal f")
	}

	right, err := Compose(f, Identity(y))
	if err != nil {
		t.Fatalf("Compose(f, Id) failed: %v", err)
	}
	if !right.Equal(f) {
		t.Error("f >> Id(cod(f)) should equal f")
	}
}

// TestCompositionLaws checks associativity and the identity laws over random
// well-typed chains.
func TestCompositionLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// A chain x0 -f-> x1 -g-> x2 -h-> x3 over random atoms.
	genChain := gen.SliceOfN(4, gen.Identifier()).Map(func(names []string) [3]Arrow {
		types := make([]pregroup.Ty, 4)
		for i, name := range names {
			types[i] = pregroup.T(name)
		}
		return [3]Arrow{
			Lift(NewGenerator("f", types[0], types[1])),
			Lift(NewGenerator("g", types[1], types[2])),
			Lift(NewGenerator("h", types[2], types[3])),
		}
	})

	properties.Property("composition is associative", prop.ForAll(
		func(chain [3]Arrow) bool {
			f, g, h := chain[0], chain[1], chain[2]
			fg, err := Compose(f, g)
			if err != nil {
				return false
			}
			fgh1, err := Compose(fg, h)
			if err != nil {
				return false
			}
			gh, err := Compose(g, h)
			if err != nil {
				return false
			}
			fgh2, err := Compose(f, gh)
			if err != nil {
				return false
			}
			return fgh1.Equal(fgh2)
		},
		genChain,
	))

	properties.Property("identities are neutral", prop.ForAll(
		func(chain [3]Arrow) bool {
			f := chain[0]
			left, err := Compose(Identity(f.Dom()), f)
			if err != nil {
				return false
			}
			right, err := Compose(f, Identity(f.Cod()))
			if err != nil {
				return false
			}
			return left.Equal(f) && right.Equal(f)
		},
		genChain,
	))

	properties.TestingRun(t)
}
