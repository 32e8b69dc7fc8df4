package trainer

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cubetools/plltrainer"
	"github.com/cubetools/plltrainer/internal/pll"
)

func newTestGenerator(t *testing.T, policy Policy) *Generator {
	t.Helper()
	db, err := pll.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return NewGenerator(db, rand.New(rand.NewSource(1)), policy)
}

// solvableBy reports whether alg solves the cube from any of the four
// viewing angles combined with any U-layer pre-adjustment.
func solvableBy(c *plltrainer.Cube, alg plltrainer.Algorithm) bool {
	angle := c.Clone()
	for r := 0; r < 4; r++ {
		adjusted := angle.Clone()
		for j := 0; j < 4; j++ {
			attempt := adjusted.Clone()
			attempt.ApplyMoves(alg)
			if attempt.IsSolved() {
				return true
			}
			adjusted.ApplyMove(plltrainer.U)
		}
		angle.ApplyMove(plltrainer.Y)
	}
	return false
}

func TestNextProducesSolvableQuestion(t *testing.T) {
	g := newTestGenerator(t, DefaultPolicy())
	db := pll.MustLoad()

	for i := 0; i < 50; i++ {
		q, err := g.Next(db.Names())
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}

		c := plltrainer.NewCube()
		c.ApplyMoves(q.Setup)
		if c.IsSolved() {
			t.Errorf("Question %d (%s): setup should scramble the cube", i, q.Case)
		}

		// The answer's algorithm must solve the pictured state once the
		// viewing angle and U-layer alignment are re-chosen.
		alg, ok := db.Lookup(q.Case)
		if !ok {
			t.Fatalf("Question %d names unknown case %s", i, q.Case)
		}
		if !solvableBy(c, alg) {
			t.Errorf("Question %d (%s): algorithm should solve the state from some angle", i, q.Case)
		}
	}
}

func TestNextRespectsSelection(t *testing.T) {
	g := newTestGenerator(t, DefaultPolicy())
	selected := []string{"T", "H"}

	for i := 0; i < 30; i++ {
		q, err := g.Next(selected)
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if q.Case != "T" && q.Case != "H" {
			t.Fatalf("Question case %s not in selection", q.Case)
		}
		if len(q.Choices) != 21 {
			t.Errorf("Choices should list all cases, got %d", len(q.Choices))
		}
	}
}

func TestNextIsDeterministicPerSeed(t *testing.T) {
	db := pll.MustLoad()
	a := NewGenerator(db, rand.New(rand.NewSource(42)), DefaultPolicy())
	b := NewGenerator(db, rand.New(rand.NewSource(42)), DefaultPolicy())

	for i := 0; i < 10; i++ {
		qa, err := a.Next(db.Names())
		if err != nil {
			t.Fatal(err)
		}
		qb, err := b.Next(db.Names())
		if err != nil {
			t.Fatal(err)
		}
		if qa.Case != qb.Case || !qa.Setup.Equal(qb.Setup) {
			t.Fatalf("Same seed should produce identical questions: %s/%v vs %s/%v",
				qa.Case, qa.Setup, qb.Case, qb.Setup)
		}
	}
}

func TestNextErrors(t *testing.T) {
	g := newTestGenerator(t, DefaultPolicy())

	if _, err := g.Next(nil); !errors.Is(err, ErrNoCasesSelected) {
		t.Errorf("Empty selection should fail with ErrNoCasesSelected, got %v", err)
	}
	if _, err := g.Next([]string{"Qq"}); !errors.Is(err, plltrainer.ErrUnknownCase) {
		t.Errorf("Unknown case should fail with ErrUnknownCase, got %v", err)
	}
}

func TestPolicyWithoutDisguise(t *testing.T) {
	g := newTestGenerator(t, Policy{})
	db := pll.MustLoad()

	q, err := g.Next([]string{"T"})
	if err != nil {
		t.Fatal(err)
	}

	alg, _ := db.Lookup("T")
	want := append(plltrainer.Algorithm{plltrainer.X2}, alg.Inverse()...)
	if !q.Setup.Equal(want) {
		t.Errorf("Bare policy setup = %v, want %v", q.Setup, want)
	}
}

func TestValidateSelection(t *testing.T) {
	db := pll.MustLoad()

	names, err := ValidateSelection(db, []string{"t", "UA", "Gc"})
	if err != nil {
		t.Fatalf("ValidateSelection failed: %v", err)
	}
	want := []string{"T", "Ua", "Gc"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if _, err := ValidateSelection(db, []string{"T", "nope"}); !errors.Is(err, plltrainer.ErrUnknownCase) {
		t.Errorf("Unknown name should fail with ErrUnknownCase, got %v", err)
	}
	if _, err := ValidateSelection(db, nil); !errors.Is(err, ErrNoCasesSelected) {
		t.Errorf("Empty selection should fail, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	cases := []struct {
		question string
		answer   string
		want     bool
	}{
		{"T", "T", true},
		{"T", "t", true},
		{"Aa", " aa ", true},
		{"Ga", "Gb", false},
		{"T", "", false},
	}
	for _, tc := range cases {
		if got := Check(tc.question, tc.answer); got != tc.want {
			t.Errorf("Check(%q, %q) = %v, want %v", tc.question, tc.answer, got, tc.want)
		}
	}
}
