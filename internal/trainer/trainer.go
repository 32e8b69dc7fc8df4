// Package trainer generates recognition questions: it picks a case from
// a chosen set, scrambles a solved cube into that case with randomized
// orientation, and checks typed answers against the case name.
package trainer

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/cubetools/plltrainer"
	"github.com/cubetools/plltrainer/internal/pll"
)

// ErrNoCasesSelected is returned when a question is requested from an
// empty case selection.
var ErrNoCasesSelected = errors.New("trainer: no cases selected")

// CaseSet is the case database a Generator draws from.
type CaseSet interface {
	plltrainer.CaseSource

	// Get resolves a possibly differently-cased name to its canonical
	// case record.
	Get(name string) (pll.Case, bool)

	// Names lists all canonical case names.
	Names() []string
}

// Policy controls how much random disguise a question's setup applies
// on top of the case's inverted algorithm.
type Policy struct {
	PreRotate  bool // random y rotation before the case setup
	PostRotate bool // random y rotation after the case setup
	PostAUF    bool // random U-layer turn at the end
	AllowNoAUF bool // let the final U-layer turn be absent
}

// DefaultPolicy always rotates and always applies an AUF, so the same
// case rarely looks the same twice.
func DefaultPolicy() Policy {
	return Policy{PreRotate: true, PostRotate: true, PostAUF: true}
}

// Question is a single recognition challenge. Setup applied to a solved
// cube produces the pictured state; Case is the expected answer.
type Question struct {
	Case    string
	Setup   plltrainer.Algorithm
	Grid    plltrainer.FaceletGrid
	Choices []string
}

// Generator produces questions from a case database. The random source
// is injected so tests and replays can be deterministic. A Generator is
// not safe for concurrent use; give each session its own.
type Generator struct {
	set    CaseSet
	rng    *rand.Rand
	policy Policy
}

// NewGenerator returns a generator over the given case set.
func NewGenerator(set CaseSet, rng *rand.Rand, policy Policy) *Generator {
	return &Generator{set: set, rng: rng, policy: policy}
}

// Next picks a random case from the selection and builds its question.
// Every selected name must exist in the case set.
func (g *Generator) Next(selected []string) (Question, error) {
	if len(selected) == 0 {
		return Question{}, ErrNoCasesSelected
	}

	name := selected[g.rng.Intn(len(selected))]
	c, ok := g.set.Get(name)
	if !ok {
		return Question{}, fmt.Errorf("trainer: %w", &plltrainer.UnknownCaseError{Name: name})
	}

	setup := g.buildSetup(c.Algorithm)

	cube := plltrainer.NewCube()
	cube.ApplyMoves(setup)

	return Question{
		Case:    c.Name,
		Setup:   setup,
		Grid:    cube.Facelets(),
		Choices: g.set.Names(),
	}, nil
}

// buildSetup assembles the scramble: flip the cube so the permuted
// layer faces the viewer, disguise the angle with y rotations around
// the inverted algorithm, then misalign the layer with an AUF.
func (g *Generator) buildSetup(alg plltrainer.Algorithm) plltrainer.Algorithm {
	setup := plltrainer.Algorithm{plltrainer.X2}

	if g.policy.PreRotate {
		setup = append(setup, g.randomRotation())
	}
	setup = append(setup, alg.Inverse()...)
	if g.policy.PostRotate {
		setup = append(setup, g.randomRotation())
	}
	if g.policy.PostAUF {
		if m, ok := g.randomAUF().Move(); ok {
			setup = append(setup, m)
		}
	}
	return setup
}

func (g *Generator) randomRotation() plltrainer.Move {
	turns := []plltrainer.Turn{plltrainer.CW, plltrainer.CCW, plltrainer.Double}
	return plltrainer.Move{Face: plltrainer.RotY, Turn: turns[g.rng.Intn(len(turns))]}
}

func (g *Generator) randomAUF() plltrainer.AUF {
	aufs := []plltrainer.AUF{plltrainer.AUFCW, plltrainer.AUFCCW, plltrainer.AUFHalf}
	if g.policy.AllowNoAUF {
		aufs = append(aufs, plltrainer.AUFNone)
	}
	return aufs[g.rng.Intn(len(aufs))]
}

// ValidateSelection checks every name against the case set and returns
// the canonical spellings. Unknown names fail with an
// *plltrainer.UnknownCaseError.
func ValidateSelection(set CaseSet, selected []string) ([]string, error) {
	if len(selected) == 0 {
		return nil, ErrNoCasesSelected
	}
	out := make([]string, len(selected))
	for i, name := range selected {
		c, ok := set.Get(name)
		if !ok {
			return nil, &plltrainer.UnknownCaseError{Name: name}
		}
		out[i] = c.Name
	}
	return out, nil
}

// Check reports whether a typed answer names the question's case.
// Comparison ignores case and surrounding whitespace.
func Check(questionCase, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(questionCase), strings.TrimSpace(answer))
}
