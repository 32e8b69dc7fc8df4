package plltrainer

import (
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if err := c.Verify(); err != nil {
		t.Errorf("Solved cube should satisfy invariants: %v", err)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	c.ApplyMove(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestQuarterTurnsOrderFour(t *testing.T) {
	faces := []Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB, SliceM, SliceE, SliceS, RotX, RotY, RotZ}
	for _, face := range faces {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c.ApplyMove(Move{Face: face, Turn: CW})
		}
		if !c.Equal(NewCube()) {
			t.Errorf("%s x 4 should return to the initial state", face)
			t.Log(c.String())
		}
	}
}

func TestHalfTurnsSelfInverse(t *testing.T) {
	faces := []Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB, SliceM, SliceE, SliceS, RotX, RotY, RotZ}
	for _, face := range faces {
		c := NewCube()
		c.ApplyMove(Move{Face: face, Turn: Double})
		c.ApplyMove(Move{Face: face, Turn: Double})
		if !c.Equal(NewCube()) {
			t.Errorf("%s2 %s2 should return to the initial state", face, face)
			t.Log(c.String())
		}
	}
}

func TestSexyMoveOrderSix(t *testing.T) {
	// (R U R' U') has order 6
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(SexyMove)
		if i < 5 && c.IsSolved() {
			t.Fatalf("Sexy move x %d should not be solved yet", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestMoveOrderMatters(t *testing.T) {
	ru := NewCube()
	ru.ApplyMoves(Algorithm{R, U})

	ur := NewCube()
	ur.ApplyMoves(Algorithm{U, R})

	if ru.Equal(ur) {
		t.Error("R U and U R should produce different states")
	}
}

func TestInverseLaw(t *testing.T) {
	algs := []string{
		"R U R' U'",
		"R U R' U' R' F R2 U' R' U' R U R' F'",
		"M2 U M2 U2 M2 U M2",
		"x R' U R' D2 R U' R' D2 R2 x'",
		"F B2 L' D R2 S E' y M2 z'",
	}
	for _, notation := range algs {
		alg, err := ParseMoves(notation)
		if err != nil {
			t.Fatalf("ParseMoves(%q) failed: %v", notation, err)
		}

		c := NewCube()
		c.ApplyMoves(alg)
		c.ApplyMoves(alg.Inverse())

		if !c.Equal(NewCube()) {
			t.Errorf("%q followed by its inverse should restore the initial state", notation)
			t.Log(c.String())
		}
	}
}

func TestInvariantsPreserved(t *testing.T) {
	algs := []string{
		"R U R' U'",
		"F2 D' L2 B R' U2 F' D2 R",
		"M E S M' E' S'",
		"x y z R U F x' y' z'",
		"M2 U M2 U2 M2 U M2",
	}
	for _, notation := range algs {
		c := NewCube()
		if err := c.ApplyNotation(notation); err != nil {
			t.Fatalf("ApplyNotation(%q) failed: %v", notation, err)
		}
		if err := c.Verify(); err != nil {
			t.Errorf("After %q: %v", notation, err)
		}
	}
}

func TestRotationEqualsOuterTurnsPlusSlice(t *testing.T) {
	// x is the same physical motion as R M' L'
	viaRotation := NewCube()
	viaRotation.ApplyMove(X)

	viaLayers := NewCube()
	viaLayers.ApplyMoves(Algorithm{R, MPrime, LPrime})

	if !viaRotation.Equal(viaLayers) {
		t.Error("x and R M' L' should produce identical states including the frame")
		t.Log(viaRotation.String())
		t.Log(viaLayers.String())
	}
}

func TestRotationKeepsCubeSolved(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("x y2 z'"); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("Whole-cube rotations should not unsolve the cube")
	}
	if c.UpFace() == CubeFaceU {
		t.Error("Frame should have moved away from the default after rotations")
	}
}

func TestFrameAffectsSubsequentMoves(t *testing.T) {
	// After a y rotation, R refers to the old back face, so "y R y'"
	// must equal plain B.
	conjugated := NewCube()
	conjugated.ApplyMoves(Algorithm{Y, R, YPrime})

	plain := NewCube()
	plain.ApplyMove(B)

	if !conjugated.Equal(plain) {
		t.Error("y R y' should equal B")
		t.Log(conjugated.String())
		t.Log(plain.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	scramble := Algorithm{R, U, RPrime, UPrime, F, D, L2}

	c := NewCube()
	c.ApplyMoves(scramble)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}
	if err := c.Verify(); err != nil {
		t.Errorf("Scrambled state should satisfy invariants: %v", err)
	}

	c.ApplyMoves(scramble.Inverse())
	if !c.IsSolved() {
		t.Error("Cube should be solved after reversing the scramble")
		t.Log(c.String())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCube()
	c.ApplyMove(R)

	clone := c.Clone()
	clone.ApplyMove(U)

	if c.Equal(clone) {
		t.Error("Mutating a clone should not affect the original")
	}
}
