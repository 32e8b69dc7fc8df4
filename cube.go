package plltrainer

import "fmt"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// CubeFace identifies one of the six physical faces of the cube model.
// This is distinct from Face, which is the notation-level identifier:
// notation letters are remapped by whole-cube rotations, physical faces
// are not.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// faceToSolvedColor returns the color of a physical face when solved.
func faceToSolvedColor(f CubeFace) Color {
	switch f {
	case CubeFaceU:
		return White
	case CubeFaceD:
		return Yellow
	case CubeFaceF:
		return Green
	case CubeFaceB:
		return Blue
	case CubeFaceR:
		return Red
	case CubeFaceL:
		return Orange
	default:
		return White
	}
}

// Corner slots. The name lists the slot's faces clockwise starting from
// the U or D face; that ordering defines orientation zero.
const (
	cornerURF = 0
	cornerUFL = 1
	cornerULB = 2
	cornerUBR = 3
	cornerDFR = 4
	cornerDLF = 5
	cornerDBL = 6
	cornerDRB = 7
)

// Edge slots. The first face in the name is the orientation reference.
const (
	edgeUR = 0
	edgeUF = 1
	edgeUL = 2
	edgeUB = 3
	edgeDR = 4
	edgeDF = 5
	edgeDL = 6
	edgeDB = 7
	edgeFR = 8
	edgeFL = 9
	edgeBL = 10
	edgeBR = 11
)

// cornerFaces lists each corner slot's faces clockwise (viewed from the
// corner), starting from the U/D sticker. The starting face anchors the
// orientation convention: a corner's orientation is the position of its
// U/D-colored sticker within this list.
var cornerFaces = [8][3]CubeFace{
	cornerURF: {CubeFaceU, CubeFaceR, CubeFaceF},
	cornerUFL: {CubeFaceU, CubeFaceF, CubeFaceL},
	cornerULB: {CubeFaceU, CubeFaceL, CubeFaceB},
	cornerUBR: {CubeFaceU, CubeFaceB, CubeFaceR},
	cornerDFR: {CubeFaceD, CubeFaceF, CubeFaceR},
	cornerDLF: {CubeFaceD, CubeFaceL, CubeFaceF},
	cornerDBL: {CubeFaceD, CubeFaceB, CubeFaceL},
	cornerDRB: {CubeFaceD, CubeFaceR, CubeFaceB},
}

// edgeFaces lists each edge slot's two faces; the first is the
// orientation reference sticker.
var edgeFaces = [12][2]CubeFace{
	edgeUR: {CubeFaceU, CubeFaceR},
	edgeUF: {CubeFaceU, CubeFaceF},
	edgeUL: {CubeFaceU, CubeFaceL},
	edgeUB: {CubeFaceU, CubeFaceB},
	edgeDR: {CubeFaceD, CubeFaceR},
	edgeDF: {CubeFaceD, CubeFaceF},
	edgeDL: {CubeFaceD, CubeFaceL},
	edgeDB: {CubeFaceD, CubeFaceB},
	edgeFR: {CubeFaceF, CubeFaceR},
	edgeFL: {CubeFaceF, CubeFaceL},
	edgeBL: {CubeFaceB, CubeFaceL},
	edgeBR: {CubeFaceB, CubeFaceR},
}

// frame maps notation-level faces to physical faces. Whole-cube rotations
// mutate the frame; face turns consult it to find which physical face to
// turn.
type frame [6]CubeFace

// identityFrame is the solved-state frame: every notation face refers to
// the physical face of the same name.
var identityFrame = frame{CubeFaceU, CubeFaceD, CubeFaceF, CubeFaceB, CubeFaceR, CubeFaceL}

// remap composes the frame with a face remapping m (logical face l now
// refers to the physical face previously referred to by m[l]).
func (fr frame) remap(m faceMap) frame {
	var out frame
	for l := CubeFace(0); l < 6; l++ {
		out[l] = fr[m[l]]
	}
	return out
}

// Cube represents a 3x3 cube at the cubie level: which piece occupies
// each corner and edge slot, how each piece is twisted or flipped, and
// which physical face each notation letter currently refers to.
//
// Pieces are identified by their solved slot. The solved cube has every
// permutation at identity, every orientation zero, and the identity
// frame.
type Cube struct {
	// cp[s] = piece currently occupying corner slot s
	cp [8]int8
	// co[s] = clockwise twist of the piece in corner slot s, mod 3
	co [8]int8
	// ep[s] = piece currently occupying edge slot s
	ep [12]int8
	// eo[s] = flip of the piece in edge slot s, mod 2
	eo [12]int8
	// frame maps notation faces to physical faces
	frame frame
}

// NewCube creates a solved cube with standard orientation:
// white on top, green in front.
func NewCube() *Cube {
	c := &Cube{frame: identityFrame}
	for i := range c.cp {
		c.cp[i] = int8(i)
	}
	for i := range c.ep {
		c.ep[i] = int8(i)
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether two cubes are in the same state, including the
// orientation frame.
func (c *Cube) Equal(o *Cube) bool {
	return *c == *o
}

// IsSolved reports whether every piece is home and untwisted. The frame
// is ignored: a cube that has only been rotated as a whole is still
// solved.
func (c *Cube) IsSolved() bool {
	for i := range c.cp {
		if c.cp[i] != int8(i) || c.co[i] != 0 {
			return false
		}
	}
	for i := range c.ep {
		if c.ep[i] != int8(i) || c.eo[i] != 0 {
			return false
		}
	}
	return true
}

// TopLayerPermutationOnly reports whether the cube differs from solved
// only by a permutation of the up-layer pieces: the four top corners
// and four top edges may be swapped among themselves, but no piece is
// twisted or flipped and nothing below the top layer has moved. The
// frame is ignored, as in IsSolved.
func (c *Cube) TopLayerPermutationOnly() bool {
	for i := range c.co {
		if c.co[i] != 0 {
			return false
		}
	}
	for i := range c.eo {
		if c.eo[i] != 0 {
			return false
		}
	}
	for i := cornerDFR; i <= cornerDRB; i++ {
		if c.cp[i] != int8(i) {
			return false
		}
	}
	for i := edgeDR; i <= edgeBR; i++ {
		if c.ep[i] != int8(i) {
			return false
		}
	}
	return true
}

// ApplyMove applies a single move using the shared move table.
func (c *Cube) ApplyMove(m Move) {
	stdTable.Apply(c, m)
}

// ApplyMoves applies a sequence of moves, left to right.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyNotation parses a notation string and applies it.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.ApplyMoves(moves)
	return nil
}

// applyTable composes a piece table into the cube state.
func (c *Cube) applyTable(t *pieceTable) {
	var cp [8]int8
	var co [8]int8
	for i := 0; i < 8; i++ {
		src := t.cp[i]
		cp[i] = c.cp[src]
		co[i] = (c.co[src] + t.co[i]) % 3
	}
	var ep [12]int8
	var eo [12]int8
	for i := 0; i < 12; i++ {
		src := t.ep[i]
		ep[i] = c.ep[src]
		eo[i] = (c.eo[src] + t.eo[i]) % 2
	}
	c.cp, c.co, c.ep, c.eo = cp, co, ep, eo
}

// Verify checks the reachability invariants: corner and edge
// permutations are bijections, corner twist sums to 0 mod 3, edge flip
// sums to 0 mod 2, and the two permutations have equal parity. Any legal
// move sequence preserves all four; a violation means the move table or
// composer is broken.
func (c *Cube) Verify() error {
	var cseen [8]bool
	for _, p := range c.cp {
		if p < 0 || p > 7 || cseen[p] {
			return fmt.Errorf("plltrainer: corner permutation is not a bijection: %v", c.cp)
		}
		cseen[p] = true
	}
	var eseen [12]bool
	for _, p := range c.ep {
		if p < 0 || p > 11 || eseen[p] {
			return fmt.Errorf("plltrainer: edge permutation is not a bijection: %v", c.ep)
		}
		eseen[p] = true
	}

	twist := 0
	for _, o := range c.co {
		twist += int(o)
	}
	if twist%3 != 0 {
		return fmt.Errorf("plltrainer: corner twist sum %d is not 0 mod 3", twist)
	}

	flip := 0
	for _, o := range c.eo {
		flip += int(o)
	}
	if flip%2 != 0 {
		return fmt.Errorf("plltrainer: edge flip sum %d is not 0 mod 2", flip)
	}

	if cornerParity(c.cp) != edgeParity(c.ep) {
		return fmt.Errorf("plltrainer: corner and edge permutation parity differ")
	}

	return nil
}

// cornerParity returns the parity of the corner permutation
// (0 even, 1 odd).
func cornerParity(p [8]int8) int {
	parity := 0
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if p[i] > p[j] {
				parity ^= 1
			}
		}
	}
	return parity
}

// edgeParity returns the parity of the edge permutation.
func edgeParity(p [12]int8) int {
	parity := 0
	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			if p[i] > p[j] {
				parity ^= 1
			}
		}
	}
	return parity
}

// UpFace returns the physical face the notation letter U currently
// refers to.
func (c *Cube) UpFace() CubeFace {
	return c.frame[CubeFaceU]
}

// FrontFace returns the physical face the notation letter F currently
// refers to.
func (c *Cube) FrontFace() CubeFace {
	return c.frame[CubeFaceF]
}
