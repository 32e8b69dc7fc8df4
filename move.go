package plltrainer

import "strings"

// Face represents a movable layer or axis in standard notation.
// Uppercase letters are face and slice turns; lowercase x, y, z are
// whole-cube rotations.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back

	SliceM Face = "M" // Middle slice, follows L
	SliceE Face = "E" // Equatorial slice, follows D
	SliceS Face = "S" // Standing slice, follows F

	RotX Face = "x" // Whole-cube rotation, follows R
	RotY Face = "y" // Whole-cube rotation, follows U
	RotZ Face = "z" // Whole-cube rotation, follows F
)

// IsRotation reports whether the face is a whole-cube rotation.
func (f Face) IsRotation() bool {
	return f == RotX || f == RotY || f == RotZ
}

// IsSlice reports whether the face is a middle-layer slice turn.
func (f Face) IsSlice() bool {
	return f == SliceM || f == SliceE || f == SliceS
}

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move: a face, slice, or rotation plus a
// turn amount. Moves are immutable values; the effect of each move lives
// in the shared MoveTable.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, M2, x'
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Algorithm is an ordered sequence of moves, applied left to right.
type Algorithm []Move

// Inverse returns the algebraic inverse: moves in reverse order with each
// turn inverted, so that applying an algorithm followed by its inverse is
// the identity on any state.
func (a Algorithm) Inverse() Algorithm {
	inv := make(Algorithm, len(a))
	for i, m := range a {
		inv[len(a)-1-i] = m.Inverse()
	}
	return inv
}

// Equal reports whether two algorithms are the same sequence of
// (face, turn) pairs.
func (a Algorithm) Equal(b Algorithm) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns the space-separated notation for the algorithm.
func (a Algorithm) String() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, len(a))
	for i, m := range a {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// parseToken parses a single notation token into a Move.
// Grammar: <FaceOrAxis><Modifier>? where the modifier is ' or 2.
// Face letters are case-sensitive: U D L R F B M E S uppercase,
// rotations x y z lowercase.
func parseToken(s string) (Move, bool) {
	if len(s) == 0 {
		return Move{}, false
	}

	var face Face
	switch s[0] {
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'L':
		face = FaceL
	case 'R':
		face = FaceR
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	case 'M':
		face = SliceM
	case 'E':
		face = SliceE
	case 'S':
		face = SliceS
	case 'x':
		face = RotX
	case 'y':
		face = RotY
	case 'z':
		face = RotZ
	default:
		return Move{}, false
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'":
			turn = CCW
		case "2":
			turn = Double
		default:
			return Move{}, false
		}
	}

	return Move{Face: face, Turn: turn}, true
}

// ParseMoves parses a whitespace-separated sequence of notation tokens.
// Empty input yields an empty algorithm, which is valid. A malformed
// token fails with a *ParseError naming the token and its index.
func ParseMoves(s string) (Algorithm, error) {
	parts := strings.Fields(s)
	moves := make(Algorithm, 0, len(parts))

	for i, part := range parts {
		move, ok := parseToken(part)
		if !ok {
			return nil, &ParseError{Token: part, Pos: i}
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return Algorithm(moves).String()
}
