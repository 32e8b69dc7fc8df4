package plltrainer

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.ApplyMoves([]Move{R, U, RPrime, UPrime})
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}     // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}     // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}     // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW}    // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}     // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW}    // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Double} // Back 180

	// Slice moves
	M      = Move{Face: SliceM, Turn: CW}
	MPrime = Move{Face: SliceM, Turn: CCW}
	M2     = Move{Face: SliceM, Turn: Double}
	E      = Move{Face: SliceE, Turn: CW}
	EPrime = Move{Face: SliceE, Turn: CCW}
	E2     = Move{Face: SliceE, Turn: Double}
	S      = Move{Face: SliceS, Turn: CW}
	SPrime = Move{Face: SliceS, Turn: CCW}
	S2     = Move{Face: SliceS, Turn: Double}

	// Whole-cube rotations
	X      = Move{Face: RotX, Turn: CW}
	XPrime = Move{Face: RotX, Turn: CCW}
	X2     = Move{Face: RotX, Turn: Double}
	Y      = Move{Face: RotY, Turn: CW}
	YPrime = Move{Face: RotY, Turn: CCW}
	Y2     = Move{Face: RotY, Turn: Double}
	Z      = Move{Face: RotZ, Turn: CW}
	ZPrime = Move{Face: RotZ, Turn: CCW}
	Z2     = Move{Face: RotZ, Turn: Double}
)

// Sexy move: R U R' U' - one of the most common triggers
var SexyMove = Algorithm{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = Algorithm{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
