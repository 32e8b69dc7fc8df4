// Package plltrainer models a 3x3 Rubik's cube at the cubie level and
// provides the move algebra behind PLL recognition training: notation
// parsing, move application, algorithm inversion, and facelet
// projection.
//
// # Cube model
//
// A Cube tracks which piece occupies each of the 8 corner and 12 edge
// slots, each piece's twist or flip, and an orientation frame mapping
// notation letters to physical faces. Face turns permute pieces;
// whole-cube rotations (x, y, z) only remap the frame, changing what
// subsequent letters mean.
//
//	c := plltrainer.NewCube()
//	c.ApplyNotation("R U R' U'")
//	fmt.Println(c.IsSolved())
//	fmt.Println(c)
//
// # Algorithms
//
// An Algorithm is an ordered move sequence, applied left to right.
// Inverting an algorithm reverses it and inverts every turn, so a
// case's pre-solve state is its inverted algorithm applied to solved:
//
//	alg, _ := plltrainer.ParseMoves("R U R' U' R' F R2 U' R' U' R U R' F'")
//	c := plltrainer.NewCube()
//	c.ApplyMoves(alg.Inverse())
//	c.ApplyMoves(alg)
//	// c is solved again
//
// # Visualization
//
// VisualizeMoves and VisualizeCase project states into a FaceletGrid,
// the 6x9 color view consumed by renderers. The move table behind all
// of this is built once at startup and is read-only thereafter, so
// cubes can be used freely from concurrent goroutines as long as each
// goroutine owns its own Cube.
package plltrainer
