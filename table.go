package plltrainer

// The move table is derived, not hand-coded. Each of the six 90-degree
// face generators is built from a single fact: which cycle the turn
// induces on the four neighbouring faces. Half and counter-clockwise
// turns come from composing a generator with itself, and slice turns and
// whole-cube rotations are expressed through the generators plus a frame
// remap. Deriving everything from six face cycles keeps all 36 entries
// consistent with the reachability invariants by construction.

// faceMap is a permutation of the six faces. Used both for the sticker
// cycle a turn induces and for frame remapping under rotations.
type faceMap [6]CubeFace

func identityMap() faceMap {
	return faceMap{CubeFaceU, CubeFaceD, CubeFaceF, CubeFaceB, CubeFaceR, CubeFaceL}
}

// rotationMap builds the map sending cycle[0]→cycle[1]→cycle[2]→cycle[3]
// and fixing the other two faces.
func rotationMap(cycle [4]CubeFace) faceMap {
	m := identityMap()
	for i := 0; i < 4; i++ {
		m[cycle[i]] = cycle[(i+1)%4]
	}
	return m
}

// inverseMap returns the inverse permutation.
func inverseMap(m faceMap) faceMap {
	var inv faceMap
	for l := CubeFace(0); l < 6; l++ {
		inv[m[l]] = l
	}
	return inv
}

// composeMap returns the map applying b first, then a.
func composeMap(a, b faceMap) faceMap {
	var out faceMap
	for l := CubeFace(0); l < 6; l++ {
		out[l] = a[b[l]]
	}
	return out
}

// stickerMaps[f] is the cycle a clockwise turn of physical face f induces
// on stickers of the moving layer: a sticker facing face a ends up facing
// stickerMaps[f][a].
var stickerMaps = [6]faceMap{
	CubeFaceU: rotationMap([4]CubeFace{CubeFaceF, CubeFaceL, CubeFaceB, CubeFaceR}),
	CubeFaceD: rotationMap([4]CubeFace{CubeFaceF, CubeFaceR, CubeFaceB, CubeFaceL}),
	CubeFaceR: rotationMap([4]CubeFace{CubeFaceU, CubeFaceB, CubeFaceD, CubeFaceF}),
	CubeFaceL: rotationMap([4]CubeFace{CubeFaceU, CubeFaceF, CubeFaceD, CubeFaceB}),
	CubeFaceF: rotationMap([4]CubeFace{CubeFaceU, CubeFaceR, CubeFaceD, CubeFaceL}),
	CubeFaceB: rotationMap([4]CubeFace{CubeFaceU, CubeFaceL, CubeFaceD, CubeFaceR}),
}

// pieceTable is the permutation-plus-orientation effect of a move on the
// cubie vectors: slot i receives the piece from slot cp[i] with twist
// delta co[i], and likewise for edges.
type pieceTable struct {
	cp [8]int8
	co [8]int8
	ep [12]int8
	eo [12]int8
}

func identityTable() pieceTable {
	var t pieceTable
	for i := range t.cp {
		t.cp[i] = int8(i)
	}
	for i := range t.ep {
		t.ep[i] = int8(i)
	}
	return t
}

// multTables composes two piece tables: the result applies a, then b.
func multTables(a, b *pieceTable) pieceTable {
	var r pieceTable
	for i := 0; i < 8; i++ {
		r.cp[i] = a.cp[b.cp[i]]
		r.co[i] = (a.co[b.cp[i]] + b.co[i]) % 3
	}
	for i := 0; i < 12; i++ {
		r.ep[i] = a.ep[b.ep[i]]
		r.eo[i] = (a.eo[b.ep[i]] + b.eo[i]) % 2
	}
	return r
}

// findCornerSlot locates the corner slot whose face set matches fs and
// the index of fs[0] within that slot's clockwise face list. Face maps
// of physical turns and rotations preserve clockwise order, so that
// index is exactly the twist delta the move imposes.
func findCornerSlot(fs [3]CubeFace) (slot int, d int8) {
	for j := range cornerFaces {
		if !sameFaceSet3(cornerFaces[j], fs) {
			continue
		}
		for k, f := range cornerFaces[j] {
			if f == fs[0] {
				return j, int8(k)
			}
		}
	}
	panic("plltrainer: no corner slot for face set")
}

// findEdgeSlot locates the edge slot for a face pair and the index of
// fs[0] within it (the flip delta).
func findEdgeSlot(fs [2]CubeFace) (slot int, d int8) {
	for j := range edgeFaces {
		ef := edgeFaces[j]
		if ef[0] == fs[0] && ef[1] == fs[1] {
			return j, 0
		}
		if ef[0] == fs[1] && ef[1] == fs[0] {
			return j, 1
		}
	}
	panic("plltrainer: no edge slot for face pair")
}

func sameFaceSet3(a, b [3]CubeFace) bool {
	for _, x := range a {
		if x != b[0] && x != b[1] && x != b[2] {
			return false
		}
	}
	return true
}

// buildFaceTable derives the 90-degree clockwise generator for a
// physical face from its sticker cycle.
func buildFaceTable(f CubeFace) pieceTable {
	rot := stickerMaps[f]
	t := identityTable()

	for i := range cornerFaces {
		if !cornerContains(i, f) {
			continue
		}
		var img [3]CubeFace
		for k, cf := range cornerFaces[i] {
			img[k] = rot[cf]
		}
		j, d := findCornerSlot(img)
		t.cp[j] = int8(i)
		t.co[j] = d
	}

	for i := range edgeFaces {
		if !edgeContains(i, f) {
			continue
		}
		var img [2]CubeFace
		for k, ef := range edgeFaces[i] {
			img[k] = rot[ef]
		}
		j, d := findEdgeSlot(img)
		t.ep[j] = int8(i)
		t.eo[j] = d
	}

	return t
}

func cornerContains(slot int, f CubeFace) bool {
	for _, cf := range cornerFaces[slot] {
		if cf == f {
			return true
		}
	}
	return false
}

func edgeContains(slot int, f CubeFace) bool {
	return edgeFaces[slot][0] == f || edgeFaces[slot][1] == f
}

// physTurn is one outer-layer turn inside a move entry. The face is a
// notation-level face index, resolved through the cube's frame when the
// entry is applied.
type physTurn struct {
	face CubeFace
	turn Turn
}

// moveEntry is the effect of one notation move: zero or more outer-layer
// turns plus an optional frame remap. Face turns carry one turn and no
// remap; rotations carry only a remap; slice turns carry both.
type moveEntry struct {
	turns []physTurn
	remap *faceMap
}

// MoveTable holds the precomputed effect of every notation move. It is
// built once, never mutated afterwards, and safe for unsynchronized
// concurrent reads.
type MoveTable struct {
	// faces[f][i] is the piece table for physical face f at turn
	// index i (0=CW, 1=Double, 2=CCW).
	faces [6][3]pieceTable
	// entries maps every valid notation move to its effect.
	entries map[Move]moveEntry
}

func turnIndex(t Turn) int {
	switch t {
	case Double:
		return 1
	case CCW:
		return 2
	default:
		return 0
	}
}

// stdTable is the process-wide move table, built before any cube is
// touched and read-only thereafter.
var stdTable = NewMoveTable()

// DefaultTable returns the shared move table.
func DefaultTable() *MoveTable {
	return stdTable
}

// NewMoveTable builds a move table from the six base generators.
func NewMoveTable() *MoveTable {
	t := &MoveTable{entries: make(map[Move]moveEntry)}

	for f := CubeFace(0); f < 6; f++ {
		cw := buildFaceTable(f)
		double := multTables(&cw, &cw)
		ccw := multTables(&double, &cw)
		t.faces[f] = [3]pieceTable{cw, double, ccw}
	}

	turns := []Turn{CW, Double, CCW}

	// Plain face turns.
	faceIdx := map[Face]CubeFace{
		FaceU: CubeFaceU, FaceD: CubeFaceD, FaceF: CubeFaceF,
		FaceB: CubeFaceB, FaceR: CubeFaceR, FaceL: CubeFaceL,
	}
	for face, idx := range faceIdx {
		for _, tn := range turns {
			t.entries[Move{Face: face, Turn: tn}] = moveEntry{
				turns: []physTurn{{face: idx, turn: tn}},
			}
		}
	}

	// Whole-cube rotations remap the frame and move no pieces. The
	// frame delta of a clockwise rotation is the inverse of its sticker
	// cycle; amount variants compose the delta with itself.
	rotations := []struct {
		face    Face
		sticker faceMap
	}{
		{RotX, stickerMaps[CubeFaceR]},
		{RotY, stickerMaps[CubeFaceU]},
		{RotZ, stickerMaps[CubeFaceF]},
	}
	for _, rot := range rotations {
		cw := inverseMap(rot.sticker)
		double := composeMap(cw, cw)
		ccw := composeMap(double, cw)
		deltas := [3]faceMap{cw, double, ccw}
		for _, tn := range turns {
			d := deltas[turnIndex(tn)]
			t.entries[Move{Face: rot.face, Turn: tn}] = moveEntry{remap: &d}
		}
	}

	// Slice turns decompose into coaxial outer-layer turns plus the
	// rotation that hides them: M = R L' x', E = U D' y', S = F' B z.
	slices := []struct {
		face     Face
		first    CubeFace
		second   CubeFace
		firstCW  bool
		rotation Face
		rotCW    bool
	}{
		{SliceM, CubeFaceR, CubeFaceL, true, RotX, false},
		{SliceE, CubeFaceU, CubeFaceD, true, RotY, false},
		{SliceS, CubeFaceF, CubeFaceB, false, RotZ, true},
	}
	for _, sl := range slices {
		for _, tn := range turns {
			ft, st := tn, oppositeTurn(tn)
			if !sl.firstCW {
				ft, st = st, ft
			}
			rt := tn
			if !sl.rotCW {
				rt = oppositeTurn(tn)
			}
			rotEntry := t.entries[Move{Face: sl.rotation, Turn: rt}]
			remap := *rotEntry.remap
			t.entries[Move{Face: sl.face, Turn: tn}] = moveEntry{
				turns: []physTurn{
					{face: sl.first, turn: ft},
					{face: sl.second, turn: st},
				},
				remap: &remap,
			}
		}
	}

	return t
}

func oppositeTurn(t Turn) Turn {
	switch t {
	case CW:
		return CCW
	case CCW:
		return CW
	default:
		return Double
	}
}

// Apply applies one move to a cube: outer-layer turns are resolved
// through the cube's current frame, then the frame remap (if any) takes
// effect. Every table entry is total over every valid cube state, so
// there is nothing to report.
func (t *MoveTable) Apply(c *Cube, m Move) {
	e, ok := t.entries[m]
	if !ok {
		return
	}
	for _, pt := range e.turns {
		phys := c.frame[pt.face]
		c.applyTable(&t.faces[phys][turnIndex(pt.turn)])
	}
	if e.remap != nil {
		c.frame = c.frame.remap(*e.remap)
	}
}

// ApplyAll applies a sequence of moves, left to right.
func (t *MoveTable) ApplyAll(c *Cube, moves []Move) {
	for _, m := range moves {
		t.Apply(c, m)
	}
}
