package plltrainer

// FaceletGrid is the per-face color view of a cube: one 3x3 grid of
// colors per face, indexed by logical face and position
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// looking straight at the face. This is the sole interface handed to
// renderers; it is derived from cubie state and never fed back in.
type FaceletGrid [6][9]Color

type pieceKind byte

const (
	kindCenter pieceKind = iota
	kindCorner
	kindEdge
)

// faceletRef ties one grid position to the cubie sticker that shows
// through it: the slot (in logical face terms) and the index of this
// face within the slot's face list.
type faceletRef struct {
	kind pieceKind
	slot int8
	idx  int8
}

func corner(slot, idx int8) faceletRef { return faceletRef{kindCorner, slot, idx} }
func edge(slot, idx int8) faceletRef   { return faceletRef{kindEdge, slot, idx} }

var center = faceletRef{kind: kindCenter}

// faceletMap fixes which sticker shows at each grid position of each
// logical face.
var faceletMap = [6][9]faceletRef{
	CubeFaceU: {
		corner(cornerULB, 0), edge(edgeUB, 0), corner(cornerUBR, 0),
		edge(edgeUL, 0), center, edge(edgeUR, 0),
		corner(cornerUFL, 0), edge(edgeUF, 0), corner(cornerURF, 0),
	},
	CubeFaceD: {
		corner(cornerDLF, 0), edge(edgeDF, 0), corner(cornerDFR, 0),
		edge(edgeDL, 0), center, edge(edgeDR, 0),
		corner(cornerDBL, 0), edge(edgeDB, 0), corner(cornerDRB, 0),
	},
	CubeFaceF: {
		corner(cornerUFL, 1), edge(edgeUF, 1), corner(cornerURF, 2),
		edge(edgeFL, 0), center, edge(edgeFR, 0),
		corner(cornerDLF, 2), edge(edgeDF, 1), corner(cornerDFR, 1),
	},
	CubeFaceB: {
		corner(cornerUBR, 1), edge(edgeUB, 1), corner(cornerULB, 2),
		edge(edgeBR, 0), center, edge(edgeBL, 0),
		corner(cornerDRB, 2), edge(edgeDB, 1), corner(cornerDBL, 1),
	},
	CubeFaceR: {
		corner(cornerURF, 1), edge(edgeUR, 1), corner(cornerUBR, 2),
		edge(edgeFR, 1), center, edge(edgeBR, 1),
		corner(cornerDFR, 2), edge(edgeDR, 1), corner(cornerDRB, 1),
	},
	CubeFaceL: {
		corner(cornerULB, 1), edge(edgeUL, 1), corner(cornerUFL, 2),
		edge(edgeBL, 1), center, edge(edgeFL, 1),
		corner(cornerDBL, 2), edge(edgeDL, 1), corner(cornerDLF, 1),
	},
}

// Facelets projects the cube state into a facelet grid. The projection
// is a pure read: it resolves each grid position's logical slot through
// the frame to a physical slot, then looks up which piece sticker faces
// outward there.
func (c *Cube) Facelets() FaceletGrid {
	var g FaceletGrid
	for lf := CubeFace(0); lf < 6; lf++ {
		for pos, ref := range faceletMap[lf] {
			g[lf][pos] = c.stickerColor(lf, ref)
		}
	}
	return g
}

func (c *Cube) stickerColor(lf CubeFace, ref faceletRef) Color {
	switch ref.kind {
	case kindCenter:
		return faceToSolvedColor(c.frame[lf])
	case kindCorner:
		var img [3]CubeFace
		for k, f := range cornerFaces[ref.slot] {
			img[k] = c.frame[f]
		}
		j, d := findCornerSlot(img)
		kPhys := (d + ref.idx) % 3
		piece := c.cp[j]
		sticker := ((kPhys-c.co[j])%3 + 3) % 3
		return faceToSolvedColor(cornerFaces[piece][sticker])
	default:
		var img [2]CubeFace
		for k, f := range edgeFaces[ref.slot] {
			img[k] = c.frame[f]
		}
		j, d := findEdgeSlot(img)
		kPhys := (d + ref.idx) % 2
		piece := c.ep[j]
		sticker := (kPhys + c.eo[j]) % 2
		return faceToSolvedColor(edgeFaces[piece][sticker])
	}
}

// String returns a text net of the grid: U on top, then L F R B side by
// side, then D.
func (g FaceletGrid) String() string {
	result := ""

	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += g[CubeFaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				result += g[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += g[CubeFaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}

// String renders the cube's facelet net.
func (c *Cube) String() string {
	return c.Facelets().String()
}
