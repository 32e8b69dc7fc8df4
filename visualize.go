package plltrainer

// CaseSource is the case database the core consumes but does not own: a
// mapping from case name to that case's canonical solving algorithm,
// validated by its owner at load time.
type CaseSource interface {
	// Lookup returns the canonical solving algorithm for a case name,
	// or false if the name is unknown.
	Lookup(name string) (Algorithm, bool)
}

// AUF is an optional "adjust U face" modifier: a cosmetic U-layer turn
// spliced onto a case's setup to vary its on-screen orientation without
// changing which case it is.
type AUF int

const (
	AUFNone    AUF = iota // no adjustment
	AUFCW                 // U
	AUFCCW                // U'
	AUFHalf               // U2
)

// Move returns the U move for this modifier, or false for AUFNone.
func (a AUF) Move() (Move, bool) {
	switch a {
	case AUFCW:
		return U, true
	case AUFCCW:
		return UPrime, true
	case AUFHalf:
		return U2, true
	default:
		return Move{}, false
	}
}

func (a AUF) String() string {
	if m, ok := a.Move(); ok {
		return m.Notation()
	}
	return ""
}

// VisualizeMoves parses a notation string, applies it to a solved cube,
// and projects the result. Fails with a *ParseError on malformed
// notation.
func VisualizeMoves(notation string) (FaceletGrid, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return FaceletGrid{}, err
	}
	c := NewCube()
	c.ApplyMoves(moves)
	return c.Facelets(), nil
}

// CaseSetup returns the move sequence that presents a case: flip the
// cube so the last layer faces the viewer (x2), apply the inverse of the
// case's solving algorithm, then the optional AUF. Applying the result
// to a solved cube yields exactly the state the case's algorithm solves.
func CaseSetup(src CaseSource, name string, auf AUF) (Algorithm, error) {
	alg, ok := src.Lookup(name)
	if !ok {
		return nil, &UnknownCaseError{Name: name}
	}

	setup := make(Algorithm, 0, len(alg)+2)
	setup = append(setup, X2)
	setup = append(setup, alg.Inverse()...)
	if m, ok := auf.Move(); ok {
		setup = append(setup, m)
	}
	return setup, nil
}

// VisualizeCase looks up a case, applies its setup to a solved cube, and
// projects the result. Fails with an *UnknownCaseError for names not in
// the source.
func VisualizeCase(src CaseSource, name string, auf AUF) (FaceletGrid, error) {
	setup, err := CaseSetup(src, name, auf)
	if err != nil {
		return FaceletGrid{}, err
	}
	c := NewCube()
	c.ApplyMoves(setup)
	return c.Facelets(), nil
}
