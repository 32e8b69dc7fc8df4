package plltrainer

import (
	"errors"
	"testing"
)

func TestParseMoves(t *testing.T) {
	alg, err := ParseMoves("R U2 R' D' x y2 M' S E2 z'")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Algorithm{
		{FaceR, CW}, {FaceU, Double}, {FaceR, CCW}, {FaceD, CCW},
		{RotX, CW}, {RotY, Double}, {SliceM, CCW}, {SliceS, CW},
		{SliceE, Double}, {RotZ, CCW},
	}
	if !alg.Equal(want) {
		t.Errorf("Parsed %v, want %v", alg, want)
	}
}

func TestParseMovesEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		alg, err := ParseMoves(input)
		if err != nil {
			t.Errorf("ParseMoves(%q) returned error: %v", input, err)
		}
		if len(alg) != 0 {
			t.Errorf("ParseMoves(%q) = %v, want empty", input, alg)
		}
	}
}

func TestParseMovesRejectsBadTokens(t *testing.T) {
	cases := []struct {
		input string
		token string
		pos   int
	}{
		{"Q", "Q", 0},
		{"R U W2", "W2", 2},
		{"R3", "R3", 0},
		{"'R", "'R", 0},
		{"r", "r", 0},
		{"R2'", "R2'", 0},
		{"R U''", "U''", 1},
		{"RU", "RU", 0},
	}
	for _, tc := range cases {
		_, err := ParseMoves(tc.input)
		if err == nil {
			t.Errorf("ParseMoves(%q) should fail", tc.input)
			continue
		}
		if !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMoves(%q) error should match ErrInvalidNotation, got %v", tc.input, err)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseMoves(%q) should return a *ParseError, got %T", tc.input, err)
			continue
		}
		if perr.Token != tc.token || perr.Pos != tc.pos {
			t.Errorf("ParseMoves(%q) = token %q at %d, want %q at %d",
				tc.input, perr.Token, perr.Pos, tc.token, tc.pos)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	cases := []struct {
		move Move
		want Move
	}{
		{R, RPrime},
		{RPrime, R},
		{R2, R2},
		{MPrime, M},
		{X2, X2},
	}
	for _, tc := range cases {
		if got := tc.move.Inverse(); got != tc.want {
			t.Errorf("%s.Inverse() = %s, want %s", tc.move, got, tc.want)
		}
	}
}

func TestAlgorithmInverse(t *testing.T) {
	alg, err := ParseMoves("R U'")
	if err != nil {
		t.Fatal(err)
	}
	if got := alg.Inverse().String(); got != "U R'" {
		t.Errorf("Inverse of R U' = %q, want %q", got, "U R'")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	notation := "R U R' U' R' F R2 U' R' U' R U R' F'"
	alg, err := ParseMoves(notation)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(alg); got != notation {
		t.Errorf("FormatMoves = %q, want %q", got, notation)
	}
}
