package pll

import (
	"testing"

	"github.com/cubetools/plltrainer"
)

func TestLoadAllCases(t *testing.T) {
	db, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if db.Len() != 21 {
		t.Errorf("Database has %d cases, want 21", db.Len())
	}

	want := []string{
		"Aa", "Ab", "E", "F", "Ga", "Gb", "Gc", "Gd", "H", "Ja", "Jb",
		"Na", "Nb", "Ra", "Rb", "T", "Ua", "Ub", "V", "Y", "Z",
	}
	names := db.Names()
	if len(names) != len(want) {
		t.Fatalf("Names returned %d entries, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestEveryCaseSolvesItsSetup(t *testing.T) {
	db := MustLoad()
	for _, name := range db.Names() {
		setup, err := plltrainer.CaseSetup(db, name, plltrainer.AUFNone)
		if err != nil {
			t.Fatalf("CaseSetup(%s) failed: %v", name, err)
		}

		c := plltrainer.NewCube()
		c.ApplyMoves(setup)
		if c.IsSolved() {
			t.Errorf("Case %s: setup should scramble the cube", name)
		}

		alg, _ := db.Lookup(name)
		c.ApplyMoves(alg)
		if !c.IsSolved() {
			t.Errorf("Case %s: its algorithm should solve its own setup", name)
		}
	}
}

func TestCaseAlgorithmsArePurePermutations(t *testing.T) {
	db := MustLoad()
	for _, name := range db.Names() {
		alg, ok := db.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%s) failed", name)
		}
		c := plltrainer.NewCube()
		c.ApplyMoves(alg)
		if !c.TopLayerPermutationOnly() {
			t.Errorf("Case %s: algorithm should only permute the top layer", name)
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	db := MustLoad()
	for _, name := range []string{"Aa", "aa", "AA", " aa "} {
		if _, ok := db.Lookup(name); !ok {
			t.Errorf("Lookup(%q) should find the Aa case", name)
		}
	}
	if _, ok := db.Lookup("Xx"); ok {
		t.Error("Lookup(Xx) should fail")
	}
}

func TestGetReturnsCanonicalName(t *testing.T) {
	db := MustLoad()
	c, ok := db.Get("ub")
	if !ok {
		t.Fatal("Get(ub) failed")
	}
	if c.Name != "Ub" {
		t.Errorf("Get(ub).Name = %q, want %q", c.Name, "Ub")
	}
	if len(c.Algorithm) == 0 {
		t.Error("Case algorithm should not be empty")
	}
}

func TestParseRejectsBadData(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing algorithm", "Aa"},
		{"bad notation", "Aa R Q"},
		{"duplicate", "Aa R U' R U R U R U' R' U' R2\naa R2 U R U R' U' R' U' R' U R'"},
		{"not a permutation", "Aa R"},
		{"empty", "# just a comment\n"},
	}
	for _, tc := range cases {
		if _, err := parse(tc.data); err == nil {
			t.Errorf("parse(%s) should fail", tc.name)
		}
	}
}
