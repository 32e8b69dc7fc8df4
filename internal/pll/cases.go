// Package pll holds the built-in database of PLL (Permutation of the
// Last Layer) cases: the 21 named permutations and a canonical solving
// algorithm for each. The database is embedded at build time and
// validated on first use, so a bad algorithm is a programming error,
// not a runtime condition.
package pll

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cubetools/plltrainer"
)

//go:embed cases.txt
var casesData string

// Case is a single PLL case: a canonical name (Aa, Gb, T, ...) and the
// algorithm that solves it.
type Case struct {
	Name      string
	Algorithm plltrainer.Algorithm
}

// Database is an immutable collection of PLL cases keyed by name.
// Lookups are case-insensitive. It implements plltrainer.CaseSource.
type Database struct {
	cases map[string]Case // keyed by lowercase name
	names []string        // canonical names, sorted
}

var (
	loadOnce sync.Once
	loaded   *Database
	loadErr  error
)

// Load returns the built-in case database, parsing and validating the
// embedded data on first call.
func Load() (*Database, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(casesData)
	})
	return loaded, loadErr
}

// MustLoad is Load for initialization paths where the embedded data is
// trusted. Panics on a corrupt database.
func MustLoad() *Database {
	db, err := Load()
	if err != nil {
		panic(err)
	}
	return db
}

// parse reads the "name algorithm" line format, rejecting duplicates
// and any algorithm that is not a pure last-layer permutation.
func parse(data string) (*Database, error) {
	db := &Database{cases: make(map[string]Case)}

	for lineNo, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, notation, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("pll: line %d: missing algorithm for %q", lineNo+1, line)
		}

		alg, err := plltrainer.ParseMoves(notation)
		if err != nil {
			return nil, fmt.Errorf("pll: case %s: %w", name, err)
		}
		if err := checkPermutation(alg); err != nil {
			return nil, fmt.Errorf("pll: case %s: %w", name, err)
		}

		key := strings.ToLower(name)
		if _, dup := db.cases[key]; dup {
			return nil, fmt.Errorf("pll: duplicate case %s", name)
		}
		db.cases[key] = Case{Name: name, Algorithm: alg}
		db.names = append(db.names, name)
	}

	if len(db.names) == 0 {
		return nil, fmt.Errorf("pll: embedded database is empty")
	}
	sort.Strings(db.names)
	return db, nil
}

// checkPermutation verifies that an algorithm only permutes the top
// layer of a solved cube: every other piece stays home and no piece
// changes orientation.
func checkPermutation(alg plltrainer.Algorithm) error {
	c := plltrainer.NewCube()
	c.ApplyMoves(alg)
	if err := c.Verify(); err != nil {
		return err
	}
	if !c.TopLayerPermutationOnly() {
		return fmt.Errorf("algorithm disturbs more than the top layer")
	}
	return nil
}

// Lookup returns the case's solving algorithm. Names match
// case-insensitively, so "aa" finds "Aa".
func (db *Database) Lookup(name string) (plltrainer.Algorithm, bool) {
	c, ok := db.cases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return c.Algorithm, true
}

// Get returns the full case record for a name, matched
// case-insensitively.
func (db *Database) Get(name string) (Case, bool) {
	c, ok := db.cases[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns the canonical case names in sorted order.
func (db *Database) Names() []string {
	out := make([]string, len(db.names))
	copy(out, db.names)
	return out
}

// Len returns the number of cases.
func (db *Database) Len() int {
	return len(db.names)
}
