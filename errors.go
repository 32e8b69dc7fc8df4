package plltrainer

import (
	"errors"
	"fmt"
)

// Sentinel errors for the plltrainer package.
// Use errors.Is to check: errors.Is(err, plltrainer.ErrInvalidNotation)
var (
	ErrInvalidNotation = errors.New("plltrainer: invalid move notation")
	ErrUnknownCase     = errors.New("plltrainer: unknown case")
)

// ParseError reports a malformed notation token and where it appeared.
// Pos is the zero-based index of the token within the whitespace-separated
// input.
type ParseError struct {
	Token string
	Pos   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("plltrainer: invalid move notation %q at token %d", e.Token, e.Pos)
}

// Is lets errors.Is(err, ErrInvalidNotation) match a ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidNotation
}

// UnknownCaseError reports a case name not present in the case database.
type UnknownCaseError struct {
	Name string
}

func (e *UnknownCaseError) Error() string {
	return fmt.Sprintf("plltrainer: unknown case %q", e.Name)
}

// Is lets errors.Is(err, ErrUnknownCase) match an UnknownCaseError.
func (e *UnknownCaseError) Is(target error) bool {
	return target == ErrUnknownCase
}
