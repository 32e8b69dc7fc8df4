// Package render draws facelet grids as colored terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubetools/plltrainer"
)

// Styles
var colorStyles = map[plltrainer.Color]lipgloss.Style{
	plltrainer.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
	plltrainer.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
	plltrainer.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("232")),
	plltrainer.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	plltrainer.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	plltrainer.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// sticker is one facelet cell: the color's initial letter on a block of
// that color, so the net stays readable without terminal colors.
func sticker(c plltrainer.Color) string {
	label := " " + c.String()[:1]
	style, ok := colorStyles[c]
	if !ok {
		return label
	}
	return style.Render(label)
}

// Net renders the grid as an unfolded cube: U on top, then the
// L F R B band, then D.
func Net(grid plltrainer.FaceletGrid) string {
	var b strings.Builder

	indent := strings.Repeat(" ", 6)
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeRow(&b, grid[plltrainer.CubeFaceU], row)
		b.WriteString("\n")
	}

	band := []plltrainer.CubeFace{
		plltrainer.CubeFaceL, plltrainer.CubeFaceF,
		plltrainer.CubeFaceR, plltrainer.CubeFaceB,
	}
	for row := 0; row < 3; row++ {
		for _, face := range band {
			writeRow(&b, grid[face], row)
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeRow(&b, grid[plltrainer.CubeFaceD], row)
		b.WriteString("\n")
	}

	return b.String()
}

// Top renders only the up face with its surrounding top rows, the view
// a trainer question needs: the permuted layer seen from above.
func Top(grid plltrainer.FaceletGrid) string {
	var b strings.Builder

	indent := strings.Repeat(" ", 6)

	// Back face top row, mirrored so it reads as seen from the front
	b.WriteString(indent)
	back := grid[plltrainer.CubeFaceB]
	for i := 2; i >= 0; i-- {
		b.WriteString(sticker(back[i]))
	}
	b.WriteString("\n")

	left := grid[plltrainer.CubeFaceL]
	right := grid[plltrainer.CubeFaceR]
	up := grid[plltrainer.CubeFaceU]
	for row := 0; row < 3; row++ {
		// Side strips run back to front alongside U's rows.
		b.WriteString("    ")
		b.WriteString(sticker(left[row]))
		writeRow(&b, up, row)
		b.WriteString(sticker(right[2-row]))
		b.WriteString("\n")
	}

	b.WriteString(indent)
	front := grid[plltrainer.CubeFaceF]
	for i := 0; i < 3; i++ {
		b.WriteString(sticker(front[i]))
	}
	b.WriteString("\n")

	return b.String()
}

// Legend returns a short color key for monochrome terminals.
func Legend() string {
	return labelStyle.Render("W=white Y=yellow G=green B=blue R=red O=orange")
}

func writeRow(b *strings.Builder, face [9]plltrainer.Color, row int) {
	for col := 0; col < 3; col++ {
		b.WriteString(sticker(face[row*3+col]))
	}
}
