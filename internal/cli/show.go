package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubetools/plltrainer"
	"github.com/cubetools/plltrainer/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [moves...]",
	Short: "Render the cube state after a move sequence",
	Long: `Apply a move sequence to a solved cube and print the resulting state
as an unfolded net.

Example:
  plltrainer show "R U R' U'"
  plltrainer show R U R\' U\'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	notation := strings.Join(args, " ")

	grid, err := plltrainer.VisualizeMoves(notation)
	if err != nil {
		return fmt.Errorf("invalid moves: %w", err)
	}

	fmt.Println(render.Net(grid))
	return nil
}
