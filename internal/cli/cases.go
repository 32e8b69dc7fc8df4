package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubetools/plltrainer"
	"github.com/cubetools/plltrainer/internal/pll"
	"github.com/cubetools/plltrainer/internal/render"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List the built-in PLL cases",
	RunE:  runCases,
}

var caseCmd = &cobra.Command{
	Use:   "case <name>",
	Short: "Show one PLL case and its algorithm",
	Long: `Render the state a PLL case presents (last layer toward the viewer)
together with the algorithm that solves it. Names are matched
case-insensitively.`,
	Args: cobra.ExactArgs(1),
	RunE: runCase,
}

func init() {
	caseCmd.Flags().String("auf", "", "Apply a final U-layer turn: U, U' or U2")
	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(caseCmd)
}

func runCases(cmd *cobra.Command, args []string) error {
	db, err := pll.Load()
	if err != nil {
		return err
	}

	for _, name := range db.Names() {
		c, _ := db.Get(name)
		fmt.Printf("%-3s %s\n", c.Name, c.Algorithm)
	}
	return nil
}

func runCase(cmd *cobra.Command, args []string) error {
	db, err := pll.Load()
	if err != nil {
		return err
	}

	c, ok := db.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown case %q, run 'plltrainer cases' for the list", args[0])
	}

	aufFlag, _ := cmd.Flags().GetString("auf")
	auf, ok := parseAUFFlag(aufFlag)
	if !ok {
		return fmt.Errorf("invalid --auf %q, want U, U' or U2", aufFlag)
	}

	grid, err := plltrainer.VisualizeCase(db, c.Name, auf)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n\n", c.Name, c.Algorithm)
	fmt.Println(render.Top(grid))
	return nil
}

func parseAUFFlag(s string) (plltrainer.AUF, bool) {
	switch s {
	case "":
		return plltrainer.AUFNone, true
	case "U":
		return plltrainer.AUFCW, true
	case "U'":
		return plltrainer.AUFCCW, true
	case "U2":
		return plltrainer.AUFHalf, true
	default:
		return plltrainer.AUFNone, false
	}
}
