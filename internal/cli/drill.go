package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubetools/plltrainer/internal/pll"
	"github.com/cubetools/plltrainer/internal/trainer"
	"github.com/cubetools/plltrainer/internal/tui"
)

var drillCmd = &cobra.Command{
	Use:   "drill [case...]",
	Short: "Interactive recognition drill",
	Long: `Start an interactive drill: each round shows a scrambled last layer and
you type the case name. Results are stored in the training database.

With no arguments every case is drilled; pass case names to restrict
the set:

  plltrainer drill
  plltrainer drill Ga Gb Gc Gd`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().Bool("no-save", false, "Do not record this session")
	rootCmd.AddCommand(drillCmd)
}

func runDrill(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cases, err := pll.Load()
	if err != nil {
		return err
	}

	selected := args
	if len(selected) == 0 {
		selected = cases.Names()
	}

	policy := trainer.Policy{
		PreRotate:  cfg.Training.PreRotate,
		PostRotate: cfg.Training.PostRotate,
		PostAUF:    cfg.Training.PostAUF,
		AllowNoAUF: cfg.Training.AllowNoAUF,
	}

	noSave, _ := cmd.Flags().GetBool("no-save")
	if noSave {
		return tui.Run(nil, cases, policy, selected)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return tui.Run(db, cases, policy, selected)
}
