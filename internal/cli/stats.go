package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubetools/plltrainer/internal/analysis"
	"github.com/cubetools/plltrainer/internal/pll"
	"github.com/cubetools/plltrainer/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics",
	Long: `Print per-case accuracy and reaction times from the training database,
followed by overall totals. With --case, print a progress report for a
single case instead.`,
	RunE: runStats,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded training data",
	RunE:  runReset,
}

func init() {
	statsCmd.Flags().Bool("sessions", false, "List recent sessions instead of per-case stats")
	statsCmd.Flags().String("case", "", "Show a progress report for one case")
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if listSessions, _ := cmd.Flags().GetBool("sessions"); listSessions {
		return printSessions(db)
	}
	if caseName, _ := cmd.Flags().GetString("case"); caseName != "" {
		return printCaseTrend(db, caseName)
	}
	return printCaseStats(db)
}

func printCaseTrend(db *storage.DB, caseName string) error {
	cases, err := pll.Load()
	if err != nil {
		return err
	}
	pllCase, ok := cases.Get(caseName)
	if !ok {
		return fmt.Errorf("unknown case %q", caseName)
	}

	attempts, err := storage.NewAttemptRepository(db).ListByCase(pllCase.Name)
	if err != nil {
		return err
	}
	report := analysis.AnalyzeTrend(pllCase.Name, attempts)

	fmt.Printf("%s perm  %s\n\n", report.CaseName, pllCase.Algorithm)
	if report.TotalAttempts == 0 {
		fmt.Println("No attempts recorded.")
		return nil
	}

	fmt.Printf("Attempts: %d   Correct: %d   Accuracy: %.1f%%\n",
		report.TotalAttempts, report.CorrectAttempts, report.AccuracyPct)
	if report.CorrectAttempts > 0 {
		fmt.Printf("Best recognition: %.2fs   Average: %.2fs\n",
			float64(report.BestMs)/1000, report.AvgMs/1000)
		fmt.Printf("Improvement: %+.1f%%   Consistency: %.0f/100\n",
			report.ImprovementPct, report.ConsistencyScore)
	}
	for _, n := range []int{5, 10, 25} {
		if avg, ok := report.RollingAvgs[n]; ok {
			fmt.Printf("Last %2d avg: %.2fs\n", n, avg/1000)
		}
	}
	return nil
}

func printCaseStats(db *storage.DB) error {
	cases, err := pll.Load()
	if err != nil {
		return err
	}
	attempts := storage.NewAttemptRepository(db)

	fmt.Printf("%-4s %9s %9s %9s %9s\n", "Case", "Attempts", "Correct", "Accuracy", "Avg (s)")
	for _, name := range cases.Names() {
		stats, err := attempts.StatsForCase(name)
		if err != nil {
			return err
		}
		if stats.TotalAttempts == 0 {
			fmt.Printf("%-4s %9s\n", name, "-")
			continue
		}
		fmt.Printf("%-4s %9d %9d %8.1f%% %9.2f\n",
			name, stats.TotalAttempts, stats.CorrectAttempts,
			stats.Accuracy, stats.AverageMs/1000)
	}

	overall, err := attempts.StatsOverall()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Sessions: %d   Attempts: %d   Accuracy: %.1f%%\n",
		overall.TotalSessions, overall.TotalAttempts, overall.Accuracy)
	if overall.BestMs > 0 {
		fmt.Printf("Best recognition: %.2fs   Average: %.2fs\n",
			float64(overall.BestMs)/1000, overall.AverageMs/1000)
	}
	return nil
}

func printSessions(db *storage.DB) error {
	sessions, err := storage.NewSessionRepository(db).List(20)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	for _, s := range sessions {
		status := "running"
		if s.EndedAt != nil {
			status = s.Duration().Round(time.Second).String()
		}
		fmt.Printf("%s  %s  %2d/%2d correct  %s\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			status, s.CorrectAttempts, s.TotalAttempts,
			shorten(s.SessionID))
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return err
	}
	fmt.Println("Training data deleted.")
	return nil
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
