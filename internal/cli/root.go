// Package cli implements the command-line interface for the trainer.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubetools/plltrainer/internal/config"
	"github.com/cubetools/plltrainer/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "plltrainer",
	Short: "PLL Recognition Trainer",
	Long: `PLL Recognition Trainer - practice naming Rubik's Cube last-layer
permutations from sight.

Render any move sequence or PLL case in the terminal, drill recognition
interactively, track your accuracy and reaction times, or run the HTTP
server that backs the web frontend.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.plltrainer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.plltrainer/training.db)")
}

// loadConfig loads the configuration honoring the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	return cfg, nil
}

// openDatabase opens and migrates the training database.
func openDatabase(cfg config.Config) (*storage.DB, error) {
	var db *storage.DB
	var err error
	if cfg.Database.Path != "" {
		db, err = storage.Open(cfg.Database.Path)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
