// foxrun is an endless three-lane runner for the terminal.
//
// Usage:
//
//	foxrun play              - Play locally
//	foxrun serve             - Start SSH server for remote play
//	foxrun cloud             - Serve the high score and leaderboard API
//	foxrun scores            - Show the leaderboard
//	foxrun trails            - List, buy and equip trails
//	foxrun simulate          - Run headless and print a trace
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.foxrun/foxrun.db)
//	--config <path>       - Custom runner config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--cloud <url>         - Leaderboard API base URL (default: local database)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/foxrun/internal/cloud"
	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagCloud      string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "foxrun",
	Short: "foxrun - an endless three-lane runner in your terminal",
	Long: `foxrun is an endless runner: switch lanes to dodge the orbs rolling at you,
grab shields and score multipliers, and spend what you earn on trails.

Available commands:
  play      - Play locally
  serve     - Start SSH server for remote play
  cloud     - Serve the high score and leaderboard API over HTTP
  scores    - View the leaderboard
  trails    - Browse, buy and equip trails
  simulate  - Headless run for testing and tuning

Examples:
  foxrun play
  foxrun play --difficulty hard
  foxrun serve --ssh :2222
  foxrun cloud --listen :8080
  foxrun play --cloud http://localhost:8080
  foxrun simulate --seed 42 --ticks 1000`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.foxrun/foxrun.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagCloud, "cloud", "", "Leaderboard API base URL (empty = local database)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cloudCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(trailsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates the command logger.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the runner config and applies the difficulty preset.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// cloudService picks the leaderboard backend: the HTTP API when --cloud is
// set, the local database otherwise. Returns nil when neither is available.
func cloudService(store *storage.Store) cloud.Service {
	if flagCloud != "" {
		return cloud.NewHTTPClient(flagCloud, nil)
	}
	if store != nil {
		return cloud.NewLocal(store)
	}
	return nil
}
