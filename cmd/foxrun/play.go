package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/foxrun/internal/cloud"
	"github.com/vovakirdan/foxrun/internal/core"
	"github.com/vovakirdan/foxrun/internal/platform/tui"
	"github.com/vovakirdan/foxrun/internal/profile"
	"github.com/vovakirdan/foxrun/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local session.

Controls:
  Left/A/H    - Move one lane left
  Right/D/L   - Move one lane right
  Enter       - Select / post your score after a run
  R           - Run again (after game over)
  Tab         - Leaderboard
  T           - Trail shop
  Esc         - Back to menu
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  foxrun play
  foxrun play --difficulty hard
  foxrun play --config ./my-runner.yaml
  foxrun play --cloud http://scores.example.com`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Log to a file so the alt screen stays clean
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, "foxrun")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Without a database the profile lives for this session only
	var kv profile.KV = profile.NewMemoryKV()
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "error", err)
		store = nil
	} else {
		kv = store
		defer store.Close()
	}

	var dispatcher *cloud.Dispatcher
	if svc := cloudService(store); svc != nil {
		dispatcher = cloud.NewDispatcher(svc, logger)
		defer dispatcher.Close()
	}

	return tui.Run(tui.Options{
		Config:  cfg,
		Profile: profile.Load(kv, logger),
		Store:   store,
		Cloud:   dispatcher,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	})
}

// openLogFile opens ~/.foxrun/foxrun.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".foxrun")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "foxrun.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
