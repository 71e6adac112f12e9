package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/foxrun/internal/platform/tui"
	"github.com/vovakirdan/foxrun/internal/profile"
	"github.com/vovakirdan/foxrun/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagSessionFPS  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the foxrun SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session. Profiles (orbs, trails, best score)
are kept per SSH user; all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.foxrun/host_key

Examples:
  foxrun serve                           # Listen on :23234 with auto-generated key
  foxrun serve --ssh :2222               # Listen on port 2222
  foxrun serve --host-key ./my_host_key  # Use specific host key
  foxrun serve --db ./foxrun.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagSessionFPS, "session-fps", 30, "Frame rate of each SSH session")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "foxrun-ssh")

	runnerCfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer store.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.FPS = flagSessionFPS
	cfg.Runner = runnerCfg

	if keys, err := store.Keys("ssh:"); err == nil {
		logger.Info("loaded player profiles", "players", countProfiles(keys))
	}

	server, err := tui.NewSSHServer(cfg, store, cloudService(store), logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting foxrun SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Serve(ctx)
}

// countProfiles counts namespaced profiles by their player id key.
func countProfiles(keys []string) int {
	n := 0
	for _, k := range keys {
		if strings.HasSuffix(k, ":"+profile.KeyPlayerID) {
			n++
		}
	}
	return n
}
