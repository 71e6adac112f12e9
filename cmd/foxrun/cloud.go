package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/foxrun/internal/cloud"
	"github.com/vovakirdan/foxrun/internal/storage"
)

var flagListen string

var cloudCmd = &cobra.Command{
	Use:   "cloud",
	Short: "Serve the high score and leaderboard API",
	Long: `Serve the cloud API over HTTP, backed by the local database.

Routes:
  GET  /v1/players/{id}/highscore
  PUT  /v1/players/{id}/highscore
  GET  /v1/leaderboard?limit=N
  POST /v1/leaderboard

Clients point at it with --cloud:
  foxrun cloud --listen :8080
  foxrun play --cloud http://localhost:8080`,
	Args: cobra.NoArgs,
	RunE: runCloud,
}

func init() {
	cloudCmd.Flags().StringVar(&flagListen, "listen", ":8080", "HTTP listen address (host:port)")
}

func runCloud(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "foxrun-cloud")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              flagListen,
		Handler:           cloud.NewHandler(cloud.NewLocal(store), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting cloud API", "address", flagListen)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("cloud API: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
