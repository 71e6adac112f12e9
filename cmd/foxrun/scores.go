package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/foxrun/internal/cloud"
	"github.com/vovakirdan/foxrun/internal/platform/tui"
	"github.com/vovakirdan/foxrun/internal/profile"
	"github.com/vovakirdan/foxrun/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores and your own recent runs.

Examples:
  foxrun scores
  foxrun scores --limit 25
  foxrun scores --clear-runs
  foxrun scores --cloud http://localhost:8080`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show (max 100)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear-runs", false, "Delete your local run history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	p := profile.Load(store, newLogger(io.Discard, ""))

	if flagScoresClear {
		if err := store.ClearRuns(p.PlayerID()); err != nil {
			return err
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	entries, err := cloudService(store).Leaderboard(ctx, flagScoresLimit)
	fmt.Fprintln(out, "Leaderboard")
	fmt.Fprintln(out)
	switch {
	case errors.Is(err, cloud.ErrUnavailable):
		fmt.Fprintln(out, "Leaderboard unavailable.")
	case err != nil:
		return err
	case len(entries) == 0:
		fmt.Fprintln(out, "Be the first to set a score!")
	default:
		printEntries(out, entries, p.PlayerID())
	}

	printRuns(out, store, p)
	return nil
}

func printEntries(out io.Writer, entries []cloud.Entry, playerID string) {
	fmt.Fprintf(out, "  %-4s  %-6s  %-10s  %s\n", "Rank", "Name", "Score", "When")
	fmt.Fprintf(out, "  %-4s  %-6s  %-10s  %s\n", "----", "----", "-----", "----")

	for i, e := range entries {
		name := e.Initials
		if e.PlayerID == playerID {
			name += "*"
		}
		fmt.Fprintf(out, "  %-4s  %-6s  %-10s  %s\n",
			tui.Medal(i+1), name, humanize.Comma(int64(e.Score)), humanize.Time(e.CreatedAt))
	}
}

func printRuns(out io.Writer, store *storage.Store, p *profile.Profile) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %s   Orbs: %s\n", humanize.Comma(int64(p.HighScore())), humanize.Comma(int64(p.Orbs())))

	stats, err := store.GetRunStats(p.PlayerID())
	if err != nil || stats.Runs == 0 {
		return
	}
	fmt.Fprintf(out, "Runs: %d   Average: %.0f   Orbs earned: %s   Last played %s\n",
		stats.Runs, stats.AvgScore, humanize.Comma(stats.TotalOrbs), humanize.Time(stats.LastPlayed))

	runs, err := store.RecentRuns(p.PlayerID(), 5)
	if err != nil {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent runs")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-10s  +%-5d orbs  %s\n", humanize.Comma(int64(r.Score)), r.OrbsEarned, humanize.Time(r.CreatedAt))
	}
}
