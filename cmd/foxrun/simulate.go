package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/foxrun/internal/runner"
)

var (
	flagSimTicks     int
	flagSimDelta     float64
	flagSimRuns      int
	flagSimAutopilot bool
	flagSimLookahead float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless and print a trace",
	Long: `Run the simulation without a front end and print one trace line per run.
The same seed, ticks and delta always produce the same line.

Examples:
  foxrun simulate --seed 42
  foxrun simulate --seed 42 --ticks 5000 --autopilot
  foxrun simulate --seed 1 --runs 10 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Maximum ticks per run")
	simulateCmd.Flags().Float64Var(&flagSimDelta, "delta", 1, "Nominal frames per tick")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs, seeded seed, seed+1, ...")
	simulateCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Dodge obstacles instead of holding the centre lane")
	simulateCmd.Flags().Float64Var(&flagSimLookahead, "lookahead", 12, "Autopilot reaction distance in track units")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSimDelta <= 0 {
		return fmt.Errorf("--delta must be positive")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var pilot runner.Pilot = runner.StayPilot{}
	if flagSimAutopilot {
		pilot = runner.DodgePilot{Lookahead: flagSimLookahead}
	}

	for i := 0; i < max(flagSimRuns, 1); i++ {
		res := runner.Simulate(runner.SimOptions{
			Config:     cfg,
			Seed:       seed + int64(i),
			Ticks:      flagSimTicks,
			DeltaTicks: flagSimDelta,
			Pilot:      pilot,
		})
		fmt.Fprintf(cmd.OutOrStdout(), "%s delta=%g\n", res, flagSimDelta)
	}
	return nil
}
