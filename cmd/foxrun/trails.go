package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/foxrun/internal/profile"
	"github.com/vovakirdan/foxrun/internal/storage"
)

var trailsCmd = &cobra.Command{
	Use:   "trails",
	Short: "List the trail shop",
	Long: `List every trail with its price and whether you own it.

Examples:
  foxrun trails
  foxrun trails buy fire
  foxrun trails equip fire`,
	Args: cobra.NoArgs,
	RunE: runTrails,
}

var trailsBuyCmd = &cobra.Command{
	Use:   "buy <trail>",
	Short: "Buy a trail with orbs",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrailsBuy,
}

var trailsEquipCmd = &cobra.Command{
	Use:   "equip <trail>",
	Short: "Equip an owned trail",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrailsEquip,
}

func init() {
	trailsCmd.AddCommand(trailsBuyCmd)
	trailsCmd.AddCommand(trailsEquipCmd)
}

// withProfile opens the database and loads the local profile.
func withProfile(fn func(p *profile.Profile) error) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer store.Close()

	return fn(profile.Load(store, newLogger(io.Discard, "")))
}

func lookupTrail(id string) (profile.Trail, error) {
	t, ok := profile.LookupTrail(id)
	if !ok {
		return t, fmt.Errorf("unknown trail %q (run 'foxrun trails' to list them)", id)
	}
	return t, nil
}

func runTrails(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withProfile(func(p *profile.Profile) error {
		fmt.Fprintf(out, "Orbs: %s\n\n", humanize.Comma(int64(p.Orbs())))
		fmt.Fprintf(out, "  %-10s  %-20s  %-7s  %s\n", "ID", "Name", "Price", "")
		for _, t := range profile.Catalog() {
			status := ""
			switch {
			case p.Equipped() == t.ID:
				status = "equipped"
			case p.IsUnlocked(t.ID):
				status = "owned"
			}
			fmt.Fprintf(out, "  %-10s  %-20s  %-7s  %s\n", t.ID, t.Name, humanize.Comma(int64(t.Price)), status)
		}
		return nil
	})
}

func runTrailsBuy(cmd *cobra.Command, args []string) error {
	t, err := lookupTrail(args[0])
	if err != nil {
		return err
	}
	return withProfile(func(p *profile.Profile) error {
		if p.IsUnlocked(t.ID) {
			return fmt.Errorf("you already own %s", t.Name)
		}
		if !p.BuyTrail(t.ID) {
			return fmt.Errorf("%s costs %s orbs, you have %s",
				t.Name, humanize.Comma(int64(t.Price)), humanize.Comma(int64(p.Orbs())))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unlocked %s. Orbs left: %s\n", t.Name, humanize.Comma(int64(p.Orbs())))
		return nil
	})
}

func runTrailsEquip(cmd *cobra.Command, args []string) error {
	t, err := lookupTrail(args[0])
	if err != nil {
		return err
	}
	return withProfile(func(p *profile.Profile) error {
		if !p.EquipTrail(t.ID) {
			return fmt.Errorf("you do not own %s yet", t.Name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Equipped %s\n", t.Name)
		return nil
	})
}
