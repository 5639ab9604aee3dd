package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fadedpez/warsim/pkg/war"
)

func newPlayCmd(a *app, w *warnings) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game, printing every battle",
		Args:  cobra.NoArgs,
	}

	seed := newLenientInt(cmd.Flags(), "seed", 0, "game seed (random when unset)", w)
	maxBattles := newLenientInt(cmd.Flags(), "max-battles", 0, "stop after this many battles (default from config)", w)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		gameSeed := seed.Ptr(a.cfg.Seed)
		if gameSeed == nil {
			s := a.seeds.Next()
			gameSeed = &s
		}
		limit := maxBattles.Or(a.cfg.MaxBattles)
		if limit < 1 {
			a.logger.Warn("--max-battles must be positive, got %d; using %d", limit, a.cfg.MaxBattles)
			limit = a.cfg.MaxBattles
		}

		var observe func(int64, *war.Battle)
		if a.cfg.Verbose && !quiet {
			observe = func(n int64, battle *war.Battle) {
				fmt.Fprintf(out, "%d: %s\n", n, battle)
			}
		}

		a.logger.Debug("playing seed %d with at most %d battles", *gameSeed, limit)
		meta := a.simulation.PlayGame(*gameSeed, limit, observe)

		fmt.Fprintf(out, "Seed: %d\n", *gameSeed)
		if !meta.IsComplete {
			fmt.Fprintf(out, "Stopped after %d battles without a winner\n", meta.Battles)
		}
		fmt.Fprintln(out, meta)
		return nil
	}

	return cmd
}
