package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/fadedpez/warsim/pkg/services/simulation"
)

func newBatchCmd(a *app, w *warnings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Play many games in parallel and summarise them",
		Args:  cobra.NoArgs,
	}

	games := newLenientInt(cmd.Flags(), "games", 0, "number of games (default from config)", w)
	workers := newLenientInt(cmd.Flags(), "workers", 0, "games played at once (default one per CPU)", w)
	seed := newLenientInt(cmd.Flags(), "seed", 0, "seed of the first game; game i uses seed+i", w)
	maxBattles := newLenientInt(cmd.Flags(), "max-battles", 0, "battle cap per game (default from config)", w)
	top := newLenientInt(cmd.Flags(), "top", 0, "also list the N longest games", w)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		opts := simulation.BatchOptions{
			Games:      int(games.Or(int64(a.cfg.Games))),
			Workers:    int(workers.Or(int64(a.cfg.Workers))),
			MaxBattles: maxBattles.Or(a.cfg.MaxBattles),
			Seed:       seed.Ptr(a.cfg.Seed),
		}
		if opts.Games < 1 {
			a.logger.Warn("--games must be positive, got %d; using %d", opts.Games, a.cfg.Games)
			opts.Games = a.cfg.Games
		}
		if opts.MaxBattles < 1 {
			a.logger.Warn("--max-battles must be positive, got %d; using %d", opts.MaxBattles, a.cfg.MaxBattles)
			opts.MaxBattles = a.cfg.MaxBattles
		}

		report, err := a.simulation.RunBatch(cmd.Context(), opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, report)

		n := top.Or(0)
		if n < 1 {
			return nil
		}
		board, err := a.statistics.GetLongestGames(cmd.Context(), report.BatchID, 1, int(n))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Longest Games:")
		for _, game := range board.Games {
			marks := ""
			if game.IsLongest {
				marks += " [longest]"
			}
			if game.IsDeepest {
				marks += " [most wars]"
			}
			fmt.Fprintf(out, "  %d. game %d (seed %d): %s battles, %s wars%s\n",
				game.Rank, game.Index, game.Seed,
				humanize.Comma(game.Metadata.Battles), humanize.Comma(game.Metadata.DeepBattles), marks)
		}
		return nil
	}

	return cmd
}
