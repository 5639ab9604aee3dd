// Package cmd holds the warsim command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fadedpez/warsim/internal/config"
	"github.com/fadedpez/warsim/internal/logging"
	"github.com/fadedpez/warsim/pkg/repositories/results"
	"github.com/fadedpez/warsim/pkg/rng"
	"github.com/fadedpez/warsim/pkg/services/simulation"
	"github.com/fadedpez/warsim/pkg/services/statistics"
)

// app is what every subcommand runs against, built once flags are parsed
type app struct {
	cfg        *config.Config
	logger     *logging.Logger
	seeds      *rng.SeedGenerator
	repository results.Repository
	simulation *simulation.Service
	statistics *statistics.Service
}

func (a *app) close() {
	if a.repository == nil {
		return
	}
	if err := a.repository.Close(); err != nil {
		a.logger.LogError(err)
	}
}

// NewRootCmd creates the warsim root command
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		flagWarns  warnings
		a          = &app{}
	)

	rootCmd := &cobra.Command{
		Use:           "warsim",
		Short:         "Simulate games of the card game War",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				if _, err := logging.ParseLevel(logLevel); err != nil {
					flagWarns.add("--log-level: %v", err)
				} else {
					cfg.LogLevel = logLevel
				}
			}

			a.cfg = cfg
			a.logger = cfg.Logger()
			logging.Default = a.logger
			for _, w := range flagWarns {
				a.logger.Warn("flags: %s", w)
			}

			a.seeds = rng.NewTimeSeedGenerator()
			a.repository = results.NewMemoryRepository()
			a.simulation = simulation.NewService(a.repository,
				simulation.WithLogger(a.logger),
				simulation.WithSeedGenerator(a.seeds),
			)
			a.statistics = statistics.NewService(a.repository)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML simulation profile (defaults to $"+config.ConfigPathEnv+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")

	rootCmd.AddCommand(
		newPlayCmd(a, &flagWarns),
		newBatchCmd(a, &flagWarns),
	)

	return rootCmd
}
