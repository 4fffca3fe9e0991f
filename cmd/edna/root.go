package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/config"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/logging"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/results"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/server"
)

// app carries the state PersistentPreRunE prepares for subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "edna",
		Short:         "E-DNA assessment scoring engine",
		Long:          "Scores E-DNA quiz answers into a seven-layer profile and serves the engine over MCP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "path to the YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(a),
		newScoreCmd(a),
		newHistoryCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// openStore opens the profile store or explains why it is unavailable.
func (a *app) openStore() (*results.Store, error) {
	if !a.cfg.StoreEnabled {
		return nil, fmt.Errorf("profile storage is disabled (store_enabled: false)")
	}
	return results.New(results.Config{DataDir: a.cfg.DataDir, HistoryLimit: a.cfg.HistoryLimit})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "edna v%s\n", server.Version)
		},
	}
}
