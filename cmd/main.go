package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"paymulexport/config"
	"paymulexport/internal/core"
	"paymulexport/internal/sqlite"
)

type app struct {
	cfg      config.Config
	logger   *slog.Logger
	dbClient *sqlite.Client
	service  core.Service
}

// setup loads the configuration and wires the export service on top of the
// sequence store, registering the interchange reference sequence if needed.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	dbClient, err := sqlite.NewClient(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db client: %w", err)
	}

	sequenceStore := dbClient.SequenceStore()
	if err = sequenceStore.Register(ctx, dbClient.DefaultSequence(cfg.Export.SequenceCode)); err != nil {
		dbClient.Close()
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.dbClient = dbClient
	a.service = core.NewService(sequenceStore, logger, cfg.Export)

	return nil
}

func (a *app) close() {
	if a.dbClient != nil {
		a.dbClient.Close()
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "paymulexport",
		Short:         "Export payment orders as HSBC PAYMUL files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	rootCmd.AddCommand(serveCommand(a))
	rootCmd.AddCommand(exportCommand(a))

	return rootCmd
}

func main() {
	ctx := context.Background()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		slog.ErrorContext(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
