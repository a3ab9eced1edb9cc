package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"paymulexport/internal/http"
)

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the PAYMUL export HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

			a.logger.InfoContext(ctx, "Starting application")

			httpServer := http.NewServer(a.service, a.logger, a.cfg.HTTP)

			if err := httpServer.Start(ctx); err != nil {
				return err
			}

			<-stop

			a.logger.InfoContext(ctx, "Shutting down...")

			shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.HTTP.ShutdownTimeout)
			defer cancel()

			if err := httpServer.Stop(shutdownCtx); err != nil {
				a.logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
			}

			a.logger.InfoContext(ctx, "Application shutdown complete")

			return nil
		},
	}
}
