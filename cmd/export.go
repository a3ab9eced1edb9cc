package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"paymulexport/internal/http"
)

func exportCommand(a *app) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export <order.json>",
		Short: "Write the PAYMUL file for a payment order read from JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read payment order: %w", err)
			}

			var req http.ExportRequest
			if err = json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("failed to decode payment order: %w", err)
			}

			if err = validator.New(validator.WithRequiredStructEnabled()).StructCtx(ctx, req); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			order, err := req.ToDomain()
			if err != nil {
				return err
			}

			export, err := a.service.ExportPaymul(ctx, order)
			if err != nil {
				return err
			}

			path := filepath.Join(outputDir, export.FileName)
			if err = os.WriteFile(path, export.Content, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			a.logger.InfoContext(ctx, "PAYMUL file written",
				"path", path,
				"interchange_reference", export.InterchangeReference,
				"total", export.TotalAmount.StringFixed(2),
			)
			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "directory the PAYMUL file is written to")

	return cmd
}
