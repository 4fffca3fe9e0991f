package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/results"
)

func newExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump every stored profile as JSON",
		Long: "Dump every stored profile as a versioned JSON document that\n" +
			"edna import can load into another data directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			dump, err := store.Export()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(dump, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			data = append(data, '\n')

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			a.logger.Info("profiles exported", zap.Int("count", len(dump.Profiles)), zap.String("path", output))
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d profiles to %s\n", len(dump.Profiles), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default: stdout)")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load profiles from an edna export",
		Long: "Load profiles from a file written by edna export, or - for stdin.\n" +
			"Profiles that already exist are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading export: %w", err)
			}

			var dump results.ExportData
			if err := json.Unmarshal(data, &dump); err != nil {
				return fmt.Errorf("decoding export: %w", err)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			res, err := store.Import(&dump)
			if err != nil {
				return err
			}
			a.logger.Info("profiles imported", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d profiles, skipped %d\n", res.Imported, res.Skipped)
			return nil
		},
	}
}
