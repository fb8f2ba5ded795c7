package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/memo/pkg/transfer"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all notes to notes_export_<date>.<ext>",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := transfer.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		svc, closeFn, err := openNotebook(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		doc, err := svc.Export(format)
		if err != nil {
			return describe(err)
		}

		if err := os.MkdirAll(exportOut, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(exportOut, doc.Name)
		if err := os.WriteFile(path, doc.Data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to %s\n", doc.Count, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Output directory")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(transfer.FormatJSON), "Export format: json or yaml")
}
