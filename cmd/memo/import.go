package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/memo/pkg/notebook"
	"github.com/aretw0/memo/pkg/transfer"
)

var importCmd = &cobra.Command{
	Use:   "import <file|glob>...",
	Short: "Import notes from export files",
	Long: `Import notes from JSON or YAML export files. Patterns support ** globs.
Imported notes get fresh ids and are placed before the existing ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		for _, pattern := range args {
			matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
			if err != nil {
				return fmt.Errorf("bad pattern %q: %w", pattern, err)
			}
			if len(matches) == 0 {
				return fmt.Errorf("no files match %s", pattern)
			}
			files = append(files, matches...)
		}

		svc, closeFn, err := openNotebook(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		var errs []error
		for _, path := range files {
			n, err := importFile(cmd, svc, path)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, describe(err)))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes from %s\n", n, path)
		}
		return errors.Join(errs...)
	},
}

func importFile(cmd *cobra.Command, svc *notebook.Service, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	res := <-svc.ImportAsync(cmd.Context(), f, transfer.FormatFromPath(path))
	return res.Count, res.Err
}

func init() {
	rootCmd.AddCommand(importCmd)
}
