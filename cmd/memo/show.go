package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openNotebook(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		note, err := svc.FindByID(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(note)
		}

		now := time.Now()
		fmt.Fprintf(out, "# %s\n", note.DisplayTitle())
		fmt.Fprintf(out, "id:       %s\n", note.ID)
		fmt.Fprintf(out, "category: %s\n", note.Category.Label())
		fmt.Fprintf(out, "created:  %s\n", formatDate(note.CreatedAt, now))
		fmt.Fprintf(out, "updated:  %s\n", formatDate(note.UpdatedAt, now))
		if note.Pinned {
			fmt.Fprintln(out, "pinned:   yes")
		}
		fmt.Fprintf(out, "\n%s\n", note.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
