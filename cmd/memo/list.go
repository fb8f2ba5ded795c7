package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/memo/pkg/core"
)

var (
	listJSON     bool
	listQuery    string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, pinned first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openNotebook(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		category := core.Category(listCategory)
		notes := svc.Search(listQuery, category)

		out := cmd.OutOrStdout()
		if listJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(notes)
		}

		if len(notes) == 0 {
			if core.IsIdentityFilter(listQuery, category) {
				fmt.Fprintln(out, "No notes")
			} else {
				fmt.Fprintln(out, "No notes match the search")
			}
			return nil
		}

		now := time.Now()
		for _, note := range notes {
			marker := " "
			if note.Pinned {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s  %s  [%s]  %s\n",
				marker, note.ID, note.DisplayTitle(), note.Category.Label(), formatDate(note.UpdatedAt, now))

			preview := strings.ReplaceAll(note.Preview(previewLength), "\n", " ")
			fmt.Fprintf(out, "    %s\n", preview)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Case-insensitive text in title or content")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", string(core.CategoryAll), "Category filter: all, work, personal, ideas or other")
}
