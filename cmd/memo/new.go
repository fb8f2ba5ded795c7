package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/memo/pkg/core"
)

var (
	newTitle    string
	newContent  string
	newCategory string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openNotebook(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		draft := svc.NewDraft()
		draft.Title = newTitle
		draft.Content = newContent
		if newCategory != "" {
			draft.Category = core.Category(newCategory)
		}

		note, err := svc.SaveCurrent(cmd.Context(), draft)
		if err != nil {
			return describe(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created a new note %s\n", note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newTitle, "title", "", "Note title")
	newCmd.Flags().StringVar(&newContent, "content", "", "Note content (required)")
	newCmd.Flags().StringVar(&newCategory, "category", string(core.CategoryPersonal), "Category: work, personal, ideas or other")
}
