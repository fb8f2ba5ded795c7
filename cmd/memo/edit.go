package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/memo/pkg/core"
)

var (
	editTitle    string
	editContent  string
	editCategory string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a note",
	Long:  `Update a note. Omitted flags keep the current value.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openNotebook(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		draft, err := svc.Open(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("title") {
			draft.Title = editTitle
		}
		if flags.Changed("content") {
			draft.Content = editContent
		}
		if flags.Changed("category") {
			draft.Category = core.Category(editCategory)
		}

		if _, err := svc.SaveCurrent(cmd.Context(), draft); err != nil {
			return describe(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Note updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category")
}
