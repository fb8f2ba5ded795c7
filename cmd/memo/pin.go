package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Toggle the pin of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openNotebook(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if _, err := svc.Open(args[0]); err != nil {
			return err
		}
		note, err := svc.TogglePinCurrent(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), pinMessage(note.Pinned))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
