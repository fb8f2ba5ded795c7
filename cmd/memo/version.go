package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/memo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of memo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "memo version %s\n", strings.TrimSpace(memo.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
