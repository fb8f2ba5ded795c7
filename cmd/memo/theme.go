package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [on|off|toggle]",
	Short:     "Show or change the dark mode preference",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openNotebook(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			mode := "light"
			if svc.DarkMode() {
				mode = "dark"
			}
			fmt.Fprintf(out, "Current theme: %s\n", mode)
			return nil
		}

		var dark bool
		switch args[0] {
		case "toggle":
			dark, err = svc.ToggleTheme(cmd.Context())
		default:
			dark = args[0] == "on"
			err = svc.SetDarkMode(cmd.Context(), dark)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out, themeMessage(dark))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
