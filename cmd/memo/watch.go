package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/memo/pkg/inbox"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Import export files dropped into a directory",
	Long: `Watch an inbox directory and import every matching file written to it.
Imported files are moved to <dir>/imported; rejected files stay in place.
Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openNotebook(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		results := make(chan inbox.Result, 64)
		w := inbox.New(svc, inbox.Config{
			Dir:     args[0],
			Pattern: watchPattern,
			Logger:  slog.Default(),
			OnResult: func(res inbox.Result) {
				select {
				case results <- res:
				default:
					slog.Warn("result dropped, output is behind", "path", res.Path)
				}
			},
		})
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()

		src := inbox.NewSource(results)
		if err := src.Start(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", args[0])

		events := src.Events()
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				fmt.Fprintln(out, ev)
			case <-w.Done():
				if ctx.Err() == nil {
					return errors.New("inbox watcher stopped unexpectedly")
				}
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", inbox.DefaultPattern, "Glob matched against file names")
}
