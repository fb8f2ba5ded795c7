package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/memo"
	"github.com/aretw0/memo/internal/config"
	"github.com/aretw0/memo/pkg/notebook"
)

var (
	verbose   bool
	storeDir  string
	adapter   string
	redisAddr string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memo",
	Short: "A small note keeper with categories, pins and JSON/YAML export",
	Long: `Memo keeps short notes with a title, a category and a pin flag.
The collection is stored as a single document in a directory, a SQLite file or Redis,
and can be exported to and imported from JSON or YAML files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)

		flags := cmd.Flags()
		if !flags.Changed("adapter") {
			adapter = cfg.Adapter
		}
		if !flags.Changed("redis-addr") {
			redisAddr = cfg.RedisAddr
		}
		if !flags.Changed("dir") {
			storeDir = cfg.Dir
		}
		if storeDir == "" {
			storeDir, err = memo.DefaultDir()
			if err != nil {
				return err
			}
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openNotebook opens the configured store and loads the collection.
func openNotebook(cmd *cobra.Command) (*notebook.Service, func() error, error) {
	svc, closeFn, err := memo.New(cmd.Context(), storeDir,
		memo.WithAdapter(adapter),
		memo.WithRedisAddr(redisAddr),
		memo.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open notes: %w", err)
	}
	return svc, closeFn, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storeDir, "dir", "", "Storage directory (default: ./.memo of the enclosing project or ~/.memo)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter: fs, sqlite, redis or memory (default fs)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "Redis address for the redis adapter")
}
