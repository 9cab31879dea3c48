package main

import (
	"fmt"
	"log/slog"
	"os"

	curator "github.com/curator-app/curator"
	"github.com/curator-app/curator/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	dataDir    string
	backend    string
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "curator",
	Short: "A local-first catalogue for the things you collect",
	Long: `Curator keeps typed collections (films, books, places, recipes, notes,
links) and their items in a local key-value store. No accounts, no sync,
just your catalogue on your disk.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Substrate backend: file, bolt, sqlite, memory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file location")
}

// openApp loads the config, applies flag overrides and opens the app.
func openApp() *curator.App {
	cfg, err := config.Load(configPath)
	if err != nil {
		fatal("Failed to load config", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if backend != "" {
		cfg.Backend = backend
	}

	app, err := curator.Open(cfg.DataDir,
		curator.WithBackend(cfg.Backend),
		curator.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Failed to open catalogue", err)
	}
	return app
}
