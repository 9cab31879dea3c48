package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/curator-app/curator/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and a default config file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Default()
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if backend != "" {
			cfg.Backend = backend
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			fatal("Failed to create data directory", err)
		}

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
				fatal("Failed to create config directory", err)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				fatal("Failed to serialize config", err)
			}
			if err := os.WriteFile(configPath, data, 0o644); err != nil {
				fatal("Failed to write config", err)
			}
			fmt.Println("Wrote config to", configPath)
		}

		fmt.Println("Initialized curator catalogue in", cfg.DataDir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
