package main

import (
	"fmt"

	curator "github.com/curator-app/curator"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of curator",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("curator version %s\n", curator.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
