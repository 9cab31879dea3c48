package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/curator-app/curator/pkg/collection"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary ID",
	Short: "Show item and success counts for a collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()

		s, err := app.Collections.GetSummary(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, collection.ErrNotFound) {
				fatal("Unknown collection", err)
			}
			fatal("Failed to compute summary", err)
		}

		fmt.Printf("items:        %d\n", s.ItemCount)
		fmt.Printf("successes:    %d\n", s.SuccessCount)
		fmt.Printf("last updated: %s\n", s.LastUpdated.Format("2006-01-02 15:04"))
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
