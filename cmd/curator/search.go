package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchTags []string

var searchCmd = &cobra.Command{
	Use:   "search [QUERY]",
	Short: "Search collections and items",
	Long: `Search collection names and item titles for a substring, case-insensitively.
With --tag, items are matched by tag instead (any of the given tags).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()
		ctx := context.Background()

		if len(searchTags) > 0 {
			items, err := app.Items.SearchByTags(ctx, searchTags)
			if err != nil {
				fatal("Tag search failed", err)
			}
			for _, it := range items {
				fmt.Printf("item       %-40s %s\n", it.Title, it.ID)
			}
			return
		}

		if len(args) == 0 {
			fatal("Nothing to search for", fmt.Errorf("provide a query or --tag"))
		}
		query := args[0]

		collections, err := app.Collections.SearchByName(ctx, query)
		if err != nil {
			fatal("Collection search failed", err)
		}
		for _, c := range collections {
			fmt.Printf("collection %-40s %s\n", c.Name, c.ID)
		}

		items, err := app.Items.SearchByTitle(ctx, query)
		if err != nil {
			fatal("Item search failed", err)
		}
		for _, it := range items {
			fmt.Printf("item       %-40s %s\n", it.Title, it.ID)
		}
	},
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchTags, "tag", nil, "Match items by tag instead of title (repeatable)")
	rootCmd.AddCommand(searchCmd)
}
