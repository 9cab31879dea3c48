package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/curator-app/curator/pkg/collection"
	"github.com/spf13/cobra"
)

var (
	collectionType string
	collectionDesc string
	listJSON       bool
	sortBy         string
	sortDesc       bool
	withItems      bool
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage collections",
}

var collectionCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()

		t, err := collection.ParseType(collectionType)
		if err != nil {
			fatal("Invalid type", err)
		}

		c, err := app.Collections.Create(context.Background(), collection.CreateInput{
			Name:        args[0],
			Type:        t,
			Description: collectionDesc,
		})
		if err != nil {
			fatal("Failed to create collection", err)
		}
		fmt.Printf("Created %s collection %q (%s)\n", c.Type, c.Name, c.ID)
	},
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()
		ctx := context.Background()

		collections, err := app.Collections.GetAll(ctx)
		if err != nil {
			fatal("Failed to list collections", err)
		}
		if sortBy != "" {
			collections = collection.Sort(collections, collection.SortField(sortBy), sortDesc)
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(collections); err != nil {
				fatal("Failed to encode collections", err)
			}
			return
		}

		for _, c := range collections {
			count, err := app.Items.CountByCollection(ctx, c.ID)
			if err != nil {
				fatal("Failed to count items", err)
			}
			fmt.Printf("%-10s %-30s %3d item(s)  %s\n", c.Type, c.Name, count, c.ID)
		}
	},
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a collection",
	Long: `Delete a collection by ID. By default its items are left in place;
pass --with-items to cascade the delete to every item in the collection.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()
		ctx := context.Background()

		if withItems {
			count, err := app.Collections.DeleteWithItems(ctx, args[0])
			if err != nil {
				fatal("Failed to delete collection", err)
			}
			fmt.Printf("Deleted collection and %d item(s)\n", count)
			return
		}

		if err := app.Collections.Delete(ctx, args[0]); err != nil {
			fatal("Failed to delete collection", err)
		}
		fmt.Println("Deleted collection", args[0])
	},
}

func init() {
	collectionCreateCmd.Flags().StringVarP(&collectionType, "type", "t", "other", "Collection type: film, series, book, place, recipe, note, link, other")
	collectionCreateCmd.Flags().StringVarP(&collectionDesc, "description", "d", "", "Collection description")
	collectionListCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	collectionListCmd.Flags().StringVar(&sortBy, "sort", "", "Sort by: name, createdAt, updatedAt, type")
	collectionListCmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort descending")
	collectionDeleteCmd.Flags().BoolVar(&withItems, "with-items", false, "Also delete every item in the collection")

	collectionCmd.AddCommand(collectionCreateCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	rootCmd.AddCommand(collectionCmd)
}
