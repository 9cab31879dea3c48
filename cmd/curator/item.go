package main

import (
	"context"
	"fmt"

	"github.com/curator-app/curator/pkg/item"
	"github.com/spf13/cobra"
)

var (
	itemTags  []string
	itemNotes string
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add COLLECTION_ID TITLE",
	Short: "Add an item to a collection",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()
		ctx := context.Background()

		c, err := app.Collections.GetByID(ctx, args[0])
		if err != nil {
			fatal("Failed to look up collection", err)
		}
		if c == nil {
			fatal("Unknown collection", fmt.Errorf("no collection with id %s", args[0]))
		}

		it, err := app.Items.Create(ctx, item.CreateInput{
			CollectionID:   c.ID,
			CollectionType: c.Type,
			Title:          args[1],
			Tags:           itemTags,
			Notes:          itemNotes,
		})
		if err != nil {
			fatal("Failed to add item", err)
		}
		fmt.Printf("Added %q to %q (%s)\n", it.Title, c.Name, it.ID)
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list COLLECTION_ID",
	Short: "List the items of a collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()

		items, err := app.Items.GetByCollection(context.Background(), args[0])
		if err != nil {
			fatal("Failed to list items", err)
		}
		for _, it := range items {
			marker := " "
			if it.Succeeded() {
				marker = "*"
			}
			fmt.Printf("%s %-40s %s\n", marker, it.Title, it.ID)
		}
	},
}

var itemDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark an item as successfully used",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()

		it, err := app.Items.MarkSuccess(context.Background(), args[0])
		if err != nil {
			fatal("Failed to mark item", err)
		}
		if it == nil {
			fatal("Unknown item", fmt.Errorf("no item with id %s", args[0]))
		}
		fmt.Printf("Marked %q as used on %s\n", it.Title, it.SuccessAt.Format("2006-01-02"))
	},
}

var itemDuplicateCmd = &cobra.Command{
	Use:   "duplicate ID",
	Short: "Duplicate an item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()

		clone, err := app.Items.Duplicate(context.Background(), args[0])
		if err != nil {
			fatal("Failed to duplicate item", err)
		}
		if clone == nil {
			fatal("Unknown item", fmt.Errorf("no item with id %s", args[0]))
		}
		fmt.Printf("Created %q (%s)\n", clone.Title, clone.ID)
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()

		if err := app.Items.Delete(context.Background(), args[0]); err != nil {
			fatal("Failed to delete item", err)
		}
		fmt.Println("Deleted item", args[0])
	},
}

func init() {
	itemAddCmd.Flags().StringSliceVar(&itemTags, "tag", nil, "Tags for the item (repeatable)")
	itemAddCmd.Flags().StringVar(&itemNotes, "notes", "", "Free-form notes")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemDoneCmd)
	itemCmd.AddCommand(itemDuplicateCmd)
	itemCmd.AddCommand(itemDeleteCmd)
	rootCmd.AddCommand(itemCmd)
}
