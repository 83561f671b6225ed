// Item catalog commands: add, list, search.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage the item catalog",
}

var itemAddFlags struct {
	name        string
	description string
	category    string
	effect      string
	buyPrice    int
	sellPrice   int
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableItems)
		if err != nil {
			return err
		}
		it := &types.Item{
			Name:        itemAddFlags.name,
			Description: itemAddFlags.description,
			Category:    itemAddFlags.category,
			Effect:      itemAddFlags.effect,
			BuyPrice:    itemAddFlags.buyPrice,
			SellPrice:   itemAddFlags.sellPrice,
		}
		id, err := table.Set("", it)
		if err != nil {
			return err
		}
		fmt.Printf("Added item %s (%s)\n", it.Name, id)
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableItems)
		if err != nil {
			return err
		}
		entities, err := table.Fetch(nil)
		if err != nil {
			return err
		}
		return printEntities(entities)
	},
}

var itemSearchCategory string

var itemSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search the item catalog by name or category substring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableItems)
		if err != nil {
			return err
		}
		filter := map[string]any{}
		if len(args) == 1 {
			filter["name"] = args[0]
		}
		if itemSearchCategory != "" {
			filter["category"] = itemSearchCategory
		}
		entities, err := table.Fetch(filter)
		if err != nil {
			return err
		}
		return printEntities(entities)
	},
}

func init() {
	f := itemAddCmd.Flags()
	f.StringVar(&itemAddFlags.name, "name", "", "item name")
	f.StringVar(&itemAddFlags.description, "description", "", "description")
	f.StringVar(&itemAddFlags.category, "category", "", "category (Vitamin, Evolution Stone, Leveling Item, ...)")
	f.StringVar(&itemAddFlags.effect, "effect", "", "effect text")
	f.IntVar(&itemAddFlags.buyPrice, "buy-price", 0, "buy price in PKD (0 = not for sale)")
	f.IntVar(&itemAddFlags.sellPrice, "sell-price", 0, "sell price in PKD")
	itemAddCmd.MarkFlagRequired("name")
	itemAddCmd.MarkFlagRequired("category")

	itemSearchCmd.Flags().StringVar(&itemSearchCategory, "category", "", "filter by category substring")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemSearchCmd)
}
