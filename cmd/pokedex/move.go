// Move catalog commands: add, list, search.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Manage the move catalog",
}

var moveAddFlags struct {
	name           string
	description    string
	classification string
	type1          string
	type2          string
}

var moveAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a move to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableMoves)
		if err != nil {
			return err
		}
		m := &types.Move{
			Name:           moveAddFlags.name,
			Description:    moveAddFlags.description,
			Classification: moveAddFlags.classification,
			Type1:          moveAddFlags.type1,
			Type2:          moveAddFlags.type2,
		}
		id, err := table.Set("", m)
		if err != nil {
			return err
		}
		fmt.Printf("Added move %s (%s)\n", m.Name, id)
		return nil
	},
}

var moveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all moves in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableMoves)
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

var moveSearchFlags struct {
	moveType       string
	classification string
}

var moveSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search the move catalog by name, type or classification substring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableMoves)
		if err != nil {
			return err
		}
		filter := map[string]any{}
		if len(args) == 1 {
			filter["name"] = args[0]
		}
		if moveSearchFlags.moveType != "" {
			filter["type"] = moveSearchFlags.moveType
		}
		if moveSearchFlags.classification != "" {
			filter["classification"] = moveSearchFlags.classification
		}
		entities, err := table.Fetch(filter)
		if err != nil {
			return err
		}
		return printEntities(entities)
	},
}

func init() {
	f := moveAddCmd.Flags()
	f.StringVar(&moveAddFlags.name, "name", "", "move name")
	f.StringVar(&moveAddFlags.description, "description", "", "description")
	f.StringVar(&moveAddFlags.classification, "classification", "", "classification (TM, HM, Physical, Status, ...)")
	f.StringVar(&moveAddFlags.type1, "type1", "", "primary type")
	f.StringVar(&moveAddFlags.type2, "type2", "", "secondary type")
	moveAddCmd.MarkFlagRequired("name")
	moveAddCmd.MarkFlagRequired("classification")
	moveAddCmd.MarkFlagRequired("type1")

	moveSearchCmd.Flags().StringVar(&moveSearchFlags.moveType, "type", "", "filter by type substring")
	moveSearchCmd.Flags().StringVar(&moveSearchFlags.classification, "classification", "", "filter by classification substring")

	moveCmd.AddCommand(moveAddCmd)
	moveCmd.AddCommand(moveListCmd)
	moveCmd.AddCommand(moveSearchCmd)
}
