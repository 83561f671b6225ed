package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

var flagInitDemo bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory and import catalog files",
	Long: `Init creates the data directory, imports any catalog files found
there (POKEMONS.csv, MOVES.csv, ITEMS.csv), and optionally seeds a set
of demo trainers with rosters and inventories.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackendWith(flagInitDemo)
		if err != nil {
			return err
		}
		defer backend.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Println("Initialized data directory:", dataDir)

		for _, name := range []string{types.TablePokemon, types.TableMoves, types.TableItems, types.TableTrainers} {
			table, err := backend.GetTable(name)
			if err != nil {
				return err
			}
			entities, err := table.Fetch(nil)
			if err != nil {
				return err
			}
			fmt.Printf("  %s: %d\n", name, len(entities))
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&flagInitDemo, "demo", false, "seed demo trainers with rosters and inventories")
}
