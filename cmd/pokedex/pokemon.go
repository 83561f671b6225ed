// Pokemon catalog commands: add, list, search, show.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

var pokemonCmd = &cobra.Command{
	Use:   "pokemon",
	Short: "Manage the Pokemon catalog",
}

var pokemonAddFlags struct {
	number         int
	name           string
	type1          string
	type2          string
	level          int
	hp             int
	attack         int
	defense        int
	speed          int
	evolvesFrom    int
	evolvesTo      int
	evolutionLevel int
	method         string
	stone          string
}

var pokemonAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a Pokemon to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TablePokemon)
		if err != nil {
			return err
		}

		p := &types.Pokemon{
			Number:          pokemonAddFlags.number,
			Name:            pokemonAddFlags.name,
			Type1:           pokemonAddFlags.type1,
			Type2:           pokemonAddFlags.type2,
			Level:           pokemonAddFlags.level,
			HP:              pokemonAddFlags.hp,
			Attack:          pokemonAddFlags.attack,
			Defense:         pokemonAddFlags.defense,
			Speed:           pokemonAddFlags.speed,
			EvolvesFrom:     pokemonAddFlags.evolvesFrom,
			EvolvesTo:       pokemonAddFlags.evolvesTo,
			EvolutionLevel:  pokemonAddFlags.evolutionLevel,
			EvolutionMethod: pokemonAddFlags.method,
			EvolutionStone:  pokemonAddFlags.stone,
		}
		id, err := table.Set("", p)
		if err != nil {
			return err
		}
		fmt.Printf("Added Pokemon #%s: %s\n", id, p.Name)
		return nil
	},
}

var pokemonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all Pokemon in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TablePokemon)
		if err != nil {
			return err
		}
		entities, err := table.Fetch(nil)
		if err != nil {
			return err
		}
		return printPokemonTable(entities)
	},
}

var pokemonSearchType string

var pokemonSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search the Pokemon catalog by name or type substring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TablePokemon)
		if err != nil {
			return err
		}

		filter := map[string]any{}
		if len(args) == 1 {
			filter["name"] = args[0]
		}
		if pokemonSearchType != "" {
			filter["type"] = pokemonSearchType
		}
		entities, err := table.Fetch(filter)
		if err != nil {
			return err
		}
		return printPokemonTable(entities)
	},
}

var pokemonShowCmd = &cobra.Command{
	Use:   "show <number-or-name>",
	Short: "Show one catalog Pokemon in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TablePokemon)
		if err != nil {
			return err
		}
		p, err := findCatalogPokemon(table, args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(p)
		}
		fmt.Println(p.String())
		fmt.Println("Moves:")
		printMoveSet(p)
		if p.EvolvesTo != 0 {
			fmt.Printf("Evolves into #%03d", p.EvolvesTo)
			if p.EvolutionMethod == types.EvolutionMethodStone {
				fmt.Printf(" with %s", p.EvolutionStone)
			} else if p.EvolutionLevel > 0 {
				fmt.Printf(" at level %d", p.EvolutionLevel)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	f := pokemonAddCmd.Flags()
	f.IntVar(&pokemonAddFlags.number, "number", 0, "dex number (1-999)")
	f.StringVar(&pokemonAddFlags.name, "name", "", "name")
	f.StringVar(&pokemonAddFlags.type1, "type1", "", "primary type")
	f.StringVar(&pokemonAddFlags.type2, "type2", "", "secondary type")
	f.IntVar(&pokemonAddFlags.level, "level", 1, "base level (1-100)")
	f.IntVar(&pokemonAddFlags.hp, "hp", 1, "base HP")
	f.IntVar(&pokemonAddFlags.attack, "attack", 1, "base attack")
	f.IntVar(&pokemonAddFlags.defense, "defense", 1, "base defense")
	f.IntVar(&pokemonAddFlags.speed, "speed", 1, "base speed")
	f.IntVar(&pokemonAddFlags.evolvesFrom, "evolves-from", 0, "pre-evolution dex number")
	f.IntVar(&pokemonAddFlags.evolvesTo, "evolves-to", 0, "evolution dex number")
	f.IntVar(&pokemonAddFlags.evolutionLevel, "evolution-level", 0, "level required to evolve")
	f.StringVar(&pokemonAddFlags.method, "evolution-method", "", `evolution method ("stone" or empty for level)`)
	f.StringVar(&pokemonAddFlags.stone, "evolution-stone", "", "stone name for stone evolutions")
	pokemonAddCmd.MarkFlagRequired("number")
	pokemonAddCmd.MarkFlagRequired("name")
	pokemonAddCmd.MarkFlagRequired("type1")

	pokemonSearchCmd.Flags().StringVar(&pokemonSearchType, "type", "", "filter by type substring")

	pokemonCmd.AddCommand(pokemonAddCmd)
	pokemonCmd.AddCommand(pokemonListCmd)
	pokemonCmd.AddCommand(pokemonSearchCmd)
	pokemonCmd.AddCommand(pokemonShowCmd)
}
