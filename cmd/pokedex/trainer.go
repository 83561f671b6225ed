// Trainer profile commands: add, list, show, search, remove.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gakurino/Enhanced-Pok-dex/internal/sqlite"
	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// flagTrainerDemo seeds the demo trainers before running a trainer
// subcommand. The working set is rebuilt on every invocation, so the
// flag gives the roster and inventory commands data to act on.
var flagTrainerDemo bool

var trainerCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Manage trainer profiles, rosters and inventories",
}

// attachTrainerBackend attaches the backend for trainer subcommands,
// honoring the --demo flag.
func attachTrainerBackend() (*sqlite.Backend, error) {
	return attachBackendWith(flagTrainerDemo)
}

var trainerAddFlags struct {
	name        string
	birthdate   string
	sex         string
	hometown    string
	description string
}

var trainerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new trainer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachTrainerBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableTrainers)
		if err != nil {
			return err
		}
		tr := &types.Trainer{
			Name:        trainerAddFlags.name,
			Birthdate:   trainerAddFlags.birthdate,
			Sex:         trainerAddFlags.sex,
			Hometown:    trainerAddFlags.hometown,
			Description: trainerAddFlags.description,
		}
		id, err := table.Set("", tr)
		if err != nil {
			return err
		}
		fmt.Printf("Registered trainer %s (%s) with ₱%.2f\n", tr.Name, id, tr.Money)
		return nil
	},
}

var trainerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trainers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachTrainerBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableTrainers)
		if err != nil {
			return err
		}
		entities, err := table.Fetch(nil)
		if err != nil {
			return err
		}
		return printTrainerTable(entities)
	},
}

var trainerShowCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show a trainer's full profile, roster and inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachTrainerBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableTrainers)
		if err != nil {
			return err
		}
		tr, err := findTrainer(table, args[0])
		if err != nil {
			return err
		}
		return printTrainerDetail(tr)
	},
}

var trainerSearchPokemon string

var trainerSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search trainers by name or team-member Pokemon name substring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachTrainerBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableTrainers)
		if err != nil {
			return err
		}
		filter := map[string]any{}
		if len(args) == 1 {
			filter["name"] = args[0]
		}
		if trainerSearchPokemon != "" {
			filter["pokemon"] = trainerSearchPokemon
		}
		entities, err := table.Fetch(filter)
		if err != nil {
			return err
		}
		return printTrainerTable(entities)
	},
}

var trainerRemoveCmd = &cobra.Command{
	Use:   "remove <id-or-name>",
	Short: "Remove a trainer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachTrainerBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.TableTrainers)
		if err != nil {
			return err
		}
		tr, err := findTrainer(table, args[0])
		if err != nil {
			return err
		}
		if err := table.Delete(tr.TrainerID); err != nil {
			return err
		}
		fmt.Printf("Removed trainer %s (%s)\n", tr.Name, tr.TrainerID)
		return nil
	},
}

func init() {
	trainerCmd.PersistentFlags().BoolVar(&flagTrainerDemo, "demo", false, "seed demo trainers before running the command")

	f := trainerAddCmd.Flags()
	f.StringVar(&trainerAddFlags.name, "name", "", "trainer name")
	f.StringVar(&trainerAddFlags.birthdate, "birthdate", "", "birthdate (YYYY-MM-DD)")
	f.StringVar(&trainerAddFlags.sex, "sex", "", "sex (M, F or O)")
	f.StringVar(&trainerAddFlags.hometown, "hometown", "", "hometown")
	f.StringVar(&trainerAddFlags.description, "description", "", "description")
	trainerAddCmd.MarkFlagRequired("name")

	trainerSearchCmd.Flags().StringVar(&trainerSearchPokemon, "pokemon", "", "filter by team-member Pokemon name substring")

	trainerCmd.AddCommand(trainerAddCmd)
	trainerCmd.AddCommand(trainerListCmd)
	trainerCmd.AddCommand(trainerShowCmd)
	trainerCmd.AddCommand(trainerSearchCmd)
	trainerCmd.AddCommand(trainerRemoveCmd)
	trainerCmd.AddCommand(trainerCatchCmd)
	trainerCmd.AddCommand(trainerReleaseCmd)
	trainerCmd.AddCommand(trainerSwitchCmd)
	trainerCmd.AddCommand(trainerBuyCmd)
	trainerCmd.AddCommand(trainerSellCmd)
	trainerCmd.AddCommand(trainerUseCmd)
	trainerCmd.AddCommand(trainerGiveCmd)
	trainerCmd.AddCommand(trainerTeachCmd)
	trainerCmd.AddCommand(trainerForgetCmd)
}
