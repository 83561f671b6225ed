// Trainer roster commands: catch, release, switch.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

var trainerCatchCmd = &cobra.Command{
	Use:   "catch <trainer> <pokemon>",
	Short: "Add a catalog Pokemon to a trainer's collection",
	Long: `Catch adds an independent copy of a catalog Pokemon to the trainer.
The active team fills first; once it holds six, the copy goes to storage.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachTrainerBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trainers, err := backend.GetTable(types.TableTrainers)
		if err != nil {
			return err
		}
		pokemon, err := backend.GetTable(types.TablePokemon)
		if err != nil {
			return err
		}

		tr, err := findTrainer(trainers, args[0])
		if err != nil {
			return err
		}
		p, err := findCatalogPokemon(pokemon, args[1])
		if err != nil {
			return err
		}

		toStorage, err := tr.AddPokemon(p)
		if err != nil {
			return err
		}
		if _, err := trainers.Set(tr.TrainerID, tr); err != nil {
			return err
		}
		where := "active team"
		if toStorage {
			where = "storage"
		}
		fmt.Printf("%s caught %s (sent to %s)\n", tr.Name, p.Name, where)
		return nil
	},
}

var trainerReleaseCmd = &cobra.Command{
	Use:   "release <trainer> <pokemon-name>",
	Short: "Release an owned Pokemon from team or storage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachTrainerBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trainers, err := backend.GetTable(types.TableTrainers)
		if err != nil {
			return err
		}
		tr, err := findTrainer(trainers, args[0])
		if err != nil {
			return err
		}
		if err := tr.ReleasePokemon(args[1]); err != nil {
			return err
		}
		if _, err := trainers.Set(tr.TrainerID, tr); err != nil {
			return err
		}
		fmt.Printf("%s released %s\n", tr.Name, args[1])
		return nil
	},
}

var trainerSwitchCmd = &cobra.Command{
	Use:   "switch <trainer> <pokemon-name>",
	Short: "Move an owned Pokemon between active team and storage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachTrainerBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trainers, err := backend.GetTable(types.TableTrainers)
		if err != nil {
			return err
		}
		tr, err := findTrainer(trainers, args[0])
		if err != nil {
			return err
		}
		toTeam, err := tr.SwitchPokemon(args[1])
		if err != nil {
			return err
		}
		if _, err := trainers.Set(tr.TrainerID, tr); err != nil {
			return err
		}
		where := "storage"
		if toTeam {
			where = "the active team"
		}
		fmt.Printf("%s moved %s to %s\n", tr.Name, args[1], where)
		return nil
	},
}
