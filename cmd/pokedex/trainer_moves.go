// Trainer move commands: teach, forget.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

var trainerTeachCmd = &cobra.Command{
	Use:   "teach <trainer> <pokemon-name> <move-name>",
	Short: "Teach a catalog move to an owned Pokemon",
	Long: `Teach adds a catalog move to an owned Pokemon's move set. The move
must share a type with the Pokemon. Normal moves respect the four-move
cap; HM moves bypass it.`,
	Args: cobra.ExactArgs(3),
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
		moves, err := backend.GetTable(types.TableMoves)
		if err != nil {
			return err
		}

		tr, err := findTrainer(trainers, args[0])
		if err != nil {
			return err
		}
		move, err := findCatalogMove(moves, args[2])
		if err != nil {
			return err
		}

		if err := tr.TeachMove(args[1], *move); err != nil {
			return err
		}
		if _, err := trainers.Set(tr.TrainerID, tr); err != nil {
			return err
		}
		fmt.Printf("%s's %s learned %s\n", tr.Name, args[1], move.Name)
		return nil
	},
}

var trainerForgetCmd = &cobra.Command{
	Use:   "forget <trainer> <pokemon-name> <move-name>",
	Short: "Make an owned Pokemon forget a move",
	Long: `Forget removes a move from an owned Pokemon's move set. HM moves
cannot be forgotten, and the default moves are restored afterwards.`,
	Args: cobra.ExactArgs(3),
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
		if err := tr.ForgetMove(args[1], args[2]); err != nil {
			return err
		}
		if _, err := trainers.Set(tr.TrainerID, tr); err != nil {
			return err
		}
		fmt.Printf("%s's %s forgot %s\n", tr.Name, args[1], args[2])
		return nil
	},
}
