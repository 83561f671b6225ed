// Trainer inventory commands: buy, sell, use, give.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

var trainerBuyQty int

var trainerBuyCmd = &cobra.Command{
	Use:   "buy <trainer> <item-name>",
	Short: "Buy items from the catalog into a trainer's inventory",
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
		items, err := backend.GetTable(types.TableItems)
		if err != nil {
			return err
		}

		tr, err := findTrainer(trainers, args[0])
		if err != nil {
			return err
		}
		item, err := findCatalogItem(items, args[1])
		if err != nil {
			return err
		}

		if err := tr.BuyItem(*item, trainerBuyQty); err != nil {
			return err
		}
		if _, err := trainers.Set(tr.TrainerID, tr); err != nil {
			return err
		}
		fmt.Printf("%s bought %dx %s for ₱%d (balance: ₱%.2f)\n",
			tr.Name, trainerBuyQty, item.Name, item.BuyPrice*trainerBuyQty, tr.Money)
		return nil
	},
}

var trainerSellQty int

var trainerSellCmd = &cobra.Command{
	Use:   "sell <trainer> <item-name>",
	Short: "Sell items from a trainer's inventory",
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
		proceeds, err := tr.SellItem(args[1], trainerSellQty)
		if err != nil {
			return err
		}
		if _, err := trainers.Set(tr.TrainerID, tr); err != nil {
			return err
		}
		fmt.Printf("%s sold %dx %s for ₱%.2f (balance: ₱%.2f)\n",
			tr.Name, trainerSellQty, args[1], proceeds, tr.Money)
		return nil
	},
}

var trainerUseCmd = &cobra.Command{
	Use:   "use <trainer> <item-name> <pokemon-name>",
	Short: "Use an inventory item on an owned Pokemon",
	Long: `Use consumes one item from the named stack and applies its effect:
vitamins boost stats, evolution stones trigger stone evolutions, and
Rare Candy levels the Pokemon up (evolving it when the level is reached).`,
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

		// A nil result means the item had no effect and was not
		// consumed; a non-nil result with an error is a partial
		// outcome (Rare Candy level-up with no evolved form) that
		// still has to be persisted.
		res, err := tr.UseItem(args[1], args[2], backend)
		if res == nil {
			return err
		}
		if _, setErr := trainers.Set(tr.TrainerID, tr); setErr != nil {
			return setErr
		}

		fmt.Printf("%s used %s on %s\n", tr.Name, res.Used.Name, args[2])
		if res.LeveledTo > 0 {
			fmt.Printf("  leveled up to %d\n", res.LeveledTo)
		}
		if res.Evolved {
			fmt.Printf("  %s evolved into %s!\n", res.EvolvedFrom, res.EvolvedInto)
		}
		if err != nil {
			fmt.Println("  warning:", err)
		}
		return nil
	},
}

var trainerGiveCmd = &cobra.Command{
	Use:   "give <trainer> <item-name> <pokemon-name>",
	Short: "Give an inventory item to an owned Pokemon to hold",
	Args:  cobra.ExactArgs(3),
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

		dropped, err := tr.GiveItem(args[1], args[2])
		if err != nil {
			return err
		}
		if _, err := trainers.Set(tr.TrainerID, tr); err != nil {
			return err
		}
		fmt.Printf("%s gave %s to %s to hold\n", tr.Name, args[1], args[2])
		if dropped != nil {
			fmt.Printf("  %s had no room for the previously held %s; it was dropped\n",
				tr.Name, dropped.Name)
		}
		return nil
	},
}

func init() {
	trainerBuyCmd.Flags().IntVar(&trainerBuyQty, "quantity", 1, "number of items to buy")
	trainerSellCmd.Flags().IntVar(&trainerSellQty, "quantity", 1, "number of items to sell")
}
