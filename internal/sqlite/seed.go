// This file implements demo-data seeding on Attach.
// Seeding is opt-in (Config.SeedDemo) and idempotent: it only runs when
// no trainers exist yet.
package sqlite

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// demoTrainerNames are the trainers created by demo seeding.
var demoTrainerNames = []string{
	"Ash Ketchum",
	"Misty",
	"Brock",
	"Gary Oak",
	"Professor Oak",
}

// Demo grants: every trainer receives candies and stones directly
// (bypassing purchase), plus a few purchases from the sellable catalog.
const (
	demoTeamSize      = 5
	demoRareCandies   = 10
	demoMoonStones    = 5
	demoPurchases     = 3
	demoPurchaseQty   = 2
	demoRareCandyName = "Rare Candy"
	demoMoonStoneName = "Moon Stone"
)

// seedDemoData registers the demo trainers, assigns the first 25 catalog
// Pokemon five apiece, and fills their inventories. Runs only when the
// trainers table is empty.
func seedDemoData(b *Backend) error {
	var count int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM trainers").Scan(&count); err != nil {
		return fmt.Errorf("counting trainers: %w", err)
	}
	if count > 0 {
		return nil
	}

	pokemon, err := b.tables[types.TablePokemon].Fetch(nil)
	if err != nil {
		return fmt.Errorf("fetching pokemon for seed: %w", err)
	}
	items, err := b.tables[types.TableItems].Fetch(nil)
	if err != nil {
		return fmt.Errorf("fetching items for seed: %w", err)
	}

	// The granted items are excluded from the shopping run so the grant
	// quantities stay exact.
	var sellable []*types.Item
	var rareCandy, moonStone *types.Item
	for _, entity := range items {
		item := entity.(*types.Item)
		switch item.Name {
		case demoRareCandyName:
			rareCandy = item
			continue
		case demoMoonStoneName:
			moonStone = item
			continue
		}
		if item.ForSale() {
			sellable = append(sellable, item)
		}
	}

	for i, name := range demoTrainerNames {
		// Registration grants the starting money; purchases below are
		// paid out of it.
		tr := &types.Trainer{Name: name, Money: types.StartingMoney}

		start := i * demoTeamSize
		for j := 0; j < demoTeamSize && start+j < len(pokemon); j++ {
			original := pokemon[start+j].(*types.Pokemon)
			if _, err := tr.AddPokemon(original); err != nil {
				return fmt.Errorf("assigning pokemon to %s: %w", name, err)
			}
		}

		if rareCandy != nil {
			if err := tr.AddItem(*rareCandy, demoRareCandies); err != nil {
				return fmt.Errorf("granting candies to %s: %w", name, err)
			}
		}
		if moonStone != nil {
			if err := tr.AddItem(*moonStone, demoMoonStones); err != nil {
				return fmt.Errorf("granting stones to %s: %w", name, err)
			}
		}

		for j := 0; j < demoPurchases && len(sellable) > 0; j++ {
			item := sellable[(i*demoPurchases+j)%len(sellable)]
			if err := tr.BuyItem(*item, demoPurchaseQty); err != nil {
				// A full inventory just ends the shopping run.
				if errors.Is(err, types.ErrUniqueItemLimit) ||
					errors.Is(err, types.ErrTotalItemLimit) ||
					errors.Is(err, types.ErrStackLimit) {
					break
				}
				return fmt.Errorf("buying %s for %s: %w", item.Name, name, err)
			}
		}

		if _, err := b.tables[types.TableTrainers].Set("", tr); err != nil {
			return fmt.Errorf("seeding trainer %s: %w", name, err)
		}
	}

	slog.Info("seeded demo trainers", "count", len(demoTrainerNames))
	return nil
}
