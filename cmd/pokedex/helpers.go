// Shared helpers for the pokedex subcommands: backend attachment,
// entity resolution, and output formatting.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Gakurino/Enhanced-Pok-dex/internal/sqlite"
	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// attachBackend resolves the data directory, attaches a fresh SQLite
// backend, and returns it. Callers must defer Detach.
func attachBackend() (*sqlite.Backend, error) {
	return attachBackendWith(false)
}

// attachBackendWith attaches a backend, optionally seeding demo data.
func attachBackendWith(seedDemo bool) (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	backend := sqlite.NewBackend()
	cfg := types.Config{
		Backend:  types.BackendSQLite,
		DataDir:  dataDir,
		SeedDemo: seedDemo,
	}
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attaching backend: %w", err)
	}
	return backend, nil
}

// findTrainer resolves a trainer by ID or exact name (case-insensitive).
func findTrainer(table types.Table, query string) (*types.Trainer, error) {
	entity, err := table.Get(query)
	if err == nil {
		return entity.(*types.Trainer), nil
	}
	if !errors.Is(err, types.ErrNotFound) && !errors.Is(err, types.ErrInvalidID) {
		return nil, err
	}

	results, err := table.Fetch(map[string]any{"name": query})
	if err != nil {
		return nil, err
	}
	for _, entity := range results {
		tr := entity.(*types.Trainer)
		if strings.EqualFold(tr.Name, query) {
			return tr, nil
		}
	}
	return nil, fmt.Errorf("trainer %q: %w", query, types.ErrNotFound)
}

// findCatalogPokemon resolves a catalog Pokemon by dex number or exact
// name (case-insensitive).
func findCatalogPokemon(table types.Table, query string) (*types.Pokemon, error) {
	if _, err := strconv.Atoi(query); err == nil {
		entity, err := table.Get(query)
		if err != nil {
			return nil, fmt.Errorf("pokemon #%s: %w", query, types.ErrNotFound)
		}
		return entity.(*types.Pokemon), nil
	}

	results, err := table.Fetch(map[string]any{"name": query})
	if err != nil {
		return nil, err
	}
	for _, entity := range results {
		p := entity.(*types.Pokemon)
		if strings.EqualFold(p.Name, query) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("pokemon %q: %w", query, types.ErrNotFound)
}

// findCatalogMove resolves a catalog move by exact name (case-insensitive).
func findCatalogMove(table types.Table, name string) (*types.Move, error) {
	results, err := table.Fetch(map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	for _, entity := range results {
		m := entity.(*types.Move)
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("move %q: %w", name, types.ErrNotFound)
}

// findCatalogItem resolves a catalog item by exact name (case-insensitive).
func findCatalogItem(table types.Table, name string) (*types.Item, error) {
	results, err := table.Fetch(map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	for _, entity := range results {
		it := entity.(*types.Item)
		if strings.EqualFold(it.Name, name) {
			return it, nil
		}
	}
	return nil, fmt.Errorf("item %q: %w", name, types.ErrNotFound)
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printEntities renders a Fetch result either as JSON (with --json) or
// line by line using each entity's String method.
func printEntities(entities []any) error {
	if flagJSON {
		return printJSON(entities)
	}
	if len(entities) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for _, e := range entities {
		fmt.Println(entityString(e))
	}
	return nil
}

// entityString renders a single entity via its String method.
func entityString(e any) string {
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", e)
}

// printPokemonTable renders Pokemon rows in a fixed-width table.
func printPokemonTable(entities []any) error {
	if flagJSON {
		return printJSON(entities)
	}
	if len(entities) == 0 {
		fmt.Println("No results.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tNAME\tTYPE\tLEVEL\tHP\tATK\tDEF\tSPD")
	for _, entity := range entities {
		p := entity.(*types.Pokemon)
		typ := p.Type1
		if p.Type2 != "" {
			typ += "/" + p.Type2
		}
		fmt.Fprintf(w, "#%03d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			p.Number, p.Name, typ, p.Level, p.HP, p.Attack, p.Defense, p.Speed)
	}
	return w.Flush()
}

// printTrainerTable renders trainer rows in a fixed-width table.
func printTrainerTable(entities []any) error {
	if flagJSON {
		return printJSON(entities)
	}
	if len(entities) == 0 {
		fmt.Println("No results.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMONEY\tTEAM\tSTORAGE\tITEMS")
	for _, entity := range entities {
		tr := entity.(*types.Trainer)
		fmt.Fprintf(w, "%s\t%s\t₱%.2f\t%d\t%d\t%d\n",
			tr.TrainerID, tr.Name, tr.Money, len(tr.Team), len(tr.Storage), tr.TotalItems())
	}
	return w.Flush()
}

// printTrainerDetail renders a full trainer profile with roster and
// inventory sections.
func printTrainerDetail(tr *types.Trainer) error {
	if flagJSON {
		return printJSON(tr)
	}
	fmt.Println(tr.String())

	fmt.Println("\nActive team:")
	if len(tr.Team) == 0 {
		fmt.Println("  (empty)")
	}
	for _, p := range tr.Team {
		fmt.Println("  " + p.String())
		printMoveSet(p)
	}

	fmt.Println("\nStorage:")
	if len(tr.Storage) == 0 {
		fmt.Println("  (empty)")
	}
	for _, p := range tr.Storage {
		fmt.Println("  " + p.String())
	}

	fmt.Println("\nInventory:")
	if len(tr.Inventory) == 0 {
		fmt.Println("  (empty)")
	}
	for _, it := range tr.Inventory {
		fmt.Printf("  %dx %s [%s]\n", it.Quantity, it.Name, it.Category)
	}
	return nil
}

// printMoveSet renders a Pokemon's move set indented under its entry.
func printMoveSet(p *types.Pokemon) {
	for _, m := range p.MoveSet {
		fmt.Printf("    - %s (%s)\n", m.Name, m.Classification)
	}
}
