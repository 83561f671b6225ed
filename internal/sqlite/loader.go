// This file implements delimited-text catalog import for Attach.
// The files are comma-delimited with a fixed column order and a single
// header line; missing files are skipped, malformed lines are logged
// and dropped.
package sqlite

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// Catalog file names looked up in DataDir on Attach.
const (
	movesFile   = "MOVES.csv"
	itemsFile   = "ITEMS.csv"
	pokemonFile = "POKEMONS.csv"
)

// loadCatalogFiles imports the catalog files from dataDir. Moves load
// first so Pokemon rows can resolve their trailing move-name columns.
func loadCatalogFiles(b *Backend, dataDir string) error {
	if err := loadFile(dataDir, movesFile, b.loadMoveLine); err != nil {
		return err
	}
	if err := loadFile(dataDir, itemsFile, b.loadItemLine); err != nil {
		return err
	}
	return loadFile(dataDir, pokemonFile, b.loadPokemonLine)
}

// loadFile reads one catalog file line by line, skipping the header.
// A missing file is not an error. Lines the handler rejects are logged
// and skipped.
func loadFile(dataDir, name string, handle func(fields []string) error) error {
	path := filepath.Join(dataDir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 || line == "" {
			continue
		}
		if err := handle(strings.Split(line, ",")); err != nil {
			slog.Warn("skipping catalog line",
				"file", name, "line", lineNo, "error", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning %s: %w", name, err)
	}
	return nil
}

// loadMoveLine parses name,description,classification,type1[,type2].
func (b *Backend) loadMoveLine(fields []string) error {
	if len(fields) < 4 {
		return fmt.Errorf("expected at least 4 columns, got %d", len(fields))
	}
	m := &types.Move{
		Name:           fields[0],
		Description:    fields[1],
		Classification: fields[2],
		Type1:          fields[3],
	}
	if len(fields) > 4 {
		m.Type2 = fields[4]
	}
	_, err := b.tables[types.TableMoves].Set("", m)
	return err
}

// loadItemLine parses name,category,description,effect,buyPrice,sellPrice.
func (b *Backend) loadItemLine(fields []string) error {
	if len(fields) < 6 {
		return fmt.Errorf("expected 6 columns, got %d", len(fields))
	}
	buyPrice, err := strconv.Atoi(fields[4])
	if err != nil {
		return fmt.Errorf("parsing buy price: %w", err)
	}
	sellPrice, err := strconv.Atoi(fields[5])
	if err != nil {
		return fmt.Errorf("parsing sell price: %w", err)
	}
	item := &types.Item{
		Name:        fields[0],
		Category:    fields[1],
		Description: fields[2],
		Effect:      fields[3],
		BuyPrice:    buyPrice,
		SellPrice:   sellPrice,
	}
	_, err = b.tables[types.TableItems].Set("", item)
	return err
}

// loadPokemonLine parses number,name,type1,type2,level,hp,attack,defense,
// speed,evolvesFrom,evolvesTo,evolutionLevel[,method][,stone][,moves...].
func (b *Backend) loadPokemonLine(fields []string) error {
	if len(fields) < 12 {
		return fmt.Errorf("expected at least 12 columns, got %d", len(fields))
	}
	nums := make([]int, 0, 9)
	for _, idx := range []int{0, 4, 5, 6, 7, 8, 9, 10, 11} {
		n, err := strconv.Atoi(fields[idx])
		if err != nil {
			return fmt.Errorf("parsing column %d: %w", idx+1, err)
		}
		nums = append(nums, n)
	}
	p := &types.Pokemon{
		Number:         nums[0],
		Name:           fields[1],
		Type1:          fields[2],
		Type2:          fields[3],
		Level:          nums[1],
		HP:             nums[2],
		Attack:         nums[3],
		Defense:        nums[4],
		Speed:          nums[5],
		EvolvesFrom:    nums[6],
		EvolvesTo:      nums[7],
		EvolutionLevel: nums[8],
	}
	if len(fields) > 12 {
		p.EvolutionMethod = fields[12]
	}
	if len(fields) > 13 {
		p.EvolutionStone = fields[13]
	}
	p.AddDefaultMoves()

	// Trailing columns name moves resolved against the move catalog.
	// Unknown moves and moves past the cap are skipped like the rest.
	if len(fields) > 14 {
		for _, moveName := range fields[14:] {
			moveName = strings.TrimSpace(moveName)
			if moveName == "" {
				continue
			}
			move, err := b.firstMoveByName(moveName)
			if err != nil {
				slog.Warn("unknown move in pokemon record", "pokemon", p.Name, "move", moveName)
				continue
			}
			if err := p.LearnMove(*move); err != nil &&
				!errors.Is(err, types.ErrMoveAlreadyKnown) && !errors.Is(err, types.ErrMoveSetFull) {
				return err
			}
		}
	}

	_, err := b.tables[types.TablePokemon].Set("", p)
	return err
}

// firstMoveByName returns the first catalog move matching name.
func (b *Backend) firstMoveByName(name string) (*types.Move, error) {
	results, err := b.tables[types.TableMoves].Fetch(map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, types.ErrNotFound
	}
	return results[0].(*types.Move), nil
}
