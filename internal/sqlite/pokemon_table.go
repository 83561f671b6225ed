package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// Compile-time interface check.
var _ types.Table = (*pokemonTable)(nil)

// pokemonTable implements the Table interface for the Pokemon catalog.
// The entity ID is the dex number in decimal; name and number uniqueness
// are both enforced.
type pokemonTable struct {
	backend *Backend
}

const pokemonColumns = `number, name, type1, type2, level, hp, attack, defense, speed,
	evolves_from, evolves_to, evolution_level, evolution_method, evolution_stone, move_set`

// Get retrieves a Pokemon by dex number and hydrates it.
func (pt *pokemonTable) Get(id string) (any, error) {
	number, err := strconv.Atoi(id)
	if err != nil || number <= 0 {
		return nil, types.ErrInvalidID
	}

	row := pt.backend.db.QueryRow(
		"SELECT "+pokemonColumns+" FROM pokemon WHERE number = ?", number)
	p, err := hydratePokemon(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting pokemon #%d: %w", number, err)
	}
	return p, nil
}

// Set persists a Pokemon. When id is empty the dex number supplies the
// identity; duplicate numbers and names are rejected on creation.
func (pt *pokemonTable) Set(id string, data any) (string, error) {
	p, ok := data.(*types.Pokemon)
	if !ok {
		return "", types.ErrInvalidData
	}
	if p.Level == 0 {
		p.Level = 1
	}
	p.AddDefaultMoves()
	if err := p.Validate(); err != nil {
		return "", err
	}

	isCreate := id == ""
	if isCreate {
		id = strconv.Itoa(p.Number)
	} else if id != strconv.Itoa(p.Number) {
		return "", types.ErrInvalidID
	}

	var exists bool
	err := pt.backend.db.QueryRow(
		"SELECT 1 FROM pokemon WHERE number = ?", p.Number).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking pokemon existence: %w", err)
	}
	if isCreate && exists {
		return "", types.ErrDuplicateNumber
	}

	// Name uniqueness against every other record.
	var nameTaken bool
	err = pt.backend.db.QueryRow(
		"SELECT 1 FROM pokemon WHERE name = ? AND number != ?", p.Name, p.Number).Scan(&nameTaken)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking pokemon name: %w", err)
	}
	if nameTaken {
		return "", types.ErrDuplicateName
	}

	moveSet, err := json.Marshal(p.MoveSet)
	if err != nil {
		return "", fmt.Errorf("marshaling move set: %w", err)
	}

	if exists {
		_, err = pt.backend.db.Exec(
			`UPDATE pokemon SET name = ?, type1 = ?, type2 = ?, level = ?, hp = ?,
				attack = ?, defense = ?, speed = ?, evolves_from = ?, evolves_to = ?,
				evolution_level = ?, evolution_method = ?, evolution_stone = ?, move_set = ?
			WHERE number = ?`,
			p.Name, p.Type1, p.Type2, p.Level, p.HP, p.Attack, p.Defense, p.Speed,
			p.EvolvesFrom, p.EvolvesTo, p.EvolutionLevel, p.EvolutionMethod,
			p.EvolutionStone, string(moveSet), p.Number)
	} else {
		_, err = pt.backend.db.Exec(
			`INSERT INTO pokemon (`+pokemonColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Number, p.Name, p.Type1, p.Type2, p.Level, p.HP, p.Attack, p.Defense,
			p.Speed, p.EvolvesFrom, p.EvolvesTo, p.EvolutionLevel, p.EvolutionMethod,
			p.EvolutionStone, string(moveSet))
	}
	if err != nil {
		return "", fmt.Errorf("persisting pokemon: %w", err)
	}
	return id, nil
}

// Delete removes a Pokemon from the catalog by dex number.
func (pt *pokemonTable) Delete(id string) error {
	number, err := strconv.Atoi(id)
	if err != nil || number <= 0 {
		return types.ErrInvalidID
	}
	res, err := pt.backend.db.Exec("DELETE FROM pokemon WHERE number = ?", number)
	if err != nil {
		return fmt.Errorf("deleting pokemon: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting pokemon: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries Pokemon matching the filter, ordered by dex number.
// Supported filters: "name" and "type" (case-insensitive substrings).
func (pt *pokemonTable) Fetch(filter map[string]any) ([]any, error) {
	query := "SELECT " + pokemonColumns + " FROM pokemon"
	var conditions []string
	var args []any

	if v, ok := filter["name"]; ok {
		name, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions, "name LIKE '%' || ? || '%'")
		args = append(args, name)
	}
	if v, ok := filter["type"]; ok {
		typ, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions,
			"(type1 LIKE '%' || ? || '%' OR type2 LIKE '%' || ? || '%')")
		args = append(args, typ, typ)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY number ASC"

	rows, err := pt.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching pokemon: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		p, err := hydratePokemon(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating pokemon: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pokemon: %w", err)
	}
	return results, nil
}

// hydratePokemon converts a SQLite row into a *types.Pokemon. The scan
// function abstracts over sql.Row and sql.Rows.
func hydratePokemon(scan func(...any) error) (*types.Pokemon, error) {
	var p types.Pokemon
	var type2, method, stone sql.NullString
	var moveSet string
	err := scan(&p.Number, &p.Name, &p.Type1, &type2, &p.Level, &p.HP, &p.Attack,
		&p.Defense, &p.Speed, &p.EvolvesFrom, &p.EvolvesTo, &p.EvolutionLevel,
		&method, &stone, &moveSet)
	if err != nil {
		return nil, err
	}
	p.Type2 = type2.String
	p.EvolutionMethod = method.String
	p.EvolutionStone = stone.String
	if err := json.Unmarshal([]byte(moveSet), &p.MoveSet); err != nil {
		return nil, fmt.Errorf("parsing move set: %w", err)
	}
	return &p, nil
}
