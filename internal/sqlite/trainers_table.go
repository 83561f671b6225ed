package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// Compile-time interface check.
var _ types.Table = (*trainersTable)(nil)

// trainersTable implements the Table interface for trainer rosters.
// Owned Pokemon and inventory stacks live in the trainer_pokemon and
// trainer_items child tables and are hydrated into the aggregate.
type trainersTable struct {
	backend *Backend
}

const trainerColumns = "trainer_id, name, money, birthdate, sex, hometown, description, created_at, updated_at"

// Get retrieves a trainer by ID with the full roster hydrated.
func (tt *trainersTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	row := tt.backend.db.QueryRow(
		"SELECT "+trainerColumns+" FROM trainers WHERE trainer_id = ?", id)
	tr, err := hydrateTrainer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting trainer %s: %w", id, err)
	}
	if err := tt.hydrateRoster(tr); err != nil {
		return nil, fmt.Errorf("hydrating roster for trainer %s: %w", id, err)
	}
	return tr, nil
}

// Set persists a trainer aggregate. When id is empty a UUID v7 is
// generated and the trainer starts with the standard money grant; a
// duplicate name is rejected.
func (tt *trainersTable) Set(id string, data any) (string, error) {
	tr, ok := data.(*types.Trainer)
	if !ok {
		return "", types.ErrInvalidData
	}

	now := time.Now().UTC()
	isCreate := id == ""
	if isCreate {
		tr.TrainerID = generateUUID()
		if tr.Money == 0 {
			tr.Money = types.StartingMoney
		}
		tr.CreatedAt = now
		id = tr.TrainerID
	} else {
		tr.TrainerID = id
	}
	tr.UpdatedAt = now

	if err := tr.Validate(); err != nil {
		return "", err
	}

	var nameTaken bool
	err := tt.backend.db.QueryRow(
		"SELECT 1 FROM trainers WHERE name = ? AND trainer_id != ?", tr.Name, id).Scan(&nameTaken)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking trainer name: %w", err)
	}
	if nameTaken {
		return "", types.ErrDuplicateName
	}

	var exists bool
	err = tt.backend.db.QueryRow(
		"SELECT 1 FROM trainers WHERE trainer_id = ?", id).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking trainer existence: %w", err)
	}
	if !isCreate && !exists {
		return "", types.ErrNotFound
	}

	tx, err := tt.backend.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := tr.CreatedAt.Format(time.RFC3339)
	updatedAt := tr.UpdatedAt.Format(time.RFC3339)

	if exists {
		_, err = tx.Exec(
			`UPDATE trainers SET name = ?, money = ?, birthdate = ?, sex = ?,
				hometown = ?, description = ?, created_at = ?, updated_at = ?
			WHERE trainer_id = ?`,
			tr.Name, tr.Money, tr.Birthdate, tr.Sex, tr.Hometown, tr.Description,
			createdAt, updatedAt, id)
	} else {
		_, err = tx.Exec(
			"INSERT INTO trainers ("+trainerColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			id, tr.Name, tr.Money, tr.Birthdate, tr.Sex, tr.Hometown, tr.Description,
			createdAt, updatedAt)
	}
	if err != nil {
		return "", fmt.Errorf("persisting trainer: %w", err)
	}

	// Re-persist the roster wholesale: delete child rows, re-insert.
	if err := persistRoster(tx, tr); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing trainer: %w", err)
	}
	return id, nil
}

// Delete removes a trainer and cascades to the roster child tables.
func (tt *trainersTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	var exists bool
	err := tt.backend.db.QueryRow(
		"SELECT 1 FROM trainers WHERE trainer_id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking trainer existence: %w", err)
	}

	tx, err := tt.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM trainer_pokemon WHERE trainer_id = ?", id); err != nil {
		return fmt.Errorf("deleting owned pokemon: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM trainer_items WHERE trainer_id = ?", id); err != nil {
		return fmt.Errorf("deleting inventory: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM trainers WHERE trainer_id = ?", id); err != nil {
		return fmt.Errorf("deleting trainer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing trainer deletion: %w", err)
	}
	return nil
}

// Fetch queries trainers matching the filter, ordered by creation time.
// Supported filters: "name" (substring on trainer name) and "pokemon"
// (substring on active-team Pokemon names).
func (tt *trainersTable) Fetch(filter map[string]any) ([]any, error) {
	query := "SELECT " + trainerColumns + " FROM trainers"
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
	if v, ok := filter["pokemon"]; ok {
		pokemonName, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions,
			`trainer_id IN (SELECT trainer_id FROM trainer_pokemon
				WHERE location = ? AND name LIKE '%' || ? || '%')`)
		args = append(args, locationTeam, pokemonName)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at ASC"

	rows, err := tt.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching trainers: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		tr, err := hydrateTrainer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating trainer: %w", err)
		}
		results = append(results, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trainers: %w", err)
	}

	for _, r := range results {
		tr := r.(*types.Trainer)
		if err := tt.hydrateRoster(tr); err != nil {
			return nil, fmt.Errorf("hydrating roster for trainer %s: %w", tr.TrainerID, err)
		}
	}
	return results, nil
}

// persistRoster rewrites the trainer_pokemon and trainer_items rows for
// the trainer inside the given transaction.
func persistRoster(tx *sql.Tx, tr *types.Trainer) error {
	if _, err := tx.Exec("DELETE FROM trainer_pokemon WHERE trainer_id = ?", tr.TrainerID); err != nil {
		return fmt.Errorf("clearing owned pokemon: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM trainer_items WHERE trainer_id = ?", tr.TrainerID); err != nil {
		return fmt.Errorf("clearing inventory: %w", err)
	}

	insert := func(location string, slot int, p *types.Pokemon) error {
		record, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshaling owned pokemon: %w", err)
		}
		_, err = tx.Exec(
			"INSERT INTO trainer_pokemon (owned_id, trainer_id, location, slot, name, record) VALUES (?, ?, ?, ?, ?, ?)",
			generateUUID(), tr.TrainerID, location, slot, p.Name, string(record))
		if err != nil {
			return fmt.Errorf("inserting owned pokemon: %w", err)
		}
		return nil
	}
	for i, p := range tr.Team {
		if err := insert(locationTeam, i, p); err != nil {
			return err
		}
	}
	for i, p := range tr.Storage {
		if err := insert(locationStorage, i, p); err != nil {
			return err
		}
	}

	for i, item := range tr.Inventory {
		record, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshaling inventory item: %w", err)
		}
		_, err = tx.Exec(
			"INSERT INTO trainer_items (trainer_id, name, slot, record, quantity) VALUES (?, ?, ?, ?, ?)",
			tr.TrainerID, item.Name, i, string(record), item.Quantity)
		if err != nil {
			return fmt.Errorf("inserting inventory item: %w", err)
		}
	}
	return nil
}

// hydrateRoster loads the child rows into the trainer aggregate.
func (tt *trainersTable) hydrateRoster(tr *types.Trainer) error {
	rows, err := tt.backend.db.Query(
		"SELECT location, record FROM trainer_pokemon WHERE trainer_id = ? ORDER BY location, slot",
		tr.TrainerID)
	if err != nil {
		return fmt.Errorf("querying owned pokemon: %w", err)
	}
	defer rows.Close()

	tr.Team = nil
	tr.Storage = nil
	for rows.Next() {
		var location, record string
		if err := rows.Scan(&location, &record); err != nil {
			return fmt.Errorf("scanning owned pokemon: %w", err)
		}
		var p types.Pokemon
		if err := json.Unmarshal([]byte(record), &p); err != nil {
			return fmt.Errorf("parsing owned pokemon: %w", err)
		}
		switch location {
		case locationTeam:
			tr.Team = append(tr.Team, &p)
		case locationStorage:
			tr.Storage = append(tr.Storage, &p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating owned pokemon: %w", err)
	}

	itemRows, err := tt.backend.db.Query(
		"SELECT record, quantity FROM trainer_items WHERE trainer_id = ? ORDER BY slot",
		tr.TrainerID)
	if err != nil {
		return fmt.Errorf("querying inventory: %w", err)
	}
	defer itemRows.Close()

	tr.Inventory = nil
	for itemRows.Next() {
		var record string
		var quantity int
		if err := itemRows.Scan(&record, &quantity); err != nil {
			return fmt.Errorf("scanning inventory item: %w", err)
		}
		var item types.Item
		if err := json.Unmarshal([]byte(record), &item); err != nil {
			return fmt.Errorf("parsing inventory item: %w", err)
		}
		item.Quantity = quantity
		tr.Inventory = append(tr.Inventory, &item)
	}
	return itemRows.Err()
}

// hydrateTrainer converts a SQLite row into a *types.Trainer without the
// roster children.
func hydrateTrainer(scan func(...any) error) (*types.Trainer, error) {
	var tr types.Trainer
	var birthdate, sex, hometown, description sql.NullString
	var createdAt, updatedAt string
	err := scan(&tr.TrainerID, &tr.Name, &tr.Money, &birthdate, &sex, &hometown,
		&description, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	tr.Birthdate = birthdate.String
	tr.Sex = sex.String
	tr.Hometown = hometown.String
	tr.Description = description.String
	tr.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	tr.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &tr, nil
}
