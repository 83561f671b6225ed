package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// Compile-time interface check.
var _ types.Table = (*movesTable)(nil)

// movesTable implements the Table interface for the move catalog.
type movesTable struct {
	backend *Backend
}

const moveColumns = "move_id, name, description, classification, type1, type2"

// Get retrieves a move by ID.
func (mt *movesTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	row := mt.backend.db.QueryRow(
		"SELECT "+moveColumns+" FROM moves WHERE move_id = ?", id)
	m, err := hydrateMove(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting move %s: %w", id, err)
	}
	return m, nil
}

// Set persists a move. When id is empty a UUID v7 is generated.
func (mt *movesTable) Set(id string, data any) (string, error) {
	m, ok := data.(*types.Move)
	if !ok {
		return "", types.ErrInvalidData
	}
	if err := m.Validate(); err != nil {
		return "", err
	}

	if id == "" {
		m.MoveID = generateUUID()
		id = m.MoveID
	} else {
		m.MoveID = id
	}

	var exists bool
	err := mt.backend.db.QueryRow(
		"SELECT 1 FROM moves WHERE move_id = ?", id).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking move existence: %w", err)
	}

	if exists {
		_, err = mt.backend.db.Exec(
			"UPDATE moves SET name = ?, description = ?, classification = ?, type1 = ?, type2 = ? WHERE move_id = ?",
			m.Name, m.Description, m.Classification, m.Type1, m.Type2, id)
	} else {
		_, err = mt.backend.db.Exec(
			"INSERT INTO moves ("+moveColumns+") VALUES (?, ?, ?, ?, ?, ?)",
			id, m.Name, m.Description, m.Classification, m.Type1, m.Type2)
	}
	if err != nil {
		return "", fmt.Errorf("persisting move: %w", err)
	}
	return id, nil
}

// Delete removes a move from the catalog.
func (mt *movesTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	res, err := mt.backend.db.Exec("DELETE FROM moves WHERE move_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting move: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting move: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries moves matching the filter, ordered by name.
// Supported filters: "name", "type", "classification" (case-insensitive
// substrings).
func (mt *movesTable) Fetch(filter map[string]any) ([]any, error) {
	query := "SELECT " + moveColumns + " FROM moves"
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
	if v, ok := filter["classification"]; ok {
		class, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions, "classification LIKE '%' || ? || '%'")
		args = append(args, class)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := mt.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching moves: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		m, err := hydrateMove(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating move: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating moves: %w", err)
	}
	return results, nil
}

// hydrateMove converts a SQLite row into a *types.Move.
func hydrateMove(scan func(...any) error) (*types.Move, error) {
	var m types.Move
	var desc, type2 sql.NullString
	if err := scan(&m.MoveID, &m.Name, &desc, &m.Classification, &m.Type1, &type2); err != nil {
		return nil, err
	}
	m.Description = desc.String
	m.Type2 = type2.String
	return &m, nil
}
