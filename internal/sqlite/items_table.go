package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// Compile-time interface check.
var _ types.Table = (*itemsTable)(nil)

// itemsTable implements the Table interface for the item catalog.
// Item names are unique; catalog rows never carry a quantity.
type itemsTable struct {
	backend *Backend
}

const itemColumns = "item_id, name, description, category, buy_price, sell_price, effect"

// Get retrieves an item by ID.
func (it *itemsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	row := it.backend.db.QueryRow(
		"SELECT "+itemColumns+" FROM items WHERE item_id = ?", id)
	item, err := hydrateItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting item %s: %w", id, err)
	}
	return item, nil
}

// Set persists an item. When id is empty a UUID v7 is generated and a
// duplicate name is rejected.
func (it *itemsTable) Set(id string, data any) (string, error) {
	item, ok := data.(*types.Item)
	if !ok {
		return "", types.ErrInvalidData
	}
	if err := item.Validate(); err != nil {
		return "", err
	}

	if id == "" {
		item.ItemID = generateUUID()
		id = item.ItemID
	} else {
		item.ItemID = id
	}

	var nameTaken bool
	err := it.backend.db.QueryRow(
		"SELECT 1 FROM items WHERE name = ? AND item_id != ?", item.Name, id).Scan(&nameTaken)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking item name: %w", err)
	}
	if nameTaken {
		return "", types.ErrDuplicateName
	}

	var exists bool
	err = it.backend.db.QueryRow(
		"SELECT 1 FROM items WHERE item_id = ?", id).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking item existence: %w", err)
	}

	if exists {
		_, err = it.backend.db.Exec(
			"UPDATE items SET name = ?, description = ?, category = ?, buy_price = ?, sell_price = ?, effect = ? WHERE item_id = ?",
			item.Name, item.Description, item.Category, item.BuyPrice, item.SellPrice, item.Effect, id)
	} else {
		_, err = it.backend.db.Exec(
			"INSERT INTO items ("+itemColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			id, item.Name, item.Description, item.Category, item.BuyPrice, item.SellPrice, item.Effect)
	}
	if err != nil {
		return "", fmt.Errorf("persisting item: %w", err)
	}
	return id, nil
}

// Delete removes an item from the catalog.
func (it *itemsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	res, err := it.backend.db.Exec("DELETE FROM items WHERE item_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries items matching the filter, ordered by name.
// Supported filters: "name", "category" (case-insensitive substrings).
func (it *itemsTable) Fetch(filter map[string]any) ([]any, error) {
	query := "SELECT " + itemColumns + " FROM items"
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
	if v, ok := filter["category"]; ok {
		category, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions, "category LIKE '%' || ? || '%'")
		args = append(args, category)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := it.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		item, err := hydrateItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating item: %w", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return results, nil
}

// hydrateItem converts a SQLite row into a *types.Item.
func hydrateItem(scan func(...any) error) (*types.Item, error) {
	var item types.Item
	var desc, effect sql.NullString
	if err := scan(&item.ItemID, &item.Name, &desc, &item.Category,
		&item.BuyPrice, &item.SellPrice, &effect); err != nil {
		return nil, err
	}
	item.Description = desc.String
	item.Effect = effect.String
	return &item, nil
}
