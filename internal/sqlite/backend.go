// Package sqlite implements the SQLite storage backend for the Enhanced
// Pokedex. SQLite serves as the query engine over the in-memory working
// set: the database file is recreated on every Attach and the only
// external inputs are the delimited-text catalog files in DataDir.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// dbFileName is the scratch database recreated on every Attach.
const dbFileName = "pokedex.db"

// Backend implements the Dex interface using SQLite as the query engine
// and the DataDir catalog files as the data source.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
	}
}

// GetTable returns a Table interface for the specified table name.
// Returns ErrTableNotFound if the table name is not recognized.
// Returns ErrDexDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDexDetached
	}
	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend with the given configuration: creates
// DataDir if needed, builds a fresh schema, imports the catalog files,
// and seeds demo data when Config.SeedDemo is set.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// Remove any previous database file; the working set is rebuilt from
	// the catalog files on every attach.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	for _, ddl := range allSchemas {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.config.DataDir = dataDir

	b.tables[types.TablePokemon] = &pokemonTable{backend: b}
	b.tables[types.TableMoves] = &movesTable{backend: b}
	b.tables[types.TableItems] = &itemsTable{backend: b}
	b.tables[types.TableTrainers] = &trainersTable{backend: b}

	if err := loadCatalogFiles(b, dataDir); err != nil {
		db.Close()
		b.tables = make(map[string]types.Table)
		return fmt.Errorf("loading catalog files: %w", err)
	}

	if config.SeedDemo {
		if err := seedDemoData(b); err != nil {
			db.Close()
			b.tables = make(map[string]types.Table)
			return fmt.Errorf("seeding demo data: %w", err)
		}
	}

	b.attached = true
	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return ErrDexDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.tables = make(map[string]types.Table)
	return nil
}

// PokemonByNumber resolves a catalog Pokemon by dex number. It makes the
// backend satisfy types.PokemonLookup for evolution resolution.
func (b *Backend) PokemonByNumber(number int) (*types.Pokemon, error) {
	table, err := b.GetTable(types.TablePokemon)
	if err != nil {
		return nil, err
	}
	entity, err := table.Get(fmt.Sprintf("%d", number))
	if err != nil {
		return nil, err
	}
	return entity.(*types.Pokemon), nil
}

// generateUUID generates a new UUID v7 for entity IDs, falling back to
// UUID v4 if v7 generation fails.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
