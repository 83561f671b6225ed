package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// setupBackend creates an attached Backend over a temp data directory.
func setupBackend(t *testing.T) *Backend {
	t.Helper()
	return setupBackendDir(t, t.TempDir())
}

// setupBackendDir attaches a Backend over an existing data directory,
// importing any catalog files already placed there.
func setupBackendDir(t *testing.T, dataDir string) *Backend {
	t.Helper()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })
	return b
}

// writeCatalog writes a catalog fixture file into the data directory.
func writeCatalog(t *testing.T, dataDir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
}

func TestAttachDetachLifecycle(t *testing.T) {
	b := NewBackend()
	config := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	require.NoError(t, b.Attach(config))
	assert.ErrorIs(t, b.Attach(config), types.ErrAlreadyAttached)

	_, err := b.GetTable(types.TablePokemon)
	assert.NoError(t, err)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach()) // idempotent

	_, err = b.GetTable(types.TablePokemon)
	assert.ErrorIs(t, err, types.ErrDexDetached)
}

func TestAttachValidatesConfig(t *testing.T) {
	b := NewBackend()
	assert.ErrorIs(t, b.Attach(types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, b.Attach(types.Config{Backend: "postgres"}), types.ErrBackendUnknown)
}

func TestAttachCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	t.Cleanup(func() { b.Detach() })

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAttachRebuildsWorkingSet(t *testing.T) {
	dataDir := t.TempDir()

	b := NewBackend()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	require.NoError(t, b.Attach(config))

	table, err := b.GetTable(types.TableMoves)
	require.NoError(t, err)
	_, err = table.Set("", &types.Move{Name: "Tackle", Classification: "Physical", Type1: "Normal"})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	// A fresh attach starts from the catalog files only.
	b2 := NewBackend()
	require.NoError(t, b2.Attach(config))
	t.Cleanup(func() { b2.Detach() })

	table, err = b2.GetTable(types.TableMoves)
	require.NoError(t, err)
	moves, err := table.Fetch(nil)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestGetTableUnknownName(t *testing.T) {
	b := setupBackend(t)
	_, err := b.GetTable("badges")
	assert.ErrorIs(t, err, types.ErrTableNotFound)
}

func TestStandardTableNames(t *testing.T) {
	b := setupBackend(t)
	for _, name := range types.StandardTableNames {
		table, err := b.GetTable(name)
		require.NoError(t, err)
		assert.NotNil(t, table)
	}
}

func TestPokemonByNumber(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TablePokemon)
	require.NoError(t, err)

	_, err = table.Set("", &types.Pokemon{
		Number: 25, Name: "Pikachu", Type1: "Electric", Level: 5,
		HP: 35, Attack: 55, Defense: 40, Speed: 90,
	})
	require.NoError(t, err)

	p, err := b.PokemonByNumber(25)
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", p.Name)

	_, err = b.PokemonByNumber(26)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
