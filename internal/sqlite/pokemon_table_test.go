package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

func pokemonFixture(number int, name, type1 string) *types.Pokemon {
	return &types.Pokemon{
		Number: number, Name: name, Type1: type1, Level: 5,
		HP: 45, Attack: 49, Defense: 49, Speed: 45,
	}
}

func TestPokemonTableCRUD(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TablePokemon)
	require.NoError(t, err)

	id, err := table.Set("", pokemonFixture(1, "Bulbasaur", "Grass"))
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	entity, err := table.Get("1")
	require.NoError(t, err)
	got := entity.(*types.Pokemon)
	assert.Equal(t, "Bulbasaur", got.Name)
	assert.True(t, got.KnowsMove("Tackle"))
	assert.True(t, got.KnowsMove("Defend"))

	got.Attack = 60
	_, err = table.Set("1", got)
	require.NoError(t, err)
	entity, err = table.Get("1")
	require.NoError(t, err)
	assert.Equal(t, 60, entity.(*types.Pokemon).Attack)

	require.NoError(t, table.Delete("1"))
	_, err = table.Get("1")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, table.Delete("1"), types.ErrNotFound)
}

func TestPokemonTableSetDefaults(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TablePokemon)
	require.NoError(t, err)

	// Level 0 defaults to 1 on create.
	p := &types.Pokemon{Number: 4, Name: "Charmander", Type1: "Fire",
		HP: 39, Attack: 52, Defense: 43, Speed: 65}
	_, err = table.Set("", p)
	require.NoError(t, err)

	entity, err := table.Get("4")
	require.NoError(t, err)
	assert.Equal(t, 1, entity.(*types.Pokemon).Level)
}

func TestPokemonTableUniqueness(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TablePokemon)
	require.NoError(t, err)

	_, err = table.Set("", pokemonFixture(1, "Bulbasaur", "Grass"))
	require.NoError(t, err)

	_, err = table.Set("", pokemonFixture(1, "Oddish", "Grass"))
	assert.ErrorIs(t, err, types.ErrDuplicateNumber)

	_, err = table.Set("", pokemonFixture(43, "bulbasaur", "Grass"))
	assert.ErrorIs(t, err, types.ErrDuplicateName)
}

func TestPokemonTableInvalidInput(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TablePokemon)
	require.NoError(t, err)

	_, err = table.Get("abc")
	assert.ErrorIs(t, err, types.ErrInvalidID)
	_, err = table.Get("-1")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = table.Set("", &types.Move{Name: "Tackle"})
	assert.ErrorIs(t, err, types.ErrInvalidData)

	_, err = table.Set("", pokemonFixture(1000, "Overflow", "Normal"))
	assert.ErrorIs(t, err, types.ErrInvalidData)

	// Changing the dex number through an update is rejected.
	_, err = table.Set("", pokemonFixture(1, "Bulbasaur", "Grass"))
	require.NoError(t, err)
	_, err = table.Set("2", pokemonFixture(1, "Bulbasaur", "Grass"))
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestPokemonTableFetch(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TablePokemon)
	require.NoError(t, err)

	fixtures := []*types.Pokemon{
		pokemonFixture(1, "Bulbasaur", "Grass"),
		pokemonFixture(4, "Charmander", "Fire"),
		pokemonFixture(7, "Squirtle", "Water"),
	}
	fixtures[0].Type2 = "Poison"
	for _, p := range fixtures {
		_, err := table.Set("", p)
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		filter    map[string]any
		wantNames []string
	}{
		{
			name:      "empty filter returns all ordered by number",
			filter:    nil,
			wantNames: []string{"Bulbasaur", "Charmander", "Squirtle"},
		},
		{
			name:      "name substring is case-insensitive",
			filter:    map[string]any{"name": "SAUR"},
			wantNames: []string{"Bulbasaur"},
		},
		{
			name:      "type matches either slot",
			filter:    map[string]any{"type": "poison"},
			wantNames: []string{"Bulbasaur"},
		},
		{
			name:      "combined filters intersect",
			filter:    map[string]any{"name": "a", "type": "Fire"},
			wantNames: []string{"Charmander"},
		},
		{
			name:      "no match returns empty slice",
			filter:    map[string]any{"name": "Mewtwo"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := table.Fetch(tt.filter)
			require.NoError(t, err)
			names := make([]string, 0, len(results))
			for _, r := range results {
				names = append(names, r.(*types.Pokemon).Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}

	t.Run("non-string filter rejected", func(t *testing.T) {
		_, err := table.Fetch(map[string]any{"name": 42})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})
}
