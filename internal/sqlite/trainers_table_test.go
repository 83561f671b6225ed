package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

func TestTrainersTableCreate(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TableTrainers)
	require.NoError(t, err)

	tr := &types.Trainer{Name: "Red", Sex: "M", Hometown: "Pallet Town"}
	id, err := table.Set("", tr)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entity, err := table.Get(id)
	require.NoError(t, err)
	got := entity.(*types.Trainer)
	assert.Equal(t, "Red", got.Name)
	assert.Equal(t, types.StartingMoney, got.Money)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestTrainersTableDuplicateName(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TableTrainers)
	require.NoError(t, err)

	_, err = table.Set("", &types.Trainer{Name: "Red"})
	require.NoError(t, err)

	_, err = table.Set("", &types.Trainer{Name: "red"})
	assert.ErrorIs(t, err, types.ErrDuplicateName)
}

func TestTrainersTableBlankName(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TableTrainers)
	require.NoError(t, err)

	_, err = table.Set("", &types.Trainer{Name: "   "})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestTrainersTableRosterRoundtrip(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TableTrainers)
	require.NoError(t, err)

	tr := &types.Trainer{Name: "Red"}
	for i, name := range []string{"Bulbasaur", "Charmander", "Squirtle", "Pidgey", "Rattata", "Spearow", "Caterpie"} {
		_, err := tr.AddPokemon(pokemonFixture(i+1, name, "Normal"))
		require.NoError(t, err)
	}
	require.NoError(t, tr.AddItem(types.Item{Name: "Rare Candy", Category: types.CategoryLevelingItem}, 10))
	require.NoError(t, tr.AddItem(types.Item{Name: "Moon Stone", Category: types.CategoryEvolutionStone}, 5))

	id, err := table.Set("", tr)
	require.NoError(t, err)

	entity, err := table.Get(id)
	require.NoError(t, err)
	got := entity.(*types.Trainer)

	require.Len(t, got.Team, types.MaxTeamSize)
	require.Len(t, got.Storage, 1)
	assert.Equal(t, "Bulbasaur", got.Team[0].Name)
	assert.Equal(t, "Caterpie", got.Storage[0].Name)
	assert.True(t, got.Team[0].KnowsMove("Tackle"))

	require.Len(t, got.Inventory, 2)
	assert.Equal(t, 10, got.FindItem("Rare Candy").Quantity)
	assert.Equal(t, 5, got.FindItem("Moon Stone").Quantity)
	assert.Equal(t, 15, got.TotalItems())
}

func TestTrainersTableUpdateRewritesRoster(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TableTrainers)
	require.NoError(t, err)

	tr := &types.Trainer{Name: "Red"}
	_, err = tr.AddPokemon(pokemonFixture(1, "Bulbasaur", "Grass"))
	require.NoError(t, err)
	id, err := table.Set("", tr)
	require.NoError(t, err)

	entity, err := table.Get(id)
	require.NoError(t, err)
	got := entity.(*types.Trainer)
	require.NoError(t, got.ReleasePokemon("Bulbasaur"))
	_, err = got.AddPokemon(pokemonFixture(4, "Charmander", "Fire"))
	require.NoError(t, err)

	_, err = table.Set(id, got)
	require.NoError(t, err)

	entity, err = table.Get(id)
	require.NoError(t, err)
	got = entity.(*types.Trainer)
	require.Len(t, got.Team, 1)
	assert.Equal(t, "Charmander", got.Team[0].Name)
}

func TestTrainersTableUpdateUnknownID(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TableTrainers)
	require.NoError(t, err)

	_, err = table.Set("no-such-id", &types.Trainer{Name: "Red"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestTrainersTableDelete(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TableTrainers)
	require.NoError(t, err)

	tr := &types.Trainer{Name: "Red"}
	_, err = tr.AddPokemon(pokemonFixture(1, "Bulbasaur", "Grass"))
	require.NoError(t, err)
	require.NoError(t, tr.AddItem(types.Item{Name: "Potion", Category: "Medicine"}, 1))
	id, err := table.Set("", tr)
	require.NoError(t, err)

	require.NoError(t, table.Delete(id))
	_, err = table.Get(id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Child rows are gone too.
	var count int
	require.NoError(t, b.db.QueryRow(
		"SELECT COUNT(*) FROM trainer_pokemon WHERE trainer_id = ?", id).Scan(&count))
	assert.Zero(t, count)
	require.NoError(t, b.db.QueryRow(
		"SELECT COUNT(*) FROM trainer_items WHERE trainer_id = ?", id).Scan(&count))
	assert.Zero(t, count)

	assert.ErrorIs(t, table.Delete(id), types.ErrNotFound)
	assert.ErrorIs(t, table.Delete(""), types.ErrInvalidID)
}

func TestTrainersTableFetch(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.TableTrainers)
	require.NoError(t, err)

	ash := &types.Trainer{Name: "Ash Ketchum"}
	_, err = ash.AddPokemon(pokemonFixture(25, "Pikachu", "Electric"))
	require.NoError(t, err)
	_, err = table.Set("", ash)
	require.NoError(t, err)

	misty := &types.Trainer{Name: "Misty"}
	_, err = misty.AddPokemon(pokemonFixture(120, "Staryu", "Water"))
	require.NoError(t, err)
	_, err = table.Set("", misty)
	require.NoError(t, err)

	t.Run("all trainers", func(t *testing.T) {
		results, err := table.Fetch(nil)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("by name substring", func(t *testing.T) {
		results, err := table.Fetch(map[string]any{"name": "ketchum"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Ash Ketchum", results[0].(*types.Trainer).Name)
	})

	t.Run("by team pokemon substring", func(t *testing.T) {
		results, err := table.Fetch(map[string]any{"pokemon": "pika"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		got := results[0].(*types.Trainer)
		assert.Equal(t, "Ash Ketchum", got.Name)
		// Roster is hydrated on fetch.
		require.Len(t, got.Team, 1)
		assert.Equal(t, "Pikachu", got.Team[0].Name)
	})

	t.Run("storage pokemon are not searched", func(t *testing.T) {
		entity, err := table.Fetch(map[string]any{"name": "Misty"})
		require.NoError(t, err)
		got := entity[0].(*types.Trainer)
		_, err = got.SwitchPokemon("Staryu")
		require.NoError(t, err)
		_, err = table.Set(got.TrainerID, got)
		require.NoError(t, err)

		results, err := table.Fetch(map[string]any{"pokemon": "staryu"})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("invalid filter type", func(t *testing.T) {
		_, err := table.Fetch(map[string]any{"pokemon": 1})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})
}
