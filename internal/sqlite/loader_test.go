package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

const movesFixture = `name,description,classification,type1,type2
Vine Whip,Strikes with vines,Physical,Grass
Razor Leaf,Sharp leaves,Physical,Grass
Surf,Rides a wave,HM,Water
Mud Shot,Hurls mud,TM,Ground,Water
`

const itemsFixture = `name,category,description,effect,buyPrice,sellPrice
Rare Candy,Leveling Item,Raises level by one,+1 level,4800,2400
Moon Stone,Evolution Stone,A mysterious stone,Evolves certain Pokemon,0,1500
HP Up,Vitamin,Raises HP,+10% HP,9800,4900
`

const pokemonFixture25 = `number,name,type1,type2,level,hp,attack,defense,speed,evolvesFrom,evolvesTo,evolutionLevel,method,stone,moves
1,Bulbasaur,Grass,Poison,5,45,49,49,45,0,2,16,,,Vine Whip,Razor Leaf
2,Ivysaur,Grass,Poison,16,60,62,63,60,1,3,32,,,Vine Whip
35,Clefairy,Fairy,,10,70,45,48,35,0,36,0,stone,Moon Stone
`

func TestLoadCatalogFiles(t *testing.T) {
	dataDir := t.TempDir()
	writeCatalog(t, dataDir, movesFile, movesFixture)
	writeCatalog(t, dataDir, itemsFile, itemsFixture)
	writeCatalog(t, dataDir, pokemonFile, pokemonFixture25)

	b := setupBackendDir(t, dataDir)

	moves, err := b.tables[types.TableMoves].Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, moves, 4)

	items, err := b.tables[types.TableItems].Fetch(nil)
	require.NoError(t, err)
	require.Len(t, items, 3)
	candy, err := b.tables[types.TableItems].Fetch(map[string]any{"name": "Rare Candy"})
	require.NoError(t, err)
	require.Len(t, candy, 1)
	assert.Equal(t, 4800, candy[0].(*types.Item).BuyPrice)

	pokemon, err := b.tables[types.TablePokemon].Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, pokemon, 3)

	bulbasaur, err := b.PokemonByNumber(1)
	require.NoError(t, err)
	assert.True(t, bulbasaur.KnowsMove("Tackle"))
	assert.True(t, bulbasaur.KnowsMove("Vine Whip"))
	assert.True(t, bulbasaur.KnowsMove("Razor Leaf"))
	assert.Equal(t, 2, bulbasaur.EvolvesTo)
	assert.Equal(t, 16, bulbasaur.EvolutionLevel)

	clefairy, err := b.PokemonByNumber(35)
	require.NoError(t, err)
	assert.Equal(t, types.EvolutionMethodStone, clefairy.EvolutionMethod)
	assert.Equal(t, "Moon Stone", clefairy.EvolutionStone)
}

func TestLoadCatalogMissingFiles(t *testing.T) {
	b := setupBackend(t)

	pokemon, err := b.tables[types.TablePokemon].Fetch(nil)
	require.NoError(t, err)
	assert.Empty(t, pokemon)
}

func TestLoadCatalogSkipsMalformedLines(t *testing.T) {
	dataDir := t.TempDir()
	writeCatalog(t, dataDir, movesFile, `name,description,classification,type1
Vine Whip,Strikes with vines,Physical,Grass
not-enough-columns
Razor Leaf,Sharp leaves,Physical,Grass
`)
	writeCatalog(t, dataDir, itemsFile, `name,category,description,effect,buyPrice,sellPrice
Potion,Medicine,Restores HP,Heals 20 HP,NaN,150
Super Potion,Medicine,Restores HP,Heals 50 HP,700,350
`)

	b := setupBackendDir(t, dataDir)

	moves, err := b.tables[types.TableMoves].Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, moves, 2)

	items, err := b.tables[types.TableItems].Fetch(nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Super Potion", items[0].(*types.Item).Name)
}

func TestLoadCatalogUnknownMoveSkipped(t *testing.T) {
	dataDir := t.TempDir()
	writeCatalog(t, dataDir, pokemonFile, `number,name,type1,type2,level,hp,attack,defense,speed,evolvesFrom,evolvesTo,evolutionLevel,method,stone,moves
1,Bulbasaur,Grass,Poison,5,45,49,49,45,0,2,16,,,Hyper Beam
`)

	b := setupBackendDir(t, dataDir)

	bulbasaur, err := b.PokemonByNumber(1)
	require.NoError(t, err)
	assert.False(t, bulbasaur.KnowsMove("Hyper Beam"))
	assert.True(t, bulbasaur.KnowsMove("Tackle"))
}

func TestLoadCatalogSkipsBlankLines(t *testing.T) {
	dataDir := t.TempDir()
	writeCatalog(t, dataDir, movesFile, `name,description,classification,type1

Vine Whip,Strikes with vines,Physical,Grass

`)

	b := setupBackendDir(t, dataDir)
	moves, err := b.tables[types.TableMoves].Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, moves, 1)
}
