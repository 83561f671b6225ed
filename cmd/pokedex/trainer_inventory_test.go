package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gakurino/Enhanced-Pok-dex/pkg/types"
)

// setupTrainerCommand points the trainer commands at a demo-seeded data
// directory holding the given catalog fixtures.
func setupTrainerCommand(t *testing.T, catalogs map[string]string) {
	t.Helper()
	dataDir := t.TempDir()
	for name, content := range catalogs {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
	}

	origDataDir, origDemo := flagDataDir, flagTrainerDemo
	flagDataDir, flagTrainerDemo = dataDir, true
	t.Cleanup(func() { flagDataDir, flagTrainerDemo = origDataDir, origDemo })
}

func TestTrainerUseStoneWithMissingEvolvedForm(t *testing.T) {
	// Clefairy's evolved form (#36) is absent from the catalog, so the
	// stone has nothing to evolve into. The command must surface the
	// error instead of reporting a use that never happened.
	setupTrainerCommand(t, map[string]string{
		"ITEMS.csv": `name,category,description,effect,buyPrice,sellPrice
Moon Stone,Evolution Stone,A mysterious stone,Evolves certain Pokemon,0,1500
`,
		"POKEMONS.csv": `number,name,type1,type2,level,hp,attack,defense,speed,evolvesFrom,evolvesTo,evolutionLevel,method,stone
35,Clefairy,Fairy,,10,70,45,48,35,0,36,0,stone,Moon Stone
`,
	})

	err := trainerUseCmd.RunE(trainerUseCmd, []string{"Ash Ketchum", "Moon Stone", "Clefairy"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNoEvolutionData)
}

func TestTrainerUseRareCandy(t *testing.T) {
	setupTrainerCommand(t, map[string]string{
		"ITEMS.csv": `name,category,description,effect,buyPrice,sellPrice
Rare Candy,Leveling Item,Raises level by one,+1 level,4800,2400
`,
		"POKEMONS.csv": `number,name,type1,type2,level,hp,attack,defense,speed,evolvesFrom,evolvesTo,evolutionLevel,method,stone
1,Bulbasaur,Grass,Poison,5,45,49,49,45,0,0,0
`,
	})

	err := trainerUseCmd.RunE(trainerUseCmd, []string{"Ash Ketchum", "Rare Candy", "Bulbasaur"})
	assert.NoError(t, err)
}
