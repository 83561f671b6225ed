package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveIsHM(t *testing.T) {
	assert.True(t, Move{Classification: "HM"}.IsHM())
	assert.True(t, Move{Classification: "hm"}.IsHM())
	assert.False(t, Move{Classification: "TM"}.IsHM())
	assert.False(t, Move{Classification: "Physical"}.IsHM())
}

func TestMoveHasType(t *testing.T) {
	m := Move{Name: "Mud Shot", Classification: "TM", Type1: "Ground", Type2: "Water"}
	assert.True(t, m.HasType("ground"))
	assert.True(t, m.HasType("Water"))
	assert.False(t, m.HasType("Fire"))
}

func TestMoveValidate(t *testing.T) {
	valid := Move{Name: "Tackle", Classification: "Physical", Type1: "Normal"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, Move{Classification: "Physical", Type1: "Normal"}.Validate(), ErrInvalidData)
	assert.ErrorIs(t, Move{Name: "Tackle", Type1: "Normal"}.Validate(), ErrInvalidData)
	assert.ErrorIs(t, Move{Name: "Tackle", Classification: "Physical"}.Validate(), ErrInvalidData)
}

func TestItemForSale(t *testing.T) {
	assert.True(t, Item{Name: "Potion", Category: "Medicine", BuyPrice: 300}.ForSale())
	assert.False(t, Item{Name: "Master Ball", Category: "Ball", BuyPrice: 0}.ForSale())
}

func TestItemValidate(t *testing.T) {
	valid := Item{Name: "Potion", Category: "Medicine", BuyPrice: 300, SellPrice: 150}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, Item{Category: "Medicine"}.Validate(), ErrInvalidData)
	assert.ErrorIs(t, Item{Name: "Potion"}.Validate(), ErrInvalidData)
	assert.ErrorIs(t, Item{Name: "Potion", Category: "Medicine", BuyPrice: -1}.Validate(), ErrInvalidData)
}
