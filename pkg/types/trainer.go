package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Roster and inventory caps.
const (
	MaxTeamSize    = 6
	MaxUniqueItems = 10
	MaxTotalItems  = 50
	MaxItemStack   = 99

	// StartingMoney is granted to every newly registered trainer, in PKD.
	StartingMoney = 1_000_000.00
)

// Roster and inventory rule errors.
var (
	ErrPokemonNotOwned      = errors.New("pokemon not in collection")
	ErrTeamFull             = errors.New("active team is full")
	ErrStorageFull          = errors.New("storage is full")
	ErrItemNotOwned         = errors.New("item not in inventory")
	ErrItemNotForSale       = errors.New("item cannot be purchased")
	ErrInsufficientFunds    = errors.New("not enough money")
	ErrInsufficientQuantity = errors.New("not enough items")
	ErrUniqueItemLimit      = errors.New("unique item limit reached")
	ErrTotalItemLimit       = errors.New("total item limit reached")
	ErrStackLimit           = errors.New("per-item stack limit reached")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrItemNotUsable        = errors.New("item cannot be used this way")
	ErrStoneNoEffect        = errors.New("stone has no effect on this pokemon")
	ErrIncompatibleMove     = errors.New("move is incompatible with this pokemon")
	ErrNoEvolutionData      = errors.New("evolution data not found")
)

// Trainer represents a player profile with an active team, a storage box,
// and an item inventory. All mutation rules (capacity caps, stacking
// limits, item effects) live on this type.
type Trainer struct {
	TrainerID   string     `json:"trainer_id"`
	Name        string     `json:"name" validate:"required"`
	Money       float64    `json:"money" validate:"min=0"`
	Birthdate   string     `json:"birthdate,omitempty"`
	Sex         string     `json:"sex,omitempty" validate:"omitempty,oneof=M F O"`
	Hometown    string     `json:"hometown,omitempty"`
	Description string     `json:"description,omitempty"`
	Team        []*Pokemon `json:"team"`
	Storage     []*Pokemon `json:"storage"`
	Inventory   []*Item    `json:"inventory"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UseItemResult reports what an item use did to the target Pokemon.
type UseItemResult struct {
	Used        Item   // the consumed item (quantity 1)
	LeveledTo   int    // new level when a leveling item was used, else 0
	Evolved     bool   // whether an evolution occurred
	EvolvedFrom string // name before evolution, when Evolved
	EvolvedInto string // name after evolution, when Evolved
}

// Validate checks the trainer's field constraints.
func (t *Trainer) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrInvalidData)
	}
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}

// AddPokemon adds an independent copy of the Pokemon to the collection.
// The active team fills first; once it holds six, additions route to
// storage. Returns true when the copy went to storage.
func (t *Trainer) AddPokemon(p *Pokemon) (toStorage bool, err error) {
	if p == nil {
		return false, ErrInvalidData
	}
	cp := p.Clone()
	if len(t.Team) < MaxTeamSize {
		t.Team = append(t.Team, cp)
		t.touch()
		return false, nil
	}
	t.Storage = append(t.Storage, cp)
	t.touch()
	return true, nil
}

// FindPokemon returns the first owned Pokemon matching name
// (case-insensitive), searching the active team before storage.
// Returns nil if the trainer owns no such Pokemon.
func (t *Trainer) FindPokemon(name string) *Pokemon {
	for _, p := range t.Team {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	for _, p := range t.Storage {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// ReleasePokemon removes the first owned Pokemon matching name from the
// team or, failing that, from storage.
func (t *Trainer) ReleasePokemon(name string) error {
	if idx := indexByName(t.Team, name); idx >= 0 {
		t.Team = append(t.Team[:idx], t.Team[idx+1:]...)
		t.touch()
		return nil
	}
	if idx := indexByName(t.Storage, name); idx >= 0 {
		t.Storage = append(t.Storage[:idx], t.Storage[idx+1:]...)
		t.touch()
		return nil
	}
	return ErrPokemonNotOwned
}

// SwitchPokemon moves the named Pokemon between the active team and
// storage. The move is rejected when the destination side is full.
// Returns true when the Pokemon moved into the active team.
func (t *Trainer) SwitchPokemon(name string) (toTeam bool, err error) {
	if idx := indexByName(t.Team, name); idx >= 0 {
		if len(t.Storage) >= MaxTeamSize {
			return false, ErrStorageFull
		}
		p := t.Team[idx]
		t.Team = append(t.Team[:idx], t.Team[idx+1:]...)
		t.Storage = append(t.Storage, p)
		t.touch()
		return false, nil
	}
	if idx := indexByName(t.Storage, name); idx >= 0 {
		if len(t.Team) >= MaxTeamSize {
			return false, ErrTeamFull
		}
		p := t.Storage[idx]
		t.Storage = append(t.Storage[:idx], t.Storage[idx+1:]...)
		t.Team = append(t.Team, p)
		t.touch()
		return true, nil
	}
	return false, ErrPokemonNotOwned
}

// TotalItems returns the summed quantity across all inventory stacks.
func (t *Trainer) TotalItems() int {
	total := 0
	for _, it := range t.Inventory {
		total += it.Quantity
	}
	return total
}

// FindItem returns the inventory stack matching name (case-insensitive),
// or nil.
func (t *Trainer) FindItem(name string) *Item {
	for _, it := range t.Inventory {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}

// canAddItem checks the three inventory caps for adding quantity of item:
// at most MaxUniqueItems distinct stacks, MaxTotalItems items overall,
// and MaxItemStack per stack.
func (t *Trainer) canAddItem(item Item, quantity int) error {
	existing := t.FindItem(item.Name)
	if existing == nil && len(t.Inventory) >= MaxUniqueItems {
		return ErrUniqueItemLimit
	}
	if t.TotalItems()+quantity > MaxTotalItems {
		return ErrTotalItemLimit
	}
	if existing != nil && existing.Quantity+quantity > MaxItemStack {
		return ErrStackLimit
	}
	return nil
}

// AddItem places quantity copies of the item into the inventory, stacking
// onto an existing stack of the same name. Caps are enforced; nothing is
// added on error.
func (t *Trainer) AddItem(item Item, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if err := t.canAddItem(item, quantity); err != nil {
		return err
	}
	if existing := t.FindItem(item.Name); existing != nil {
		existing.Quantity += quantity
	} else {
		stack := item
		stack.Quantity = quantity
		t.Inventory = append(t.Inventory, &stack)
	}
	t.touch()
	return nil
}

// BuyItem purchases quantity copies of the item, deducting the cost from
// the trainer's money. Items with a zero buy price cannot be purchased.
func (t *Trainer) BuyItem(item Item, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !item.ForSale() {
		return ErrItemNotForSale
	}
	cost := float64(item.BuyPrice * quantity)
	if t.Money < cost {
		return ErrInsufficientFunds
	}
	if err := t.AddItem(item, quantity); err != nil {
		return err
	}
	t.Money -= cost
	return nil
}

// SellItem sells quantity items from the named stack at its sell price
// and returns the proceeds. The stack is removed when it reaches zero.
func (t *Trainer) SellItem(name string, quantity int) (proceeds float64, err error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	stack := t.FindItem(name)
	if stack == nil {
		return 0, ErrItemNotOwned
	}
	if stack.Quantity < quantity {
		return 0, ErrInsufficientQuantity
	}
	proceeds = float64(stack.SellPrice * quantity)
	t.Money += proceeds
	t.removeFromStack(stack, quantity)
	t.touch()
	return proceeds, nil
}

// UseItem applies one item from the named stack to an owned Pokemon.
// Vitamins boost stats, evolution stones trigger stone evolutions, and
// Rare Candy levels the target up (evolving it when the level requirement
// is met). The dex lookup resolves evolved forms from the catalog.
//
// The item is consumed only when it had an effect. When a Rare Candy
// level-up succeeds but the evolved form is missing from the catalog, the
// level-up stands, the candy is consumed, and ErrNoEvolutionData is
// returned alongside the partial result.
func (t *Trainer) UseItem(itemName, pokemonName string, dex PokemonLookup) (*UseItemResult, error) {
	stack := t.FindItem(itemName)
	if stack == nil {
		return nil, ErrItemNotOwned
	}
	target := t.FindPokemon(pokemonName)
	if target == nil {
		return nil, ErrPokemonNotOwned
	}

	res := &UseItemResult{Used: *stack}
	res.Used.Quantity = 1

	switch stack.Category {
	case CategoryVitamin:
		applyVitamin(target, stack.Name)

	case CategoryEvolutionStone:
		if !target.CanEvolveByStone(*stack) {
			return nil, ErrStoneNoEffect
		}
		evolved, err := dex.PokemonByNumber(target.EvolvesTo)
		if err != nil {
			return nil, fmt.Errorf("%w: #%d", ErrNoEvolutionData, target.EvolvesTo)
		}
		res.Evolved = true
		res.EvolvedFrom = target.Name
		target.EvolveInto(*evolved)
		res.EvolvedInto = target.Name

	case CategoryLevelingItem:
		// Only Rare Candy levels the target; other leveling items are
		// consumed without effect.
		if !strings.EqualFold(stack.Name, "Rare Candy") {
			break
		}
		due, err := target.LevelUp()
		if err != nil {
			return nil, err
		}
		res.LeveledTo = target.Level
		if due {
			evolved, err := dex.PokemonByNumber(target.EvolvesTo)
			if err != nil {
				t.removeFromStack(stack, 1)
				t.touch()
				return res, fmt.Errorf("%w: #%d", ErrNoEvolutionData, target.EvolvesTo)
			}
			res.Evolved = true
			res.EvolvedFrom = target.Name
			target.EvolveInto(*evolved)
			res.EvolvedInto = target.Name
		}

	default:
		return nil, ErrItemNotUsable
	}

	t.removeFromStack(stack, 1)
	t.touch()
	return res, nil
}

// applyVitamin applies the stat boost for a vitamin by name. Unknown
// vitamins are consumed without effect, matching the original behavior.
func applyVitamin(p *Pokemon, name string) {
	switch name {
	case "HP Up":
		p.HP = int(float64(p.HP) * statGrowth)
	case "Protein":
		p.Attack = int(float64(p.Attack) * statGrowth)
	case "Iron":
		p.Defense = int(float64(p.Defense) * statGrowth)
	case "Carbos":
		p.Speed = int(float64(p.Speed) * statGrowth)
	case "Zinc":
		p.HP = int(float64(p.HP) * zincGrowth)
		p.Attack = int(float64(p.Attack) * zincGrowth)
		p.Defense = int(float64(p.Defense) * zincGrowth)
		p.Speed = int(float64(p.Speed) * zincGrowth)
	}
}

// GiveItem takes one item from the named stack and gives it to an owned
// Pokemon to hold. A previously held item returns to the inventory;
// when the inventory caps reject it, the discarded item is returned to
// the caller and otherwise nil.
func (t *Trainer) GiveItem(itemName, pokemonName string) (dropped *Item, err error) {
	stack := t.FindItem(itemName)
	if stack == nil {
		return nil, ErrItemNotOwned
	}
	target := t.FindPokemon(pokemonName)
	if target == nil {
		return nil, ErrPokemonNotOwned
	}

	held := *stack
	held.Quantity = 1
	t.removeFromStack(stack, 1)

	discarded := target.HoldItem(&held)
	if discarded != nil {
		if addErr := t.AddItem(*discarded, 1); addErr != nil {
			dropped = discarded
		}
	}
	t.touch()
	return dropped, nil
}

// TeachMove teaches a move to an owned Pokemon. The move must share a
// type with the Pokemon; the usual move-set rules apply.
func (t *Trainer) TeachMove(pokemonName string, move Move) error {
	target := t.FindPokemon(pokemonName)
	if target == nil {
		return ErrPokemonNotOwned
	}
	if !moveCompatible(target, move) {
		return ErrIncompatibleMove
	}
	if err := target.LearnMove(move); err != nil {
		return err
	}
	t.touch()
	return nil
}

// ForgetMove makes an owned Pokemon forget a move by name.
func (t *Trainer) ForgetMove(pokemonName, moveName string) error {
	target := t.FindPokemon(pokemonName)
	if target == nil {
		return ErrPokemonNotOwned
	}
	if err := target.ForgetMove(moveName); err != nil {
		return err
	}
	t.touch()
	return nil
}

// moveCompatible reports whether the move shares at least one type with
// the Pokemon.
func moveCompatible(p *Pokemon, m Move) bool {
	if p.HasType(m.Type1) {
		return true
	}
	return m.Type2 != "" && p.HasType(m.Type2)
}

// removeFromStack decrements a stack and drops it from the inventory at
// zero.
func (t *Trainer) removeFromStack(stack *Item, quantity int) {
	stack.Quantity -= quantity
	if stack.Quantity > 0 {
		return
	}
	for i, it := range t.Inventory {
		if it == stack {
			t.Inventory = append(t.Inventory[:i], t.Inventory[i+1:]...)
			return
		}
	}
}

// touch updates the modification timestamp.
func (t *Trainer) touch() {
	t.UpdatedAt = time.Now()
}

// indexByName returns the index of the first Pokemon matching name
// (case-insensitive), or -1.
func indexByName(list []*Pokemon, name string) int {
	for i, p := range list {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

// String renders the trainer profile in the listing format.
func (t *Trainer) String() string {
	return fmt.Sprintf("Trainer %s: %s (Sex: %s, Hometown: %s)\nBirthdate: %s\nDescription: %s\nMoney: ₱%.2f\nPokemon: %d active, %d in storage",
		t.TrainerID, t.Name, t.Sex, t.Hometown, t.Birthdate, t.Description,
		t.Money, len(t.Team), len(t.Storage))
}
