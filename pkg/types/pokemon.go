package types

import (
	"errors"
	"fmt"
	"strings"
)

// Pokemon limits.
const (
	MaxLevel    = 100
	MaxDexNum   = 999
	MaxMoves    = 4 // HM moves do not count against this cap
	statGrowth  = 1.1
	zincGrowth  = 1.05
)

// Evolution methods. An empty method means level-based (or no) evolution.
const (
	EvolutionMethodStone = "stone"
)

// Move-set and evolution rule errors.
var (
	ErrMoveAlreadyKnown = errors.New("move already known")
	ErrMoveSetFull      = errors.New("move set is full")
	ErrMoveNotKnown     = errors.New("move not known")
	ErrCannotForgetHM   = errors.New("HM moves cannot be forgotten")
	ErrMaxLevel         = errors.New("already at maximum level")
)

// DefaultMoves returns the moves every Pokemon knows from the start.
func DefaultMoves() []Move {
	return []Move{
		{Name: "Tackle", Description: "A basic physical attack", Classification: "Physical", Type1: "Normal"},
		{Name: "Defend", Description: "Raises defense", Classification: "Status", Type1: "Normal"},
	}
}

// Pokemon represents a creature record: its stats, types, move set, held
// item, and evolution links. The same struct serves the catalog and the
// owned copies on a trainer's roster.
type Pokemon struct {
	Number          int     `json:"number" validate:"required,min=1,max=999"`
	Name            string  `json:"name" validate:"required"`
	Type1           string  `json:"type1" validate:"required"`
	Type2           string  `json:"type2,omitempty"`
	Level           int     `json:"level" validate:"min=1,max=100"`
	HP              int     `json:"hp" validate:"min=1"`
	Attack          int     `json:"attack" validate:"min=1"`
	Defense         int     `json:"defense" validate:"min=1"`
	Speed           int     `json:"speed" validate:"min=1"`
	MoveSet         []Move  `json:"move_set"`
	HeldItem        *Item   `json:"held_item,omitempty"`
	EvolvesFrom     int     `json:"evolves_from,omitempty"`
	EvolvesTo       int     `json:"evolves_to,omitempty"`
	EvolutionLevel  int     `json:"evolution_level,omitempty"`
	EvolutionMethod string  `json:"evolution_method,omitempty"`
	EvolutionStone  string  `json:"evolution_stone,omitempty"`
}

// PokemonLookup resolves catalog records by dex number. Trainer.UseItem
// needs it to find evolved forms; the sqlite backend implements it.
type PokemonLookup interface {
	PokemonByNumber(number int) (*Pokemon, error)
}

// Validate checks the Pokemon's field constraints.
func (p *Pokemon) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}

// AddDefaultMoves appends Tackle and Defend when they are missing.
// The default moves are always present, even after forgetting.
func (p *Pokemon) AddDefaultMoves() {
	for _, m := range DefaultMoves() {
		if !p.KnowsMove(m.Name) {
			p.MoveSet = append(p.MoveSet, m)
		}
	}
}

// KnowsMove reports whether the Pokemon knows a move with the given name
// (case-insensitive).
func (p *Pokemon) KnowsMove(name string) bool {
	for _, m := range p.MoveSet {
		if strings.EqualFold(m.Name, name) {
			return true
		}
	}
	return false
}

// LearnMove adds a move to the move set. Duplicate moves are rejected.
// Normal moves respect the four-move cap; HM moves bypass it.
func (p *Pokemon) LearnMove(move Move) error {
	if p.KnowsMove(move.Name) {
		return ErrMoveAlreadyKnown
	}
	if !move.IsHM() && len(p.MoveSet) >= MaxMoves {
		return ErrMoveSetFull
	}
	p.MoveSet = append(p.MoveSet, move)
	return nil
}

// ForgetMove removes a move by name. HM moves cannot be forgotten, and
// the default moves are restored afterwards so the set never goes empty.
func (p *Pokemon) ForgetMove(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMoveNotKnown
	}
	idx := -1
	for i, m := range p.MoveSet {
		if strings.EqualFold(m.Name, name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrMoveNotKnown
	}
	if p.MoveSet[idx].IsHM() {
		return ErrCannotForgetHM
	}
	p.MoveSet = append(p.MoveSet[:idx], p.MoveSet[idx+1:]...)
	p.AddDefaultMoves()
	return nil
}

// LevelUp raises the level by one and grows every stat by 10%.
// Returns true when a level-based evolution is now due.
// Returns ErrMaxLevel at level 100.
func (p *Pokemon) LevelUp() (bool, error) {
	if p.Level >= MaxLevel {
		return false, ErrMaxLevel
	}
	p.Level++
	p.HP = int(float64(p.HP) * statGrowth)
	p.Attack = int(float64(p.Attack) * statGrowth)
	p.Defense = int(float64(p.Defense) * statGrowth)
	p.Speed = int(float64(p.Speed) * statGrowth)
	return p.CanEvolveByLevel(), nil
}

// CanEvolveByLevel reports whether the Pokemon has a level-based
// evolution whose level requirement is met.
func (p *Pokemon) CanEvolveByLevel() bool {
	return p.EvolvesTo != 0 && p.EvolutionLevel > 0 && p.Level >= p.EvolutionLevel
}

// CanEvolveByStone reports whether the given stone triggers this
// Pokemon's evolution: the item must be an evolution stone, the
// evolution method "stone", and the stone name must match.
func (p *Pokemon) CanEvolveByStone(stone Item) bool {
	if stone.Category != CategoryEvolutionStone {
		return false
	}
	return p.EvolutionMethod == EvolutionMethodStone &&
		strings.EqualFold(stone.Name, p.EvolutionStone)
}

// EvolveInto replaces identity and typing with the evolved form's and
// takes the higher of current versus base stats. Level, move set and
// held item carry over unchanged.
func (p *Pokemon) EvolveInto(evolved Pokemon) {
	p.Number = evolved.Number
	p.Name = evolved.Name
	p.Type1 = evolved.Type1
	p.Type2 = evolved.Type2
	p.HP = max(p.HP, evolved.HP)
	p.Attack = max(p.Attack, evolved.Attack)
	p.Defense = max(p.Defense, evolved.Defense)
	p.Speed = max(p.Speed, evolved.Speed)
	p.EvolvesFrom = evolved.EvolvesFrom
	p.EvolvesTo = evolved.EvolvesTo
	p.EvolutionLevel = evolved.EvolutionLevel
	p.EvolutionMethod = evolved.EvolutionMethod
	p.EvolutionStone = evolved.EvolutionStone
}

// HasType reports whether either type slot equals t (case-insensitive).
func (p *Pokemon) HasType(t string) bool {
	return strings.EqualFold(p.Type1, t) ||
		(p.Type2 != "" && strings.EqualFold(p.Type2, t))
}

// HoldItem gives the Pokemon an item to hold, replacing any current one.
// Returns the discarded item, or nil.
func (p *Pokemon) HoldItem(item *Item) *Item {
	discarded := p.HeldItem
	p.HeldItem = item
	return discarded
}

// Clone returns an independent copy of the Pokemon, including its move
// set and held item. Owned copies on a roster never alias catalog records.
func (p *Pokemon) Clone() *Pokemon {
	cp := *p
	cp.MoveSet = make([]Move, len(p.MoveSet))
	copy(cp.MoveSet, p.MoveSet)
	if p.HeldItem != nil {
		held := *p.HeldItem
		cp.HeldItem = &held
	}
	return &cp
}

// String renders the Pokemon in the catalog listing format.
func (p *Pokemon) String() string {
	typ := p.Type1
	if p.Type2 != "" {
		typ += "/" + p.Type2
	}
	return fmt.Sprintf("#%03d %s - Lv.%d [%s] HP:%d ATK:%d DEF:%d SPD:%d",
		p.Number, p.Name, p.Level, typ, p.HP, p.Attack, p.Defense, p.Speed)
}
