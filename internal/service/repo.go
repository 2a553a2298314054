package service

import (
	"errors"
	"time"

	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/moveset"
	"github.com/ericogr/pokebattle/internal/ruleset"
)

// BattleRepo is the minimal repository interface the battle service needs.
// Using a small interface simplifies testing.
type BattleRepo interface {
	GetSpeciesByName(name string) (*game.PokemonTemplate, error)
	CreateBattle(b *game.BattleRecord) error
	GetBattleByID(id string) (*game.BattleRecord, error)
	UpdateBattle(b *game.BattleRecord) error
}

var (
	ErrBattleNotFound         = errors.New("battle not found")
	ErrSpeciesNotFound        = errors.New("species not found")
	ErrInvalidLevel           = errors.New("level must be between 1 and 100")
	ErrBattleNotInProgress    = errors.New("battle is not in progress")
	ErrActionsLocked          = errors.New("actions are locked; resolving current round")
	ErrInvalidSide            = errors.New("side must be a or b")
	ErrInvalidMove            = errors.New("invalid move index")
	ErrActionAlreadySubmitted = errors.New("action already submitted for this round")
	ErrCorruptBattle          = errors.New("stored battle cannot be replayed")
)

// Settings carries the ruleset and tunables every operation shares.
type Settings struct {
	Ruleset       ruleset.Ruleset
	Moveset       moveset.Constraints
	DefaultLevel  int
	MaxRounds     int
	ActionTimeout time.Duration
	// Roster optionally restricts the species offered by ListSpecies.
	Roster []string
}

func (s Settings) level(l int) int {
	if l == 0 {
		if s.DefaultLevel > 0 {
			return s.DefaultLevel
		}
		return 50
	}
	return l
}
