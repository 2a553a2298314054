package storage

import (
	"errors"
	"time"

	"github.com/ericogr/pokebattle/internal/game"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	UpsertSpecies(templates []game.PokemonTemplate) error
	// GetSpeciesByName returns a template by any spelling of its name.
	GetSpeciesByName(name string) (*game.PokemonTemplate, error)
	ListSpecies() ([]game.PokemonTemplate, error)

	CreateBattle(b *game.BattleRecord) error
	// GetBattleByID loads a battle with its rounds in play order.
	GetBattleByID(id string) (*game.BattleRecord, error)
	UpdateBattle(b *game.BattleRecord) error
	// FindTimedOutBattles returns battles that are in progress, in the
	// planning phase and whose action deadline is at or before now.
	FindTimedOutBattles(now time.Time) ([]game.BattleRecord, error)
}
