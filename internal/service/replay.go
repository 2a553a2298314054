package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/dedupe"
	"github.com/ericogr/pokebattle/internal/engine"
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
	"github.com/ericogr/pokebattle/internal/logging"
	"github.com/ericogr/pokebattle/internal/storage"
)

// BattleView is the API shape of a battle: the stored record plus the
// live state recomputed by replay.
type BattleView struct {
	*game.BattleRecord
	A           game.Snapshot        `json:"a"`
	B           game.Snapshot        `json:"b"`
	Events      []engine.BattleEvent `json:"events"`
	RoundEvents []engine.BattleEvent `json:"round_events,omitempty"`
	Outcome     *engine.Outcome      `json:"outcome,omitempty"`
}

func newView(rec *game.BattleRecord, b *engine.Battle) *BattleView {
	v := &BattleView{
		BattleRecord: rec,
		A:            b.Combatant(game.SideA).Snapshot(),
		B:            b.Combatant(game.SideB).Snapshot(),
		Events:       b.Log(),
	}
	if out, ok := b.Outcome(); ok {
		v.Outcome = &out
	}
	return v
}

// resolveSpecies loads a template by name. Concurrent lookups for the
// same species share one repository call.
func resolveSpecies(repo BattleRepo, name string) (game.PokemonTemplate, error) {
	key := keys.NameKey(name)
	if key == "" {
		return game.PokemonTemplate{}, ErrSpeciesNotFound
	}
	v, err, shared := dedupe.SpeciesGroup.Do(key, func() (interface{}, error) {
		return repo.GetSpeciesByName(key)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return game.PokemonTemplate{}, fmt.Errorf("%w: %s", ErrSpeciesNotFound, name)
		}
		return game.PokemonTemplate{}, err
	}
	tpl, _ := v.(*game.PokemonTemplate)
	if tpl == nil {
		return game.PokemonTemplate{}, fmt.Errorf("%w: %s", ErrSpeciesNotFound, name)
	}
	if shared {
		logging.Info("species lookup shared", logging.Fields{constants.LogFieldSpecies: key})
	}
	out := *tpl
	out.Types = append([]game.Type(nil), tpl.Types...)
	out.Learnset = append([]game.LearnsetEntry(nil), tpl.Learnset...)
	return out, nil
}

// buildCombatant equips a species with the named moves.
func buildCombatant(set Settings, tpl game.PokemonTemplate, level int, names []string) (game.Combatant, error) {
	moves := make([]game.Move, 0, len(names))
	for _, n := range names {
		m, ok := set.Ruleset.Move(n)
		if !ok {
			return game.Combatant{}, fmt.Errorf("unknown move %q", n)
		}
		moves = append(moves, m)
	}
	tpl.Level = level
	return game.NewCombatant(tpl, moves)
}

// sideCombatant builds the combatant a side entered the battle with.
// Records saved without a frozen setup fall back to the current species
// data and ruleset moves.
func sideCombatant(repo BattleRepo, set Settings, rec *game.BattleRecord, side game.Side) (game.Combatant, error) {
	species, level := rec.SpeciesA, rec.LevelA
	if side == game.SideB {
		species, level = rec.SpeciesB, rec.LevelB
	}
	setup, ok, err := rec.Setup(side)
	if err != nil {
		return game.Combatant{}, fmt.Errorf("%w: side %s setup: %v", ErrCorruptBattle, side, err)
	}
	if ok {
		setup.Template.Level = level
		c, err := game.NewCombatant(setup.Template, setup.Moves)
		if err != nil {
			return game.Combatant{}, fmt.Errorf("%w: side %s: %v", ErrCorruptBattle, side, err)
		}
		return c, nil
	}
	tpl, err := resolveSpecies(repo, species)
	if err != nil {
		return game.Combatant{}, err
	}
	c, err := buildCombatant(set, tpl, level, rec.MoveNames(side))
	if err != nil {
		return game.Combatant{}, fmt.Errorf("%w: side %s: %v", ErrCorruptBattle, side, err)
	}
	return c, nil
}

// rebuild replays every stored round from the seed. The engine is
// deterministic, so this reproduces the exact live state.
func rebuild(ctx context.Context, repo BattleRepo, set Settings, rec *game.BattleRecord) (*engine.Battle, error) {
	a, err := sideCombatant(repo, set, rec, game.SideA)
	if err != nil {
		return nil, err
	}
	b, err := sideCombatant(repo, set, rec, game.SideB)
	if err != nil {
		return nil, err
	}
	maxRounds := rec.MaxRounds
	if rec.SetupA == "" || rec.SetupB == "" {
		maxRounds = set.MaxRounds
	}
	battle, err := engine.NewBattle(a, b, set.Ruleset, engine.NewSeededRNG(rec.Seed), engine.Options{MaxRounds: maxRounds})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBattle, err)
	}
	for _, r := range rec.Rounds {
		if _, err := battle.PlayRound(ctx, r.MoveA, r.MoveB); err != nil {
			return nil, fmt.Errorf("%w: round %d: %v", ErrCorruptBattle, r.Number, err)
		}
	}
	// A battle abandoned for inactivity has no final round to replay.
	if rec.Status == game.BattleFinished && !battle.Ended() {
		if _, err := battle.Abandon(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptBattle, err)
		}
	}
	return battle, nil
}

// applyBattle copies the replayed state back onto the record.
func applyBattle(rec *game.BattleRecord, b *engine.Battle) error {
	rec.Round = b.Round()
	rec.FinalHPA = b.Combatant(game.SideA).HP()
	rec.FinalHPB = b.Combatant(game.SideB).HP()
	rec.LastRoundSummary = b.LastSummary()
	logJSON, err := json.Marshal(b.Log())
	if err != nil {
		return err
	}
	rec.EventLog = string(logJSON)
	if out, ok := b.Outcome(); ok {
		rec.Status = game.BattleFinished
		rec.Phase = game.PhaseResolved
		rec.Winner = out.Winner
		rec.PendingA, rec.PendingB = nil, nil
		if out.Winner == game.SideNone {
			rec.Message = "The battle ended in a draw."
		} else {
			rec.Message = b.Combatant(out.Winner).Name + " won the battle!"
		}
	}
	return nil
}

// GetBattle returns the replayed view of a stored battle.
func GetBattle(ctx context.Context, repo BattleRepo, set Settings, id string) (*BattleView, error) {
	rec, err := loadBattle(repo, id)
	if err != nil {
		return nil, err
	}
	b, err := rebuild(ctx, repo, set, rec)
	if err != nil {
		return nil, err
	}
	return newView(rec, b), nil
}

func loadBattle(repo BattleRepo, id string) (*game.BattleRecord, error) {
	rec, err := repo.GetBattleByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBattleNotFound
		}
		return nil, err
	}
	if rec == nil {
		return nil, ErrBattleNotFound
	}
	return rec, nil
}
