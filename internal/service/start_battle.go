package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/engine"
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
	"github.com/ericogr/pokebattle/internal/logging"
	"github.com/ericogr/pokebattle/internal/moveset"
)

// StartRequest describes a new battle. Zero levels use the configured
// default; a nil Seed draws one from the clock.
type StartRequest struct {
	SpeciesA string `json:"species_a"`
	SpeciesB string `json:"species_b"`
	LevelA   int    `json:"level_a"`
	LevelB   int    `json:"level_b"`
	Seed     *int64 `json:"seed"`
}

// StartBattle resolves both species, selects their movesets, validates the
// resulting combatants and persists a battle in the planning phase.
// Moveset selection draws from streams derived from the seed so the
// battle stream itself stays replayable.
func StartBattle(ctx context.Context, repo BattleRepo, set Settings, req StartRequest) (*BattleView, error) {
	levelA, levelB := set.level(req.LevelA), set.level(req.LevelB)
	if levelA < 1 || levelA > 100 || levelB < 1 || levelB > 100 {
		return nil, ErrInvalidLevel
	}
	tplA, err := resolveSpecies(repo, req.SpeciesA)
	if err != nil {
		return nil, err
	}
	tplB, err := resolveSpecies(repo, req.SpeciesB)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	tplA.Level, tplB.Level = levelA, levelB
	selA := moveset.Select(tplA, set.Moveset, set.Ruleset, engine.NewSeededRNG(seed+1))
	selB := moveset.Select(tplB, set.Moveset, set.Ruleset, engine.NewSeededRNG(seed+2))
	for _, s := range []struct {
		name string
		sel  moveset.Selection
	}{{tplA.Name, selA}, {tplB.Name, selB}} {
		if s.sel.UsedFallback {
			logging.Warn("learnset unusable; using fallback moveset", logging.Fields{constants.LogFieldSpecies: s.name})
		}
	}

	rec := &game.BattleRecord{
		ID:             uuid.NewString(),
		SpeciesA:       keys.NameKey(tplA.Name),
		SpeciesB:       keys.NameKey(tplB.Name),
		LevelA:         levelA,
		LevelB:         levelB,
		MovesA:         strings.Join(selA.Names(), ","),
		MovesB:         strings.Join(selB.Names(), ","),
		Seed:           seed,
		MaxRounds:      set.MaxRounds,
		Status:         game.BattleInProgress,
		Phase:          game.PhasePlanning,
		ActionDeadline: time.Now().Add(set.ActionTimeout),
		Message:        "The battle has started. Choose your moves.",
	}
	if err := rec.SetSetup(game.SideA, game.SideSetup{Template: tplA, Moves: selA.Moves}); err != nil {
		return nil, err
	}
	if err := rec.SetSetup(game.SideB, game.SideSetup{Template: tplB, Moves: selB.Moves}); err != nil {
		return nil, err
	}
	// Build once so a broken template is rejected before anything is stored.
	b, err := rebuild(ctx, repo, set, rec)
	if err != nil {
		return nil, err
	}
	rec.FinalHPA = b.Combatant(game.SideA).HP()
	rec.FinalHPB = b.Combatant(game.SideB).HP()
	rec.EventLog = "[]"
	if err := repo.CreateBattle(rec); err != nil {
		return nil, err
	}
	logging.Info("battle started", logging.Fields{
		constants.LogFieldBattleID: rec.ID,
		constants.LogFieldSpecies:  rec.SpeciesA + " vs " + rec.SpeciesB,
	})
	return newView(rec, b), nil
}
