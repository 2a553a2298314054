package service

import (
	"context"
	"time"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/logging"
)

// ParseSide accepts "a" or "b" in any case.
func ParseSide(s string) (game.Side, error) {
	switch game.Side(s) {
	case game.SideA, "A":
		return game.SideA, nil
	case game.SideB, "B":
		return game.SideB, nil
	}
	return game.SideNone, ErrInvalidSide
}

// SubmitAction stores one side's move for the current round and resolves
// the round once both sides have submitted. A side with no PP left on any
// move struggles; its index is ignored. The returned bool reports whether
// the round was resolved.
func SubmitAction(ctx context.Context, repo BattleRepo, set Settings, id string, side game.Side, moveIndex int) (*BattleView, bool, error) {
	if side != game.SideA && side != game.SideB {
		return nil, false, ErrInvalidSide
	}
	unlock := battleLocks.Lock(id)
	defer unlock()

	rec, err := loadBattle(repo, id)
	if err != nil {
		return nil, false, err
	}
	return submitLocked(ctx, repo, set, rec, side, moveIndex)
}

// submitLocked is SubmitAction for a record loaded under the battle lock.
func submitLocked(ctx context.Context, repo BattleRepo, set Settings, rec *game.BattleRecord, side game.Side, moveIndex int) (*BattleView, bool, error) {
	if rec.Status != game.BattleInProgress {
		return nil, false, ErrBattleNotInProgress
	}
	if rec.Phase != game.PhasePlanning {
		return nil, false, ErrActionsLocked
	}
	if rec.Pending(side) != nil {
		return nil, false, ErrActionAlreadySubmitted
	}
	b, err := rebuild(ctx, repo, set, rec)
	if err != nil {
		return nil, false, err
	}

	c := b.Combatant(side)
	idx := moveIndex
	if !c.HasPP() {
		idx = -1
	} else if idx < 0 || idx >= len(c.Moves) || c.Moves[idx].PP <= 0 {
		return nil, false, ErrInvalidMove
	}
	rec.SetPending(side, &idx)

	if rec.PendingA == nil || rec.PendingB == nil {
		if err := repo.UpdateBattle(rec); err != nil {
			return nil, false, err
		}
		return newView(rec, b), false, nil
	}

	rec.Phase = game.PhaseResolving
	round := game.RoundRecord{BattleID: rec.ID, Number: b.Round() + 1, MoveA: *rec.PendingA, MoveB: *rec.PendingB}
	events, err := b.PlayRound(ctx, round.MoveA, round.MoveB)
	if err != nil {
		return nil, false, err
	}
	rec.Rounds = append(rec.Rounds, round)
	rec.PendingA, rec.PendingB = nil, nil
	if err := applyBattle(rec, b); err != nil {
		return nil, false, err
	}
	if !b.Ended() {
		rec.Phase = game.PhasePlanning
		rec.Message = "Round resolved. Choose your moves."
		rec.ActionDeadline = time.Now().Add(set.ActionTimeout)
	} else {
		rec.ActionDeadline = time.Time{}
		logging.Info("battle finished", logging.Fields{
			constants.LogFieldBattleID: rec.ID,
			constants.LogFieldRound:    rec.Round,
			constants.LogFieldSide:     string(rec.Winner),
		})
	}
	if err := repo.UpdateBattle(rec); err != nil {
		return nil, true, err
	}
	v := newView(rec, b)
	v.RoundEvents = events
	return v, true, nil
}
