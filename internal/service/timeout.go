package service

import (
	"context"
	"errors"
	"time"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/engine"
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/logging"
)

// HandleTimedOutBattle applies timeout resolution for a single battle.
// Behavior:
// - neither side submitted -> end the battle with no winner
// - exactly one side missing -> auto-submit its first usable move
//
// The decision is made under the battle lock against the stored record,
// so a move submitted after the scan but before this call is kept. The
// returned view is nil when nothing changed.
func HandleTimedOutBattle(ctx context.Context, repo BattleRepo, set Settings, id string, now time.Time) (*BattleView, error) {
	unlock := battleLocks.Lock(id)
	defer unlock()

	rec, err := loadBattle(repo, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != game.BattleInProgress || rec.Phase != game.PhasePlanning || now.Before(rec.ActionDeadline) {
		return nil, nil
	}

	fields := logging.Fields{constants.LogFieldBattleID: id}
	submittedA, submittedB := rec.PendingA != nil, rec.PendingB != nil
	switch {
	case !submittedA && !submittedB:
		logging.Info("both sides timed out; ending battle", fields)
		return abandonLocked(ctx, repo, set, rec,
			"Battle ended due to inactivity",
			"Round timed out: neither side submitted a move in time.")
	case submittedA && !submittedB:
		return autoSubmit(ctx, repo, set, rec, game.SideB)
	case !submittedA && submittedB:
		return autoSubmit(ctx, repo, set, rec, game.SideA)
	default:
		// both submitted: the round is being resolved by SubmitAction
		return nil, nil
	}
}

func autoSubmit(ctx context.Context, repo BattleRepo, set Settings, rec *game.BattleRecord, side game.Side) (*BattleView, error) {
	b, err := rebuild(ctx, repo, set, rec)
	if err != nil {
		return nil, err
	}
	idx := FirstUsableMove(b.Combatant(side))
	logging.Info("auto-submitting move for inactive side", logging.Fields{
		constants.LogFieldBattleID: rec.ID,
		constants.LogFieldSide:     string(side),
	})
	v, _, err := submitLocked(ctx, repo, set, rec, side, idx)
	return v, err
}

// FirstUsableMove returns the first slot with PP left, or -1 (struggle).
func FirstUsableMove(c game.Combatant) int {
	for i, s := range c.Moves {
		if s.PP > 0 {
			return i
		}
	}
	return -1
}

// AbandonBattle ends an in-progress battle with no winner.
func AbandonBattle(ctx context.Context, repo BattleRepo, set Settings, id, message, summary string) (*BattleView, error) {
	unlock := battleLocks.Lock(id)
	defer unlock()

	rec, err := loadBattle(repo, id)
	if err != nil {
		return nil, err
	}
	return abandonLocked(ctx, repo, set, rec, message, summary)
}

func abandonLocked(ctx context.Context, repo BattleRepo, set Settings, rec *game.BattleRecord, message, summary string) (*BattleView, error) {
	if rec.Status != game.BattleInProgress {
		return nil, ErrBattleNotInProgress
	}
	b, err := rebuild(ctx, repo, set, rec)
	if err != nil {
		return nil, err
	}
	events, err := b.Abandon(ctx)
	if err != nil {
		if errors.Is(err, engine.ErrBattleEnded) {
			return nil, ErrBattleNotInProgress
		}
		return nil, err
	}
	if err := applyBattle(rec, b); err != nil {
		return nil, err
	}
	rec.ActionDeadline = time.Time{}
	if message != "" {
		rec.Message = message
	}
	if summary != "" {
		rec.LastRoundSummary = summary
	}
	if err := repo.UpdateBattle(rec); err != nil {
		return nil, err
	}
	v := newView(rec, b)
	v.RoundEvents = events
	return v, nil
}
