package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/looplab/fsm"

	"github.com/ericogr/pokebattle/internal/game"
)

var (
	ErrBattleEnded   = errors.New("battle has ended")
	ErrInvalidAction = errors.New("invalid action")
	ErrMissingChart  = errors.New("type chart is required")
	ErrMissingRNG    = errors.New("rng is required")
)

// Battle states.
const (
	StateSetup      = "setup"
	StateInProgress = "in_progress"
	StateEnded      = "ended"

	eventStart = "start"
	eventEnd   = "end"
)

// Struggle is used by a combatant with no PP left on any move. Its
// recoil guarantees the battle still terminates.
var Struggle = game.Move{
	Name:        "struggle",
	Type:        game.TypeNormal,
	BasePower:   50,
	Accuracy:    100,
	DamageClass: game.ClassPhysical,
	Target:      game.TargetOpponent,
}

// Options tunes a battle. The zero value plays until a knock-out.
type Options struct {
	// MaxRounds ends the battle after this many rounds when > 0; the side
	// with the larger HP fraction wins, equal fractions draw.
	MaxRounds int
}

// FinalHP is the HP of both sides when the battle ended.
type FinalHP struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Outcome is the terminal result. Winner is SideNone for a draw.
type Outcome struct {
	Winner  game.Side `json:"winner"`
	FinalHP FinalHP   `json:"final_hp"`
	Rounds  int       `json:"rounds"`
}

// Battle owns two combatants and advances them one round per PlayRound
// call. It is not safe for concurrent use; callers serialize access.
type Battle struct {
	a, b    game.Combatant
	chart   TypeChart
	rng     RNG
	opts    Options
	fsm     *fsm.FSM
	round   int
	log     []BattleEvent
	summary string
	outcome *Outcome
}

// NewBattle validates both combatants and returns a battle in the setup
// state. Construction errors are fatal: the battle never starts.
func NewBattle(a, b game.Combatant, chart TypeChart, rng RNG, opts Options) (*Battle, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("side a: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("side b: %w", err)
	}
	if chart == nil {
		return nil, ErrMissingChart
	}
	if rng == nil {
		return nil, ErrMissingRNG
	}
	return &Battle{
		a:     a.Clone(),
		b:     b.Clone(),
		chart: chart,
		rng:   rng,
		opts:  opts,
		fsm: fsm.NewFSM(
			StateSetup,
			fsm.Events{
				{Name: eventStart, Src: []string{StateSetup}, Dst: StateInProgress},
				{Name: eventEnd, Src: []string{StateSetup, StateInProgress}, Dst: StateEnded},
			},
			fsm.Callbacks{},
		),
	}, nil
}

func (b *Battle) State() string { return b.fsm.Current() }
func (b *Battle) Ended() bool   { return b.fsm.Is(StateEnded) }
func (b *Battle) Round() int    { return b.round }

// Combatant returns a copy of one side's current state.
func (b *Battle) Combatant(s game.Side) game.Combatant {
	if s == game.SideB {
		return b.b.Clone()
	}
	return b.a.Clone()
}

// Log returns every event emitted so far.
func (b *Battle) Log() []BattleEvent {
	return append([]BattleEvent(nil), b.log...)
}

// Outcome returns the terminal result once the battle has ended.
func (b *Battle) Outcome() (Outcome, bool) {
	if b.outcome == nil {
		return Outcome{}, false
	}
	return *b.outcome, true
}

// PlayRound resolves one round from both sides' move indexes and returns
// the events it produced. A side with no PP on any move struggles and its
// index is ignored. Invalid input is rejected before any state changes.
func (b *Battle) PlayRound(ctx context.Context, moveA, moveB int) ([]BattleEvent, error) {
	if b.Ended() {
		return nil, ErrBattleEnded
	}
	actA, err := b.action(game.SideA, moveA)
	if err != nil {
		return nil, err
	}
	actB, err := b.action(game.SideB, moveB)
	if err != nil {
		return nil, err
	}
	if b.fsm.Is(StateSetup) {
		if err := b.fsm.Event(ctx, eventStart); err != nil {
			return nil, fmt.Errorf("start battle: %w", err)
		}
	}

	rc := newRoundContext(b)
	order := Order([]Action{actA, actB}, b.rng)
	for _, act := range order {
		rc.execute(act)
	}
	for _, act := range order {
		c := rc.combatant(act.Side)
		var evs []BattleEvent
		*c, evs = EndOfTurn(*c)
		rc.addAll(evs)
		rc.checkFaint(act.Side)
	}
	b.round = rc.round

	switch {
	case b.a.Fainted() || b.b.Fainted():
		winner := game.SideNone
		if !b.a.Fainted() {
			winner = game.SideA
		} else if !b.b.Fainted() {
			winner = game.SideB
		}
		if err := rc.finish(ctx, winner); err != nil {
			return nil, err
		}
	case b.opts.MaxRounds > 0 && b.round >= b.opts.MaxRounds:
		if err := rc.finish(ctx, b.leaderByHP()); err != nil {
			return nil, err
		}
	}

	b.log = append(b.log, rc.events...)
	b.summary = rc.joinSummary()
	return rc.events, nil
}

// LastSummary is the text of the most recent round, one event per line.
func (b *Battle) LastSummary() string { return b.summary }

// Abandon ends a battle without a winner, e.g. when neither side acted
// before a deadline.
func (b *Battle) Abandon(ctx context.Context) ([]BattleEvent, error) {
	if b.Ended() {
		return nil, ErrBattleEnded
	}
	rc := newRoundContext(b)
	rc.round = b.round
	if err := rc.finish(ctx, game.SideNone); err != nil {
		return nil, err
	}
	b.log = append(b.log, rc.events...)
	b.summary = rc.joinSummary()
	return rc.events, nil
}

func (b *Battle) action(s game.Side, idx int) (Action, error) {
	c := b.Combatant(s)
	act := Action{Side: s, MoveIndex: idx, Speed: effectiveSpeed(c)}
	if !c.HasPP() {
		act.MoveIndex = -1
		act.Move = Struggle
		return act, nil
	}
	if idx < 0 || idx >= len(c.Moves) {
		return Action{}, fmt.Errorf("%w: side %s has no move %d", ErrInvalidAction, s, idx)
	}
	if c.Moves[idx].PP <= 0 {
		return Action{}, fmt.Errorf("%w: side %s move %s has no PP left", ErrInvalidAction, s, c.Moves[idx].Move.Name)
	}
	act.Move = c.Moves[idx].Move
	return act, nil
}

func (b *Battle) leaderByHP() game.Side {
	// compare hpA/maxA with hpB/maxB without floats
	l := b.a.HP() * b.b.MaxHP()
	r := b.b.HP() * b.a.MaxHP()
	switch {
	case l > r:
		return game.SideA
	case r > l:
		return game.SideB
	}
	return game.SideNone
}

// execute runs one ordered action: gate, PP, damage, effect, HP.
func (rc *roundContext) execute(act Action) {
	user := rc.combatant(act.Side)
	target := rc.combatant(act.Side.Opponent())
	if user.Fainted() {
		return
	}

	var gate ActGate
	*user, gate = CanAct(*user, rc.b.rng)
	rc.addAll(gate.Events)
	if !gate.CanAct {
		rc.checkFaint(act.Side)
		return
	}

	if act.MoveIndex >= 0 {
		*user, _ = user.UsePP(act.MoveIndex)
	}
	rc.add(EventMoveUsed, user.Name+" used "+displayMove(act.Move)+"!")
	rc.resolveMove(act.Move, user, target)

	// struggle recoil lands even on a miss or an immune target
	if act.MoveIndex < 0 && !user.Fainted() {
		recoil := user.MaxHP() / 4
		if recoil < 1 {
			recoil = 1
		}
		*user, _ = user.Damage(recoil)
		rc.add(EventDamage, user.Name+" is damaged by recoil!")
	}
	rc.checkFaint(act.Side.Opponent())
	rc.checkFaint(act.Side)
}

func (rc *roundContext) resolveMove(move game.Move, user, target *game.Combatant) {
	if move.TargetsOpponent() && target.Fainted() {
		rc.add(EventNone, "But there was no target...")
		return
	}

	dr := ResolveDamage(*user, *target, move, rc.b.chart, rc.b.rng)
	switch {
	case dr.Blocked:
		target.Volatile.Protected = false
		rc.add(EventProtected, target.Name+" protected itself!")
		return
	case !dr.Hit:
		rc.add(EventMiss, user.Name+"'s attack missed!")
		return
	}
	if !move.IsStatus() {
		if dr.Effectiveness == 0 {
			rc.add(EventNoEffect, "It doesn't affect "+target.Name+"...")
			return
		}
		if dr.Critical {
			rc.add(EventCritical, "A critical hit!")
		}
		if dr.Effectiveness > 1 {
			rc.add(EventSuperEffective, "It's super effective!")
		} else if dr.Effectiveness < 1 {
			rc.add(EventNotVeryEffective, "It's not very effective...")
		}
	}

	eff := ApplyEffect(move, *user, *target, rc.b.rng)
	*user, *target = eff.User, eff.Target
	rc.addAll(eff.Events)

	if dr.Damage > 0 {
		var lost int
		*target, lost = target.Damage(dr.Damage)
		rc.add(EventHit, target.Name+" took "+strconv.Itoa(lost)+" damage!")
	}
}

// checkFaint emits Fainted once per side.
func (rc *roundContext) checkFaint(s game.Side) {
	c := rc.combatant(s)
	if !c.Fainted() || rc.fainted[s] {
		return
	}
	rc.fainted[s] = true
	rc.add(EventFainted, c.Name+" fainted!")
}

func (rc *roundContext) finish(ctx context.Context, winner game.Side) error {
	b := rc.b
	out := Outcome{
		Winner:  winner,
		FinalHP: FinalHP{A: b.a.HP(), B: b.b.HP()},
		Rounds:  b.round,
	}
	switch winner {
	case game.SideNone:
		rc.add(EventBattleEnded, "The battle ended in a draw.")
	default:
		rc.add(EventBattleEnded, rc.combatant(winner).Name+" won the battle!")
	}
	if err := b.fsm.Event(ctx, eventEnd); err != nil {
		return fmt.Errorf("end battle: %w", err)
	}
	b.outcome = &out
	return nil
}
