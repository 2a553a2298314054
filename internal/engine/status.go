package engine

import (
	"strconv"

	"github.com/ericogr/pokebattle/internal/game"
)

const (
	freezeHoldChance    = 0.75
	paralysisFullChance = 0.25
	confusionSelfChance = 0.5
)

// ActGate is the verdict of the pre-action check.
type ActGate struct {
	CanAct bool
	Events []BattleEvent
}

// CanAct decides whether c may execute its chosen move this action. The
// returned combatant carries the side effects of the check: a consumed
// flinch, a thaw, or confusion self-damage.
//
// Checks run in a fixed order: fainted, flinch, sleep, freeze, paralysis,
// confusion. Sleep counters are not touched here; EndOfTurn owns them.
func CanAct(c game.Combatant, rng RNG) (game.Combatant, ActGate) {
	if c.Fainted() {
		return c, ActGate{}
	}
	c = c.Clone()
	var evs []BattleEvent

	if c.Volatile.Flinched {
		c.Volatile.Flinched = false
		return c, ActGate{Events: []BattleEvent{event(EventCannotAct, c.Name+" flinched and couldn't move!")}}
	}

	switch c.Status.Kind {
	case game.StatusSleep:
		return c, ActGate{Events: []BattleEvent{event(EventCannotAct, c.Name+" is fast asleep.")}}
	case game.StatusFreeze:
		if rng.Float64() < freezeHoldChance {
			return c, ActGate{Events: []BattleEvent{event(EventCannotAct, c.Name+" is frozen solid!")}}
		}
		c.Status = game.Status{}
		evs = append(evs, event(EventNone, c.Name+" thawed out!"))
	case game.StatusParalysis:
		if rng.Float64() < paralysisFullChance {
			return c, ActGate{Events: []BattleEvent{event(EventCannotAct, c.Name+" is paralyzed! It can't move!")}}
		}
	}

	if c.Volatile.Confused() {
		evs = append(evs, event(EventNone, c.Name+" is confused!"))
		if rng.Float64() < confusionSelfChance {
			var lost int
			c, lost = c.Damage(confusionDamage(c))
			evs = append(evs,
				event(EventCannotAct, "It hurt itself in its confusion!"),
				event(EventDamage, c.Name+" took "+strconv.Itoa(lost)+" damage."),
			)
			return c, ActGate{Events: evs}
		}
	}
	return c, ActGate{CanAct: true, Events: evs}
}

// EndOfTurn applies status damage and ticks every counter. A fainted or
// completely clean combatant comes back unchanged with no events.
func EndOfTurn(c game.Combatant) (game.Combatant, []BattleEvent) {
	if c.Fainted() {
		return c, nil
	}
	if c.Status.Kind == game.StatusNone && c.Volatile.IsZero() {
		return c, nil
	}
	c = c.Clone()
	var evs []BattleEvent

	switch c.Status.Kind {
	case game.StatusBurn:
		c, evs = statusTick(c, evs, c.MaxHP()/16, " is hurt by its burn!")
	case game.StatusPoison:
		c, evs = statusTick(c, evs, c.MaxHP()/8, " is hurt by poison!")
	case game.StatusBadPoison:
		n := c.Status.Counter
		if n < 1 {
			n = 1
		}
		c, evs = statusTick(c, evs, c.MaxHP()*n/16, " is hurt by poison!")
		c.Status.Counter = n + 1
	case game.StatusSleep:
		c.Status.Counter--
		if c.Status.Counter <= 0 {
			c.Status = game.Status{}
			evs = append(evs, event(EventWokeUp, c.Name+" woke up!"))
		}
	}

	if c.Volatile.ConfusedTurns > 0 {
		c.Volatile.ConfusedTurns--
		if c.Volatile.ConfusedTurns == 0 {
			evs = append(evs, event(EventNone, c.Name+" snapped out of its confusion!"))
		}
	}
	c.Volatile.Protected = false
	c.Volatile.Flinched = false
	return c, evs
}

func statusTick(c game.Combatant, evs []BattleEvent, amount int, suffix string) (game.Combatant, []BattleEvent) {
	if amount < 1 {
		amount = 1
	}
	c, lost := c.Damage(amount)
	return c, append(evs, event(EventStatusDamage, c.Name+suffix+" (-"+strconv.Itoa(lost)+" HP)"))
}
