package engine

import (
	"strconv"
	"strings"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/logging"
)

// Effect tags understood by ApplyEffect. Stat tags are built from a prefix
// and a stat name, e.g. "sharply-raise-attack" or "lower-special-defense".
const (
	TagBurn        = "burn"
	TagPoison      = "poison"
	TagToxic       = "toxic"
	TagParalyze    = "paralyze"
	TagSleep       = "sleep"
	TagFreeze      = "freeze"
	TagConfuse     = "confuse"
	TagFlinch      = "flinch"
	TagProtect     = "protect"
	TagRest        = "rest"
	TagHealQuarter = "heal-quarter"
	TagHealHalf    = "heal-half"
	TagHealFull    = "heal-full"

	prefixSharplyRaise = "sharply-raise-"
	prefixRaise        = "raise-"
	prefixHarshlyLower = "harshly-lower-"
	prefixLower        = "lower-"
)

const (
	restSleepTurns = 2
	maxSleepTurns  = 3
	maxConfusion   = 4
)

// EffectResult carries the new user and target values and what happened.
type EffectResult struct {
	User   game.Combatant
	Target game.Combatant
	Events []BattleEvent
}

// Messages returns the text of the result's events.
func (r EffectResult) Messages() []string { return Messages(r.Events) }

// ApplyEffect resolves a move's secondary effect. It is pure: user and
// target are cloned and the inputs are never modified. A damaging move
// with an EffectChance between 1 and 99 rolls for it first; 0 or 100
// means it always applies.
func ApplyEffect(move game.Move, user, target game.Combatant, rng RNG) EffectResult {
	res := EffectResult{User: user.Clone(), Target: target.Clone()}
	tag := strings.ToLower(strings.TrimSpace(move.EffectTag))
	if tag == "" {
		return res
	}
	if !move.IsStatus() && move.EffectChance > 0 && move.EffectChance < 100 {
		if rng.Intn(100) >= move.EffectChance {
			return res
		}
	}

	switch tag {
	case TagBurn:
		res.Target, res.Events = inflictStatus(res.Target, game.Status{Kind: game.StatusBurn})
	case TagPoison:
		res.Target, res.Events = inflictStatus(res.Target, game.Status{Kind: game.StatusPoison})
	case TagToxic:
		res.Target, res.Events = inflictStatus(res.Target, game.Status{Kind: game.StatusBadPoison, Counter: 1})
	case TagParalyze:
		res.Target, res.Events = inflictStatus(res.Target, game.Status{Kind: game.StatusParalysis})
	case TagFreeze:
		res.Target, res.Events = inflictStatus(res.Target, game.Status{Kind: game.StatusFreeze})
	case TagSleep:
		s := game.Status{Kind: game.StatusSleep}
		if res.Target.Status.Kind == game.StatusNone && !res.Target.Fainted() {
			s.Counter = 1 + rng.Intn(maxSleepTurns)
		}
		res.Target, res.Events = inflictStatus(res.Target, s)
	case TagConfuse:
		res.Target, res.Events = confuse(res.Target, rng)
	case TagFlinch:
		if !res.Target.Fainted() {
			res.Target.Volatile.Flinched = true
		}
	case TagProtect:
		res.User.Volatile.Protected = true
		res.Events = append(res.Events, event(EventProtected, res.User.Name+" protected itself!"))
	case TagRest:
		res.User, res.Events = restAndSleep(res.User)
	case TagHealQuarter:
		res.User, res.Events = healFraction(res.User, 1, 4)
	case TagHealHalf:
		res.User, res.Events = healFraction(res.User, 1, 2)
	case TagHealFull:
		res.User, res.Events = healFraction(res.User, 1, 1)
	default:
		if stat, delta, self, ok := parseStageTag(tag); ok {
			if self {
				res.User, res.Events = changeStage(res.User, stat, delta)
			} else if !res.Target.Fainted() {
				res.Target, res.Events = changeStage(res.Target, stat, delta)
			}
			break
		}
		logging.Warn("unknown move effect tag", logging.Fields{
			constants.LogFieldMove:      move.Name,
			constants.LogFieldEffectTag: tag,
		})
		res.Events = append(res.Events, event(EventWarning, move.Name+" has an unknown effect ("+tag+") and did nothing"))
	}
	return res
}

// statusImmune reports type-based immunity to a status.
func statusImmune(c game.Combatant, kind game.StatusKind) bool {
	switch kind {
	case game.StatusBurn:
		return c.HasType(game.TypeFire)
	case game.StatusParalysis:
		return c.HasType(game.TypeElectric)
	case game.StatusPoison, game.StatusBadPoison:
		return c.HasType(game.TypePoison) || c.HasType(game.TypeSteel)
	case game.StatusFreeze:
		return c.HasType(game.TypeIce) || c.HasType(game.TypeFire)
	}
	return false
}

var statusVerbs = map[game.StatusKind]string{
	game.StatusBurn:      " was burned!",
	game.StatusPoison:    " was poisoned!",
	game.StatusBadPoison: " was badly poisoned!",
	game.StatusParalysis: " is paralyzed! It may be unable to move!",
	game.StatusSleep:     " fell asleep!",
	game.StatusFreeze:    " was frozen solid!",
}

var statusNames = map[game.StatusKind]string{
	game.StatusBurn:      "burned",
	game.StatusPoison:    "poisoned",
	game.StatusBadPoison: "badly poisoned",
	game.StatusParalysis: "paralyzed",
	game.StatusSleep:     "asleep",
	game.StatusFreeze:    "frozen",
}

func inflictStatus(c game.Combatant, s game.Status) (game.Combatant, []BattleEvent) {
	if c.Fainted() {
		return c, nil
	}
	if c.Status.Kind != game.StatusNone {
		return c, []BattleEvent{event(EventNone, c.Name+" is already "+statusNames[c.Status.Kind]+"!")}
	}
	if statusImmune(c, s.Kind) {
		return c, []BattleEvent{event(EventNoEffect, "It doesn't affect "+c.Name+"...")}
	}
	c.Status = s
	return c, []BattleEvent{event(EventStatusInflicted, c.Name+statusVerbs[s.Kind])}
}

func confuse(c game.Combatant, rng RNG) (game.Combatant, []BattleEvent) {
	if c.Fainted() {
		return c, nil
	}
	if c.Volatile.Confused() {
		return c, []BattleEvent{event(EventNone, c.Name+" is already confused!")}
	}
	c.Volatile.ConfusedTurns = 1 + rng.Intn(maxConfusion)
	return c, []BattleEvent{event(EventStatusInflicted, c.Name+" became confused!")}
}

func restAndSleep(c game.Combatant) (game.Combatant, []BattleEvent) {
	c, _ = c.Heal(c.MaxHP())
	c.Status = game.Status{Kind: game.StatusSleep, Counter: restSleepTurns}
	return c, []BattleEvent{event(EventHealed, c.Name+" slept and became healthy!")}
}

func healFraction(c game.Combatant, num, den int) (game.Combatant, []BattleEvent) {
	if c.Fainted() {
		return c, nil
	}
	if c.HP() == c.MaxHP() {
		return c, []BattleEvent{event(EventNone, c.Name+"'s HP is full!")}
	}
	amount := c.MaxHP() * num / den
	if amount < 1 {
		amount = 1
	}
	c, healed := c.Heal(amount)
	return c, []BattleEvent{event(EventHealed, c.Name+" regained "+strconv.Itoa(healed)+" HP!")}
}

// parseStageTag splits a stat tag. self is true for raises, which always
// land on the user; lowers land on the target.
func parseStageTag(tag string) (stat game.Stat, delta int, self bool, ok bool) {
	var name string
	switch {
	case strings.HasPrefix(tag, prefixSharplyRaise):
		name, delta, self = strings.TrimPrefix(tag, prefixSharplyRaise), 2, true
	case strings.HasPrefix(tag, prefixRaise):
		name, delta, self = strings.TrimPrefix(tag, prefixRaise), 1, true
	case strings.HasPrefix(tag, prefixHarshlyLower):
		name, delta = strings.TrimPrefix(tag, prefixHarshlyLower), -2
	case strings.HasPrefix(tag, prefixLower):
		name, delta = strings.TrimPrefix(tag, prefixLower), -1
	default:
		return 0, 0, false, false
	}
	stat, ok = game.ParseStat(name)
	return stat, delta, self, ok
}

func changeStage(c game.Combatant, s game.Stat, delta int) (game.Combatant, []BattleEvent) {
	c, applied := c.WithStage(s, delta)
	who := c.Name + "'s " + strings.ReplaceAll(s.String(), "-", " ")
	var msg string
	switch {
	case applied == 0 && delta > 0:
		msg = who + " won't go higher!"
	case applied == 0:
		msg = who + " won't go lower!"
	case applied >= 2:
		msg = who + " rose sharply!"
	case applied > 0:
		msg = who + " rose!"
	case applied <= -2:
		msg = who + " harshly fell!"
	default:
		msg = who + " fell!"
	}
	code := EventStatChanged
	if applied == 0 {
		code = EventNone
	}
	return c, []BattleEvent{event(code, msg)}
}
