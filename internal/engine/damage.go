package engine

import (
	"math"

	"github.com/ericogr/pokebattle/internal/game"
)

// TypeChart is the slice of the ruleset the damage formula needs.
type TypeChart interface {
	Multiplier(attack game.Type, defend []game.Type) float64
}

// CritChance is the single canonical critical-hit rate.
const CritChance = 1.0 / 16

const (
	critMultiplier = 1.5
	stabMultiplier = 1.5
	burnMultiplier = 0.5
	varianceFloor  = 0.85
)

// DamageResult is the outcome of one damaging move against one target.
// Blocked is set when Protect stopped the move; Hit is false for both a
// block and a miss.
type DamageResult struct {
	Damage        int
	Effectiveness float64
	Critical      bool
	Hit           bool
	Blocked       bool
}

// ResolveDamage runs the accuracy gate and the damage formula. Rolls are
// drawn in a fixed order (accuracy, crit, variance) so seeded battles
// replay exactly.
func ResolveDamage(attacker, defender game.Combatant, move game.Move, chart TypeChart, rng RNG) DamageResult {
	if move.IsStatus() {
		return DamageResult{Effectiveness: 1, Hit: true}
	}
	if defender.Volatile.Protected && move.TargetsOpponent() && move.DamageClass != game.ClassStatus {
		return DamageResult{Effectiveness: 1, Blocked: true}
	}

	acc := float64(move.Accuracy) * game.AccuracyMultiplier(attacker.Stage(game.StatAccuracy)-defender.Stage(game.StatEvasion))
	if rng.Float64()*100 >= acc {
		return DamageResult{Effectiveness: 1}
	}

	eff := chart.Multiplier(move.Type, defender.Types)
	if eff == 0 {
		return DamageResult{Effectiveness: 0, Hit: true}
	}

	atkStat, defStat := game.StatAttack, game.StatDefense
	if move.DamageClass == game.ClassSpecial {
		atkStat, defStat = game.StatSpecialAttack, game.StatSpecialDefense
	}
	atk := attacker.EffectiveStat(atkStat)
	def := defender.EffectiveStat(defStat)
	if def < 1 {
		def = 1
	}

	dmg := (float64(2*attacker.Level+10)/250)*(float64(atk)/float64(def))*float64(move.BasePower) + 2

	crit := rng.Float64() < CritChance
	if crit {
		dmg *= critMultiplier
	}
	if attacker.HasType(move.Type) {
		dmg *= stabMultiplier
	}
	dmg *= eff
	if attacker.Status.Kind == game.StatusBurn && move.DamageClass == game.ClassPhysical {
		dmg *= burnMultiplier
	}
	dmg *= varianceFloor + (1-varianceFloor)*rng.Float64()

	return DamageResult{
		Damage:        int(math.Floor(math.Max(1, dmg))),
		Effectiveness: eff,
		Critical:      crit,
		Hit:           true,
	}
}

// confusionDamage is the self-hit taken when confusion wins the coin flip:
// a typeless 40-power physical hit against the combatant's own defense,
// without crit, STAB or variance.
func confusionDamage(c game.Combatant) int {
	atk := c.EffectiveStat(game.StatAttack)
	def := c.EffectiveStat(game.StatDefense)
	if def < 1 {
		def = 1
	}
	dmg := (float64(2*c.Level+10)/250)*(float64(atk)/float64(def))*40 + 2
	return int(math.Floor(math.Max(1, dmg)))
}
