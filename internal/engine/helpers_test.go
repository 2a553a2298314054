package engine

import (
	"testing"

	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/ruleset"
)

var chart = ruleset.StandardChart()

// flat100 gives every base stat 100, so at level 50 HP is 160 and every
// other stat is 105.
var flat100 = game.BaseStats{HP: 100, Attack: 100, Defense: 100, SpecialAttack: 100, SpecialDefense: 100, Speed: 100}

func mustCombatant(t *testing.T, name string, types []game.Type, moves ...game.Move) game.Combatant {
	t.Helper()
	c, err := game.NewCombatant(game.PokemonTemplate{
		ID:        1,
		Name:      name,
		Types:     types,
		BaseStats: flat100,
		Level:     50,
	}, moves)
	if err != nil {
		t.Fatalf("build %s: %v", name, err)
	}
	return c
}

func mv(name string, t game.Type, class game.DamageClass, power int) game.Move {
	return game.Move{Name: name, Type: t, BasePower: power, Accuracy: 100, PP: 10, DamageClass: class, Target: game.TargetOpponent}
}

func statusMove(name, tag string, target game.TargetScope) game.Move {
	return game.Move{Name: name, Type: game.TypeNormal, Accuracy: 100, PP: 10, DamageClass: game.ClassStatus, EffectTag: tag, Target: target}
}

var (
	flame   = mv("flame", game.TypeFire, game.ClassSpecial, 90)
	slam    = mv("slam", game.TypeNormal, game.ClassPhysical, 90)
	beam    = mv("beam", game.TypeNormal, game.ClassSpecial, 90)
	tackle  = mv("tackle", game.TypeNormal, game.ClassPhysical, 40)
	growl   = statusMove("growl", "lower-attack", game.TargetOpponent)
	protect = func() game.Move {
		m := statusMove("protect", TagProtect, game.TargetSelf)
		m.Priority = 4
		return m
	}()
)
