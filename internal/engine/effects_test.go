package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/pokebattle/internal/engine/enginetest"
	"github.com/ericogr/pokebattle/internal/game"
)

func tagged(tag string) game.Move {
	return statusMove("fx", tag, game.TargetOpponent)
}

func TestApplyEffect_IsPure(t *testing.T) {
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	target := mustCombatant(t, "target", []game.Type{game.TypeNormal}, tackle)

	res := ApplyEffect(tagged(TagBurn), user, target, enginetest.FixedRNG(0))
	assert.Equal(t, game.StatusBurn, res.Target.Status.Kind)
	assert.Equal(t, game.StatusNone, target.Status.Kind, "input target mutated")

	res.User.Moves[0].PP = 0
	assert.Equal(t, tackle.PP, user.Moves[0].PP, "result shares moves with input")
}

func TestApplyEffect_TypeImmunities(t *testing.T) {
	cases := []struct {
		tag   string
		types []game.Type
	}{
		{TagBurn, []game.Type{game.TypeFire}},
		{TagParalyze, []game.Type{game.TypeElectric}},
		{TagPoison, []game.Type{game.TypeGrass, game.TypePoison}},
		{TagToxic, []game.Type{game.TypeSteel}},
		{TagFreeze, []game.Type{game.TypeIce}},
		{TagFreeze, []game.Type{game.TypeFire}},
	}
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	for _, tc := range cases {
		target := mustCombatant(t, "target", tc.types, tackle)
		res := ApplyEffect(tagged(tc.tag), user, target, enginetest.FixedRNG(0))
		assert.Equal(t, game.StatusNone, res.Target.Status.Kind, "%s on %v", tc.tag, tc.types)
		require.Len(t, res.Events, 1)
		assert.Equal(t, EventNoEffect, res.Events[0].Code)
	}
}

func TestApplyEffect_SingleStatus(t *testing.T) {
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	target := mustCombatant(t, "target", []game.Type{game.TypeNormal}, tackle)
	target.Status = game.Status{Kind: game.StatusPoison}

	res := ApplyEffect(tagged(TagParalyze), user, target, enginetest.FixedRNG(0))
	assert.Equal(t, game.StatusPoison, res.Target.Status.Kind)
	require.Len(t, res.Events, 1)
	assert.Contains(t, res.Events[0].Message, "already poisoned")
}

func TestApplyEffect_SleepAndToxicCounters(t *testing.T) {
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	target := mustCombatant(t, "target", []game.Type{game.TypeNormal}, tackle)

	res := ApplyEffect(tagged(TagSleep), user, target, &enginetest.SequenceRNG{Ints: []int{2}})
	assert.Equal(t, game.Status{Kind: game.StatusSleep, Counter: 3}, res.Target.Status)

	res = ApplyEffect(tagged(TagToxic), user, target, enginetest.FixedRNG(0))
	assert.Equal(t, game.Status{Kind: game.StatusBadPoison, Counter: 1}, res.Target.Status)
}

func TestApplyEffect_StatStages(t *testing.T) {
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	target := mustCombatant(t, "target", []game.Type{game.TypeNormal}, tackle)

	res := ApplyEffect(statusMove("dance", "sharply-raise-attack", game.TargetSelf), user, target, enginetest.FixedRNG(0))
	assert.Equal(t, 2, res.User.Stage(game.StatAttack))
	assert.Contains(t, res.Events[0].Message, "rose sharply")

	res = ApplyEffect(tagged("harshly-lower-special-defense"), user, target, enginetest.FixedRNG(0))
	assert.Equal(t, -2, res.Target.Stage(game.StatSpecialDefense))
	assert.Contains(t, res.Events[0].Message, "harshly fell")

	maxed, _ := user.WithStage(game.StatSpeed, 6)
	res = ApplyEffect(statusMove("agility", "raise-speed", game.TargetSelf), maxed, target, enginetest.FixedRNG(0))
	assert.Equal(t, 6, res.User.Stage(game.StatSpeed))
	assert.Contains(t, res.Events[0].Message, "won't go higher")

	floored, _ := target.WithStage(game.StatAccuracy, -6)
	res = ApplyEffect(tagged("lower-accuracy"), user, floored, enginetest.FixedRNG(0))
	assert.Equal(t, -6, res.Target.Stage(game.StatAccuracy))
	assert.Contains(t, res.Events[0].Message, "won't go lower")
}

func TestApplyEffect_Healing(t *testing.T) {
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	target := mustCombatant(t, "target", []game.Type{game.TypeNormal}, tackle)
	hurt, _ := user.Damage(100) // 60/160

	res := ApplyEffect(statusMove("recover", TagHealHalf, game.TargetSelf), hurt, target, enginetest.FixedRNG(0))
	assert.Equal(t, 140, res.User.HP())

	res = ApplyEffect(statusMove("dew", TagHealQuarter, game.TargetSelf), hurt, target, enginetest.FixedRNG(0))
	assert.Equal(t, 100, res.User.HP())

	res = ApplyEffect(statusMove("full", TagHealFull, game.TargetSelf), hurt, target, enginetest.FixedRNG(0))
	assert.Equal(t, 160, res.User.HP())

	res = ApplyEffect(statusMove("recover", TagHealHalf, game.TargetSelf), user, target, enginetest.FixedRNG(0))
	assert.Equal(t, 160, res.User.HP())
	assert.Contains(t, res.Events[0].Message, "HP is full")
}

func TestApplyEffect_Rest(t *testing.T) {
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	target := mustCombatant(t, "target", []game.Type{game.TypeNormal}, tackle)
	hurt, _ := user.Damage(150)
	hurt.Status = game.Status{Kind: game.StatusBurn}

	res := ApplyEffect(statusMove("rest", TagRest, game.TargetSelf), hurt, target, enginetest.FixedRNG(0))
	assert.Equal(t, hurt.MaxHP(), res.User.HP())
	assert.Equal(t, game.Status{Kind: game.StatusSleep, Counter: 2}, res.User.Status)
}

func TestApplyEffect_ProtectConfuseFlinch(t *testing.T) {
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	target := mustCombatant(t, "target", []game.Type{game.TypeNormal}, tackle)

	res := ApplyEffect(protect, user, target, enginetest.FixedRNG(0))
	assert.True(t, res.User.Volatile.Protected)

	res = ApplyEffect(tagged(TagConfuse), user, target, enginetest.FixedRNG(0.5))
	assert.Equal(t, 3, res.Target.Volatile.ConfusedTurns)
	again := ApplyEffect(tagged(TagConfuse), user, res.Target, enginetest.FixedRNG(0))
	assert.Equal(t, 3, again.Target.Volatile.ConfusedTurns)
	assert.Contains(t, again.Events[0].Message, "already confused")

	res = ApplyEffect(tagged(TagFlinch), user, target, enginetest.FixedRNG(0))
	assert.True(t, res.Target.Volatile.Flinched)
}

func TestApplyEffect_UnknownTagIsNoOp(t *testing.T) {
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	target := mustCombatant(t, "target", []game.Type{game.TypeNormal}, tackle)

	res := ApplyEffect(tagged("transform-into-a-teapot"), user, target, enginetest.FixedRNG(0))
	require.Len(t, res.Events, 1)
	assert.Equal(t, EventWarning, res.Events[0].Code)
	assert.True(t, strings.Contains(res.Events[0].Message, "unknown effect"))
	assert.Equal(t, target.Snapshot(), res.Target.Snapshot())
	assert.Equal(t, user.Snapshot(), res.User.Snapshot())
}

func TestApplyEffect_SecondaryChance(t *testing.T) {
	user := mustCombatant(t, "user", []game.Type{game.TypeNormal}, tackle)
	target := mustCombatant(t, "target", []game.Type{game.TypeNormal}, tackle)
	ember := mv("ember", game.TypeFire, game.ClassSpecial, 40)
	ember.EffectTag, ember.EffectChance = TagBurn, 10

	res := ApplyEffect(ember, user, target, &enginetest.SequenceRNG{Ints: []int{50}})
	assert.Equal(t, game.StatusNone, res.Target.Status.Kind)
	assert.Empty(t, res.Events)

	res = ApplyEffect(ember, user, target, &enginetest.SequenceRNG{Ints: []int{9}})
	assert.Equal(t, game.StatusBurn, res.Target.Status.Kind)
}
