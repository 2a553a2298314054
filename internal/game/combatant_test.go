package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMove = Move{Name: "tackle", Type: TypeNormal, BasePower: 40, Accuracy: 100, PP: 35, DamageClass: ClassPhysical, Target: TargetOpponent}

func template(level int, types ...Type) PokemonTemplate {
	return PokemonTemplate{
		ID:        25,
		Name:      "pikachu",
		Types:     types,
		BaseStats: BaseStats{HP: 100, Attack: 100, Defense: 100, SpecialAttack: 100, SpecialDefense: 100, Speed: 100},
		Level:     level,
	}
}

func TestNewCombatant(t *testing.T) {
	c, err := NewCombatant(template(50, TypeElectric), []Move{testMove})
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", c.Name)
	assert.Equal(t, 160, c.HP())
	assert.Equal(t, 160, c.MaxHP())
	assert.Equal(t, 105, c.Stats.Speed)
	assert.Equal(t, 35, c.Moves[0].PP)
}

func TestNewCombatant_Rejects(t *testing.T) {
	other := testMove
	other.Name = "Tackle"
	five := []Move{testMove, {Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}

	cases := []struct {
		name string
		tpl  PokemonTemplate
		mv   []Move
		want error
	}{
		{"zero level", template(0, TypeNormal), []Move{testMove}, ErrInvalidLevel},
		{"no types", template(5), []Move{testMove}, ErrInvalidTypes},
		{"three types", template(5, TypeFire, TypeWater, TypeGrass), []Move{testMove}, ErrInvalidTypes},
		{"no moves", template(5, TypeNormal), nil, ErrEmptyMoveset},
		{"five moves", template(5, TypeNormal), five, ErrTooManyMoves},
		{"duplicate", template(5, TypeNormal), []Move{testMove, other}, ErrDuplicateMove},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCombatant(tc.tpl, tc.mv)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCombatant_HPClamps(t *testing.T) {
	c, err := NewCombatant(template(50, TypeNormal), []Move{testMove})
	require.NoError(t, err)

	hurt, lost := c.Damage(1000)
	assert.Equal(t, 160, lost)
	assert.True(t, hurt.Fainted())
	assert.Equal(t, 160, c.HP(), "receiver changed")

	_, healed := hurt.Heal(50)
	assert.Zero(t, healed, "fainted combatants are not healed")

	hurt, _ = c.Damage(30)
	full, healed := hurt.Heal(100)
	assert.Equal(t, 30, healed)
	assert.Equal(t, 160, full.HP())

	same, lost := c.Damage(-5)
	assert.Zero(t, lost)
	assert.Equal(t, 160, same.HP())

	r := c.Restore(500, 200)
	assert.Equal(t, 200, r.HP())
	assert.Equal(t, 0, c.Restore(-4, 200).HP())
}

func TestCombatant_WithStageClamps(t *testing.T) {
	c, err := NewCombatant(template(50, TypeNormal), []Move{testMove})
	require.NoError(t, err)

	c, applied := c.WithStage(StatAttack, 5)
	assert.Equal(t, 5, applied)
	c, applied = c.WithStage(StatAttack, 2)
	assert.Equal(t, 1, applied)
	assert.Equal(t, MaxStage, c.Stage(StatAttack))
	assert.Equal(t, 420, c.EffectiveStat(StatAttack))

	c, applied = c.WithStage(StatEvasion, -9)
	assert.Equal(t, -6, applied)
	assert.Equal(t, MinStage, c.Stage(StatEvasion))
}

func TestCombatant_UsePP(t *testing.T) {
	m := testMove
	m.PP = 1
	c, err := NewCombatant(template(50, TypeNormal), []Move{m})
	require.NoError(t, err)

	used, ok := c.UsePP(0)
	require.True(t, ok)
	assert.Equal(t, 0, used.Moves[0].PP)
	assert.Equal(t, 1, c.Moves[0].PP, "receiver shares moveset")
	assert.False(t, used.HasPP())

	_, ok = used.UsePP(0)
	assert.False(t, ok)
	_, ok = c.UsePP(3)
	assert.False(t, ok)
}

func TestCombatant_CloneIsIndependent(t *testing.T) {
	c, err := NewCombatant(template(50, TypeFire, TypeFlying), []Move{testMove})
	require.NoError(t, err)
	cp := c.Clone()
	cp.Types[0] = TypeWater
	cp.Moves[0].PP = 0
	assert.Equal(t, TypeFire, c.Types[0])
	assert.Equal(t, 35, c.Moves[0].PP)
	assert.True(t, c.HasType(TypeFlying))
}
