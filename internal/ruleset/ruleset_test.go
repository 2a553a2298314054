package ruleset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/pokebattle/internal/game"
)

func TestDefault_FallbackSetsAreBalanced(t *testing.T) {
	d := Default()
	for _, typ := range append([]game.Type{game.TypeUnknown}, game.AllTypes...) {
		set := d.Fallback(typ)
		require.Len(t, set, 4, "fallback for %q", typ)
		var neutral, statusMoves int
		for _, m := range set {
			if m.Type == game.TypeNormal && !m.IsStatus() {
				neutral++
			}
			if m.IsStatus() {
				statusMoves++
			}
		}
		assert.GreaterOrEqual(t, neutral, 1, "fallback for %q lacks a neutral damaging move", typ)
		assert.GreaterOrEqual(t, statusMoves, 1, "fallback for %q lacks a status move", typ)
	}
}

func TestDefault_LookupNormalizesNames(t *testing.T) {
	d := Default()
	m, ok := d.Move("Thunder Wave")
	require.True(t, ok)
	assert.Equal(t, "thunder-wave", m.Name)
	assert.Equal(t, "paralyze", m.EffectTag)

	s, ok := d.Species("  Charizard ")
	require.True(t, ok)
	assert.Equal(t, []game.Type{game.TypeFire, game.TypeFlying}, s.Types)

	// returned templates are copies
	s.Types[0] = game.TypeWater
	again, _ := d.Species("charizard")
	assert.Equal(t, game.TypeFire, again.Types[0])
}

func TestDefault_BuiltinLearnsetsResolve(t *testing.T) {
	d := Default()
	for _, s := range d.AllSpecies() {
		for _, e := range s.Learnset {
			_, ok := d.Move(e.MoveName)
			assert.True(t, ok, "%s learns unknown move %s", s.Name, e.MoveName)
		}
	}
}

const samplePack = `
moves:
  - name: Flame Wheel
    type: fire
    base_power: 60
    accuracy: 100
    pp: 25
    damage_class: physical
    effect_tag: burn
    effect_chance: 10
  - name: tackle
    type: normal
    base_power: 50
    accuracy: 100
    pp: 35
species:
  - id: 155
    name: Cyndaquil
    types: [fire]
    base_stats: {hp: 39, attack: 52, defense: 43, special_attack: 60, special_defense: 50, speed: 65}
    learnset:
      - {move_name: tackle, learn_method: level-up, level_learned: 1}
      - {move_name: Flame Wheel, learn_method: level-up, level_learned: 10}
`

func TestLoadFile_LayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePack), 0o600))

	d, err := LoadFile(path)
	require.NoError(t, err)

	m, ok := d.Move("flame-wheel")
	require.True(t, ok)
	assert.Equal(t, game.TypeFire, m.Type)
	assert.Equal(t, game.TargetOpponent, m.Target)

	tackle, _ := d.Move("tackle")
	assert.Equal(t, 50, tackle.BasePower)
	assert.Equal(t, game.ClassPhysical, tackle.DamageClass)

	s, ok := d.Species("cyndaquil")
	require.True(t, ok)
	assert.Equal(t, "flame-wheel", s.Learnset[1].MoveName)

	_, ok = d.Species("charizard")
	assert.True(t, ok, "built-in species survive a pack load")
}

func TestParse_RejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"unknown type":    "moves:\n  - {name: x, type: plasma, base_power: 10, accuracy: 100, pp: 5}\n",
		"bad accuracy":    "moves:\n  - {name: x, type: fire, base_power: 10, accuracy: 150, pp: 5}\n",
		"zero pp":         "moves:\n  - {name: x, type: fire, base_power: 10, accuracy: 100, pp: 0}\n",
		"duplicate move":  "moves:\n  - {name: x, type: fire, accuracy: 100, pp: 5}\n  - {name: X, type: fire, accuracy: 100, pp: 5}\n",
		"three types":     "species:\n  - {name: y, types: [fire, water, grass], base_stats: {hp: 10}}\n",
		"zero hp":         "species:\n  - {name: y, types: [fire], base_stats: {hp: 0}}\n",
		"bad learnmethod": "species:\n  - {name: y, types: [fire], base_stats: {hp: 1}, learnset: [{move_name: tackle, learn_method: dream}]}\n",
		"not yaml":        "moves: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
