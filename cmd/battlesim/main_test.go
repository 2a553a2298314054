package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/pokebattle/internal/engine"
	"github.com/ericogr/pokebattle/internal/engine/enginetest"
	"github.com/ericogr/pokebattle/internal/moveset"
	"github.com/ericogr/pokebattle/internal/ruleset"
)

func TestCombatant_RejectsBadInput(t *testing.T) {
	data := ruleset.Default()
	_, err := combatant(data, "missingno", 50, 1)
	assert.Error(t, err)
	_, err = combatant(data, "pikachu", 0, 1)
	assert.Error(t, err)

	c, err := combatant(data, "Pikachu", 42, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, c.Level)
	assert.NotEmpty(t, c.Moves)
}

func TestCombatant_MatchesServerSelection(t *testing.T) {
	data := ruleset.Default()
	for _, level := range []int{5, 50, 100} {
		for seed := int64(1); seed <= 5; seed++ {
			c, err := combatant(data, "charizard", level, seed)
			require.NoError(t, err)

			tpl, ok := data.Species("charizard")
			require.True(t, ok)
			tpl.Level = level
			want := moveset.Select(tpl, moveset.DefaultConstraints(), data, engine.NewSeededRNG(seed)).Names()

			got := make([]string, len(c.Moves))
			for i, slot := range c.Moves {
				got[i] = slot.Move.Name
			}
			assert.Equal(t, want, got, "level %d seed %d", level, seed)
		}
	}

	// without a level every level-up move would be filtered out
	levelUp := map[string]bool{"scratch": true, "growl": true, "ember": true, "scary-face": true, "fire-fang": true, "wing-attack": true, "flamethrower": true}
	learned := false
	for seed := int64(1); seed <= 5; seed++ {
		c, err := combatant(data, "charizard", 50, seed)
		require.NoError(t, err)
		for _, slot := range c.Moves {
			learned = learned || levelUp[slot.Move.Name]
		}
	}
	assert.True(t, learned, "level 50 charizard never picked a level-up move")
}

func TestChooser(t *testing.T) {
	data := ruleset.Default()
	c, err := combatant(data, "snorlax", 50, 7)
	require.NoError(t, err)

	first, err := chooser("first", enginetest.FixedRNG(0))
	require.NoError(t, err)
	assert.Equal(t, 0, first(c))

	for i := range c.Moves {
		c.Moves[i].PP = 0
	}
	assert.Equal(t, -1, first(c))

	random, err := chooser("random", engine.NewSeededRNG(1))
	require.NoError(t, err)
	assert.Equal(t, -1, random(c))

	_, err = chooser("greedy", enginetest.FixedRNG(0))
	assert.Error(t, err)
}

func TestRun_FinishesWithinCap(t *testing.T) {
	opts := options{speciesA: "gengar", speciesB: "dragonite", levelA: 50, levelB: 50, seed: 11, maxRounds: 30, policy: "first", jsonOut: true}
	require.NoError(t, run(context.Background(), opts))

	opts.policy = "greedy"
	assert.Error(t, run(context.Background(), opts))
}
