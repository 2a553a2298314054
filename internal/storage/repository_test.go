package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/ruleset"
)

func openTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := OpenAndMigrate("sqlite", filepath.Join(t.TempDir(), "battles.db"), ruleset.Default().AllSpecies())
	require.NoError(t, err)
	return NewRepository(db)
}

func TestSpeciesRoundTrip(t *testing.T) {
	repo := openTestRepo(t)

	got, err := repo.GetSpeciesByName("Charizard")
	require.NoError(t, err)
	want, _ := ruleset.Default().Species("charizard")
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Types, got.Types)
	assert.Equal(t, want.BaseStats, got.BaseStats)
	assert.Equal(t, want.Learnset, got.Learnset)

	all, err := repo.ListSpecies()
	require.NoError(t, err)
	assert.Len(t, all, len(ruleset.Default().AllSpecies()))

	_, err = repo.GetSpeciesByName("agumon")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertSpeciesRefreshesStats(t *testing.T) {
	repo := openTestRepo(t)
	tpl, _ := ruleset.Default().Species("pikachu")
	tpl.BaseStats.Speed = 130
	require.NoError(t, repo.UpsertSpecies([]game.PokemonTemplate{tpl}))

	got, err := repo.GetSpeciesByName("pikachu")
	require.NoError(t, err)
	assert.Equal(t, 130, got.BaseStats.Speed)
}

func TestBattleLifecycle(t *testing.T) {
	repo := openTestRepo(t)
	b := &game.BattleRecord{
		ID:             "2b1f4d6c-58d3-4a7e-9a35-7f0d1f0c9b11",
		SpeciesA:       "charizard",
		SpeciesB:       "venusaur",
		LevelA:         50,
		LevelB:         50,
		MovesA:         "flamethrower,air-slash",
		MovesB:         "vine-whip,sleep-powder",
		Seed:           7,
		Status:         game.BattleInProgress,
		Phase:          game.PhasePlanning,
		ActionDeadline: time.Now().Add(-time.Second),
	}
	require.NoError(t, repo.CreateBattle(b))

	b.Rounds = append(b.Rounds, game.RoundRecord{BattleID: b.ID, Number: 2, MoveA: 1, MoveB: 0})
	b.Rounds = append(b.Rounds, game.RoundRecord{BattleID: b.ID, Number: 1, MoveA: 0, MoveB: -1})
	b.Round = 2
	require.NoError(t, repo.UpdateBattle(b))

	got, err := repo.GetBattleByID(b.ID)
	require.NoError(t, err)
	require.Len(t, got.Rounds, 2)
	assert.Equal(t, 1, got.Rounds[0].Number)
	assert.Equal(t, -1, got.Rounds[0].MoveB)
	assert.Equal(t, []string{"flamethrower", "air-slash"}, got.MoveNames(game.SideA))

	timedOut, err := repo.FindTimedOutBattles(time.Now())
	require.NoError(t, err)
	require.Len(t, timedOut, 1)
	assert.Equal(t, b.ID, timedOut[0].ID)

	got.Status = game.BattleFinished
	require.NoError(t, repo.UpdateBattle(got))
	timedOut, err = repo.FindTimedOutBattles(time.Now())
	require.NoError(t, err)
	assert.Empty(t, timedOut)

	_, err = repo.GetBattleByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDialector(t *testing.T) {
	d, err := Dialector("postgres", "postgres://poke@localhost/battles?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = Dialector("mysql", "x")
	assert.Error(t, err)
}
