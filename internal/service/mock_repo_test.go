package service

import (
	"sync"
	"time"

	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
	"github.com/ericogr/pokebattle/internal/moveset"
	"github.com/ericogr/pokebattle/internal/ruleset"
	"github.com/ericogr/pokebattle/internal/storage"
)

// mockRepo keeps copies of records so tests see only what was saved.
type mockRepo struct {
	mu      sync.Mutex
	species map[string]game.PokemonTemplate
	battles map[string]game.BattleRecord
	updates int
}

func newMockRepo() *mockRepo {
	m := &mockRepo{species: map[string]game.PokemonTemplate{}, battles: map[string]game.BattleRecord{}}
	for _, t := range ruleset.Default().AllSpecies() {
		m.species[keys.NameKey(t.Name)] = t
	}
	return m
}

func copyRecord(b game.BattleRecord) game.BattleRecord {
	b.Rounds = append([]game.RoundRecord(nil), b.Rounds...)
	if b.PendingA != nil {
		v := *b.PendingA
		b.PendingA = &v
	}
	if b.PendingB != nil {
		v := *b.PendingB
		b.PendingB = &v
	}
	return b
}

func (m *mockRepo) GetSpeciesByName(name string) (*game.PokemonTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.species[keys.NameKey(name)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &t, nil
}

func (m *mockRepo) ListSpecies() ([]game.PokemonTemplate, error) {
	return ruleset.Default().AllSpecies(), nil
}

func (m *mockRepo) CreateBattle(b *game.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.battles[b.ID] = copyRecord(*b)
	return nil
}

func (m *mockRepo) GetBattleByID(id string) (*game.BattleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.battles[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := copyRecord(b)
	return &out, nil
}

func (m *mockRepo) UpdateBattle(b *game.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.battles[b.ID] = copyRecord(*b)
	m.updates++
	return nil
}

func (m *mockRepo) expire(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.battles[id]
	b.ActionDeadline = time.Now().Add(-time.Second)
	m.battles[id] = b
}

func testSettings() Settings {
	return Settings{
		Ruleset:       ruleset.Default(),
		Moveset:       moveset.DefaultConstraints(),
		DefaultLevel:  50,
		MaxRounds:     200,
		ActionTimeout: time.Minute,
	}
}

func seed(v int64) *int64 { return &v }
