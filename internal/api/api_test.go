package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
	"github.com/ericogr/pokebattle/internal/moveset"
	"github.com/ericogr/pokebattle/internal/ruleset"
	"github.com/ericogr/pokebattle/internal/service"
	"github.com/ericogr/pokebattle/internal/storage"
	"github.com/ericogr/pokebattle/internal/stream"
)

type memRepo struct {
	mu      sync.Mutex
	data    *ruleset.Data
	battles map[string]game.BattleRecord
}

func newMemRepo() *memRepo {
	return &memRepo{data: ruleset.Default(), battles: map[string]game.BattleRecord{}}
}

func (m *memRepo) UpsertSpecies([]game.PokemonTemplate) error { return nil }

func (m *memRepo) GetSpeciesByName(name string) (*game.PokemonTemplate, error) {
	t, ok := m.data.Species(name)
	if !ok {
		return nil, storage.ErrNotFound
	}
	t.Name = keys.NameKey(t.Name)
	return &t, nil
}

func (m *memRepo) ListSpecies() ([]game.PokemonTemplate, error) { return m.data.AllSpecies(), nil }

func (m *memRepo) CreateBattle(b *game.BattleRecord) error { return m.UpdateBattle(b) }

func (m *memRepo) GetBattleByID(id string) (*game.BattleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.battles[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	b.Rounds = append([]game.RoundRecord(nil), b.Rounds...)
	return &b, nil
}

func (m *memRepo) UpdateBattle(b *game.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *b
	cp.Rounds = append([]game.RoundRecord(nil), b.Rounds...)
	m.battles[b.ID] = cp
	return nil
}

func (m *memRepo) FindTimedOutBattles(now time.Time) ([]game.BattleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.BattleRecord
	for _, b := range m.battles {
		if b.Status == game.BattleInProgress && b.Phase == game.PhasePlanning && !b.ActionDeadline.After(now) {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return NewRouter(newTestHandler(t))
}

func newTestHandler(t *testing.T) *BattleHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	set := service.Settings{
		Ruleset:       ruleset.Default(),
		Moveset:       moveset.DefaultConstraints(),
		DefaultLevel:  50,
		MaxRounds:     100,
		ActionTimeout: time.Minute,
		Roster:        []string{"pikachu", "gengar", "snorlax"},
	}
	return NewBattleHandler(newMemRepo(), set, stream.NewHub())
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListSpeciesUsesRoster(t *testing.T) {
	r := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/species", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out []game.PokemonTemplate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 3)
}

func TestLookups(t *testing.T) {
	r := newTestRouter(t)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/species/Pikachu", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/species/agumon", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/moves/thunder-wave", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/moves/hyper-laser", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/version", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", nil).Code)
}

func TestBattleFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/battles", gin.H{"species_a": "snorlax", "species_b": "snorlax", "seed": 3})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID    string        `json:"id"`
		Round int           `json:"round"`
		A     game.Snapshot `json:"a"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.Round)

	base := "/api/battles/" + created.ID
	w = do(r, http.MethodPost, base+"/action", gin.H{"side": "a", "move_index": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Waiting for opponent")

	w = do(r, http.MethodPost, base+"/action", gin.H{"side": "a", "move_index": 0})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, base+"/action", gin.H{"side": "b", "move_index": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resolved struct {
		Round       int               `json:"round"`
		RoundEvents []json.RawMessage `json:"round_events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.Equal(t, 1, resolved.Round)
	assert.NotEmpty(t, resolved.RoundEvents)

	w = do(r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"round":1`)
	assert.Equal(t, constants.CacheControlNoCache, w.Header().Get(constants.CacheControlHeader))

	w = do(r, http.MethodPost, base+"/abandon", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, base+"/action", gin.H{"side": "a", "move_index": 0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBattleErrors(t *testing.T) {
	r := newTestRouter(t)
	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"bad id", http.MethodGet, "/api/battles/not-a-uuid", nil, http.StatusBadRequest},
		{"unknown battle", http.MethodGet, "/api/battles/6f1c1f5e-2d0a-4c55-9d0c-5a4c8d7e9b10", nil, http.StatusNotFound},
		{"unknown species", http.MethodPost, "/api/battles", gin.H{"species_a": "pikachu", "species_b": "agumon"}, http.StatusNotFound},
		{"bad level", http.MethodPost, "/api/battles", gin.H{"species_a": "pikachu", "species_b": "gengar", "level_a": 500}, http.StatusBadRequest},
		{"missing move index", http.MethodPost, "/api/battles/6f1c1f5e-2d0a-4c55-9d0c-5a4c8d7e9b10/action", gin.H{"side": "a"}, http.StatusBadRequest},
		{"bad side", http.MethodPost, "/api/battles/6f1c1f5e-2d0a-4c55-9d0c-5a4c8d7e9b10/action", gin.H{"side": "c", "move_index": 0}, http.StatusBadRequest},
		{"stream unknown battle", http.MethodGet, "/api/battles/6f1c1f5e-2d0a-4c55-9d0c-5a4c8d7e9b10/events", nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}
