package api

import (
	"github.com/ericogr/pokebattle/internal/service"
	"github.com/ericogr/pokebattle/internal/storage"
	"github.com/ericogr/pokebattle/internal/stream"
)

// BattleHandler groups all battle-related HTTP handlers.
type BattleHandler struct {
	repo storage.Repository
	set  service.Settings
	hub  *stream.Hub
}

// NewBattleHandler creates a handler backed by repo. hub may be nil when
// no event stream is served.
func NewBattleHandler(repo storage.Repository, set service.Settings, hub *stream.Hub) *BattleHandler {
	return &BattleHandler{repo: repo, set: set, hub: hub}
}
