package api

import (
	"context"
	"time"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/logging"
	"github.com/ericogr/pokebattle/internal/service"
)

// ResolveTimeouts handles every battle whose action deadline passed by now
// and pushes the result to stream subscribers, just like a round resolved
// over HTTP. It returns the number of battles that changed.
func (h *BattleHandler) ResolveTimeouts(ctx context.Context, now time.Time) int {
	battles, err := h.repo.FindTimedOutBattles(now)
	if err != nil {
		logging.Error("timeout scan failed", err, nil)
		return 0
	}
	changed := 0
	// process sequentially (keeps the DB safe under SQLite)
	for _, b := range battles {
		v, err := service.HandleTimedOutBattle(ctx, h.repo, h.set, b.ID, now)
		if err != nil {
			logging.Error("failed to resolve timed-out battle", err, logging.Fields{constants.LogFieldBattleID: b.ID})
			continue
		}
		if v == nil {
			continue
		}
		changed++
		h.publish(v)
	}
	return changed
}
