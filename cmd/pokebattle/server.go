package main

import (
	"context"
	"time"

	"github.com/ericogr/pokebattle/internal/api"
)

// startTimeoutScanner periodically resolves battles whose action deadline
// has passed until ctx is cancelled.
func startTimeoutScanner(ctx context.Context, h *api.BattleHandler, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				h.ResolveTimeouts(ctx, now)
			}
		}
	}()
}
