package engine

import (
	"strings"

	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
)

// --- Round context and helpers ----------------------------------------
type roundContext struct {
	b       *Battle
	round   int
	events  []BattleEvent
	fainted map[game.Side]bool
}

func newRoundContext(b *Battle) *roundContext {
	return &roundContext{
		b:       b,
		round:   b.round + 1,
		events:  make([]BattleEvent, 0, 16),
		fainted: make(map[game.Side]bool, 2),
	}
}

func (rc *roundContext) add(code EventCode, msg string) {
	rc.events = append(rc.events, BattleEvent{Round: rc.round, Code: code, Message: msg})
}

func (rc *roundContext) addAll(evs []BattleEvent) {
	for _, e := range evs {
		rc.add(e.Code, e.Message)
	}
}

func (rc *roundContext) combatant(s game.Side) *game.Combatant {
	if s == game.SideB {
		return &rc.b.b
	}
	return &rc.b.a
}

// joinSummary returns the round's log as a single string.
func (rc *roundContext) joinSummary() string {
	return strings.Join(Messages(rc.events), "\n")
}

func displayMove(m game.Move) string { return keys.DisplayName(m.Name) }
