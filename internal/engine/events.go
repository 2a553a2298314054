package engine

// EventCode classifies a log line for clients that render it.
type EventCode string

const (
	EventNone             EventCode = ""
	EventMoveUsed         EventCode = "MoveUsed"
	EventHit              EventCode = "Hit"
	EventMiss             EventCode = "Miss"
	EventProtected        EventCode = "Protected"
	EventCritical         EventCode = "Critical"
	EventSuperEffective   EventCode = "SuperEffective"
	EventNotVeryEffective EventCode = "NotVeryEffective"
	EventNoEffect         EventCode = "NoEffect"
	EventDamage           EventCode = "Damage"
	EventStatusInflicted  EventCode = "StatusInflicted"
	EventStatChanged      EventCode = "StatChanged"
	EventHealed           EventCode = "Healed"
	EventCannotAct        EventCode = "CannotAct"
	EventStatusDamage     EventCode = "StatusDamage"
	EventWokeUp           EventCode = "WokeUp"
	EventFainted          EventCode = "Fainted"
	EventBattleEnded      EventCode = "BattleEnded"
	EventWarning          EventCode = "Warning"
)

// BattleEvent is one line of the battle log.
type BattleEvent struct {
	Round   int       `json:"round"`
	Code    EventCode `json:"code,omitempty"`
	Message string    `json:"message"`
}

func event(code EventCode, msg string) BattleEvent {
	return BattleEvent{Code: code, Message: msg}
}

// Messages flattens events into their text.
func Messages(events []BattleEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Message)
	}
	return out
}
