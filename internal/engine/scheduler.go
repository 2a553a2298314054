package engine

import "github.com/ericogr/pokebattle/internal/game"

// Action is one side's choice for the round, resolved to a concrete move.
type Action struct {
	Side      game.Side
	MoveIndex int
	Move      game.Move
	// Speed is the user's stage-adjusted speed when the round starts.
	Speed int
}

// Order sorts actions by priority, then effective speed, both descending.
// Exact ties are settled by a coin flip from rng for each compared pair,
// never by the order the actions arrived in.
func Order(actions []Action, rng RNG) []Action {
	out := append([]Action(nil), actions...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && goesFirst(out[j], out[j-1], rng); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func goesFirst(x, y Action, rng RNG) bool {
	if x.Move.Priority != y.Move.Priority {
		return x.Move.Priority > y.Move.Priority
	}
	if x.Speed != y.Speed {
		return x.Speed > y.Speed
	}
	return rng.Intn(2) == 0
}

func effectiveSpeed(c game.Combatant) int {
	return c.EffectiveStat(game.StatSpeed)
}
