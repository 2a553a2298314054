// Command battlesim plays a single seeded battle in the terminal without a
// database or server. The same flags always print the same battle.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/engine"
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/logging"
	"github.com/ericogr/pokebattle/internal/moveset"
	"github.com/ericogr/pokebattle/internal/ruleset"
	"github.com/ericogr/pokebattle/internal/version"
)

type options struct {
	speciesA, speciesB string
	levelA, levelB     int
	seed               int64
	maxRounds          int
	policy             string
	dataPack           string
	jsonOut            bool
}

func main() {
	var opts options
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.StringVar(&opts.speciesA, "a", "charizard", "species for side a")
	flag.StringVar(&opts.speciesB, "b", "blastoise", "species for side b")
	flag.IntVar(&opts.levelA, "level-a", 50, "level for side a")
	flag.IntVar(&opts.levelB, "level-b", 50, "level for side b")
	flag.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "battle seed")
	flag.IntVar(&opts.maxRounds, "rounds", 200, "round cap (0 disables it)")
	flag.StringVar(&opts.policy, "policy", "random", "move choice for both sides: random or first")
	flag.StringVar(&opts.dataPack, "data", "", "optional YAML or JSON data pack")
	flag.BoolVar(&opts.jsonOut, "json", false, "print the outcome as JSON")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if err := run(context.Background(), opts); err != nil {
		logging.Error("simulation failed", err, nil)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	data := ruleset.Default()
	if opts.dataPack != "" {
		var err error
		if data, err = ruleset.LoadFile(opts.dataPack); err != nil {
			return err
		}
	}
	a, err := combatant(data, opts.speciesA, opts.levelA, opts.seed+1)
	if err != nil {
		return err
	}
	b, err := combatant(data, opts.speciesB, opts.levelB, opts.seed+2)
	if err != nil {
		return err
	}
	battle, err := engine.NewBattle(a, b, data, engine.NewSeededRNG(opts.seed), engine.Options{MaxRounds: opts.maxRounds})
	if err != nil {
		return err
	}

	choose, err := chooser(opts.policy, engine.NewSeededRNG(opts.seed+3))
	if err != nil {
		return err
	}
	if !opts.jsonOut {
		fmt.Printf("seed %d: %s (%s) vs %s (%s)\n", opts.seed, a.Name, moveList(a), b.Name, moveList(b))
	}
	for !battle.Ended() {
		events, err := battle.PlayRound(ctx, choose(battle.Combatant(game.SideA)), choose(battle.Combatant(game.SideB)))
		if err != nil {
			return err
		}
		if opts.jsonOut {
			continue
		}
		for _, ev := range events {
			fmt.Printf("[%3d] %s\n", ev.Round, ev.Message)
		}
	}

	out, _ := battle.Outcome()
	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	winner := "nobody"
	if out.Winner != game.SideNone {
		winner = battle.Combatant(out.Winner).Name
	}
	fmt.Printf("winner: %s after %d rounds (HP %d / %d)\n", winner, out.Rounds, out.FinalHP.A, out.FinalHP.B)
	return nil
}

func combatant(data *ruleset.Data, name string, level int, seed int64) (game.Combatant, error) {
	tpl, ok := data.Species(name)
	if !ok {
		return game.Combatant{}, fmt.Errorf("unknown species %q", name)
	}
	if level < 1 || level > 100 {
		return game.Combatant{}, fmt.Errorf("%s: level %d out of range", name, level)
	}
	// level gates which level-up moves are learnable
	tpl.Level = level
	sel := moveset.Select(tpl, moveset.DefaultConstraints(), data, engine.NewSeededRNG(seed))
	if sel.UsedFallback {
		logging.Warn("no learnable moves matched; using fallback moveset", logging.Fields{constants.LogFieldSpecies: name})
	}
	return game.NewCombatant(tpl, sel.Moves)
}

// chooser returns the move picker for a policy. -1 asks for Struggle.
func chooser(policy string, rng engine.RNG) (func(game.Combatant) int, error) {
	switch policy {
	case "first":
		return func(c game.Combatant) int {
			for i, s := range c.Moves {
				if s.PP > 0 {
					return i
				}
			}
			return -1
		}, nil
	case "random":
		return func(c game.Combatant) int {
			usable := make([]int, 0, len(c.Moves))
			for i, s := range c.Moves {
				if s.PP > 0 {
					usable = append(usable, i)
				}
			}
			if len(usable) == 0 {
				return -1
			}
			return usable[rng.Intn(len(usable))]
		}, nil
	}
	return nil, fmt.Errorf("unknown policy %q", policy)
}

func moveList(c game.Combatant) string {
	s := ""
	for i, slot := range c.Moves {
		if i > 0 {
			s += ", "
		}
		s += slot.Move.Name
	}
	return s
}
