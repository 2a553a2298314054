// Package moveset picks the four moves a combatant carries into battle
// from its learnset.
package moveset

import (
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
)

// Constraints bound the shape of a selected moveset.
type Constraints struct {
	MaxMoves       int                `json:"max_moves"`
	MinDamageMoves int                `json:"min_damage_moves"`
	MaxStatusMoves int                `json:"max_status_moves"`
	PrioritizeSTAB bool               `json:"prioritize_stab"`
	AllowedMethods []game.LearnMethod `json:"allowed_methods"`
}

// DefaultConstraints allows level-up, machine and tutor moves.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxMoves:       game.MaxMoves,
		MinDamageMoves: 2,
		MaxStatusMoves: 2,
		PrioritizeSTAB: true,
		AllowedMethods: []game.LearnMethod{game.LearnLevelUp, game.LearnMachine, game.LearnTutor},
	}
}

func (c Constraints) normalized() Constraints {
	if c.MaxMoves <= 0 || c.MaxMoves > game.MaxMoves {
		c.MaxMoves = game.MaxMoves
	}
	if c.MinDamageMoves < 0 {
		c.MinDamageMoves = 0
	}
	if c.MaxStatusMoves < 0 {
		c.MaxStatusMoves = 0
	}
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = DefaultConstraints().AllowedMethods
	}
	return c
}

func (c Constraints) allows(m game.LearnMethod) bool {
	for _, a := range c.AllowedMethods {
		if a == m {
			return true
		}
	}
	return false
}

// statusPriority is tried in order before any other status move.
var statusPriority = []string{"protect", "toxic", "thunder-wave", "will-o-wisp", "recover", "rest", "swords-dance"}

// Catalog resolves move names and supplies the per-type fallback sets.
// ruleset.Ruleset satisfies it.
type Catalog interface {
	Move(name string) (game.Move, bool)
	Fallback(primary game.Type) []game.Move
}

// RNG is the slice of engine.RNG the selector needs.
type RNG interface {
	Intn(n int) int
}

// Selection is the chosen moveset. UsedFallback is set when the learnset
// offered nothing usable and the built-in set for the primary type was
// returned instead.
type Selection struct {
	Moves        []game.Move
	UsedFallback bool
}

// Names returns the canonical names of the selected moves in slot order.
func (s Selection) Names() []string {
	out := make([]string, len(s.Moves))
	for i, m := range s.Moves {
		out[i] = keys.NameKey(m.Name)
	}
	return out
}

type picker struct {
	tpl     game.PokemonTemplate
	c       Constraints
	rng     RNG
	pool    []game.Move
	chosen  []game.Move
	damage  int
	status  int
	usedTyp map[game.Type]bool
}

// Select assembles up to MaxMoves moves for tpl at tpl.Level. Candidates
// keep learnset order so a seeded RNG always yields the same moveset.
func Select(tpl game.PokemonTemplate, c Constraints, cat Catalog, rng RNG) Selection {
	c = c.normalized()
	p := &picker{tpl: tpl, c: c, rng: rng, usedTyp: map[game.Type]bool{}}
	p.pool = candidates(tpl, c, cat)
	if len(p.pool) == 0 {
		return fallback(tpl, c, cat)
	}

	if c.PrioritizeSTAB {
		for i := 0; i < 2; i++ {
			if !p.pickRandom(func(m game.Move) bool { return !m.IsStatus() && p.isSTAB(m) }) {
				break
			}
		}
	}
	for p.damage < c.MinDamageMoves {
		if !p.pickRandom(func(m game.Move) bool { return !m.IsStatus() }) {
			break
		}
	}
	for i := 0; i < 2; i++ {
		coverage := func(m game.Move) bool { return !m.IsStatus() && !p.isSTAB(m) }
		fresh := func(m game.Move) bool { return coverage(m) && !p.usedTyp[m.Type] }
		if !p.pickRandom(fresh) && !p.pickRandom(coverage) {
			break
		}
	}
	for _, name := range statusPriority {
		if p.status >= c.MaxStatusMoves {
			break
		}
		p.pickFirst(func(m game.Move) bool { return m.IsStatus() && keys.NameKey(m.Name) == name })
	}
	for p.status < c.MaxStatusMoves {
		if !p.pickRandom(func(m game.Move) bool { return m.IsStatus() }) {
			break
		}
	}
	for {
		if !p.pickRandom(func(m game.Move) bool { return !m.IsStatus() || p.status < c.MaxStatusMoves }) {
			break
		}
	}
	return Selection{Moves: p.chosen}
}

// candidates applies the learn-method and level filters and resolves each
// surviving name, dropping unknown and repeated moves.
func candidates(tpl game.PokemonTemplate, c Constraints, cat Catalog) []game.Move {
	if cat == nil {
		return nil
	}
	seen := make(map[string]bool, len(tpl.Learnset))
	out := make([]game.Move, 0, len(tpl.Learnset))
	for _, e := range tpl.Learnset {
		if !c.allows(e.LearnMethod) {
			continue
		}
		if e.LearnMethod == game.LearnLevelUp && e.LevelLearned > tpl.Level {
			continue
		}
		k := keys.NameKey(e.MoveName)
		if k == "" || seen[k] {
			continue
		}
		m, ok := cat.Move(k)
		if !ok {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}

func fallback(tpl game.PokemonTemplate, c Constraints, cat Catalog) Selection {
	var moves []game.Move
	if cat != nil {
		moves = cat.Fallback(tpl.PrimaryType())
	}
	if len(moves) > c.MaxMoves {
		moves = moves[:c.MaxMoves]
	}
	return Selection{Moves: moves, UsedFallback: true}
}

func (p *picker) full() bool { return len(p.chosen) >= p.c.MaxMoves }

func (p *picker) isSTAB(m game.Move) bool {
	for _, t := range p.tpl.Types {
		if t == m.Type {
			return true
		}
	}
	return false
}

func (p *picker) matching(ok func(game.Move) bool) []int {
	var idx []int
	for i, m := range p.pool {
		if ok(m) {
			idx = append(idx, i)
		}
	}
	return idx
}

// pickRandom moves one random matching candidate into the selection.
func (p *picker) pickRandom(ok func(game.Move) bool) bool {
	if p.full() {
		return false
	}
	idx := p.matching(ok)
	if len(idx) == 0 {
		return false
	}
	p.take(idx[p.rng.Intn(len(idx))])
	return true
}

func (p *picker) pickFirst(ok func(game.Move) bool) bool {
	if p.full() {
		return false
	}
	idx := p.matching(ok)
	if len(idx) == 0 {
		return false
	}
	p.take(idx[0])
	return true
}

func (p *picker) take(i int) {
	m := p.pool[i]
	p.pool = append(p.pool[:i], p.pool[i+1:]...)
	p.chosen = append(p.chosen, m)
	if m.IsStatus() {
		p.status++
		return
	}
	p.damage++
	p.usedTyp[m.Type] = true
}
