package ruleset

import (
	"sort"

	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
)

// Ruleset is the read-only view of the battle data: type matchups, the
// move database, species templates and the per-type fallback movesets.
type Ruleset interface {
	Multiplier(attack game.Type, defend []game.Type) float64
	Move(name string) (game.Move, bool)
	Species(name string) (game.PokemonTemplate, bool)
	AllSpecies() []game.PokemonTemplate
	Fallback(primary game.Type) []game.Move
}

// Data is the in-memory Ruleset. Once built it is never mutated, so a
// single value can be shared by concurrent battles.
type Data struct {
	chart   *TypeChart
	moves   map[string]game.Move
	species map[string]game.PokemonTemplate
}

var _ Ruleset = (*Data)(nil)

// Default returns the built-in ruleset.
func Default() *Data {
	d := &Data{
		chart:   StandardChart(),
		moves:   make(map[string]game.Move, len(builtinMoves)),
		species: make(map[string]game.PokemonTemplate, len(builtinSpecies)),
	}
	for _, m := range builtinMoves {
		d.moves[keys.NameKey(m.Name)] = m
	}
	for _, s := range builtinSpecies {
		d.species[keys.NameKey(s.Name)] = cloneTemplate(s)
	}
	return d
}

func (d *Data) Multiplier(attack game.Type, defend []game.Type) float64 {
	return d.chart.Multiplier(attack, defend)
}

// Move looks a move up by any spelling of its name.
func (d *Data) Move(name string) (game.Move, bool) {
	m, ok := d.moves[keys.NameKey(name)]
	return m, ok
}

// Species looks a template up by any spelling of its name.
func (d *Data) Species(name string) (game.PokemonTemplate, bool) {
	s, ok := d.species[keys.NameKey(name)]
	if !ok {
		return game.PokemonTemplate{}, false
	}
	return cloneTemplate(s), true
}

// AllSpecies returns every template ordered by ID, then name.
func (d *Data) AllSpecies() []game.PokemonTemplate {
	out := make([]game.PokemonTemplate, 0, len(d.species))
	for _, s := range d.species {
		out = append(out, cloneTemplate(s))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// MoveCount is the size of the move database.
func (d *Data) MoveCount() int { return len(d.moves) }

// Fallback returns the built-in moveset for a primary type. A data pack
// may redefine any of these moves; its version wins.
func (d *Data) Fallback(primary game.Type) []game.Move {
	names, ok := fallbackMovesets[primary]
	if !ok {
		names = defaultFallback
	}
	out := make([]game.Move, 0, len(names))
	for _, n := range names {
		if m, ok := d.moves[n]; ok {
			out = append(out, m)
		}
	}
	return out
}

func cloneTemplate(t game.PokemonTemplate) game.PokemonTemplate {
	t.Types = append([]game.Type(nil), t.Types...)
	t.Learnset = append([]game.LearnsetEntry(nil), t.Learnset...)
	return t
}
