package service

import (
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
)

// SpeciesLister lists stored species templates.
type SpeciesLister interface {
	ListSpecies() ([]game.PokemonTemplate, error)
}

// ListSpecies returns the stored species, restricted to the roster when one
// is configured.
func ListSpecies(repo SpeciesLister, roster []string) ([]game.PokemonTemplate, error) {
	all, err := repo.ListSpecies()
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return all, nil
	}
	allowed := make(map[string]bool, len(roster))
	for _, n := range roster {
		allowed[keys.NameKey(n)] = true
	}
	out := make([]game.PokemonTemplate, 0, len(roster))
	for _, t := range all {
		if allowed[keys.NameKey(t.Name)] {
			out = append(out, t)
		}
	}
	return out, nil
}
