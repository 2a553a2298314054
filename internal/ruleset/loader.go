package ruleset

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
)

type dataPack struct {
	Species []game.PokemonTemplate `yaml:"species"`
	Moves   []game.Move            `yaml:"moves"`
}

// LoadFile reads a YAML data pack and layers it over the built-in data.
// Entries with a name already known replace the built-in definition.
func LoadFile(path string) (*Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data pack %s: %w", path, err)
	}
	d, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("data pack %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a YAML data pack and layers it over the built-in data.
func Parse(b []byte) (*Data, error) {
	var pack dataPack
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	d := Default()

	seen := make(map[string]struct{}, len(pack.Moves))
	for i, m := range pack.Moves {
		m, err := normalizeMove(m)
		if err != nil {
			return nil, fmt.Errorf("moves[%d]: %w", i, err)
		}
		k := keys.NameKey(m.Name)
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("duplicate move name '%s'", m.Name)
		}
		seen[k] = struct{}{}
		d.moves[k] = m
	}

	seen = make(map[string]struct{}, len(pack.Species))
	for i, s := range pack.Species {
		s, err := normalizeSpecies(s)
		if err != nil {
			return nil, fmt.Errorf("species[%d]: %w", i, err)
		}
		k := keys.NameKey(s.Name)
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("duplicate species name '%s'", s.Name)
		}
		seen[k] = struct{}{}
		d.species[k] = s
	}
	return d, nil
}

func normalizeMove(m game.Move) (game.Move, error) {
	m.Name = keys.NameKey(m.Name)
	if m.Name == "" {
		return m, fmt.Errorf("move entry missing 'name'")
	}
	t := game.ParseType(string(m.Type))
	if t == game.TypeUnknown {
		return m, fmt.Errorf("move '%s': unknown type '%s'", m.Name, m.Type)
	}
	m.Type = t
	if m.Accuracy < 0 || m.Accuracy > 100 {
		return m, fmt.Errorf("move '%s': accuracy %d out of [0,100]", m.Name, m.Accuracy)
	}
	if m.PP <= 0 {
		return m, fmt.Errorf("move '%s': pp must be positive", m.Name)
	}
	if m.BasePower < 0 {
		return m, fmt.Errorf("move '%s': base_power must not be negative", m.Name)
	}
	if m.EffectChance < 0 || m.EffectChance > 100 {
		return m, fmt.Errorf("move '%s': effect_chance %d out of [0,100]", m.Name, m.EffectChance)
	}
	switch m.DamageClass {
	case game.ClassPhysical, game.ClassSpecial, game.ClassStatus:
	case "":
		if m.BasePower == 0 {
			m.DamageClass = game.ClassStatus
		} else {
			m.DamageClass = game.ClassPhysical
		}
	default:
		return m, fmt.Errorf("move '%s': unknown damage_class '%s'", m.Name, m.DamageClass)
	}
	switch m.Target {
	case game.TargetOpponent, game.TargetSelf, game.TargetAllOpponents, game.TargetAllAllies, game.TargetAll:
	case "":
		m.Target = game.TargetOpponent
	default:
		return m, fmt.Errorf("move '%s': unknown target '%s'", m.Name, m.Target)
	}
	m.EffectTag = strings.ToLower(strings.TrimSpace(m.EffectTag))
	return m, nil
}

func normalizeSpecies(s game.PokemonTemplate) (game.PokemonTemplate, error) {
	s.Name = keys.NameKey(s.Name)
	if s.Name == "" {
		return s, fmt.Errorf("species entry missing 'name'")
	}
	if len(s.Types) < 1 || len(s.Types) > 2 {
		return s, fmt.Errorf("species '%s': needs one or two types, got %d", s.Name, len(s.Types))
	}
	types := make([]game.Type, 0, len(s.Types))
	for _, t := range s.Types {
		pt := game.ParseType(string(t))
		if pt == game.TypeUnknown {
			return s, fmt.Errorf("species '%s': unknown type '%s'", s.Name, t)
		}
		types = append(types, pt)
	}
	s.Types = types
	if s.BaseStats.HP <= 0 {
		return s, fmt.Errorf("species '%s': base_stats.hp must be positive", s.Name)
	}
	for i := range s.Learnset {
		e := &s.Learnset[i]
		e.MoveName = keys.NameKey(e.MoveName)
		switch e.LearnMethod {
		case game.LearnLevelUp, game.LearnMachine, game.LearnTutor, game.LearnEgg:
		default:
			return s, fmt.Errorf("species '%s': unknown learn_method '%s' for %s", s.Name, e.LearnMethod, e.MoveName)
		}
	}
	return s, nil
}
