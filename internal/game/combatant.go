package game

import (
	"errors"
	"fmt"

	"github.com/ericogr/pokebattle/internal/keys"
)

// MaxMoves is the largest moveset a combatant may carry.
const MaxMoves = 4

var (
	ErrInvalidLevel  = errors.New("level must be positive")
	ErrInvalidTypes  = errors.New("a combatant must have one or two types")
	ErrZeroMaxHP     = errors.New("max HP must be positive")
	ErrEmptyMoveset  = errors.New("moveset is empty")
	ErrTooManyMoves  = errors.New("moveset holds more than four moves")
	ErrDuplicateMove = errors.New("moveset contains a duplicate move")
)

// Combatant is the battle state of one participant. It is a value type:
// every mutator returns a new Combatant and leaves the receiver untouched.
// HP is only reachable through Damage, Heal and Restore, which clamp.
type Combatant struct {
	SpeciesID int
	Name      string
	Types     []Type
	Level     int
	Stats     Stats
	Stages    StatStages
	Status    Status
	Volatile  Volatile
	Moves     []MoveSlot

	hp    int
	maxHP int
}

// NewCombatant projects stats from the template and equips moves with
// full PP. Invalid templates are rejected here so a battle never starts
// with a broken participant.
func NewCombatant(t PokemonTemplate, moves []Move) (Combatant, error) {
	if t.Level <= 0 {
		return Combatant{}, fmt.Errorf("%s: %w", t.Name, ErrInvalidLevel)
	}
	if len(t.Types) < 1 || len(t.Types) > 2 {
		return Combatant{}, fmt.Errorf("%s: %w", t.Name, ErrInvalidTypes)
	}
	slots := make([]MoveSlot, 0, len(moves))
	for _, m := range moves {
		slots = append(slots, MoveSlot{Move: m, PP: m.PP})
	}
	maxHP := ProjectHP(t.BaseStats.HP, t.Level)
	c := Combatant{
		SpeciesID: t.ID,
		Name:      keys.DisplayName(t.Name),
		Types:     append([]Type(nil), t.Types...),
		Level:     t.Level,
		Stats:     ProjectStats(t.BaseStats, t.Level),
		Moves:     slots,
		hp:        maxHP,
		maxHP:     maxHP,
	}
	if err := c.Validate(); err != nil {
		return Combatant{}, err
	}
	return c, nil
}

// Validate checks the construction-time invariants.
func (c Combatant) Validate() error {
	if c.Level <= 0 {
		return fmt.Errorf("%s: %w", c.Name, ErrInvalidLevel)
	}
	if c.maxHP <= 0 {
		return fmt.Errorf("%s: %w", c.Name, ErrZeroMaxHP)
	}
	if len(c.Moves) == 0 {
		return fmt.Errorf("%s: %w", c.Name, ErrEmptyMoveset)
	}
	if len(c.Moves) > MaxMoves {
		return fmt.Errorf("%s: %w", c.Name, ErrTooManyMoves)
	}
	seen := make(map[string]struct{}, len(c.Moves))
	for _, s := range c.Moves {
		k := keys.NameKey(s.Move.Name)
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%s: %w: %s", c.Name, ErrDuplicateMove, s.Move.Name)
		}
		seen[k] = struct{}{}
	}
	return nil
}

func (c Combatant) HP() int          { return c.hp }
func (c Combatant) MaxHP() int       { return c.maxHP }
func (c Combatant) Fainted() bool    { return c.hp <= 0 }
func (c Combatant) Stage(s Stat) int { return c.Stages[s] }

// Clone returns a copy that shares no slices with c.
func (c Combatant) Clone() Combatant {
	out := c
	out.Types = append([]Type(nil), c.Types...)
	out.Moves = append([]MoveSlot(nil), c.Moves...)
	return out
}

// HasType reports whether t is one of the combatant's types.
func (c Combatant) HasType(t Type) bool {
	for _, x := range c.Types {
		if x == t {
			return true
		}
	}
	return false
}

// Damage subtracts n HP (negative n counts as 0), never going below 0.
// It returns the new value and the HP actually lost.
func (c Combatant) Damage(n int) (Combatant, int) {
	if n < 0 {
		n = 0
	}
	if n > c.hp {
		n = c.hp
	}
	c.hp -= n
	return c, n
}

// Heal adds n HP up to max HP. It returns the new value and the HP
// actually restored.
func (c Combatant) Heal(n int) (Combatant, int) {
	if n < 0 || c.Fainted() {
		return c, 0
	}
	if c.hp+n > c.maxHP {
		n = c.maxHP - c.hp
	}
	c.hp += n
	return c, n
}

// Restore rebuilds a combatant from persisted values, clamping hp to
// [0, maxHP].
func (c Combatant) Restore(hp, maxHP int) Combatant {
	c.maxHP = maxHP
	if hp < 0 {
		hp = 0
	}
	if hp > maxHP {
		hp = maxHP
	}
	c.hp = hp
	return c
}

// WithStage changes a stage by delta, clamped to [MinStage, MaxStage].
// It returns the new value and the change that actually happened.
func (c Combatant) WithStage(s Stat, delta int) (Combatant, int) {
	if s < 0 || s >= numStats {
		return c, 0
	}
	before := c.Stages[s]
	c.Stages[s] = ClampStage(before + delta)
	return c, c.Stages[s] - before
}

// EffectiveStat is the stage-adjusted value of one of the five stats.
func (c Combatant) EffectiveStat(s Stat) int {
	var raw int
	switch s {
	case StatAttack:
		raw = c.Stats.Attack
	case StatDefense:
		raw = c.Stats.Defense
	case StatSpecialAttack:
		raw = c.Stats.SpecialAttack
	case StatSpecialDefense:
		raw = c.Stats.SpecialDefense
	case StatSpeed:
		raw = c.Stats.Speed
	default:
		return 0
	}
	return StageAdjusted(raw, c.Stages[s])
}

// HasPP reports whether any move still has PP left.
func (c Combatant) HasPP() bool {
	for _, s := range c.Moves {
		if s.PP > 0 {
			return true
		}
	}
	return false
}

// UsePP spends one PP of the move at idx. The bool is false (and the
// combatant unchanged) when idx is out of range or the slot is empty.
func (c Combatant) UsePP(idx int) (Combatant, bool) {
	if idx < 0 || idx >= len(c.Moves) || c.Moves[idx].PP <= 0 {
		return c, false
	}
	out := c.Clone()
	out.Moves[idx].PP--
	return out, true
}

// Snapshot is the JSON view of a combatant used by the API and storage.
type Snapshot struct {
	Name     string     `json:"name"`
	Types    []Type     `json:"types"`
	Level    int        `json:"level"`
	HP       int        `json:"hp"`
	MaxHP    int        `json:"max_hp"`
	Stats    Stats      `json:"stats"`
	Stages   StatStages `json:"stages"`
	Status   Status     `json:"status"`
	Volatile Volatile   `json:"volatile"`
	Moves    []MoveSlot `json:"moves"`
}

// Snapshot returns a read-only view for callers outside the engine.
func (c Combatant) Snapshot() Snapshot {
	cc := c.Clone()
	return Snapshot{
		Name:     cc.Name,
		Types:    cc.Types,
		Level:    cc.Level,
		HP:       cc.hp,
		MaxHP:    cc.maxHP,
		Stats:    cc.Stats,
		Stages:   cc.Stages,
		Status:   cc.Status,
		Volatile: cc.Volatile,
		Moves:    cc.Moves,
	}
}
