package game

// DamageClass decides which attack/defense pair a move uses.
type DamageClass string

const (
	ClassPhysical DamageClass = "physical"
	ClassSpecial  DamageClass = "special"
	ClassStatus   DamageClass = "status"
)

// TargetScope names who a move is aimed at.
type TargetScope string

const (
	TargetOpponent     TargetScope = "opponent"
	TargetSelf         TargetScope = "self"
	TargetAllOpponents TargetScope = "all-opponents"
	TargetAllAllies    TargetScope = "all-allies"
	TargetAll          TargetScope = "all"
)

// Move is an immutable move template. Move data packs decode straight into
// it; the mutable PP counter lives on MoveSlot.
type Move struct {
	Name        string      `json:"name" yaml:"name"`
	Type        Type        `json:"type" yaml:"type"`
	BasePower   int         `json:"base_power" yaml:"base_power"`
	Accuracy    int         `json:"accuracy" yaml:"accuracy"`
	PP          int         `json:"pp" yaml:"pp"`
	DamageClass DamageClass `json:"damage_class" yaml:"damage_class"`
	Priority    int         `json:"priority" yaml:"priority"`
	// EffectTag selects the secondary effect (see engine.ApplyEffect).
	EffectTag string `json:"effect_tag,omitempty" yaml:"effect_tag,omitempty"`
	// EffectChance is the percent chance of the secondary effect on a
	// damaging move. 0 means the effect always applies.
	EffectChance int         `json:"effect_chance,omitempty" yaml:"effect_chance,omitempty"`
	Target       TargetScope `json:"target" yaml:"target"`
	Description  string      `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsStatus reports whether the move deals no direct damage.
func (m Move) IsStatus() bool { return m.BasePower == 0 }

// TargetsOpponent reports whether the move is aimed at the other side.
func (m Move) TargetsOpponent() bool {
	switch m.Target {
	case TargetOpponent, TargetAllOpponents, TargetAll, "":
		return true
	}
	return false
}

// MoveSlot is a move held by a combatant together with its remaining PP.
type MoveSlot struct {
	Move Move `json:"move"`
	PP   int  `json:"pp"`
}

// StatusKind is the single persistent status condition.
type StatusKind string

const (
	StatusNone      StatusKind = ""
	StatusBurn      StatusKind = "burn"
	StatusPoison    StatusKind = "poison"
	StatusBadPoison StatusKind = "bad_poison"
	StatusParalysis StatusKind = "paralysis"
	StatusSleep     StatusKind = "sleep"
	StatusFreeze    StatusKind = "freeze"
)

// Status is the persistent status plus its counter. Counter is the
// escalation step for BadPoison and the turns remaining for Sleep.
type Status struct {
	Kind    StatusKind `json:"kind"`
	Counter int        `json:"counter,omitempty"`
}

// Volatile holds the round-scoped conditions.
type Volatile struct {
	ConfusedTurns int  `json:"confused_turns,omitempty"`
	Protected     bool `json:"protected,omitempty"`
	Flinched      bool `json:"flinched,omitempty"`
}

// IsZero reports whether no volatile condition is active.
func (v Volatile) IsZero() bool {
	return v.ConfusedTurns == 0 && !v.Protected && !v.Flinched
}

// Confused reports whether a confusion counter is running.
func (v Volatile) Confused() bool { return v.ConfusedTurns > 0 }

// LearnMethod is how a move enters a learnset.
type LearnMethod string

const (
	LearnLevelUp LearnMethod = "level-up"
	LearnMachine LearnMethod = "machine"
	LearnTutor   LearnMethod = "tutor"
	LearnEgg     LearnMethod = "egg"
)

// LearnsetEntry is one learnable move of a species.
type LearnsetEntry struct {
	MoveName     string      `json:"move_name" yaml:"move_name"`
	LearnMethod  LearnMethod `json:"learn_method" yaml:"learn_method"`
	LevelLearned int         `json:"level_learned" yaml:"level_learned"`
}

// PokemonTemplate is the external record a combatant is created from.
type PokemonTemplate struct {
	ID        int             `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	Types     []Type          `json:"types" yaml:"types"`
	BaseStats BaseStats       `json:"base_stats" yaml:"base_stats"`
	Learnset  []LearnsetEntry `json:"learnset" yaml:"learnset"`
	Level     int             `json:"level" yaml:"level"`
}

// PrimaryType returns the first listed type.
func (t PokemonTemplate) PrimaryType() Type {
	if len(t.Types) == 0 {
		return TypeUnknown
	}
	return t.Types[0]
}

// Side identifies one of the two battle participants.
type Side string

const (
	SideNone Side = ""
	SideA    Side = "a"
	SideB    Side = "b"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	}
	return SideNone
}
