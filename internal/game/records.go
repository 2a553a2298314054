package game

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

type BattleStatus string

const (
	BattleWaiting    BattleStatus = "waiting"
	BattleInProgress BattleStatus = "in_progress"
	BattleFinished   BattleStatus = "finished"
)

type BattlePhase string

const (
	PhasePlanning  BattlePhase = "planning"
	PhaseResolving BattlePhase = "resolving"
	PhaseResolved  BattlePhase = "resolved"
)

// SpeciesRecord is the persisted copy of a species template. Types and
// learnset are kept as JSON text so the table stays flat.
type SpeciesRecord struct {
	gorm.Model
	SpeciesID    int    `json:"species_id" gorm:"index"`
	Name         string `json:"name" gorm:"uniqueIndex"`
	Types        string `json:"types"`
	HP           int    `json:"hp"`
	Attack       int    `json:"attack"`
	Defense      int    `json:"defense"`
	SpAttack     int    `json:"special_attack"`
	SpDefense    int    `json:"special_defense"`
	Speed        int    `json:"speed"`
	LearnsetJSON string `json:"-" gorm:"type:text"`
}

func (SpeciesRecord) TableName() string { return "species" }

// BattleRecord is everything needed to rebuild a battle: the participants,
// the chosen movesets, the RNG seed and every played round. The live state
// is recomputed by replaying Rounds, so HP and status are cached here only
// for listing and display.
type BattleRecord struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	SpeciesA string `json:"species_a"`
	SpeciesB string `json:"species_b"`
	LevelA   int    `json:"level_a"`
	LevelB   int    `json:"level_b"`
	// MovesA/MovesB hold the selected moveset as canonical names joined by commas.
	MovesA string `json:"moves_a"`
	MovesB string `json:"moves_b"`
	Seed   int64  `json:"seed"`

	// The round cap and each side's species stats and move definitions as
	// of the start. Later data pack or config changes leave the battle alone.
	MaxRounds int    `json:"max_rounds"`
	SetupA    string `json:"-" gorm:"type:text"`
	SetupB    string `json:"-" gorm:"type:text"`

	Status BattleStatus `json:"status" gorm:"index"`
	Phase  BattlePhase  `json:"phase"` // planning | resolving | resolved
	Round  int          `json:"round"`
	Winner Side         `json:"winner"`

	PendingA       *int      `json:"-"`
	PendingB       *int      `json:"-"`
	ActionDeadline time.Time `json:"action_deadline"`

	Message          string `json:"message"`
	LastRoundSummary string `json:"last_round_summary"`
	EventLog         string `json:"-" gorm:"type:text"`
	FinalHPA         int    `json:"final_hp_a"`
	FinalHPB         int    `json:"final_hp_b"`

	Rounds []RoundRecord `json:"rounds" gorm:"foreignKey:BattleID;constraint:OnDelete:CASCADE;"`
}

func (BattleRecord) TableName() string { return "battles" }

// MoveNames splits a stored moveset back into names.
func (b *BattleRecord) MoveNames(side Side) []string {
	raw := b.MovesA
	if side == SideB {
		raw = b.MovesB
	}
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// Pending returns the move index submitted by side for the current round.
func (b *BattleRecord) Pending(side Side) *int {
	if side == SideB {
		return b.PendingB
	}
	return b.PendingA
}

// SetPending records (or clears, with nil) the submission of side.
func (b *BattleRecord) SetPending(side Side, idx *int) {
	if side == SideB {
		b.PendingB = idx
		return
	}
	b.PendingA = idx
}

// SideSetup is what one side entered the battle with.
type SideSetup struct {
	Template PokemonTemplate `json:"template"`
	Moves    []Move          `json:"moves"`
}

// Setup decodes the frozen setup of side. ok is false for records saved
// before setups were stored.
func (b *BattleRecord) Setup(side Side) (setup SideSetup, ok bool, err error) {
	raw := b.SetupA
	if side == SideB {
		raw = b.SetupB
	}
	if raw == "" {
		return SideSetup{}, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &setup); err != nil {
		return SideSetup{}, false, err
	}
	return setup, true, nil
}

// SetSetup freezes the setup of side. The learnset is dropped; only the
// chosen moves matter once the battle has started.
func (b *BattleRecord) SetSetup(side Side, setup SideSetup) error {
	setup.Template.Learnset = nil
	raw, err := json.Marshal(setup)
	if err != nil {
		return err
	}
	if side == SideB {
		b.SetupB = string(raw)
	} else {
		b.SetupA = string(raw)
	}
	return nil
}

// RoundRecord stores the two move indexes chosen in one round. Index -1
// stands for Struggle.
type RoundRecord struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	BattleID string `json:"-" gorm:"index;size:36"`
	Number   int    `json:"number"`
	MoveA    int    `json:"move_a"`
	MoveB    int    `json:"move_b"`
}

func (RoundRecord) TableName() string { return "battle_rounds" }
