package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRepository struct {
	db *gorm.DB
}

// NewRepository wraps an open database. The same implementation serves
// SQLite and PostgreSQL.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) UpsertSpecies(templates []game.PokemonTemplate) error {
	rows := make([]game.SpeciesRecord, 0, len(templates))
	for _, t := range templates {
		rec, err := speciesRecord(t)
		if err != nil {
			return err
		}
		rows = append(rows, rec)
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"species_id", "types", "hp", "attack", "defense", "sp_attack", "sp_defense", "speed", "learnset_json", "updated_at"}),
	}).Create(&rows).Error
}

func (r *gormRepository) GetSpeciesByName(name string) (*game.PokemonTemplate, error) {
	var rec game.SpeciesRecord
	if err := r.db.Where("name = ?", keys.NameKey(name)).First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	t, err := speciesTemplate(rec)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *gormRepository) ListSpecies() ([]game.PokemonTemplate, error) {
	var recs []game.SpeciesRecord
	if err := r.db.Order("species_id ASC").Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]game.PokemonTemplate, 0, len(recs))
	for _, rec := range recs {
		t, err := speciesTemplate(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *gormRepository) CreateBattle(b *game.BattleRecord) error {
	return r.db.Create(b).Error
}

func (r *gormRepository) GetBattleByID(id string) (*game.BattleRecord, error) {
	var b game.BattleRecord
	err := r.db.Preload("Rounds", func(db *gorm.DB) *gorm.DB {
		return db.Order("number ASC")
	}).Where("id = ?", id).First(&b).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *gormRepository) UpdateBattle(b *game.BattleRecord) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(b).Error
}

func (r *gormRepository) FindTimedOutBattles(now time.Time) ([]game.BattleRecord, error) {
	var out []game.BattleRecord
	err := r.db.Where("status = ? AND phase = ? AND action_deadline <= ?", game.BattleInProgress, game.PhasePlanning, now).
		Order("action_deadline ASC").
		Find(&out).Error
	return out, err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func speciesRecord(t game.PokemonTemplate) (game.SpeciesRecord, error) {
	types := make([]string, len(t.Types))
	for i, ty := range t.Types {
		types[i] = string(ty)
	}
	learnset, err := json.Marshal(t.Learnset)
	if err != nil {
		return game.SpeciesRecord{}, fmt.Errorf("encode learnset of %s: %w", t.Name, err)
	}
	return game.SpeciesRecord{
		SpeciesID:    t.ID,
		Name:         keys.NameKey(t.Name),
		Types:        strings.Join(types, ","),
		HP:           t.BaseStats.HP,
		Attack:       t.BaseStats.Attack,
		Defense:      t.BaseStats.Defense,
		SpAttack:     t.BaseStats.SpecialAttack,
		SpDefense:    t.BaseStats.SpecialDefense,
		Speed:        t.BaseStats.Speed,
		LearnsetJSON: string(learnset),
	}, nil
}

func speciesTemplate(rec game.SpeciesRecord) (game.PokemonTemplate, error) {
	t := game.PokemonTemplate{
		ID:   rec.SpeciesID,
		Name: rec.Name,
		BaseStats: game.BaseStats{
			HP:             rec.HP,
			Attack:         rec.Attack,
			Defense:        rec.Defense,
			SpecialAttack:  rec.SpAttack,
			SpecialDefense: rec.SpDefense,
			Speed:          rec.Speed,
		},
	}
	for _, s := range strings.Split(rec.Types, ",") {
		if s != "" {
			t.Types = append(t.Types, game.ParseType(s))
		}
	}
	if rec.LearnsetJSON != "" {
		if err := json.Unmarshal([]byte(rec.LearnsetJSON), &t.Learnset); err != nil {
			return game.PokemonTemplate{}, fmt.Errorf("decode learnset of %s: %w", rec.Name, err)
		}
	}
	return t, nil
}
