package storage

import (
	"fmt"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/logging"

	// database/sql driver used by gorm's postgres dialector below.
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm dialector for a configured driver name.
// PostgreSQL connections go through lib/pq instead of pgx.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case constants.DriverSQLite, "":
		return sqlite.Open(dsn), nil
	case constants.DriverPostgres:
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: dsn}), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// OpenAndMigrate connects, migrates the schema and seeds the species table
// from the loaded ruleset so every species can be looked up by name.
func OpenAndMigrate(driver, dsn string, species []game.PokemonTemplate) (*gorm.DB, error) {
	d, err := Dialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(d, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := seedSpecies(db, species); err != nil {
		return nil, err
	}
	logging.Info("database ready", logging.Fields{constants.LogFieldDriver: driver, constants.LogFieldCount: len(species)})
	return db, nil
}

// Migrate keeps the schema up to date.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&game.SpeciesRecord{}, &game.BattleRecord{}, &game.RoundRecord{})
}

// seedSpecies upserts every configured template. The ruleset is the
// source of truth, so stats in the table are refreshed on each start.
func seedSpecies(db *gorm.DB, species []game.PokemonTemplate) error {
	if len(species) == 0 {
		return nil
	}
	repo := &gormRepository{db: db}
	return repo.UpsertSpecies(species)
}
