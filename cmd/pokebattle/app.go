package main

import (
	"os"

	"github.com/ericogr/pokebattle/internal/config"
	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/logging"
	"github.com/ericogr/pokebattle/internal/ruleset"
	"github.com/ericogr/pokebattle/internal/service"
	"github.com/ericogr/pokebattle/internal/storage"
)

// loadConfigOrExit reads the config file. A missing file falls back to
// the defaults so a fresh checkout starts without any setup.
func loadConfigOrExit(path string) *config.LoadedConfig {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Warn("config file not found; using defaults", logging.Fields{"config_path": path})
		cfg := config.Default()
		if err := cfg.Validate(); err != nil {
			logging.Fatal("invalid default configuration", err, nil)
		}
		return cfg
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid pokebattle configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

// loadRulesetOrExit returns the built-in ruleset, layered with the
// configured data pack when there is one.
func loadRulesetOrExit(cfg *config.LoadedConfig) *ruleset.Data {
	if cfg.DataPackPath == "" {
		return ruleset.Default()
	}
	data, err := ruleset.LoadFile(cfg.DataPackPath)
	if err != nil {
		logging.Fatal("Failed to load data pack", err, logging.Fields{constants.LogFieldSource: cfg.DataPackPath})
	}
	logging.Info("data pack loaded", logging.Fields{constants.LogFieldSource: cfg.DataPackPath, constants.LogFieldCount: data.MoveCount()})
	return data
}

func createRepositoryOrExit(cfg *config.LoadedConfig, data *ruleset.Data) storage.Repository {
	db, err := storage.OpenAndMigrate(cfg.DBDriver, cfg.DBDSN, data.AllSpecies())
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldDriver: cfg.DBDriver})
	}
	return storage.NewRepository(db)
}

func settings(cfg *config.LoadedConfig, data *ruleset.Data) service.Settings {
	return service.Settings{
		Ruleset:       data,
		Moveset:       cfg.Moveset,
		DefaultLevel:  cfg.DefaultLevel,
		MaxRounds:     cfg.MaxRounds,
		ActionTimeout: cfg.ActionTimeout,
		Roster:        cfg.Roster,
	}
}
