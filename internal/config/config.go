package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/game"
	"github.com/ericogr/pokebattle/internal/keys"
	"github.com/ericogr/pokebattle/internal/moveset"
)

type movesetEntry struct {
	MaxMoves       *int     `json:"max_moves"`
	MinDamageMoves *int     `json:"min_damage_moves"`
	MaxStatusMoves *int     `json:"max_status_moves"`
	PrioritizeSTAB *bool    `json:"prioritize_stab"`
	AllowedMethods []string `json:"allowed_methods"`
}

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Driver string `json:"driver"`
		DSN    string `json:"dsn"`
	} `json:"database"`
	// Optional YAML data pack layered over the built-in species and moves.
	DataPack             string        `json:"data_pack"`
	DefaultLevel         int           `json:"default_level"`
	MaxRounds            int           `json:"max_rounds"`
	ActionTimeoutSeconds int           `json:"action_timeout_seconds"`
	ScanIntervalSeconds  int           `json:"timeout_scan_seconds"`
	Moveset              *movesetEntry `json:"moveset"`
	// Optional allow-list of species offered to clients. Empty means all.
	Roster []string `json:"roster"`
}

// LoadedConfig is the validated server configuration.
type LoadedConfig struct {
	ServerAddress string
	DBDriver      string
	DBDSN         string
	DataPackPath  string
	DefaultLevel  int
	MaxRounds     int
	ActionTimeout time.Duration
	ScanInterval  time.Duration
	Moveset       moveset.Constraints
	Roster        []string
}

// Default returns the configuration used when no file is present.
func Default() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: ":8080",
		DBDriver:      constants.DriverSQLite,
		DBDSN:         "pokebattle.db",
		DefaultLevel:  50,
		MaxRounds:     200,
		ActionTimeout: 60 * time.Second,
		ScanInterval:  5 * time.Second,
		Moveset:       moveset.DefaultConstraints(),
	}
}

// LoadConfig reads the JSON configuration at path, fills unset values from
// Default and applies the POKEBATTLE_DB / POKEBATTLE_DB_DRIVER overrides.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Default()
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Database != nil {
		if rc.Database.Driver != "" {
			cfg.DBDriver = strings.ToLower(strings.TrimSpace(rc.Database.Driver))
		}
		if rc.Database.DSN != "" {
			cfg.DBDSN = rc.Database.DSN
		}
	}
	cfg.DataPackPath = strings.TrimSpace(rc.DataPack)
	if rc.DefaultLevel != 0 {
		cfg.DefaultLevel = rc.DefaultLevel
	}
	if rc.MaxRounds != 0 {
		cfg.MaxRounds = rc.MaxRounds
	}
	if rc.ActionTimeoutSeconds != 0 {
		cfg.ActionTimeout = time.Duration(rc.ActionTimeoutSeconds) * time.Second
	}
	if rc.ScanIntervalSeconds != 0 {
		cfg.ScanInterval = time.Duration(rc.ScanIntervalSeconds) * time.Second
	}
	if rc.Moveset != nil {
		if cfg.Moveset, err = rc.Moveset.constraints(cfg.Moveset); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	// Cross-entry validation: roster names must be unique after
	// canonicalization.
	seen := make(map[string]struct{}, len(rc.Roster))
	for _, n := range rc.Roster {
		k := keys.NameKey(n)
		if k == "" {
			return nil, fmt.Errorf("config file %s: roster entry is empty", path)
		}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("config file %s: duplicate roster species '%s'", path, n)
		}
		seen[k] = struct{}{}
		cfg.Roster = append(cfg.Roster, k)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *LoadedConfig) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(constants.EnvDatabase)); v != "" {
		c.DBDSN = v
	}
	if v := strings.TrimSpace(os.Getenv(constants.EnvDBDriver)); v != "" {
		c.DBDriver = strings.ToLower(v)
	}
}

// Validate checks values that cannot be repaired by a default.
func (c *LoadedConfig) Validate() error {
	switch c.DBDriver {
	case constants.DriverSQLite, constants.DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver '%s'", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("database dsn is empty")
	}
	if c.DefaultLevel < 1 || c.DefaultLevel > 100 {
		return fmt.Errorf("default_level %d out of range 1..100", c.DefaultLevel)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must not be negative")
	}
	if c.ActionTimeout <= 0 {
		return fmt.Errorf("action_timeout_seconds must be positive")
	}
	if c.ScanInterval <= 0 {
		return fmt.Errorf("timeout_scan_seconds must be positive")
	}
	return nil
}

func (m *movesetEntry) constraints(base moveset.Constraints) (moveset.Constraints, error) {
	if m.MaxMoves != nil {
		if *m.MaxMoves < 1 || *m.MaxMoves > game.MaxMoves {
			return base, fmt.Errorf("moveset.max_moves must be between 1 and %d", game.MaxMoves)
		}
		base.MaxMoves = *m.MaxMoves
	}
	if m.MinDamageMoves != nil {
		base.MinDamageMoves = *m.MinDamageMoves
	}
	if m.MaxStatusMoves != nil {
		base.MaxStatusMoves = *m.MaxStatusMoves
	}
	if m.PrioritizeSTAB != nil {
		base.PrioritizeSTAB = *m.PrioritizeSTAB
	}
	if base.MinDamageMoves < 0 || base.MaxStatusMoves < 0 {
		return base, fmt.Errorf("moveset counts must not be negative")
	}
	if base.MinDamageMoves > base.MaxMoves {
		return base, fmt.Errorf("moveset.min_damage_moves %d exceeds max_moves %d", base.MinDamageMoves, base.MaxMoves)
	}
	if len(m.AllowedMethods) > 0 {
		methods := make([]game.LearnMethod, 0, len(m.AllowedMethods))
		for _, raw := range m.AllowedMethods {
			lm := game.LearnMethod(strings.ToLower(strings.TrimSpace(raw)))
			switch lm {
			case game.LearnLevelUp, game.LearnMachine, game.LearnTutor, game.LearnEgg:
				methods = append(methods, lm)
			default:
				return base, fmt.Errorf("unknown learn method '%s'", raw)
			}
		}
		base.AllowedMethods = methods
	}
	return base, nil
}
