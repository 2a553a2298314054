package constants

// Centralized constants for env keys, routes, response keys and log fields.
const (
	// Environment variable keys
	EnvConfigPath = "POKEBATTLE_CONFIG"
	EnvDatabase   = "POKEBATTLE_DB"
	EnvDBDriver   = "POKEBATTLE_DB_DRIVER"
	EnvListenAddr = "POKEBATTLE_ADDR"
	EnvLogLevel   = "POKEBATTLE_LOG_LEVEL"

	DefaultConfigPath = "./pokebattle_config.json"

	// HTTP headers
	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Database drivers accepted in configuration.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteSpecies       = "/species"
	RouteSpeciesByName = "/species/:name"
	RouteMoves         = "/moves/:name"
	RouteBattles       = "/battles"
	RouteBattleByID    = "/battles/:battleID"
	RouteBattleAction  = "/battles/:battleID/action"
	RouteBattleEvents  = "/battles/:battleID/events"
	RouteBattleAbandon = "/battles/:battleID/abandon"
	RouteVersion       = "/version"
	RouteHealth        = "/health"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidBattleID     = "Invalid battle ID"
	ErrBattleNotFound      = "Battle not found"
	ErrSpeciesNotFound     = "Species not found"
	ErrMoveNotFound        = "Move not found"
	ErrFailedCreateBattle  = "Failed to create battle"
	ErrFailedFetchBattle   = "Failed to fetch battle"
	ErrFailedStoreAction   = "Failed to store action"
	ErrBattleNotInProgress = "Battle is not in progress"
	ErrActionsLocked       = "Actions are locked; resolving current round"
	ErrInvalidSide         = "Side must be \"a\" or \"b\""
	ErrInvalidMove         = "Invalid move index"
	ErrActionAlreadySent   = "Action already submitted for this round"
	ErrFailedUpgrade       = "Failed to open event stream"
)

// Logging field names
const (
	LogFieldBattleID  = "battle_id"
	LogFieldSide      = "side"
	LogFieldRound     = "round"
	LogFieldSpecies   = "species"
	LogFieldMove      = "move"
	LogFieldEffectTag = "effect_tag"
	LogFieldSource    = "source"
	LogFieldAddr      = "addr"
	LogFieldDriver    = "driver"
	LogFieldCount     = "count"
)
