package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/bot"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/dependencies/clock"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/dependencies/random"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/render"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/identity"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/leaderboard"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/ledger"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage/memory"
	redisstorage "github.com/ruzibekov24/farosat-gramm-bot/internal/storage/redis"
	sqlitestorage "github.com/ruzibekov24/farosat-gramm-bot/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	IdentityService    *identity.Service
	LedgerService      *ledger.Service
	LeaderboardService *leaderboard.Service
	RenderService      *render.Service

	// Bot command layer
	Handlers *bot.Handlers
	Router   *bot.Router
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "sqlite" or
	// "redis"). If empty, defaults to "memory".
	StorageType string
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AdminID is the Telegram user id allowed to run privileged commands
	AdminID int64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'sqlite' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.AdminID, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, adminID int64, logger *slog.Logger) *App {
	identityService := identity.New(store, logger)
	ledgerService := ledger.New(store, rnd, logger)
	leaderboardService := leaderboard.New(store)
	renderService := render.New()

	handlers := bot.NewHandlers(bot.Config{
		Identity:    identityService,
		Ledger:      ledgerService,
		Leaderboard: leaderboardService,
		Render:      renderService,
		Clock:       clk,
		Authorize:   bot.AdminAuthorizer(adminID),
		Logger:      logger,
	})
	router := bot.NewRouter(logger, handlers)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		IdentityService:    identityService,
		LedgerService:      ledgerService,
		LeaderboardService: leaderboardService,
		RenderService:      renderService,
		Handlers:           handlers,
		Router:             router,
	}
}

// Close releases backing resources for backends that hold connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
