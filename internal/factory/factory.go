package factory

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kefmc/tournament-engine/internal/config"
	"github.com/kefmc/tournament-engine/internal/dependencies/clock"
	"github.com/kefmc/tournament-engine/internal/dependencies/random"
	"github.com/kefmc/tournament-engine/internal/storage"
	"github.com/kefmc/tournament-engine/internal/storage/memory"
	redisstorage "github.com/kefmc/tournament-engine/internal/storage/redis"
	sqlitestorage "github.com/kefmc/tournament-engine/internal/storage/sqlite"
	"github.com/kefmc/tournament-engine/internal/telemetry"
)

const (
	// DefaultDevice is used when a caller does not identify its device
	DefaultDevice = "default"

	// DefaultEngineCacheSize is how many device engines stay in memory.
	// Least recently used engines are dropped past it and rebuilt from
	// storage on their next request.
	DefaultEngineCacheSize = 1024

	// lockStripes is the number of device locks. Devices hashing to the same
	// stripe serialize against each other.
	lockStripes = 256
)

// App contains all wired application components
type App struct {
	// Storage is the shared backend; engines see a per-device namespace of it
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Logger    *slog.Logger
	Telemetry *telemetry.Provider

	closer io.Closer

	mu      sync.Mutex
	engines *lru.Cache[string, *Engine]
	locks   [lockStripes]sync.Mutex
}

// Config holds configuration for the application factory
type Config struct {
	// Storage selects the backend. A zero value means in-memory storage.
	Storage config.StorageConfig
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Telemetry supplies tracer and meter providers (optional)
	// If nil, a nop provider is used
	Telemetry *telemetry.Provider
	// EngineCacheSize bounds the engines kept in memory (optional)
	// If zero, DefaultEngineCacheSize is used
	EngineCacheSize int
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	tel := cfg.Telemetry
	if tel == nil {
		tel = telemetry.NewNopProvider()
	}

	store, closer, err := openStorage(cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Info("storage ready", slog.String("type", storageType(cfg.Storage)))

	app, err := newWithDependencies(store, clock.New(), random.New(), logger, tel, cfg.EngineCacheSize)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	app.closer = closer
	return app, nil
}

func storageType(cfg config.StorageConfig) string {
	if cfg.Type == "" {
		return config.StorageMemory
	}
	return cfg.Type
}

func openStorage(cfg config.StorageConfig) (storage.Storage, io.Closer, error) {
	switch storageType(cfg) {
	case config.StorageMemory:
		return memory.New(), nil, nil
	case config.StorageRedis:
		if cfg.Redis.URL == "" {
			return nil, nil, errors.New("redis url required when storage type is redis")
		}
		store, err := redisstorage.New(redisstorage.Config{
			URL:          cfg.Redis.URL,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			KeyTTL:       cfg.Redis.KeyTTL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("opening redis storage: %w", err)
		}
		return store, store, nil
	case config.StorageSQLite:
		store, err := sqlitestorage.New(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite storage: %w", err)
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("invalid storage type %q: must be memory, redis or sqlite", cfg.Type)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
	tel *telemetry.Provider,
	cacheSize int,
) (*App, error) {
	if cacheSize == 0 {
		cacheSize = DefaultEngineCacheSize
	}
	engines, err := lru.New[string, *Engine](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating engine cache: %w", err)
	}
	return &App{
		Storage:   store,
		Clock:     clk,
		Random:    rnd,
		Logger:    logger,
		Telemetry: tel,
		engines:   engines,
	}, nil
}

// Engine returns the engine for device, creating it on first use or after it
// was evicted. An empty device means DefaultDevice. Engines for the same
// device always share a lock, so an evicted engine still held by a request
// cannot interleave with its replacement.
func (a *App) Engine(device string) (*Engine, error) {
	if device == "" {
		device = DefaultDevice
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if e, ok := a.engines.Get(device); ok {
		return e, nil
	}
	e, err := newEngine(device, storage.Namespaced(a.Storage, "device:"+device),
		a.lockFor(device), a.Clock, a.Random, a.Logger, a.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("creating engine for device %s: %w", device, err)
	}
	a.engines.Add(device, e)
	return e, nil
}

// EngineCount returns how many engines are cached
func (a *App) EngineCount() int {
	return a.engines.Len()
}

func (a *App) lockFor(device string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(device))
	return &a.locks[h.Sum32()%lockStripes]
}

// Close releases the storage backend
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
