package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config represents the server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Admin     AdminConfig     `yaml:"admin"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	EngineCacheSize int           `yaml:"engine_cache_size"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig selects and configures the state backend.
type StorageConfig struct {
	Type   string       `yaml:"type"`
	Redis  RedisConfig  `yaml:"redis"`
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	KeyTTL       time.Duration `yaml:"key_ttl"`
}

// SQLiteConfig holds the SQLite database location.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled        bool   `yaml:"enabled"`
	ServiceName    string `yaml:"service_name"`
	ServiceVersion string `yaml:"service_version"`
	OTLPEndpoint   string `yaml:"otlp_endpoint"`
	Insecure       bool   `yaml:"insecure"`
}

// AdminConfig protects the admin console.
type AdminConfig struct {
	// KeyHash is a bcrypt hash of the admin key. Empty disables admin routes.
	KeyHash string `yaml:"key_hash"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel parses Level, defaulting to info.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			EngineCacheSize: 1024,
		},
		Storage: StorageConfig{
			Type: StorageMemory,
			Redis: RedisConfig{
				URL:          "redis://localhost:6379/0",
				PoolSize:     10,
				MinIdleConns: 2,
			},
			SQLite: SQLiteConfig{
				Path: "kefmc.db",
			},
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "kefmc-engine",
			ServiceVersion: "0.1.0",
			OTLPEndpoint:   "localhost:4318",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("KEFMC_STORAGE"); ok {
		c.Storage.Type = v
	}
	if v, ok := lookup("REDIS_URL"); ok {
		c.Storage.Redis.URL = v
	}
	if v, ok := lookup("KEFMC_SQLITE_PATH"); ok {
		c.Storage.SQLite.Path = v
	}
	if v, ok := lookup("KEFMC_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KEFMC_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("KEFMC_ADMIN_KEY_HASH"); ok {
		c.Admin.KeyHash = v
	}
	if v, ok := lookup("OTEL_EXPORTER_OTLP_ENDPOINT"); ok {
		c.Telemetry.OTLPEndpoint = v
		c.Telemetry.Enabled = true
	}
	return nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	switch c.Storage.Type {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if c.Storage.Redis.URL == "" {
			return errors.New("storage.redis.url is required for redis storage")
		}
	default:
		return fmt.Errorf("unsupported storage type %q: must be %q, %q or %q",
			c.Storage.Type, StorageMemory, StorageRedis, StorageSQLite)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.EngineCacheSize < 1 {
		return fmt.Errorf("server.engine_cache_size must be positive, got %d", c.Server.EngineCacheSize)
	}
	return nil
}
