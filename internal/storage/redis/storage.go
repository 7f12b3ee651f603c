package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, storeKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, storeKey(key), value, s.cfg.KeyTTL).Err()
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, storeKey(key)).Err()
}

// Apply runs all mutations inside MULTI/EXEC so they land together
func (s *Storage) Apply(ctx context.Context, mutations ...storage.Mutation) error {
	if len(mutations) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, m := range mutations {
		if m.Delete {
			pipe.Del(ctx, storeKey(m.Key))
			continue
		}
		pipe.Set(ctx, storeKey(m.Key), m.Value, s.cfg.KeyTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}
