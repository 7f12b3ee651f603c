package memory

import (
	"context"
	"sync"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		values: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, model.ErrKeyNotFound
	}
	return clone(value), nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = clone(value)
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Storage) Apply(ctx context.Context, mutations ...storage.Mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range mutations {
		if m.Delete {
			delete(s.values, m.Key)
			continue
		}
		s.values[m.Key] = clone(m.Value)
	}
	return nil
}

// Keys returns the number of stored keys
func (s *Storage) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
