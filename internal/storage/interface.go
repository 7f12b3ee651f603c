package storage

import (
	"context"
)

// Storage is the key-value store that backs all tournament state.
// Get returns model.ErrKeyNotFound when the key has never been set or was deleted.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Apply writes every mutation or none of them
	Apply(ctx context.Context, mutations ...Mutation) error
}

// Mutation is a single write inside an Apply batch
type Mutation struct {
	Key    string
	Value  []byte
	Delete bool
}

// Put returns a mutation that sets key to value
func Put(key string, value []byte) Mutation {
	return Mutation{Key: key, Value: value}
}

// Remove returns a mutation that deletes key
func Remove(key string) Mutation {
	return Mutation{Key: key, Delete: true}
}
