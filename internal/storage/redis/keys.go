package redis

import "fmt"

// Key prefix for all tournament data
const keyPrefix = "kefmc"

// storeKey returns the Redis key for a store key
func storeKey(key string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, key)
}
