// Package cache provides the TTL store shared by the analysis pipeline.
// Entries expire lazily: an expired value is dropped on the next read,
// never by a background sweeper.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the injected collaborator the analysis service reads through.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
}

// Memory is the in-process implementation backing Cache.
type Memory struct {
	store *gocache.Cache
}

// NewMemory builds a store with no default expiry and no janitor goroutine,
// so eviction happens only on read.
func NewMemory() *Memory {
	return &Memory{store: gocache.New(gocache.NoExpiration, 0)}
}

func (m *Memory) Get(key string) (any, bool) {
	return m.store.Get(key)
}

func (m *Memory) Set(key string, value any, ttl time.Duration) {
	m.store.Set(key, value, ttl)
}
