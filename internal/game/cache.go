package game

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ascend-app/ascend/internal/domain"
)

// CacheSchemaVersion is the current version of the cached state shape.
// Increment when domain.GameState changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

type cachedStateEntry struct {
	Version  string
	State    *domain.GameState
	CachedAt time.Time
}

// stateCache is an in-memory LRU for loaded game states with time-based
// expiration. Entries are only touched under the per-user lock, so the cached
// pointer is safe to hand to the single active writer.
type stateCache struct {
	lru *expirable.LRU[string, *cachedStateEntry]
}

func newStateCache(size int, ttl time.Duration) *stateCache {
	return &stateCache{
		lru: expirable.NewLRU[string, *cachedStateEntry](size, nil, ttl),
	}
}

func (c *stateCache) Get(userID string) (*domain.GameState, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		return nil, false
	}
	return entry.State, true
}

func (c *stateCache) Set(userID string, state *domain.GameState) {
	c.lru.Add(userID, &cachedStateEntry{
		Version:  CacheSchemaVersion,
		State:    state,
		CachedAt: time.Now(),
	})
}

func (c *stateCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

func (c *stateCache) Clear() {
	c.lru.Purge()
}

func (c *stateCache) Len() int {
	return c.lru.Len()
}

// CacheStats reports cache usage for the admin endpoint
type CacheStats struct {
	Entries       int    `json:"entries"`
	SchemaVersion string `json:"schemaVersion"`
}
