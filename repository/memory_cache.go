package repository

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process CacheRepository with TTL eviction.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a cache whose entries expire after ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *MemoryCache) Get(key string) (string, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (c *MemoryCache) Set(key string, value string) error {
	c.store.SetDefault(key, value)
	return nil
}
