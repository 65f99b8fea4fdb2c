// Package cache provides prompt caches: an in-process LRU and a shared Redis store.
package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// LRU is a size-bounded in-process cache with per-entry expiry.
type LRU struct {
	mu    sync.Mutex
	items *lru.Cache[string, entry]
	now   func() time.Time
}

// NewLRU constructs an LRU holding at most size entries. Non-positive sizes use 1024.
func NewLRU(size int) *LRU {
	if size <= 0 {
		size = 1024
	}
	// lru.New only errors on non-positive size which we guard above.
	c, _ := lru.New[string, entry](size)
	return &LRU{items: c, now: time.Now}
}

// Get returns a live entry.
func (c *LRU) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items.Get(key)
	if !ok {
		return "", false, nil
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.items.Remove(key)
		return "", false, nil
	}
	return e.value, true, nil
}

// Set stores value for ttl. A zero ttl never expires.
func (c *LRU) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.items.Add(key, e)
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (c *LRU) Len() int { return c.items.Len() }
