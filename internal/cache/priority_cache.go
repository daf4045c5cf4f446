package cache

import (
	"sync"
	"time"

	"github.com/mkobayashi/todo-web-api/internal/constants"
	"github.com/mkobayashi/todo-web-api/internal/models"
)

// PriorityCache holds the static priority list under a single key with a
// sliding expiration window: every access inside the window pushes the
// expiry forward. The list is static reference data, so a redundant refill
// after a race is harmless.
type PriorityCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	values    []models.Priority
	expiresAt time.Time
	now       func() time.Time
}

// NewPriorityCache creates a cache with the given sliding window. A zero or
// negative ttl falls back to the default window.
func NewPriorityCache(ttl time.Duration) *PriorityCache {
	if ttl <= 0 {
		ttl = constants.DefaultPriorityCacheTTL
	}
	return &PriorityCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached list, filling it lazily from load on the first
// access or after the window has elapsed.
func (c *PriorityCache) Get(load func() ([]models.Priority, error)) ([]models.Priority, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.values != nil && now.Before(c.expiresAt) {
		c.expiresAt = now.Add(c.ttl)
		return c.values, nil
	}

	values, err := load()
	if err != nil {
		return nil, err
	}

	c.values = values
	c.expiresAt = now.Add(c.ttl)
	return values, nil
}
