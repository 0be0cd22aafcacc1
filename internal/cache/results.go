// Package cache holds aggregated game results for the lifetime of a session.
package cache

import (
	"context"
	"sync"
	"time"

	"mlb-inning-times/internal/domain"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	result    domain.GameResult
	expiresAt time.Time // zero: no expiry
}

// ResultCache maps GamePk to its aggregated result. Entries live until the
// TTL passes or Clear is called; a TTL of zero keeps them until Clear.
// Failed loads are never stored.
type ResultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	group   singleflight.Group
	now     func() time.Time
}

func New(ttl time.Duration) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (c *ResultCache) Get(gamePk string) (domain.GameResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[gamePk]
	if !ok {
		return domain.GameResult{}, false
	}
	if e.expired(c.now()) {
		delete(c.entries, gamePk)
		return domain.GameResult{}, false
	}
	return e.result, true
}

func (c *ResultCache) Put(gamePk string, result domain.GameResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{result: result}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}
	c.entries[gamePk] = e
}

// GetOrLoad returns the cached result or runs load, storing what it returns.
// Concurrent loads of the same GamePk share one call. hit reports whether the
// value came from the cache.
func (c *ResultCache) GetOrLoad(gamePk string, load func() (domain.GameResult, error)) (result domain.GameResult, hit bool, err error) {
	if r, ok := c.Get(gamePk); ok {
		return r, true, nil
	}

	v, err, _ := c.group.Do(gamePk, func() (any, error) {
		r, err := load()
		if err != nil {
			return nil, err
		}
		c.Put(gamePk, r)
		return r, nil
	})
	if err != nil {
		return domain.GameResult{}, false, err
	}
	return v.(domain.GameResult), false, nil
}

func (c *ResultCache) Delete(gamePk string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, gamePk)
}

// Clear drops every entry and returns how many were held.
func (c *ResultCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]entry)
	return n
}

// Sweep drops expired entries and returns how many were removed.
func (c *ResultCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for gamePk, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, gamePk)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (c *ResultCache) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// Len counts held entries, expired or not.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
