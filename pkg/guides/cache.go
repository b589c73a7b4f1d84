package guides

import (
	"sync"
	"time"
)

type cacheEntry struct {
	content  string
	loadedAt time.Time
}

// cache is a thread-safe TTL cache over guide file contents. Expired
// entries are cleaned up lazily on get, no background goroutine.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

func (c *cache) get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if time.Since(entry.loadedAt) > c.ttl {
		// Re-check under the write lock: a concurrent set may have
		// replaced the entry with a fresh one.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.loadedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false
	}

	return entry.content, true
}

func (c *cache) set(key, content string) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{content: content, loadedAt: time.Now()}
	c.mu.Unlock()
}
