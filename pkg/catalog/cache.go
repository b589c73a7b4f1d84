// Package catalog is the per-user TTL cache for runtime tool catalogs.
// Entries are keyed by a stable hash of the catalog payload so identical
// payloads share one catalog id regardless of map ordering.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

const minTTL = 60 * time.Second

// entry is one cached catalog payload.
type entry struct {
	userID    string
	payload   map[string]any
	createdAt time.Time
	expiresAt time.Time
}

// Cache is an in-memory TTL cache of catalog payloads. Expired entries are
// swept lazily on each access.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// New creates an empty catalog cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// CatalogID derives the stable id of a payload: "catalog_" plus the first
// 20 hex chars of the SHA-256 of its key-sorted JSON encoding.
func CatalogID(payload map[string]any) (string, error) {
	canonical, err := canonicalJSON(payload)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalise catalog payload: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return "catalog_" + hex.EncodeToString(sum[:])[:20], nil
}

// GetOrCreate returns the catalog id for a payload, creating the entry when
// absent and reporting whether it was created. An existing live entry has
// its expiry extended to now + max(60s, ttl).
func (c *Cache) GetOrCreate(userID string, payload map[string]any, ttl time.Duration) (string, bool, error) {
	id, err := CatalogID(payload)
	if err != nil {
		return "", false, err
	}
	if ttl < minTTL {
		ttl = minTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.sweepLocked(now)

	if e, ok := c.entries[id]; ok {
		e.expiresAt = now.Add(ttl)
		return id, false, nil
	}

	c.entries[id] = &entry{
		userID:    userID,
		payload:   deepCopy(payload),
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
	return id, true, nil
}

// Get returns a deep copy of a live catalog payload, or nil when the id is
// unknown or expired.
func (c *Cache) Get(catalogID string) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked(c.now())

	e, ok := c.entries[catalogID]
	if !ok {
		return nil
	}
	return deepCopy(e.payload)
}

// Invalidate drops every entry owned by a user.
func (c *Cache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, e := range c.entries {
		if e.userID == userID {
			delete(c.entries, id)
		}
	}
}

// SweepExpired drops expired entries now and returns how many were removed.
// The cleanup service calls this on its interval; normal accesses sweep
// lazily anyway.
func (c *Cache) SweepExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := len(c.entries)
	c.sweepLocked(c.now())
	return before - len(c.entries)
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked(c.now())
	return len(c.entries)
}

func (c *Cache) sweepLocked(now time.Time) {
	for id, e := range c.entries {
		if !e.expiresAt.After(now) {
			delete(c.entries, id)
		}
	}
}

// canonicalJSON encodes a value with all object keys sorted recursively.
func canonicalJSON(v any) ([]byte, error) {
	return json.Marshal(sortValue(v))
}

// sortValue rewrites maps into ordered key/value pair slices so encoding
// is deterministic. encoding/json already sorts map[string]any keys, but
// nested non-map containers must be walked too.
func sortValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ordered := make([]any, 0, len(keys)*2)
		for _, k := range keys {
			ordered = append(ordered, k, sortValue(value[k]))
		}
		return ordered
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = sortValue(item)
		}
		return out
	default:
		return v
	}
}

func deepCopy(payload map[string]any) map[string]any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
