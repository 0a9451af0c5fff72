package resolve

import "sync"

// defaultCacheSize bounds the resolution cache. Remote inference results
// are small, but the cache lives for the process lifetime, so it is
// capped rather than allowed to grow without limit.
const defaultCacheSize = 512

// Cache memoizes remote-inferred records by normalized skill name for
// the lifetime of the process. It is safe for concurrent use. When full,
// the oldest entry is evicted.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Record
	order   []string
	max     int
}

// NewCache creates a Cache bounded at max entries. max <= 0 uses the
// default bound.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = defaultCacheSize
	}
	return &Cache{
		entries: make(map[string]Record),
		max:     max,
	}
}

// Get returns the cached record for a normalized name. The returned
// record's source is rewritten to cached so callers can observe where
// the answer came from.
func (c *Cache) Get(normalizedName string) (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.entries[normalizedName]
	if !ok {
		return Record{}, false
	}
	out := rec.clone()
	out.Source = SourceCached
	return out, true
}

// Put stores a record under a normalized name, evicting the oldest
// entry if the cache is full.
func (c *Cache) Put(normalizedName string, rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[normalizedName]; !exists {
		if len(c.order) >= c.max {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, normalizedName)
	}
	c.entries[normalizedName] = rec.clone()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
