package cache

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	value   []byte
	expires int64 // unix nano
}

// Cache is a TTL cache for rendered pages. Entries are whole-value
// replacements under their key, so no extra locking is needed on top of the
// concurrent map.
type Cache struct {
	entries cmap.ConcurrentMap[string, entry]
}

func New() *Cache {
	return &Cache{
		entries: cmap.New[entry](),
	}
}

// Get returns the cached value if it is still within its TTL window.
// Staleness with regard to the underlying rows is intentional and bounded
// by the TTL.
func (c *Cache) Get(key string) ([]byte, bool) {
	e, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if time.Now().UnixNano() >= e.expires {
		c.entries.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value []byte, ttl time.Duration) {
	c.entries.Set(key, entry{
		value:   value,
		expires: time.Now().Add(ttl).UnixNano(),
	})
}

// Invalidate drops the entry immediately, regardless of remaining TTL.
func (c *Cache) Invalidate(key string) {
	c.entries.Remove(key)
}

// Pages is the process-owned page cache.
var Pages = New()
