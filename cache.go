package pathmap

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultLineCacheEntries bounds the reader's parse cache. An unbounded map
// would also satisfy the spec (repeated decodes of the same offset are
// idempotent, just wasteful), but a bounded LRU keeps memory flat for
// lookup-heavy workloads over very large files.
const defaultLineCacheEntries = 4096

// lineCacheStats counts the parse cache's hits, misses and evictions. The
// counters are internal to the cache; Reader has no method that exposes them.
type lineCacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// lineCache maps a line's starting byte offset to its decoded form. It is
// an ordinary mutable table, not internally synchronized beyond what the
// underlying LRU implementation provides for its own bookkeeping: per the
// reader's concurrency model, a single Reader (and therefore its cache)
// must not be shared across goroutines without external locking.
type lineCache struct {
	entries *lru.Cache[int64, decodedLine]
	stats   lineCacheStats
}

func newLineCache(maxEntries int) *lineCache {
	if maxEntries <= 0 {
		maxEntries = defaultLineCacheEntries
	}
	c := &lineCache{}
	c.entries, _ = lru.NewWithEvict[int64, decodedLine](maxEntries, func(int64, decodedLine) {
		c.stats.Evictions++
	})
	return c
}

func (c *lineCache) get(offset int64) (decodedLine, bool) {
	dl, ok := c.entries.Get(offset)
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return dl, ok
}

func (c *lineCache) put(offset int64, dl decodedLine) {
	c.entries.Add(offset, dl)
}
