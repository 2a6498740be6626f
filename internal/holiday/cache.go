package holiday

import "sync"

// MemoryCache is the process-lifetime year cache used by the resolver.
type MemoryCache struct {
	mu    sync.Mutex
	years map[int]Set
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{years: make(map[int]Set)}
}

func (c *MemoryCache) Get(year int) (Set, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.years[year]
	return set, ok
}

func (c *MemoryCache) Put(year int, set Set) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.years[year] = set
}
