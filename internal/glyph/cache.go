package glyph

import "sync"

type cacheKey struct {
	renderer string
	alphabet string
	cell     Size
}

// Cache hands out one Atlas per (renderer, alphabet, cell) triple. Failed
// builds are not remembered, so a later call retries.
type Cache struct {
	mu      sync.Mutex
	atlases map[cacheKey]*Atlas
	builds  int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{atlases: make(map[cacheKey]*Atlas)}
}

// Atlas returns the cached atlas for the triple, building it on first use.
func (c *Cache) Atlas(r Renderer, alphabet string, cell Size) (*Atlas, error) {
	if r == nil {
		return Build(nil, alphabet, cell)
	}
	key := cacheKey{renderer: r.ID(), alphabet: alphabet, cell: cell}

	c.mu.Lock()
	defer c.mu.Unlock()
	if a, ok := c.atlases[key]; ok {
		return a, nil
	}
	a, err := Build(r, alphabet, cell)
	if err != nil {
		return nil, err
	}
	c.builds++
	c.atlases[key] = a
	return a, nil
}

// Builds returns how many atlases have been built successfully.
func (c *Cache) Builds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.builds
}
