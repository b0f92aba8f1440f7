package stringnorm

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// Cache memoizes the results of a Normalizer in a bounded LRU cache. Only
// successful normalizations are cached. A Cache is safe for concurrent use.
type Cache struct {
	norm   Normalizer
	mutex  sync.Mutex
	cache  *lru.Cache
	hits   int
	misses int
}

// NewCache wraps norm in a cache of up to capacity entries.
func NewCache(norm Normalizer, capacity int) *Cache {
	return &Cache{norm: norm, cache: lru.New(capacity)}
}

// Normalize returns the cached normalization of text, computing and caching
// it on a miss.
func (c *Cache) Normalize(text string) (string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if res, ok := c.cache.Get(text); ok {
		c.hits++
		return res.(string), nil
	}
	c.misses++
	res, err := c.norm.Normalize(text)
	if err != nil {
		return res, err
	}
	c.cache.Add(text, res)
	return res, nil
}

// Stats returns the number of lookups answered from the cache and the
// number passed to the underlying normalizer.
func (c *Cache) Stats() (hits, misses int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.hits, c.misses
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.cache.Len()
}
