package client

import (
	"net/url"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const keySep = "\x1f"

// Key identifies one cached query: a resource name followed by its
// parameters. Structurally equal keys share an entry.
type Key []string

func NewKey(parts ...string) Key {
	return Key(parts)
}

// ParamsKey appends the canonical (sorted) encoding of params, if any.
func ParamsKey(resource string, params url.Values, parts ...string) Key {
	k := append(Key{resource}, parts...)
	if enc := params.Encode(); enc != "" {
		k = append(k, enc)
	}
	return k
}

func (k Key) String() string {
	return strings.Join(k, keySep)
}

// HasPrefix reports whether k starts with the given parts.
func (k Key) HasPrefix(parts ...string) bool {
	if len(parts) > len(k) {
		return false
	}
	for i, p := range parts {
		if k[i] != p {
			return false
		}
	}
	return true
}

func splitKey(s string) Key {
	return Key(strings.Split(s, keySep))
}

// Cache holds query results for staleTime. Every key has a generation that
// Cancel and InvalidatePrefix bump, so a read started before the bump cannot
// store its now outdated result.
type Cache struct {
	store *gocache.Cache

	mu          sync.Mutex
	generations map[string]uint64
}

func NewCache(staleTime time.Duration) *Cache {
	ttl := staleTime
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	cleanup := 2 * staleTime
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &Cache{
		store:       gocache.New(ttl, cleanup),
		generations: make(map[string]uint64),
	}
}

func (c *Cache) Get(key Key) (interface{}, bool) {
	return c.store.Get(key.String())
}

func (c *Cache) Set(key Key, v interface{}) {
	c.store.SetDefault(key.String(), v)
}

func (c *Cache) Delete(key Key) {
	c.store.Delete(key.String())
}

// Generation returns the current generation of key.
func (c *Cache) Generation(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := key.String()
	if _, ok := c.generations[s]; !ok {
		c.generations[s] = 0
	}
	return c.generations[s]
}

// SetIfGeneration stores v only if key is still at generation gen.
func (c *Cache) SetIfGeneration(key Key, gen uint64, v interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[key.String()] != gen {
		return false
	}
	c.store.SetDefault(key.String(), v)
	return true
}

// Cancel invalidates any read of key that is currently in flight. The
// cached value, if any, is kept.
func (c *Cache) Cancel(key Key) {
	c.mu.Lock()
	c.generations[key.String()]++
	c.mu.Unlock()
}

// InvalidatePrefix drops every entry whose key starts with parts and
// cancels their in-flight reads.
func (c *Cache) InvalidatePrefix(parts ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for s := range c.generations {
		if splitKey(s).HasPrefix(parts...) {
			c.generations[s]++
		}
	}
	for s := range c.store.Items() {
		if splitKey(s).HasPrefix(parts...) {
			c.store.Delete(s)
			c.generations[s]++
		}
	}
}

func cached[T any](c *Cache, key Key) (T, bool) {
	v, ok := c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
