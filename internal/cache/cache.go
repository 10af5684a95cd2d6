// Package cache provides a size-bounded, string-keyed, in-memory cache with
// first-in-first-out eviction.
package cache

import (
	"container/list"
	"sync"
)

// DefaultMaxEntries is the entry cap applied when no explicit cap is given.
const DefaultMaxEntries = 10000

// Bounded memoizes values up to a fixed number of entries. When the cap is
// reached, the entry inserted longest ago is dropped — Get never refreshes an
// entry's position, so this is deliberately FIFO, not LRU. Entries have no
// TTL; they live until evicted or the process exits.
//
// All methods are safe for concurrent use. Callers that race on a miss may
// recompute the same value twice; that is harmless since cached computations
// are pure.
type Bounded[V any] struct {
	mu      sync.Mutex
	max     int
	order   *list.List // front is the oldest-inserted key
	entries map[string]*list.Element
}

type entry[V any] struct {
	key   string
	value V
}

// NewBounded creates a cache holding at most maxEntries values. Non-positive
// caps fall back to DefaultMaxEntries.
func NewBounded[V any](maxEntries int) *Bounded[V] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Bounded[V]{
		max:     maxEntries,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
}

// Get returns the cached value for key, if present.
func (c *Bounded[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		return el.Value.(*entry[V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key. Overwriting an existing key keeps its original
// insertion position; inserting a new key at the cap first evicts the
// oldest-inserted entry.
func (c *Bounded[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[V]).value = value
		return
	}

	if len(c.entries) >= c.max {
		if oldest := c.order.Front(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*entry[V]).key)
		}
	}

	c.entries[key] = c.order.PushBack(&entry[V]{key: key, value: value})
}

// Len reports the current number of entries.
func (c *Bounded[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
