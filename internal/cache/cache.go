package cache

// EvictionFunc receives the key and value of an entry removed by a capacity
// eviction. It runs synchronously inside the Put call that overflowed, exactly
// once per evicted entry, and never for overwrites, Remove, or Clear.
//
// The value is only borrowed for the duration of the call; the entry is gone
// from the cache before the func runs, so a returned error (which Put passes
// through to its caller) can never leave a stale entry reachable.
//
// The func must not call back into the same cache instance.
type EvictionFunc[K comparable, V any] func(key K, value V) error

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithEvictionFunc installs fn as the cache's eviction notification.
func WithEvictionFunc[K comparable, V any](fn EvictionFunc[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) { c.onEvict = fn }
}

// Cache is a fixed-capacity LRU key–value cache.
//
// The core design is intentionally explicit and "mechanical": a map gives
// O(1) key lookup, and an intrusive doubly linked ring maintains recency
// ordering. The two structures always hold the same key set.
//
// Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	onEvict  EvictionFunc[K, V]

	items map[K]*node[K, V]
	order ring[K, V]
}

// New constructs a cache holding at most capacity entries.
// Capacity is fixed for the life of the cache.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	c := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity),
	}
	c.order.init()
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Put inserts or overwrites key.
//
// Overwriting drops the previous entry without notification; only
// capacity-driven removal counts as an eviction. If the insert overflows
// capacity, the least recently used entry is evicted and the eviction func
// (if any) is invoked with it; an error from that func is returned as-is.
//
// Complexity: O(1), at most one eviction per call.
func (c *Cache[K, V]) Put(key K, value V) error {
	if n, ok := c.items[key]; ok {
		c.order.remove(n)
		delete(c.items, key)
	}

	n := &node[K, V]{key: key, val: value}
	c.order.pushFront(n)
	c.items[key] = n

	if len(c.items) > c.capacity {
		return c.evict()
	}
	return nil
}

// Get returns the value stored under key and marks it most recently used.
// It returns ErrKeyNotFound for absent keys, leaving the cache untouched.
//
// Get mutates recency order: a hit changes which entry the next overflow
// evicts, even though it never changes cache contents.
func (c *Cache[K, V]) Get(key K) (V, error) {
	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	c.order.moveToFront(n)
	return n.val, nil
}

// Peek returns the value stored under key without touching recency order.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.val, true
}

// Exists reports whether key is present. It never touches recency order.
func (c *Cache[K, V]) Exists(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Size returns the number of entries currently held.
func (c *Cache[K, V]) Size() int {
	return len(c.items)
}

// Remove deletes key if present and reports whether it was.
// Explicit removal is not an eviction: the eviction func does not fire.
func (c *Cache[K, V]) Remove(key K) bool {
	n, ok := c.items[key]
	if !ok {
		return false
	}
	c.order.remove(n)
	delete(c.items, key)
	return true
}

// Keys returns the cached keys in MRU -> LRU order.
//
// This is a debug/teaching helper used by the demo and the tests.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, c.order.len)
	for n := c.order.front(); n != nil && n != &c.order.root; n = n.next {
		out = append(out, n.key)
	}
	return out
}

// Clear drops every entry without firing any notifications.
func (c *Cache[K, V]) Clear() {
	clear(c.items)
	c.order.init()
}

// evict removes the entry at the back of the ring.
//
// The entry is unlinked from both structures before the eviction func runs,
// so a failing func cannot leave it reachable through Exists, Get, or Size.
func (c *Cache[K, V]) evict() error {
	n := c.order.back()
	if n == nil {
		return nil
	}
	c.order.remove(n)
	delete(c.items, n.key)

	if c.onEvict != nil {
		return c.onEvict(n.key, n.val)
	}
	return nil
}
