// Package service contains the business logic for the order service.
package service

import (
	"hash/maphash"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stevesplace/order-service/internal/metrics"
	"github.com/stevesplace/order-service/internal/service/cache"
)

// ShardedCache spreads entries over several LRU shards to reduce lock
// contention. Keys are hashed with maphash.
type ShardedCache[K comparable, V any] struct {
	name      string
	shards    []*ttlCache[K, V]
	shardMask uint64
	seed      maphash.Seed
}

// NewShardedCache creates a cache with the given total capacity, TTL and
// shard count. numShards is rounded up to a power of two.
func NewShardedCache[K comparable, V any](name string, capacity int, ttl time.Duration, numShards int) *ShardedCache[K, V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache[K, V], n)
	for i := range shards {
		shards[i] = newTTLCache[K, V](name, perShard, ttl)
	}
	return &ShardedCache[K, V]{
		name:      name,
		shards:    shards,
		shardMask: uint64(n - 1),
		seed:      maphash.MakeSeed(),
	}
}

func (sc *ShardedCache[K, V]) shard(key K) *ttlCache[K, V] {
	return sc.shards[maphash.Comparable(sc.seed, key)&sc.shardMask]
}

// Get retrieves a value from the owning shard.
func (sc *ShardedCache[K, V]) Get(key K) (V, bool) { return sc.shard(key).Get(key) }

// Set stores a value in the owning shard.
func (sc *ShardedCache[K, V]) Set(key K, value V) { sc.shard(key).Set(key, value) }

// Invalidate removes key.
func (sc *ShardedCache[K, V]) Invalidate(key K) { sc.shard(key).Invalidate(key) }

// Clear removes all entries from all shards.
func (sc *ShardedCache[K, V]) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop shuts down the shard cleanup goroutines.
func (sc *ShardedCache[K, V]) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics aggregates metrics from all shards.
func (sc *ShardedCache[K, V]) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache with per-entry expiry.
type ttlCache[K comparable, V any] struct {
	name      string
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	items     map[K]*cacheEntry[K, V]
	head      *cacheEntry[K, V]
	tail      *cacheEntry[K, V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	prev      *cacheEntry[K, V]
	next      *cacheEntry[K, V]
}

// newTTLCache starts a cache with a background sweeper for expired entries.
func newTTLCache[K comparable, V any](name string, capacity int, ttl time.Duration) *ttlCache[K, V] {
	c := &ttlCache[K, V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[K]*cacheEntry[K, V], capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Stop shuts down the sweeper. It is safe to call more than once.
func (c *ttlCache[K, V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *ttlCache[K, V]) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Get returns the value for key if present and not expired.
func (c *ttlCache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return zero, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if current, stillExists := c.items[key]; stillExists && current == entry {
			c.removeEntry(entry)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "expired")
		return zero, false
	}

	c.mu.Lock()
	if _, stillExists := c.items[key]; stillExists {
		c.moveToFront(entry)
	}
	value := entry.value
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation(c.name, "get", "hit")
	return value, true
}

// Set adds or replaces key. At capacity the least recently used entry is evicted.
func (c *ttlCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry[K, V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
	}
	metrics.RecordCacheOperation(c.name, "set", "success")
}

func (c *ttlCache[K, V]) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache[K, V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *ttlCache[K, V]) removeEntry(entry *cacheEntry[K, V]) {
	delete(c.items, entry.key)
	c.remove(entry)
}

func (c *ttlCache[K, V]) moveToFront(entry *cacheEntry[K, V]) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

func (c *ttlCache[K, V]) addToFront(entry *cacheEntry[K, V]) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache[K, V]) remove(entry *cacheEntry[K, V]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}

func (c *ttlCache[K, V]) removeTail() {
	if c.tail == nil {
		return
	}
	delete(c.items, c.tail.key)
	c.remove(c.tail)
}

// Invalidate removes key.
func (c *ttlCache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation(c.name, "invalidate", "success")
	}
}

// Clear removes every entry and resets the counters.
func (c *ttlCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*cacheEntry[K, V], c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation(c.name, "clear", "success")
}

var (
	_ cache.CacheWithMetrics[string, bool] = (*ShardedCache[string, bool])(nil)
	_ cache.CacheWithMetrics[string, bool] = (*ttlCache[string, bool])(nil)
)
