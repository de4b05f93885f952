// Package cache provides the in-memory caches behind data sources.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a thread-safe least recently used cache. It implements
// port.Cache[K, V]. A capacity of zero or less never evicts, which keeps
// every entry for the process lifetime.
type LRU[K comparable, V any] struct {
	capacity int
	onEvict  func(K, V)

	mu    sync.Mutex
	items map[K]*list.Element
	order *list.List // front is most recent
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// LRUOption configures an LRU.
type LRUOption[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback is called, outside the lock, for every entry dropped to
// make room.
func WithEvictCallback[K comparable, V any](fn func(K, V)) LRUOption[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

func NewLRU[K comparable, V any](capacity int, opts ...LRUOption[K, V]) *LRU[K, V] {
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*entry[K, V]).value = value
		c.mu.Unlock()
		return
	}

	var evicted *entry[K, V]
	if c.capacity > 0 && c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			evicted = c.order.Remove(oldest).(*entry[K, V])
			delete(c.items, evicted.key)
		}
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	onEvict := c.onEvict
	c.mu.Unlock()

	if evicted != nil && onEvict != nil {
		onEvict(evicted.key, evicted.value)
	}
}

// Remove deletes key. Missing keys are ignored.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.Remove(elem)
		delete(c.items, key)
	}
}

func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Keys returns the keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.order.Len())
	for e := c.order.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(*entry[K, V]).key)
	}
	return keys
}

func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order.Init()
}
