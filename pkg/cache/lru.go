// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cache

import "container/list"

// LRU is a bounded key/value cache evicting the least recently used entry
// once its capacity is reached. It is not safe for concurrent use: every
// worker owns its own instance.
type LRU[K comparable, V any] struct {
	capacity int
	// age keeps the most recently used entries at the back
	age     *list.List
	entries map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates an LRU holding at most capacity entries. A capacity
// of 0 or less disables eviction.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		capacity: capacity,
		age:      list.New(),
		entries:  make(map[K]*list.Element),
	}
}

// Capacity returns the maximum number of entries
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Len returns the number of cached entries
func (c *LRU[K, V]) Len() int {
	return len(c.entries)
}

// Get returns the value cached for key and marks it as recently used
func (c *LRU[K, V]) Get(key K) (V, bool) {
	if el, ok := c.entries[key]; ok {
		c.age.MoveToBack(el)
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Add caches value under key, overwriting an existing value
func (c *LRU[K, V]) Add(key K, value V) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.age.MoveToBack(el)
		return
	}
	if c.capacity > 0 && len(c.entries) >= c.capacity {
		if oldest := c.age.Front(); oldest != nil {
			c.age.Remove(oldest)
			delete(c.entries, oldest.Value.(*entry[K, V]).key)
		}
	}
	c.entries[key] = c.age.PushBack(&entry[K, V]{key: key, value: value})
}

// Remove drops key from the cache
func (c *LRU[K, V]) Remove(key K) {
	if el, ok := c.entries[key]; ok {
		c.age.Remove(el)
		delete(c.entries, key)
	}
}

// Clear drops all entries
func (c *LRU[K, V]) Clear() {
	c.age.Init()
	c.entries = make(map[K]*list.Element)
}
