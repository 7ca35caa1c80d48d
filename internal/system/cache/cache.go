/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides a small typed TTL cache for read-mostly lookups
// such as the clan list. Entries expire passively; there is no background
// sweeper.
package cache

import (
	"sync"
	"time"

	"github.com/wso2/clan-chest-service/internal/system/log"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache holds values of one type, each expiring ttl after it was set.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
}

// New creates a cache whose entries live for the given TTL.
func New[V any](ttl time.Duration) *Cache[V] {

	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
	}
}

// Set stores a value under the key, replacing any previous entry.
func (c *Cache[V]) Set(key string, value V) {

	log.GetLogger().Debug("Caching value.", log.String("key", key))
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get returns the cached value for the key. An expired entry is a miss.
func (c *Cache[V]) Get(key string) (V, bool) {

	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.entries[key]
	if !found || time.Now().After(item.expiresAt) {
		var zero V
		return zero, false
	}
	return item.value, true
}

// Delete invalidates the entry for the key.
func (c *Cache[V]) Delete(key string) {

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Flush invalidates every entry.
func (c *Cache[V]) Flush() {

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry[V])
}
