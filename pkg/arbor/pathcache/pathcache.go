// Copyright 2025 Oppie Thunder Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pathcache memoizes full-path → node resolutions. It is a pure
// latency optimization (SPEC_FULL.md §4, P10): a miss always falls back to
// the segment-by-segment walk, and every mutation purges the cache
// outright, so correctness never depends on it.
package pathcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arborfs/arbor/pkg/arbor/node"
)

// Cache is a small wrapper around an LRU of path -> *node.Node.
type Cache struct {
	lru *lru.Cache[string, *node.Node]
}

// New builds a Cache holding at most size entries. size <= 0 disables it
// (every lookup is a miss, Add and Purge become no-ops).
func New(size int) *Cache {
	if size <= 0 {
		return &Cache{}
	}
	l, err := lru.New[string, *node.Node](size)
	if err != nil {
		// Only returns an error for size <= 0, already handled above.
		return &Cache{}
	}
	return &Cache{lru: l}
}

// Get returns the cached node for path, if any.
func (c *Cache) Get(path string) (*node.Node, bool) {
	if c.lru == nil {
		return nil, false
	}
	return c.lru.Get(path)
}

// Add records the resolution of path to n.
func (c *Cache) Add(path string, n *node.Node) {
	if c.lru == nil {
		return
	}
	c.lru.Add(path, n)
}

// Purge discards every cached entry.
func (c *Cache) Purge() {
	if c.lru == nil {
		return
	}
	c.lru.Purge()
}
