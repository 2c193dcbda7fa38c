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

// Package hashindex implements the open-addressed hash table that backs
// (parent, name) → node lookups for the namespace tree, plus the linear
// probing discipline and grow-and-rehash procedure described in spec.md
// §3 and §4.1, §4.2 and §4.6.
package hashindex

import (
	"github.com/arborfs/arbor/internal/util"
	"github.com/arborfs/arbor/pkg/arbor/node"
	"github.com/arborfs/arbor/pkg/arbor/types"
)

type slotState uint8

const (
	stateEmpty slotState = iota
	stateTombstone
	stateOccupied
)

type slot struct {
	state slotState
	node  *node.Node
}

// Table is the flat open-addressed array. Every mutation keeps invariant
// P1 (table[i].Hash == i for occupied i) by construction: Place and Grow
// are the only writers of a node's Hash field.
type Table struct {
	slots    []slot
	size     uint64
	occupied uint64
	rehashes uint64
}

// New allocates a table of the given size, all slots empty.
func New(size uint64) *Table {
	return &Table{slots: make([]slot, size), size: size}
}

// Size returns the current slot count.
func (t *Table) Size() uint64 { return t.size }

// Occupied returns the number of occupied (non-empty, non-tombstone) slots.
func (t *Table) Occupied() uint64 { return t.occupied }

// Rehashes returns how many times Grow has run.
func (t *Table) Rehashes() uint64 { return t.rehashes }

// LoadFactor returns occupied/size.
func (t *Table) LoadFactor() float64 {
	if t.size == 0 {
		return 0
	}
	return float64(t.occupied) / float64(t.size)
}

// NeedsGrow reports whether the current load factor already exceeds
// types.MaxLoadFactor, matching the check the original performs
// immediately before allocating a new node.
func (t *Table) NeedsGrow() bool {
	return t.LoadFactor() > types.MaxLoadFactor
}

// StartIndex computes the seed index for a child named name of a
// directory whose current table slot is parentHash (spec.md §4.1).
func StartIndex(parentHash uint64, name string, size uint64) uint64 {
	return (parentHash + util.Sum64(name)) % size
}

// Get returns the node occupying slot idx, or nil if it is not occupied.
// Callers that already have idx from ProbeExisting use this to recover
// the node reference.
func (t *Table) Get(idx uint64) *node.Node {
	s := t.slots[idx]
	if s.state != stateOccupied {
		return nil
	}
	return s.node
}

// Place installs n at slot idx, recording idx back into n.Hash and
// incrementing the occupied count. idx must have been returned by
// ProbeForInsert against the same table generation.
func (t *Table) Place(idx uint64, n *node.Node) {
	t.slots[idx] = slot{state: stateOccupied, node: n}
	n.Hash = idx
	t.occupied++
}

// Remove tombstones the slot at idx (spec.md §4.5): the node's storage is
// reclaimed by the tree layer, the table only forgets the slot.
func (t *Table) Remove(idx uint64) {
	t.slots[idx] = slot{state: stateTombstone}
	t.occupied--
}

// Grow doubles the table size and rehashes every node reachable from root
// in pre-order (parent before children), per spec.md §4.6: a child's seed
// index depends on its parent's *new* hash, so parents must be placed
// before their descendants are re-probed. Tombstones do not carry over.
func (t *Table) Grow(root *node.Node) {
	newSize := t.size * 2
	t.slots = make([]slot, newSize)
	t.size = newSize
	t.occupied = 0
	t.rehashes++

	var walk func(n *node.Node)
	walk = func(n *node.Node) {
		if n.Parent == nil {
			n.Hash = 0
			t.slots[0] = slot{state: stateOccupied, node: n}
			t.occupied++
		} else {
			start := StartIndex(n.Parent.Hash, n.Name, t.size)
			idx := t.probeEmptyForRehash(start)
			t.slots[idx] = slot{state: stateOccupied, node: n}
			n.Hash = idx
			t.occupied++
		}
		if n.IsDir() {
			for c := n.FirstChild; c != nil; c = c.RSibling {
				walk(c)
			}
		}
	}
	walk(root)
}

// probeEmptyForRehash scans for the first empty slot starting at start.
// Used only during Grow, where the destination table is freshly allocated
// (no tombstones) and every prior node has already been placed, so no
// duplicate-match check is needed: each node being placed is unique.
func (t *Table) probeEmptyForRehash(start uint64) uint64 {
	h := start
	for t.slots[h].state != stateEmpty {
		h = (h + 1) % t.size
	}
	return h
}
