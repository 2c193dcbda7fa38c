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

package hashindex

import "github.com/arborfs/arbor/pkg/arbor/node"

// ProbeExisting implements spec.md §4.2's find-existing mode: starting at
// start, skip tombstones; on an occupied slot whose node matches
// (parent, name), that slot is the answer; reaching an empty slot proves
// the key absent (invariant P2) and the search stops.
//
// steps reports how many cells were examined, for metrics.
func (t *Table) ProbeExisting(start uint64, name string, parent *node.Node) (idx uint64, found bool, steps int) {
	h := start
	for {
		steps++
		s := t.slots[h]
		switch s.state {
		case stateEmpty:
			return 0, false, steps
		case stateOccupied:
			if s.node.Parent == parent && s.node.Name == name {
				return h, true, steps
			}
		}
		h = (h + 1) % t.size
	}
}

// ProbeForInsert implements spec.md §4.2's find-insert-slot mode: scan
// until an empty or tombstone slot is found (the insertion point), unless
// an occupied slot matching (parent, name) is found first, in which case
// the key already exists and the caller must fail the create rather than
// treat idx as an insertion point.
func (t *Table) ProbeForInsert(start uint64, name string, parent *node.Node) (idx uint64, alreadyExists bool, steps int) {
	h := start
	for {
		steps++
		s := t.slots[h]
		switch s.state {
		case stateEmpty, stateTombstone:
			return h, false, steps
		case stateOccupied:
			if s.node.Parent == parent && s.node.Name == name {
				return h, true, steps
			}
		}
		h = (h + 1) % t.size
	}
}
