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

// Package types holds the value types and limits shared across the hash
// index, tree and namespace façade layers.
package types

// Kind distinguishes a directory node from a file node. Immutable after
// creation (spec.md §3).
type Kind uint8

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

const (
	// MaxChildren is the fan-out bound: no directory may hold more
	// children (spec.md §3 invariant 7).
	MaxChildren = 1024

	// MaxDepth is the maximum number of edges from the root to any node
	// (spec.md §3 invariant 6).
	MaxDepth = 255

	// InitialTableSize is the starting slot count, large enough to start
	// well under the max load factor for typical workloads.
	InitialTableSize = 131072

	// MaxLoadFactor is the load ratio that triggers a grow-and-rehash
	// before the next insertion (spec.md §3 invariant 5).
	MaxLoadFactor = 2.0 / 3.0
)

// RootName is the root node's name. It is never a path segment and never
// appears in any rendered full path.
const RootName = ""
