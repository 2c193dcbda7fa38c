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

// Package node defines the tree entry record shared by the hash index and
// the tree operations that splice, delete and walk it.
package node

import "github.com/arborfs/arbor/pkg/arbor/types"

// Node is one entry in the namespace tree. The root has Parent == nil,
// Name == types.RootName and Hash == 0; every other node's Hash is the slot index at
// which it currently resides in the owning Table, kept in sync by every
// insert and every rehash.
type Node struct {
	Hash uint64
	Name string
	Kind types.Kind

	NChildren int

	Parent     *Node
	LSibling   *Node
	RSibling   *Node
	FirstChild *Node // directories only; nil if empty

	// Payload is the file's stored bytes, possibly zstd-compressed; see
	// Compressed and RawLen. Directories never set this.
	Payload    []byte
	Compressed bool
	RawLen     int
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool { return n.Kind == types.KindDir }

// IsRoot reports whether n is the tree root.
func (n *Node) IsRoot() bool { return n.Parent == nil }
