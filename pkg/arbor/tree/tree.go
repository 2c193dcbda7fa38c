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

// Package tree implements the sibling-list splicing, subtree deletion,
// name search and path materialisation described in spec.md §4.4, §4.5,
// §4.7 and §4.8. It owns the parent/child/sibling pointer discipline; the
// hash index only ever holds non-owning references into this tree.
package tree

import (
	"strings"

	"github.com/arborfs/arbor/pkg/arbor/hashindex"
	"github.com/arborfs/arbor/pkg/arbor/node"
	"github.com/arborfs/arbor/pkg/arbor/types"
)

// NewRoot creates the tree root: parent-less, hash 0, empty name.
func NewRoot() *node.Node {
	return &node.Node{
		Hash: 0,
		Name: types.RootName,
		Kind: types.KindDir,
	}
}

// NewChild allocates a node named name under parent and splices it at the
// head of parent's child list (new children prepend, spec.md §4.4). It
// does not touch the hash table; the caller places the returned node via
// Table.Place once it knows the target slot.
func NewChild(parent *node.Node, name string, kind types.Kind) *node.Node {
	n := &node.Node{
		Name:   name,
		Kind:   kind,
		Parent: parent,
	}
	if kind == types.KindFile {
		n.Payload = []byte{}
	}

	n.LSibling = nil
	n.RSibling = parent.FirstChild
	if n.RSibling != nil {
		n.RSibling.LSibling = n
	}
	parent.FirstChild = n
	parent.NChildren++

	return n
}

// Delete removes n and, if n is a directory, its entire subtree, per
// spec.md §4.5: children are torn down bottom-up first, then n's own
// slot is tombstoned, its sibling-list edges are spliced out and its
// parent's child count is decremented.
func Delete(t *hashindex.Table, n *node.Node) {
	if n.IsDir() {
		for n.FirstChild != nil {
			Delete(t, n.FirstChild)
		}
	}

	t.Remove(n.Hash)

	if n.LSibling != nil {
		n.LSibling.RSibling = n.RSibling
	} else {
		n.Parent.FirstChild = n.RSibling
	}
	if n.RSibling != nil {
		n.RSibling.LSibling = n.LSibling
	}
	n.Parent.NChildren--

	// Help the garbage collector let go of the subtree promptly.
	n.Parent, n.LSibling, n.RSibling, n.FirstChild, n.Payload = nil, nil, nil, nil, nil
}

// FindAll walks the subtree rooted at start in pre-order, collecting every
// node whose name equals name. Order is unspecified (spec.md §4.7);
// callers that need a stable order sort afterward.
func FindAll(start *node.Node, name string) []*node.Node {
	var matches []*node.Node
	var walk func(n *node.Node)
	walk = func(n *node.Node) {
		if n.Name == name {
			matches = append(matches, n)
		}
		if n.IsDir() {
			for c := n.FirstChild; c != nil; c = c.RSibling {
				walk(c)
			}
		}
	}
	walk(start)
	return matches
}

// FullPath walks from n to the root, collecting names, and renders the
// slash-separated path (spec.md §4.8). The root contributes nothing; a
// root node itself renders as "".
func FullPath(n *node.Node) string {
	var segments []string
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		segments = append(segments, cur.Name)
	}
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segments[i])
	}
	return b.String()
}
