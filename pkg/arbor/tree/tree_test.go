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

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfs/arbor/pkg/arbor/hashindex"
	"github.com/arborfs/arbor/pkg/arbor/types"
)

func TestNewRoot(t *testing.T) {
	root := NewRoot()
	assert.True(t, root.IsRoot())
	assert.True(t, root.IsDir())
	assert.Equal(t, uint64(0), root.Hash)
}

func TestNewChildPrependsSiblingList(t *testing.T) {
	parent := NewRoot()
	a := NewChild(parent, "a", types.KindFile)
	b := NewChild(parent, "b", types.KindFile)

	require.Equal(t, 2, parent.NChildren)
	assert.Same(t, b, parent.FirstChild)
	assert.Same(t, a, b.RSibling)
	assert.Same(t, b, a.LSibling)
	assert.Nil(t, b.LSibling)
	assert.Nil(t, a.RSibling)
	assert.Equal(t, []byte{}, a.Payload)
}

func TestDeleteSplicesSiblingListAndTombstonesSlot(t *testing.T) {
	tb := hashindex.New(16)
	root := NewRoot()
	tb.Place(0, root)

	a := NewChild(root, "a", types.KindFile)
	start := hashindex.StartIndex(root.Hash, "a", tb.Size())
	idx, _, _ := tb.ProbeForInsert(start, "a", root)
	tb.Place(idx, a)

	b := NewChild(root, "b", types.KindFile)
	start = hashindex.StartIndex(root.Hash, "b", tb.Size())
	idx, _, _ = tb.ProbeForInsert(start, "b", root)
	tb.Place(idx, b)

	// b is head, a is tail; delete the head and confirm splicing.
	bHash := b.Hash
	Delete(tb, b)
	assert.Same(t, a, root.FirstChild)
	assert.Nil(t, a.LSibling)
	assert.Equal(t, 1, root.NChildren)
	assert.Nil(t, tb.Get(bHash))
}

func TestDeleteRecursesIntoDirectories(t *testing.T) {
	tb := hashindex.New(16)
	root := NewRoot()
	tb.Place(0, root)

	d := NewChild(root, "d", types.KindDir)
	start := hashindex.StartIndex(root.Hash, "d", tb.Size())
	idx, _, _ := tb.ProbeForInsert(start, "d", root)
	tb.Place(idx, d)

	f := NewChild(d, "f", types.KindFile)
	start = hashindex.StartIndex(d.Hash, "f", tb.Size())
	idx, _, _ = tb.ProbeForInsert(start, "f", d)
	tb.Place(idx, f)

	Delete(tb, d)
	assert.Equal(t, 0, root.NChildren)
	assert.Equal(t, uint64(1), tb.Occupied()) // only root remains
}

func TestFindAllAndFullPath(t *testing.T) {
	root := NewRoot()
	a := NewChild(root, "a", types.KindDir)
	NewChild(a, "x", types.KindFile)
	b := NewChild(root, "b", types.KindDir)
	NewChild(b, "x", types.KindFile)

	matches := FindAll(root, "x")
	require.Len(t, matches, 2)

	paths := []string{FullPath(matches[0]), FullPath(matches[1])}
	assert.ElementsMatch(t, []string{"/a/x", "/b/x"}, paths)
	assert.Equal(t, "", FullPath(root))
}
