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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfs/arbor/pkg/arbor/node"
	"github.com/arborfs/arbor/pkg/arbor/types"
)

func TestPlaceAndGet(t *testing.T) {
	tb := New(16)
	n := &node.Node{Name: "a", Kind: types.KindFile}
	tb.Place(5, n)

	assert.Equal(t, uint64(5), n.Hash)
	assert.Equal(t, uint64(1), tb.Occupied())
	assert.Same(t, n, tb.Get(5))
	assert.Nil(t, tb.Get(6))
}

func TestRemoveTombstones(t *testing.T) {
	tb := New(16)
	n := &node.Node{Name: "a", Kind: types.KindFile}
	tb.Place(3, n)
	tb.Remove(3)

	assert.Equal(t, uint64(0), tb.Occupied())
	assert.Nil(t, tb.Get(3))
}

func TestProbeExistingSkipsTombstonesAndStopsAtEmpty(t *testing.T) {
	tb := New(8)
	parent := &node.Node{Kind: types.KindDir}
	a := &node.Node{Name: "a", Kind: types.KindFile, Parent: parent}
	b := &node.Node{Name: "b", Kind: types.KindFile, Parent: parent}

	tb.Place(0, a)
	tb.Place(1, b)
	tb.Remove(0) // tombstone at 0

	idx, found, steps := tb.ProbeExisting(0, "b", parent)
	require.True(t, found)
	assert.Equal(t, uint64(1), idx)
	assert.Equal(t, 2, steps)

	_, found, _ = tb.ProbeExisting(0, "missing", parent)
	assert.False(t, found)
}

func TestProbeForInsertDetectsDuplicate(t *testing.T) {
	tb := New(8)
	parent := &node.Node{Kind: types.KindDir}
	a := &node.Node{Name: "a", Kind: types.KindFile, Parent: parent}
	tb.Place(2, a)

	idx, exists, _ := tb.ProbeForInsert(2, "a", parent)
	assert.True(t, exists)
	assert.Equal(t, uint64(2), idx)

	idx, exists, _ = tb.ProbeForInsert(2, "new", parent)
	assert.False(t, exists)
	assert.Equal(t, uint64(3), idx) // first empty slot after the occupied one
}

func TestNeedsGrowAndLoadFactor(t *testing.T) {
	tb := New(3)
	parent := &node.Node{Kind: types.KindDir}
	assert.False(t, tb.NeedsGrow())

	tb.Place(0, &node.Node{Name: "a", Parent: parent})
	tb.Place(1, &node.Node{Name: "b", Parent: parent})
	assert.InDelta(t, 2.0/3.0, tb.LoadFactor(), 1e-9)
	assert.False(t, tb.NeedsGrow())

	tb.Place(2, &node.Node{Name: "c", Parent: parent})
	assert.True(t, tb.NeedsGrow())
}

func TestGrowRehashesPreOrderAndPreservesLookup(t *testing.T) {
	tb := New(4)
	root := &node.Node{Kind: types.KindDir}
	tb.Place(0, root)

	d := &node.Node{Name: "d", Kind: types.KindDir, Parent: root}
	start := StartIndex(root.Hash, "d", tb.Size())
	idx, _, _ := tb.ProbeForInsert(start, "d", root)
	tb.Place(idx, d)
	root.FirstChild = d

	f := &node.Node{Name: "f", Kind: types.KindFile, Parent: d}
	start = StartIndex(d.Hash, "f", tb.Size())
	idx, _, _ = tb.ProbeForInsert(start, "f", d)
	tb.Place(idx, f)
	d.FirstChild = f

	tb.Grow(root)

	require.Equal(t, uint64(8), tb.Size())
	assert.Equal(t, uint64(1), tb.Rehashes())
	assert.Equal(t, uint64(0), root.Hash)

	start = StartIndex(root.Hash, "d", tb.Size())
	idx, found, _ := tb.ProbeExisting(start, "d", root)
	require.True(t, found)
	assert.Same(t, d, tb.Get(idx))
	assert.Equal(t, idx, d.Hash)

	start = StartIndex(d.Hash, "f", tb.Size())
	idx, found, _ = tb.ProbeExisting(start, "f", d)
	require.True(t, found)
	assert.Same(t, f, tb.Get(idx))
}
