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

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotStartsAtZero(t *testing.T) {
	m := New(nil)
	snap := m.Snapshot()
	assert.Zero(t, snap.ProbeP50)
	assert.Zero(t, snap.ProbeCount)
	assert.Zero(t, snap.Rehashes)
}

func TestObserveProbePercentiles(t *testing.T) {
	m := New(nil)
	for _, steps := range []int{1, 2, 3, 4, 5} {
		m.ObserveProbe(steps)
	}
	snap := m.Snapshot()
	assert.Equal(t, 5, snap.ProbeCount)
	assert.Equal(t, int64(3), snap.ProbeP50)
}

func TestObserveRehash(t *testing.T) {
	m := New(nil)
	m.ObserveRehash()
	m.ObserveRehash()
	assert.Equal(t, uint64(2), m.Snapshot().Rehashes)
}

func TestObserveOpDoesNotPanicWithoutRegistry(t *testing.T) {
	m := New(nil)
	m.ObserveOp("create", true)
	m.ObserveOp("create", false)
}
