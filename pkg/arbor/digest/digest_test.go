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

package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentDeterministic(t *testing.T) {
	a := Content([]byte("hello"))
	b := Content([]byte("hello"))
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // 32 bytes hex-encoded
}

func TestContentDiffersOnChange(t *testing.T) {
	a := Content([]byte("hello"))
	b := Content([]byte("hellp"))
	assert.NotEqual(t, a, b)
}

func TestContentEmpty(t *testing.T) {
	a := Content(nil)
	assert.Len(t, a, 64)
}
