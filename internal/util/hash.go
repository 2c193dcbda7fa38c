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

// Package util holds small helpers shared by the hash index and the
// namespace façade.
package util

import "github.com/cespare/xxhash/v2"

// Sum64 hashes name into a 64-bit digest. Deterministic and seedless: the
// table index for a child is (parent.Hash + Sum64(name)) mod table size.
func Sum64(name string) uint64 {
	return xxhash.Sum64String(name)
}
