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

// Package digest computes a content-addressed identifier for a file's
// bytes, independent of the structural 64-bit name hash the index uses.
// Backs the additive "checksum" façade operation (SPEC_FULL.md §4).
package digest

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Content returns the hex-encoded BLAKE3 digest of content.
func Content(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}
