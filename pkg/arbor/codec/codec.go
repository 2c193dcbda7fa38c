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

// Package codec applies the teacher's L1-cache "compress only if it
// helps, and only above a size threshold" trick to file payloads instead
// of cache entries: write compresses, read decompresses, transparently to
// every caller (SPEC_FULL.md §4, P9).
package codec

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Codec compresses and decompresses payloads above a configurable
// threshold. Safe for concurrent use, though the namespace façade never
// calls it from more than one goroutine at a time (spec.md §5).
type Codec struct {
	threshold int

	encMu sync.Mutex
	enc   *zstd.Encoder

	decMu sync.Mutex
	dec   *zstd.Decoder
}

// New builds a Codec. threshold <= 0 means "always attempt compression".
func New(threshold int) (*Codec, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &Codec{threshold: threshold, enc: enc, dec: dec}, nil
}

// Encode compresses raw if it is at or above the threshold and doing so
// shrinks it; it reports whether the returned bytes are compressed.
func (c *Codec) Encode(raw []byte) (stored []byte, compressed bool) {
	if c.threshold > 0 && len(raw) < c.threshold {
		return raw, false
	}
	c.encMu.Lock()
	comp := c.enc.EncodeAll(raw, nil)
	c.encMu.Unlock()
	if len(comp) < len(raw) {
		return comp, true
	}
	return raw, false
}

// Decode reverses Encode. If compressed is false, stored is returned as-is.
func (c *Codec) Decode(stored []byte, compressed bool) ([]byte, error) {
	if !compressed {
		return stored, nil
	}
	c.decMu.Lock()
	defer c.decMu.Unlock()
	return c.dec.DecodeAll(stored, nil)
}

// Close releases the encoder/decoder.
func (c *Codec) Close() {
	c.enc.Close()
	c.dec.Close()
}
