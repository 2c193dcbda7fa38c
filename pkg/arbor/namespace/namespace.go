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

// Package namespace is the façade described in spec.md §4.9: it drives
// path resolution, the probe engine and tree mutation to implement
// create/delete/read/write/find/shutdown (plus the additive checksum),
// and owns the ambient instance state (table, root, cache, codec,
// metrics, logger) rather than relying on package-level globals, per
// spec.md §9's "package them in an instance type" guidance.
package namespace

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arborfs/arbor/internal/metrics"
	"github.com/arborfs/arbor/pkg/arbor/codec"
	"github.com/arborfs/arbor/pkg/arbor/digest"
	"github.com/arborfs/arbor/pkg/arbor/hashindex"
	"github.com/arborfs/arbor/pkg/arbor/node"
	"github.com/arborfs/arbor/pkg/arbor/pathcache"
	"github.com/arborfs/arbor/pkg/arbor/tree"
	"github.com/arborfs/arbor/pkg/arbor/types"
)

// Namespace is one independent instance of the tree + hash index pair,
// plus the ambient collaborators (codec, cache, metrics, logger) that
// make it observable and performant. Not safe for concurrent use from
// more than one goroutine at a time (spec.md §5).
type Namespace struct {
	table *hashindex.Table
	root  *node.Node

	codec   *codec.Codec
	cache   *pathcache.Cache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Options configures a new Namespace. A zero TableSize means
// types.InitialTableSize. A zero CompressionThreshold attempts compression
// on every write, and a zero PathCacheSize disables the path cache.
type Options struct {
	TableSize            uint64
	CompressionThreshold int
	PathCacheSize        int
	Metrics              *metrics.Metrics
	Logger               *slog.Logger
}

// New constructs an empty Namespace: an all-empty table of the
// configured size with the root already placed at slot 0.
func New(opts Options) (*Namespace, error) {
	if opts.TableSize == 0 {
		opts.TableSize = types.InitialTableSize
	}
	c, err := codec.New(opts.CompressionThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "namespace: constructing payload codec")
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	root := tree.NewRoot()
	table := hashindex.New(opts.TableSize)
	table.Place(0, root)

	return &Namespace{
		table:   table,
		root:    root,
		codec:   c,
		cache:   pathcache.New(opts.PathCacheSize),
		metrics: m,
		logger:  logger,
	}, nil
}

// splitSegments implements spec.md §3's resolved path-splitting rule:
// collapse runs of "/" and drop empty segments, mirroring the original's
// strtok(path, "/") splitter. A path with no non-empty segment is
// ErrEmptyPath.
func splitSegments(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	raw := strings.Split(path, "/")
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return nil, ErrEmptyPath
	}
	return segments, nil
}

// resolve implements spec.md §4.3. When creating is true, the final
// segment is inserted as a fresh node of kind; otherwise every segment
// must already exist.
func (ns *Namespace) resolve(segments []string, creating bool, kind types.Kind) (*node.Node, error) {
	current := ns.root
	depth := 0

	for i, seg := range segments {
		last := i == len(segments)-1

		if !current.IsDir() {
			return nil, errors.Wrapf(ErrNotDir, "segment %q", seg)
		}

		if !last {
			if current.NChildren == 0 {
				return nil, ErrNotFound
			}
			if depth == types.MaxDepth {
				return nil, ErrLimit
			}
			start := hashindex.StartIndex(current.Hash, seg, ns.table.Size())
			idx, found, steps := ns.table.ProbeExisting(start, seg, current)
			ns.metrics.ObserveProbe(steps)
			if !found {
				return nil, ErrNotFound
			}
			current = ns.table.Get(idx)
			depth++
			continue
		}

		if creating {
			return ns.createFinal(current, seg, kind, depth)
		}

		if current.NChildren == 0 {
			return nil, ErrNotFound
		}
		start := hashindex.StartIndex(current.Hash, seg, ns.table.Size())
		idx, found, steps := ns.table.ProbeExisting(start, seg, current)
		ns.metrics.ObserveProbe(steps)
		if !found {
			return nil, ErrNotFound
		}
		return ns.table.Get(idx), nil
	}

	// Unreachable: splitSegments never returns an empty slice.
	return nil, ErrEmptyPath
}

// createFinal places a new child named name under parent, per spec.md
// §4.3 step 4 and §4.4. It checks the fan-out and depth limits, looks up
// the insertion slot against the *current* table generation to detect a
// duplicate, grows the table first if the load already exceeds 2/3
// (§4.6), and only then allocates and places the node — so a grow that
// changes parent.Hash is always reflected in the slot the node is
// actually placed at.
func (ns *Namespace) createFinal(parent *node.Node, name string, kind types.Kind, depth int) (*node.Node, error) {
	if parent.NChildren >= types.MaxChildren {
		return nil, ErrLimit
	}
	if depth == types.MaxDepth {
		return nil, ErrLimit
	}

	start := hashindex.StartIndex(parent.Hash, name, ns.table.Size())
	idx, exists, steps := ns.table.ProbeForInsert(start, name, parent)
	ns.metrics.ObserveProbe(steps)
	if exists {
		return nil, ErrExists
	}

	if ns.table.NeedsGrow() {
		ns.table.Grow(ns.root)
		ns.metrics.ObserveRehash()
		start = hashindex.StartIndex(parent.Hash, name, ns.table.Size())
		idx, exists, steps = ns.table.ProbeForInsert(start, name, parent)
		ns.metrics.ObserveProbe(steps)
		if exists {
			return nil, ErrExists
		}
	}

	n := tree.NewChild(parent, name, kind)
	ns.table.Place(idx, n)
	ns.metrics.SetLoadFactor(ns.table.LoadFactor())
	return n, nil
}

// resolveCached is the read/write/checksum entry point: a path-cache hit
// is always trusted, since every mutation that could invalidate a
// resolution (create, delete, shutdown) purges the cache outright
// (spec.md §9 / SPEC_FULL.md P10).
func (ns *Namespace) resolveCached(path string) (*node.Node, error) {
	if n, ok := ns.cache.Get(path); ok {
		return n, nil
	}
	segments, err := splitSegments(path)
	if err != nil {
		return nil, err
	}
	n, err := ns.resolve(segments, false, 0)
	if err != nil {
		return nil, err
	}
	ns.cache.Add(path, n)
	return n, nil
}

// Create adds a node of kind at path. kind distinguishes the create
// (file) and create_dir (directory) verbs of spec.md §6.
func (ns *Namespace) Create(path string, kind types.Kind) error {
	segments, err := splitSegments(path)
	if err != nil {
		ns.metrics.ObserveOp("create", false)
		return err
	}
	_, err = ns.resolve(segments, true, kind)
	if err != nil {
		ns.metrics.ObserveOp("create", false)
		return err
	}
	ns.cache.Purge()
	ns.metrics.ObserveOp("create", true)
	ns.logger.Debug("create", "path", path, "kind", kind.String())
	return nil
}

// Delete removes the node at path, and its subtree if recursive is true.
// A non-recursive delete of a non-empty directory fails with
// ErrNotEmpty (spec.md §4.5).
func (ns *Namespace) Delete(path string, recursive bool) error {
	segments, err := splitSegments(path)
	if err != nil {
		ns.metrics.ObserveOp("delete", false)
		return err
	}
	n, err := ns.resolve(segments, false, 0)
	if err != nil {
		ns.metrics.ObserveOp("delete", false)
		return err
	}
	if n.IsDir() && n.NChildren > 0 && !recursive {
		ns.metrics.ObserveOp("delete", false)
		return ErrNotEmpty
	}
	tree.Delete(ns.table, n)
	ns.cache.Purge()
	ns.metrics.ObserveOp("delete", true)
	ns.logger.Debug("delete", "path", path, "recursive", recursive)
	return nil
}

// Read returns the current content of the file at path.
func (ns *Namespace) Read(path string) ([]byte, error) {
	n, err := ns.resolveCached(path)
	if err != nil {
		ns.metrics.ObserveOp("read", false)
		return nil, err
	}
	if n.IsDir() {
		ns.metrics.ObserveOp("read", false)
		return nil, ErrNotFile
	}
	raw, err := ns.codec.Decode(n.Payload, n.Compressed)
	if err != nil {
		ns.metrics.ObserveOp("read", false)
		return nil, errors.Wrap(err, "namespace: decoding payload")
	}
	ns.metrics.ObserveOp("read", true)
	return raw, nil
}

// Write replaces the content of the file at path with data, compressing
// it above the configured threshold (SPEC_FULL.md §4, P9), and returns
// the byte length of data written (spec.md §6: "ok <N>").
func (ns *Namespace) Write(path string, data []byte) (int, error) {
	n, err := ns.resolveCached(path)
	if err != nil {
		ns.metrics.ObserveOp("write", false)
		return 0, err
	}
	if n.IsDir() {
		ns.metrics.ObserveOp("write", false)
		return 0, ErrNotFile
	}
	stored, compressed := ns.codec.Encode(data)
	n.Payload = stored
	n.Compressed = compressed
	n.RawLen = len(data)
	ns.metrics.ObserveOp("write", true)
	ns.logger.Debug("write", "path", path, "bytes", len(data), "compressed", compressed)
	return len(data), nil
}

// Checksum returns the hex-encoded BLAKE3 digest of the file at path
// (SPEC_FULL.md §4's additive "checksum" operation).
func (ns *Namespace) Checksum(path string) (string, error) {
	n, err := ns.resolveCached(path)
	if err != nil {
		ns.metrics.ObserveOp("checksum", false)
		return "", err
	}
	if n.IsDir() {
		ns.metrics.ObserveOp("checksum", false)
		return "", ErrNotFile
	}
	raw, err := ns.codec.Decode(n.Payload, n.Compressed)
	if err != nil {
		ns.metrics.ObserveOp("checksum", false)
		return "", errors.Wrap(err, "namespace: decoding payload")
	}
	ns.metrics.ObserveOp("checksum", true)
	return digest.Content(raw), nil
}

// Find returns the full path of every node in the tree whose last
// segment equals name, sorted lexicographically ascending (spec.md §4.9,
// P8).
func (ns *Namespace) Find(name string) []string {
	matches := tree.FindAll(ns.root, name)
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, tree.FullPath(m))
	}
	sort.Strings(paths)
	ns.metrics.ObserveOp("find", len(paths) > 0)
	return paths
}

// Shutdown tears down the entire tree below the root and releases the
// codec's resources (spec.md §4.9, §6 "exit").
func (ns *Namespace) Shutdown() {
	for ns.root.FirstChild != nil {
		tree.Delete(ns.table, ns.root.FirstChild)
	}
	ns.cache.Purge()
	ns.codec.Close()
	ns.logger.Debug("shutdown")
}

// Metrics exposes the façade's metrics collector, e.g. for the CLI's
// --stats output.
func (ns *Namespace) Metrics() *metrics.Metrics {
	return ns.metrics
}
