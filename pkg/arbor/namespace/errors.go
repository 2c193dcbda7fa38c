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

package namespace

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the namespace façade. Every caller-visible
// failure mode reduces to one of these; the CLI dispatcher (spec.md §6)
// maps all of them to the single "no" response, but keeping them distinct
// internally lets tests and logs say what actually went wrong.
var (
	// ErrNotFound means no node exists at the given path.
	ErrNotFound = errors.New("arbor: path not found")
	// ErrExists means a node already occupies the given (parent, name).
	ErrExists = errors.New("arbor: path already exists")
	// ErrNotDir means an operation that requires a directory found a file.
	ErrNotDir = errors.New("arbor: not a directory")
	// ErrNotFile means an operation that requires a file found a directory.
	ErrNotFile = errors.New("arbor: not a file")
	// ErrNotEmpty means a non-recursive delete targeted a directory that
	// still has children (spec.md §4.5).
	ErrNotEmpty = errors.New("arbor: directory not empty")
	// ErrLimit means MaxChildren or MaxDepth would be exceeded.
	ErrLimit = errors.New("arbor: limit exceeded")
	// ErrEmptyPath means the path had no usable segments.
	ErrEmptyPath = errors.New("arbor: empty path")
)
