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

// Package cli owns the external collaborators spec.md §1 keeps out of the
// core: line splitting, verb dispatch and response formatting over the
// stdin/stdout command stream described in spec.md §6.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arborfs/arbor/pkg/arbor/namespace"
	"github.com/arborfs/arbor/pkg/arbor/types"
)

const maxLineSize = 1 << 20

// Run reads line-oriented commands from r and writes responses to w,
// driving ns, until it reads "exit" or r is exhausted. It reports
// whether an "exit" command was seen, so the caller can set the process
// exit status accordingly (spec.md §6: "exit ... terminates the process
// with status 0").
func Run(r io.Reader, w io.Writer, ns *namespace.Namespace) (exited bool) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		verb, rest := splitVerb(line)

		switch verb {
		case "create":
			dispatchCreate(bw, ns, rest, types.KindFile)
		case "create_dir":
			dispatchCreate(bw, ns, rest, types.KindDir)
		case "delete":
			dispatchDelete(bw, ns, rest, false)
		case "delete_r":
			dispatchDelete(bw, ns, rest, true)
		case "read":
			dispatchRead(bw, ns, rest)
		case "write":
			dispatchWrite(bw, ns, rest)
		case "find":
			dispatchFind(bw, ns, rest)
		case "checksum":
			dispatchChecksum(bw, ns, rest)
		case "stats":
			dispatchStats(bw, ns)
		case "exit":
			ns.Shutdown()
			bw.Flush()
			return true
		default:
			writeNo(bw)
		}
		// Flush before the next line is read, so command n's output is
		// fully visible before command n+1 begins (spec.md §5).
		bw.Flush()
	}
	return false
}

func writeOK(w *bufio.Writer) {
	fmt.Fprintln(w, "ok")
}

func writeNo(w *bufio.Writer) {
	fmt.Fprintln(w, "no")
}

func dispatchCreate(w *bufio.Writer, ns *namespace.Namespace, path string, kind types.Kind) {
	if err := ns.Create(path, kind); err != nil {
		writeNo(w)
		return
	}
	writeOK(w)
}

func dispatchDelete(w *bufio.Writer, ns *namespace.Namespace, path string, recursive bool) {
	if err := ns.Delete(path, recursive); err != nil {
		writeNo(w)
		return
	}
	writeOK(w)
}

func dispatchRead(w *bufio.Writer, ns *namespace.Namespace, path string) {
	data, err := ns.Read(path)
	if err != nil {
		writeNo(w)
		return
	}
	fmt.Fprintf(w, "contenuto %s\n", data)
}

func dispatchWrite(w *bufio.Writer, ns *namespace.Namespace, rest string) {
	path, data, ok := parseWriteArgs(rest)
	if !ok {
		writeNo(w)
		return
	}
	n, err := ns.Write(path, []byte(data))
	if err != nil {
		writeNo(w)
		return
	}
	fmt.Fprintf(w, "ok %d\n", n)
}

func dispatchFind(w *bufio.Writer, ns *namespace.Namespace, name string) {
	matches := ns.Find(name)
	if len(matches) == 0 {
		writeNo(w)
		return
	}
	for _, p := range matches {
		fmt.Fprintf(w, "ok %s\n", p)
	}
}

func dispatchChecksum(w *bufio.Writer, ns *namespace.Namespace, path string) {
	sum, err := ns.Checksum(path)
	if err != nil {
		writeNo(w)
		return
	}
	fmt.Fprintf(w, "ok %s\n", sum)
}

// dispatchStats prints a one-line JSON metrics snapshot to stderr, the
// same shape the "--stats" flag prints on exit (main.go), then reports
// "ok" on stdout like any other command (SPEC_FULL.md §6).
func dispatchStats(w *bufio.Writer, ns *namespace.Namespace) {
	b, err := json.Marshal(ns.Metrics().Snapshot())
	if err != nil {
		writeNo(w)
		return
	}
	fmt.Fprintln(os.Stderr, string(b))
	writeOK(w)
}
