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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/arborfs/arbor/cmd/arbor-cli/internal/cli"
	"github.com/arborfs/arbor/internal/config"
	"github.com/arborfs/arbor/internal/metrics"
	"github.com/arborfs/arbor/pkg/arbor/namespace"
)

// Version metadata. Overridden at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	statsOnExit := flag.Bool("stats", false, "print a metrics snapshot to stderr on exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("arbor-cli %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		die(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	m := metrics.New(nil)
	ns, err := namespace.New(namespace.Options{
		TableSize:            cfg.TableSize,
		CompressionThreshold: cfg.CompressionThreshold,
		PathCacheSize:        cfg.PathCacheSize,
		Metrics:              m,
		Logger:               logger,
	})
	if err != nil {
		die(err)
	}

	cli.Run(os.Stdin, os.Stdout, ns)

	if *statsOnExit {
		b, err := json.Marshal(m.Snapshot())
		if err == nil {
			fmt.Fprintln(os.Stderr, string(b))
		}
	}
}

func die(err error) {
	fmt.Fprintln(os.Stderr, "arbor-cli:", err)
	os.Exit(1)
}
