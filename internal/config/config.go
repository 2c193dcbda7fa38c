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

// Package config captures the environment-variable-driven runtime
// configuration for the namespace façade and CLI.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures all runtime configuration for arbor. Values are sourced
// from environment variables so they can be injected locally via a .env
// file or via platform secrets.
type Config struct {
	// TableSize is the initial hash index slot count.
	TableSize uint64
	// CompressionThreshold is the minimum payload size, in bytes, a
	// write attempts to compress. 0 means "always attempt".
	CompressionThreshold int
	// PathCacheSize is the maximum number of path resolutions cached.
	// 0 disables the cache.
	PathCacheSize int
	// LogLevel controls the minimum level emitted by the default logger.
	LogLevel slog.Level
}

const (
	defaultTableSize            = 131072
	defaultCompressionThreshold = 256
	defaultPathCacheSize        = 4096
	defaultLogLevel             = slog.LevelInfo
)

// Load reads configuration from environment variables, applying defaults
// for anything unset. It never fails on missing values, since every
// field has a sane default; it only fails if a set value cannot be
// parsed or is out of range (a zero table size, a negative threshold or
// cache size).
func Load() (Config, error) {
	// Best-effort load from common .env locations so `go run` from the
	// repo root or from cmd/arbor-cli both pick it up without manual
	// `source`.
	_ = godotenv.Load(".env", "../.env", "../../.env")

	cfg := Config{
		TableSize:            defaultTableSize,
		CompressionThreshold: defaultCompressionThreshold,
		PathCacheSize:        defaultPathCacheSize,
		LogLevel:             defaultLogLevel,
	}

	if raw := strings.TrimSpace(os.Getenv("ARBOR_TABLE_SIZE")); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || v == 0 {
			return Config{}, fmt.Errorf("invalid ARBOR_TABLE_SIZE: %q", raw)
		}
		cfg.TableSize = v
	}

	if raw := strings.TrimSpace(os.Getenv("ARBOR_COMPRESSION_THRESHOLD")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return Config{}, fmt.Errorf("invalid ARBOR_COMPRESSION_THRESHOLD: %q", raw)
		}
		cfg.CompressionThreshold = v
	}

	if raw := strings.TrimSpace(os.Getenv("ARBOR_PATH_CACHE_SIZE")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return Config{}, fmt.Errorf("invalid ARBOR_PATH_CACHE_SIZE: %q", raw)
		}
		cfg.PathCacheSize = v
	}

	if raw := strings.TrimSpace(os.Getenv("ARBOR_LOG_LEVEL")); raw != "" {
		lvl, err := parseLogLevel(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid ARBOR_LOG_LEVEL: %q", raw)
	}
}
