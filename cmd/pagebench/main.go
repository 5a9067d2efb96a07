// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

// Command pagebench is a benchmark and demo harness for the page-assembly
// engine, in the spirit of the original Rust implementation's main.rs: it
// builds random collections, runs one recommend_page call, and prints the
// rows and elapsed time. It is explicitly a collaborator outside the
// tested domain core, so it is not unit-tested.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/pageassembly/internal/logging"
	"github.com/tomtom215/pageassembly/internal/page"
)

// benchConfig is the small schema pagebench loads; it does not use
// page.Config, and the position mask is fixed in runBenchmark.
// Unlike the server's layered koanf config, this one has no nested
// per-algorithm sections: there is exactly one algorithm in scope.
type benchConfig struct {
	NumCollections     int     `koanf:"num_collections"`
	ItemsPerCollection int     `koanf:"items_per_collection"`
	NumItems           int     `koanf:"num_items"`
	NumRows            int     `koanf:"num_rows"`
	TempPenalty        float64 `koanf:"temp_penalty"`
	CoolingFactor      float64 `koanf:"cooling_factor"`
	SortedFraction     float64 `koanf:"sorted_fraction"`
	Seed               int64   `koanf:"seed"`
}

func defaultBenchConfig() benchConfig {
	return benchConfig{
		NumCollections:     200,
		ItemsPerCollection: 100,
		NumItems:           5000,
		NumRows:            30,
		TempPenalty:        0.1,
		CoolingFactor:      0.85,
		SortedFraction:     0.1,
		Seed:               1,
	}
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file overriding benchmark defaults")
	logLevel := flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flag.Parse()

	logging.Init(logging.Config{Level: *logLevel, Format: "console"})

	cfg, err := loadBenchConfig(*configPath)
	if err != nil {
		logging.Error().Err(err).Msg("failed to load benchmark config")
		os.Exit(1)
	}

	rows, elapsed, err := runBenchmark(cfg)
	if err != nil {
		logging.Error().Err(err).Msg("benchmark run failed")
		os.Exit(1)
	}

	for i, r := range rows {
		fmt.Printf("Row %d: Collection %d\n", i+1, r.CollectionIndex)
		fmt.Printf("Items: %v\n", r.Items)
	}
	fmt.Printf("Elapsed: %s\n", elapsed)
}

// loadBenchConfig starts from defaultBenchConfig and layers an optional
// YAML file and PAGEBENCH_-prefixed environment variables on top, the same
// koanf stack the server uses elsewhere in this repository applied to a
// far smaller schema.
func loadBenchConfig(path string) (benchConfig, error) {
	cfg := defaultBenchConfig()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PAGEBENCH_", ".", envTransform), nil); err != nil {
		return cfg, fmt.Errorf("loading environment overrides: %w", err)
	}

	// k only holds keys explicitly set by the file/env layers; unmarshalling
	// onto the already-defaulted cfg leaves untouched fields at their
	// default value.
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling benchmark config: %w", err)
	}
	return cfg, nil
}

// envTransform maps PAGEBENCH_NUM_ROWS to the koanf key num_rows.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PAGEBENCH_"))
}

// runBenchmark builds random collections per cfg, constructs an engine,
// and times one recommend_page call.
func runBenchmark(cfg benchConfig) ([]page.Row, time.Duration, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	collections := make([]*page.Collection, cfg.NumCollections)
	for i := range collections {
		items := randomIndices(rng, cfg.ItemsPerCollection, cfg.NumItems)
		scores := randomScores(rng, cfg.ItemsPerCollection)
		isSorted := rng.Float64() < cfg.SortedFraction
		c, err := page.NewCollection(items, scores, isSorted, cfg.NumItems)
		if err != nil {
			return nil, 0, fmt.Errorf("building collection %d: %w", i, err)
		}
		collections[i] = c
	}

	mask := page.GeometricPositionMask(3, 0.5)
	engine, err := page.NewEngine(collections, mask)
	if err != nil {
		return nil, 0, fmt.Errorf("constructing engine: %w", err)
	}

	start := time.Now()
	rows := engine.RecommendPage(cfg.NumRows, cfg.TempPenalty, cfg.CoolingFactor)
	return rows, time.Since(start), nil
}

func randomScores(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// randomIndices draws n distinct item indices out of [0, high). Unlike the
// original Rust benchmark (which allows duplicate indices within a
// collection and simply tolerates the resulting skew), this keeps the
// invariant that no Collection repeats an item within itself.
func randomIndices(rng *rand.Rand, n, high int) []int {
	if n > high {
		n = high
	}
	perm := rng.Perm(high)
	return append([]int(nil), perm[:n]...)
}
