// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the page-assembly engine and its rankers.
// Scope is intentionally narrow: there is no HTTP layer, no database, no
// event bus in this module, so there is nothing to instrument beyond the
// greedy loop itself and the EASE scoring step that feeds it.

var (
	// RowsAssembled counts rows successfully emitted by the engine.
	RowsAssembled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_rows_assembled_total",
			Help: "Total number of rows emitted across all recommend_page calls",
		},
	)

	// PagesAssembled counts completed recommend_page calls.
	PagesAssembled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_pages_assembled_total",
			Help: "Total number of recommend_page calls completed",
		},
	)

	// PoolExhausted counts calls that stopped early because no collection
	// remained available before num_rows was reached.
	PoolExhausted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_pool_exhausted_total",
			Help: "Total number of recommend_page calls that ended early due to pool exhaustion",
		},
	)

	// PruningShortCircuits counts how many times the best-collection search
	// halted early because the running best already met or beat the next
	// collection's potential.
	PruningShortCircuits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_pruning_short_circuits_total",
			Help: "Total number of best-collection searches that stopped via potential pruning",
		},
	)

	// CollectionsScanned is a histogram of how many collections the
	// best-collection search visited before halting, per row.
	CollectionsScanned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "page_collections_scanned",
			Help:    "Number of collections visited by the best-collection search per row",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	// AssemblyDuration times a full recommend_page call.
	AssemblyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "page_assembly_duration_seconds",
			Help:    "Duration of a full recommend_page call in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// EASERankDuration times a single EASE rank_items call.
	EASERankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "page_ease_rank_duration_seconds",
			Help:    "Duration of a single EASE rank_items call in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ConstructionErrors counts engine construction failures by the
	// validation rule that rejected them.
	ConstructionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_construction_errors_total",
			Help: "Total number of construction-time validation errors",
		},
		[]string{"reason"},
	)
)

// ObserveAssemblyDuration records the wall-clock duration of a recommend_page
// call. Call with time.Since(start) from a deferred closure at the call site.
func ObserveAssemblyDuration(d time.Duration) {
	AssemblyDuration.Observe(d.Seconds())
}

// ObserveEASERankDuration records the wall-clock duration of an EASE
// rank_items call.
func ObserveEASERankDuration(d time.Duration) {
	EASERankDuration.Observe(d.Seconds())
}
