// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

/*
Package metrics provides Prometheus instrumentation for the page-assembly
engine and the rankers that feed it.

# Overview

The package exposes a small, fixed set of metrics scoped to one concern:
greedy row assembly. There is no HTTP layer, database, or message bus in
this module, so there are no corresponding metric families for them.

# Available Metrics

  - page_rows_assembled_total: rows emitted across all calls (counter)
  - page_pages_assembled_total: recommend_page calls completed (counter)
  - page_pool_exhausted_total: calls that stopped early because no
    collection remained available (counter)
  - page_pruning_short_circuits_total: best-collection searches that
    halted via potential pruning (counter)
  - page_collections_scanned: collections visited per row before the
    search halted (histogram)
  - page_assembly_duration_seconds: duration of a full recommend_page
    call (histogram)
  - page_ease_rank_duration_seconds: duration of a single EASE
    rank_items call (histogram)
  - page_construction_errors_total: construction-time validation
    failures, labelled by reason (counter)

# Metrics Endpoint

Callers that embed this module in a service are expected to register
the default Prometheus registry behind /metrics themselves, e.g.:

	http.Handle("/metrics", promhttp.Handler())

# Usage Example

internal/page records these metrics itself; a caller only runs the engine:

	rows := engine.RecommendPage(numRows, tempPenalty, coolingFactor)
	// AssemblyDuration, PagesAssembled, RowsAssembled and
	// CollectionsScanned have now been updated by the engine.

# Thread Safety

All metric recording is thread-safe; the Prometheus client library
handles synchronization internally. This does not imply the engine
itself is safe for concurrent recommend_page calls — see internal/page.
*/
package metrics
