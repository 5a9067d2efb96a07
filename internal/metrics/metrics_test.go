// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRowsAssembledCounter(t *testing.T) {
	before := testutil.ToFloat64(RowsAssembled)
	RowsAssembled.Add(3)
	after := testutil.ToFloat64(RowsAssembled)
	if after-before != 3 {
		t.Fatalf("expected RowsAssembled to increase by 3, got delta %v", after-before)
	}
}

func TestPagesAssembledCounter(t *testing.T) {
	before := testutil.ToFloat64(PagesAssembled)
	PagesAssembled.Inc()
	after := testutil.ToFloat64(PagesAssembled)
	if after-before != 1 {
		t.Fatalf("expected PagesAssembled to increase by 1, got delta %v", after-before)
	}
}

func TestPoolExhaustedCounter(t *testing.T) {
	before := testutil.ToFloat64(PoolExhausted)
	PoolExhausted.Inc()
	after := testutil.ToFloat64(PoolExhausted)
	if after-before != 1 {
		t.Fatalf("expected PoolExhausted to increase by 1, got delta %v", after-before)
	}
}

func TestPruningShortCircuitsCounter(t *testing.T) {
	before := testutil.ToFloat64(PruningShortCircuits)
	PruningShortCircuits.Inc()
	after := testutil.ToFloat64(PruningShortCircuits)
	if after-before != 1 {
		t.Fatalf("expected PruningShortCircuits to increase by 1, got delta %v", after-before)
	}
}

func TestConstructionErrorsByReason(t *testing.T) {
	before := testutil.ToFloat64(ConstructionErrors.WithLabelValues("item_index_out_of_range"))
	ConstructionErrors.WithLabelValues("item_index_out_of_range").Inc()
	after := testutil.ToFloat64(ConstructionErrors.WithLabelValues("item_index_out_of_range"))
	if after-before != 1 {
		t.Fatalf("expected ConstructionErrors[item_index_out_of_range] to increase by 1, got delta %v", after-before)
	}
}

func TestObserveAssemblyDuration(t *testing.T) {
	// Histogram metrics don't support ToFloat64 directly; exercising the
	// recorder is enough to catch a panic from a malformed bucket set.
	ObserveAssemblyDuration(5 * time.Millisecond)
}

func TestObserveEASERankDuration(t *testing.T) {
	ObserveEASERankDuration(2 * time.Millisecond)
}

func TestCollectionsScannedObservable(t *testing.T) {
	CollectionsScanned.Observe(7)
}
