// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package page

import (
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/pageassembly/internal/logging"
	"github.com/tomtom215/pageassembly/internal/metrics"
)

// Row is one emitted (collection, top-K items) pair, reported in the
// caller's original collection numbering.
type Row struct {
	// CollectionIndex indexes into the collections slice the engine was
	// constructed with, not the engine's internal potential-sorted order.
	CollectionIndex int
	// Items is the row's top-K item indices, at most len(PositionMask)
	// of them and all drawn from collections[CollectionIndex].Items().
	Items []int
}

// Engine is the page-assembly engine: a fixed set of Collections
// reordered internally by descending potential, a temperature tracker, a
// position mask, and a per-collection availability bit-vector. It
// mutates its own state during RecommendPage and is not safe to share
// across concurrent calls; independent Engine instances may run in
// parallel over disjoint state.
type Engine struct {
	// collections is stored in internally-chosen (descending-potential)
	// order.
	collections []*Collection
	// originalIndex[i] maps the engine's internal index i back to the
	// caller-visible index the collection had in the constructor's input
	// slice.
	originalIndex []int
	// potentials[i] is collections[i]'s score-at-zero-temperature upper
	// bound, in the same descending order as collections.
	potentials []float64
	// available[i] tracks whether collections[i] has not yet been
	// emitted. Availability is monotonic: once false, it is never set
	// true again within one RecommendPage call.
	available []bool

	mask  []float64
	temps *temperatureTracker
	n     int
}

var _ fmt.Stringer = (*Engine)(nil)

// String implements fmt.Stringer for debug logging.
func (e *Engine) String() string {
	return fmt.Sprintf("page.Engine{collections=%d, n=%d}", len(e.collections), e.n)
}

// NewEngine constructs an engine over collections with the given
// position mask: it derives N, computes each collection's potential,
// sorts collections by descending potential while recording the
// permutation back to caller-visible indices, and initialises
// temperatures to zero with every collection available.
func NewEngine(collections []*Collection, mask []float64) (*Engine, error) {
	if len(mask) == 0 {
		metrics.ConstructionErrors.WithLabelValues("empty_position_mask").Inc()
		return nil, ErrEmptyPositionMask
	}
	for i, w := range mask {
		if w < 0 {
			metrics.ConstructionErrors.WithLabelValues("negative_mask_weight").Inc()
			return nil, fmt.Errorf("page: position_mask[%d] = %v must be non-negative: %w", i, w, ErrNegativeMaskWeight)
		}
	}

	n := 0
	for _, c := range collections {
		for _, item := range c.items {
			if item+1 > n {
				n = item + 1
			}
		}
	}

	type scored struct {
		collection *Collection
		original   int
		potential  float64
	}
	entries := make([]scored, len(collections))
	for i, c := range collections {
		entries[i] = scored{collection: c, original: i, potential: c.potential(mask)}
	}
	// Stable descending sort by potential: ties keep input order, which
	// keeps results deterministic across repeated construction from
	// identical input.
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].potential > entries[b].potential
	})

	e := &Engine{
		collections:   make([]*Collection, len(entries)),
		originalIndex: make([]int, len(entries)),
		potentials:    make([]float64, len(entries)),
		available:     make([]bool, len(entries)),
		mask:          append([]float64(nil), mask...),
		temps:         newTemperatureTracker(n),
		n:             n,
	}
	for i, s := range entries {
		e.collections[i] = s.collection
		e.originalIndex[i] = s.original
		e.potentials[i] = s.potential
		e.available[i] = true
	}

	logging.Debug().Int("collections", len(e.collections)).Int("n", n).Msg("page engine constructed")
	return e, nil
}

// N returns the derived item universe size, 1 + the largest item index
// seen across all collections.
func (e *Engine) N() int { return e.n }

// RecommendPage executes up to numRows emission steps and returns the
// ordered list of rows. It stops whichever comes first: numRows rows
// emitted, or no available collection remains — pool exhaustion is not
// an error.
func (e *Engine) RecommendPage(numRows int, tempPenalty, coolingFactor float64) []Row {
	start := time.Now()
	defer func() { metrics.ObserveAssemblyDuration(time.Since(start)) }()

	// Every call starts from fresh state: all collections available and
	// all temperatures at zero.
	for i := range e.available {
		e.available[i] = true
	}
	e.temps = newTemperatureTracker(e.n)

	rows := make([]Row, 0, numRows)
	for row := 0; row < numRows; row++ {
		best, scanned, found := e.findBestCollection(tempPenalty)
		metrics.CollectionsScanned.Observe(float64(scanned))
		if !found {
			logging.Debug().Int("rows_emitted", len(rows)).Int("num_rows", numRows).Msg("collection pool exhausted before num_rows reached")
			metrics.PoolExhausted.Inc()
			break
		}

		k := len(e.mask)
		items := e.collections[best].topK(e.temps.snapshot(), k, tempPenalty)
		e.available[best] = false
		e.temps.update(items, coolingFactor)

		rows = append(rows, Row{CollectionIndex: e.originalIndex[best], Items: items})
		metrics.RowsAssembled.Inc()
		logging.Debug().Int("row", row).Int("collection_index", e.originalIndex[best]).Int("item_count", len(items)).Msg("row emitted")
	}

	metrics.PagesAssembled.Inc()
	return rows
}

// findBestCollection implements the potential-pruned search: iterate
// collections in descending-potential order, maintaining the
// running best (index, score) among available collections, and halt as
// soon as the running best already meets or exceeds the next collection's
// potential — no later collection, visited in descending-potential order,
// can beat it. Returns the internal index of the best collection, how
// many collections were scanned, and whether any were available at all.
func (e *Engine) findBestCollection(tempPenalty float64) (bestIdx int, scanned int, found bool) {
	bestVal := 0.0
	bestIdx = -1
	temps := e.temps.snapshot()

	for i, c := range e.collections {
		if !e.available[i] {
			continue
		}
		if found && bestVal >= e.potentials[i] {
			metrics.PruningShortCircuits.Inc()
			break
		}
		scanned++
		val := c.score(temps, e.mask, tempPenalty)
		if !found || val > bestVal {
			bestVal = val
			bestIdx = i
			found = true
		}
	}
	return bestIdx, scanned, found
}

// RecommendAll is the simplest possible call shape for callers that don't
// need per-collection is_sorted control: build collections from raw
// item-score pairs (each implicitly unsorted) and run a full page. This
// mirrors the original Rust PyO3 binding's recommend(item_scores,
// items_in_collections, num_rows) entry point (original_source/src/lib.rs);
// that binding itself is a host-language wrapper and not reimplemented
// here, but its call shape is worth offering natively.
func RecommendAll(itemScores []float64, itemsInCollections [][]int, cfg Config) ([]Row, error) {
	n := len(itemScores)
	collections := make([]*Collection, len(itemsInCollections))
	for i, items := range itemsInCollections {
		scores := make([]float64, len(items))
		for j, item := range items {
			if item < 0 || item >= n {
				return nil, fmt.Errorf("page: collection %d item %d outside [0, %d): %w", i, item, n, ErrItemOutOfRange)
			}
			scores[j] = itemScores[item]
		}
		c, err := NewCollection(items, scores, false, n)
		if err != nil {
			return nil, fmt.Errorf("page: building collection %d: %w", i, err)
		}
		collections[i] = c
	}
	engine, err := NewEngine(collections, cfg.PositionMask)
	if err != nil {
		return nil, fmt.Errorf("page: constructing engine: %w", err)
	}
	return engine.RecommendPage(cfg.NumRows, cfg.TempPenalty, cfg.CoolingFactor), nil
}
