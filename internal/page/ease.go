// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package page

import (
	"fmt"
	"time"

	"github.com/tomtom215/pageassembly/internal/logging"
	"github.com/tomtom215/pageassembly/internal/metrics"
)

// historySentinel is the score assigned to history items after masking.
// Any value reliably below every legitimate score works; this package
// does not scale it with |history| or the magnitude of W's entries.
const historySentinel = -1e9

// EaseRanker scores items against a precomputed N×N item-item affinity
// matrix (EASE: Embarrassingly Shallow Autoencoders). It implements
// Ranker, taking a history of item indices as input.
//
// This is grounded in internal/recommend/algorithms/ease.go's Predict
// step, summing learned weights over a user's history, but carries none
// of that file's Train/Cholesky machinery: training a model is out of
// scope here, so W is always supplied precomputed by the caller.
type EaseRanker struct {
	matrix [][]float64
	n      int
}

var _ Ranker = (*EaseRanker)(nil)

// NewEaseRanker validates that matrix is square and returns a ranker over
// it. matrix is not copied; the caller must not mutate it afterwards.
func NewEaseRanker(matrix [][]float64) (*EaseRanker, error) {
	n := len(matrix)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("page: ease matrix row %d has length %d, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
	}
	return &EaseRanker{matrix: matrix, n: n}, nil
}

// N returns the size of the item universe this ranker scores over.
func (e *EaseRanker) N() int { return e.n }

// RankItems scores the item universe against a history: for each item i
// in history, accumulate W[i][j] into scores[j] for every j, then mask
// out every history item by setting its score to historySentinel. input
// must be a []int of item indices in [0, N).
func (e *EaseRanker) RankItems(input interface{}) ([]float64, error) {
	history, ok := input.([]int)
	if !ok {
		return nil, fmt.Errorf("page: EaseRanker.RankItems expects []int, got %T", input)
	}
	start := time.Now()
	defer func() { metrics.ObserveEASERankDuration(time.Since(start)) }()

	scores := make([]float64, e.n)
	for _, i := range history {
		if i < 0 || i >= e.n {
			return nil, fmt.Errorf("page: history item %d outside [0, %d): %w", i, e.n, ErrItemOutOfRange)
		}
		row := e.matrix[i]
		for j, w := range row {
			scores[j] += w
		}
	}
	for _, i := range history {
		scores[i] = historySentinel
	}
	logging.Debug().Int("history_len", len(history)).Int("n", e.n).Msg("ease rank_items complete")
	return scores, nil
}

// Recommend is the top-level EASE convenience entrypoint: it chains
// RankItems -> BuildCollections -> Engine for a history input, building
// each collection definition as unsorted per the EASE contract.
func (e *EaseRanker) Recommend(history []int, itemsInCollections [][]int, cfg Config) ([]Row, error) {
	defs := make([]CollectionDefinition, len(itemsInCollections))
	for i, items := range itemsInCollections {
		defs[i] = CollectionDefinition{Items: items, IsSorted: false}
	}
	return RecommendPage(e, history, defs, cfg)
}
