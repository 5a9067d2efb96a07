// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package page

import (
	"fmt"
	"math"
	"sort"
)

// Collection is an immutable bundle of items offered as one candidate row.
// Items may repeat across Collections (that duplication is what the
// temperature tracker exists to penalise) but never within a single
// Collection.
//
// A Collection never mutates after NewCollection returns; the engine tracks
// per-collection availability in its own bit-vector rather than on the
// Collection itself (see Engine).
type Collection struct {
	items    []int
	scores   []float64
	isSorted bool
}

// NewCollection builds a Collection, validating that items and scores have
// matching length and that every item index lies in [0, n). Pass n = -1 to
// skip the range check, for callers that don't yet know N.
func NewCollection(items []int, scores []float64, isSorted bool, n int) (*Collection, error) {
	if len(items) != len(scores) {
		return nil, fmt.Errorf("page: collection has %d items but %d scores: %w", len(items), len(scores), ErrLengthMismatch)
	}
	if n >= 0 {
		for _, it := range items {
			if it < 0 || it >= n {
				return nil, fmt.Errorf("page: item %d outside [0, %d): %w", it, n, ErrItemOutOfRange)
			}
		}
	}
	// Defensive copies: Collections are immutable after construction, so
	// the caller's backing arrays must not be able to mutate them later.
	itemsCopy := append([]int(nil), items...)
	scoresCopy := append([]float64(nil), scores...)
	return &Collection{items: itemsCopy, scores: scoresCopy, isSorted: isSorted}, nil
}

// Items returns the collection's item indices. The returned slice must not
// be mutated by the caller.
func (c *Collection) Items() []int { return c.items }

// Scores returns the collection's intrinsic per-item scores. The returned
// slice must not be mutated by the caller.
func (c *Collection) Scores() []float64 { return c.scores }

// IsSorted reports whether items/scores are already ranked by descending
// score, letting the engine skip re-sorting.
func (c *Collection) IsSorted() bool { return c.isSorted }

// penalisedScore applies the temperature penalty to a single item's
// intrinsic score: scores[j] * temp_penalty^temps[items[j]].
func penalisedScore(score, temp, tempPenalty float64) float64 {
	if temp == 0 {
		return score
	}
	return score * math.Pow(tempPenalty, temp)
}

// rankedIndices returns indices into c.items/c.scores ordered by descending
// penalised score, unless the collection is already sorted, in which case
// it returns the identity order 0..len(items)-1. Ties keep the order the
// stable sort encountered them in.
func (c *Collection) rankedIndices(temps []float64, tempPenalty float64) []int {
	order := make([]int, len(c.items))
	for i := range order {
		order[i] = i
	}
	if c.isSorted {
		return order
	}
	penalised := make([]float64, len(c.items))
	for i, item := range c.items {
		penalised[i] = penalisedScore(c.scores[i], temps[item], tempPenalty)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return penalised[order[a]] > penalised[order[b]]
	})
	return order
}

// score computes the live score of the collection against the given
// temperature vector, position mask, and temp_penalty: rank by
// penalised score, zip with the mask up to min(len(items), len(mask)), and
// sum the products.
func (c *Collection) score(temps []float64, mask []float64, tempPenalty float64) float64 {
	order := c.rankedIndices(temps, tempPenalty)
	var total float64
	limit := len(order)
	if len(mask) < limit {
		limit = len(mask)
	}
	for k := 0; k < limit; k++ {
		idx := order[k]
		item := c.items[idx]
		total += penalisedScore(c.scores[idx], temps[item], tempPenalty) * mask[k]
	}
	return total
}

// potential is the collection's score at zero temperature: the maximum
// score any future engine state could yield for it, since temperatures
// only grow from zero and temp_penalty <= 1 makes penalisation monotone
// non-increasing in temperature.
func (c *Collection) potential(mask []float64) float64 {
	maxItem := -1
	for _, item := range c.items {
		if item > maxItem {
			maxItem = item
		}
	}
	// temp_penalty=1.0 makes penalisation a no-op (x^temp == 1 for any
	// temp), so the actual contents of the temperature slice are
	// irrelevant — it only needs to be long enough to index safely.
	zeroTemps := make([]float64, maxItem+1)
	return c.score(zeroTemps, mask, 1.0)
}

// topK returns the k item indices with the largest penalised score. When
// the collection is sorted, the first k of items are returned verbatim,
// preserving the caller's declared order instead of re-ranking it.
func (c *Collection) topK(temps []float64, k int, tempPenalty float64) []int {
	if k > len(c.items) {
		k = len(c.items)
	}
	if c.isSorted {
		return append([]int(nil), c.items[:k]...)
	}
	order := c.rankedIndices(temps, tempPenalty)
	result := make([]int, k)
	for i := 0; i < k; i++ {
		result[i] = c.items[order[i]]
	}
	return result
}

// GeometricPositionMask builds a length-k position mask whose weights decay
// geometrically: mask[i] = q^i for i in [0, k). This is a convenience
// constructor for callers that don't want to hand-author a decreasing
// weight vector, grounded in the original Rust implementation's
// score_geom helper (original_source/src/collection.rs).
func GeometricPositionMask(k int, q float64) []float64 {
	mask := make([]float64, k)
	weight := 1.0
	for i := 0; i < k; i++ {
		mask[i] = weight
		weight *= q
	}
	return mask
}
