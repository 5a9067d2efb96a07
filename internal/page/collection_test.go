// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectionLengthMismatch(t *testing.T) {
	_, err := NewCollection([]int{0, 1}, []float64{0.1}, false, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNewCollectionItemOutOfRange(t *testing.T) {
	_, err := NewCollection([]int{0, 5}, []float64{0.1, 0.2}, false, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrItemOutOfRange)
}

func TestNewCollectionSkipsRangeCheckWhenNNegative(t *testing.T) {
	c, err := NewCollection([]int{0, 100}, []float64{0.1, 0.2}, false, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 100}, c.Items())
}

func TestCollectionDefensiveCopy(t *testing.T) {
	items := []int{0, 1}
	scores := []float64{0.1, 0.2}
	c, err := NewCollection(items, scores, false, 2)
	require.NoError(t, err)

	items[0] = 99
	scores[0] = 99.0
	assert.Equal(t, 0, c.Items()[0])
	assert.Equal(t, 0.1, c.Scores()[0])
}

// TestItemSelection mirrors the Rust original's test_item_selection:
// scores=[0.3,0.5,0.1,0.9] items=[3,5,8,13], K=2, zero temperature ->
// top-2 is [13, 5] (scores 0.9 and 0.5).
func TestItemSelection(t *testing.T) {
	c, err := NewCollection([]int{3, 5, 8, 13}, []float64{0.3, 0.5, 0.1, 0.9}, false, 14)
	require.NoError(t, err)

	temps := make([]float64, 14)
	got := c.topK(temps, 2, 0.1)
	assert.Equal(t, []int{13, 5}, got)
}

func TestSortedCollectionTopKReturnsPrefixVerbatim(t *testing.T) {
	c, err := NewCollection([]int{0, 1, 2}, []float64{0.1, 0.9, 0.4}, true, 3)
	require.NoError(t, err)

	temps := make([]float64, 3)
	got := c.topK(temps, 2, 0.1)
	assert.Equal(t, []int{0, 1}, got)
}

func TestPotentialIsUpperBoundOnLiveScore(t *testing.T) {
	c, err := NewCollection([]int{0, 1}, []float64{0.5, 0.9}, false, 2)
	require.NoError(t, err)

	mask := []float64{0.6, 0.3}
	potential := c.potential(mask)

	temps := []float64{2.0, 3.0}
	live := c.score(temps, mask, 0.1)
	assert.LessOrEqual(t, live, potential+1e-12)
}

func TestGeometricPositionMask(t *testing.T) {
	mask := GeometricPositionMask(3, 0.5)
	require.Len(t, mask, 3)
	assert.InDelta(t, 1.0, mask[0], 1e-9)
	assert.InDelta(t, 0.5, mask[1], 1e-9)
	assert.InDelta(t, 0.25, mask[2], 1e-9)
}

func TestScoreZipsOnlyMinLengthOfMaskAndItems(t *testing.T) {
	c, err := NewCollection([]int{0, 1, 2}, []float64{0.1, 0.2, 0.3}, true, 3)
	require.NoError(t, err)

	temps := make([]float64, 3)
	// mask shorter than items: surplus items ignored.
	got := c.score(temps, []float64{1.0}, 0.1)
	assert.InDelta(t, 0.1, got, 1e-9)
}
