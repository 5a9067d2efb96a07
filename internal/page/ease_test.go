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

// TestScenarioS4EASEWithHistoryMasking verifies EASE history masking:
// items already in the history must score historySentinel so they can
// never win a row.
func TestScenarioS4EASEWithHistoryMasking(t *testing.T) {
	matrix := [][]float64{
		{0, 0.2, 0.9, 0.1},
		{0.2, 0, 0.2, 0.1},
		{0.3, 0.2, 0, 0.1},
		{0.1, 0.2, 0.3, 0},
	}
	ranker, err := NewEaseRanker(matrix)
	require.NoError(t, err)

	defs := []CollectionDefinition{
		{Items: []int{0, 1}},
		{Items: []int{1, 2}},
		{Items: []int{1, 3}},
		{Items: []int{2, 3}},
	}
	cfg := Config{
		TempPenalty:   1.0,
		CoolingFactor: 1.0,
		PositionMask:  []float64{0.8, 0.2},
		NumRows:       2,
	}

	rows, err := ranker.Recommend([]int{0}, itemsFromDefs(defs), cfg)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].CollectionIndex)
	assert.Equal(t, []int{2, 1}, rows[0].Items)

	assert.Equal(t, 3, rows[1].CollectionIndex)
	assert.Equal(t, []int{2, 3}, rows[1].Items)
}

func itemsFromDefs(defs []CollectionDefinition) [][]int {
	out := make([][]int, len(defs))
	for i, d := range defs {
		out[i] = d.Items
	}
	return out
}

func TestEaseRankItemsMasksHistory(t *testing.T) {
	matrix := [][]float64{
		{0, 1, 2},
		{3, 0, 4},
		{5, 6, 0},
	}
	ranker, err := NewEaseRanker(matrix)
	require.NoError(t, err)

	scores, err := ranker.RankItems([]int{0})
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, -1e9, scores[0])
	assert.Equal(t, 1.0, scores[1])
	assert.Equal(t, 2.0, scores[2])
}

func TestEaseRankItemsRejectsWrongInputType(t *testing.T) {
	ranker, err := NewEaseRanker([][]float64{{0}})
	require.NoError(t, err)

	_, err = ranker.RankItems("not a history")
	require.Error(t, err)
}

func TestEaseRankItemsRejectsOutOfRangeHistory(t *testing.T) {
	ranker, err := NewEaseRanker([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	_, err = ranker.RankItems([]int{5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrItemOutOfRange)
}

func TestNewEaseRankerRejectsNonSquareMatrix(t *testing.T) {
	_, err := NewEaseRanker([][]float64{{0, 1}, {1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
