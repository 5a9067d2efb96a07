// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperatureTrackerStartsAtZero(t *testing.T) {
	tr := newTemperatureTracker(3)
	assert.Equal(t, []float64{0, 0, 0}, tr.snapshot())
}

func TestTemperatureTrackerCoolsThenReheats(t *testing.T) {
	tr := newTemperatureTracker(3)
	tr.update([]int{0, 1}, 0.5)
	assert.Equal(t, []float64{1.0, 1.0, 0.0}, tr.snapshot())

	tr.update([]int{1}, 0.5)
	// item 0: 1.0*0.5 = 0.5 (not reheated)
	// item 1: 1.0*0.5 + 1.0 = 1.5 (reheated)
	assert.InDeltaSlice(t, []float64{0.5, 1.5, 0.0}, tr.snapshot(), 1e-9)
}

func TestTemperatureNeverGoesNegative(t *testing.T) {
	tr := newTemperatureTracker(2)
	tr.update([]int{0}, 0.0)
	tr.update(nil, 0.0)
	for _, v := range tr.snapshot() {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestTemperatureRepeatedAppearanceAccumulates(t *testing.T) {
	tr := newTemperatureTracker(1)
	tr.update([]int{0, 0}, 1.0)
	assert.Equal(t, 2.0, tr.snapshot()[0])
}
