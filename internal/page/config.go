// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package page

import "fmt"

// Config carries the parameters that govern one recommend_page call:
// the temperature penalty, the cooling factor, the position mask and the
// number of rows to emit. It follows the style of the hybrid
// recommender's Config (JSON-tagged, Validate/Clone) as a single flat
// struct, so callers already familiar with that package recognise this one.
type Config struct {
	// TempPenalty is the base of the exponential temperature penalty,
	// applied as temp_penalty^temps[item]. Must be in (0, 1].
	TempPenalty float64 `json:"temp_penalty"`

	// CoolingFactor is the exponential decay applied to all temperatures
	// between rows, before reheating. Must be in [0, 1].
	CoolingFactor float64 `json:"cooling_factor"`

	// PositionMask is the per-rank weight vector; its length is the row
	// width K.
	PositionMask []float64 `json:"position_mask"`

	// NumRows is the upper bound on rows emitted by one recommend_page
	// call. The call may return fewer if the collection pool is
	// exhausted first.
	NumRows int `json:"num_rows"`
}

// DefaultConfig returns this package's recommended defaults:
// temp_penalty=0.1, cooling_factor=0.85, a three-wide mask
// [0.6, 0.3, 0.1], and 10 rows.
func DefaultConfig() Config {
	return Config{
		TempPenalty:   0.1,
		CoolingFactor: 0.85,
		PositionMask:  []float64{0.6, 0.3, 0.1},
		NumRows:       10,
	}
}

// ConservativeConfig returns the constant profile used by the original
// Rust implementation's top-level Collections wrapper
// (original_source/src/collections.rs: TEMP_PENALTY=0.3,
// COOLING_FACTOR=0.75, NUM_ITEMS_ROW=12). It is offered as a documented
// alternative to DefaultConfig, not a replacement for it: it cools
// faster but penalises repeats less aggressively per row, trading
// short-term diversity for a wider row.
func ConservativeConfig() Config {
	return Config{
		TempPenalty:   0.3,
		CoolingFactor: 0.75,
		PositionMask:  GeometricPositionMask(12, 0.8),
		NumRows:       10,
	}
}

// Validate checks the configuration against the ranges that make it
// meaningful, using explicit per-field range checks that return a
// wrapped error naming the offending value.
func (c Config) Validate() error {
	if c.TempPenalty <= 0 || c.TempPenalty > 1 {
		return fmt.Errorf("temp_penalty must be in (0, 1], got %v: %w", c.TempPenalty, ErrInvalidTempPenalty)
	}
	if c.CoolingFactor < 0 || c.CoolingFactor > 1 {
		return fmt.Errorf("cooling_factor must be in [0, 1], got %v: %w", c.CoolingFactor, ErrInvalidCoolingFactor)
	}
	if len(c.PositionMask) == 0 {
		return fmt.Errorf("position_mask must be non-empty: %w", ErrEmptyPositionMask)
	}
	for i, w := range c.PositionMask {
		if w < 0 {
			return fmt.Errorf("position_mask[%d] = %v must be non-negative: %w", i, w, ErrNegativeMaskWeight)
		}
	}
	if c.NumRows < 0 {
		return fmt.Errorf("num_rows must be non-negative, got %d", c.NumRows)
	}
	return nil
}

// Clone returns a deep copy so callers can safely mutate the result
// without affecting the original, mirroring the hybrid recommender's
// field-by-field Config.Clone.
func (c Config) Clone() Config {
	clone := c
	clone.PositionMask = append([]float64(nil), c.PositionMask...)
	return clone
}
