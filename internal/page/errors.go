// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package page

import "errors"

// Sentinel errors returned by construction-time validation. The emission
// loop itself never returns an error: an exhausted collection pool simply
// ends the page early (see Engine.RecommendPage).
var (
	// ErrLengthMismatch is returned when a Collection's items and scores
	// slices have different lengths.
	ErrLengthMismatch = errors.New("page: items and scores length mismatch")

	// ErrItemOutOfRange is returned when an item index falls outside
	// [0, N) for the engine's derived item universe.
	ErrItemOutOfRange = errors.New("page: item index out of range")

	// ErrInvalidTempPenalty is returned by Config.Validate when
	// TempPenalty is not in (0, 1].
	ErrInvalidTempPenalty = errors.New("page: temp_penalty must be in (0, 1]")

	// ErrInvalidCoolingFactor is returned by Config.Validate when
	// CoolingFactor is not in [0, 1].
	ErrInvalidCoolingFactor = errors.New("page: cooling_factor must be in [0, 1]")

	// ErrEmptyPositionMask is returned when a position mask has zero
	// length; a zero-width row is never meaningful.
	ErrEmptyPositionMask = errors.New("page: position_mask must be non-empty")

	// ErrNegativeMaskWeight is returned when a position mask entry is
	// negative.
	ErrNegativeMaskWeight = errors.New("page: position_mask entries must be non-negative")

	// ErrDimensionMismatch is returned by the EASE ranker when the
	// affinity matrix is not square.
	ErrDimensionMismatch = errors.New("page: matrix dimension mismatch")
)
