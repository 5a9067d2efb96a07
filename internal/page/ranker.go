// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

package page

import "fmt"

// Ranker turns an arbitrary input (a user history, a session, an
// embedding — the concrete type is the ranker's own business) into a
// per-item score vector over the global item universe [0, N). Concrete
// rankers are independent variants behind this one capability; EASE is
// the only one this package ships, but the interface does not assume it.
type Ranker interface {
	// RankItems produces a per-item affinity score of length N. Callers
	// pass whatever input type the concrete ranker expects; a type
	// assertion failure is a caller bug, not a runtime condition this
	// package recovers from.
	RankItems(input interface{}) ([]float64, error)
}

// CollectionDefinition carries only the item list and the sorted flag for
// a candidate row; its scores are assigned from a ranker's output at
// projection time.
type CollectionDefinition struct {
	Items    []int
	IsSorted bool
}

// BuildCollections projects a global score vector onto a set of collection
// definitions, producing concrete Collections whose scores are taken from
// itemScores at each definition's item indices.
func BuildCollections(defs []CollectionDefinition, itemScores []float64) ([]*Collection, error) {
	n := len(itemScores)
	collections := make([]*Collection, 0, len(defs))
	for i, def := range defs {
		scores := make([]float64, len(def.Items))
		for j, item := range def.Items {
			if item < 0 || item >= n {
				return nil, fmt.Errorf("page: collection definition %d item %d outside [0, %d): %w", i, item, n, ErrItemOutOfRange)
			}
			scores[j] = itemScores[item]
		}
		c, err := NewCollection(def.Items, scores, def.IsSorted, n)
		if err != nil {
			return nil, fmt.Errorf("page: building collection %d: %w", i, err)
		}
		collections = append(collections, c)
	}
	return collections, nil
}

// RecommendPage is the convenience pipeline: it calls
// ranker.RankItems(input) to get a global score vector, projects that
// vector onto collectionDefs to build concrete Collections, constructs an
// Engine, and runs recommend_page. It is the form the EASE ranker's
// top-level Recommend (ease.go) delegates to.
func RecommendPage(ranker Ranker, input interface{}, collectionDefs []CollectionDefinition, cfg Config) ([]Row, error) {
	itemScores, err := ranker.RankItems(input)
	if err != nil {
		return nil, fmt.Errorf("page: ranking items: %w", err)
	}
	collections, err := BuildCollections(collectionDefs, itemScores)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngine(collections, cfg.PositionMask)
	if err != nil {
		return nil, fmt.Errorf("page: constructing engine: %w", err)
	}
	return engine.RecommendPage(cfg.NumRows, cfg.TempPenalty, cfg.CoolingFactor), nil
}
