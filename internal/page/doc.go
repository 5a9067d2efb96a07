// Pageassembly - Greedy Page-Assembly Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pageassembly

/*
Package page implements a greedy, diversity-aware, temperature-cooled
page-assembly engine: given a set of scored Collections and a
position-weighted row budget, it picks one best collection per row,
truncates it to its top-K items, and cools/reheats a per-item temperature
signal so that items already surfaced are penalised on later rows.

# Architecture

	Ranker.RankItems(input) -> per-item scores
	    -> BuildCollections(defs, scores) -> []*Collection
	    -> NewEngine(collections, mask) -> *Engine
	    -> Engine.RecommendPage(numRows, tempPenalty, coolingFactor) -> []Row

EaseRanker is the one concrete Ranker this package ships: it scores a
user history against a precomputed item-item affinity matrix. Other
rankers (session-based, embedding-based) can implement the same Ranker
interface and feed the same Engine.

# Design Principles

  - Deterministic: identical inputs and identical construction order
    produce identical output; there is no randomness anywhere in the
    greedy loop.
  - Single call, no persistence: an Engine's availability flags and
    temperatures are reset at the start of every RecommendPage call.
    There is no training step and nothing survives across calls.
  - Pruned, not exhaustive: collections are visited in descending
    potential order and the best-collection search halts the moment the
    running best meets or beats the next collection's potential upper
    bound, so realistic workloads terminate long before scanning every
    collection on every row.

# Usage Example

	var collections []*page.Collection
	engine, err := page.NewEngine(collections, page.DefaultConfig().PositionMask)
	if err != nil {
	    return err
	}
	rows := engine.RecommendPage(10, 0.1, 0.85)

Or, via the EASE convenience entrypoint:

	ranker, err := page.NewEaseRanker(weightMatrix)
	if err != nil {
	    return err
	}
	rows, err := ranker.Recommend(history, itemsPerCollection, page.DefaultConfig())

# Thread Safety

A single Engine mutates its own state during RecommendPage and must not
be shared across concurrent calls. Independent Engine instances may run
concurrently over disjoint state; Collections are immutable after
construction and may be safely shared across many such engines.
*/
package page
