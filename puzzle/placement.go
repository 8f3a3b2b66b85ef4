// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package puzzle

import (
	"fmt"

	"github.com/ava-labs/drawkit/utils/sampler"
	"github.com/ava-labs/drawkit/utils/set"
)

// PlaceItems returns the indices of [count] distinct cells of [g] that aren't
// [occupied]. Every free cell is equally likely to be chosen.
func PlaceItems(s sampler.Sampler, g Grid, count int, occupied set.Set[int]) ([]int, error) {
	free := make([]int, 0, g.Cells())
	for i := 0; i < g.Cells(); i++ {
		if !occupied.Contains(i) {
			free = append(free, i)
		}
	}

	weights := make([]uint64, len(free))
	for i := range weights {
		weights[i] = 1
	}

	cells, err := sampler.DrawUniqueWithWeights(s, count, free, weights)
	if err != nil {
		return nil, fmt.Errorf("couldn't place %d items on %s grid with %d free cells: %w",
			count,
			g,
			len(free),
			err,
		)
	}
	return cells, nil
}

// FreeCell returns the index of a cell of [g] that isn't [occupied]. Every
// free cell is equally likely to be chosen.
func FreeCell(s sampler.Sampler, g Grid, occupied set.Set[int]) (int, error) {
	cell, err := s.RandomWithExceptions(0, g.Cells(), occupied)
	if err != nil {
		return 0, fmt.Errorf("couldn't find a free cell on %s grid: %w", g, err)
	}
	return cell, nil
}
