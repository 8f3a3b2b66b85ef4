// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// DrawUniqueWeightedIndices samples by sequential removal: after an index is
// drawn, it is removed along with its weight and the distribution is rebuilt
// over the remaining candidates.
//
// Once the number of remaining candidates equals the number of indices left to
// draw, every remaining candidate must be selected, so they are appended in a
// uniformly random order.
//
// If only zero weights remain while indices are still to be drawn, the
// remaining candidates are drawn uniformly.
//
// Sampling takes O(amount * n) time and O(n) space. [weights] is never
// modified.
func (e *Engine) DrawUniqueWeightedIndices(amount int, weights []uint64) ([]int, error) {
	numWeights := len(weights)
	switch {
	case amount < 0:
		return nil, fmt.Errorf("%w: negative amount %d", ErrInvalidArgument, amount)
	case amount > numWeights:
		return nil, fmt.Errorf("%w: can't draw %d unique elements from %d",
			ErrInvalidArgument,
			amount,
			numWeights,
		)
	case amount == 0:
		return []int{}, nil
	}

	remainingWeight, err := totalWeight(weights)
	if err != nil {
		return nil, err
	}
	if remainingWeight == 0 && amount < numWeights {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrInvalidArgument)
	}

	// candidates[i] is the index, in [weights], of the candidate whose weight
	// is remainingWeights[i].
	var (
		candidates       = make([]int, numWeights)
		remainingWeights = slices.Clone(weights)
		indices          = make([]int, 0, amount)
	)
	for i := range candidates {
		candidates[i] = i
	}

	for len(indices) < amount {
		if len(candidates) == amount-len(indices) {
			e.rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})
			return append(indices, candidates...), nil
		}

		var drawn int
		if remainingWeight == 0 {
			drawn = e.rng.Intn(len(candidates))
		} else {
			distribution := newCumulativeDistribution(remainingWeights, remainingWeight)
			drawn = distribution.Sample(e.rng.Float64())
		}

		indices = append(indices, candidates[drawn])
		remainingWeight -= remainingWeights[drawn]
		candidates = slices.Delete(candidates, drawn, drawn+1)
		remainingWeights = slices.Delete(remainingWeights, drawn, drawn+1)
	}
	return indices, nil
}
