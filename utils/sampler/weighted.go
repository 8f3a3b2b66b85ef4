// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// DrawWeightedIndices builds the cumulative distribution once and samples it
// [amount] times.
func (e *Engine) DrawWeightedIndices(amount int, weights []uint64) ([]int, error) {
	switch {
	case amount < 0:
		return nil, fmt.Errorf("%w: negative amount %d", ErrInvalidArgument, amount)
	case amount == 0:
		return []int{}, nil
	}

	total, err := totalWeight(weights)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrInvalidArgument)
	}

	distribution := newCumulativeDistribution(weights, total)
	indices := make([]int, amount)
	for i := range indices {
		indices[i] = distribution.Sample(e.rng.Float64())
	}
	return indices, nil
}
