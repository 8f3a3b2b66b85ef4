// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	safemath "github.com/ava-labs/drawkit/utils/math"
)

// cumulativeDistribution maps a uniform sample of [0, 1) onto an index by
// executing a linear search over the partial sums of the normalized weights.
//
// Initialization takes O(n) time and space, where n is the number of weights.
// Sampling can take up to O(n) time.
type cumulativeDistribution struct {
	fractions []float64
	// last is the largest index with a non-zero weight.
	last int
}

// totalWeight returns the sum of [weights].
func totalWeight(weights []uint64) (uint64, error) {
	total, err := safemath.Sum64(weights...)
	if err != nil {
		return 0, fmt.Errorf("%w: total weight: %v", ErrInvalidArgument, err)
	}
	return total, nil
}

// newCumulativeDistribution builds the distribution of [weights].
//
// Invariant: [total] is the sum of [weights] and is non-zero.
func newCumulativeDistribution(weights []uint64, total uint64) cumulativeDistribution {
	d := cumulativeDistribution{
		fractions: make([]float64, len(weights)),
	}

	// Partial sums are accumulated as integers so that rounding errors don't
	// compound. The sum can't overflow because it is bounded by [total].
	var partial uint64
	for i, weight := range weights {
		partial += weight
		d.fractions[i] = float64(partial) / float64(total)
		if weight > 0 {
			d.last = i
		}
	}
	return d
}

// Sample returns the first index whose cumulative fraction exceeds [value].
//
// Invariant: 0 <= value < 1
func (d cumulativeDistribution) Sample(value float64) int {
	for i, fraction := range d.fractions {
		if value < fraction {
			return i
		}
	}
	return d.last
}
