// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	"github.com/ava-labs/drawkit/utils/set"
)

// MaxRangeSize is the largest range RandomWithExceptions will materialize.
const MaxRangeSize = 1 << 24

// RandomWithExceptions scans a random permutation of the range and returns the
// first value that isn't excluded.
//
// Sampling takes O(maxExclusive - minInclusive) time and space, regardless of
// how many values are excluded.
func (e *Engine) RandomWithExceptions(minInclusive, maxExclusive int, exceptions set.Set[int]) (int, error) {
	if minInclusive > maxExclusive {
		return 0, fmt.Errorf("%w: range [%d, %d) is inverted",
			ErrInvalidArgument,
			minInclusive,
			maxExclusive,
		)
	}

	// A negative size means the subtraction overflowed.
	size := maxExclusive - minInclusive
	if size < 0 || size > MaxRangeSize {
		return 0, fmt.Errorf("%w: range [%d, %d) holds more than %d values",
			ErrInvalidArgument,
			minInclusive,
			maxExclusive,
			MaxRangeSize,
		)
	}

	candidates := make([]int, size)
	for i := range candidates {
		candidates[i] = minInclusive + i
	}

	// The permutation is generated one slot at a time so that the scan stops
	// at the first eligible value.
	for i := range candidates {
		j := i + e.rng.Intn(size-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		if candidate := candidates[i]; !exceptions.Contains(candidate) {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("%w: every value of [%d, %d) is excluded",
		ErrExhausted,
		minInclusive,
		maxExclusive,
	)
}
