// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

func (e *Engine) DrawIndices(amount, n int) ([]int, error) {
	switch {
	case amount < 0:
		return nil, fmt.Errorf("%w: negative amount %d", ErrInvalidArgument, amount)
	case amount == 0:
		return []int{}, nil
	case n <= 0:
		return nil, fmt.Errorf("%w: can't draw %d elements from an empty population",
			ErrInvalidArgument,
			amount,
		)
	}

	indices := make([]int, amount)
	for i := range indices {
		indices[i] = e.rng.Intn(n)
	}
	return indices, nil
}
