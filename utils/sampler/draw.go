// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// DrawElements returns [amount] elements of [values], drawn uniformly with
// replacement.
func DrawElements[T any](s Sampler, amount int, values []T) ([]T, error) {
	indices, err := s.DrawIndices(amount, len(values))
	if err != nil {
		return nil, err
	}
	return elementsAt(values, indices), nil
}

// DrawWithWeights returns [amount] elements of [values], drawn independently
// with replacement. values[i] is drawn with probability
// weights[i] / sum(weights).
func DrawWithWeights[T any](s Sampler, amount int, values []T, weights []uint64) ([]T, error) {
	if err := verifyWeights(values, weights); err != nil {
		return nil, err
	}
	indices, err := s.DrawWeightedIndices(amount, weights)
	if err != nil {
		return nil, err
	}
	return elementsAt(values, indices), nil
}

// DrawUniqueWithWeights returns [amount] distinct elements of [values], drawn
// without replacement. At every step, each remaining element is drawn with
// probability proportional to its weight.
//
// Neither [values] nor [weights] is modified.
func DrawUniqueWithWeights[T any](s Sampler, amount int, values []T, weights []uint64) ([]T, error) {
	if err := verifyWeights(values, weights); err != nil {
		return nil, err
	}
	indices, err := s.DrawUniqueWeightedIndices(amount, weights)
	if err != nil {
		return nil, err
	}
	return elementsAt(values, indices), nil
}

func verifyWeights[T any](values []T, weights []uint64) error {
	if len(values) != len(weights) {
		return fmt.Errorf("%w: %d values but %d weights",
			ErrInvalidArgument,
			len(values),
			len(weights),
		)
	}
	return nil
}

func elementsAt[T any](values []T, indices []int) []T {
	elements := make([]T, len(indices))
	for i, index := range indices {
		elements[i] = values[index]
	}
	return elements
}
