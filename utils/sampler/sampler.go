// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "github.com/ava-labs/drawkit/utils/set"

var (
	_ Sampler = (*Engine)(nil)

	defaultEngine = NewEngine(newTimeSeededSource())
)

// Sampler draws indices from populations described by their size or by their
// weights. Values are mapped onto the returned indices by DrawElements,
// DrawWithWeights and DrawUniqueWithWeights.
type Sampler interface {
	// RandomWithExceptions returns a value of [minInclusive, maxExclusive)
	// that is not in [exceptions]. Every eligible value is equally likely.
	RandomWithExceptions(minInclusive, maxExclusive int, exceptions set.Set[int]) (int, error)

	// DrawIndices returns [amount] indices of [0, n), drawn uniformly with
	// replacement.
	DrawIndices(amount, n int) ([]int, error)

	// DrawWeightedIndices returns [amount] indices of [weights], drawn with
	// replacement. Index i is drawn with probability
	// weights[i] / sum(weights).
	DrawWeightedIndices(amount int, weights []uint64) ([]int, error)

	// DrawUniqueWeightedIndices returns [amount] distinct indices of
	// [weights]. At every step, each remaining index is drawn with
	// probability proportional to its weight.
	DrawUniqueWeightedIndices(amount int, weights []uint64) ([]int, error)
}

// Engine implements Sampler on top of a Source.
//
// Engine is safe for concurrent use. Engines built from different sources
// don't share any state.
type Engine struct {
	rng *rng
}

// NewEngine returns an Engine drawing its randomness from [source].
func NewEngine(source Source) *Engine {
	return &Engine{
		rng: newRNG(source),
	}
}

// NewDeterministicEngine returns an Engine whose draws are fully determined
// by [seed].
func NewDeterministicEngine(seed uint64) *Engine {
	return NewEngine(NewSource(seed))
}

// Default returns the process-wide Engine, seeded from the clock at startup.
func Default() *Engine {
	return defaultEngine
}
