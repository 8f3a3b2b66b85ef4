// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// minPValue is the significance level of the goodness-of-fit tests. Every test
// runs on a seeded engine, so a passing test keeps passing.
const minPValue = 1e-4

// requireDistribution asserts, with a chi-square goodness-of-fit test, that
// [counts] were drawn from the distribution described by [weights].
// Categories with a zero weight must never have been drawn.
func requireDistribution(t *testing.T, counts []int, weights []uint64) {
	t.Helper()
	require := require.New(t)
	require.Len(counts, len(weights))

	var trials, totalWeight float64
	for i, count := range counts {
		trials += float64(count)
		totalWeight += float64(weights[i])
	}

	var observed, expected []float64
	for i, weight := range weights {
		if weight == 0 {
			require.Zero(counts[i], "zero weight category %d was drawn", i)
			continue
		}
		observed = append(observed, float64(counts[i]))
		expected = append(expected, trials*float64(weight)/totalWeight)
	}
	if len(observed) < 2 {
		return
	}

	statistic := stat.ChiSquare(observed, expected)
	chiSquared := distuv.ChiSquared{K: float64(len(observed) - 1)}
	pValue := 1 - chiSquared.CDF(statistic)
	require.Greater(pValue, minPValue, "counts %v don't fit weights %v", counts, weights)
}

// uniformWeights returns [n] equal weights.
func uniformWeights(n int) []uint64 {
	weights := make([]uint64, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}
