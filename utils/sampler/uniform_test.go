// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawIndicesErrors(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		n      int
	}{
		{
			name:   "negative amount",
			amount: -1,
			n:      3,
		},
		{
			name:   "empty population",
			amount: 1,
			n:      0,
		},
		{
			name:   "negative population",
			amount: 1,
			n:      -4,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			indices, err := NewDeterministicEngine(0).DrawIndices(test.amount, test.n)
			require.ErrorIs(err, ErrInvalidArgument)
			require.Nil(indices)
		})
	}
}

func TestDrawIndicesZeroAmount(t *testing.T) {
	require := require.New(t)

	e := NewDeterministicEngine(0)
	for _, n := range []int{0, 1, 10} {
		indices, err := e.DrawIndices(0, n)
		require.NoError(err)
		require.NotNil(indices)
		require.Empty(indices)
	}
}

func TestDrawIndicesDistribution(t *testing.T) {
	require := require.New(t)

	const (
		n      = 7
		trials = 14000
	)
	e := NewDeterministicEngine(1)
	indices, err := e.DrawIndices(trials, n)
	require.NoError(err)
	require.Len(indices, trials)

	counts := make([]int, n)
	for _, index := range indices {
		counts[index]++
	}
	requireDistribution(t, counts, uniformWeights(n))
}
