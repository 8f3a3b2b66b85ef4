// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/drawkit/utils/sampler"
	"github.com/ava-labs/drawkit/utils/set"
)

var (
	common    = Tier{Name: "common", Weight: 70}
	rare      = Tier{Name: "rare", Weight: 25}
	legendary = Tier{Name: "legendary", Weight: 5}
	cursed    = Tier{Name: "cursed", Weight: 0}
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		input       string
		expected    Tier
		expectedErr error
	}{
		{
			input:    "rare=25",
			expected: rare,
		},
		{
			input:    " rare = 25 ",
			expected: rare,
		},
		{
			input:    "cursed=0",
			expected: cursed,
		},
		{
			input:       "rare",
			expectedErr: errMalformedTier,
		},
		{
			input:       "=25",
			expectedErr: errMalformedTier,
		},
		{
			input:       "rare=-1",
			expectedErr: errMalformedTier,
		},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			require := require.New(t)

			tier, err := ParseTier(test.input)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expected, tier)
		})
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name        string
		tiers       []Tier
		expectedErr error
	}{
		{
			name:        "no tiers",
			expectedErr: errNoTiers,
		},
		{
			name:        "duplicate tier",
			tiers:       []Tier{common, rare, common},
			expectedErr: errDuplicateTier,
		},
		{
			name:        "zero weight",
			tiers:       []Tier{cursed},
			expectedErr: errZeroTotalWeight,
		},
		{
			name: "overflowing weight",
			tiers: []Tier{
				{Name: "a", Weight: math.MaxUint64},
				{Name: "b", Weight: 1},
			},
			expectedErr: sampler.ErrInvalidArgument,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewTable(test.tiers...)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestTableProbability(t *testing.T) {
	require := require.New(t)

	table, err := NewTable(common, rare, legendary, cursed)
	require.NoError(err)
	require.Equal([]Tier{common, rare, legendary, cursed}, table.Tiers())

	require.InDelta(0.70, table.Probability("common"), 1e-9)
	require.InDelta(0.05, table.Probability("legendary"), 1e-9)
	require.Zero(table.Probability("cursed"))
	require.Zero(table.Probability("unknown"))
}

func TestTablePick(t *testing.T) {
	require := require.New(t)

	table, err := NewTable(common, rare, legendary, cursed)
	require.NoError(err)

	const trials = 10000
	picked, err := table.Pick(sampler.NewDeterministicEngine(0), trials)
	require.NoError(err)
	require.Len(picked, trials)

	counts := map[string]int{}
	for _, tier := range picked {
		counts[tier.Name]++
	}
	require.Zero(counts["cursed"])
	for _, tier := range []Tier{common, rare, legendary} {
		expected := trials * table.Probability(tier.Name)
		require.InDelta(expected, counts[tier.Name], 0.2*expected, "tier %s", tier.Name)
	}
}

func TestTablePickDistinct(t *testing.T) {
	require := require.New(t)

	table, err := NewTable(common, rare, legendary, cursed)
	require.NoError(err)

	s := sampler.NewDeterministicEngine(1)
	for i := 0; i < 100; i++ {
		picked, err := table.PickDistinct(s, 3)
		require.NoError(err)
		require.Len(picked, 3)

		names := set.Set[string]{}
		for _, tier := range picked {
			names.Add(tier.Name)
		}
		require.Equal(3, names.Len())
	}

	picked, err := table.PickDistinct(s, 4)
	require.NoError(err)
	require.ElementsMatch([]Tier{common, rare, legendary, cursed}, picked)

	_, err = table.PickDistinct(s, 5)
	require.ErrorIs(err, sampler.ErrInvalidArgument)
}
