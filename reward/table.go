// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ava-labs/drawkit/utils/sampler"
	"github.com/ava-labs/drawkit/utils/set"

	safemath "github.com/ava-labs/drawkit/utils/math"
)

var (
	errNoTiers         = errors.New("no tiers")
	errDuplicateTier   = errors.New("duplicate tier")
	errMalformedTier   = errors.New("malformed tier")
	errZeroTotalWeight = errors.New("tiers have no weight")
)

// Tier is an outcome of a Table. Its probability is its weight relative to the
// total weight of the table.
type Tier struct {
	Name   string `json:"name"`
	Weight uint64 `json:"weight"`
}

// ParseTier parses a tier formatted as "name=weight".
func ParseTier(s string) (Tier, error) {
	name, weightStr, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Tier{}, fmt.Errorf("%w: %q", errMalformedTier, s)
	}
	weight, err := strconv.ParseUint(strings.TrimSpace(weightStr), 10, 64)
	if err != nil {
		return Tier{}, fmt.Errorf("%w: %q: %v", errMalformedTier, s, err)
	}
	return Tier{
		Name:   name,
		Weight: weight,
	}, nil
}

// Table is an immutable set of weighted tiers.
type Table struct {
	tiers       []Tier
	weights     []uint64
	totalWeight uint64
}

func NewTable(tiers ...Tier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: %w", sampler.ErrInvalidArgument, errNoTiers)
	}

	var (
		names   = set.NewSet[string](len(tiers))
		weights = make([]uint64, len(tiers))
		total   uint64
	)
	for i, tier := range tiers {
		if names.Contains(tier.Name) {
			return nil, fmt.Errorf("%w: %q", errDuplicateTier, tier.Name)
		}
		names.Add(tier.Name)

		var err error
		total, err = safemath.Add64(total, tier.Weight)
		if err != nil {
			return nil, fmt.Errorf("%w: total weight: %w", sampler.ErrInvalidArgument, err)
		}
		weights[i] = tier.Weight
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: %w", sampler.ErrInvalidArgument, errZeroTotalWeight)
	}

	return &Table{
		tiers:       append([]Tier(nil), tiers...),
		weights:     weights,
		totalWeight: total,
	}, nil
}

// Tiers returns the tiers of the table in their original order.
func (t *Table) Tiers() []Tier {
	return append([]Tier(nil), t.tiers...)
}

// Probability returns the probability of [name] being picked by a single draw.
func (t *Table) Probability(name string) float64 {
	for _, tier := range t.tiers {
		if tier.Name == name {
			return float64(tier.Weight) / float64(t.totalWeight)
		}
	}
	return 0
}

// Pick returns [n] independently picked tiers.
func (t *Table) Pick(s sampler.Sampler, n int) ([]Tier, error) {
	return sampler.DrawWithWeights(s, n, t.tiers, t.weights)
}

// PickDistinct returns [n] distinct tiers. A tier that was picked is removed
// from the table for the following picks.
func (t *Table) PickDistinct(s sampler.Sampler, n int) ([]Tier, error) {
	return sampler.DrawUniqueWithWeights(s, n, t.tiers, t.weights)
}
