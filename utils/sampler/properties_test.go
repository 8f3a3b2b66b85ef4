// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ava-labs/drawkit/utils/set"
)

func TestSamplerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("random with exceptions returns an eligible value", prop.ForAll(
		func(seed uint64, minInclusive int, size int, exceptionList []int) string {
			exceptions := set.Of(exceptionList...)
			maxExclusive := minInclusive + size

			eligible := 0
			for i := minInclusive; i < maxExclusive; i++ {
				if !exceptions.Contains(i) {
					eligible++
				}
			}

			value, err := NewDeterministicEngine(seed).RandomWithExceptions(minInclusive, maxExclusive, exceptions)
			if eligible == 0 {
				if !errors.Is(err, ErrExhausted) {
					return fmt.Sprintf("expected %v, got %v", ErrExhausted, err)
				}
				return ""
			}
			if err != nil {
				return fmt.Sprintf("unexpected error %v", err)
			}
			if value < minInclusive || value >= maxExclusive {
				return fmt.Sprintf("%d is outside [%d, %d)", value, minInclusive, maxExclusive)
			}
			if exceptions.Contains(value) {
				return fmt.Sprintf("%d is excepted", value)
			}
			return ""
		},
		gen.UInt64(),
		gen.IntRange(-32, 32),
		gen.IntRange(0, 32),
		gen.SliceOf(gen.IntRange(-40, 40)),
	))

	properties.Property("weighted draws never select zero weights", prop.ForAll(
		func(seed uint64, amount int, weights []uint64) string {
			var total uint64
			for _, weight := range weights {
				total += weight
			}

			indices, err := NewDeterministicEngine(seed).DrawWeightedIndices(amount, weights)
			if total == 0 && amount > 0 {
				if !errors.Is(err, ErrInvalidArgument) {
					return fmt.Sprintf("expected %v, got %v", ErrInvalidArgument, err)
				}
				return ""
			}
			if err != nil {
				return fmt.Sprintf("unexpected error %v", err)
			}
			if len(indices) != amount {
				return fmt.Sprintf("drew %d indices, expected %d", len(indices), amount)
			}
			for _, index := range indices {
				if weights[index] == 0 {
					return fmt.Sprintf("drew index %d with zero weight", index)
				}
			}
			return ""
		},
		gen.UInt64(),
		gen.IntRange(0, 16),
		gen.SliceOf(gen.UInt64Range(0, 1000)),
	))

	properties.Property("unique weighted draws are distinct and prefer positive weights", prop.ForAll(
		func(seed uint64, amount int, weights []uint64) string {
			if amount > len(weights) {
				amount = len(weights)
			}

			var (
				total    uint64
				positive int
			)
			for _, weight := range weights {
				total += weight
				if weight > 0 {
					positive++
				}
			}

			indices, err := NewDeterministicEngine(seed).DrawUniqueWeightedIndices(amount, weights)
			if total == 0 && 0 < amount && amount < len(weights) {
				if !errors.Is(err, ErrInvalidArgument) {
					return fmt.Sprintf("expected %v, got %v", ErrInvalidArgument, err)
				}
				return ""
			}
			if err != nil {
				return fmt.Sprintf("unexpected error %v", err)
			}
			if len(indices) != amount {
				return fmt.Sprintf("drew %d indices, expected %d", len(indices), amount)
			}

			drawn := set.NewSet[int](amount)
			drawnPositive := 0
			for _, index := range indices {
				if index < 0 || index >= len(weights) {
					return fmt.Sprintf("index %d is out of bounds", index)
				}
				if drawn.Contains(index) {
					return fmt.Sprintf("index %d was drawn twice", index)
				}
				drawn.Add(index)
				if weights[index] > 0 {
					drawnPositive++
				}
			}
			if expected := min(amount, positive); drawnPositive != expected {
				return fmt.Sprintf("drew %d positive weights, expected %d", drawnPositive, expected)
			}
			return ""
		},
		gen.UInt64(),
		gen.IntRange(0, 16),
		gen.SliceOf(gen.UInt64Range(0, 3)),
	))

	properties.TestingRun(t)
}
