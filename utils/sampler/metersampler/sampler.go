// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metersampler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/drawkit/utils/sampler"
	"github.com/ava-labs/drawkit/utils/set"
)

var _ sampler.Sampler = (*Sampler)(nil)

// Sampler records the latency, outcome and size of every draw of the wrapped
// sampler.
type Sampler struct {
	metrics
	sampler sampler.Sampler
}

func New(
	namespace string,
	registerer prometheus.Registerer,
	s sampler.Sampler,
) (*Sampler, error) {
	meterSampler := &Sampler{sampler: s}
	return meterSampler, meterSampler.metrics.Initialize(namespace, registerer)
}

func (s *Sampler) RandomWithExceptions(minInclusive, maxExclusive int, exceptions set.Set[int]) (int, error) {
	start := time.Now()
	value, err := s.sampler.RandomWithExceptions(minInclusive, maxExclusive, exceptions)
	s.observe(randomWithExceptionsOp, start, 1, err)
	return value, err
}

func (s *Sampler) DrawIndices(amount, n int) ([]int, error) {
	start := time.Now()
	indices, err := s.sampler.DrawIndices(amount, n)
	s.observe(drawIndicesOp, start, len(indices), err)
	return indices, err
}

func (s *Sampler) DrawWeightedIndices(amount int, weights []uint64) ([]int, error) {
	start := time.Now()
	indices, err := s.sampler.DrawWeightedIndices(amount, weights)
	s.observe(drawWeightedIndicesOp, start, len(indices), err)
	return indices, err
}

func (s *Sampler) DrawUniqueWeightedIndices(amount int, weights []uint64) ([]int, error) {
	start := time.Now()
	indices, err := s.sampler.DrawUniqueWeightedIndices(amount, weights)
	s.observe(drawUniqueWeightedIndicesOp, start, len(indices), err)
	return indices, err
}
