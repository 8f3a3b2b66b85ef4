// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metersampler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/drawkit/utils/metric"
	"github.com/ava-labs/drawkit/utils/wrappers"
)

const opLabel = "op"

const (
	randomWithExceptionsOp      = "random_with_exceptions"
	drawIndicesOp               = "draw_indices"
	drawWeightedIndicesOp       = "draw_weighted_indices"
	drawUniqueWeightedIndicesOp = "draw_unique_weighted_indices"
)

type metrics struct {
	duration *prometheus.HistogramVec

	calls,
	failures,
	drawn *prometheus.CounterVec
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.duration = metric.NewNanosecondsLatencyMetric(namespace, "draw_duration", opLabel)
	m.calls = metric.NewCounterMetric(namespace, "draw_call", opLabel)
	m.failures = metric.NewCounterMetric(namespace, "draw_failure", opLabel)
	m.drawn = metric.NewCounterMetric(namespace, "drawn_element", opLabel)

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.duration),
		registerer.Register(m.calls),
		registerer.Register(m.failures),
		registerer.Register(m.drawn),
	)
	return errs.Err
}

// observe records a call to [op] that started at [start] and drew [drawn]
// elements.
func (m *metrics) observe(op string, start time.Time, drawn int, err error) {
	m.duration.WithLabelValues(op).Observe(float64(time.Since(start)))
	m.calls.WithLabelValues(op).Inc()
	if err != nil {
		m.failures.WithLabelValues(op).Inc()
		return
	}
	m.drawn.WithLabelValues(op).Add(float64(drawn))
}
