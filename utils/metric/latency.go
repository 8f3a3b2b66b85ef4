// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// NewNanosecondsLatencyMetric returns a histogram of the time, in
// nanoseconds, an operation named [name] takes, partitioned by [labels].
func NewNanosecondsLatencyMetric(namespace, name string, labels ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      fmt.Sprintf("time (in ns) of a %s", name),
			Buckets:   NanosecondsBuckets,
		},
		labels,
	)
}

// NewCounterMetric returns a counter of the number of times [name] occurred,
// partitioned by [labels].
func NewCounterMetric(namespace, name string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      fmt.Sprintf("# of times a %s occurred", name),
		},
		labels,
	)
}
