// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "codetrail_scan_duration_seconds",
	Help:    "Duration of a full project scan pipeline run in seconds",
	Buckets: prometheus.DefBuckets,
})

var ScanAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "codetrail_scan_amount",
	Help: "Number of started project scan pipeline runs",
})

var ScanFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "codetrail_scan_failures",
	Help: "Number of failed project scan pipeline runs",
})

var LineCountDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "codetrail_line_count_duration_seconds",
	Help:    "Duration of one line-counter invocation in seconds",
	Buckets: prometheus.DefBuckets,
})
