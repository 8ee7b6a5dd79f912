// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RuleSyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "codetrail_rule_sync_duration_seconds",
	Help:    "Duration of one rule repository synchronization in seconds",
	Buckets: prometheus.DefBuckets,
})

var RuleSyncAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "codetrail_rule_sync_amount",
	Help: "Number of rule repository synchronization runs",
})

var RuleSyncFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "codetrail_rule_sync_failures",
	Help: "Number of aborted rule repository synchronization runs",
})

var RulesImported = promauto.NewCounter(prometheus.CounterOpts{
	Name: "codetrail_rules_imported",
	Help: "Number of rules created or updated by synchronization",
})
