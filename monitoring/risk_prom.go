// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ProjectRiskLevel = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "codetrail_project_risk_level",
	Help: "Current risk level per project, 0 to 85",
}, []string{"project"})

var RiskRecalculationAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "codetrail_risk_recalculation_amount",
	Help: "Number of risk recalculation daemon runs",
})
