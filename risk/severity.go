// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package risk derives severity tiers and the aggregate risk level of a
// project from its stored findings.
package risk

import (
	"regexp"
	"strings"

	"github.com/codetrail-dev/codetrail/database/models"
)

var cweRegex = regexp.MustCompile(`(?i)(CWE-\d+)`)

// top40CWESeverities assigns a tier to the 40 most prevalent weakness
// classes. The tiers are averages of the CVSS scores of the CVEs recorded
// against each CWE.
var top40CWESeverities = map[string]models.Severity{
	"CWE-119": models.SeverityHigh,
	"CWE-79":  models.SeverityMedium,
	"CWE-20":  models.SeverityHigh,
	"CWE-200": models.SeverityMedium,
	"CWE-125": models.SeverityMedium,
	"CWE-89":  models.SeverityCritical,
	"CWE-416": models.SeverityHigh,
	"CWE-190": models.SeverityHigh,
	"CWE-352": models.SeverityHigh,
	"CWE-22":  models.SeverityMedium,
	"CWE-78":  models.SeverityCritical,
	"CWE-787": models.SeverityHigh,
	"CWE-287": models.SeverityHigh,
	"CWE-476": models.SeverityMedium,
	"CWE-732": models.SeverityMedium,
	"CWE-434": models.SeverityHigh,
	"CWE-611": models.SeverityHigh,
	"CWE-94":  models.SeverityCritical,
	"CWE-798": models.SeverityCritical,
	"CWE-400": models.SeverityHigh,
	"CWE-772": models.SeverityHigh,
	"CWE-426": models.SeverityHigh,
	"CWE-502": models.SeverityCritical,
	"CWE-269": models.SeverityHigh,
	"CWE-295": models.SeverityHigh,
	"CWE-835": models.SeverityMedium,
	"CWE-522": models.SeverityHigh,
	"CWE-704": models.SeverityHigh,
	"CWE-362": models.SeverityMedium,
	"CWE-918": models.SeverityHigh,
	"CWE-415": models.SeverityHigh,
	"CWE-601": models.SeverityMedium,
	"CWE-863": models.SeverityMedium,
	"CWE-862": models.SeverityMedium,
	"CWE-532": models.SeverityMedium,
	"CWE-306": models.SeverityCritical,
	"CWE-384": models.SeverityHigh,
	"CWE-326": models.SeverityHigh,
	"CWE-770": models.SeverityHigh,
	"CWE-617": models.SeverityMedium,
}

// SeverityFromCWE derives a severity tier from a CWE full name such as
// "CWE-200: Exposure of Sensitive Information to an Unauthorized Actor".
//
// Weaknesses in the top-40 table get their curated tier, any other CWE gets
// medium. Without a CWE (nil, or no CWE-<n> token in the string) the tier
// is low.
func SeverityFromCWE(cweString *string) models.Severity {
	if cweString == nil {
		return models.SeverityLow
	}
	match := cweRegex.FindString(*cweString)
	if match == "" {
		return models.SeverityLow
	}
	cweID := strings.ToUpper(match)
	if severity, ok := top40CWESeverities[cweID]; ok {
		return severity
	}
	return models.SeverityMedium
}
