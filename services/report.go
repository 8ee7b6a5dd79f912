// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/risk"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// Scanner report file names inside a project's reports directory. The
// scanners themselves run outside this service and drop their findings
// here.
const (
	sastReportFile = "sast.json"
	scaReportFile  = "sca.json"
)

type sastReport struct {
	Findings []sastFinding `json:"findings"`
}

type sastFinding struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Severity    string           `json:"severity"`
	CWE         *string          `json:"cwe"`
	OWASP       *string          `json:"owasp"`
	Occurrences []sastOccurrence `json:"occurrences"`
}

type sastOccurrence struct {
	FilePath    string          `json:"filePath"`
	MatchString string          `json:"matchString"`
	StartLine   int             `json:"startLine"`
	EndLine     int             `json:"endLine"`
	Position    json.RawMessage `json:"position"`
}

type scaReport struct {
	Findings []scaFinding `json:"findings"`
}

type scaFinding struct {
	PkgName      string  `json:"pkgName"`
	PkgVersion   string  `json:"pkgVersion"`
	Severity     string  `json:"severity"`
	CVE          *string `json:"cve"`
	CWE          *string `json:"cwe"`
	Advisory     string  `json:"advisory"`
	FixedVersion *string `json:"fixedVersion"`

	HasPoC                  bool `json:"hasPoC"`
	Reachable               bool `json:"reachable"`
	VendorConfirmed         bool `json:"vendorConfirmed"`
	ReachableAndExploitable bool `json:"reachableAndExploitable"`
}

// readVulnerabilities loads the SAST findings of a scanner run. A missing
// report means the scanner did not run, which is not an error. Findings
// without a usable severity are classified by their CWE.
func readVulnerabilities(reportsDir string) ([]models.Vulnerability, error) {
	raw, err := os.ReadFile(filepath.Join(reportsDir, sastReportFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read sast report")
	}

	var report sastReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, errors.Wrap(err, "could not parse sast report")
	}

	vulnerabilities := make([]models.Vulnerability, 0, len(report.Findings))
	for _, finding := range report.Findings {
		vulnerability := models.Vulnerability{
			Title:       finding.Title,
			Description: finding.Description,
			Severity:    findingSeverity(finding.Severity, finding.CWE),
			CWE:         finding.CWE,
			OWASP:       finding.OWASP,
		}
		for _, occurrence := range finding.Occurrences {
			vulnerability.Occurrences = append(vulnerability.Occurrences, models.VulnerabilityOccurrence{
				FilePath:    occurrence.FilePath,
				MatchString: occurrence.MatchString,
				StartLine:   occurrence.StartLine,
				EndLine:     occurrence.EndLine,
				Position:    datatypes.JSON(occurrence.Position),
			})
		}
		vulnerabilities = append(vulnerabilities, vulnerability)
	}
	return vulnerabilities, nil
}

// readVulnerableDependencies loads the SCA findings of a scanner run, with
// the same missing-report semantics as readVulnerabilities.
func readVulnerableDependencies(reportsDir string) ([]models.VulnerableDependency, error) {
	raw, err := os.ReadFile(filepath.Join(reportsDir, scaReportFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read sca report")
	}

	var report scaReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, errors.Wrap(err, "could not parse sca report")
	}

	dependencies := make([]models.VulnerableDependency, 0, len(report.Findings))
	for _, finding := range report.Findings {
		dependencies = append(dependencies, models.VulnerableDependency{
			PkgName:                 finding.PkgName,
			PkgVersion:              finding.PkgVersion,
			Severity:                findingSeverity(finding.Severity, finding.CWE),
			CVE:                     finding.CVE,
			CWE:                     finding.CWE,
			Advisory:                finding.Advisory,
			FixedVersion:            finding.FixedVersion,
			HasPoC:                  finding.HasPoC,
			Reachable:               finding.Reachable,
			VendorConfirmed:         finding.VendorConfirmed,
			ReachableAndExploitable: finding.ReachableAndExploitable,
		})
	}
	return dependencies, nil
}

func findingSeverity(reported string, cwe *string) models.Severity {
	severity := models.Severity(reported)
	if severity.Valid() {
		return severity
	}
	return risk.SeverityFromCWE(cwe)
}
