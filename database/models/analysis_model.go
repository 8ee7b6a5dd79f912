// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Analysis is the result of one scanner run against a project's extracted
// sources. A project owns at most one analysis; re-scanning replaces it.
type Analysis struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;uniqueIndex;not null"`

	// JobID correlates the analysis with the background job that produced it.
	JobID      string     `json:"jobId" gorm:"type:varchar(255)"`
	StartedAt  *time.Time `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt"`

	Vulnerabilities         []Vulnerability         `json:"vulnerabilities" gorm:"constraint:OnDelete:CASCADE;"`
	VulnerableDependencies  []VulnerableDependency  `json:"vulnerableDependencies" gorm:"constraint:OnDelete:CASCADE;"`
}

func (a Analysis) TableName() string {
	return "analyses"
}

// Vulnerability is a single SAST finding.
type Vulnerability struct {
	Model
	AnalysisID uuid.UUID `json:"analysisId" gorm:"type:uuid;not null;index"`

	Title       string   `json:"title" gorm:"type:varchar(255);not null"`
	Description string   `json:"description" gorm:"type:text"`
	Severity    Severity `json:"severity" gorm:"type:text;not null;default:'low'"`
	CWE         *string  `json:"cwe" gorm:"type:varchar(255)"`
	OWASP       *string  `json:"owasp" gorm:"type:varchar(255)"`

	Occurrences []VulnerabilityOccurrence `json:"occurrences" gorm:"constraint:OnDelete:CASCADE;"`
}

func (v Vulnerability) TableName() string {
	return "vulnerabilities"
}

// VulnerabilityOccurrence is one concrete match of a vulnerability inside
// the project sources.
type VulnerabilityOccurrence struct {
	Model
	VulnerabilityID uuid.UUID `json:"vulnerabilityId" gorm:"type:uuid;not null;index"`

	FilePath    string `json:"filePath" gorm:"type:text;not null"`
	MatchString string `json:"matchString" gorm:"type:text"`
	StartLine   int    `json:"startLine"`
	EndLine     int    `json:"endLine"`

	// raw position payload as reported by the scanner
	Position datatypes.JSON `json:"position" gorm:"type:jsonb"`
}

func (o VulnerabilityOccurrence) TableName() string {
	return "vulnerability_occurrences"
}

// VulnerableDependency is a single SCA finding.
type VulnerableDependency struct {
	Model
	AnalysisID uuid.UUID `json:"analysisId" gorm:"type:uuid;not null;index"`

	PkgName      string   `json:"pkgName" gorm:"type:varchar(255);not null"`
	PkgVersion   string   `json:"pkgVersion" gorm:"type:varchar(255)"`
	Severity     Severity `json:"severity" gorm:"type:text;not null;default:'low'"`
	CVE          *string  `json:"cve" gorm:"type:varchar(255)"`
	CWE          *string  `json:"cwe" gorm:"type:varchar(255)"`
	Advisory     string   `json:"advisory" gorm:"type:text"`
	FixedVersion *string  `json:"fixedVersion" gorm:"type:varchar(255)"`

	HasPoC                  bool `json:"hasPoC"`
	Reachable               bool `json:"reachable"`
	VendorConfirmed         bool `json:"vendorConfirmed"`
	ReachableAndExploitable bool `json:"reachableAndExploitable"`
}

func (d VulnerableDependency) TableName() string {
	return "vulnerable_dependencies"
}
