// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/google/uuid"
)

// Rule is a single detection rule imported from a rule repository.
//
// A rule's identity is pinned to its file path: re-synchronizing an
// unchanged or upstream-edited repository must update the existing row in
// place. External rule packs reference rules by id and would be silently
// invalidated by duplicates.
type Rule struct {
	Model
	Title    string `json:"title" gorm:"type:varchar(255);not null"`
	FilePath string `json:"filePath" gorm:"type:text;uniqueIndex;not null"`

	RepositoryID uuid.UUID `json:"repositoryId" gorm:"type:uuid;not null;index"`

	// dotted directory path between the repository segment and the file name
	Category string `json:"category" gorm:"type:varchar(255)"`

	CWE   *string `json:"cwe" gorm:"type:varchar(255)"`
	OWASP *string `json:"owasp" gorm:"type:varchar(255)"`

	// always derived from CWE, never set independently
	Severity Severity `json:"severity" gorm:"type:text;not null;default:'low'"`

	Languages []SupportedLanguage `json:"languages" gorm:"many2many:rule_languages;"`
}

func (r Rule) TableName() string {
	return "rules"
}

// RuleRepository is a named external source of rule definition files.
type RuleRepository struct {
	Model
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	URI         string `json:"uri" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`

	LastUpdateOn *time.Time `json:"lastUpdateOn"`

	Rules []Rule `json:"rules,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}

func (r RuleRepository) TableName() string {
	return "rule_repositories"
}

// SupportedLanguage is a canonical language name. Both rules and
// per-language line counts are classified against it by case-insensitive
// name equality - there is deliberately no foreign key between the two.
type SupportedLanguage struct {
	Model
	Name string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
}

func (s SupportedLanguage) TableName() string {
	return "supported_languages"
}
