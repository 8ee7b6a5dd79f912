// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/utils"
	"github.com/google/uuid"
)

type RuleDTO struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	FilePath  string          `json:"filePath"`
	Category  string          `json:"category"`
	CWE       *string         `json:"cwe"`
	OWASP     *string         `json:"owasp"`
	Severity  models.Severity `json:"severity"`
	Languages []string        `json:"languages"`
}

func RuleToDTO(rule models.Rule) RuleDTO {
	return RuleDTO{
		ID:       rule.ID,
		Title:    rule.Title,
		FilePath: rule.FilePath,
		Category: rule.Category,
		CWE:      rule.CWE,
		OWASP:    rule.OWASP,
		Severity: rule.Severity,
		Languages: utils.Map(rule.Languages, func(language models.SupportedLanguage) string {
			return language.Name
		}),
	}
}

type RuleRepositoryCreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	URI         string `json:"uri" validate:"required,url"`
	Description string `json:"description"`
}

type RuleRepositoryDTO struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	URI          string     `json:"uri"`
	Description  string     `json:"description"`
	LastUpdateOn *time.Time `json:"lastUpdateOn"`
	RuleCount    int        `json:"ruleCount"`
}

func RuleRepositoryToDTO(repo models.RuleRepository) RuleRepositoryDTO {
	return RuleRepositoryDTO{
		ID:           repo.ID,
		Name:         repo.Name,
		URI:          repo.URI,
		Description:  repo.Description,
		LastUpdateOn: repo.LastUpdateOn,
		RuleCount:    len(repo.Rules),
	}
}
