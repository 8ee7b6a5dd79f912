// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/codetrail-dev/codetrail/common"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ruleRepo struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.Rule, *gorm.DB]
}

func NewRuleRepo(db *gorm.DB) *ruleRepo {
	return &ruleRepo{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Rule](db),
	}
}

// ReadByFilePath looks a rule up by its unique file path. The file path is
// the rule's logical identity across synchronization runs.
func (r *ruleRepo) ReadByFilePath(filePath string) (models.Rule, error) {
	var rule models.Rule
	err := r.db.Preload("Languages").First(&rule, "file_path = ?", filePath).Error
	return rule, err
}

func (r *ruleRepo) ListByRepositoryID(repositoryID uuid.UUID) ([]models.Rule, error) {
	var rules []models.Rule
	err := r.db.Preload("Languages").Find(&rules, "repository_id = ?", repositoryID).Error
	return rules, err
}

// AppendLanguages adds language associations without touching existing ones.
func (r *ruleRepo) AppendLanguages(tx *gorm.DB, rule *models.Rule, languages []models.SupportedLanguage) error {
	if len(languages) == 0 {
		return nil
	}
	return r.GetDB(tx).Model(rule).Association("Languages").Append(languages)
}
