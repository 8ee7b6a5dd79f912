// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/codetrail-dev/codetrail/common"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ruleRepositoryRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.RuleRepository, *gorm.DB]
}

func NewRuleRepositoryRepository(db *gorm.DB) *ruleRepositoryRepository {
	return &ruleRepositoryRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.RuleRepository](db),
	}
}

func (r *ruleRepositoryRepository) ReadByName(name string) (models.RuleRepository, error) {
	var repo models.RuleRepository
	err := r.db.First(&repo, "name = ?", name).Error
	return repo, err
}
