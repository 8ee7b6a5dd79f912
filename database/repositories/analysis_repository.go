// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/codetrail-dev/codetrail/common"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analysisRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.Analysis, *gorm.DB]
}

func NewAnalysisRepository(db *gorm.DB) *analysisRepository {
	return &analysisRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Analysis](db),
	}
}

func (r *analysisRepository) ReadByProjectID(projectID uuid.UUID) (models.Analysis, error) {
	var analysis models.Analysis
	err := r.db.
		Preload("Vulnerabilities").
		Preload("Vulnerabilities.Occurrences").
		Preload("VulnerableDependencies").
		First(&analysis, "project_id = ?", projectID).Error
	return analysis, err
}

func (r *analysisRepository) DeleteByProjectID(tx *gorm.DB, projectID uuid.UUID) error {
	return r.GetDB(tx).Delete(&models.Analysis{}, "project_id = ?", projectID).Error
}
