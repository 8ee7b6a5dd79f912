// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/codetrail-dev/codetrail/common"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type linesCountRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.ProjectLinesCount, *gorm.DB]
}

func NewLinesCountRepository(db *gorm.DB) *linesCountRepository {
	return &linesCountRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ProjectLinesCount](db),
	}
}

func (r *linesCountRepository) ReadByProjectID(projectID uuid.UUID) (models.ProjectLinesCount, error) {
	var linesCount models.ProjectLinesCount
	err := r.db.
		Preload("LanguageLinesCounts", func(db *gorm.DB) *gorm.DB {
			return db.Order("language_lines_counts.sort_index ASC")
		}).
		First(&linesCount, "project_id = ?", projectID).Error
	return linesCount, err
}

// ReplaceForProject removes a stale lines count of the project and persists
// the given one atomically, so a re-scan never leaves both behind.
func (r *linesCountRepository) ReplaceForProject(tx *gorm.DB, projectID uuid.UUID, linesCount *models.ProjectLinesCount) error {
	return r.GetDB(tx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProjectLinesCount{}, "project_id = ?", projectID).Error; err != nil {
			return err
		}
		linesCount.ProjectID = projectID
		return tx.Create(linesCount).Error
	})
}
