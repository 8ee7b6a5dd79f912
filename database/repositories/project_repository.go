// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/codetrail-dev/codetrail/common"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (r *projectRepository) ReadBySlug(slug string) (models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ?", slug).Error
	return project, err
}

func (r *projectRepository) ReadWithResults(id uuid.UUID) (models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Analysis").
		Preload("Analysis.Vulnerabilities").
		Preload("Analysis.Vulnerabilities.Occurrences").
		Preload("Analysis.VulnerableDependencies").
		Preload("LinesCount").
		Preload("LinesCount.LanguageLinesCounts", func(db *gorm.DB) *gorm.DB {
			return db.Order("language_lines_counts.sort_index ASC")
		}).
		First(&project, "id = ?", id).Error
	return project, err
}
