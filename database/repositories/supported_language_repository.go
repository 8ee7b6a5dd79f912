// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/codetrail-dev/codetrail/common"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supportedLanguageRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.SupportedLanguage, *gorm.DB]
}

func NewSupportedLanguageRepository(db *gorm.DB) *supportedLanguageRepository {
	return &supportedLanguageRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.SupportedLanguage](db),
	}
}
