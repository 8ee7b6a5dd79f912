// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

type Project struct {
	Model
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Slug        string `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`

	// hex encoded sha256 of the uploaded source archive, used for
	// deduplication and auditing
	ArchiveDigest string `json:"archiveDigest" gorm:"type:varchar(64)"`

	Analysis   *Analysis          `json:"analysis,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	LinesCount *ProjectLinesCount `json:"linesCount,omitempty" gorm:"constraint:OnDelete:CASCADE;"`

	Teams []Team `json:"teams,omitempty" gorm:"many2many:team_projects;"`
}

func (p Project) TableName() string {
	return "projects"
}
